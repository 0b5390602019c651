package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/earlbobfabe09861-ux/newfabes-farm-store/storefront"
)

type config struct {
	apiURL      string
	stateDBPath string
}

func loadConfig() config {
	_ = godotenv.Load()

	cfg := config{
		apiURL:      "http://localhost:8080",
		stateDBPath: "data/storefront.db",
	}
	if url := os.Getenv("API_URL"); url != "" {
		cfg.apiURL = url
	}
	if path := os.Getenv("STATE_DB_PATH"); path != "" {
		cfg.stateDBPath = path
	}
	return cfg
}

func main() {
	logger := log.New(os.Stderr, "storefront: ", log.LstdFlags)
	cfg := loadConfig()

	store, err := storefront.NewSQLiteStateStore(cfg.stateDBPath)
	if err != nil {
		logger.Printf("state db unavailable (%v), cart and session will not persist", err)
		store = storefront.NewMemoryStateStore()
	}

	client := storefront.NewCatalogClient(cfg.apiURL)
	app := storefront.NewApp(client, store, logger)

	ctx := context.Background()
	if err := app.Refresh(ctx); err != nil {
		fmt.Println("Could not reach the catalog service; showing an empty shop.")
	}

	fmt.Print(storefront.Render(app))
	fmt.Println("\nType 'help' for commands.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		if cmd == "quit" || cmd == "exit" {
			return
		}
		runCommand(ctx, app, scanner, cmd, arg)
		fmt.Print(storefront.Render(app))
	}
}

func runCommand(ctx context.Context, app *storefront.App, scanner *bufio.Scanner, cmd, arg string) {
	switch cmd {
	case "help":
		printHelp()

	// Navigation
	case "shop":
		app.SetView(storefront.ViewStore)
	case "about":
		app.SetView(storefront.ViewAbout)
	case "contact":
		app.SetView(storefront.ViewContact)
	case "login":
		app.SetView(storefront.ViewLogin)
	case "cart":
		app.SetView(storefront.ViewCart)
	case "checkout":
		app.SetView(storefront.ViewCheckout)

	// Catalog browsing
	case "refresh":
		_ = app.Refresh(ctx)
	case "search":
		app.SetSearch(arg)
	case "category":
		if arg == "" {
			arg = storefront.AllCategories
		}
		app.SetCategory(arg)
	case "view":
		if p, ok := visibleAt(app, arg); ok {
			app.SelectProduct(p)
		}

	// Cart
	case "add":
		if p, ok := visibleAt(app, arg); ok {
			app.AddToCart(p)
			fmt.Println("Added to cart!")
		}
	case "buy":
		if p, ok := visibleAt(app, arg); ok {
			app.BuyNow(p)
		}
	case "remove":
		idx, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Println("Usage: remove <line number>")
			return
		}
		app.RemoveFromCart(idx - 1)

	// Checkout
	case "name":
		app.State.Checkout.FullName = arg
	case "address":
		app.State.Checkout.Address = arg
	case "confirm":
		message, err := app.PlaceOrder()
		if err != nil {
			fmt.Println("Cannot place order:", err)
			return
		}
		fmt.Println(message)

	// Session
	case "signin":
		username, password, _ := strings.Cut(arg, " ")
		app.SignIn(username, strings.TrimSpace(password))
	case "signout":
		app.SignOut()

	// Admin inventory
	case "form":
		setFormField(app, arg)
	case "save":
		message, err := app.SubmitProduct(ctx)
		if err != nil {
			fmt.Println("Cannot save product:", err)
			return
		}
		fmt.Println(message)
	case "edit":
		if p, ok := productByID(app, arg); ok {
			app.PrepareEdit(p)
		}
	case "cancel":
		app.CancelEdit()
	case "delete":
		if _, ok := productByID(app, arg); !ok {
			return
		}
		fmt.Print("Delete this product? [y/N] ")
		if !scanner.Scan() || strings.ToLower(strings.TrimSpace(scanner.Text())) != "y" {
			return
		}
		_ = app.DeleteProduct(ctx, arg)

	default:
		fmt.Println("Unknown command. Type 'help'.")
	}
}

func visibleAt(app *storefront.App, arg string) (storefront.Product, bool) {
	visible := app.Visible()
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(visible) {
		fmt.Println("No such product number.")
		return storefront.Product{}, false
	}
	return visible[n-1], true
}

func productByID(app *storefront.App, id string) (storefront.Product, bool) {
	for _, p := range app.State.Products {
		if p.ID == id {
			return p, true
		}
	}
	fmt.Println("No product with that ID.")
	return storefront.Product{}, false
}

func setFormField(app *storefront.App, arg string) {
	field, value, ok := strings.Cut(arg, "=")
	if !ok {
		fmt.Println("Usage: form <field>=<value>")
		return
	}
	switch field {
	case "name":
		app.State.Form.Name = value
	case "price":
		app.State.Form.Price = value
	case "category":
		app.State.Form.Category = value
	case "description":
		app.State.Form.Description = value
	case "image":
		app.State.Form.Image = value
	default:
		fmt.Println("Unknown field:", field)
	}
}

func printHelp() {
	fmt.Println(`Commands:
  shop | about | contact | login | cart | checkout   switch view
  refresh                                            re-fetch the catalog
  search <text>        filter by name
  category <name>      filter by category (empty = All)
  view|add|buy <n>     act on the nth visible product
  remove <n>           remove the nth cart line
  name <full name>     set the checkout name
  address <address>    set the shipping address
  confirm              place the (simulated) order
  signin <user> <pw>   sign in (admin/123 unlocks admin tools)
  signout              sign out
  form <field>=<val>   fill the inventory form (admin)
  save | cancel        submit or abandon the form (admin)
  edit|delete <id>     edit or delete a product (admin)
  quit`)
}
