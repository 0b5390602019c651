package storefront

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
)

// App drives the storefront. It owns the State, talks to the catalog
// service through the client, and mirrors cart/session changes into the
// injected store. Failed requests are logged and leave prior state intact;
// nothing is retried.
type App struct {
	State State

	client *CatalogClient
	store  StateStore
	logger *log.Logger
}

func NewApp(client *CatalogClient, store StateStore, logger *log.Logger) *App {
	app := &App{
		State:  NewState(),
		client: client,
		store:  store,
		logger: logger,
	}

	if cart, err := store.LoadCart(); err != nil {
		logger.Printf("failed to load saved cart: %v", err)
	} else {
		app.State.Cart = cart
	}
	if session, err := store.LoadSession(); err != nil {
		logger.Printf("failed to load saved session: %v", err)
	} else {
		app.State.Session = session
	}

	return app
}

// Refresh replaces the local catalog copy wholesale with the server's. On
// failure the previous product list stays displayed.
func (a *App) Refresh(ctx context.Context) error {
	products, err := a.client.List(ctx)
	if err != nil {
		a.logger.Printf("refresh failed: %v", err)
		return err
	}
	a.State.Products = products
	return nil
}

// Visible applies the current search and category filters.
func (a *App) Visible() []Product {
	return FilterProducts(a.State.Products, a.State.SearchTerm, a.State.SelectedCategory)
}

// Categories derives the selectable category list from the current catalog.
func (a *App) Categories() []string {
	return Categories(a.State.Products)
}

func (a *App) SetView(v View) {
	a.State.View = v
}

func (a *App) SetSearch(term string) {
	a.State.SearchTerm = term
}

func (a *App) SetCategory(category string) {
	a.State.SelectedCategory = category
}

// SelectProduct opens the details view for the given product.
func (a *App) SelectProduct(p Product) {
	selected := p
	a.State.Selected = &selected
	a.State.View = ViewDetails
}

// AddToCart appends a snapshot of the product.
func (a *App) AddToCart(p Product) {
	a.State.Cart = a.State.Cart.Add(p)
	a.saveCart()
}

// BuyNow adds the product unless it is already in the cart, then jumps to
// checkout.
func (a *App) BuyNow(p Product) {
	a.State.Cart = a.State.Cart.AddUnique(p)
	a.saveCart()
	a.State.View = ViewCheckout
}

// RemoveFromCart removes the line at the given position.
func (a *App) RemoveFromCart(idx int) {
	a.State.Cart = a.State.Cart.RemoveAt(idx)
	a.saveCart()
}

// PlaceOrder simulates checkout: no request is made and no order record is
// kept. It empties the cart, resets the form, and returns the confirmation
// message.
func (a *App) PlaceOrder() (string, error) {
	if len(a.State.Cart) == 0 {
		return "", fmt.Errorf("cart is empty")
	}
	fullName := strings.TrimSpace(a.State.Checkout.FullName)
	if fullName == "" {
		return "", fmt.Errorf("full name is required")
	}

	message := fmt.Sprintf("Order placed! Thank you %s, your total is $%s.", fullName, a.State.Cart.TotalDisplay())

	a.State.Cart = Cart{}
	a.saveCart()
	a.State.Checkout = CheckoutForm{}
	a.State.View = ViewStore

	return message, nil
}

// SignIn applies the mock credential gate and persists the session.
func (a *App) SignIn(username, password string) {
	session := Login(username, password)
	a.State.Session = &session
	if err := a.store.SaveSession(&session); err != nil {
		a.logger.Printf("failed to save session: %v", err)
	}
	a.State.View = ViewStore
}

func (a *App) SignOut() {
	a.State.Session = nil
	if err := a.store.ClearSession(); err != nil {
		a.logger.Printf("failed to clear session: %v", err)
	}
	a.State.View = ViewStore
}

// IsAdmin reports whether the admin UI should render. It gates rendering
// only; the server accepts mutations from anyone.
func (a *App) IsAdmin() bool {
	return a.State.Session != nil && a.State.Session.IsAdmin()
}

// PrepareEdit loads a product into the inventory form.
func (a *App) PrepareEdit(p Product) {
	a.State.Form = ProductForm{
		Name:        p.Name,
		Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		Category:    p.Category,
		Description: p.Description,
		Image:       p.Image,
	}
	a.State.EditingID = p.ID
}

func (a *App) CancelEdit() {
	a.State.Form = ProductForm{}
	a.State.EditingID = ""
}

// SubmitProduct sends the inventory form as a create, or as an update when
// an edit is in progress, then refreshes the catalog.
func (a *App) SubmitProduct(ctx context.Context) (string, error) {
	name := strings.TrimSpace(a.State.Form.Name)
	if name == "" {
		return "", fmt.Errorf("name is required")
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(a.State.Form.Price), 64)
	if err != nil {
		return "", fmt.Errorf("invalid price %q", a.State.Form.Price)
	}

	fields := ProductFields{
		Name:        name,
		Price:       price,
		Category:    a.State.Form.Category,
		Description: a.State.Form.Description,
		Image:       a.State.Form.Image,
	}

	var message string
	if a.State.EditingID != "" {
		if _, err := a.client.Update(ctx, a.State.EditingID, fields); err != nil {
			a.logger.Printf("update failed: %v", err)
			return "", err
		}
		message = "Updated!"
	} else {
		if _, err := a.client.Create(ctx, fields); err != nil {
			a.logger.Printf("create failed: %v", err)
			return "", err
		}
		message = "Added!"
	}

	a.CancelEdit()
	if err := a.Refresh(ctx); err != nil {
		return message, nil // mutation succeeded, stale list until next refresh
	}
	return message, nil
}

// DeleteProduct removes a product and refreshes the catalog.
func (a *App) DeleteProduct(ctx context.Context, id string) error {
	if err := a.client.Delete(ctx, id); err != nil {
		a.logger.Printf("delete failed: %v", err)
		return err
	}
	_ = a.Refresh(ctx)
	return nil
}

func (a *App) saveCart() {
	if err := a.store.SaveCart(a.State.Cart); err != nil {
		a.logger.Printf("failed to save cart: %v", err)
	}
}
