package storefront

import (
	"fmt"
	"strings"
)

const (
	placeholderDescription = "No description available."
	placeholderImage       = "https://placehold.co/300?text=No+Image"
)

// Render draws the current view as text. It reads state and derives the
// visible set fresh on every call; nothing here mutates the app.
func Render(a *App) string {
	var b strings.Builder

	// Header: logo, nav, cart badge, greeting
	b.WriteString("=== Fabe's Farm Store ===\n")
	b.WriteString(fmt.Sprintf("[shop] [about] [contact] [cart (%d)]", len(a.State.Cart)))
	if a.State.Session != nil {
		b.WriteString(fmt.Sprintf("  Hi, %s (sign out with: signout)", a.State.Session.Name))
	} else {
		b.WriteString("  [login]")
	}
	b.WriteString("\n\n")

	switch a.State.View {
	case ViewStore:
		renderStore(&b, a)
	case ViewAbout:
		b.WriteString("Our Story\n")
		b.WriteString("Established in 1985, Fabe's Farm Store began as a small roadside stand.\n")
		b.WriteString("Today, we are the trusted source for quality farming equipment and seeds.\n")
	case ViewContact:
		b.WriteString("Contact Us\n")
		b.WriteString("Address: The Barn, Springfield, IL 62704\n")
		b.WriteString("Phone: (555) 123-4567\n")
		b.WriteString("Email: support@fabesfarm.com\n")
	case ViewLogin:
		b.WriteString("Sign In\n")
		b.WriteString("Use: signin <username> <password>\n")
		b.WriteString("Try admin / 123 for Admin Tools.\n")
	case ViewDetails:
		renderDetails(&b, a)
	case ViewCart:
		renderCart(&b, a, false)
	case ViewCheckout:
		renderCart(&b, a, true)
	}

	return b.String()
}

func renderStore(b *strings.Builder, a *App) {
	if a.IsAdmin() {
		b.WriteString("🛠️  Inventory Manager\n")
		if a.State.EditingID != "" {
			b.WriteString(fmt.Sprintf("Editing %s (save to update, cancel to stop)\n", a.State.EditingID))
		}
		form := a.State.Form
		b.WriteString(fmt.Sprintf("Form: name=%q price=%q category=%q description=%q image=%q\n\n",
			form.Name, form.Price, form.Category, form.Description, form.Image))
	}

	b.WriteString(fmt.Sprintf("Categories: %s (current: %s)\n", strings.Join(a.Categories(), ", "), a.State.SelectedCategory))
	if a.State.SearchTerm != "" {
		b.WriteString(fmt.Sprintf("Search: %q\n", a.State.SearchTerm))
	}
	b.WriteString("\n")

	visible := a.Visible()
	if len(visible) == 0 {
		b.WriteString("No products found.\n")
		return
	}
	for i, p := range visible {
		b.WriteString(fmt.Sprintf("%d. %s — $%v", i+1, p.Name, p.Price))
		if p.Category != "" {
			b.WriteString(" [" + p.Category + "]")
		}
		if a.IsAdmin() {
			b.WriteString("  (edit " + p.ID + " / delete " + p.ID + ")")
		}
		b.WriteString("\n")
	}
}

func renderDetails(b *strings.Builder, a *App) {
	p := a.State.Selected
	if p == nil {
		b.WriteString("No product selected.\n")
		return
	}
	description := p.Description
	if description == "" {
		description = placeholderDescription
	}
	image := p.Image
	if image == "" {
		image = placeholderImage
	}
	b.WriteString(fmt.Sprintf("%s\n$%v\n%s\nImage: %s\n", p.Name, p.Price, description, image))
	b.WriteString("[buy now] [add to cart]\n")
}

func renderCart(b *strings.Builder, a *App, checkout bool) {
	if checkout {
		b.WriteString("Checkout\n")
	} else {
		b.WriteString("Your Cart\n")
	}
	if len(a.State.Cart) == 0 {
		b.WriteString("Cart is empty.\n")
		return
	}
	for i, line := range a.State.Cart {
		b.WriteString(fmt.Sprintf("%d. %s — $%v\n", i+1, line.Name, line.Price))
	}
	b.WriteString(fmt.Sprintf("Total: $%s\n", a.State.Cart.TotalDisplay()))
	if checkout {
		b.WriteString("Shipping Info: name <full name>, address <address>, then: confirm\n")
	} else {
		b.WriteString("Proceed with: checkout\n")
	}
}
