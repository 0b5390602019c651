package storefront

import (
	"strings"

	"github.com/earlbobfabe09861-ux/newfabes-farm-store/models"
)

// Product is the catalog entity as served by the API.
type Product = models.Product

// View identifies which screen the storefront is showing.
type View int

const (
	ViewStore View = iota
	ViewAbout
	ViewContact
	ViewLogin
	ViewDetails
	ViewCart
	ViewCheckout
)

// AllCategories is the sentinel category meaning "no category filter".
const AllCategories = "All"

// State is the whole client-side application state. It is owned by a single
// App and mutated only through App methods; the render layer reads it.
type State struct {
	View     View
	Products []Product
	Cart     Cart
	Session  *Session // nil when signed out

	SearchTerm       string
	SelectedCategory string
	Selected         *Product // product shown on the details view

	Form      ProductForm // admin inventory form
	EditingID string      // non-empty while editing an existing product

	Checkout CheckoutForm
}

// ProductForm holds the raw admin form inputs. Price stays a string until
// submit so a half-typed value never produces a bogus zero.
type ProductForm struct {
	Name        string
	Price       string
	Category    string
	Description string
	Image       string
}

type CheckoutForm struct {
	FullName string
	Address  string
}

func NewState() State {
	return State{View: ViewStore, SelectedCategory: AllCategories}
}

// FilterProducts returns the products whose name contains searchTerm
// case-insensitively and whose category matches the selection. Category
// comparison is exact and case-sensitive; AllCategories matches everything.
func FilterProducts(products []Product, searchTerm, category string) []Product {
	search := strings.ToLower(searchTerm)
	var visible []Product
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if category != AllCategories && p.Category != category {
			continue
		}
		visible = append(visible, p)
	}
	return visible
}

// Categories derives the category list: distinct non-empty values in order
// of first appearance, prefixed with the AllCategories sentinel.
func Categories(products []Product) []string {
	categories := []string{AllCategories}
	seen := make(map[string]bool)
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}
