package storefront

import "github.com/shopspring/decimal"

// CartLine is a snapshot of a product taken when it was added to the cart,
// not a reference. Later catalog edits do not change lines already added.
type CartLine struct {
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

func NewCartLine(p Product) CartLine {
	return CartLine{
		ProductID:   p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Description: p.Description,
		Image:       p.Image,
	}
}

type Cart []CartLine

// Add appends a snapshot of the product. Duplicates are allowed.
func (c Cart) Add(p Product) Cart {
	return append(c, NewCartLine(p))
}

// AddUnique adds the product only if no line already carries its ID. This
// is the buy-now path; the plain add path never deduplicates.
func (c Cart) AddUnique(p Product) Cart {
	for _, line := range c {
		if line.ProductID == p.ID {
			return c
		}
	}
	return c.Add(p)
}

// RemoveAt deletes the line at the given position. Removal is by index,
// not by product ID. Out-of-range indexes leave the cart unchanged.
func (c Cart) RemoveAt(idx int) Cart {
	if idx < 0 || idx >= len(c) {
		return c
	}
	out := make(Cart, 0, len(c)-1)
	out = append(out, c[:idx]...)
	return append(out, c[idx+1:]...)
}

// Total sums the prices captured at add time.
func (c Cart) Total() float64 {
	var total float64
	for _, line := range c {
		total += line.Price
	}
	return total
}

// TotalDisplay renders the total with exactly two decimals, e.g. "15.50".
func (c Cart) TotalDisplay() string {
	return decimal.NewFromFloat(c.Total()).StringFixed(2)
}
