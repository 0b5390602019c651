package storefront

import "testing"

func TestCartTotalDisplay(t *testing.T) {
	a := Product{ID: "a", Name: "Hoe", Price: 10}
	b := Product{ID: "b", Name: "Seeds", Price: 5.5}

	var cart Cart
	if cart.TotalDisplay() != "0.00" {
		t.Errorf("empty cart total = %q, want 0.00", cart.TotalDisplay())
	}

	cart = cart.Add(a)
	cart = cart.Add(b)
	if got := cart.TotalDisplay(); got != "15.50" {
		t.Errorf("total = %q, want 15.50", got)
	}

	cart = cart.RemoveAt(0)
	if got := cart.TotalDisplay(); got != "5.50" {
		t.Errorf("total after remove = %q, want 5.50", got)
	}
}

func TestCartAddAllowsDuplicates(t *testing.T) {
	p := Product{ID: "a", Name: "Hoe", Price: 10}

	var cart Cart
	cart = cart.Add(p)
	cart = cart.Add(p)
	if len(cart) != 2 {
		t.Fatalf("cart has %d lines, want 2", len(cart))
	}
}

func TestCartAddUnique(t *testing.T) {
	p := Product{ID: "a", Name: "Hoe", Price: 10}

	var cart Cart
	cart = cart.AddUnique(p)
	cart = cart.AddUnique(p)
	if len(cart) != 1 {
		t.Fatalf("cart has %d lines, want 1", len(cart))
	}

	// A plain add snuck a duplicate in earlier: buy-now still skips.
	cart = cart.Add(p)
	cart = cart.AddUnique(p)
	if len(cart) != 2 {
		t.Fatalf("cart has %d lines, want 2", len(cart))
	}
}

func TestCartRemoveAtByPosition(t *testing.T) {
	p := Product{ID: "a", Name: "Hoe", Price: 10}

	// Two identical lines: removing position 1 leaves one line, whichever
	// it was.
	cart := Cart{}.Add(p).Add(p)
	cart = cart.RemoveAt(1)
	if len(cart) != 1 {
		t.Fatalf("cart has %d lines, want 1", len(cart))
	}

	// Out-of-range indexes change nothing.
	if got := cart.RemoveAt(-1); len(got) != 1 {
		t.Errorf("RemoveAt(-1) changed the cart")
	}
	if got := cart.RemoveAt(5); len(got) != 1 {
		t.Errorf("RemoveAt(5) changed the cart")
	}
}

func TestCartLineIsSnapshot(t *testing.T) {
	p := Product{ID: "a", Name: "Hoe", Price: 10, Category: "Tools"}

	cart := Cart{}.Add(p)
	p.Price = 99 // later catalog edit

	if cart[0].Price != 10 {
		t.Errorf("cart line price = %v, want the captured 10", cart[0].Price)
	}
}
