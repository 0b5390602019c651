package storefront

import (
	"path/filepath"
	"testing"
)

func testStateStoreRoundtrip(t *testing.T, store StateStore) {
	t.Helper()

	// Fresh store: nothing saved yet.
	cart, err := store.LoadCart()
	if err != nil {
		t.Fatalf("LoadCart: %v", err)
	}
	if len(cart) != 0 {
		t.Fatalf("fresh store returned %d cart lines", len(cart))
	}
	session, err := store.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if session != nil {
		t.Fatalf("fresh store returned session %+v", session)
	}

	// Cart roundtrip.
	saved := Cart{
		{ProductID: "a", Name: "Hoe", Price: 10, Category: "Tools"},
		{ProductID: "b", Name: "Seeds", Price: 5.5},
	}
	if err := store.SaveCart(saved); err != nil {
		t.Fatalf("SaveCart: %v", err)
	}
	cart, err = store.LoadCart()
	if err != nil {
		t.Fatalf("LoadCart: %v", err)
	}
	if len(cart) != 2 || cart[0].Name != "Hoe" || cart[1].Price != 5.5 {
		t.Fatalf("loaded cart %+v does not match saved", cart)
	}

	// Session roundtrip and clear.
	admin := Session{Name: "Administrator", Role: RoleAdmin}
	if err := store.SaveSession(&admin); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	session, err = store.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if session == nil || session.Name != "Administrator" || session.Role != RoleAdmin {
		t.Fatalf("loaded session %+v does not match saved", session)
	}
	if err := store.ClearSession(); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}
	session, err = store.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession after clear: %v", err)
	}
	if session != nil {
		t.Fatalf("session %+v survived clear", session)
	}
}

func TestMemoryStateStore(t *testing.T) {
	testStateStoreRoundtrip(t, NewMemoryStateStore())
}

func TestSQLiteStateStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "storefront.db")
	store, err := NewSQLiteStateStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStateStore: %v", err)
	}
	testStateStoreRoundtrip(t, store)

	// A second open against the same file sees the persisted cart.
	if err := store.SaveCart(Cart{{ProductID: "a", Name: "Hoe", Price: 10}}); err != nil {
		t.Fatalf("SaveCart: %v", err)
	}
	reopened, err := NewSQLiteStateStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	cart, err := reopened.LoadCart()
	if err != nil {
		t.Fatalf("LoadCart after reopen: %v", err)
	}
	if len(cart) != 1 || cart[0].Name != "Hoe" {
		t.Fatalf("reopened cart %+v does not match saved", cart)
	}
}
