package store

import (
	"errors"
	"testing"

	"shoply-backend/models"
)

func TestCreateProductValidation(t *testing.T) {
	db := freshDB()
	products := NewProductStore(db)

	if _, err := products.Create("", 9.99, ""); !errors.Is(err, ErrInvalidProduct) {
		t.Errorf("expected ErrInvalidProduct for missing name, got %v", err)
	}
	if _, err := products.Create("Widget", 0, ""); !errors.Is(err, ErrInvalidProduct) {
		t.Errorf("expected ErrInvalidProduct for zero price, got %v", err)
	}
	if _, err := products.Create("Widget", -1, ""); !errors.Is(err, ErrInvalidProduct) {
		t.Errorf("expected ErrInvalidProduct for negative price, got %v", err)
	}

	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no products stored after failed validation, got %d", count)
	}
}

func TestCreateAndGetProduct(t *testing.T) {
	db := freshDB()
	products := NewProductStore(db)

	id, err := products.Create("Widget", 9.99, "http://img.test/widget.png")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	product, err := products.GetByID(id)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if product.Name != "Widget" || product.Price != 9.99 {
		t.Errorf("expected Widget/9.99, got %s/%v", product.Name, product.Price)
	}
	if product.ID.String() != id {
		t.Errorf("expected id %s, got %s", id, product.ID)
	}
}

func TestGetProductNotFound(t *testing.T) {
	db := freshDB()
	products := NewProductStore(db)

	if _, err := products.GetByID("00000000-0000-0000-0000-000000000001"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
	// A malformed id behaves like a missing product.
	if _, err := products.GetByID("p404"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound for malformed id, got %v", err)
	}
}

func TestListProducts(t *testing.T) {
	db := freshDB()
	products := NewProductStore(db)

	list, err := products.List()
	if err != nil {
		t.Fatal(err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", list)
	}

	seedProduct(t, products, "Widget", 9.99)
	seedProduct(t, products, "Gadget", 4.50)

	list, err = products.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Errorf("expected 2 products, got %d", len(list))
	}
}

func TestDeleteProductNotFound(t *testing.T) {
	db := freshDB()
	products := NewProductStore(db)

	deleted, err := products.Delete("00000000-0000-0000-0000-000000000001")
	if err != nil {
		t.Fatal(err)
	}
	if deleted {
		t.Error("expected false for unknown product")
	}

	deleted, err = products.Delete("not-a-uuid")
	if err != nil {
		t.Fatal(err)
	}
	if deleted {
		t.Error("expected false for malformed id")
	}
}

func TestDeleteProduct(t *testing.T) {
	db := freshDB()
	products := NewProductStore(db)
	id := seedProduct(t, products, "Widget", 9.99)

	deleted, err := products.Delete(id)
	if err != nil {
		t.Fatal(err)
	}
	if !deleted {
		t.Fatal("expected true for existing product")
	}

	if _, err := products.GetByID(id); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected product gone after delete, got %v", err)
	}
}

func TestDeleteProductSweepsAllCarts(t *testing.T) {
	db := freshDB()
	products, engine := newTestEngine(db)
	widget := seedProduct(t, products, "Widget", 9.99)
	gadget := seedProduct(t, products, "Gadget", 4.50)

	// The same product sits in two different users' carts.
	engine.AddItem("u1", widget)
	engine.AddItem("u1", gadget)
	engine.AddItem("u2", widget)
	engine.AddItem("u2", widget)

	deleted, err := products.Delete(widget)
	if err != nil {
		t.Fatal(err)
	}
	if !deleted {
		t.Fatal("expected delete to succeed")
	}

	var stale int64
	db.Model(&models.CartItem{}).Where("product_id = ?", widget).Count(&stale)
	if stale != 0 {
		t.Errorf("expected no cart references to the deleted product, got %d", stale)
	}

	// Unrelated lines survive the sweep.
	c1, _ := engine.GetCart("u1")
	if len(c1.Items) != 1 || c1.Items[0].Product.ID != gadget {
		t.Errorf("expected u1 to keep only the gadget line, got %+v", c1.Items)
	}
	c2, _ := engine.GetCart("u2")
	if len(c2.Items) != 0 {
		t.Errorf("expected u2 cart emptied, got %+v", c2.Items)
	}

	if itemCount(t, db, "u1") != 1 {
		t.Error("expected 1 remaining line for u1")
	}
}

func TestDeletedProductCannotBeAdded(t *testing.T) {
	db := freshDB()
	products, engine := newTestEngine(db)
	id := seedProduct(t, products, "Widget", 9.99)

	if _, err := products.Delete(id); err != nil {
		t.Fatal(err)
	}
	if _, err := engine.AddItem("u1", id); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound after delete, got %v", err)
	}
}
