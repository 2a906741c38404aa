package services

import (
	"testing"

	"stayhub/errors"
	"stayhub/models"
)

func testCatalog() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Organic Bananas", Description: "Sweet and ripe", Category: "fruits", Price: 2.99, Stock: 50, Featured: true},
		{ID: "2", Name: "Red Apples", Description: "Crisp and juicy", Category: "fruits", Price: 3.49, Stock: 40},
		{ID: "3", Name: "Whole Milk", Description: "Fresh dairy milk", Category: "dairy", Price: 4.29, Stock: 30, Featured: true},
		{ID: "4", Name: "Sourdough Bread", Description: "Baked daily", Category: "bakery", Price: 5.99, Stock: 20},
	}
}

func TestGetAllFiltersByCategory(t *testing.T) {
	svc := NewProductService(testCatalog())

	fruits := svc.GetAll("fruits", "")
	if len(fruits) != 2 {
		t.Fatalf("got %d fruits, want 2", len(fruits))
	}
	for _, p := range fruits {
		if p.Category != "fruits" {
			t.Fatalf("product %s has category %q", p.ID, p.Category)
		}
	}
}

func TestGetAllSubstringSearch(t *testing.T) {
	svc := NewProductService(testCatalog())

	got := svc.GetAll("", "milk")
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("search milk = %v, want product 3", got)
	}

	// Search is case-insensitive and also matches descriptions.
	got = svc.GetAll("", "JUICY")
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("search JUICY = %v, want product 2", got)
	}
}

func TestGetAllFuzzySearch(t *testing.T) {
	svc := NewProductService(testCatalog())

	// A near-miss with no literal match falls back to fuzzy matching.
	got := svc.GetAll("", "bananna")
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("search bananna = %v, want product 1", got)
	}
}

func TestGetAllNoMatch(t *testing.T) {
	svc := NewProductService(testCatalog())
	if got := svc.GetAll("", "xylophone"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

func TestGetFeatured(t *testing.T) {
	svc := NewProductService(testCatalog())
	featured := svc.GetFeatured()
	if len(featured) != 2 {
		t.Fatalf("got %d featured products, want 2", len(featured))
	}
}

func TestProductCRUD(t *testing.T) {
	svc := NewProductService(testCatalog())

	created := svc.Create(models.Product{Name: "Free Range Eggs", Category: "dairy", Price: 6.49, Stock: 25})
	if created.ID != "5" {
		t.Fatalf("created id = %q, want 5", created.ID)
	}

	price := 5.99
	updated, err := svc.Update(created.ID, ProductUpdate{Price: &price})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Price != 5.99 {
		t.Fatalf("price = %v, want 5.99", updated.Price)
	}
	if updated.Name != "Free Range Eggs" {
		t.Fatalf("name changed to %q", updated.Name)
	}

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetByID(created.ID); errors.CodeOf(err) != errors.ErrCodeNotFound {
		t.Fatal("deleted product should be gone")
	}

	if err := svc.Delete("999"); errors.CodeOf(err) != errors.ErrCodeNotFound {
		t.Fatal("deleting an unknown product should be a not-found error")
	}
}
