package menu_test

import (
	"testing"

	"github.com/saawariya-rasoi/api/internal/enum"
	"github.com/saawariya-rasoi/api/internal/menu"
	"github.com/shopspring/decimal"
)

func TestGetKnownItem(t *testing.T) {
	it, ok := menu.Get(1)
	if !ok {
		t.Fatal("expected item 1 in catalog")
	}
	if it.Name != "Thekua" {
		t.Errorf("name: got %q, want %q", it.Name, "Thekua")
	}
	if it.Price.String() != "149" {
		t.Errorf("price: got %s, want 149", it.Price)
	}
	if it.TakeawayPrice.String() != "135" {
		t.Errorf("takeaway price: got %s, want 135", it.TakeawayPrice)
	}
}

func TestGetUnknownItem(t *testing.T) {
	if _, ok := menu.Get(9999); ok {
		t.Fatal("expected no item with ID 9999")
	}
}

func TestPriceForModes(t *testing.T) {
	it, _ := menu.Get(1)

	if got := it.PriceFor(enum.ModeDelivery); got.String() != "149" {
		t.Errorf("delivery price: got %s, want 149", got)
	}
	if got := it.PriceFor(enum.ModeTakeaway); got.String() != "135" {
		t.Errorf("takeaway price: got %s, want 135", got)
	}
}

func TestPriceForTakeawayFallsBackToDeliveryPrice(t *testing.T) {
	it := menu.Item{Name: "No takeaway price", Price: decimal.NewFromInt(149)}
	if got := it.PriceFor(enum.ModeTakeaway); !got.Equal(it.Price) {
		t.Errorf("takeaway fallback: got %s, want %s", got, it.Price)
	}
}

func TestTakeawayFallbackAcrossCatalog(t *testing.T) {
	// Every catalog item must resolve a positive price in both modes.
	for _, it := range menu.List(menu.Filter{}) {
		for _, mode := range []string{enum.ModeDelivery, enum.ModeTakeaway} {
			if p := it.PriceFor(mode); !p.IsPositive() {
				t.Errorf("item %d (%s) has non-positive %s price: %s", it.ID, it.Name, mode, p)
			}
		}
	}
}

func TestListByCategory(t *testing.T) {
	items := menu.List(menu.Filter{Category: "Saawariya Combos"})
	if len(items) != 9 {
		t.Fatalf("combo items: got %d, want 9", len(items))
	}
	for _, it := range items {
		if it.Category != "Saawariya Combos" {
			t.Errorf("item %d has category %q", it.ID, it.Category)
		}
	}
}

func TestListBySubcategory(t *testing.T) {
	items := menu.List(menu.Filter{Category: "Saawariya Vrat Special", Subcategory: "Vrat Snacks"})
	if len(items) != 3 {
		t.Fatalf("vrat snacks: got %d, want 3", len(items))
	}
}

func TestListPopular(t *testing.T) {
	popular := true
	items := menu.List(menu.Filter{Popular: &popular})
	if len(items) == 0 {
		t.Fatal("expected popular items")
	}
	for _, it := range items {
		if !it.Popular {
			t.Errorf("item %d not popular", it.ID)
		}
	}
}

func TestCatalogSize(t *testing.T) {
	items := menu.List(menu.Filter{})
	if len(items) != 43 {
		t.Errorf("catalog size: got %d, want 43", len(items))
	}
}

func TestCategories(t *testing.T) {
	cats := menu.Categories()
	if len(cats) != 5 {
		t.Fatalf("categories: got %d, want 5", len(cats))
	}
	if cats[0] != "All" {
		t.Errorf("first category: got %q, want %q", cats[0], "All")
	}
}
