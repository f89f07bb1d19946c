package menu

import (
	"github.com/saawariya-rasoi/api/internal/enum"
	"github.com/shopspring/decimal"
)

// Item is a single menu entry. The catalog is compiled into the binary and
// never mutated at runtime.
type Item struct {
	ID            int
	Name          string
	Description   string
	Price         decimal.Decimal // delivery price
	TakeawayPrice decimal.Decimal // zero when the item has no takeaway price
	Popular       bool
	Category      string
	Subcategory   string
	Veg           bool
	Quantity      string // unit label, e.g. "250 grams"
}

// PriceFor returns the price displayed for the given order mode. Takeaway
// falls back to the delivery price when no takeaway price is set.
func (it Item) PriceFor(mode string) decimal.Decimal {
	if mode == enum.ModeTakeaway && !it.TakeawayPrice.IsZero() {
		return it.TakeawayPrice
	}
	return it.Price
}

// Filter narrows a catalog listing.
type Filter struct {
	Category    string
	Subcategory string
	Veg         *bool
	Popular     *bool
}

// List returns catalog items matching the filter, in catalog order.
func List(f Filter) []Item {
	var out []Item
	for _, it := range catalog {
		if f.Category != "" && it.Category != f.Category {
			continue
		}
		if f.Subcategory != "" && it.Subcategory != f.Subcategory {
			continue
		}
		if f.Veg != nil && it.Veg != *f.Veg {
			continue
		}
		if f.Popular != nil && it.Popular != *f.Popular {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Get returns the item with the given ID.
func Get(id int) (Item, bool) {
	for _, it := range catalog {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Categories returns the fixed category list shown in the menu UI.
func Categories() []string {
	return append([]string(nil), categories...)
}
