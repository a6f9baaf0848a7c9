// Package storefront filters the catalog and tracks cart and favorites state.
//
// The functions in this file are pure: they never mutate their inputs and
// always return fresh slices.
package storefront

import (
	"slices"
	"strings"

	"github.com/lukman83/latino-market/internal/models"
	"github.com/shopspring/decimal"
)

// Cart is the ordered list of products added by the user. Duplicates are separate entries.
type Cart []models.Product

// Favorites is the set of favorite product ids in the order they were added.
type Favorites []int

func (f Favorites) Contains(id int) bool {
	return slices.Contains(f, id)
}

// Filter returns the catalog entries in category (any category for
// CategoryAll) whose name or origin contains term, ignoring case.
// The result keeps catalog order and is never nil.
func Filter(catalog []models.Product, category models.Category, term string) []models.Product {
	needle := strings.ToLower(term)
	out := make([]models.Product, 0, len(catalog))
	for _, p := range catalog {
		if !category.IsAll() && p.Category != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Origin), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func AddToCart(cart Cart, p models.Product) Cart {
	out := make(Cart, len(cart), len(cart)+1)
	copy(out, cart)
	return append(out, p)
}

// CartTotal sums the current price of every entry.
func CartTotal(cart Cart) decimal.Decimal {
	total := decimal.Zero
	for _, p := range cart {
		total = total.Add(p.Price)
	}
	return total
}

func ToggleFavorite(favs Favorites, id int) Favorites {
	if i := slices.Index(favs, id); i >= 0 {
		out := make(Favorites, 0, len(favs)-1)
		out = append(out, favs[:i]...)
		return append(out, favs[i+1:]...)
	}
	out := make(Favorites, len(favs), len(favs)+1)
	copy(out, favs)
	return append(out, id)
}
