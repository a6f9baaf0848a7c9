package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/lukman83/latino-market/internal/models"
	"github.com/lukman83/latino-market/internal/storefront"
	"github.com/shopspring/decimal"
)

// Table prints products in a human-friendly card layout.
type Table struct{}

const emptyMessage = "No se encontraron productos que coincidan con tu búsqueda."

func (Table) Products(w io.Writer, products []models.Product, favs storefront.Favorites) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, emptyMessage)
		return err
	}

	var b strings.Builder
	for i, p := range products {
		if i > 0 {
			b.WriteString("\n")
		}
		name := p.Name
		if favs.Contains(p.ID) {
			name = "♥ " + name
		}
		fmt.Fprintf(&b, " %d. [#%d] %s\n", i+1, p.ID, name)

		// Price line with optional original price and discount
		priceLine := "    Price: " + FormatPrice(p.Price)
		if pct := p.DiscountPercent(); pct > 0 {
			priceLine += fmt.Sprintf("  (was %s, -%d%%)", FormatPrice(*p.OriginalPrice), pct)
		}
		priceLine += fmt.Sprintf("  |  ★ %.1f  |  %s", p.Rating, p.Origin)
		b.WriteString(priceLine + "\n")

		fmt.Fprintf(&b, "    Category: %s\n", p.Category)
		if p.Description != "" {
			fmt.Fprintf(&b, "    %s\n", truncate(p.Description, 72))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (Table) Summary(w io.Writer, v storefront.View) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Carrito: %d  |  Total: %s\n", v.CartItems, FormatPrice(v.CartTotal))
	for i, p := range v.Cart {
		fmt.Fprintf(&b, " %2d. %-40s %s\n", i+1, truncate(p.Name, 40), FormatPrice(p.Price))
	}
	if v.FreeShipping {
		b.WriteString("Envío gratis\n")
	}
	if len(v.Favorites) > 0 {
		ids := make([]string, len(v.Favorites))
		for i, id := range v.Favorites {
			ids[i] = fmt.Sprintf("#%d", id)
		}
		fmt.Fprintf(&b, "Favoritos: %s\n", strings.Join(ids, " "))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (Table) Categories(w io.Writer, counts []CategoryCount) error {
	var b strings.Builder
	for i, c := range counts {
		fmt.Fprintf(&b, " %2d. %-12s (%d products)\n", i+1, c.Category, c.Count)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// FormatPrice formats an amount as "€1234.50".
func FormatPrice(d decimal.Decimal) string {
	return "€" + d.StringFixed(2)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
