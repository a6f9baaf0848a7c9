package render

import (
	"encoding/json"
	"io"

	"github.com/lukman83/latino-market/internal/models"
	"github.com/lukman83/latino-market/internal/storefront"
)

type JSON struct{}

type jsonProduct struct {
	models.Product
	DiscountPercent int  `json:"discount_percent,omitempty"`
	Favorite        bool `json:"favorite"`
}

func (JSON) Products(w io.Writer, products []models.Product, favs storefront.Favorites) error {
	out := make([]jsonProduct, 0, len(products))
	for _, p := range products {
		out = append(out, jsonProduct{
			Product:         p,
			DiscountPercent: p.DiscountPercent(),
			Favorite:        favs.Contains(p.ID),
		})
	}
	return encode(w, out)
}

func (JSON) Summary(w io.Writer, v storefront.View) error {
	return encode(w, v)
}

func (JSON) Categories(w io.Writer, counts []CategoryCount) error {
	return encode(w, counts)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
