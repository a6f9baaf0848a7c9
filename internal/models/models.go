package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryAll        Category = "Todos"
	CategoryBebidas    Category = "Bebidas"
	CategoryDulces     Category = "Dulces"
	CategoryHarinas    Category = "Harinas"
	CategoryCongelados Category = "Congelados"
	CategorySalsas     Category = "Salsas"
	CategoryGranos     Category = "Granos"
)

var categories = []Category{
	CategoryAll,
	CategoryBebidas,
	CategoryDulces,
	CategoryHarinas,
	CategoryCongelados,
	CategorySalsas,
	CategoryGranos,
}

// Categories returns the category enumeration in display order, starting with CategoryAll.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory matches name against the enumeration ignoring case.
func ParseCategory(name string) (Category, bool) {
	for _, c := range categories {
		if strings.EqualFold(string(c), strings.TrimSpace(name)) {
			return c, true
		}
	}
	return "", false
}

func (c Category) IsAll() bool {
	return c == CategoryAll
}

type Product struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	ImageURL      string           `json:"image_url"`
	Category      Category         `json:"category"`
	Rating        float64          `json:"rating"`
	Origin        string           `json:"origin"`
	Description   string           `json:"description"`
}

var hundred = decimal.NewFromInt(100)

// DiscountPercent returns the rounded markdown from OriginalPrice to Price, or 0 when there is none.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice == nil || !p.OriginalPrice.GreaterThan(p.Price) {
		return 0
	}
	orig := *p.OriginalPrice
	pct := orig.Sub(p.Price).Div(orig).Mul(hundred).Round(0)
	return int(pct.IntPart())
}
