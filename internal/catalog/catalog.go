// Package catalog holds the built-in product list and loads replacement
// catalogs from JSON files.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/lukman83/latino-market/internal/models"
	"github.com/shopspring/decimal"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

const imageBase = "https://images.unsplash.com/"

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func optPrice(s string) *decimal.Decimal {
	d := price(s)
	return &d
}

// Default returns a fresh copy of the built-in catalog.
func Default() []models.Product {
	return []models.Product{
		{
			ID:            1,
			Name:          "Café Colombiano Premium",
			Price:         price("12.99"),
			OriginalPrice: optPrice("15.99"),
			ImageURL:      imageBase + "photo-1447933601403-0c6688de566e?w=400&h=300&fit=crop",
			Category:      models.CategoryBebidas,
			Rating:        4.8,
			Origin:        "Colombia",
			Description:   "Café 100% arábica de las montañas colombianas",
		},
		{
			ID:          2,
			Name:        "Arepa Venezolana Mix",
			Price:       price("8.50"),
			ImageURL:    imageBase + "photo-1605398889175-d46b4f73a857?w=400&h=300&fit=crop",
			Category:    models.CategoryHarinas,
			Rating:      4.6,
			Origin:      "Venezuela",
			Description: "Mezcla perfecta para arepas auténticas",
		},
		{
			ID:          3,
			Name:        "Dulce de Leche Argentino",
			Price:       price("7.25"),
			ImageURL:    imageBase + "photo-1578662996442-48f60103fc96?w=400&h=300&fit=crop",
			Category:    models.CategoryDulces,
			Rating:      4.9,
			Origin:      "Argentina",
			Description: "Cremoso dulce de leche artesanal",
		},
		{
			ID:          4,
			Name:        "Empanadas Congeladas",
			Price:       price("15.99"),
			ImageURL:    imageBase + "photo-1604467794349-0b74285de7e4?w=400&h=300&fit=crop",
			Category:    models.CategoryCongelados,
			Rating:      4.7,
			Origin:      "Argentina",
			Description: "Pack de 12 empanadas variadas listas para hornear",
		},
		{
			ID:          5,
			Name:        "Salsa Picante Mexicana",
			Price:       price("5.99"),
			ImageURL:    imageBase + "photo-1599909499914-c7ad54779328?w=400&h=300&fit=crop",
			Category:    models.CategorySalsas,
			Rating:      4.5,
			Origin:      "México",
			Description: "Salsa artesanal con chiles jalapeños",
		},
		{
			ID:          6,
			Name:        "Quinoa Boliviana Orgánica",
			Price:       price("9.75"),
			ImageURL:    imageBase + "photo-1586201375761-83865001e31c?w=400&h=300&fit=crop",
			Category:    models.CategoryGranos,
			Rating:      4.8,
			Origin:      "Bolivia",
			Description: "Quinoa orgánica certificada del altiplano",
		},
		{
			ID:          7,
			Name:        "Chocolate Peruano 70%",
			Price:       price("6.50"),
			ImageURL:    imageBase + "photo-1606312619070-d48b4c652a52?w=400&h=300&fit=crop",
			Category:    models.CategoryDulces,
			Rating:      4.9,
			Origin:      "Perú",
			Description: "Chocolate negro premium con cacao peruano",
		},
		{
			ID:          8,
			Name:        "Mate Argentino Set Completo",
			Price:       price("24.99"),
			ImageURL:    imageBase + "photo-1544787219-7f47ccb76574?w=400&h=300&fit=crop",
			Category:    models.CategoryBebidas,
			Rating:      4.7,
			Origin:      "Argentina",
			Description: "Set completo: mate, bombilla y yerba mate",
		},
	}
}

// Load reads a JSON array of products from path and validates it.
func Load(path string) ([]models.Product, error) {
	const op = "catalog.Load"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInvalidCatalog, err)
	}

	if err := Validate(products); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return products, nil
}

// Validate checks every product against the catalog invariants.
func Validate(products []models.Product) error {
	seen := make(map[int]struct{}, len(products))
	for i, p := range products {
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate product id %d", ErrInvalidCatalog, p.ID)
		}
		seen[p.ID] = struct{}{}

		if err := validateProduct(p); err != nil {
			return fmt.Errorf("%w: product #%d (id %d): %v", ErrInvalidCatalog, i, p.ID, err)
		}
	}
	return nil
}

func validateProduct(p models.Product) error {
	if p.Name == "" {
		return errors.New("name is empty")
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("price %s is negative", p.Price)
	}
	if p.OriginalPrice != nil && p.OriginalPrice.LessThan(p.Price) {
		return fmt.Errorf("original price %s is below price %s", p.OriginalPrice, p.Price)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("rating %.1f is outside [0,5]", p.Rating)
	}
	c, ok := models.ParseCategory(string(p.Category))
	if !ok || c != p.Category || c.IsAll() {
		return fmt.Errorf("unknown category %q", p.Category)
	}
	return nil
}
