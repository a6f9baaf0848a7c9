package storefront

import "github.com/lukman83/latino-market/internal/models"

// State is everything the storefront page keeps between user actions.
type State struct {
	Catalog    []models.Product
	Category   models.Category
	SearchTerm string
	Cart       Cart
	Favorites  Favorites
}

func NewState(catalog []models.Product) State {
	return State{
		Catalog:  catalog,
		Category: models.CategoryAll,
	}
}

// Displayed returns the catalog subset selected by the current filters.
func (s State) Displayed() []models.Product {
	return Filter(s.Catalog, s.Category, s.SearchTerm)
}

func (s State) WithCategory(c models.Category) State {
	s.Category = c
	return s
}

func (s State) WithSearchTerm(term string) State {
	s.SearchTerm = term
	return s
}

func (s State) WithProduct(p models.Product) State {
	s.Cart = AddToCart(s.Cart, p)
	return s
}

func (s State) WithFavoriteToggled(id int) State {
	s.Favorites = ToggleFavorite(s.Favorites, id)
	return s
}

// Lookup finds a catalog product by id.
func (s State) Lookup(id int) (models.Product, bool) {
	for _, p := range s.Catalog {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// FavoriteProducts returns the favorite catalog products in the order they were marked.
func (s State) FavoriteProducts() []models.Product {
	out := make([]models.Product, 0, len(s.Favorites))
	for _, id := range s.Favorites {
		if p, ok := s.Lookup(id); ok {
			out = append(out, p)
		}
	}
	return out
}
