package render

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/lukman83/latino-market/internal/models"
	"github.com/lukman83/latino-market/internal/storefront"
)

// Renderer writes storefront view models for a dispatcher.
type Renderer interface {
	Products(w io.Writer, products []models.Product, favs storefront.Favorites) error
	Summary(w io.Writer, v storefront.View) error
	Categories(w io.Writer, counts []CategoryCount) error
}

type CategoryCount struct {
	Category models.Category `json:"category"`
	Count    int             `json:"count"`
}

var (
	registry = make(map[string]Renderer)
	mu       sync.RWMutex
)

func init() {
	Register("table", Table{})
	Register("json", JSON{})
}

func Register(name string, r Renderer) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = r
}

func Get(name string) (Renderer, error) {
	mu.RLock()
	defer mu.RUnlock()
	r, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("output format %q not registered", name)
	}
	return r, nil
}

func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CountByCategory tallies products per category in enumeration order.
// The CategoryAll entry counts the whole catalog.
func CountByCategory(catalog []models.Product) []CategoryCount {
	counts := make(map[models.Category]int)
	for _, p := range catalog {
		counts[p.Category]++
	}

	cats := models.Categories()
	out := make([]CategoryCount, 0, len(cats))
	for _, c := range cats {
		n := counts[c]
		if c.IsAll() {
			n = len(catalog)
		}
		out = append(out, CategoryCount{Category: c, Count: n})
	}
	return out
}
