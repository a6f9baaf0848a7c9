package storefront

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/lukman83/latino-market/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrUnknownCategory = errors.New("unknown category")
)

// DefaultFreeShippingThreshold is the cart total from which shipping is free.
var DefaultFreeShippingThreshold = decimal.NewFromInt(50)

// View is the read-only snapshot handed to renderers.
type View struct {
	Products     []models.Product `json:"products"`
	Category     models.Category  `json:"category"`
	SearchTerm   string           `json:"search_term"`
	Cart         Cart             `json:"cart"`
	CartItems    int              `json:"cart_items"`
	CartTotal    decimal.Decimal  `json:"cart_total"`
	Favorites    Favorites        `json:"favorites"`
	FreeShipping bool             `json:"free_shipping"`
	Empty        bool             `json:"empty"`
}

type Option func(*Session)

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

func WithFreeShippingThreshold(d decimal.Decimal) Option {
	return func(s *Session) {
		s.freeShipping = d
	}
}

// Session applies user actions coming from a dispatcher to a State.
// It is safe for concurrent use.
type Session struct {
	mu           sync.Mutex
	state        State
	log          *zap.Logger
	freeShipping decimal.Decimal
}

func NewSession(catalog []models.Product, opts ...Option) *Session {
	s := &Session{
		state:        NewState(catalog),
		log:          zap.NewNop(),
		freeShipping: DefaultFreeShippingThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) SelectCategory(name string) (models.Category, error) {
	const op = "Session.SelectCategory"

	c, ok := models.ParseCategory(name)
	if !ok {
		return "", fmt.Errorf("%s: %w: %q", op, ErrUnknownCategory, name)
	}

	s.mu.Lock()
	s.state = s.state.WithCategory(c)
	s.mu.Unlock()

	s.log.Debug("category selected", zap.String("category", string(c)))
	return c, nil
}

func (s *Session) Search(term string) {
	s.mu.Lock()
	s.state = s.state.WithSearchTerm(term)
	s.mu.Unlock()

	s.log.Debug("search term changed", zap.String("term", term))
}

// AddToCart appends the catalog product with the given id to the cart.
func (s *Session) AddToCart(id int) (models.Product, error) {
	p, _, err := s.AddToCartView(id)
	return p, err
}

// AddToCartView is AddToCart that also returns the view right after the add.
func (s *Session) AddToCartView(id int) (models.Product, View, error) {
	const op = "Session.AddToCart"

	s.mu.Lock()
	p, ok := s.state.Lookup(id)
	if !ok {
		s.mu.Unlock()
		return models.Product{}, View{}, fmt.Errorf("%s: %w: id %d", op, ErrProductNotFound, id)
	}
	s.state = s.state.WithProduct(p)
	v := s.view(s.state)
	s.mu.Unlock()

	s.log.Info("añadido al carrito",
		zap.Int("product_id", p.ID),
		zap.String("name", p.Name),
		zap.Int("cart_items", v.CartItems),
	)
	return p, v, nil
}

// ToggleFavorite flips the favorite flag of a product and reports the new value.
func (s *Session) ToggleFavorite(id int) (bool, error) {
	const op = "Session.ToggleFavorite"

	s.mu.Lock()
	if _, ok := s.state.Lookup(id); !ok {
		s.mu.Unlock()
		return false, fmt.Errorf("%s: %w: id %d", op, ErrProductNotFound, id)
	}
	s.state = s.state.WithFavoriteToggled(id)
	fav := s.state.Favorites.Contains(id)
	s.mu.Unlock()

	s.log.Debug("favorite toggled", zap.Int("product_id", id), zap.Bool("favorite", fav))
	return fav, nil
}

// Filter sets both filters and returns the resulting view in one step,
// so concurrent callers never see each other's filters.
func (s *Session) Filter(category, term string) (View, error) {
	const op = "Session.Filter"

	c, ok := models.ParseCategory(category)
	if !ok {
		return View{}, fmt.Errorf("%s: %w: %q", op, ErrUnknownCategory, category)
	}

	s.mu.Lock()
	s.state = s.state.WithCategory(c).WithSearchTerm(term)
	v := s.view(s.state)
	s.mu.Unlock()

	s.log.Debug("filters applied", zap.String("category", string(c)), zap.String("term", term))
	return v, nil
}

// State returns a copy of the session state. Slices are cloned so callers
// cannot reach the session's catalog, cart or favorites.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Catalog = slices.Clone(st.Catalog)
	st.Cart = slices.Clone(st.Cart)
	st.Favorites = slices.Clone(st.Favorites)
	return st
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(s.state)
}

func (s *Session) view(st State) View {
	displayed := st.Displayed()
	total := CartTotal(st.Cart)
	return View{
		Products:     displayed,
		Category:     st.Category,
		SearchTerm:   st.SearchTerm,
		Cart:         append(Cart{}, st.Cart...),
		CartItems:    len(st.Cart),
		CartTotal:    total,
		Favorites:    append(Favorites{}, st.Favorites...),
		FreeShipping: total.GreaterThanOrEqual(s.freeShipping),
		Empty:        len(displayed) == 0,
	}
}
