package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lukman83/latino-market/internal/models"
	"github.com/lukman83/latino-market/internal/render"
	"github.com/lukman83/latino-market/internal/storefront"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/shopspring/decimal"
)

type handlers struct {
	sess *storefront.Session
}

func registerTools(s *server.MCPServer, h *handlers) {
	// list_categories
	categoriesTool := mcp.NewTool("list_categories",
		mcp.WithDescription("List product categories with the number of products in each"),
	)
	s.AddTool(categoriesTool, h.listCategories)

	// search_products
	searchTool := mcp.NewTool("search_products",
		mcp.WithDescription("Filter the catalog by category and by a search term matched against product name and origin"),
		mcp.WithString("category",
			mcp.Description("Category name (default: Todos, which matches every category)"),
		),
		mcp.WithString("search",
			mcp.Description("Case-insensitive search term; empty clears the search"),
		),
	)
	s.AddTool(searchTool, h.searchProducts)

	// add_to_cart
	addTool := mcp.NewTool("add_to_cart",
		mcp.WithDescription("Add a product to the cart"),
		mcp.WithNumber("product_id",
			mcp.Required(),
			mcp.Description("Catalog product id"),
		),
	)
	s.AddTool(addTool, h.addToCart)

	// toggle_favorite
	favTool := mcp.NewTool("toggle_favorite",
		mcp.WithDescription("Mark or unmark a product as favorite"),
		mcp.WithNumber("product_id",
			mcp.Required(),
			mcp.Description("Catalog product id"),
		),
	)
	s.AddTool(favTool, h.toggleFavorite)

	// view_cart
	cartTool := mcp.NewTool("view_cart",
		mcp.WithDescription("Show cart contents, total, favorites and free shipping status"),
	)
	s.AddTool(cartTool, h.viewCart)
}

func (h *handlers) listCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	counts := render.CountByCategory(h.sess.State().Catalog)
	return jsonResult(counts), nil
}

func (h *handlers) searchProducts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := request.GetString("category", string(models.CategoryAll))
	term := request.GetString("search", "")

	v, err := h.sess.Filter(category, term)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("category error: %v", err)), nil
	}

	return jsonResult(struct {
		Category   models.Category  `json:"category"`
		SearchTerm string           `json:"search_term"`
		Products   []models.Product `json:"products"`
		Favorites  []int            `json:"favorites"`
	}{v.Category, v.SearchTerm, v.Products, v.Favorites}), nil
}

func (h *handlers) addToCart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireInt("product_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, v, err := h.sess.AddToCartView(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cart error: %v", err)), nil
	}

	return jsonResult(struct {
		Added     models.Product `json:"added"`
		CartItems int            `json:"cart_items"`
		CartTotal string         `json:"cart_total"`
	}{p, v.CartItems, money(v.CartTotal)}), nil
}

func (h *handlers) toggleFavorite(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireInt("product_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	fav, err := h.sess.ToggleFavorite(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("favorite error: %v", err)), nil
	}

	return jsonResult(struct {
		ProductID int  `json:"product_id"`
		Favorite  bool `json:"favorite"`
	}{id, fav}), nil
}

func (h *handlers) viewCart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	v := h.sess.View()
	return jsonResult(struct {
		Cart         storefront.Cart      `json:"cart"`
		CartItems    int                  `json:"cart_items"`
		CartTotal    string               `json:"cart_total"`
		Favorites    storefront.Favorites `json:"favorites"`
		FreeShipping bool                 `json:"free_shipping"`
	}{v.Cart, v.CartItems, money(v.CartTotal), v.Favorites, v.FreeShipping}), nil
}

// money formats amounts the same way in every tool result.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode error: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}
