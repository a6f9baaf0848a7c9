package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/lukman83/latino-market/internal/catalog"
	"github.com/lukman83/latino-market/internal/models"
	"github.com/lukman83/latino-market/internal/storefront"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"json", "table"}, List())

	r, err := Get("table")
	require.NoError(t, err)
	assert.IsType(t, Table{}, r)

	_, err = Get("xml")
	assert.ErrorContains(t, err, `"xml" not registered`)
}

func TestCountByCategory(t *testing.T) {
	counts := CountByCategory(catalog.Default())
	assert.Equal(t, []CategoryCount{
		{models.CategoryAll, 8},
		{models.CategoryBebidas, 2},
		{models.CategoryDulces, 2},
		{models.CategoryHarinas, 1},
		{models.CategoryCongelados, 1},
		{models.CategorySalsas, 1},
		{models.CategoryGranos, 1},
	}, counts)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "€0.00", FormatPrice(decimal.Zero))
	assert.Equal(t, "€8.50", FormatPrice(decimal.RequireFromString("8.5")))
	assert.Equal(t, "€1234.57", FormatPrice(decimal.RequireFromString("1234.567")))
}

func TestTable(t *testing.T) {
	k := catalog.Default()

	t.Run("Products", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Table{}.Products(&buf, k[:2], storefront.Favorites{2}))
		out := buf.String()
		assert.Contains(t, out, " 1. [#1] Café Colombiano Premium")
		assert.Contains(t, out, "Price: €12.99  (was €15.99, -19%)")
		assert.Contains(t, out, "★ 4.8  |  Colombia")
		assert.Contains(t, out, " 2. [#2] ♥ Arepa Venezolana Mix")
		assert.Contains(t, out, "Category: Harinas")
	})

	t.Run("Empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Table{}.Products(&buf, nil, nil))
		assert.Equal(t, emptyMessage+"\n", buf.String())
	})

	t.Run("Summary", func(t *testing.T) {
		v := storefront.View{
			Cart:         storefront.Cart{k[7], k[7]},
			CartItems:    2,
			CartTotal:    decimal.RequireFromString("49.98"),
			Favorites:    storefront.Favorites{3, 7},
			FreeShipping: false,
		}
		var buf bytes.Buffer
		require.NoError(t, Table{}.Summary(&buf, v))
		out := buf.String()
		assert.Contains(t, out, "Carrito: 2  |  Total: €49.98")
		assert.Contains(t, out, "Mate Argentino Set Completo")
		assert.Contains(t, out, "Favoritos: #3 #7")
		assert.NotContains(t, out, "Envío gratis")
	})

	t.Run("Categories", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Table{}.Categories(&buf, CountByCategory(k)))
		assert.Contains(t, buf.String(), "Dulces       (2 products)")
	})
}

func TestJSON(t *testing.T) {
	k := catalog.Default()

	var buf bytes.Buffer
	require.NoError(t, JSON{}.Products(&buf, k[:2], storefront.Favorites{1}))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.EqualValues(t, 1, got[0]["id"])
	assert.Equal(t, "12.99", got[0]["price"])
	assert.EqualValues(t, 19, got[0]["discount_percent"])
	assert.Equal(t, true, got[0]["favorite"])
	assert.Equal(t, false, got[1]["favorite"])
	assert.NotContains(t, got[1], "original_price")
	assert.NotContains(t, got[1], "discount_percent")

	t.Run("EmptyIsArray", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, JSON{}.Products(&buf, nil, nil))
		assert.Equal(t, "[]\n", buf.String())
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Chocol...", truncate("Chocolate Peruano", 9))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
