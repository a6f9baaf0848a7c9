package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/lukman83/latino-market/internal/storefront"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func productIDs(t *testing.T, out string) []int {
	t.Helper()
	var products []struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &products))
	ids := make([]int, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestSearchCommand(t *testing.T) {
	t.Run("CategoryJSON", func(t *testing.T) {
		out, err := execute(t, "search", "--category", "dulces", "--format", "json", "--log-level", "error")
		require.NoError(t, err)
		assert.Equal(t, []int{3, 7}, productIDs(t, out))
	})

	t.Run("MultiWordTerm", func(t *testing.T) {
		out, err := execute(t, "search", "dulce", "de", "leche", "--category", "Todos", "--format", "json", "--log-level", "error")
		require.NoError(t, err)
		assert.Equal(t, []int{3}, productIDs(t, out))
	})

	t.Run("Table", func(t *testing.T) {
		out, err := execute(t, "search", "ARGENTIN", "--category", "Bebidas", "--format", "table", "--log-level", "error")
		require.NoError(t, err)
		assert.Contains(t, out, "[#8] Mate Argentino Set Completo")
		assert.NotContains(t, out, "Dulce de Leche")
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		_, err := execute(t, "search", "--category", "Lacteos", "--format", "json", "--log-level", "error")
		assert.ErrorIs(t, err, storefront.ErrUnknownCategory)
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		_, err := execute(t, "search", "--category", "Todos", "--format", "xml", "--log-level", "error")
		assert.ErrorContains(t, err, `"xml" not registered`)
	})
}
