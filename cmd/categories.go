package cmd

import (
	"github.com/lukman83/latino-market/internal/render"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show categories and how many products each holds",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	r, err := renderer()
	if err != nil {
		return err
	}
	products, err := loadCatalog()
	if err != nil {
		return err
	}
	return r.Categories(cmd.OutOrStdout(), render.CountByCategory(products))
}
