package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [term...]",
	Short: "List products filtered by category and search term",
	Long:  "List catalog products. The term matches product name or origin ignoring case; several words are searched as one phrase. Without a term every product in the category is listed.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().String("category", "Todos", "Category filter")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")

	r, err := renderer()
	if err != nil {
		return err
	}
	sess, err := newSession()
	if err != nil {
		return err
	}

	v, err := sess.Filter(category, strings.Join(args, " "))
	if err != nil {
		return err
	}
	return r.Products(cmd.OutOrStdout(), v.Products, v.Favorites)
}
