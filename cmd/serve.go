package cmd

import (
	"fmt"

	mcpserver "github.com/lukman83/latino-market/mcp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP stdio server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "Starting Latino Market MCP server on stdio...")

	if err := mcpserver.Serve(sess); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}
	return nil
}
