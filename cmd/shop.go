package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/lukman83/latino-market/internal/shell"
	"github.com/spf13/cobra"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Start an interactive shopping session",
	Args:  cobra.NoArgs,
	RunE:  runShop,
}

func init() {
	rootCmd.AddCommand(shopCmd)
}

func runShop(cmd *cobra.Command, args []string) error {
	r, err := renderer()
	if err != nil {
		return err
	}
	sess, err := newSession()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Latino Market - Sabores Auténticos. Type help for commands.")

	err = shell.New(sess, r, out).Run(ctx, cmd.InOrStdin())
	if ctx.Err() != nil {
		fmt.Fprintln(out)
		return nil
	}
	return err
}
