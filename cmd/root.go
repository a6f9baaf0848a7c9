package cmd

import (
	"fmt"
	"os"

	"github.com/lukman83/latino-market/config"
	"github.com/lukman83/latino-market/internal/catalog"
	"github.com/lukman83/latino-market/internal/models"
	"github.com/lukman83/latino-market/internal/render"
	"github.com/lukman83/latino-market/internal/storefront"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "latinomarket",
	Short: "Latino Market - storefront catalog CLI & MCP server",
	Long:  "Browse the Latino Market catalog, filter it by category or search term, and keep a cart and favorites for the session.",

	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a JSON catalog replacing the built-in one")
	rootCmd.PersistentFlags().String("format", "table", "Output format: table, json")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("free-shipping", "50", "Cart total from which shipping is free")
}

func initConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	logger, err = newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg.Build()
}

// loadCatalog returns the configured catalog, falling back to the built-in one.
func loadCatalog() ([]models.Product, error) {
	if cfg.CatalogFile == "" {
		return catalog.Default(), nil
	}
	products, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog loaded", zap.String("file", cfg.CatalogFile), zap.Int("products", len(products)))
	return products, nil
}

func newSession() (*storefront.Session, error) {
	products, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	return storefront.NewSession(products,
		storefront.WithLogger(logger),
		storefront.WithFreeShippingThreshold(cfg.FreeShippingThreshold),
	), nil
}

func renderer() (render.Renderer, error) {
	return render.Get(cfg.Format)
}
