package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags(t *testing.T) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("catalog", "", "")
	fs.String("format", "table", "")
	fs.String("log-level", "info", "")
	fs.String("free-shipping", "50", "")
	return fs
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := Load(nil)
		require.NoError(t, err)
		def := DefaultConfig()
		assert.Equal(t, def.Format, cfg.Format)
		assert.Equal(t, def.LogLevel, cfg.LogLevel)
		assert.Empty(t, cfg.CatalogFile)
		assert.Equal(t, "50", cfg.FreeShippingThreshold.String())
	})

	t.Run("Env", func(t *testing.T) {
		t.Setenv("LATINOMARKET_FORMAT", "json")
		t.Setenv("LATINOMARKET_LOG_LEVEL", "debug")
		t.Setenv("LATINOMARKET_FREE_SHIPPING_THRESHOLD", "35.5")

		cfg, err := Load(testFlags(t))
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "35.50", cfg.FreeShippingThreshold.StringFixed(2))
	})

	t.Run("FlagsOverrideEnv", func(t *testing.T) {
		t.Setenv("LATINOMARKET_FORMAT", "json")

		fs := testFlags(t)
		require.NoError(t, fs.Parse([]string{"--format", "table", "--catalog", "products.json"}))

		cfg, err := Load(fs)
		require.NoError(t, err)
		assert.Equal(t, "table", cfg.Format)
		assert.Equal(t, "products.json", cfg.CatalogFile)
	})

	t.Run("ConfigFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "latinomarket.yaml")
		require.NoError(t, os.WriteFile(path, []byte("format: json\nfree_shipping_threshold: 20\n"), 0o600))

		fs := testFlags(t)
		require.NoError(t, fs.Parse([]string{"--config", path}))

		cfg, err := Load(fs)
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, "20", cfg.FreeShippingThreshold.String())
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("ConfigFileUnknownKey", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "latinomarket.yaml")
		require.NoError(t, os.WriteFile(path, []byte("currency: USD\n"), 0o600))
		t.Setenv(configFileEnvName, path)

		_, err := Load(nil)
		assert.Error(t, err)
	})

	t.Run("MissingConfigFile", func(t *testing.T) {
		t.Setenv(configFileEnvName, filepath.Join(t.TempDir(), "missing.yaml"))

		_, err := Load(nil)
		assert.Error(t, err)
	})

	t.Run("ThresholdKeepsCents", func(t *testing.T) {
		fs := testFlags(t)
		require.NoError(t, fs.Parse([]string{"--free-shipping", "49.99"}))

		cfg, err := Load(fs)
		require.NoError(t, err)
		assert.True(t, cfg.FreeShippingThreshold.Equal(decimal.RequireFromString("49.99")))
	})

	t.Run("ThresholdFromYAMLNumber", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "latinomarket.yaml")
		require.NoError(t, os.WriteFile(path, []byte("free_shipping_threshold: 0.1\n"), 0o600))
		t.Setenv(configFileEnvName, path)

		cfg, err := Load(nil)
		require.NoError(t, err)
		assert.True(t, cfg.FreeShippingThreshold.Equal(decimal.RequireFromString("0.1")))
	})

	t.Run("ThresholdNotANumber", func(t *testing.T) {
		t.Setenv("LATINOMARKET_FREE_SHIPPING_THRESHOLD", "fifty")

		_, err := Load(nil)
		assert.Error(t, err)
	})

	t.Run("NegativeThreshold", func(t *testing.T) {
		t.Setenv("LATINOMARKET_FREE_SHIPPING_THRESHOLD", "-1")

		_, err := Load(nil)
		assert.ErrorContains(t, err, "negative")
	})
}
