package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "LATINOMARKET"
	configFileEnvName = envPrefix + "_CONFIG"
)

// flagKeys maps command line flag names to config keys.
var flagKeys = map[string]string{
	"catalog":       "catalog_file",
	"format":        "format",
	"log-level":     "log_level",
	"free-shipping": "free_shipping_threshold",
}

// Config holds all application configuration.
type Config struct {
	// CatalogFile replaces the built-in catalog when set.
	CatalogFile string `mapstructure:"catalog_file"`
	Format      string `mapstructure:"format"` // "table", "json"
	LogLevel    string `mapstructure:"log_level"`

	// FreeShippingThreshold is the cart total from which shipping is free.
	FreeShippingThreshold decimal.Decimal `mapstructure:"free_shipping_threshold"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Format:                "table",
		LogLevel:              "info",
		FreeShippingThreshold: decimal.NewFromInt(50),
	}
}

// Load builds the configuration from defaults, an optional config file,
// environment variables (including a .env file in the working directory)
// and the given flags, in increasing order of precedence.
func Load(flags *pflag.FlagSet) (Config, error) {
	const op = "config.Load"

	// Auto-load .env file; silently ignored if missing
	_ = godotenv.Load()

	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("catalog_file", def.CatalogFile)
	v.SetDefault("format", def.Format)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("free_shipping_threshold", def.FreeShippingThreshold.String())

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	if path := configFilepath(flags); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	var cfg Config
	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		stringToDecimalHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.UnmarshalExact(&cfg, hooks); err != nil {
		return Config{}, fmt.Errorf("%s: %w", op, err)
	}
	if cfg.FreeShippingThreshold.IsNegative() {
		return Config{}, fmt.Errorf("%s: free shipping threshold %s is negative", op, cfg.FreeShippingThreshold)
	}
	return cfg, nil
}

func configFilepath(flags *pflag.FlagSet) string {
	if env, ok := os.LookupEnv(configFileEnvName); ok {
		return env
	}
	if flags == nil {
		return ""
	}
	if f := flags.Lookup("config"); f != nil {
		return f.Value.String()
	}
	return ""
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

// stringToDecimalHookFunc decodes money values into decimal.Decimal.
// Flags and env vars arrive as strings; bare YAML/TOML numbers are
// formatted back to their shortest literal before parsing.
func stringToDecimalHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != decimalType {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			return decimal.NewFromString(strings.TrimSpace(v))
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int64:
			return decimal.NewFromInt(v), nil
		case float64:
			return decimal.NewFromString(strconv.FormatFloat(v, 'f', -1, 64))
		}
		return data, nil
	}
}
