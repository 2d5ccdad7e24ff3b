package config

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Anthropic AnthropicConfig
	Catalog   CatalogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AnthropicConfig holds chat collaborator configuration. The API key is the
// process-local credential; its absence is a startup failure, never a
// per-call one.
type AnthropicConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Brand   string `mapstructure:"brand"`
}

// CatalogConfig holds feed ingestion configuration
type CatalogConfig struct {
	MaxRecords       int           `mapstructure:"max_records"`
	DefaultDelimiter string        `mapstructure:"default_delimiter"`
	CacheTTL         time.Duration `mapstructure:"cache_ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env if present; real env vars win
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/productadvisor/")

	v.SetEnvPrefix("PRODUCTADVISOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Anthropic defaults. The api_key default registers the key with viper
	// so the env override is visible to Unmarshal; validation still rejects
	// an empty value.
	v.SetDefault("anthropic.api_key", "")
	v.SetDefault("anthropic.base_url", "https://api.anthropic.com")
	v.SetDefault("anthropic.brand", "Odlo")

	// Catalog defaults
	v.SetDefault("catalog.max_records", 100)
	v.SetDefault("catalog.default_delimiter", ",")
	v.SetDefault("catalog.cache_ttl", "1h")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Anthropic.APIKey == "" {
		return fmt.Errorf("Anthropic API key is required (set PRODUCTADVISOR_ANTHROPIC_API_KEY)")
	}

	if config.Catalog.MaxRecords < 1 {
		return fmt.Errorf("catalog max_records must be at least 1, got: %d", config.Catalog.MaxRecords)
	}

	if utf8.RuneCountInString(config.Catalog.DefaultDelimiter) != 1 {
		return fmt.Errorf("catalog default_delimiter must be a single character, got: %q", config.Catalog.DefaultDelimiter)
	}

	return nil
}
