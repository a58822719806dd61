package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	AdminEmail  string
	Storage     StorageConfig
	Identity    IdentityConfig
	Checkout    CheckoutConfig
}

type StorageConfig struct {
	// Backend selects the snapshot store: memory, file, redis or postgres.
	Backend     string
	FileDir     string
	RedisAddr   string
	PostgresURL string
}

type IdentityConfig struct {
	// Mode selects the provider: memory (in-process, for development) or
	// remote (the hosted identity service).
	Mode    string
	BaseURL string
	APIKey  string
	// Demo account seeded into the memory provider at startup.
	SeedEmail    string
	SeedPassword string
}

type CheckoutConfig struct {
	// PlacementDelay is the simulated order-placement duration.
	PlacementDelay time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORAGE_BACKEND", "file")
	viper.SetDefault("STORAGE_FILE_DIR", "./data")
	viper.SetDefault("IDENTITY_MODE", "memory")
	viper.SetDefault("CHECKOUT_PLACEMENT_DELAY", "2s")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	delay, err := time.ParseDuration(getEnvOrViper("CHECKOUT_PLACEMENT_DELAY", "2s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CHECKOUT_PLACEMENT_DELAY: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		AdminEmail:  getEnvOrViper("ADMIN_EMAIL", "admin@example.com"),
		Storage: StorageConfig{
			Backend:     getEnvOrViper("STORAGE_BACKEND", "file"),
			FileDir:     getEnvOrViper("STORAGE_FILE_DIR", "./data"),
			RedisAddr:   getEnvOrViper("STORAGE_REDIS_ADDR", "localhost:6379"),
			PostgresURL: getEnvOrViper("STORAGE_POSTGRES_URL", ""),
		},
		Identity: IdentityConfig{
			Mode:         getEnvOrViper("IDENTITY_MODE", "memory"),
			BaseURL:      getEnvOrViper("IDENTITY_BASE_URL", ""),
			APIKey:       getEnvOrViper("IDENTITY_API_KEY", ""),
			SeedEmail:    getEnvOrViper("IDENTITY_SEED_EMAIL", ""),
			SeedPassword: getEnvOrViper("IDENTITY_SEED_PASSWORD", ""),
		},
		Checkout: CheckoutConfig{
			PlacementDelay: delay,
		},
	}

	// Validate required fields
	switch cfg.Storage.Backend {
	case "memory", "file", "redis":
	case "postgres":
		if cfg.Storage.PostgresURL == "" {
			return nil, fmt.Errorf("STORAGE_POSTGRES_URL is required for the postgres backend")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND: %s", cfg.Storage.Backend)
	}

	switch cfg.Identity.Mode {
	case "memory":
	case "remote":
		if cfg.Identity.BaseURL == "" {
			return nil, fmt.Errorf("IDENTITY_BASE_URL is required for the remote identity provider")
		}
	default:
		return nil, fmt.Errorf("unknown IDENTITY_MODE: %s", cfg.Identity.Mode)
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
