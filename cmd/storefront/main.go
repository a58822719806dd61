package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/api"
	"github.com/jafarshop/storefront/internal/checkout"
	"github.com/jafarshop/storefront/internal/config"
	"github.com/jafarshop/storefront/internal/identity"
	"github.com/jafarshop/storefront/internal/notify"
	"github.com/jafarshop/storefront/internal/repository"
	"github.com/jafarshop/storefront/internal/storage"
	"github.com/jafarshop/storefront/internal/store"
	"github.com/jafarshop/storefront/internal/wallet"

	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Snapshot backend
	backend, err := newBackend(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize storage backend", zap.Error(err))
	}

	// Identity provider
	provider, err := newIdentityProvider(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize identity provider", zap.Error(err))
	}

	// Services
	stores := store.NewManager(backend, notify.NewZapNotifier(logger), logger)
	orders := repository.NewMemoryOrderRepository(logger)
	checkoutSvc := checkout.NewService(stores, orders, cfg.Checkout.PlacementDelay, logger)
	walletSvc := wallet.NewService(logger)

	router := api.NewRouter(cfg, api.Deps{
		Identity: provider,
		Stores:   stores,
		Checkout: checkoutSvc,
		Wallet:   walletSvc,
		Orders:   orders,
	}, logger)

	logger.Info("Starting server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.String("storage_backend", cfg.Storage.Backend),
	)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func newBackend(cfg *config.Config, logger *zap.Logger) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "file":
		return storage.NewFileStore(cfg.Storage.FileDir)
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.Storage.RedisAddr})
		return storage.NewRedisStore(client), nil
	case "postgres":
		db, err := storage.NewPostgresConnection(cfg.Storage.PostgresURL)
		if err != nil {
			return nil, err
		}
		return storage.NewPostgresStore(db, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

func newIdentityProvider(cfg *config.Config, logger *zap.Logger) (identity.Provider, error) {
	switch cfg.Identity.Mode {
	case "remote":
		return identity.NewClient(cfg.Identity, logger), nil
	case "memory":
		provider := identity.NewMemoryProvider(logger)
		if cfg.Identity.SeedEmail != "" && cfg.Identity.SeedPassword != "" {
			if err := provider.Seed("Demo", cfg.Identity.SeedEmail, cfg.Identity.SeedPassword); err != nil {
				return nil, err
			}
			logger.Info("Seeded demo account", zap.String("email", cfg.Identity.SeedEmail))
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("unknown identity mode: %s", cfg.Identity.Mode)
	}
}
