package main

import (
	"fmt"
	"os"

	"dyno/internal/catalog"
	"dyno/internal/config"
	"dyno/internal/logging"
)

// mustLoadConfig loads config from the working directory, falling back to
// defaults when no config file exists.
func mustLoadConfig() *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		return config.DefaultConfig()
	}
	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// loadStore builds the catalog store from config. A populated sqlite
// database takes precedence; otherwise the store is assembled from the
// builtin catalog plus any configured TOML/YAML files.
func loadStore(cfg *config.Config, logger *logging.Logger) (*catalog.Store, error) {
	if cfg.Catalog.DatabasePath != "" {
		if _, err := os.Stat(cfg.Catalog.DatabasePath); err == nil {
			db, err := catalog.OpenDB(cfg.Catalog.DatabasePath, logger)
			if err != nil {
				return nil, fmt.Errorf("failed to open catalog database: %w", err)
			}
			defer func() { _ = db.Close() }()

			store, err := db.LoadStore()
			if err != nil {
				return nil, fmt.Errorf("failed to load catalog from database: %w", err)
			}
			logger.Debug("Catalog loaded from database", map[string]interface{}{
				"path": cfg.Catalog.DatabasePath,
			})
			return store, nil
		}
	}

	store, err := catalog.Load(catalog.LoadOptions{
		ModificationsPath: cfg.Catalog.ModificationsPath,
		VehiclesPath:      cfg.Catalog.VehiclesPath,
		SkipBuiltin:       cfg.Catalog.SkipBuiltin,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return store, nil
}
