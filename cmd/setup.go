package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"leetdash/internal/repositories"
	"leetdash/internal/shared"
)

// Setup initializes the configuration file and the preference database.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	var config *shared.Config
	if _, err := os.Stat(configPath); err == nil {
		if config, err = shared.LoadConfig(configPath); err != nil {
			r.logger.Warn("failed to load config, using defaults", "error", err)
			config = shared.DefaultConfig()
		}
	} else {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
			config = shared.DefaultConfig()
		} else {
			r.logger.Info("config file created", "path", configPath)
			if config, err = shared.LoadConfig(configPath); err != nil {
				r.logger.Warn("failed to load created config, using defaults", "error", err)
				config = shared.DefaultConfig()
			}
		}
	}
	r.config = config

	r.logger.Info("initializing preference database", "path", config.Database.Path)

	db, err := r.openDatabase()
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	if _, err := repositories.NewPrefRepository(db); err != nil {
		return fmt.Errorf("failed to create prefs schema: %w", err)
	}

	if _, err := os.Stat(config.Catalog.Path); err != nil {
		r.logger.Warn("catalog file not found; place the problem catalog before running",
			"path", config.Catalog.Path)
	}

	r.writePlainln("✓ setup complete")
	r.writePlainln("  config:   %s", configPath)
	r.writePlainln("  database: %s", config.Database.Path)
	return r.writePlainln("  catalog:  %s", config.Catalog.Path)
}
