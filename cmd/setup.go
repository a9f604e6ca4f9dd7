package main

import (
	"context"
	"fmt"
	"os"

	"github.com/quornholt/sheetlist/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup creates the configuration file (if missing) and initializes the
// cache database schema.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := shared.CreateConfigFile(configPath); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		r.writePlain("✓ Created %s\n", configPath)
		r.writePlain("Edit it to add your Spotify client_id and client_secret.\n")
	} else {
		r.writePlain("Config file %s already exists, leaving it untouched.\n", configPath)
	}

	config, err := shared.LoadConfig(configPath)
	if err != nil {
		return err
	}
	r.config = config
	r.configPath = configPath

	if config.Database.Path == "" {
		r.writePlain("No database path configured, skipping cache setup.\n")
		return nil
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	r.writePlain("✓ Cache database ready at %s\n", config.Database.Path)
	r.writePlainln("Next: run 'sheetlist auth login' to authorize with Spotify.")

	return nil
}
