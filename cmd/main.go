package main

import (
	"context"
	"os"

	"github.com/quornholt/sheetlist/internal/services"
	"github.com/quornholt/sheetlist/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	configPath := "config.toml"
	if _, err := os.Stat(configPath); err == nil {
		if loadedConfig, err := shared.LoadConfig(configPath); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("failed to load config, using defaults", "error", err)
		}
	}

	var spotify *services.SpotifyService
	if config.Credentials.Spotify.ClientID != "" && config.Credentials.Spotify.ClientSecret != "" {
		if svc, err := services.NewSpotifyService(config.Credentials.Spotify.Map()); err == nil {
			svc.SetRateLimit(config.Search.RateLimit)
			if token := config.Credentials.Spotify.Token(); token != nil {
				svc.UseToken(context.Background(), token)
			}
			spotify = svc
		} else {
			logger.Warn("failed to initialize Spotify service", "error", err)
		}
	}

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: configPath,
		Spotify:    spotify,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "sheetlist",
		Usage:    "Create Spotify playlists from TSV track lists",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
