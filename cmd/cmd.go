// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// createCommand builds the playlist-creation command, the tool's main entry point.
func createCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Match a TSV track list against Spotify and create a playlist",
		ArgsUsage: "<file.tsv>",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "file",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "name",
				Aliases:  []string{"n"},
				Usage:    "Name for the new Spotify playlist",
				Required: true,
			},
			&cli.BoolFlag{
				Name:    "public",
				Aliases: []string{"p"},
				Usage:   "Make the playlist public (default: private)",
			},
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "Playlist description",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Search for tracks and report results without creating a playlist",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Show detailed progress during execution",
			},
			&cli.BoolFlag{
				Name:  "ui",
				Usage: "Show interactive progress view",
			},
			&cli.BoolFlag{
				Name:  "no-cache",
				Usage: "Skip recording matches in the local cache",
			},
			&cli.StringFlag{
				Name:  "report",
				Usage: "Write not-found tracks to a TSV file at the given path",
			},
		},
		Action: r.Create,
	}
}

// searchCommand builds the single-track search command for debugging matches.
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search Spotify for a single track and show scored candidates",
		ArgsUsage: "<title> <artist>",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "title",
			},
			&cli.StringArg{
				Name: "artist",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Search,
	}
}

// authCommand handles authentication operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage Spotify authentication",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Authenticate with Spotify using OAuth2",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
					&cli.BoolFlag{
						Name:  "no-browser",
						Usage: "Print the authorization URL instead of opening a browser",
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "status",
				Usage:  "Check current authentication state",
				Action: r.AuthStatus,
			},
		},
	}
}

// setupCommand handles setup operations for configuration and the cache database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize configuration and cache database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// cacheCommand handles the local match cache
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Inspect the local match cache",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List cached matches",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of matches to show",
						Value: 50,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.CacheList,
			},
			{
				Name:   "clear",
				Usage:  "Remove all cached matches",
				Action: r.CacheClear,
			},
		},
	}
}
