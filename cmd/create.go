package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/quornholt/sheetlist/internal/formatter"
	"github.com/quornholt/sheetlist/internal/match"
	"github.com/quornholt/sheetlist/internal/models"
	"github.com/quornholt/sheetlist/internal/shared"
	"github.com/quornholt/sheetlist/internal/tasks"
	"github.com/quornholt/sheetlist/internal/tsv"
	"github.com/quornholt/sheetlist/internal/ui"
	"github.com/urfave/cli/v3"
)

// Create matches a TSV track list against Spotify and assembles the playlist.
func (r *Runner) Create(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("file")
	if path == "" {
		return fmt.Errorf("%w: path to TSV file", shared.ErrMissingArgument)
	}

	svc, err := r.requireSpotify()
	if err != nil {
		return err
	}

	queries, err := tsv.ParseFile(path)
	if err != nil {
		return err
	}

	spec := models.PlaylistSpec{
		Name:        cmd.String("name"),
		Public:      cmd.Bool("public") || r.config.Playlist.Public,
		Description: cmd.String("description"),
	}
	if spec.Description == "" {
		spec.Description = r.config.Playlist.Description
	}

	r.logger.Info("starting run", "file", path, "tracks", len(queries), "playlist", spec.Name)
	r.writePlain("Searching for %d tracks...\n", len(queries))

	cache, closeCache := r.openCache(cmd.Bool("no-cache"))
	defer closeCache()

	retriever := match.NewRetriever(svc, r.logger)
	engine := tasks.NewEngine(retriever, svc, cache, r.logger)
	opts := tasks.RunOptions{Playlist: spec, DryRun: cmd.Bool("dry-run")}

	progressCh := make(chan tasks.ProgressUpdate, 256)
	done := make(chan struct{})

	var result *tasks.RunResult
	var runErr error

	if cmd.Bool("ui") {
		go func() {
			result, runErr = engine.Run(ctx, queries, opts, progressCh)
			close(progressCh)
			close(done)
		}()

		program := tea.NewProgram(ui.NewModel(progressCh))
		if _, err := program.Run(); err != nil {
			r.logger.Warn("progress view failed", "error", err)
		}
		<-done
	} else {
		verbose := cmd.Bool("verbose")
		go func() {
			for update := range progressCh {
				if verbose && update.Phase == tasks.SearchTracks {
					r.writePlain("%s\n", update.Message)
				}
			}
			close(done)
		}()

		result, runErr = engine.Run(ctx, queries, opts, progressCh)
		close(progressCh)
		<-done
	}

	if result == nil {
		return runErr
	}

	r.writePlain("Found: %d/%d tracks\n", len(result.FoundIDs), result.Total)

	switch {
	case opts.DryRun:
		r.writePlainln("Dry run complete. No playlist created.")
		r.writePlain("Would have added %d tracks to playlist %q\n", len(result.FoundIDs), spec.Name)
	case runErr != nil:
		r.writePlainln("✗ Playlist not created: %v", runErr)
	case result.Outcome != nil:
		r.writePlainln("✓ Created playlist: %q", spec.Name)
		r.writePlain("URL: %s\n", result.Outcome.URL)
		if result.Outcome.TracksAdded < len(result.FoundIDs) {
			r.writePlain("Added %d of %d tracks (a batch add failed; see log for details)\n",
				result.Outcome.TracksAdded, len(result.FoundIDs))
		} else {
			r.writePlain("Tracks added: %d\n", result.Outcome.TracksAdded)
		}
	default:
		r.writePlainln("No tracks found. Playlist not created.")
	}

	if len(result.NotFound) > 0 {
		r.writePlainln("Not found (%d tracks):", len(result.NotFound))
		for _, q := range result.NotFound {
			r.writePlain("  - %q by %s\n", q.Title, q.Artist)
		}

		if reportPath := cmd.String("report"); reportPath != "" {
			written, err := formatter.WriteNotFoundReport(result.NotFound, reportPath)
			if err != nil {
				r.logger.Warn("failed to write report", "error", err)
			} else {
				r.writePlain("\nNot-found report written to %s\n", written)
			}
		}
	}

	return runErr
}
