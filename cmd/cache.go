package main

import (
	"context"
	"fmt"

	"github.com/quornholt/sheetlist/internal/repositories"
	"github.com/quornholt/sheetlist/internal/shared"
	"github.com/quornholt/sheetlist/internal/tasks"
	"github.com/urfave/cli/v3"
)

// openCache opens the match cache for a run. Cache failures degrade to a
// nil cacher rather than aborting, since the cache is an optimization.
func (r *Runner) openCache(disabled bool) (tasks.TrackCacher, func()) {
	noop := func() {}
	if disabled || r.config.Database.Path == "" {
		return nil, noop
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		r.logger.Warn("cache unavailable", "error", err)
		return nil, noop
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		r.logger.Warn("cache migration failed", "error", err)
		db.Close()
		return nil, noop
	}

	repo := repositories.NewMatchRepository(db)
	return repositories.NewMatchCacheAdapter(repo), func() { db.Close() }
}

// openRepository opens the match repository for cache inspection commands.
func (r *Runner) openRepository() (*repositories.MatchRepository, func(), error) {
	if r.config.Database.Path == "" {
		return nil, nil, fmt.Errorf("%w: no database path configured, run 'sheetlist setup'", shared.ErrMissingConfig)
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return repositories.NewMatchRepository(db), func() { db.Close() }, nil
}

// CacheList shows the most recently cached matches.
func (r *Runner) CacheList(ctx context.Context, cmd *cli.Command) error {
	repo, closeRepo, err := r.openRepository()
	if err != nil {
		return err
	}
	defer closeRepo()

	matches, err := repo.List(int(cmd.Int("limit")))
	if err != nil {
		return fmt.Errorf("failed to list cached matches: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(matches, true)
	}

	if len(matches) == 0 {
		r.writePlain("Cache is empty.\n")
		return nil
	}

	r.writePlainHeader(fmt.Sprintf("Cached matches (%d)", len(matches)))
	for _, m := range matches {
		r.writePlain("%6s  %q by %s → %q by %s (%s)\n",
			shared.FormatScore(m.Score), m.Title, m.Artist, m.MatchedTitle, m.MatchedArtist, m.TrackID)
	}

	return nil
}

// CacheClear removes every cached match.
func (r *Runner) CacheClear(ctx context.Context, cmd *cli.Command) error {
	repo, closeRepo, err := r.openRepository()
	if err != nil {
		return err
	}
	defer closeRepo()

	count, err := repo.Count()
	if err != nil {
		return fmt.Errorf("failed to count cached matches: %w", err)
	}

	if err := repo.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	r.writePlain("✓ Cleared %d cached matches\n", count)
	return nil
}
