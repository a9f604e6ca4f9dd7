package tasks

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quornholt/sheetlist/internal/match"
	"github.com/quornholt/sheetlist/internal/models"
	"github.com/quornholt/sheetlist/internal/services"
	"github.com/quornholt/sheetlist/internal/shared"
)

// batchSize is the maximum number of tracks per playlist-add request.
const batchSize = 100

// CandidateSource retrieves candidates for a single (title, artist) query.
// [match.Retriever] satisfies it.
type CandidateSource interface {
	Retrieve(ctx context.Context, title, artist string) []models.Candidate
}

// TrackCacher persists accepted matches. Implementations must tolerate
// duplicate queries; the engine ignores cache errors.
type TrackCacher interface {
	CacheMatch(query models.TrackQuery, match models.MatchResult) error
}

// RunOptions configures a single playlist-population run.
type RunOptions struct {
	Playlist models.PlaylistSpec
	// DryRun searches and reports without creating a playlist.
	DryRun bool
}

// RunResult contains all data from a run.
type RunResult struct {
	Found    []models.MatchResult // Accepted matches, input order
	FoundIDs []string             // Track IDs of accepted matches, input order
	NotFound []models.TrackQuery  // Queries with no acceptable match, input order
	Total    int                  // Total queries processed
	Outcome  *models.PlaylistOutcome
}

// Engine drives the per-track pipeline across an input list and assembles
// the resulting playlist.
type Engine struct {
	source    CandidateSource
	playlists services.PlaylistService
	cache     TrackCacher
	logger    *log.Logger
}

// NewEngine creates an Engine. The cache is optional; the logger defaults to stderr.
func NewEngine(source CandidateSource, playlists services.PlaylistService, cache TrackCacher, logger *log.Logger) *Engine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Engine{
		source:    source,
		playlists: playlists,
		cache:     cache,
		logger:    logger,
	}
}

// sendProgress sends a progress update through the channel without blocking.
func (e *Engine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Run matches every query in input order and, unless opts.DryRun is set,
// assembles the accepted tracks into a playlist.
//
// The returned RunResult is always complete: when playlist creation fails
// the result still carries the found/not-found lists alongside the error.
func (e *Engine) Run(ctx context.Context, queries []models.TrackQuery, opts RunOptions, progress chan<- ProgressUpdate) (*RunResult, error) {
	if e.source == nil {
		return nil, fmt.Errorf("%w: candidate source not initialized", shared.ErrServiceUnavailable)
	}

	total := len(queries)
	result := &RunResult{Total: total}

	for i, q := range queries {
		candidates := e.source.Retrieve(ctx, q.Title, q.Artist)
		m := match.Select(candidates, q.Title, q.Artist)

		if m.Found() {
			result.Found = append(result.Found, m)
			result.FoundIDs = append(result.FoundIDs, m.TrackID)
			e.cacheMatch(q, m)
			e.sendProgress(progress, matchFoundUpdate(i+1, total, m))
		} else {
			result.NotFound = append(result.NotFound, q)
			e.sendProgress(progress, matchMissedUpdate(i+1, total, q))
		}
	}

	if opts.DryRun || len(result.FoundIDs) == 0 {
		return result, nil
	}

	if e.playlists == nil {
		return result, fmt.Errorf("%w: playlist service not initialized", shared.ErrServiceUnavailable)
	}

	e.sendProgress(progress, createPlaylistUpdate(opts.Playlist.Name))

	outcome, err := e.assemble(ctx, result.FoundIDs, opts.Playlist, progress)
	if err != nil {
		return result, fmt.Errorf("%w: %v", shared.ErrPlaylistCreate, err)
	}

	result.Outcome = outcome
	return result, nil
}

// assemble creates the playlist and adds the accepted tracks in consecutive
// batches of at most 100.
//
// Creation failure aborts the operation. A failed batch stops population;
// the outcome still carries the playlist URL and the tracks added so far.
func (e *Engine) assemble(ctx context.Context, trackIDs []string, spec models.PlaylistSpec, progress chan<- ProgressUpdate) (*models.PlaylistOutcome, error) {
	userID, err := e.playlists.CurrentUserID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current user: %w", err)
	}

	ref, err := e.playlists.CreatePlaylist(ctx, userID, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to create playlist: %w", err)
	}

	outcome := &models.PlaylistOutcome{URL: ref.URL}
	totalBatches := (len(trackIDs) + batchSize - 1) / batchSize

	for i := 0; i < len(trackIDs); i += batchSize {
		batch := trackIDs[i:min(i+batchSize, len(trackIDs))]
		batchNum := i/batchSize + 1

		e.sendProgress(progress, addBatchUpdate(batchNum, totalBatches, len(batch)))

		if err := e.playlists.AddTracks(ctx, ref.ID, batch); err != nil {
			e.logger.Warn("batch add failed, stopping population",
				"batch", batchNum, "added", outcome.TracksAdded, "error", err)
			return outcome, nil
		}
		outcome.TracksAdded += len(batch)
	}

	return outcome, nil
}

// cacheMatch persists an accepted match. Errors are logged and ignored so
// caching never disrupts a run.
func (e *Engine) cacheMatch(q models.TrackQuery, m models.MatchResult) {
	if e.cache == nil {
		return
	}
	if err := e.cache.CacheMatch(q, m); err != nil {
		e.logger.Debug("failed to cache match", "title", q.Title, "artist", q.Artist, "error", err)
	}
}
