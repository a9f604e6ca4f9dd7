// package repositories provides the persistence layer for the local match
// cache.
//
// Accepted matches are recorded during runs so that repeated lists can be
// inspected later (`sheetlist cache list`). The cache is advisory: writes
// happen silently during runs and failures never disrupt a transfer.
package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/quornholt/sheetlist/internal/models"
	"github.com/quornholt/sheetlist/internal/shared"
)

// MatchRepository persists accepted matches from playlist runs.
type MatchRepository struct {
	db *sql.DB
}

// NewMatchRepository creates a new MatchRepository with the given database connection.
func NewMatchRepository(db *sql.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// Create inserts a new [models.PersistedMatch] with a generated ID.
func (r *MatchRepository) Create(m *models.PersistedMatch) error {
	if m.ID == "" {
		m.ID = shared.GenerateID()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	if err := m.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO matches (id, title, artist, track_id, matched_title, matched_artist, score, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		m.ID,
		m.Title,
		m.Artist,
		m.TrackID,
		m.MatchedTitle,
		m.MatchedArtist,
		m.Score,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert match: %w", err)
	}

	return nil
}

// GetByQuery retrieves the cached match for a (title, artist) pair.
// Returns sql.ErrNoRows wrapped when no match is cached.
func (r *MatchRepository) GetByQuery(title, artist string) (*models.PersistedMatch, error) {
	query := `
		SELECT id, title, artist, track_id, matched_title, matched_artist, score, created_at
		FROM matches
		WHERE title = ? AND artist = ?
	`

	return r.scanOne(r.db.QueryRow(query, title, artist))
}

// List returns cached matches, most recent first. A non-positive limit
// returns everything.
func (r *MatchRepository) List(limit int) ([]*models.PersistedMatch, error) {
	query := `
		SELECT id, title, artist, track_id, matched_title, matched_artist, score, created_at
		FROM matches
		ORDER BY created_at DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var matches []*models.PersistedMatch
	for rows.Next() {
		var m models.PersistedMatch
		if err := rows.Scan(&m.ID, &m.Title, &m.Artist, &m.TrackID, &m.MatchedTitle, &m.MatchedArtist, &m.Score, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, &m)
	}

	return matches, rows.Err()
}

// Count returns the number of cached matches.
func (r *MatchRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM matches").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return count, nil
}

// Clear removes every cached match.
func (r *MatchRepository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("failed to clear matches: %w", err)
	}
	return nil
}

func (r *MatchRepository) scanOne(row *sql.Row) (*models.PersistedMatch, error) {
	var m models.PersistedMatch
	err := row.Scan(&m.ID, &m.Title, &m.Artist, &m.TrackID, &m.MatchedTitle, &m.MatchedArtist, &m.Score, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan match: %w", err)
	}
	return &m, nil
}

// MatchCacheAdapter implements tasks.TrackCacher over MatchRepository.
//
// Duplicate queries are silently ignored (UNIQUE constraint on title+artist),
// so re-running the same list never fails a transfer.
type MatchCacheAdapter struct {
	repo *MatchRepository
}

// NewMatchCacheAdapter creates a new MatchCacheAdapter with the given repository.
func NewMatchCacheAdapter(repo *MatchRepository) *MatchCacheAdapter {
	return &MatchCacheAdapter{repo: repo}
}

// CacheMatch records an accepted match. Returns nil when the query is
// already cached; only actual failures surface as errors.
func (a *MatchCacheAdapter) CacheMatch(q models.TrackQuery, m models.MatchResult) error {
	existing, err := a.repo.GetByQuery(q.Title, q.Artist)
	if err == nil && existing != nil {
		return nil
	}

	persisted := &models.PersistedMatch{
		Title:         q.Title,
		Artist:        q.Artist,
		TrackID:       m.TrackID,
		MatchedTitle:  m.MatchedTitle,
		MatchedArtist: m.MatchedArtist,
		Score:         m.Score,
	}

	if err := a.repo.Create(persisted); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil
		}
		return fmt.Errorf("failed to cache match: %w", err)
	}

	return nil
}
