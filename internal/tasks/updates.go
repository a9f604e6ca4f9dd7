package tasks

import (
	"fmt"

	"github.com/quornholt/sheetlist/internal/models"
	"github.com/quornholt/sheetlist/internal/shared"
)

// ProgressUpdate represents a progress event during a run.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	SearchTracks Phase = iota
	CreatePlaylist
	AddTracks
)

func (p Phase) String() string {
	switch p {
	case SearchTracks:
		return "search_tracks"
	case CreatePlaylist:
		return "create_playlist"
	case AddTracks:
		return "add_tracks"
	default:
		return ""
	}
}

func matchFoundUpdate(step, total int, m models.MatchResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SearchTracks,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Found: %q by %s (score: %s)", step, total, m.MatchedTitle, m.MatchedArtist, shared.FormatScore(m.Score)),
		Data:    m,
	}
}

func matchMissedUpdate(step, total int, q models.TrackQuery) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SearchTracks,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] NOT FOUND: %q by %s", step, total, q.Title, q.Artist),
		Data:    q,
	}
}

func createPlaylistUpdate(name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CreatePlaylist,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Creating playlist %q...", name),
	}
}

func addBatchUpdate(step, total, size int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   AddTracks,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Adding batch of %d tracks...", step, total, size),
	}
}
