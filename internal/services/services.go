// package services contains the Spotify Web API client used for catalog
// search and playlist assembly.
package services

import (
	"context"
	"fmt"

	"github.com/quornholt/sheetlist/internal/models"
	"golang.org/x/oauth2"
)

// SearchService issues catalog search queries and projects raw results into candidates.
type SearchService interface {
	// SearchTracks runs a single track search, returning up to limit candidates.
	SearchTracks(ctx context.Context, query string, limit int) ([]models.Candidate, error)
}

// PlaylistService creates and populates playlists for the authenticated user.
type PlaylistService interface {
	// CurrentUserID resolves the authenticated user's identifier.
	CurrentUserID(ctx context.Context) (string, error)

	// CreatePlaylist creates an empty playlist owned by userID.
	CreatePlaylist(ctx context.Context, userID string, spec models.PlaylistSpec) (*PlaylistRef, error)

	// AddTracks appends a batch of at most 100 track IDs to the playlist.
	AddTracks(ctx context.Context, playlistID string, trackIDs []string) error
}

// OAuthService exposes the pieces of the OAuth2 authorization code flow the
// auth command needs.
type OAuthService interface {
	GetAuthURL(state string) string
	OAuthConfig() *oauth2.Config
	Authenticate(ctx context.Context, credentials map[string]string) error
}

// PlaylistRef identifies a created playlist and its shareable URL.
type PlaylistRef struct {
	ID  string
	URL string
}

// APIError is an error response from the Spotify Web API, distinguished by
// HTTP status. Callers switch on StatusCode rather than error identity.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("spotify API error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("spotify API error: status %d: %s", e.StatusCode, e.Message)
}
