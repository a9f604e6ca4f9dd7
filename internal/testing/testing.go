// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"fmt"

	"github.com/quornholt/sheetlist/internal/models"
	"github.com/quornholt/sheetlist/internal/services"
)

// MockCatalog is a scripted test double for the Spotify service. It records
// issued queries and playlist calls and returns canned responses.
type MockCatalog struct {
	// Results maps a search query string to the candidates it returns.
	Results map[string][]models.Candidate
	// SearchErrs maps a query string to an error for that query.
	SearchErrs map[string]error

	UserID          string
	UserErr         error
	CreateErr       error
	AddErrs         map[int]error // batch number (1-based) -> error
	PlaylistURL     string
	SearchedQueries []string
	AddedBatches    [][]string
}

// NewMockCatalog creates a MockCatalog with an empty script.
func NewMockCatalog() *MockCatalog {
	return &MockCatalog{
		Results:     map[string][]models.Candidate{},
		SearchErrs:  map[string]error{},
		AddErrs:     map[int]error{},
		UserID:      "testuser",
		PlaylistURL: "https://open.spotify.com/playlist/pl1",
	}
}

func (m *MockCatalog) SearchTracks(ctx context.Context, query string, limit int) ([]models.Candidate, error) {
	m.SearchedQueries = append(m.SearchedQueries, query)
	if err, ok := m.SearchErrs[query]; ok {
		return nil, err
	}
	return m.Results[query], nil
}

func (m *MockCatalog) CurrentUserID(ctx context.Context) (string, error) {
	if m.UserErr != nil {
		return "", m.UserErr
	}
	return m.UserID, nil
}

func (m *MockCatalog) CreatePlaylist(ctx context.Context, userID string, spec models.PlaylistSpec) (*services.PlaylistRef, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	return &services.PlaylistRef{ID: "pl1", URL: m.PlaylistURL}, nil
}

func (m *MockCatalog) AddTracks(ctx context.Context, playlistID string, trackIDs []string) error {
	batch := len(m.AddedBatches) + 1
	if err, ok := m.AddErrs[batch]; ok {
		return err
	}
	m.AddedBatches = append(m.AddedBatches, trackIDs)
	return nil
}

// Candidate builds a plain candidate with the given popularity.
func Candidate(id, name, artist, album string, popularity int) models.Candidate {
	return models.Candidate{ID: id, Name: name, Artist: artist, Album: album, Popularity: popularity}
}

// FieldQuery renders the field-scoped query the retriever issues first.
func FieldQuery(title, artist string) string {
	return fmt.Sprintf("track:%s artist:%s", title, artist)
}

// FreeQuery renders the free-text fallback query.
func FreeQuery(title, artist string) string {
	return fmt.Sprintf("%s %s", title, artist)
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}
