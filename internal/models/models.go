// package models defines the value objects passed between the matching
// engine, the Spotify client, and the CLI.
package models

import (
	"fmt"
	"time"
)

// TrackQuery is a single (title, artist) reference from the input file.
// Both fields are non-empty and whitespace-trimmed by the TSV parser.
type TrackQuery struct {
	Title  string
	Artist string
}

// Candidate is a catalog search result projected down to the fields the
// scorer needs. Fields missing from the raw payload default to their zero
// values (empty artist/album, popularity 0).
type Candidate struct {
	ID         string
	Name       string
	Artist     string
	Album      string
	Popularity int
}

// ScoredCandidate pairs a Candidate with its computed match score.
type ScoredCandidate struct {
	Candidate Candidate
	Score     float64
}

// MatchResult is the outcome of matching one TrackQuery. The zero value
// (empty TrackID, score 0) means no acceptable match was found; absence is
// not an error.
type MatchResult struct {
	TrackID       string
	Score         float64
	MatchedTitle  string
	MatchedArtist string
}

// Found reports whether the query matched an acceptable track.
func (m MatchResult) Found() bool { return m.TrackID != "" }

// PlaylistSpec describes the playlist to create for accepted tracks.
type PlaylistSpec struct {
	Name        string
	Public      bool
	Description string
}

// PlaylistOutcome reports the result of creating and populating a playlist.
//
// URL is empty when creation itself failed. TracksAdded may be smaller than
// the number of accepted tracks when a batch add failed part way through;
// in that case the playlist exists and URL is still set.
type PlaylistOutcome struct {
	URL         string
	TracksAdded int
}

// PersistedMatch is an accepted match recorded in the local cache database.
type PersistedMatch struct {
	ID            string
	Title         string
	Artist        string
	TrackID       string
	MatchedTitle  string
	MatchedArtist string
	Score         float64
	CreatedAt     time.Time
}

// Validate checks that the persisted match carries the fields the cache
// schema requires.
func (p *PersistedMatch) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("match ID is required")
	}
	if p.Title == "" || p.Artist == "" {
		return fmt.Errorf("query title and artist are required")
	}
	if p.TrackID == "" {
		return fmt.Errorf("track ID is required")
	}
	return nil
}
