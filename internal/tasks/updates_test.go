package tasks

import (
	"testing"

	"github.com/quornholt/sheetlist/internal/models"
)

func TestProgressMessages(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		m := models.MatchResult{TrackID: "t1", MatchedTitle: "Song", MatchedArtist: "Artist", Score: 79.6}
		u := matchFoundUpdate(3, 10, m)

		want := `[3/10] Found: "Song" by Artist (score: 80)`
		if u.Message != want {
			t.Errorf("Message = %q, want %q", u.Message, want)
		}
		if u.Phase != SearchTracks || u.Step != 3 || u.Total != 10 {
			t.Errorf("update = %+v", u)
		}
		if _, ok := u.Data.(models.MatchResult); !ok {
			t.Errorf("Data = %T, want MatchResult", u.Data)
		}
	})

	t.Run("missed", func(t *testing.T) {
		q := models.TrackQuery{Title: "Song", Artist: "Artist"}
		u := matchMissedUpdate(4, 10, q)

		want := `[4/10] NOT FOUND: "Song" by Artist`
		if u.Message != want {
			t.Errorf("Message = %q, want %q", u.Message, want)
		}
		if _, ok := u.Data.(models.TrackQuery); !ok {
			t.Errorf("Data = %T, want TrackQuery", u.Data)
		}
	})
}

func TestPhaseString(t *testing.T) {
	tc := []struct {
		phase Phase
		want  string
	}{
		{SearchTracks, "search_tracks"},
		{CreatePlaylist, "create_playlist"},
		{AddTracks, "add_tracks"},
		{Phase(99), ""},
	}
	for _, tt := range tc {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
