package match

import (
	"math"
	"testing"

	"github.com/quornholt/sheetlist/internal/models"
)

func candidate(id, name, artist, album string, popularity int) models.Candidate {
	return models.Candidate{ID: id, Name: name, Artist: artist, Album: album, Popularity: popularity}
}

func TestScore(t *testing.T) {
	t.Run("exact match with full popularity", func(t *testing.T) {
		c := candidate("t1", "Bohemian Rhapsody", "Queen", "A Night at the Opera", 100)
		got := Score(c, "Bohemian Rhapsody", "Queen")
		if math.Abs(got.Score-80.0) > 0.1 {
			t.Errorf("Score() = %v, want ~80.0", got.Score)
		}
	})

	t.Run("exact match with zero popularity", func(t *testing.T) {
		c := candidate("t1", "Bohemian Rhapsody", "Queen", "A Night at the Opera", 0)
		got := Score(c, "Bohemian Rhapsody", "Queen")
		if math.Abs(got.Score-70.0) > 0.1 {
			t.Errorf("Score() = %v, want ~70.0", got.Score)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		lower := Score(candidate("t1", "bohemian rhapsody", "queen", "", 50), "Bohemian Rhapsody", "Queen")
		upper := Score(candidate("t1", "BOHEMIAN RHAPSODY", "QUEEN", "", 50), "Bohemian Rhapsody", "Queen")
		if lower.Score != upper.Score {
			t.Errorf("case should not affect score: %v != %v", lower.Score, upper.Score)
		}
	})

	t.Run("penalty applies exactly once", func(t *testing.T) {
		clean := Score(candidate("t1", "Bohemian Rhapsody", "Queen", "Greatest Hits", 80), "Bohemian Rhapsody", "Queen")

		// Three markers in one candidate; the deduction must still be 50.
		marked := Score(candidate("t2", "Bohemian Rhapsody (Karaoke Instrumental)", "Queen", "Karaoke Cover Hits", 80), "Bohemian Rhapsody", "Queen")
		cleanMarked := Score(candidate("t2", "Bohemian Rhapsody (Karaoke Instrumental)", "Queen", "Greatest Hits", 80), "Bohemian Rhapsody", "Queen")
		if marked.Score != cleanMarked.Score {
			t.Errorf("extra markers changed the score: %v != %v", marked.Score, cleanMarked.Score)
		}

		single := Score(candidate("t3", "Bohemian Rhapsody", "Queen", "Karaoke Hits", 80), "Bohemian Rhapsody", "Queen")
		if math.Abs((clean.Score-single.Score)-50.0) > 0.001 {
			t.Errorf("penalty = %v, want 50.0", clean.Score-single.Score)
		}
	})

	t.Run("marker detection spans title artist and album", func(t *testing.T) {
		base := Score(candidate("t1", "My Song", "Band", "Album", 50), "My Song", "Band")
		tc := []struct {
			name string
			c    models.Candidate
		}{
			{"marker in title", candidate("t1", "My Song (Instrumental)", "Band", "Album", 50)},
			{"marker in artist", candidate("t1", "My Song", "Band Tribute", "Album", 50)},
			{"marker in album", candidate("t1", "My Song", "Band", "Karaoke Album", 50)},
		}
		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				got := Score(tt.c, "My Song", "Band")
				if got.Score >= base.Score {
					t.Errorf("Score() = %v, want below unpenalized %v", got.Score, base.Score)
				}
			})
		}
	})

	t.Run("score can go negative", func(t *testing.T) {
		c := candidate("t1", "Karaoke Version", "Backing Tracks Inc", "Karaoke Classics", 0)
		got := Score(c, "Completely Different", "Someone Else")
		if got.Score >= 0 {
			t.Errorf("Score() = %v, want negative", got.Score)
		}
	})

	t.Run("poor match scores below good match", func(t *testing.T) {
		good := Score(candidate("t1", "Yesterday", "The Beatles", "Help!", 90), "Yesterday", "The Beatles")
		poor := Score(candidate("t2", "Yesterday Once More", "The Carpenters", "Now & Then", 90), "Yesterday", "The Beatles")
		if poor.Score >= good.Score {
			t.Errorf("poor match %v should score below good match %v", poor.Score, good.Score)
		}
	})
}
