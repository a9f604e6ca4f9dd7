package match

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/quornholt/sheetlist/internal/models"
)

// Markers whose presence in a candidate's combined name/artist/album text
// indicates a non-original recording.
var nonOriginalMarkers = []string{
	"karaoke", "instrumental", "backing track", "cover",
	"tribute", "in the style of", "made famous by",
	"originally performed", "sing along", "minus one",
}

const (
	artistWeight       = 40.0
	titleWeight        = 30.0
	popularityDivisor  = 10.0
	nonOriginalPenalty = 50.0
)

// Score rates how well a candidate matches the expected title and artist.
//
// The penalty applies at most once regardless of how many markers match.
// The result is not clamped and may be negative.
func Score(c models.Candidate, expectedTitle, expectedArtist string) models.ScoredCandidate {
	ratcliff := metrics.NewRatcliffObershelp()

	score := strutil.Similarity(strings.ToLower(expectedArtist), strings.ToLower(c.Artist), ratcliff) * artistWeight
	score += strutil.Similarity(strings.ToLower(expectedTitle), strings.ToLower(c.Name), ratcliff) * titleWeight
	score += float64(c.Popularity) / popularityDivisor

	combined := strings.ToLower(c.Name + " " + c.Artist + " " + c.Album)
	for _, marker := range nonOriginalMarkers {
		if strings.Contains(combined, marker) {
			score -= nonOriginalPenalty
			break
		}
	}

	return models.ScoredCandidate{Candidate: c, Score: score}
}
