package match

import "github.com/quornholt/sheetlist/internal/models"

// Select scores every candidate and returns the highest-scoring one,
// provided its score is strictly greater than zero.
//
// The running best starts at 0 and is only displaced by a strictly greater
// score, so ties keep the earliest-seen candidate and a candidate scoring
// exactly 0 is never accepted. This threshold is what excludes penalized
// non-original recordings and degenerate fuzzy matches even though Score
// itself is unbounded below.
func Select(candidates []models.Candidate, title, artist string) models.MatchResult {
	var best models.ScoredCandidate
	found := false

	for _, c := range candidates {
		scored := Score(c, title, artist)
		if scored.Score > best.Score {
			best = scored
			found = true
		}
	}

	if !found {
		return models.MatchResult{}
	}

	return models.MatchResult{
		TrackID:       best.Candidate.ID,
		Score:         best.Score,
		MatchedTitle:  best.Candidate.Name,
		MatchedArtist: best.Candidate.Artist,
	}
}
