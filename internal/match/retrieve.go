package match

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quornholt/sheetlist/internal/models"
	"github.com/quornholt/sheetlist/internal/shared"
)

// searchLimit is the number of results requested per query pass.
const searchLimit = 10

// Searcher is the single catalog capability the retriever depends on.
// [services.SpotifyService] satisfies it.
type Searcher interface {
	SearchTracks(ctx context.Context, query string, limit int) ([]models.Candidate, error)
}

// Retriever executes the two-pass candidate search for a single query.
type Retriever struct {
	searcher Searcher
	logger   *log.Logger
}

// NewRetriever creates a Retriever that reports per-query failures to the
// given logger. The logger defaults to stderr.
func NewRetriever(searcher Searcher, logger *log.Logger) *Retriever {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Retriever{searcher: searcher, logger: logger}
}

// Retrieve issues the field-scoped query and then the free-text fallback,
// returning candidates in first-seen order, deduplicated by track ID.
//
// A failing query is logged and contributes no candidates; the other query
// still runs. When both queries fail or return nothing, the result is empty.
func (r *Retriever) Retrieve(ctx context.Context, title, artist string) []models.Candidate {
	queries := []string{
		fmt.Sprintf("track:%s artist:%s", title, artist),
		fmt.Sprintf("%s %s", title, artist),
	}

	var candidates []models.Candidate
	seen := make(map[string]struct{})

	for _, query := range queries {
		results, err := r.searcher.SearchTracks(ctx, query, searchLimit)
		if err != nil {
			r.logger.Warn("search query failed", "query", query, "error", err)
			continue
		}
		for _, c := range results {
			if _, ok := seen[c.ID]; ok {
				continue
			}
			seen[c.ID] = struct{}{}
			candidates = append(candidates, c)
		}
	}

	return candidates
}
