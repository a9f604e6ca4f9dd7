// package tsv parses tab-separated track lists into queries for the
// matching engine.
//
// The expected format is a header row followed by one row per track with
// at least two columns: Title and Artist. Extra columns are ignored.
package tsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/quornholt/sheetlist/internal/models"
	"github.com/quornholt/sheetlist/internal/shared"
)

// ParseFile reads and parses a TSV file from disk.
func ParseFile(path string) ([]models.TrackQuery, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: file not found: %s", shared.ErrInvalidInput, path)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads TSV rows and returns one TrackQuery per data row, in file order.
//
// Every returned query has a non-empty, whitespace-trimmed title and artist.
// Empty input, a header-only file, a short row, or a blank field is a fatal
// input error carrying the offending line number.
func Parse(r io.Reader) ([]models.TrackQuery, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read TSV: %v", shared.ErrInvalidInput, err)
	}

	if len(rows) <= 1 {
		return nil, fmt.Errorf("%w: input is empty or contains only a header row", shared.ErrInvalidInput)
	}

	queries := make([]models.TrackQuery, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2

		if len(row) < 2 {
			return nil, fmt.Errorf("%w: invalid row at line %d: expected at least 2 columns (Title, Artist)", shared.ErrInvalidInput, line)
		}

		title := strings.TrimSpace(row[0])
		artist := strings.TrimSpace(row[1])

		if title == "" || artist == "" {
			return nil, fmt.Errorf("%w: empty title or artist at line %d", shared.ErrInvalidInput, line)
		}

		queries = append(queries, models.TrackQuery{Title: title, Artist: artist})
	}

	return queries, nil
}
