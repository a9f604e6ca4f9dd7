// package formatter exports run reports to CSV and plain text
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/quornholt/sheetlist/internal/models"
	"github.com/quornholt/sheetlist/internal/shared"
)

// NotFoundCSV converts the not-found list to CSV with Title and Artist
// columns, matching the input file layout so it can be re-run directly.
func NotFoundCSV(queries []models.TrackQuery) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Comma = '\t'

	if err := writer.Write([]string{"Title", "Artist"}); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for _, q := range queries {
		if err := writer.Write([]string{q.Title, q.Artist}); err != nil {
			return nil, fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// MatchesCSV converts accepted matches to CSV with the matched track's
// identifier, name, artist, and score.
func MatchesCSV(matches []models.MatchResult) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Comma = '\t'

	if err := writer.Write([]string{"TrackID", "MatchedTitle", "MatchedArtist", "Score"}); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for _, m := range matches {
		record := []string{m.TrackID, m.MatchedTitle, m.MatchedArtist, shared.FormatScore(m.Score)}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteNotFoundReport writes the not-found list as a TSV file.
//
// Defaults to "not_found.tsv" when no path is given; returns the path written.
func WriteNotFoundReport(queries []models.TrackQuery, path string) (string, error) {
	if path == "" {
		path = "not_found.tsv"
	}

	data, err := NotFoundCSV(queries)
	if err != nil {
		return "", fmt.Errorf("failed to generate report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	return path, nil
}
