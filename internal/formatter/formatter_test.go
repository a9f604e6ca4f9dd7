package formatter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quornholt/sheetlist/internal/models"
	"github.com/quornholt/sheetlist/internal/tsv"
)

func TestNotFoundCSV(t *testing.T) {
	queries := []models.TrackQuery{
		{Title: "Bohemian Rhapsody", Artist: "Queen"},
		{Title: "Yesterday", Artist: "The Beatles"},
	}

	data, err := NotFoundCSV(queries)
	if err != nil {
		t.Fatalf("NotFoundCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "Title\tArtist" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Bohemian Rhapsody\tQueen" {
		t.Errorf("line 1 = %q", lines[1])
	}

	// The report layout matches the input format, so it parses back.
	parsed, err := tsv.Parse(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("report does not re-parse as input: %v", err)
	}
	if len(parsed) != 2 || parsed[1].Artist != "The Beatles" {
		t.Errorf("re-parsed queries = %+v", parsed)
	}
}

func TestMatchesCSV(t *testing.T) {
	matches := []models.MatchResult{
		{TrackID: "t1", MatchedTitle: "Song", MatchedArtist: "Artist", Score: 79.6},
	}

	data, err := MatchesCSV(matches)
	if err != nil {
		t.Fatalf("MatchesCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "TrackID\tMatchedTitle\tMatchedArtist\tScore" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "t1\tSong\tArtist\t80" {
		t.Errorf("record = %q", lines[1])
	}
}

func TestWriteNotFoundReport(t *testing.T) {
	t.Run("writes to given path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.tsv")
		queries := []models.TrackQuery{{Title: "Song", Artist: "Artist"}}

		written, err := WriteNotFoundReport(queries, path)
		if err != nil {
			t.Fatalf("WriteNotFoundReport() error = %v", err)
		}
		if written != path {
			t.Errorf("returned path = %q, want %q", written, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "Song\tArtist") {
			t.Errorf("report content = %q", data)
		}
	})

	t.Run("defaults path", func(t *testing.T) {
		dir := t.TempDir()
		cwd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatal(err)
		}
		defer os.Chdir(cwd)

		written, err := WriteNotFoundReport(nil, "")
		if err != nil {
			t.Fatalf("WriteNotFoundReport() error = %v", err)
		}
		if written != "not_found.tsv" {
			t.Errorf("returned path = %q, want not_found.tsv", written)
		}
	})
}
