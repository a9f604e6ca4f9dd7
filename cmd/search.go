package main

import (
	"context"
	"fmt"

	"github.com/quornholt/sheetlist/internal/match"
	"github.com/quornholt/sheetlist/internal/shared"
	"github.com/urfave/cli/v3"
)

// scoredRow is the JSON shape for a single scored candidate.
type scoredRow struct {
	TrackID    string  `json:"track_id"`
	Name       string  `json:"name"`
	Artist     string  `json:"artist"`
	Album      string  `json:"album"`
	Popularity int     `json:"popularity"`
	Score      float64 `json:"score"`
	Selected   bool    `json:"selected"`
}

// Search runs the two-pass search for a single (title, artist) query and
// shows every candidate with its score, marking the selected one.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	title := cmd.StringArg("title")
	artist := cmd.StringArg("artist")
	if title == "" || artist == "" {
		return fmt.Errorf("%w: title and artist", shared.ErrMissingArgument)
	}

	svc, err := r.requireSpotify()
	if err != nil {
		return err
	}

	r.logger.Info("searching", "title", title, "artist", artist)

	retriever := match.NewRetriever(svc, r.logger)
	candidates := retriever.Retrieve(ctx, title, artist)
	selected := match.Select(candidates, title, artist)

	rows := make([]scoredRow, 0, len(candidates))
	for _, c := range candidates {
		scored := match.Score(c, title, artist)
		rows = append(rows, scoredRow{
			TrackID:    c.ID,
			Name:       c.Name,
			Artist:     c.Artist,
			Album:      c.Album,
			Popularity: c.Popularity,
			Score:      scored.Score,
			Selected:   selected.Found() && selected.TrackID == c.ID,
		})
	}

	if cmd.Bool("json") {
		return r.writeJSON(rows, cmd.Bool("pretty"))
	}

	if len(rows) == 0 {
		r.writePlain("No candidates found for %q by %s\n", title, artist)
		return nil
	}

	r.writePlainHeader(fmt.Sprintf("Candidates for %q by %s", title, artist))
	for _, row := range rows {
		marker := "  "
		if row.Selected {
			marker = "✓ "
		}
		r.writePlain("%s%6s  %s - %s", marker, shared.FormatScore(row.Score), row.Artist, row.Name)
		if row.Album != "" {
			r.writePlain(" (%s)", row.Album)
		}
		r.writePlain("\n")
	}

	if !selected.Found() {
		r.writePlainln("No candidate scored above the acceptance threshold.")
	}

	return nil
}
