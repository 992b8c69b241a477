package tracklist

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"cuetag/internal/domain"
	"cuetag/internal/timestamp"
)

// TextImporter parses the plain-text tracklist format:
//
//	# Title: <album title>
//	00:00 ARTIST - TRACKTITLE
type TextImporter struct {
	order Order
}

func NewTextImporter(order Order) *TextImporter {
	return &TextImporter{order: order}
}

func (t *TextImporter) Name() string {
	return "text"
}

func (t *TextImporter) Import(ctx context.Context, source string) (*domain.Sheet, Diagnostics, error) {
	select {
	case <-ctx.Done():
		return nil, Diagnostics{}, ctx.Err()
	default:
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, Diagnostics{}, fmt.Errorf("failed to read tracklist: %w", err)
	}

	sheet, diag, err := ParseLines(splitLines(string(data)), t.order)
	if err != nil {
		return nil, diag, err
	}
	if len(sheet.Tracks) == 0 {
		return nil, diag, fmt.Errorf("no tracks found in %s", source)
	}
	return sheet, diag, nil
}

// ParseLines consumes newline-stripped tracklist lines and produces
// the sheet records. Track numbers are assigned sequentially from 1 in
// parse order; a malformed timestamp aborts the whole parse.
func ParseLines(lines []string, order Order) (*domain.Sheet, Diagnostics, error) {
	sheet := &domain.Sheet{Album: domain.Album{Remarks: map[string]string{}}}
	var diag Diagnostics
	number := 1

	for _, line := range lines {
		if strings.HasPrefix(line, "Title:") || strings.HasPrefix(line, "# Title:") {
			if i := strings.Index(line, "Title: "); i >= 0 {
				sheet.Album.Title = line[i+len("Title: "):]
			}
			continue
		}

		if line == "" {
			continue
		}

		token, _, _ := strings.Cut(line, " ")
		if !timestamp.IsTimestampLike(token) {
			slog.Debug("Ignoring tracklist line", "line", line)
			diag.IgnoredLines++
			continue
		}

		ts, err := timestamp.Parse(token)
		if err != nil {
			return nil, diag, err
		}

		first, second := splitTrackFields(line)
		artist, title := first, second
		if order == TitleFirst {
			artist, title = second, first
		}

		sheet.Tracks = append(sheet.Tracks, &domain.Track{
			Number:    number,
			Title:     title,
			Performer: artist,
			Start:     ts,
		})
		number++
	}

	return sheet, diag, nil
}

// splitTrackFields splits a track line on " - ". The left field is
// what remains after the trailing seconds of the timestamp prefix; the
// right field defaults to "UNKNOWN" when the separator is absent.
func splitTrackFields(line string) (string, string) {
	parts := strings.Split(line, " - ")

	first := parts[0]
	if i := strings.LastIndex(first, ":"); i >= 0 {
		first = first[i+1:]
	}
	if len(first) >= 3 {
		first = first[3:]
	} else {
		first = ""
	}

	second := "UNKNOWN"
	if len(parts) > 1 {
		second = parts[1]
	}
	return first, second
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
