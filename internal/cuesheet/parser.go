package cuesheet

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"

	"cuetag/internal/domain"
)

var quotedValue = regexp.MustCompile(`"([^"]+)"`)

// Diagnostics reports what the parser skipped over without failing.
type Diagnostics struct {
	IgnoredLines int
}

// ParseFile reads and parses a sheet from disk. Only the read can
// fail; the parse itself is best-effort.
func ParseFile(path string) (*domain.Sheet, Diagnostics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Diagnostics{}, fmt.Errorf("failed to read cue sheet: %w", err)
	}
	sheet, diag := Parse(strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n"))
	return sheet, diag, nil
}

// Parse reconstructs a sheet from its lines. Directives before the
// first TRACK apply to the album; later ones apply to the open track.
// Unknown or malformed lines are counted and skipped, never fatal.
func Parse(lines []string) (*domain.Sheet, Diagnostics) {
	sheet := &domain.Sheet{Album: domain.Album{Remarks: map[string]string{}}}
	var diag Diagnostics
	var current *domain.Track

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		parts := tokenize(line)
		if len(parts) == 0 {
			continue
		}

		switch strings.ToUpper(parts[0]) {
		case "REM":
			if len(parts) >= 3 {
				sheet.Album.Remarks[strings.ToUpper(parts[1])] = strings.Trim(parts[2], `"`)
			}

		case "PERFORMER":
			if current == nil {
				sheet.Album.Performer = valueAfterKeyword(line)
			} else {
				current.Performer = valueAfterKeyword(line)
			}

		case "TITLE":
			if current == nil {
				sheet.Album.Title = valueAfterKeyword(line)
			} else {
				current.Title = valueAfterKeyword(line)
			}

		case "FILE":
			if m := quotedValue.FindStringSubmatch(line); m != nil {
				sheet.Album.File = m[1]
			} else if len(parts) > 1 {
				sheet.Album.File = strings.Trim(parts[1], `"`)
			}

		case "TRACK":
			number := 0
			if len(parts) > 1 {
				n, err := strconv.Atoi(parts[1])
				if err != nil {
					slog.Debug("Ignoring malformed TRACK line", "line", line)
					diag.IgnoredLines++
					continue
				}
				number = n
			}
			if current != nil {
				sheet.Tracks = append(sheet.Tracks, current)
			}
			current = &domain.Track{Number: number}

		case "INDEX":
			if current != nil {
				current.RawIndex = parts[1:]
			}

		default:
			slog.Debug("Ignoring unknown cue sheet line", "line", line)
			diag.IgnoredLines++
		}
	}

	if current != nil {
		sheet.Tracks = append(sheet.Tracks, current)
	}

	return sheet, diag
}

// valueAfterKeyword returns the line's text after the first space,
// with surrounding whitespace and quotes stripped.
func valueAfterKeyword(line string) string {
	_, rest, _ := strings.Cut(line, " ")
	return strings.Trim(strings.TrimSpace(rest), `"`)
}
