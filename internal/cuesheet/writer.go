// Package cuesheet renders and parses the disc-description sheet
// format.
package cuesheet

import (
	"fmt"
	"strings"

	"cuetag/internal/domain"
)

// Write renders the sheet into its canonical text form: a TITLE line
// when the album title is set, then four lines per track.
func Write(sheet *domain.Sheet) string {
	var b strings.Builder

	if sheet.Album.Title != "" {
		fmt.Fprintf(&b, "TITLE \"%s\"\n", sheet.Album.Title)
	}

	for _, t := range sheet.Tracks {
		fmt.Fprintf(&b, "  TRACK %02d AUDIO\n", t.Number)
		fmt.Fprintf(&b, "    TITLE \"%s\"\n", t.Title)
		fmt.Fprintf(&b, "    PERFORMER \"%s\"\n", t.Performer)
		fmt.Fprintf(&b, "    INDEX 01 %02d:%02d\n", t.Start.Minutes, t.Start.Seconds)
	}

	return b.String()
}
