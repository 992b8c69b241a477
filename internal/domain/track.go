// Package domain holds the records shared by the generation and
// postprocess pipelines.
package domain

import "cuetag/internal/timestamp"

// Track is one track record within a sheet.
type Track struct {
	Number    int
	Title     string
	Performer string

	// Start is set when the track was built from a tracklist.
	Start timestamp.Timestamp

	// RawIndex holds the verbatim INDEX fields when the track was read
	// back from a cue sheet.
	RawIndex []string

	// File is the resolved on-disk path once matching has run.
	File string
}

// StartTimestamp returns the track start, reparsing the raw INDEX
// fields when the track came from a parsed sheet.
func (t *Track) StartTimestamp() (timestamp.Timestamp, error) {
	if len(t.RawIndex) >= 2 {
		return timestamp.Parse(t.RawIndex[1])
	}
	return t.Start, nil
}

// Album carries the sheet-level metadata.
type Album struct {
	Title     string
	Performer string

	// Remarks maps REM keys (GENRE, DATE, ...) to their values.
	Remarks map[string]string

	// File is the audio file named by the sheet's FILE line, if any.
	File string
}

// Sheet is a complete disc description: album metadata plus the
// ordered tracks it owns.
type Sheet struct {
	Album  Album
	Tracks []*Track
}
