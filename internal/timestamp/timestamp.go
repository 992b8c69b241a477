// Package timestamp parses the colon-separated timecodes used by
// tracklists and cue sheet INDEX lines.
package timestamp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Timestamp is a track start offset. Three-field timecodes fold hours
// into minutes, so Minutes is unbounded while Seconds stays in [0,59].
type Timestamp struct {
	Minutes int
	Seconds int
}

// String renders the timestamp as zero-padded MM:SS.
func (t Timestamp) String() string {
	return fmt.Sprintf("%02d:%02d", t.Minutes, t.Seconds)
}

// IsTimestampLike reports whether every character of token is a digit
// or ':'. It decides whether a tracklist line begins a track entry.
func IsTimestampLike(token string) bool {
	for _, r := range token {
		if r >= '0' && r <= '9' || r == ':' {
			continue
		}
		return false
	}
	return true
}

// Parse converts "MM:SS" or "H:MM:SS" into a Timestamp. Malformed
// input is rejected with ErrInvalidTimestamp, never coerced.
func Parse(text string) (Timestamp, error) {
	if !IsTimestampLike(text) {
		return Timestamp{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, text)
	}

	parts := strings.Split(text, ":")
	fields := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Timestamp{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, text)
		}
		fields[i] = n
	}

	var ts Timestamp
	switch len(fields) {
	case 2:
		ts = Timestamp{Minutes: fields[0], Seconds: fields[1]}
	case 3:
		ts = Timestamp{Minutes: fields[0]*60 + fields[1], Seconds: fields[2]}
	default:
		return Timestamp{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, text)
	}

	if ts.Seconds > 59 {
		return Timestamp{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, text)
	}
	return ts, nil
}
