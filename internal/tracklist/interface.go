// Package tracklist imports human-authored tracklists and turns them
// into sheet records.
package tracklist

import (
	"context"
	"strings"

	"cuetag/internal/domain"
)

// Order controls how the two free-text fields of a track line are
// assigned to artist and title.
type Order int

const (
	ArtistFirst Order = iota
	TitleFirst
)

// OrderFromSource derives the field order from the source's naming
// convention: a name containing "_title_artist." lists titles first.
func OrderFromSource(source string) Order {
	if strings.Contains(source, "_title_artist.") {
		return TitleFirst
	}
	return ArtistFirst
}

// Diagnostics reports what the parser skipped over without failing.
type Diagnostics struct {
	// IgnoredLines counts lines that were neither a title line, blank,
	// nor timestamp-prefixed, e.g. REM directives.
	IgnoredLines int
}

// Importer imports a tracklist from a given source.
type Importer interface {
	Import(ctx context.Context, source string) (*domain.Sheet, Diagnostics, error)
	Name() string
}

// ImporterFor selects an importer by source scheme.
func ImporterFor(source string, order Order) Importer {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return NewURLImporter(order)
	}
	return NewTextImporter(order)
}
