package tracklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderFromSource(t *testing.T) {
	tests := []struct {
		source   string
		expected Order
	}{
		{"tracklist.txt", ArtistFirst},
		{"tracklist_title_artist.txt", TitleFirst},
		{"/music/sets/tracklist_title_artist.txt", TitleFirst},
		{"tracklist_title_artist", ArtistFirst},
		{"https://example.com/sets/tracklist_title_artist.html", TitleFirst},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.expected, OrderFromSource(tt.source))
		})
	}
}

func TestImporterFor(t *testing.T) {
	assert.Equal(t, "text", ImporterFor("tracklist.txt", ArtistFirst).Name())
	assert.Equal(t, "url", ImporterFor("https://example.com/tracklist", ArtistFirst).Name())
	assert.Equal(t, "url", ImporterFor("http://example.com/tracklist", ArtistFirst).Name())
}
