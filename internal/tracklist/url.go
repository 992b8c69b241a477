package tracklist

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"cuetag/internal/domain"
)

// URLImporter fetches an http(s) page and feeds its visible text lines
// to the plain-text parser. It covers tracklists published as a page
// rather than saved to a local file.
type URLImporter struct {
	client *http.Client
	order  Order
}

func NewURLImporter(order Order) *URLImporter {
	return &URLImporter{
		client: &http.Client{Timeout: 30 * time.Second},
		order:  order,
	}
}

func (u *URLImporter) Name() string {
	return "url"
}

func (u *URLImporter) Import(ctx context.Context, source string) (*domain.Sheet, Diagnostics, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, Diagnostics{}, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, Diagnostics{}, fmt.Errorf("failed to fetch tracklist: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, Diagnostics{}, fmt.Errorf("failed to fetch tracklist: %s returned %s", source, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, Diagnostics{}, fmt.Errorf("failed to parse page: %w", err)
	}

	doc.Find("script, style, noscript").Remove()
	text := doc.Find("body").Text()

	// Page text carries layout indentation that a saved tracklist
	// would not have.
	var lines []string
	for _, line := range splitLines(text) {
		lines = append(lines, strings.TrimSpace(line))
	}

	slog.Debug("Fetched tracklist page", "url", source, "lines", len(lines))

	sheet, diag, err := ParseLines(lines, u.order)
	if err != nil {
		return nil, diag, err
	}
	if len(sheet.Tracks) == 0 {
		return nil, diag, fmt.Errorf("no tracks found at %s", source)
	}
	return sheet, diag, nil
}
