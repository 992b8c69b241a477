// Package postprocess reconciles a cue sheet against a directory of
// split audio files and restores per-track metadata through the
// transcoder.
package postprocess

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"

	"cuetag/internal/audio"
	"cuetag/internal/cuesheet"
	"cuetag/internal/domain"
	"cuetag/internal/matcher"
	"cuetag/internal/storage"
)

// Options controls one postprocess run.
type Options struct {
	SheetPath    string
	TracksDir    string
	Pattern      string
	OutputFormat string
	DryRun       bool
}

// Summary reports what a run did. Per-track failures are counted, not
// propagated.
type Summary struct {
	Total        int
	Tagged       int
	Skipped      int
	IgnoredLines int
}

type Processor struct {
	files         storage.Lister
	transcoder    audio.Transcoder
	fuzzy         bool
	fuzzyDistance int
}

// Option configures a Processor.
type Option func(*Processor)

// WithFuzzyMatching enables the levenshtein title strategy with the
// given maximum edit distance.
func WithFuzzyMatching(maxDistance int) Option {
	return func(p *Processor) {
		p.fuzzy = true
		p.fuzzyDistance = maxDistance
	}
}

func New(files storage.Lister, transcoder audio.Transcoder, opts ...Option) *Processor {
	p := &Processor{files: files, transcoder: transcoder}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run parses the sheet, resolves each track to a candidate file and
// rewrites it with embedded tags. A sheet that cannot be read is
// fatal; an unresolved or failing track is logged and skipped.
func (p *Processor) Run(ctx context.Context, opts Options) (Summary, error) {
	sheet, diag, err := cuesheet.ParseFile(opts.SheetPath)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Total: len(sheet.Tracks), IgnoredLines: diag.IgnoredLines}

	tracksDir := opts.TracksDir
	if tracksDir == "" {
		tracksDir = "."
	}
	pattern := opts.Pattern
	if pattern == "" {
		pattern = "*.*"
	}

	slog.Info("Parsed cue sheet",
		"album", sheet.Album.Title,
		"performer", sheet.Album.Performer,
		"tracks", len(sheet.Tracks),
		"dir", tracksDir,
		"pattern", pattern,
	)

	primary, err := p.files.List(tracksDir, pattern)
	if err != nil {
		slog.Warn("Could not list tracks directory", "dir", tracksDir, "error", err)
	}

	// The splitting tool is often pointed at a tracks/ subdirectory
	// next to the sheet.
	var fallback []string
	fallbackLoaded := false
	loadFallback := func() []string {
		if !fallbackLoaded {
			fallbackLoaded = true
			dir := filepath.Join(filepath.Dir(opts.SheetPath), "tracks")
			fallback, err = p.files.List(dir, pattern)
			if err != nil {
				slog.Debug("No fallback tracks directory", "dir", dir, "error", err)
			}
		}
		return fallback
	}

	m := matcher.New(p.matcherOptions(sheet)...)

	bar := progressbar.NewOptions(
		len(sheet.Tracks),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		// progressbar.ThemeASCII is not available before v3.16.0 (which
		// requires Go 1.22); this literal is identical to its definition.
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: ".",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionFullWidth(),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan][1/1][reset] Tagging tracks..."),
	)

	for _, track := range sheet.Tracks {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		if err := p.processTrack(ctx, m, sheet, track, primary, loadFallback, opts); err != nil {
			slog.Warn("Skipping track", "track", track.Number, "error", err)
			summary.Skipped++
		} else {
			summary.Tagged++
		}
		bar.Add(1)
	}

	return summary, nil
}

func (p *Processor) matcherOptions(sheet *domain.Sheet) []matcher.Option {
	if !p.fuzzy {
		return nil
	}
	titles := make(map[int]string, len(sheet.Tracks))
	for _, t := range sheet.Tracks {
		titles[t.Number] = t.Title
	}
	return []matcher.Option{matcher.WithFuzzyTitles(titles, p.fuzzyDistance)}
}

func (p *Processor) processTrack(
	ctx context.Context,
	m *matcher.Matcher,
	sheet *domain.Sheet,
	track *domain.Track,
	primary []string,
	loadFallback func() []string,
	opts Options,
) error {
	title := track.Title
	if title == "" {
		title = fmt.Sprintf("Track %d", track.Number)
	}
	performer := track.Performer
	if performer == "" {
		performer = sheet.Album.Performer
	}

	source, err := m.Resolve(track.Number, primary)
	if err != nil {
		source, err = m.Resolve(track.Number, loadFallback())
	}
	if err != nil {
		return fmt.Errorf("no file found for %q: %w", title, err)
	}
	track.File = source
	slog.Debug("Resolved track file", "track", track.Number, "file", source)

	destination := p.destinationPath(source, track.Number, title, opts.OutputFormat)
	tags := buildTags(sheet, track, title, performer)

	slog.Info("Will write",
		"output", filepath.Base(destination),
		"title", title,
		"artist", performer,
		"track", tags["track"],
	)
	if opts.DryRun {
		return nil
	}

	params := audio.TagParams{InputPath: source, OutputPath: destination, Tags: tags}
	if err := p.transcoder.Transcode(ctx, params); err != nil {
		if ctx.Err() != nil {
			return err
		}
		slog.Warn("Stream copy failed, retrying with re-encode", "track", track.Number, "error", err)
		params.Reencode = true
		if err := p.transcoder.Transcode(ctx, params); err != nil {
			return fmt.Errorf("transcode failed: %w", err)
		}
	}

	if p.files.Exists(destination) {
		slog.Info("Wrote track", "path", destination)
	}
	return nil
}

// destinationPath derives the output file next to the source: the
// source name without its track-number prefix and extension, falling
// back to the track title, plus the output extension.
func (p *Processor) destinationPath(source string, number int, title, format string) string {
	base := filepath.Base(source)
	stem := matcher.StripLeadingTrackNumber(base, number)
	stem = strings.TrimSuffix(stem, filepath.Ext(stem))
	if stem == "" {
		stem = matcher.StripLeadingTrackNumber(title, number)
	}

	ext := filepath.Ext(base)
	if format != "" {
		if !strings.HasPrefix(format, ".") {
			format = "." + format
		}
		ext = format
	}

	return filepath.Join(filepath.Dir(source), stem+ext)
}

func buildTags(sheet *domain.Sheet, track *domain.Track, title, performer string) map[string]string {
	tags := map[string]string{
		"title":  title,
		"artist": performer,
		"album":  sheet.Album.Title,
		"track":  fmt.Sprintf("%d/%d", track.Number, len(sheet.Tracks)),
	}
	if date, ok := sheet.Album.Remarks["DATE"]; ok {
		tags["date"] = date
	}
	if genre, ok := sheet.Album.Remarks["GENRE"]; ok {
		tags["genre"] = genre
	}
	return tags
}
