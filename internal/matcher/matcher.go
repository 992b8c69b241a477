// Package matcher resolves which on-disk file corresponds to a track
// number when filenames are inconsistently formatted.
package matcher

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

var ErrNoMatch = errors.New("no matching file")

// trackPrefix captures filenames that start with a number, e.g.
// "01 - Song Title.wav", "1. Song Title.flac", "002_Song Title.mp3".
var trackPrefix = regexp.MustCompile(`^\s*0*(\d{1,3})\s*[-_.\s]+\s*(.+)$`)

// strategy returns the matching candidate path, or "" when it cannot
// resolve the track.
type strategy func(n int, candidates []string) string

// Matcher evaluates an ordered list of strategies until one resolves.
// The order is the heuristic: numeric prefix, then padded substring,
// then the singleton fallback.
type Matcher struct {
	strategies []strategy
	claimed    map[string]bool
}

// Option configures a Matcher before its strategy order is sealed.
type Option func(*Matcher)

// WithFuzzyTitles inserts a strategy, ahead of the singleton fallback,
// that compares normalized candidate stems against the track titles
// within the given levenshtein distance.
func WithFuzzyTitles(titles map[int]string, maxDistance int) Option {
	return func(m *Matcher) {
		m.strategies = append(m.strategies, fuzzyTitleStrategy(titles, maxDistance))
	}
}

func New(opts ...Option) *Matcher {
	m := &Matcher{
		strategies: []strategy{prefixStrategy, paddedSubstringStrategy},
		claimed:    map[string]bool{},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.strategies = append(m.strategies, m.singletonStrategy)
	return m
}

// Resolve returns the candidate for track n, evaluating strategies in
// order. Ties are broken by strategy order, not candidate order, so
// results are deterministic for any enumeration of the directory.
func (m *Matcher) Resolve(n int, candidates []string) (string, error) {
	for _, s := range m.strategies {
		if match := s(n, candidates); match != "" {
			m.claimed[match] = true
			return match, nil
		}
	}
	return "", fmt.Errorf("%w: track %02d", ErrNoMatch, n)
}

func prefixStrategy(n int, candidates []string) string {
	for _, c := range candidates {
		sub := trackPrefix.FindStringSubmatch(filepath.Base(c))
		if sub == nil {
			continue
		}
		if num, err := strconv.Atoi(sub[1]); err == nil && num == n {
			return c
		}
	}
	return ""
}

func paddedSubstringStrategy(n int, candidates []string) string {
	padded := fmt.Sprintf("%02d", n)
	for _, c := range candidates {
		if strings.Contains(filepath.Base(c), padded) {
			return c
		}
	}
	return ""
}

// singletonStrategy handles single-track albums with no embedded
// number: a lone unclaimed candidate matches regardless of numbering.
func (m *Matcher) singletonStrategy(_ int, candidates []string) string {
	if len(candidates) == 1 && !m.claimed[candidates[0]] {
		return candidates[0]
	}
	return ""
}

func fuzzyTitleStrategy(titles map[int]string, maxDistance int) strategy {
	return func(n int, candidates []string) string {
		title, ok := titles[n]
		if !ok || title == "" {
			return ""
		}
		want := normalizeKey(title)

		best := ""
		bestDistance := maxDistance + 1
		for _, c := range candidates {
			base := filepath.Base(c)
			stem := strings.TrimSuffix(base, filepath.Ext(base))
			stem = StripLeadingTrackNumber(stem, n)
			if d := levenshtein.ComputeDistance(normalizeKey(stem), want); d < bestDistance {
				best = c
				bestDistance = d
			}
		}
		return best
	}
}

func normalizeKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
