package matcher

import (
	"fmt"
	"regexp"
	"strings"
)

// disallowed covers characters that are unsafe in filenames, plus
// control characters.
var disallowed = regexp.MustCompile(`[/?%:*|"<>` + "\x00-\x1f" + `]+`)

// StripLeadingTrackNumber removes a numeric prefix equal to n from a
// filename and strips characters disallowed in filenames. The caller
// substitutes the track title when the result comes back empty.
func StripLeadingTrackNumber(name string, n int) string {
	withDelimiter := regexp.MustCompile(fmt.Sprintf(`(?i)^\s*0*%d\s*[-_.\s]+`, n))
	name = withDelimiter.ReplaceAllString(name, "")

	// A bare "01 " prefix without delimiter may remain.
	bare := regexp.MustCompile(fmt.Sprintf(`(?i)^\s*0*%d\s+`, n))
	name = bare.ReplaceAllString(name, "")

	return strings.TrimSpace(disallowed.ReplaceAllString(name, ""))
}
