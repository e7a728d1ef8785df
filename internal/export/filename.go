package export

import (
	"regexp"
	"strings"
	"time"
)

const (
	csvExt = ".csv"

	// timestampLayout sorts lexically in chronological order.
	timestampLayout = "2006-01-02_15-04-05"
)

var reNonWord = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// Sanitize replaces every run of characters other than letters, digits and
// underscore with a single underscore.
func Sanitize(s string) string {
	return reNonWord.ReplaceAllString(s, "_")
}

// ResolveFilename returns the export file name for a guild. With no requested
// name it is derived from the guild name and now; otherwise the requested name
// is sanitized and given a .csv extension if it lacks one.
func ResolveFilename(guildName, requested string, now time.Time) string {
	if requested == "" {
		return Sanitize(guildName) + "-" + now.Format(timestampLayout) + csvExt
	}
	if stem, ok := strings.CutSuffix(requested, csvExt); ok && stem != "" {
		return Sanitize(stem) + csvExt
	}
	return Sanitize(requested) + csvExt
}
