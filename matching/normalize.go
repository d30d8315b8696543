package matching

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// sectionCode matches legacy `§x` colour and format codes.
var sectionCode = regexp.MustCompile(`(?i)§[0-9a-fk-orx]`)

// Normalize trims, collapses internal whitespace and case-folds s.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// StripMarkup removes colour codes and terminal escapes from a display label.
func StripMarkup(s string) string {
	return ansi.Strip(sectionCode.ReplaceAllString(s, ""))
}

// normalizeLabel is the comparison form of a display label.
func normalizeLabel(s string) string {
	return Normalize(StripMarkup(s))
}
