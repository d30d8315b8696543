package matching

import (
	"strings"

	"github.com/samber/lo"

	"github.com/tradepost/cmdargs/messages"
)

// DefaultListLimit is the number of candidates listed in an ambiguity report.
const DefaultListLimit = 5

// Resolver decides whether a match set is ambiguous and renders the
// disambiguation report.
type Resolver struct {
	// Limit caps the listed candidates, DefaultListLimit when not positive.
	Limit    int
	Messages messages.Catalog
}

// Resolve reports whether matches is ambiguous and, if so, the message to
// show. Zero or one match is never ambiguous.
func (r Resolver) Resolve(input string, matches []Entry) (bool, string) {
	if len(matches) < 2 {
		return false, ""
	}
	catalog := r.Messages
	if catalog == nil {
		catalog = messages.Default()
	}
	limit := r.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	shown := matches
	if len(shown) > limit {
		shown = shown[:limit]
	}
	list := strings.Join(lo.Map(shown, func(e Entry, _ int) string {
		return catalog.Format(messages.AmbiguousEntry, messages.Args{"name": e.Name, "id": e.ID})
	}), ", ")
	if extra := len(matches) - len(shown); extra > 0 {
		list += " " + catalog.Format(messages.AmbiguousMore, messages.Args{"count": extra})
	}

	return true, catalog.Format(messages.Ambiguous, messages.Args{
		"input":   input,
		"count":   len(matches),
		"matches": list,
	})
}
