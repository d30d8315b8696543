package matching

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SuggestOptions tunes one Suggest call.
type SuggestOptions struct {
	// MinLength is the shortest partial input that is completed at all.
	MinLength int
	// Cap bounds the number of suggestions, unbounded when not positive.
	Cap int
	// DisplayNames falls back to the display label for candidates whose
	// primary name does not start with the partial input.
	DisplayNames bool
}

// Suggest returns completions of partial from the primary names, or display
// labels, of the candidates accepted by filter, in pool order.
func Suggest[C Candidate](partial string, pool Pool[C], filter Filter[C], opts SuggestOptions) []string {
	var secondary func(C) string
	if opts.DisplayNames {
		secondary = func(c C) string { return StripMarkup(c.DisplayName()) }
	}
	return SuggestFields(partial, pool, filter, func(c C) string { return c.Name() }, secondary, opts)
}

// SuggestIDs completes partial against candidate identifiers.
func SuggestIDs[C Candidate](partial string, pool Pool[C], filter Filter[C], opts SuggestOptions) []string {
	return SuggestFields(partial, pool, filter, func(c C) string { return c.ID() }, nil, opts)
}

// SuggestFields is the completion scan shared by Suggest and SuggestIDs.
// At most one string is suggested per candidate: primary when it starts
// with the normalized partial input, otherwise secondary when given. A
// matching secondary containing whitespace is suggested as the primary.
func SuggestFields[C Candidate](partial string, pool Pool[C], filter Filter[C],
	primary, secondary func(C) string, opts SuggestOptions,
) []string {
	// hard gate, no scan below the minimum length
	if utf8.RuneCountInString(partial) < opts.MinLength {
		return nil
	}
	normalized := Normalize(partial)

	var result []string
	seen := make(map[string]struct{})
	add := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		result = append(result, s)
	}

	for _, c := range pool.Candidates() {
		if opts.Cap > 0 && len(result) >= opts.Cap {
			break
		}
		if !filter.accept(c) {
			continue
		}
		p := primary(c)
		if strings.HasPrefix(Normalize(p), normalized) {
			add(p)
			continue
		}
		if secondary == nil {
			continue
		}
		s := strings.TrimSpace(secondary(c))
		if s == "" || !strings.HasPrefix(Normalize(s), normalized) {
			continue
		}
		// a label spanning several tokens would not parse back
		if strings.ContainsFunc(s, unicode.IsSpace) {
			add(p)
			continue
		}
		add(s)
	}
	return result
}
