package arguments

import (
	"github.com/tradepost/cmdargs/matching"
	"github.com/tradepost/cmdargs/messages"
)

const (
	// DefaultSuggestionCap is the maximum number of completions per request.
	DefaultSuggestionCap = 20
	// DefaultMinCompletionLength is the shortest partial token completed by
	// entity arguments.
	DefaultMinCompletionLength = 1
)

// Settings is the explicit configuration of parse and complete calls.
type Settings struct {
	SuggestionCap       int
	AmbiguityListLimit  int
	MinCompletionLength int
	// Strategy is used by name arguments that do not set their own.
	Strategy matching.Strategy
	// DisplayNames enables matching and completing display labels.
	DisplayNames bool
	// UniqueNames asserts the host keeps primary names unique among
	// visible candidates.
	UniqueNames bool
	Messages    messages.Catalog

	// TraceParse and TraceCompletion log every decision at debug level.
	TraceParse      bool
	TraceCompletion bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		SuggestionCap:       DefaultSuggestionCap,
		AmbiguityListLimit:  matching.DefaultListLimit,
		MinCompletionLength: DefaultMinCompletionLength,
		Strategy:            matching.Prefix,
		DisplayNames:        true,
		Messages:            messages.Default(),
	}
}

func (s Settings) withDefaults() Settings {
	if s.SuggestionCap <= 0 {
		s.SuggestionCap = DefaultSuggestionCap
	}
	if s.AmbiguityListLimit <= 0 {
		s.AmbiguityListLimit = matching.DefaultListLimit
	}
	if s.MinCompletionLength < 0 {
		s.MinCompletionLength = 0
	}
	if s.Strategy == nil {
		s.Strategy = matching.Prefix
	}
	if s.Messages == nil {
		s.Messages = messages.Default()
	}
	return s
}

func (s Settings) resolver() matching.Resolver {
	return matching.Resolver{Limit: s.AmbiguityListLimit, Messages: s.Messages}
}
