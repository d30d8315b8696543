package matching

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Strategy decides whether a normalized candidate name matches normalized
// input. Strategies share the scan in Match and differ only in this predicate.
type Strategy interface {
	Name() string
	Matches(input, candidate string) bool
}

type exactStrategy struct{}

func (exactStrategy) Name() string { return "exact" }
func (exactStrategy) Matches(input, candidate string) bool { return input == candidate }

// usesLookup marks strategies that may try a NameLookup before scanning.
func (exactStrategy) usesLookup() bool { return true }

type prefixStrategy struct{}

func (prefixStrategy) Name() string { return "prefix" }
func (prefixStrategy) Matches(input, candidate string) bool {
	return strings.HasPrefix(candidate, input)
}

type substringStrategy struct{}

func (substringStrategy) Name() string { return "substring" }
func (substringStrategy) Matches(input, candidate string) bool {
	return strings.Contains(candidate, input)
}

var (
	// Exact matches whole names only.
	Exact Strategy = exactStrategy{}
	// Prefix matches names that start with the input.
	Prefix Strategy = prefixStrategy{}
	// Substring matches names that contain the input.
	Substring Strategy = substringStrategy{}
)

// ErrUnknownStrategy is returned by StrategyByName for unsupported names.
var ErrUnknownStrategy = errors.New("unknown matching strategy")

// StrategyByName resolves a configured strategy name.
func StrategyByName(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "exact":
		return Exact, nil
	case "prefix", "":
		return Prefix, nil
	case "substring", "contains":
		return Substring, nil
	default:
		return nil, errors.Wrapf(ErrUnknownStrategy, "strategy %q", name)
	}
}
