package framework

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/tradepost/cmdargs/arguments"
)

// Command is one shell command: a command word followed by an argument tree.
type Command struct {
	// Use is the command word.
	Use     string
	Short   string
	Aliases []string
	// Args parses everything after the command word. A nil Args accepts no
	// arguments.
	Args *arguments.Sequence
	// Run executes the command with the parsed values.
	Run func(ctx *arguments.Context) (ResultSet, error)
}

// words returns the command word and its aliases.
func (c *Command) words() []string {
	return append([]string{c.Use}, c.Aliases...)
}

func (c *Command) matches(word string) bool {
	return lo.ContainsBy(c.words(), func(w string) bool { return strings.EqualFold(w, word) })
}

func (c *Command) args() arguments.Argument {
	if c.Args == nil {
		return arguments.NewSequence(c.Use)
	}
	return c.Args
}

// Usage renders the command line shape, e.g. "pay <target> <amount>".
func (c *Command) Usage() string {
	parts := []string{c.Use}
	if c.Args != nil {
		for _, child := range c.Args.Children() {
			parts = append(parts, usageOf(child))
		}
	}
	return strings.Join(parts, " ")
}

func usageOf(arg arguments.Argument) string {
	switch arg := arg.(type) {
	case *arguments.Literal:
		return arg.Word()
	case *arguments.FirstOf:
		// alternatives spelling the same entity collapse into one name
		if _, found := lo.Find(arg.Children(), func(child arguments.Argument) bool { return !isEntity(child) }); !found {
			return fmt.Sprintf("<%s>", arg.Name())
		}
		return strings.Join(lo.Map(arg.Children(), func(child arguments.Argument, _ int) string {
			return usageOf(child)
		}), "|")
	case *arguments.Sequence:
		return strings.Join(lo.Map(arg.Children(), func(child arguments.Argument, _ int) string {
			return usageOf(child)
		}), " ")
	case *arguments.Remainder:
		return fmt.Sprintf("<%s...>", arg.Name())
	default:
		return fmt.Sprintf("<%s>", arg.Name())
	}
}

func isEntity(arg arguments.Argument) bool {
	_, ok := arg.(arguments.Entity)
	return ok
}
