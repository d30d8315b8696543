package framework

import (
	"strings"

	"github.com/samber/lo"

	"github.com/tradepost/cmdargs/arguments"
)

// Suggestion is one completion offered for the word being typed.
type Suggestion struct {
	Text        string `json:"text"`
	Description string `json:"description,omitempty"`
}

// suggestCommands offers the command words starting with partial, in
// registration order.
func suggestCommands(commands []*Command, partial string) []Suggestion {
	partial = strings.ToLower(partial)
	var result []Suggestion
	for _, cmd := range commands {
		if strings.HasPrefix(strings.ToLower(cmd.Use), partial) {
			result = append(result, Suggestion{Text: cmd.Use, Description: cmd.Short})
		}
	}
	return result
}

// suggestArgs completes the arguments of cmd. Every suggestion is described
// by the command usage.
func suggestArgs(cmd *Command, tokens []string, caller any, settings arguments.Settings) []Suggestion {
	usage := cmd.Usage()
	return lo.Map(arguments.Complete(cmd.args(), tokens, caller, settings), func(text string, _ int) Suggestion {
		return Suggestion{Text: text, Description: usage}
	})
}

// Texts returns the suggested words.
func Texts(suggestions []Suggestion) []string {
	return lo.Map(suggestions, func(s Suggestion, _ int) string { return s.Text })
}
