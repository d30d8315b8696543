package framework

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/tradepost/cmdargs/arguments"
	"github.com/tradepost/cmdargs/common"
	"github.com/tradepost/cmdargs/log"
)

// ErrUnknownCommand is returned for a line whose first word names no command.
var ErrUnknownCommand = errors.New("unknown command")

// State is the interface for application state.
type State interface {
	Label() string
	Process(cmd string) (State, error)
	Close()
	SetNext(state State)
	NextState() State
	Suggestions(input string) []Suggestion
	IsEnding() bool
}

// CmdState maps the first word of a line to a registered Command and runs
// its argument tree. The registry is fixed once the state is in use, so
// Parse and Complete may run concurrently.
type CmdState struct {
	label     string
	commands  []*Command
	settings  arguments.Settings
	caller    any
	format    Format
	out       io.Writer
	nextState State
}

// NewCmdState returns a CmdState with provided label and settings.
func NewCmdState(label string, settings arguments.Settings) *CmdState {
	return &CmdState{
		label:    label,
		settings: settings,
		format:   FormatDefault,
		out:      os.Stdout,
	}
}

// Register adds commands. A command word already registered is replaced.
func (s *CmdState) Register(cmds ...*Command) {
	for _, cmd := range cmds {
		if existing, ok := s.find(cmd.Use); ok {
			*existing = *cmd
			continue
		}
		s.commands = append(s.commands, cmd)
	}
}

// Commands returns the registered commands in registration order.
func (s *CmdState) Commands() []*Command {
	return s.commands
}

// Lookup returns the command named by word or one of its aliases.
func (s *CmdState) Lookup(word string) (*Command, bool) {
	return s.find(word)
}

func (s *CmdState) find(word string) (*Command, bool) {
	for _, cmd := range s.commands {
		if cmd.matches(word) {
			return cmd, true
		}
	}
	return nil, false
}

// SetLabel updates label value.
func (s *CmdState) SetLabel(label string) {
	s.label = label
}

// Label returns the display label for current cli.
func (s *CmdState) Label() string {
	return s.label
}

// Settings returns the settings every parse and completion runs with.
func (s *CmdState) Settings() arguments.Settings {
	return s.settings
}

// SetCaller changes who the interactive session acts as.
func (s *CmdState) SetCaller(caller any) {
	s.caller = caller
}

// Caller returns who the interactive session acts as.
func (s *CmdState) Caller() any {
	return s.caller
}

// Format returns the format results are printed in by Process.
func (s *CmdState) Format() Format {
	return s.format
}

// SetFormat sets the format results are printed in by Process.
func (s *CmdState) SetFormat(format Format) {
	s.format = format
}

// SetOutput redirects Process output.
func (s *CmdState) SetOutput(w io.Writer) {
	s.out = w
}

// Parse resolves line for caller without running it.
func (s *CmdState) Parse(line string, caller any) (*Command, *arguments.Context, error) {
	tokens := arguments.Tokenize(line)
	if len(tokens) == 0 {
		return nil, nil, errors.Wrap(ErrUnknownCommand, "empty command line")
	}
	cmd, ok := s.find(tokens[0])
	if !ok {
		return nil, nil, errors.Wrapf(ErrUnknownCommand, "%q", tokens[0])
	}
	ctx, err := arguments.Parse(cmd.args(), tokens[1:], caller, s.settings)
	if err != nil {
		return cmd, nil, err
	}
	return cmd, ctx, nil
}

// Complete returns the suggestions for the last word of line as typed by
// caller. The first word completes to command words.
func (s *CmdState) Complete(line string, caller any) []Suggestion {
	tokens := arguments.CompletionTokens(line)
	if len(tokens) <= 1 {
		return suggestCommands(s.commands, tokens[0])
	}
	cmd, ok := s.find(tokens[0])
	if !ok {
		return []Suggestion{}
	}
	return suggestArgs(cmd, tokens[1:], caller, s.settings)
}

// Execute parses line as the session caller and runs it.
func (s *CmdState) Execute(line string) (ResultSet, error) {
	cmd, ctx, err := s.Parse(line, s.caller)
	if err != nil {
		return nil, err
	}
	if cmd.Run == nil {
		return nil, nil
	}
	log.Debug("run command", zap.String("command", cmd.Use), zap.Strings("arguments", ctx.Names()))
	return cmd.Run(ctx)
}

// Suggestions implements State for the session caller.
func (s *CmdState) Suggestions(input string) []Suggestion {
	return s.Complete(input, s.caller)
}

// Process is the main entry for processing command.
func (s *CmdState) Process(cmd string) (State, error) {
	if len(arguments.Tokenize(cmd)) == 0 {
		return s, nil
	}

	rs, err := s.Execute(cmd)
	if errors.Is(err, common.ExitErr) {
		return s.nextState, common.ExitErr
	}
	if err != nil {
		return s, err
	}
	if rs != nil {
		s.print(rs)
	}
	if s.nextState != nil {
		nextState := s.nextState
		s.nextState = nil
		return nextState, nil
	}

	return s, nil
}

func (s *CmdState) print(rs ResultSet) {
	if preset, ok := rs.(*PresetResultSet); ok {
		fmt.Fprintln(s.out, preset.String())
		return
	}
	fmt.Fprintln(s.out, rs.PrintAs(s.format))
}

// SetNext simple method to set next state.
func (s *CmdState) SetNext(state State) {
	s.nextState = state
}

func (s *CmdState) NextState() State {
	return s.nextState
}

// Close empty method to implement State.
func (s *CmdState) Close() {}

// Check state is ending state.
func (s *CmdState) IsEnding() bool { return false }
