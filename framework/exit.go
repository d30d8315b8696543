package framework

// ExitState simple exit state.
type ExitState struct {
	*CmdState
}

// NewExitState returns the ending state following from.
func NewExitState(from *CmdState) *ExitState {
	return &ExitState{CmdState: from}
}

// IsEnding returns true for exit State
func (s *ExitState) IsEnding() bool { return true }
