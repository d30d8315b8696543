package bapps

import (
	"os"
	"os/exec"

	"github.com/c-bata/go-prompt"
)

// inputParser restores the terminal mode go-prompt leaves raw on exit.
type inputParser struct {
	*prompt.PosixParser
}

// TearDown should be called after stopping input
func (p *inputParser) TearDown() error {
	err := p.PosixParser.TearDown()
	stty := exec.Command("/bin/stty", "-raw", "echo")
	stty.Stdin = os.Stdin
	_ = stty.Run()
	return err
}

func newInputParser() *inputParser {
	return &inputParser{PosixParser: prompt.NewStandardInputParser()}
}
