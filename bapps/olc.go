package bapps

import (
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/tradepost/cmdargs/framework"
)

// olcApp runs a one line script of comma separated commands.
type olcApp struct {
	script string
	opt    *appOption
	out    io.Writer
}

type olcCmd struct {
	cmd   string
	muted bool
}

func NewOlcApp(script string, opts ...AppOption) BApp {
	return &olcApp{
		script: script,
		opt:    newAppOption(opts),
		out:    os.Stdout,
	}
}

func (a *olcApp) Run(start framework.State) {
	if err := a.run(start); err != nil {
		printError(a.out, err)
	}
}

// run stops at the first failing command.
func (a *olcApp) run(start framework.State) error {
	app := start
	for _, cmd := range parseScript(a.script) {
		if setter, ok := app.(outputSetter); ok {
			if cmd.muted {
				setter.SetOutput(io.Discard)
			} else {
				setter.SetOutput(a.out)
			}
		}
		next, err := app.Process(cmd.cmd)
		if err != nil {
			a.opt.logger.Debug("script command failed", zap.String("command", cmd.cmd), zap.Error(err))
			return err
		}
		app = next
		if app.IsEnding() {
			return nil
		}
	}
	return nil
}

func parseScript(script string) []olcCmd {
	parts := lo.Filter(strings.Split(script, ","), func(raw string, _ int) bool {
		return strings.TrimSpace(raw) != ""
	})
	return lo.Map(parts, func(raw string, _ int) olcCmd {
		cmd := strings.TrimSpace(raw)
		// mute cmd using #[command]
		muted := strings.HasPrefix(cmd, "#")
		return olcCmd{
			muted: muted,
			cmd:   strings.TrimPrefix(cmd, "#"),
		}
	})
}
