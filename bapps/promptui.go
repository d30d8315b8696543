package bapps

import (
	"errors"
	"os"

	"github.com/manifoldco/promptui"
	"go.uber.org/zap"

	"github.com/tradepost/cmdargs/common"
	"github.com/tradepost/cmdargs/framework"
)

// simpleApp wraps promptui as BApp.
type simpleApp struct {
	opt *appOption
}

func NewSimpleApp(opts ...AppOption) BApp {
	return &simpleApp{opt: newAppOption(opts)}
}

// Run starts TradePost with promptui. (disable suggestion and history)
func (a *simpleApp) Run(start framework.State) {
	app := start
	for {
		p := promptui.Prompt{
			Label: app.Label(),
		}

		line, err := p.Run()
		if err != nil {
			// ^C or ^D
			return
		}
		next, err := app.Process(line)
		if errors.Is(err, common.ExitErr) {
			return
		}
		if err != nil {
			a.opt.logger.Debug("command failed", zap.String("line", line), zap.Error(err))
			printError(os.Stdout, err)
			continue
		}
		app = next
		if app.IsEnding() {
			return
		}
	}
}
