package bapps

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/c-bata/go-prompt"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/tradepost/cmdargs/framework"
	"github.com/tradepost/cmdargs/history"
)

const historySuggestionLimit = 20

// PromptApp wraps go-prompt as application.
type PromptApp struct {
	exited         bool
	currentState   framework.State
	suggestHistory bool
	historyHelper  *history.Helper
	logger         *zap.Logger
	prompt         *prompt.Prompt
}

func NewPromptApp(opts ...AppOption) BApp {
	opt := newAppOption(opts)

	hh := history.NewHistoryHelper(opt.historyDir)
	pa := &PromptApp{
		historyHelper: hh,
		logger:        opt.logger,
	}

	p := prompt.New(pa.promptExecute, pa.completeInput,
		prompt.OptionTitle("TradePost"),
		prompt.OptionHistory(lo.Map(hh.List(""), func(hi history.Item, _ int) string { return hi.Cmd })),
		prompt.OptionLivePrefix(pa.livePrefix),
		prompt.OptionPrefixTextColor(prompt.Yellow),
		prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
		prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
		prompt.OptionSuggestionBGColor(prompt.DarkGray),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			return breakline && pa.exited
		}),
		prompt.OptionAddKeyBind(prompt.KeyBind{
			Key: prompt.ControlR,
			Fn: func(*prompt.Buffer) {
				pa.suggestHistory = !pa.suggestHistory
			},
		}),
		prompt.OptionParser(newInputParser()),
	)
	pa.prompt = p
	return pa
}

func (a *PromptApp) Run(start framework.State) {
	a.currentState = start
	defer a.historyHelper.Close()
	a.prompt.Run()
}

// promptExecute actual execution logic entry.
func (a *PromptApp) promptExecute(in string) {
	in = strings.TrimSpace(in)

	nextState, err := a.currentState.Process(in)
	// back to normal mode
	a.historyHelper.AddLog(in)
	a.suggestHistory = false

	if err != nil {
		a.logger.Debug("command failed", zap.String("line", in), zap.Error(err))
		printError(os.Stdout, err)
		return
	}

	a.currentState = nextState
	if a.currentState.IsEnding() {
		fmt.Println("Bye!")
		a.exited = true
	}
}

// completeInput auto-complete logic entry. Suggestions keep the order the
// state returns them in.
func (a *PromptApp) completeInput(d prompt.Document) []prompt.Suggest {
	input := d.CurrentLineBeforeCursor()
	if a.suggestHistory {
		return a.historySuggestions(input)
	}
	if input == "" {
		return nil
	}
	return lo.Map(a.currentState.Suggestions(input), func(s framework.Suggestion, _ int) prompt.Suggest {
		return prompt.Suggest{Text: s.Text, Description: s.Description}
	})
}

// historySuggestions returns suggestion from command history, latest first.
func (a *PromptApp) historySuggestions(input string) []prompt.Suggest {
	items := a.historyHelper.List(input)
	lastIdx := strings.LastIndex(input, " ") + 1

	var result []prompt.Suggest
	seen := make(map[string]struct{})
	for i := len(items) - 1; i >= 0 && len(result) < historySuggestionLimit; i-- {
		item := items[i]
		if _, ok := seen[item.Cmd]; ok {
			continue
		}
		seen[item.Cmd] = struct{}{}
		result = append(result, prompt.Suggest{
			Text:        item.Cmd[lastIdx:],
			Description: time.Unix(item.Ts, 0).Format("2006-01-02 15:04:05"),
		})
	}
	return result
}

// livePrefix implements dynamic change prefix.
func (a *PromptApp) livePrefix() (string, bool) {
	if a.exited {
		return "", false
	}
	return fmt.Sprintf("%s > ", a.currentState.Label()), true
}
