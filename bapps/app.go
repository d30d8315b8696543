package bapps

import (
	"io"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/tradepost/cmdargs/arguments"
	"github.com/tradepost/cmdargs/framework"
)

// BApp interface for tradepost application
type BApp interface {
	Run(framework.State)
}

// AppOption application setup option function.
type AppOption func(*appOption)

type appOption struct {
	logger     *zap.Logger
	historyDir string
}

// WithLogger returns AppOption to setup application logger.
func WithLogger(logger *zap.Logger) AppOption {
	return func(opt *appOption) {
		opt.logger = logger
	}
}

// WithHistoryDir sets the folder the command history is kept in.
func WithHistoryDir(dir string) AppOption {
	return func(opt *appOption) {
		opt.historyDir = dir
	}
}

func newAppOption(opts []AppOption) *appOption {
	opt := &appOption{logger: zap.NewNop(), historyDir: "."}
	for _, o := range opts {
		o(opt)
	}
	return opt
}

var (
	colorFailure  = color.New(color.FgRed)
	colorRejected = color.New(color.FgYellow)
)

// printError reports a failed command line. Rejections, e.g. ambiguous
// names, are told apart from malformed input.
func printError(w io.Writer, err error) {
	c := colorFailure
	if arguments.KindOf(err) == arguments.KindRejected {
		c = colorRejected
	}
	c.Fprintln(w, err.Error())
}

// outputSetter is implemented by states whose output can be redirected.
type outputSetter interface {
	SetOutput(io.Writer)
}
