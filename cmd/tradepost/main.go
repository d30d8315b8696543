package main

import (
	"fmt"
	"os"
	"os/exec"
	"path"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tradepost/cmdargs/bapps"
	"github.com/tradepost/cmdargs/common"
	"github.com/tradepost/cmdargs/configs"
	"github.com/tradepost/cmdargs/framework"
	"github.com/tradepost/cmdargs/log"
	"github.com/tradepost/cmdargs/roster"
	"github.com/tradepost/cmdargs/states"
)

var (
	configPath string
	rosterFile string
	actAs      string
	config     = configs.Default()
)

func main() {
	root := &cobra.Command{
		Use:          "tradepost",
		Short:        "trading post shell with name resolving command arguments",
		SilenceUsage: true,
	}
	pflags := root.PersistentFlags()
	pflags.StringVar(&configPath, "config", ".tp_config", "config folder path")
	pflags.StringVar(&rosterFile, "roster", "", "roster yaml file, overrides the config item")
	pflags.StringVar(&actAs, "as", "", "user the commands act as, empty is the console")
	config.BindFlags(pflags)

	root.AddCommand(shellCommand(), parseCommand(), completeCommand(), serveCommand(), versionCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the config, keeping flag values over the file ones, and
// builds the shell.
func setup(cmd *cobra.Command) (*states.TradePost, *zap.Logger, error) {
	loaded, err := configs.NewConfig(configPath)
	if err != nil {
		// run by default, just printing warning.
		fmt.Println("[WARN] load config file failed, running in default setting", err.Error())
	}
	if loaded != nil {
		overrideChanged(cmd, loaded)
		config = loaded
	}
	if rosterFile != "" {
		config.RosterFile = rosterFile
	}

	logger := zap.NewNop()
	if ws, err := config.Workspace(); err == nil {
		if err := os.MkdirAll(ws, 0o755); err == nil {
			if l, err := log.NewFileLogger(path.Join(ws, "tradepost_debug.log"), len(config.DebugFlags) > 0); err == nil {
				logger = l
			}
		}
	}
	log.SetLogger(logger)

	r, err := loadRoster()
	if err != nil {
		return nil, logger, err
	}
	tp, err := states.Start(config, r)
	if err != nil {
		return nil, logger, err
	}
	if actAs != "" {
		if _, err := tp.Execute("as " + actAs); err != nil {
			return nil, logger, err
		}
	}
	return tp, logger, nil
}

// overrideChanged copies the flags set on the command line into loaded,
// file values win otherwise.
func overrideChanged(cmd *cobra.Command, loaded *configs.Config) {
	fs := cmd.Flags()
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("suggestion-cap", func() { loaded.SuggestionCap = config.SuggestionCap })
	set("min-completion", func() { loaded.MinCompletionLength = config.MinCompletionLength })
	set("strategy", func() { loaded.DefaultStrategy = config.DefaultStrategy })
	set("display-names", func() { loaded.MatchDisplayNames = config.MatchDisplayNames })
	set("visibility", func() { loaded.Visibility = config.Visibility })
	set("debug", func() { loaded.DebugFlags = config.DebugFlags })
}

func loadRoster() (*roster.Roster, error) {
	p, err := config.RosterPath()
	if err != nil {
		return nil, err
	}
	if p == "" {
		return roster.New()
	}
	return roster.Load(p)
}

func shellCommand() *cobra.Command {
	var (
		simple bool
		olc    string
	)
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "interactive shell with completion and history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tp, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ws, _ := config.Workspace()
			opts := []bapps.AppOption{bapps.WithLogger(logger), bapps.WithHistoryDir(ws)}

			var app bapps.BApp
			switch {
			case olc != "":
				app = bapps.NewOlcApp(olc, opts...)
			case simple:
				app = bapps.NewSimpleApp(opts...)
			default:
				defer handleExit()
				app = bapps.NewPromptApp(opts...)
			}
			app.Run(tp)
			return nil
		},
	}
	cmd.Flags().BoolVar(&simple, "simple", false, "use simple ui without suggestion and history")
	cmd.Flags().StringVar(&olc, "olc", "", "one line command execution mode, commands separated by ','")
	return cmd
}

func parseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <line...>",
		Short: "parse a command line and print the resolved arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tp, _, err := setup(cmd)
			if err != nil {
				return err
			}
			c, ctx, err := tp.Parse(strings.Join(args, " "), tp.Caller())
			if err != nil {
				color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
				return err
			}
			rs := framework.NewContextResult(c.Use, ctx)
			fmt.Println(rs.PrintAs(framework.NameFormat(config.GetGlobalOutputFormat())))
			return nil
		},
	}
}

func completeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <line>",
		Short: "print the completions of a partial command line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tp, _, err := setup(cmd)
			if err != nil {
				return err
			}
			for _, s := range tp.Complete(args[0], tp.Caller()) {
				fmt.Println(s.Text)
			}
			return nil
		},
	}
}

func serveCommand() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve parse and completion over http",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tp, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync()
			bapps.NewWebServerApp(port, tp, bapps.WithLogger(logger)).Run(tp)
			return nil
		},
	}
	cmd.Flags().IntVar(&port, "port", 8002, "listening port for web server")
	return cmd
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print tradepost version",
		Run: func(*cobra.Command, []string) {
			fmt.Println("TradePost Version", common.Version)
		},
	}
}

// handleExit is the fix for go-prompt output hi-jack fix.
func handleExit() {
	rawModeOff := exec.Command("/bin/stty", "-raw", "echo")
	rawModeOff.Stdin = os.Stdin
	_ = rawModeOff.Run()
}
