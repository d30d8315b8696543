package configs

import (
	"os"
	"path"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/tradepost/cmdargs/arguments"
	"github.com/tradepost/cmdargs/matching"
	"github.com/tradepost/cmdargs/messages"
)

const (
	configFileName   = `tradepost.yaml`
	defaultWorkspace = `tp_workspace`
)

var (
	errConfigPathNotExist = errors.New("config path not exist")
	errConfigPathIsFile   = errors.New("config path is file")
)

// Config stores tradepost config items.
type Config struct {
	// configuration folder path, default $PWD/.tp_config
	ConfigPath string `yaml:"-"`
	// workspace path for history and logs, default $PWD/tp_workspace
	WorkspacePath string `yaml:"WorkspacePath"`

	SuggestionCap       int    `yaml:"SuggestionCap"`
	AmbiguityListLimit  int    `yaml:"AmbiguityListLimit"`
	MinCompletionLength int    `yaml:"MinCompletionLength"`
	DefaultStrategy     string `yaml:"DefaultStrategy"`
	MatchDisplayNames   bool   `yaml:"MatchDisplayNames"`
	UniqueNames         bool   `yaml:"UniqueNames"`
	// Visibility is an expression deciding which users a caller sees,
	// empty means everyone is visible.
	Visibility   string     `yaml:"Visibility"`
	RosterFile   string     `yaml:"RosterFile,omitempty"`
	MessagesFile string     `yaml:"MessagesFile,omitempty"`
	OutputFormat string     `yaml:"OutputFormat,omitempty"`
	DebugFlags   DebugFlags `yaml:"DebugFlags,omitempty"`
}

func defaultConfig(configPath string) *Config {
	return &Config{
		ConfigPath:          configPath,
		WorkspacePath:       defaultWorkspace,
		SuggestionCap:       arguments.DefaultSuggestionCap,
		AmbiguityListLimit:  matching.DefaultListLimit,
		MinCompletionLength: arguments.DefaultMinCompletionLength,
		DefaultStrategy:     matching.Prefix.Name(),
		MatchDisplayNames:   true,
	}
}

// Default returns the default config items, not bound to any folder.
func Default() *Config {
	return defaultConfig("")
}

func (c *Config) load() error {
	err := c.checkConfigPath()
	if err != nil {
		return err
	}

	bs, err := os.ReadFile(c.getConfigPath())
	if os.IsNotExist(err) {
		return errConfigPathNotExist
	}
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(bs, c); err != nil {
		return errors.Wrapf(err, "failed to parse %s", c.getConfigPath())
	}
	return nil
}

func (c *Config) getConfigPath() string {
	return path.Join(c.ConfigPath, configFileName)
}

// checkConfigPath exists and is a directory.
func (c *Config) checkConfigPath() error {
	info, err := os.Stat(c.ConfigPath)
	if err != nil {
		// not exist, return specified type to handle
		if os.IsNotExist(err) {
			return errConfigPathNotExist
		}
		return err
	}
	if !info.IsDir() {
		return errors.Wrapf(errConfigPathIsFile, "%s(%s)", c.ConfigPath, configFileName)
	}

	return nil
}

func (c *Config) createDefault() error {
	err := os.MkdirAll(c.ConfigPath, os.ModePerm)
	if err != nil {
		return err
	}

	bs, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	return os.WriteFile(c.getConfigPath(), bs, 0o644)
}

// NewConfig loads the config stored under configPath, creating it with
// default values on first run. Environment overrides are applied last.
func NewConfig(configPath string) (*Config, error) {
	expanded, err := homedir.Expand(configPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to expand config path %s", configPath)
	}
	config := defaultConfig(expanded)
	err = config.load()
	// config path not exist, may first time to run
	if errors.Is(err, errConfigPathNotExist) {
		err = config.createDefault()
	}
	if err != nil {
		return config, err
	}

	return config, config.applySource(&envConfigSource{})
}

// applySource overrides items from src. Values src does not carry are kept.
func (c *Config) applySource(src ConfigSource) error {
	ints := map[string]*int{
		EnvSuggestionCap: &c.SuggestionCap,
		EnvMinCompletion: &c.MinCompletionLength,
	}
	for key, target := range ints {
		raw, err := src.Get(key)
		if errors.Is(err, ErrConfigNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return errors.Wrapf(err, "%s from %s", key, src.Name())
		}
		*target = v
	}

	if raw, err := src.Get(EnvStrategy); err == nil {
		c.DefaultStrategy = raw
	}
	if raw, err := src.Get(EnvDebug); err == nil {
		if err := c.DebugFlags.Set(raw); err != nil {
			return errors.Wrapf(err, "%s from %s", EnvDebug, src.Name())
		}
	}
	return nil
}

// BindFlags registers command line overrides of the config items on fs.
// Bound values are written straight into c when fs is parsed.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.IntVar(&c.SuggestionCap, "suggestion-cap", c.SuggestionCap, "maximum number of completions")
	fs.IntVar(&c.MinCompletionLength, "min-completion", c.MinCompletionLength, "shortest partial name completed")
	fs.StringVar(&c.DefaultStrategy, "strategy", c.DefaultStrategy, "name matching strategy: exact, prefix or substring")
	fs.BoolVar(&c.MatchDisplayNames, "display-names", c.MatchDisplayNames, "match display labels too")
	fs.StringVar(&c.Visibility, "visibility", c.Visibility, "visibility expression over caller and candidate")
	fs.Var(&c.DebugFlags, "debug", "comma separated debug flags: "+allDebugFlags())
}

// Settings builds the parse and completion settings described by c.
func (c *Config) Settings() (arguments.Settings, error) {
	strategy, err := matching.StrategyByName(c.DefaultStrategy)
	if err != nil {
		return arguments.Settings{}, err
	}

	settings := arguments.DefaultSettings()
	settings.SuggestionCap = c.SuggestionCap
	settings.AmbiguityListLimit = c.AmbiguityListLimit
	settings.MinCompletionLength = c.MinCompletionLength
	settings.Strategy = strategy
	settings.DisplayNames = c.MatchDisplayNames
	settings.UniqueNames = c.UniqueNames
	settings.TraceParse = c.DebugFlags.Enabled(DebugParse)
	settings.TraceCompletion = c.DebugFlags.Enabled(DebugCompletion)

	if c.MessagesFile != "" {
		p, err := c.resolvePath(c.MessagesFile)
		if err != nil {
			return arguments.Settings{}, err
		}
		catalog, err := messages.Load(p)
		if err != nil {
			return arguments.Settings{}, err
		}
		settings.Messages = catalog
	}
	return settings, nil
}

// RosterPath returns the expanded roster file path, empty when unset.
func (c *Config) RosterPath() (string, error) {
	if c.RosterFile == "" {
		return "", nil
	}
	return c.resolvePath(c.RosterFile)
}

// Workspace returns the expanded workspace path.
func (c *Config) Workspace() (string, error) {
	return homedir.Expand(c.WorkspacePath)
}

// resolvePath expands p, relative paths are taken from the config folder.
func (c *Config) resolvePath(p string) (string, error) {
	expanded, err := homedir.Expand(p)
	if err != nil {
		return "", errors.Wrapf(err, "failed to expand %s", p)
	}
	if path.IsAbs(expanded) || c.ConfigPath == "" {
		return expanded, nil
	}
	return path.Join(c.ConfigPath, expanded), nil
}
