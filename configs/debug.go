package configs

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

const (
	// DebugCompletion logs every completion request and its suggestions.
	DebugCompletion = "completion"
	// DebugParse logs every name resolution and parse failure.
	DebugParse = "parse"
)

var knownDebugFlags = []string{DebugCompletion, DebugParse}

func allDebugFlags() string {
	return strings.Join(knownDebugFlags, ",")
}

// DebugFlags is the set of enabled debug switches. It is a pflag.Value; Set
// accepts a comma separated list and adds to the set.
type DebugFlags []string

// Enabled reports whether flag is set.
func (f DebugFlags) Enabled(flag string) bool {
	return lo.Contains(f, flag)
}

func (f *DebugFlags) String() string {
	return strings.Join(*f, ",")
}

func (f *DebugFlags) Set(value string) error {
	for _, flag := range strings.Split(value, ",") {
		flag = strings.ToLower(strings.TrimSpace(flag))
		if flag == "" {
			continue
		}
		if !lo.Contains(knownDebugFlags, flag) {
			return errors.Newf("unknown debug flag %q, valid flags: %s", flag, allDebugFlags())
		}
		if !f.Enabled(flag) {
			*f = append(*f, flag)
		}
	}
	return nil
}

func (f *DebugFlags) Type() string {
	return "flags"
}
