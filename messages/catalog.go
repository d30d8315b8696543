package messages

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Key identifies one message template.
type Key string

const (
	MissingArgument  Key = "argument.missing"
	InvalidArgument  Key = "argument.invalid"
	ArgumentRejected Key = "argument.rejected"
	TrailingArgument Key = "argument.trailing"

	NoMatch           Key = "entity.nomatch"
	Ambiguous         Key = "entity.ambiguous"
	AmbiguousEntry    Key = "entity.ambiguous.entry"
	AmbiguousMore     Key = "entity.ambiguous.more"
	InvalidIdentifier Key = "entity.badid"
	SelfTarget        Key = "entity.self"

	UnknownLiteral Key = "literal.unknown"
	IntegerSyntax  Key = "integer.syntax"
	IntegerRange   Key = "integer.range"
)

//go:embed en.yaml
var defaultTemplates []byte

// Args holds placeholder values interpolated into a template.
type Args map[string]any

// Catalog renders localized messages.
type Catalog interface {
	Format(key Key, args Args) string
}

// Bundle is a Catalog backed by `{placeholder}` templates.
type Bundle struct {
	templates map[Key]string
}

var _ Catalog = (*Bundle)(nil)

// Default returns the built-in English bundle.
func Default() *Bundle {
	b, err := Parse(defaultTemplates)
	if err != nil {
		panic(fmt.Sprintf("embedded message templates broken: %s", err.Error()))
	}
	return b
}

// Parse reads a YAML mapping of key to template.
func Parse(data []byte) (*Bundle, error) {
	raw := make(map[string]string)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to parse message templates")
	}
	b := &Bundle{templates: make(map[Key]string, len(raw))}
	for k, v := range raw {
		b.templates[Key(k)] = v
	}
	return b, nil
}

// Load returns the default bundle overlaid with the templates in path.
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read message file %s", path)
	}
	overrides, err := Parse(data)
	if err != nil {
		return nil, err
	}
	b := Default()
	b.Merge(overrides)
	return b, nil
}

// Merge copies every template of other into b, replacing existing ones.
func (b *Bundle) Merge(other *Bundle) {
	for k, v := range other.templates {
		b.templates[k] = v
	}
}

// Template returns the raw template for key.
func (b *Bundle) Template(key Key) (string, bool) {
	t, ok := b.templates[key]
	return t, ok
}

// Format implements Catalog. Unknown keys render as the key itself so a
// missing translation never hides the failure.
func (b *Bundle) Format(key Key, args Args) string {
	tmpl, ok := b.templates[key]
	if !ok {
		tmpl = string(key)
	}
	if len(args) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(args)*2)
	for name, value := range args {
		pairs = append(pairs, "{"+name+"}", fmt.Sprint(value))
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
