package arguments

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tradepost/cmdargs/log"
	"github.com/tradepost/cmdargs/matching"
	"github.com/tradepost/cmdargs/messages"
)

// Visibility reports whether caller may see candidate at all. Hidden
// candidates neither match nor complete.
type Visibility[C matching.Candidate] func(caller any, candidate C) bool

// Acceptance refuses a uniquely resolved candidate, e.g. the caller itself.
// A non-nil error becomes an ArgumentRejected failure with its text as reason.
type Acceptance[C matching.Candidate] func(caller any, candidate C) error

// EntityOption configures an EntityArgument.
type EntityOption[C matching.Candidate] func(*EntityArgument[C])

// WithStrategy overrides the configured matching strategy.
func WithStrategy[C matching.Candidate](s matching.Strategy) EntityOption[C] {
	return func(a *EntityArgument[C]) { a.strategy = s }
}

// WithVisibility sets the per-caller visibility predicate.
func WithVisibility[C matching.Candidate](v Visibility[C]) EntityOption[C] {
	return func(a *EntityArgument[C]) { a.visible = v }
}

// WithAcceptance sets the semantic filter applied after resolution.
func WithAcceptance[C matching.Candidate](fn Acceptance[C]) EntityOption[C] {
	return func(a *EntityArgument[C]) { a.accept = fn }
}

// WithMinCompletion overrides the configured minimum completion length.
func WithMinCompletion[C matching.Candidate](n int) EntityOption[C] {
	return func(a *EntityArgument[C]) { a.minCompletion = &n }
}

// WithDisplayNames overrides whether display labels are matched.
func WithDisplayNames[C matching.Candidate](enabled bool) EntityOption[C] {
	return func(a *EntityArgument[C]) { a.displayNames = &enabled }
}

// WithIDSyntax validates identifier tokens before lookup.
func WithIDSyntax[C matching.Candidate](fn func(token string) error) EntityOption[C] {
	return func(a *EntityArgument[C]) { a.idSyntax = fn }
}

// UUIDSyntax accepts RFC 4122 identifiers.
func UUIDSyntax(token string) error {
	_, err := uuid.Parse(token)
	return err
}

type entityKind int

const (
	byName entityKind = iota
	byID
)

// Entity is implemented by every EntityArgument regardless of its candidate
// type.
type Entity interface {
	Argument
	// ByID reports whether the argument resolves identifiers rather than
	// names.
	ByID() bool
}

var _ Entity = (*EntityArgument[matching.Candidate])(nil)

// EntityArgument resolves a token to one live candidate, by name or by
// identifier.
type EntityArgument[C matching.Candidate] struct {
	base
	kind          entityKind
	pool          matching.Pool[C]
	strategy      matching.Strategy
	visible       Visibility[C]
	accept        Acceptance[C]
	idSyntax      func(string) error
	minCompletion *int
	displayNames  *bool
}

// NewByName returns an argument matching names with a Strategy.
func NewByName[C matching.Candidate](name string, pool matching.Pool[C], opts ...EntityOption[C]) *EntityArgument[C] {
	return newEntity(name, byName, pool, opts)
}

// NewByID returns an argument looking candidates up by identifier,
// case-insensitively.
func NewByID[C matching.Candidate](name string, pool matching.Pool[C], opts ...EntityOption[C]) *EntityArgument[C] {
	return newEntity(name, byID, pool, opts)
}

// ByID implements Entity.
func (a *EntityArgument[C]) ByID() bool { return a.kind == byID }

func newEntity[C matching.Candidate](name string, kind entityKind, pool matching.Pool[C], opts []EntityOption[C]) *EntityArgument[C] {
	a := &EntityArgument[C]{base: base{name: name}, kind: kind, pool: pool}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *EntityArgument[C]) filter(ctx *Context) matching.Filter[C] {
	if a.visible == nil {
		return nil
	}
	caller := ctx.Caller()
	return func(c C) bool { return a.visible(caller, c) }
}

func (a *EntityArgument[C]) strategyFor(ctx *Context) matching.Strategy {
	if a.strategy != nil {
		return a.strategy
	}
	return ctx.settings.Strategy
}

func (a *EntityArgument[C]) displayNamesFor(ctx *Context) bool {
	if a.displayNames != nil {
		return *a.displayNames
	}
	return ctx.settings.DisplayNames
}

func (a *EntityArgument[C]) minCompletionFor(ctx *Context) int {
	if a.minCompletion != nil {
		return *a.minCompletion
	}
	return ctx.settings.MinCompletionLength
}

// Parse implements Argument. The value is the resolved candidate of type C.
func (a *EntityArgument[C]) Parse(ctx *Context, cur *Cursor) (any, error) {
	name := a.qualifiedName()
	token, ok := cur.Next()
	if !ok {
		return nil, missingArgument(ctx, name)
	}

	var (
		c   C
		err error
	)
	if a.kind == byID {
		c, err = a.resolveID(ctx, name, token)
	} else {
		c, err = a.resolveName(ctx, name, token)
	}
	if err != nil {
		return nil, err
	}

	if a.accept != nil {
		if reason := a.accept(ctx.Caller(), c); reason != nil {
			return nil, rejectedArgument(ctx, name, token, reason.Error())
		}
	}
	return c, nil
}

func (a *EntityArgument[C]) resolveName(ctx *Context, name, token string) (C, error) {
	var zero C
	result := matching.Match(a.strategyFor(ctx), token, a.pool, a.filter(ctx), matching.Options{
		DisplayNames: a.displayNamesFor(ctx),
		UniqueNames:  ctx.settings.UniqueNames,
	})
	if ctx.settings.TraceParse {
		log.Debug("name matched",
			zap.String("argument", name),
			zap.String("input", token),
			zap.Int("matches", result.Len()),
			zap.Bool("exact", result.Exact))
	}

	if c, ok := result.Unique(); ok {
		return c, nil
	}
	if result.Len() == 0 {
		reason := ctx.settings.Messages.Format(messages.NoMatch, messages.Args{"input": token})
		return zero, invalidArgument(ctx, name, token, reason)
	}
	_, report := ctx.settings.resolver().Resolve(token, matching.Entries(result.Candidates))
	return zero, rejectedArgument(ctx, name, token, report)
}

func (a *EntityArgument[C]) resolveID(ctx *Context, name, token string) (C, error) {
	var zero C
	if a.idSyntax != nil {
		if err := a.idSyntax(token); err != nil {
			reason := ctx.settings.Messages.Format(messages.InvalidIdentifier, messages.Args{"token": token})
			return zero, invalidArgument(ctx, name, token, reason)
		}
	}
	filter := a.filter(ctx)
	for _, c := range a.pool.Candidates() {
		if strings.EqualFold(c.ID(), token) && (filter == nil || filter(c)) {
			return c, nil
		}
	}
	reason := ctx.settings.Messages.Format(messages.NoMatch, messages.Args{"input": token})
	return zero, invalidArgument(ctx, name, token, reason)
}

// Suggest implements Argument.
func (a *EntityArgument[C]) Suggest(ctx *Context, cur *Cursor) []string {
	token, ok := partial(cur)
	if !ok {
		return nil
	}
	opts := matching.SuggestOptions{
		MinLength:    a.minCompletionFor(ctx),
		Cap:          ctx.settings.SuggestionCap,
		DisplayNames: a.displayNamesFor(ctx),
	}
	if a.kind == byID {
		return matching.SuggestIDs(token, a.pool, a.filter(ctx), opts)
	}
	return matching.Suggest(token, a.pool, a.filter(ctx), opts)
}
