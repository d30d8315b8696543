package arguments

import (
	"github.com/tradepost/cmdargs/matching"
)

type player struct {
	id, name, label string
	banned          bool
}

func (p *player) ID() string          { return p.id }
func (p *player) Name() string        { return p.name }
func (p *player) DisplayName() string { return p.label }

func players(ps ...*player) matching.SlicePool[*player] {
	return matching.SlicePool[*player](ps)
}

func testSettings() Settings {
	s := DefaultSettings()
	s.MinCompletionLength = 1
	return s
}

// failing is an argument with a fixed failure, used to exercise combinators.
type failing struct {
	base
	kind Kind
}

func newFailing(name string, kind Kind) *failing {
	return &failing{base: base{name: name}, kind: kind}
}

func (f *failing) Parse(ctx *Context, cur *Cursor) (any, error) {
	token, _ := cur.Next()
	switch f.kind {
	case KindMissing:
		return nil, missingArgument(ctx, f.qualifiedName())
	case KindInvalid:
		return nil, invalidArgument(ctx, f.qualifiedName(), token, "bad "+f.name)
	default:
		return nil, rejectedArgument(ctx, f.qualifiedName(), token, "refused by "+f.name)
	}
}

func (f *failing) Suggest(*Context, *Cursor) []string { return []string{f.name} }

// panicking blows up during completion.
type panicking struct {
	base
}

func (p *panicking) Parse(*Context, *Cursor) (any, error) { return nil, nil }
func (p *panicking) Suggest(*Context, *Cursor) []string    { panic("boom") }
