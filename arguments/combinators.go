package arguments

import "github.com/samber/lo"

// FirstOf presents alternative arguments under one name. Parse returns the
// first alternative that succeeds.
type FirstOf struct {
	base
	children []Argument
}

var _ Argument = (*FirstOf)(nil)

// NewFirstOf returns a FirstOf owning children in declaration order.
func NewFirstOf(name string, children ...Argument) *FirstOf {
	f := &FirstOf{base: base{name: name}, children: children}
	adopt(f, children)
	return f
}

// Children returns the alternatives in declaration order.
func (f *FirstOf) Children() []Argument { return f.children }

// Parse tries each alternative on a fork of cur and commits the first
// success. When all fail the most specific error wins: rejected over
// invalid over missing.
func (f *FirstOf) Parse(ctx *Context, cur *Cursor) (any, error) {
	var failure error
	for _, child := range f.children {
		fork := cur.Fork()
		v, err := child.Parse(ctx, fork)
		if err == nil {
			cur.Commit(fork)
			return v, nil
		}
		failure = moreSpecific(failure, err)
	}
	if failure == nil {
		return nil, missingArgument(ctx, f.qualifiedName())
	}
	return nil, failure
}

// Suggest concatenates the suggestions of every alternative, first seen
// order, deduplicated and capped.
func (f *FirstOf) Suggest(ctx *Context, cur *Cursor) []string {
	var all []string
	for _, child := range f.children {
		all = append(all, child.Suggest(ctx, cur.Fork())...)
	}
	return capSuggestions(all, ctx.settings.SuggestionCap)
}

// Sequence parses its children one after another. Each child value is
// stored under the child name.
type Sequence struct {
	base
	children []Argument
}

var _ Argument = (*Sequence)(nil)

// NewSequence returns a Sequence owning children in order. A sequence
// without children accepts no tokens.
func NewSequence(name string, children ...Argument) *Sequence {
	s := &Sequence{base: base{name: name}, children: children}
	adopt(s, children)
	return s
}

// Children returns the sequenced arguments.
func (s *Sequence) Children() []Argument { return s.children }

// Parse parses every child into a staged context and merges it into ctx
// only when all succeed. The result lists the child values in order.
func (s *Sequence) Parse(ctx *Context, cur *Cursor) (any, error) {
	staged := ctx.stage()
	values := make([]any, 0, len(s.children))
	for _, child := range s.children {
		v, err := child.Parse(staged, cur)
		if err != nil {
			return nil, err
		}
		staged.Set(child.Name(), v)
		values = append(values, v)
	}
	ctx.merge(staged)
	return values, nil
}

// Suggest parses the leading children and asks the child positioned at the
// last token for suggestions. A child that fails, or that would consume the
// last token too, is asked itself: it may span several tokens.
func (s *Sequence) Suggest(ctx *Context, cur *Cursor) []string {
	cur = cur.Fork()
	staged := ctx.stage()
	for _, child := range s.children {
		if cur.Remaining() <= 1 {
			return child.Suggest(staged, cur)
		}
		fork := cur.Fork()
		v, err := child.Parse(staged, fork)
		if err != nil || fork.Remaining() == 0 {
			return child.Suggest(staged, cur)
		}
		cur.Commit(fork)
		staged.Set(child.Name(), v)
	}
	return nil
}

func capSuggestions(suggestions []string, limit int) []string {
	suggestions = lo.Uniq(suggestions)
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
