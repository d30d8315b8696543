package arguments

import (
	"strconv"
	"strings"

	"github.com/tradepost/cmdargs/messages"
)

// Literal accepts one fixed keyword, case-insensitively.
type Literal struct {
	base
	word string
}

// NewLiteral returns a Literal for word stored under name.
func NewLiteral(name, word string) *Literal {
	return &Literal{base: base{name: name}, word: word}
}

// Word returns the keyword.
func (l *Literal) Word() string { return l.word }

// Parse implements Argument. The value is the keyword as declared.
func (l *Literal) Parse(ctx *Context, cur *Cursor) (any, error) {
	token, ok := cur.Next()
	if !ok {
		return nil, missingArgument(ctx, l.qualifiedName())
	}
	if !strings.EqualFold(token, l.word) {
		reason := ctx.settings.Messages.Format(messages.UnknownLiteral, messages.Args{"expected": l.word})
		return nil, invalidArgument(ctx, l.qualifiedName(), token, reason)
	}
	return l.word, nil
}

// Suggest implements Argument.
func (l *Literal) Suggest(_ *Context, cur *Cursor) []string {
	token, ok := partial(cur)
	if !ok || !strings.HasPrefix(strings.ToLower(l.word), strings.ToLower(token)) {
		return nil
	}
	return []string{l.word}
}

// Word accepts any single token.
type Word struct {
	base
}

// NewWord returns a Word stored under name.
func NewWord(name string) *Word {
	return &Word{base: base{name: name}}
}

// Parse implements Argument. The value is the token.
func (w *Word) Parse(ctx *Context, cur *Cursor) (any, error) {
	token, ok := cur.Next()
	if !ok {
		return nil, missingArgument(ctx, w.qualifiedName())
	}
	return token, nil
}

// Suggest implements Argument; free text has nothing to offer.
func (w *Word) Suggest(*Context, *Cursor) []string { return nil }

// Integer accepts a whole number within [min, max].
type Integer struct {
	base
	min, max int64
}

// NewInteger returns an Integer bounded by min and max inclusive.
func NewInteger(name string, min, max int64) *Integer {
	return &Integer{base: base{name: name}, min: min, max: max}
}

// Parse implements Argument. The value is an int64. Malformed numbers are
// invalid, numbers out of range are rejected.
func (i *Integer) Parse(ctx *Context, cur *Cursor) (any, error) {
	name := i.qualifiedName()
	token, ok := cur.Next()
	if !ok {
		return nil, missingArgument(ctx, name)
	}
	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		reason := ctx.settings.Messages.Format(messages.IntegerSyntax, messages.Args{"token": token})
		return nil, invalidArgument(ctx, name, token, reason)
	}
	if v < i.min || v > i.max {
		reason := ctx.settings.Messages.Format(messages.IntegerRange, messages.Args{"value": v, "min": i.min, "max": i.max})
		return nil, rejectedArgument(ctx, name, token, reason)
	}
	return v, nil
}

// Suggest implements Argument.
func (i *Integer) Suggest(*Context, *Cursor) []string { return nil }

// Remainder joins every remaining token with single spaces.
type Remainder struct {
	base
}

// NewRemainder returns a Remainder stored under name.
func NewRemainder(name string) *Remainder {
	return &Remainder{base: base{name: name}}
}

// Parse implements Argument. At least one token is required.
func (r *Remainder) Parse(ctx *Context, cur *Cursor) (any, error) {
	if !cur.HasNext() {
		return nil, missingArgument(ctx, r.qualifiedName())
	}
	return strings.Join(cur.Rest(), " "), nil
}

// Suggest implements Argument.
func (r *Remainder) Suggest(*Context, *Cursor) []string { return nil }
