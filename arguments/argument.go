package arguments

// Argument is one unit of the command grammar.
type Argument interface {
	// Name is the key the parsed value is stored under.
	Name() string
	// Parse consumes the tokens of one value. On failure it returns a
	// *ParseError and leaves ctx untouched.
	Parse(ctx *Context, cur *Cursor) (any, error)
	// Suggest completes the last token. It never fails and never advances
	// cur; an empty result means nothing to offer.
	Suggest(ctx *Context, cur *Cursor) []string
}

// base carries the name and parent link shared by every argument kind.
// parent is a back reference set by the adopting combinator, not ownership.
type base struct {
	name   string
	parent Argument
}

func (b *base) Name() string { return b.name }

func (b *base) setParent(parent Argument) { b.parent = parent }

// qualifiedName is the name used in error messages. Alternatives of a
// FirstOf are presented under the FirstOf name.
func (b *base) qualifiedName() string {
	if b.parent == nil {
		return b.name
	}
	parent := qualifiedName(b.parent)
	if _, ok := b.parent.(*FirstOf); ok {
		return parent
	}
	return parent + "." + b.name
}

type adoptable interface {
	setParent(Argument)
}

type qualified interface {
	qualifiedName() string
}

func qualifiedName(a Argument) string {
	if q, ok := a.(qualified); ok {
		return q.qualifiedName()
	}
	return a.Name()
}

// QualifiedName returns the name a's errors are reported under.
func QualifiedName(a Argument) string {
	return qualifiedName(a)
}

func adopt(parent Argument, children []Argument) {
	for _, child := range children {
		if a, ok := child.(adoptable); ok {
			a.setParent(parent)
		}
	}
}

// partial returns the token to complete: the single remaining one.
func partial(cur *Cursor) (string, bool) {
	if cur.Remaining() != 1 {
		return "", false
	}
	return cur.Fork().Next()
}
