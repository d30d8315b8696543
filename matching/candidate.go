package matching

// Candidate is an entity typed text can resolve to, e.g. a connected user.
type Candidate interface {
	// ID returns the stable unique identifier.
	ID() string
	// Name returns the primary name, unique among visible candidates and
	// free of whitespace.
	Name() string
	// DisplayName returns the secondary label. It may carry markup and is
	// not guaranteed unique.
	DisplayName() string
}

// Pool produces the candidates valid for the duration of one call.
type Pool[C Candidate] interface {
	Candidates() []C
}

// NameLookup is implemented by pools that find a candidate by
// case-insensitive primary name without a scan.
type NameLookup[C Candidate] interface {
	LookupName(name string) (C, bool)
}

// SlicePool is a fixed Pool.
type SlicePool[C Candidate] []C

// Candidates implements Pool.
func (p SlicePool[C]) Candidates() []C { return p }

// PoolFunc adapts a function to Pool.
type PoolFunc[C Candidate] func() []C

// Candidates implements Pool.
func (f PoolFunc[C]) Candidates() []C { return f() }

// Filter reports whether a candidate may be considered for the current call.
// A nil Filter accepts everything.
type Filter[C Candidate] func(C) bool

func (f Filter[C]) accept(c C) bool {
	return f == nil || f(c)
}

// Entry is the identifier and display form of one match, as shown in an
// ambiguity report.
type Entry struct {
	ID   string
	Name string
}

// Entries converts candidates to report entries, preferring the stripped
// display label over the primary name.
func Entries[C Candidate](candidates []C) []Entry {
	result := make([]Entry, 0, len(candidates))
	for _, c := range candidates {
		name := StripMarkup(c.DisplayName())
		if name == "" {
			name = c.Name()
		}
		result = append(result, Entry{ID: c.ID(), Name: name})
	}
	return result
}
