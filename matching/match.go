package matching

// Options tunes one Match call.
type Options struct {
	// DisplayNames also tests the stripped display label of candidates whose
	// primary name did not match.
	DisplayNames bool
	// UniqueNames asserts that primary names are unique among visible
	// candidates. Together with DisplayNames off it allows returning the
	// first perfect match without finishing the scan.
	UniqueNames bool
}

func (o Options) shortCircuit() bool {
	return o.UniqueNames && !o.DisplayNames
}

// Result is the outcome of Match.
type Result[C Candidate] struct {
	Candidates []C
	// Exact is set when every candidate is a perfect match on its primary
	// name. Perfect display label matches clear it.
	Exact bool
}

// Len returns the number of matched candidates.
func (r Result[C]) Len() int { return len(r.Candidates) }

// Unique returns the single match, if there is exactly one.
func (r Result[C]) Unique() (C, bool) {
	if len(r.Candidates) != 1 {
		var zero C
		return zero, false
	}
	return r.Candidates[0], true
}

// Match returns the candidates of pool accepted by filter whose names match
// input under strategy. Perfect matches, names as long as the normalized
// input, discard every imperfect match, so a Result never mixes the two.
func Match[C Candidate](strategy Strategy, input string, pool Pool[C], filter Filter[C], opts Options) Result[C] {
	normalized := Normalize(input)
	if normalized == "" {
		return Result[C]{}
	}

	if opts.shortCircuit() {
		if c, ok := lookup(strategy, normalized, pool, filter); ok {
			return Result[C]{Candidates: []C{c}, Exact: true}
		}
	}

	col := &collector[C]{strategy: strategy, input: normalized}
	for _, c := range pool.Candidates() {
		if !filter.accept(c) {
			continue
		}
		if !col.offer(c, Normalize(c.Name()), false) && opts.DisplayNames {
			if label := normalizeLabel(c.DisplayName()); label != "" {
				col.offer(c, label, true)
			}
		}
		if col.perfect && opts.shortCircuit() {
			break
		}
	}

	return Result[C]{Candidates: col.results, Exact: col.perfect && !col.byLabel}
}

func lookup[C Candidate](strategy Strategy, normalized string, pool Pool[C], filter Filter[C]) (C, bool) {
	var zero C
	s, ok := strategy.(interface{ usesLookup() bool })
	if !ok || !s.usesLookup() {
		return zero, false
	}
	nl, ok := pool.(NameLookup[C])
	if !ok {
		return zero, false
	}
	c, ok := nl.LookupName(normalized)
	if !ok || !filter.accept(c) {
		return zero, false
	}
	return c, true
}

type collector[C Candidate] struct {
	strategy Strategy
	input    string
	results  []C
	perfect  bool
	// byLabel records a perfect match kept through a display label.
	byLabel bool
}

// offer tests one normalized field of c and reports whether the predicate
// held. Imperfect matches offered in perfect-only mode are dropped.
func (col *collector[C]) offer(c C, field string, label bool) bool {
	if !col.strategy.Matches(col.input, field) {
		return false
	}
	perfect := len(field) == len(col.input)
	switch {
	case perfect && !col.perfect:
		col.results = col.results[:0]
		col.perfect = true
	case !perfect && col.perfect:
		return true
	}
	if perfect && label {
		col.byLabel = true
	}
	col.results = append(col.results, c)
	return true
}
