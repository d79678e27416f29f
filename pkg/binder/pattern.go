package binder

// Pattern is the capability implemented by anything that can appear on the
// binding side of a [Scope]: simple variable binders, wildcard patterns,
// tuples and sequences of nested patterns.
//
// A pattern introduces zero or more binder slots in a fixed left-to-right
// order. Slot indices are purely positional: composite patterns concatenate
// their sub-patterns' binder sequences in field order, so the numbering is
// reproducible from the shape alone.
//
// The traversal methods (ClosePattern, OpenPattern, SubstPattern,
// VisitFreeVars) act on embedded term content only; binder occurrences
// themselves are inert. They exist so that annotations and other [Embed]ded
// values inside a pattern behave as ordinary term content when the pattern's
// scope is nested inside further binders.
//
// As with Term, implementations must return their own concrete type from
// Freshen, ClosePattern, OpenPattern and SubstPattern.
type Pattern interface {
	// PatternEq reports whether two patterns have the same binding shape.
	// Binder identities and hints are ignored entirely; embedded terms are
	// compared with TermEq. Combined with positional bound references this
	// is what makes Scope equality alpha-equivalence.
	PatternEq(other Pattern) bool

	// Freshen returns a copy of the pattern with every binder slot replaced
	// by a newly generated free variable, hints preserved. Used exclusively
	// by scope opening.
	Freshen() Pattern

	// Binders enumerates the pattern's binder occurrences in slot order.
	Binders() []Binder

	// ClosePattern closes embedded term content over the given binders.
	ClosePattern(state ScopeState, binders []Binder) Pattern

	// OpenPattern opens embedded term content with the given binders.
	OpenPattern(state ScopeState, binders []Binder) Pattern

	// SubstPattern substitutes through embedded term content.
	SubstPattern(v FreeVar, replacement Term) Pattern

	// VisitFreeVars visits free variables of embedded term content.
	// Binder occurrences are not free and are not visited.
	VisitFreeVars(visit func(FreeVar))
}

// Binder is a single variable on the binding side of a pattern: one slot.
// The wrapped FreeVar gives the binder its identity before the scope is
// closed and after it is opened.
type Binder struct {
	FreeVar
}

// NewBinder creates a binder for a brand-new free variable with the given
// display hint.
func NewBinder(hint string) Binder {
	return Binder{FreshVar(hint)}
}

// PatternEq ignores the binder's identity: any two single binders have the
// same binding shape.
func (b Binder) PatternEq(other Pattern) bool {
	_, ok := other.(Binder)
	return ok
}

func (b Binder) Freshen() Pattern {
	return Binder{b.FreeVar.WithFreshID()}
}

func (b Binder) Binders() []Binder {
	return []Binder{b}
}

func (b Binder) ClosePattern(ScopeState, []Binder) Pattern { return b }
func (b Binder) OpenPattern(ScopeState, []Binder) Pattern  { return b }
func (b Binder) SubstPattern(FreeVar, Term) Pattern        { return b }
func (b Binder) VisitFreeVars(func(FreeVar))               {}

// Ignore is the wildcard pattern: it matches anything and binds nothing.
type Ignore struct{}

func (Ignore) PatternEq(other Pattern) bool {
	_, ok := other.(Ignore)
	return ok
}

func (i Ignore) Freshen() Pattern                          { return i }
func (Ignore) Binders() []Binder                           { return nil }
func (i Ignore) ClosePattern(ScopeState, []Binder) Pattern { return i }
func (i Ignore) OpenPattern(ScopeState, []Binder) Pattern  { return i }
func (i Ignore) SubstPattern(FreeVar, Term) Pattern        { return i }
func (Ignore) VisitFreeVars(func(FreeVar))                 {}

// PatternPair is a two-element composite pattern. Its binder slots are the
// first element's slots followed by the second's.
type PatternPair[A Pattern, B Pattern] struct {
	First  A
	Second B
}

func (p PatternPair[A, B]) PatternEq(other Pattern) bool {
	o, ok := other.(PatternPair[A, B])
	return ok && p.First.PatternEq(o.First) && p.Second.PatternEq(o.Second)
}

func (p PatternPair[A, B]) Freshen() Pattern {
	return PatternPair[A, B]{
		First:  p.First.Freshen().(A),
		Second: p.Second.Freshen().(B),
	}
}

func (p PatternPair[A, B]) Binders() []Binder {
	binders := append([]Binder(nil), p.First.Binders()...)
	return append(binders, p.Second.Binders()...)
}

func (p PatternPair[A, B]) ClosePattern(state ScopeState, binders []Binder) Pattern {
	return PatternPair[A, B]{
		First:  p.First.ClosePattern(state, binders).(A),
		Second: p.Second.ClosePattern(state, binders).(B),
	}
}

func (p PatternPair[A, B]) OpenPattern(state ScopeState, binders []Binder) Pattern {
	return PatternPair[A, B]{
		First:  p.First.OpenPattern(state, binders).(A),
		Second: p.Second.OpenPattern(state, binders).(B),
	}
}

func (p PatternPair[A, B]) SubstPattern(v FreeVar, replacement Term) Pattern {
	return PatternPair[A, B]{
		First:  p.First.SubstPattern(v, replacement).(A),
		Second: p.Second.SubstPattern(v, replacement).(B),
	}
}

func (p PatternPair[A, B]) VisitFreeVars(visit func(FreeVar)) {
	p.First.VisitFreeVars(visit)
	p.Second.VisitFreeVars(visit)
}

// PatternList is an ordered sequence of sub-patterns. Its binder slots are
// the concatenation of the elements' slots in order.
type PatternList[P Pattern] struct {
	Elems []P
}

func (p PatternList[P]) PatternEq(other Pattern) bool {
	o, ok := other.(PatternList[P])
	if !ok || len(p.Elems) != len(o.Elems) {
		return false
	}
	for i := range p.Elems {
		if !p.Elems[i].PatternEq(o.Elems[i]) {
			return false
		}
	}
	return true
}

func (p PatternList[P]) Freshen() Pattern {
	elems := make([]P, len(p.Elems))
	for i, e := range p.Elems {
		elems[i] = e.Freshen().(P)
	}
	return PatternList[P]{Elems: elems}
}

func (p PatternList[P]) Binders() []Binder {
	var binders []Binder
	for _, e := range p.Elems {
		binders = append(binders, e.Binders()...)
	}
	return binders
}

func (p PatternList[P]) ClosePattern(state ScopeState, binders []Binder) Pattern {
	elems := make([]P, len(p.Elems))
	for i, e := range p.Elems {
		elems[i] = e.ClosePattern(state, binders).(P)
	}
	return PatternList[P]{Elems: elems}
}

func (p PatternList[P]) OpenPattern(state ScopeState, binders []Binder) Pattern {
	elems := make([]P, len(p.Elems))
	for i, e := range p.Elems {
		elems[i] = e.OpenPattern(state, binders).(P)
	}
	return PatternList[P]{Elems: elems}
}

func (p PatternList[P]) SubstPattern(v FreeVar, replacement Term) Pattern {
	elems := make([]P, len(p.Elems))
	for i, e := range p.Elems {
		elems[i] = e.SubstPattern(v, replacement).(P)
	}
	return PatternList[P]{Elems: elems}
}

func (p PatternList[P]) VisitFreeVars(visit func(FreeVar)) {
	for _, e := range p.Elems {
		e.VisitFreeVars(visit)
	}
}
