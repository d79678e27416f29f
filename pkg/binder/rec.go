package binder

// Rec is a recursive pattern: its embedded term content may reference the
// pattern's own binders. This is the binding structure of letrec, where the
// right-hand sides of a binding group can see the names being defined.
//
// Rec introduces one binding level of its own, so outer references inside
// its embedded content sit one scope boundary deeper than they would in a
// plain pattern.
type Rec[P Pattern] struct {
	inner P
}

// NewRec closes the pattern's embedded content over its own binders.
func NewRec[P Pattern](pattern P) Rec[P] {
	closed := pattern.ClosePattern(OuterState(), pattern.Binders()).(P)
	return Rec[P]{inner: closed}
}

// Unrec reopens the embedded content with the pattern's own binders,
// returning a pattern whose self-references are ordinary free variables.
// Freshening is not performed here: it already happened when the enclosing
// scope was unbound, and the reopened references must use those same
// identities.
func (r Rec[P]) Unrec() P {
	return r.inner.OpenPattern(OuterState(), r.inner.Binders()).(P)
}

func (r Rec[P]) PatternEq(other Pattern) bool {
	o, ok := other.(Rec[P])
	return ok && r.inner.PatternEq(o.inner)
}

func (r Rec[P]) Freshen() Pattern {
	return Rec[P]{inner: r.inner.Freshen().(P)}
}

func (r Rec[P]) Binders() []Binder {
	return r.inner.Binders()
}

func (r Rec[P]) ClosePattern(state ScopeState, binders []Binder) Pattern {
	return Rec[P]{inner: r.inner.ClosePattern(state.Incr(), binders).(P)}
}

func (r Rec[P]) OpenPattern(state ScopeState, binders []Binder) Pattern {
	return Rec[P]{inner: r.inner.OpenPattern(state.Incr(), binders).(P)}
}

func (r Rec[P]) SubstPattern(v FreeVar, replacement Term) Pattern {
	return Rec[P]{inner: r.inner.SubstPattern(v, replacement).(P)}
}

func (r Rec[P]) VisitFreeVars(visit func(FreeVar)) {
	r.inner.VisitFreeVars(visit)
}

// Nest is a telescope: an ordered sequence of sub-patterns in which every
// binder scopes over the embedded term content of all later elements. This
// is the binding structure of sequential let, where each right-hand side can
// see the bindings before it.
//
// Like Rec, Nest introduces one binding level of its own for its internal
// references.
type Nest[P Pattern] struct {
	inner []P
}

// NewNest closes each element's embedded content over the binders of the
// elements preceding it.
func NewNest[P Pattern](patterns []P) Nest[P] {
	var bound []Binder
	inner := make([]P, len(patterns))
	for i, p := range patterns {
		inner[i] = p.ClosePattern(OuterState(), bound).(P)
		bound = append(bound, p.Binders()...)
	}
	return Nest[P]{inner: inner}
}

// Unnest reopens each element's embedded content with the binders of its
// predecessors, left to right. As with [Rec.Unrec], no freshening happens
// here; the enclosing scope's Unbind already supplied fresh identities and
// the reopened references must agree with the opened body.
func (n Nest[P]) Unnest() []P {
	var bound []Binder
	out := make([]P, len(n.inner))
	for i, p := range n.inner {
		out[i] = p.OpenPattern(OuterState(), bound).(P)
		bound = append(bound, out[i].Binders()...)
	}
	return out
}

func (n Nest[P]) PatternEq(other Pattern) bool {
	o, ok := other.(Nest[P])
	if !ok || len(n.inner) != len(o.inner) {
		return false
	}
	for i := range n.inner {
		if !n.inner[i].PatternEq(o.inner[i]) {
			return false
		}
	}
	return true
}

func (n Nest[P]) Freshen() Pattern {
	inner := make([]P, len(n.inner))
	for i, p := range n.inner {
		inner[i] = p.Freshen().(P)
	}
	return Nest[P]{inner: inner}
}

func (n Nest[P]) Binders() []Binder {
	var binders []Binder
	for _, p := range n.inner {
		binders = append(binders, p.Binders()...)
	}
	return binders
}

func (n Nest[P]) ClosePattern(state ScopeState, binders []Binder) Pattern {
	inner := make([]P, len(n.inner))
	for i, p := range n.inner {
		inner[i] = p.ClosePattern(state.Incr(), binders).(P)
	}
	return Nest[P]{inner: inner}
}

func (n Nest[P]) OpenPattern(state ScopeState, binders []Binder) Pattern {
	inner := make([]P, len(n.inner))
	for i, p := range n.inner {
		inner[i] = p.OpenPattern(state.Incr(), binders).(P)
	}
	return Nest[P]{inner: inner}
}

func (n Nest[P]) SubstPattern(v FreeVar, replacement Term) Pattern {
	inner := make([]P, len(n.inner))
	for i, p := range n.inner {
		inner[i] = p.SubstPattern(v, replacement).(P)
	}
	return Nest[P]{inner: inner}
}

func (n Nest[P]) VisitFreeVars(visit func(FreeVar)) {
	for _, p := range n.inner {
		p.VisitFreeVars(visit)
	}
}
