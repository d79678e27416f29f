package binder

// Embed marks a non-binding value nested inside a pattern, such as a type
// annotation attached to a binder or the right-hand side of a let binding.
//
// During pattern traversal the wrapped term is treated as ordinary term
// content (closed, opened and substituted like any sub-term) but contributes
// no binder slots of its own.
type Embed[T Term] struct {
	Inner T
}

// PatternEq compares the embedded terms with TermEq.
func (e Embed[T]) PatternEq(other Pattern) bool {
	o, ok := other.(Embed[T])
	return ok && e.Inner.TermEq(o.Inner)
}

// Freshen is the identity: an embedded value introduces no binders, so
// there is nothing to freshen. References it makes to the surrounding
// pattern's binders are reopened by Rec and Nest, which own that wiring.
func (e Embed[T]) Freshen() Pattern {
	return e
}

// Binders returns nil: embedded content never binds.
func (Embed[T]) Binders() []Binder {
	return nil
}

func (e Embed[T]) ClosePattern(state ScopeState, binders []Binder) Pattern {
	return Embed[T]{Inner: e.Inner.CloseTerm(state, binders).(T)}
}

func (e Embed[T]) OpenPattern(state ScopeState, binders []Binder) Pattern {
	return Embed[T]{Inner: e.Inner.OpenTerm(state, binders).(T)}
}

func (e Embed[T]) SubstPattern(v FreeVar, replacement Term) Pattern {
	return Embed[T]{Inner: e.Inner.Subst(v, replacement).(T)}
}

func (e Embed[T]) VisitFreeVars(visit func(FreeVar)) {
	e.Inner.VisitFreeVars(visit)
}
