package binder

import "fmt"

// Scope pairs a binding pattern with the body it binds over.
//
// Construction through NewScope closes the body: every free-variable
// occurrence matching one of the pattern's binders is rewritten to a
// positional bound reference. Deconstruction through Unbind reverses this
// with brand-new free variables, so the caller can traverse the body without
// any risk of accidental capture.
//
// Scope implements Term, so scopes nest inside other scopes and inside any
// user AST node. A Scope is an immutable value; all operations return new
// scopes.
type Scope[P Pattern, T Term] struct {
	pattern P
	body    T
}

// NewScope closes body over pattern's binders and returns the resulting
// scope.
//
// The pattern is stored as given; embedded term content inside it is not
// closed over the pattern's own binders (use Rec for self-referential
// patterns).
func NewScope[P Pattern, T Term](pattern P, body T) Scope[P, T] {
	closed := body.CloseTerm(OuterState(), pattern.Binders()).(T)
	return Scope[P, T]{pattern: pattern, body: closed}
}

// Unbind opens the scope into a fresh pattern/body pair. The returned
// pattern carries newly generated free variables; the body has the
// corresponding bound references replaced by them. Every call produces
// distinct variables, even on the same scope.
func (s Scope[P, T]) Unbind() (P, T) {
	pattern := s.pattern.Freshen().(P)
	body := s.body.OpenTerm(OuterState(), pattern.Binders()).(T)
	return pattern, body
}

// UnsafePattern returns the stored pattern without freshening. The binder
// identities it carries are stale with respect to the closed body; prefer
// Unbind unless inspecting raw binding structure.
func (s Scope[P, T]) UnsafePattern() P {
	return s.pattern
}

// UnsafeBody returns the closed body, in which the pattern's variables
// appear as bound references. Prefer Unbind unless inspecting raw binding
// structure.
func (s Scope[P, T]) UnsafeBody() T {
	return s.body
}

// TermEq reports alpha-equivalence of two scopes: same pattern shape and
// alpha-equivalent bodies. Binder names play no part, so scopes differing
// only in how their binders are displayed compare equal.
func (s Scope[P, T]) TermEq(other Term) bool {
	o, ok := other.(Scope[P, T])
	return ok && s.pattern.PatternEq(o.pattern) && s.body.TermEq(o.body)
}

// CloseTerm closes the scope over an outer pattern's binders. The stored
// pattern's embedded content is traversed at the current depth; the body
// sits one scope boundary deeper.
func (s Scope[P, T]) CloseTerm(state ScopeState, binders []Binder) Term {
	return Scope[P, T]{
		pattern: s.pattern.ClosePattern(state, binders).(P),
		body:    s.body.CloseTerm(state.Incr(), binders).(T),
	}
}

// OpenTerm opens the scope with an outer pattern's binders, mirroring
// CloseTerm's depth bookkeeping exactly.
func (s Scope[P, T]) OpenTerm(state ScopeState, binders []Binder) Term {
	return Scope[P, T]{
		pattern: s.pattern.OpenPattern(state, binders).(P),
		body:    s.body.OpenTerm(state.Incr(), binders).(T),
	}
}

// Subst substitutes through both the pattern's embedded content and the
// body. No capture can occur: the replacement's bound variables are indexed
// relative to its own binders.
func (s Scope[P, T]) Subst(v FreeVar, replacement Term) Term {
	return Scope[P, T]{
		pattern: s.pattern.SubstPattern(v, replacement).(P),
		body:    s.body.Subst(v, replacement).(T),
	}
}

// VisitFreeVars visits free variables of the pattern's embedded content and
// of the body. Variables bound by this scope appear as bound references in
// the body and are therefore never visited.
func (s Scope[P, T]) VisitFreeVars(visit func(FreeVar)) {
	s.pattern.VisitFreeVars(visit)
	s.body.VisitFreeVars(visit)
}

// Unbind2 opens two scopes with a single shared set of fresh variables,
// drawn from the first scope's pattern. Useful when two binding constructs
// must be inspected side by side, for example when checking one against the
// other.
//
// The scopes' patterns must bind the same number of variables; a mismatch is
// a programmer error and panics.
func Unbind2[P1 Pattern, T1 Term, P2 Pattern, T2 Term](s1 Scope[P1, T1], s2 Scope[P2, T2]) (P1, T1, T2) {
	pattern := s1.pattern.Freshen().(P1)
	binders := pattern.Binders()
	if n := len(s2.pattern.Binders()); n != len(binders) {
		panic(fmt.Sprintf("moniker: Unbind2 patterns bind %d and %d variables", len(binders), n))
	}
	body1 := s1.body.OpenTerm(OuterState(), binders).(T1)
	body2 := s2.body.OpenTerm(OuterState(), binders).(T2)
	return pattern, body1, body2
}
