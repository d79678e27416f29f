// Package binder implements a locally nameless representation of variable
// binding for programmer-defined abstract syntax trees.
//
// Bound variables are positional references (scope depth + binder slot) and
// free variables carry process-unique identities, which makes
// alpha-equivalence a plain structural comparison and substitution
// capture-free by construction.
//
// User AST types participate by implementing the Term capability (anything
// that can appear under a binder) and/or the Pattern capability (anything
// that can appear on the binding side of a [Scope]). Composite types
// typically delegate each method to their fields, either by hand or through
// the reflection helpers in package shape.
//
// # Quick start
//
//	x := binder.NewBinder("x")
//	identity := Lam{Scope: binder.NewScope[binder.Binder, Expr](x, Var{binder.Free{x.FreeVar}})}
//
//	param, body := identity.Scope.Unbind()
//	// param binds a brand-new free variable; body references it.
package binder

// ScopeState tracks how many Scope boundaries a structural traversal has
// crossed on its way down from the scope being constructed or opened.
// The zero depth is the scope itself; each nested Scope body adds one.
type ScopeState struct {
	depth ScopeOffset
}

// OuterState is the traversal state at the boundary of the scope being
// closed or opened.
func OuterState() ScopeState {
	return ScopeState{}
}

// Incr returns the state one scope boundary deeper.
func (s ScopeState) Incr() ScopeState {
	return ScopeState{depth: s.depth + 1}
}

// Depth returns the number of scope boundaries crossed so far.
func (s ScopeState) Depth() ScopeOffset {
	return s.depth
}

// Term is the capability implemented by anything that can appear as the
// body of a binding operation: any AST node type.
//
// All methods are pure: traversals return new values and never mutate their
// receiver, so terms are safe to share between goroutines.
//
// Implementations must return their own concrete type from CloseTerm,
// OpenTerm and Subst (except for Subst at a substitution target, which
// returns the replacement); the generic Scope machinery relies on this when
// reassembling typed scopes.
type Term interface {
	// TermEq reports structural alpha-equivalence. Display hints attached
	// to variables never affect the result.
	TermEq(other Term) bool

	// CloseTerm rewrites occurrences of the given binders' free variables
	// into bound references at the current depth. Called by Scope
	// construction; implementations recurse into sub-terms, passing state
	// through unchanged except across nested Scope bodies.
	CloseTerm(state ScopeState, binders []Binder) Term

	// OpenTerm is the inverse of CloseTerm: bound references at the current
	// depth are replaced by the corresponding binder's free variable.
	OpenTerm(state ScopeState, binders []Binder) Term

	// Subst replaces every occurrence of the free variable v with the
	// replacement term. No renaming is ever needed: the replacement's own
	// bound variables are indexed relative to its own binders and remain
	// correct wherever it is spliced in.
	Subst(v FreeVar, replacement Term) Term

	// VisitFreeVars calls visit for every free variable occurrence in the
	// term, in traversal order. Bound references contribute nothing.
	VisitFreeVars(visit func(FreeVar))
}

// FreeVarSet is a set of free variables keyed by identity.
type FreeVarSet map[FreeVarID]FreeVar

// Contains reports whether the set holds the given variable.
func (s FreeVarSet) Contains(v FreeVar) bool {
	_, ok := s[v.ID]
	return ok
}

// Insert adds a variable to the set.
func (s FreeVarSet) Insert(v FreeVar) {
	s[v.ID] = v
}

// FreeVars collects the set of free variables of a term.
func FreeVars(t Term) FreeVarSet {
	set := make(FreeVarSet)
	t.VisitFreeVars(set.Insert)
	return set
}
