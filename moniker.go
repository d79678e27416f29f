// Package moniker makes working with variable binding in abstract syntax
// trees simple, correct and boilerplate-light.
//
// Every interpreter, type checker or proof assistant has to answer the same
// question: how do we represent scopes (lambda parameters, let bindings,
// pattern matches, quantifiers) so that alpha-equivalence, free-variable
// computation and capture-avoiding substitution come out right? Moniker
// answers it once, with a locally nameless representation that works
// uniformly over arbitrary user-defined term types:
//   - Bound variables are positional references (scope depth + binder slot),
//     so alpha-equivalence is plain structural comparison.
//   - Free variables carry process-unique identities, so substitution can
//     never capture.
//
// # Quick Start
//
//	// λx. x: close a body over a binder
//	x := moniker.NewBinder("x")
//	id := Lam{Scope: moniker.NewScope[moniker.Binder, Expr](x, Var{moniker.Free{FreeVar: x.FreeVar}})}
//
//	// Deconstruct safely: the binder comes back with a brand-new identity
//	param, body := id.Scope.Unbind()
//
//	// Capture-avoiding substitution, no renaming required
//	result := body.Subst(param.FreeVar, someTerm)
//
// User AST types participate by implementing the Term capability (anything
// that can appear under a binder) and, for binding positions, the Pattern
// capability. Composite nodes can derive every method from their field
// layout with the helpers in pkg/shape.
//
// # More Information
//
// For detailed documentation, see:
//   - Core engine: github.com/heyrutvik/moniker/pkg/binder
//   - Reflection derive: github.com/heyrutvik/moniker/pkg/shape
//   - Worked examples: examples/lc (untyped), examples/stlc (simply typed)
package moniker

import "github.com/heyrutvik/moniker/pkg/binder"

// Version returns the current version of moniker.
func Version() string {
	return "v0.1.0-dev"
}

// Re-exported core types; see package binder for full documentation.
type (
	FreeVarID   = binder.FreeVarID
	FreeVar     = binder.FreeVar
	BoundVar    = binder.BoundVar
	ScopeOffset = binder.ScopeOffset
	BinderIndex = binder.BinderIndex
	Var         = binder.Var
	Free        = binder.Free
	Bound       = binder.Bound
	Term        = binder.Term
	Pattern     = binder.Pattern
	ScopeState  = binder.ScopeState
	FreeVarSet  = binder.FreeVarSet
	Binder      = binder.Binder
	Ignore      = binder.Ignore

	Scope[P binder.Pattern, T binder.Term]          = binder.Scope[P, T]
	Embed[T binder.Term]                            = binder.Embed[T]
	PatternPair[A binder.Pattern, B binder.Pattern] = binder.PatternPair[A, B]
	PatternList[P binder.Pattern]                   = binder.PatternList[P]
	Rec[P binder.Pattern]                           = binder.Rec[P]
	Nest[P binder.Pattern]                          = binder.Nest[P]
)

// FreshVar creates a free variable with a brand-new process-unique
// identity.
func FreshVar(hint string) FreeVar {
	return binder.FreshVar(hint)
}

// NewBinder creates a binder for a brand-new free variable.
func NewBinder(hint string) Binder {
	return binder.NewBinder(hint)
}

// NewScope closes body over pattern's binders.
func NewScope[P Pattern, T Term](pattern P, body T) Scope[P, T] {
	return binder.NewScope(pattern, body)
}

// NewRec closes a recursive pattern's embedded content over its own
// binders.
func NewRec[P Pattern](pattern P) Rec[P] {
	return binder.NewRec(pattern)
}

// NewNest closes a telescope: each element's embedded content is closed
// over the binders of the elements preceding it.
func NewNest[P Pattern](patterns []P) Nest[P] {
	return binder.NewNest(patterns)
}

// Unbind2 opens two scopes with one shared set of fresh variables.
func Unbind2[P1 Pattern, T1 Term, P2 Pattern, T2 Term](s1 Scope[P1, T1], s2 Scope[P2, T2]) (P1, T1, T2) {
	return binder.Unbind2(s1, s2)
}

// FreeVars collects the set of free variables of a term.
func FreeVars(t Term) FreeVarSet {
	return binder.FreeVars(t)
}
