package binder

import "fmt"

// FreeVar is a variable whose binder is not enclosed within the term under
// consideration. Its identity is the generated id; the hint is kept only for
// display and never participates in equality or hashing.
type FreeVar struct {
	ID   FreeVarID
	Hint string
}

// FreshVar creates a free variable with a brand-new identity.
// The hint is the human-readable name the variable will print as.
func FreshVar(hint string) FreeVar {
	return FreeVar{ID: freshID(), Hint: hint}
}

// WithFreshID returns a copy of the variable under a new identity,
// preserving the display hint. Used by pattern freshening.
func (v FreeVar) WithFreshID() FreeVar {
	return FreeVar{ID: freshID(), Hint: v.Hint}
}

// Eq reports whether two free variables are the same variable.
// Hints are ignored.
func (v FreeVar) Eq(other FreeVar) bool {
	return v.ID == other.ID
}

func (v FreeVar) String() string {
	if v.Hint == "" {
		return fmt.Sprintf("$%d", v.ID)
	}
	return fmt.Sprintf("%s$%d", v.Hint, v.ID)
}

// ScopeOffset counts how many Scope boundaries sit between a bound variable
// occurrence and the scope whose pattern binds it.
type ScopeOffset uint32

// BinderIndex is the positional slot of a binder within a pattern's
// flattened, left-to-right binder sequence.
type BinderIndex uint32

// BoundVar is a relative reference to a binder in an enclosing scope.
// It has no identity of its own: two BoundVars are the same reference iff
// their offset and index match. A BoundVar is only meaningful inside the
// body of the scope it indexes.
type BoundVar struct {
	Offset ScopeOffset
	Index  BinderIndex
	Hint   string
}

// Eq reports whether two bound variables refer to the same binding position.
// Hints are ignored.
func (v BoundVar) Eq(other BoundVar) bool {
	return v.Offset == other.Offset && v.Index == other.Index
}

func (v BoundVar) String() string {
	if v.Hint == "" {
		return fmt.Sprintf("@%d.%d", v.Offset, v.Index)
	}
	return fmt.Sprintf("%s@%d.%d", v.Hint, v.Offset, v.Index)
}

// Var is the tagged union over free and bound variables. Every leaf of a
// user AST that can be bound is a Var; the two concrete cases are Free and
// Bound. Var values implement Term, so a bare variable is itself a valid
// term.
type Var interface {
	Term
	fmt.Stringer
	sealedVar()
}

// Free wraps a FreeVar as a Var leaf.
type Free struct {
	FreeVar
}

// Bound wraps a BoundVar as a Var leaf.
type Bound struct {
	BoundVar
}

func (Free) sealedVar()  {}
func (Bound) sealedVar() {}

// TermEq reports alpha-equivalence with another term: true only for a Free
// leaf carrying the same identity.
func (v Free) TermEq(other Term) bool {
	o, ok := other.(Free)
	return ok && v.FreeVar.Eq(o.FreeVar)
}

// CloseTerm rewrites this variable to a bound reference if it is one of the
// binders being closed over, leaving it untouched otherwise.
func (v Free) CloseTerm(state ScopeState, binders []Binder) Term {
	for i, b := range binders {
		if b.FreeVar.Eq(v.FreeVar) {
			return Bound{BoundVar{
				Offset: state.Depth(),
				Index:  BinderIndex(i),
				Hint:   v.Hint,
			}}
		}
	}
	return v
}

// OpenTerm leaves a free variable untouched: opening only affects bound
// references at the matching depth.
func (v Free) OpenTerm(ScopeState, []Binder) Term {
	return v
}

// Subst returns the replacement if this leaf is the substitution target.
func (v Free) Subst(target FreeVar, replacement Term) Term {
	if v.FreeVar.Eq(target) {
		return replacement
	}
	return v
}

func (v Free) VisitFreeVars(visit func(FreeVar)) {
	visit(v.FreeVar)
}

// TermEq reports alpha-equivalence with another term: true only for a Bound
// leaf with the same offset and index. Hints never matter.
func (v Bound) TermEq(other Term) bool {
	o, ok := other.(Bound)
	return ok && v.BoundVar.Eq(o.BoundVar)
}

// CloseTerm leaves a bound variable untouched: it already points at its
// binder and crossing additional scope boundaries is accounted for by the
// depth carried in state, not by rewriting the leaf.
func (v Bound) CloseTerm(ScopeState, []Binder) Term {
	return v
}

// OpenTerm replaces the reference with the corresponding binder's free
// variable when the traversal has reached the depth this leaf indexes.
//
// An index outside the binder list means the pattern's advertised binder
// count disagrees with the body, which is a precondition violation in a
// hand-written Pattern or Term implementation; it panics rather than
// silently corrupting binding structure.
func (v Bound) OpenTerm(state ScopeState, binders []Binder) Term {
	if v.Offset != state.Depth() {
		return v
	}
	if int(v.Index) >= len(binders) {
		panic(fmt.Sprintf(
			"moniker: bound variable %s indexes slot %d of a pattern with %d binders",
			v, v.Index, len(binders),
		))
	}
	return Free{binders[v.Index].FreeVar}
}

// Subst never touches bound variables; substitution targets are free.
func (v Bound) Subst(FreeVar, Term) Term {
	return v
}

func (v Bound) VisitFreeVars(func(FreeVar)) {}
