package binder_test

import (
	"testing"

	"github.com/heyrutvik/moniker/pkg/binder"
)

// A minimal hand-written lambda calculus, exercising the capability
// contracts without any derive machinery.

type expr interface {
	binder.Term
}

type vr struct {
	v binder.Var
}

func fv(x binder.FreeVar) expr { return vr{v: binder.Free{FreeVar: x}} }

func (e vr) TermEq(o binder.Term) bool {
	ov, ok := o.(vr)
	return ok && e.v.TermEq(ov.v)
}

func (e vr) CloseTerm(s binder.ScopeState, bs []binder.Binder) binder.Term {
	return vr{v: e.v.CloseTerm(s, bs).(binder.Var)}
}

func (e vr) OpenTerm(s binder.ScopeState, bs []binder.Binder) binder.Term {
	return vr{v: e.v.OpenTerm(s, bs).(binder.Var)}
}

func (e vr) Subst(x binder.FreeVar, r binder.Term) binder.Term {
	if f, ok := e.v.(binder.Free); ok && f.FreeVar.Eq(x) {
		return r
	}
	return e
}

func (e vr) VisitFreeVars(visit func(binder.FreeVar)) { e.v.VisitFreeVars(visit) }

type lam struct {
	scope binder.Scope[binder.Binder, expr]
}

func mkLam(param binder.Binder, body expr) lam {
	return lam{scope: binder.NewScope[binder.Binder, expr](param, body)}
}

func (e lam) TermEq(o binder.Term) bool {
	ol, ok := o.(lam)
	return ok && e.scope.TermEq(ol.scope)
}

func (e lam) CloseTerm(s binder.ScopeState, bs []binder.Binder) binder.Term {
	return lam{scope: e.scope.CloseTerm(s, bs).(binder.Scope[binder.Binder, expr])}
}

func (e lam) OpenTerm(s binder.ScopeState, bs []binder.Binder) binder.Term {
	return lam{scope: e.scope.OpenTerm(s, bs).(binder.Scope[binder.Binder, expr])}
}

func (e lam) Subst(x binder.FreeVar, r binder.Term) binder.Term {
	return lam{scope: e.scope.Subst(x, r).(binder.Scope[binder.Binder, expr])}
}

func (e lam) VisitFreeVars(visit func(binder.FreeVar)) { e.scope.VisitFreeVars(visit) }

type ap struct {
	fn, arg expr
}

func (e ap) TermEq(o binder.Term) bool {
	oa, ok := o.(ap)
	return ok && e.fn.TermEq(oa.fn) && e.arg.TermEq(oa.arg)
}

func (e ap) CloseTerm(s binder.ScopeState, bs []binder.Binder) binder.Term {
	return ap{fn: e.fn.CloseTerm(s, bs).(expr), arg: e.arg.CloseTerm(s, bs).(expr)}
}

func (e ap) OpenTerm(s binder.ScopeState, bs []binder.Binder) binder.Term {
	return ap{fn: e.fn.OpenTerm(s, bs).(expr), arg: e.arg.OpenTerm(s, bs).(expr)}
}

func (e ap) Subst(x binder.FreeVar, r binder.Term) binder.Term {
	return ap{fn: e.fn.Subst(x, r).(expr), arg: e.arg.Subst(x, r).(expr)}
}

func (e ap) VisitFreeVars(visit func(binder.FreeVar)) {
	e.fn.VisitFreeVars(visit)
	e.arg.VisitFreeVars(visit)
}

func TestAlphaInvariance(t *testing.T) {
	x := binder.NewBinder("x")
	y := binder.NewBinder("y")

	idX := mkLam(x, fv(x.FreeVar))
	idY := mkLam(y, fv(y.FreeVar))

	if !idX.TermEq(idY) {
		t.Error("\\x. x and \\y. y should be alpha-equivalent")
	}
}

func TestAlphaDistinguishesStructure(t *testing.T) {
	x := binder.NewBinder("x")
	y := binder.NewBinder("y")

	// \x. \y. x vs \x. \y. y
	fst := mkLam(x, expr(mkLam(y, fv(x.FreeVar))))
	snd := mkLam(x, expr(mkLam(y, fv(y.FreeVar))))

	if fst.TermEq(snd) {
		t.Error("\\x. \\y. x and \\x. \\y. y should differ")
	}
}

func TestUnbindRoundTrip(t *testing.T) {
	x := binder.NewBinder("x")
	w := binder.FreshVar("w")
	original := mkLam(x, expr(ap{fn: fv(x.FreeVar), arg: fv(w)}))

	param, body := original.scope.Unbind()
	rebuilt := lam{scope: binder.NewScope[binder.Binder, expr](param, body)}

	if !original.TermEq(rebuilt) {
		t.Error("NewScope(Unbind(s)) should be alpha-equivalent to s")
	}
}

func TestUnbindFreshness(t *testing.T) {
	x := binder.NewBinder("x")
	scope := mkLam(x, fv(x.FreeVar)).scope

	p1, _ := scope.Unbind()
	p2, _ := scope.Unbind()

	if p1.FreeVar.Eq(p2.FreeVar) {
		t.Error("two unbinds of the same scope shared a variable")
	}
	if p1.FreeVar.Eq(x.FreeVar) {
		t.Error("unbind returned the original binder identity")
	}
	if p1.Hint != "x" {
		t.Errorf("freshening lost the display hint: %q", p1.Hint)
	}
}

func TestSubstDoesNotCapture(t *testing.T) {
	p := binder.NewBinder("p")
	w := binder.FreshVar("w")

	// (\p. w)[w := \a. a]: the replacement's own bound variable must
	// survive the splice untouched.
	term := mkLam(p, fv(w))
	replacement := identity("a")

	got := term.Subst(w, replacement)
	want := mkLam(binder.NewBinder("p"), expr(identity("b")))

	if !got.TermEq(want) {
		t.Error("substitution disturbed the replacement's bound variables")
	}
}

// identity builds \hint. hint, whose body is a bound variable.
func identity(hint string) lam {
	b := binder.NewBinder(hint)
	return mkLam(b, fv(b.FreeVar))
}

func TestNestedDepth(t *testing.T) {
	x := binder.NewBinder("x")
	y := binder.NewBinder("y")

	// \x. \y. x: after closing, x's occurrence has crossed one Scope
	// boundary and must carry offset 1, slot 0.
	term := mkLam(x, expr(mkLam(y, fv(x.FreeVar))))

	inner, ok := term.scope.UnsafeBody().(lam)
	if !ok {
		t.Fatalf("outer body is %T, want lam", term.scope.UnsafeBody())
	}
	leaf, ok := inner.scope.UnsafeBody().(vr)
	if !ok {
		t.Fatalf("inner body is %T, want vr", inner.scope.UnsafeBody())
	}
	b, ok := leaf.v.(binder.Bound)
	if !ok {
		t.Fatalf("occurrence of x is %T, want Bound", leaf.v)
	}
	if b.Offset != 1 || b.Index != 0 {
		t.Errorf("occurrence of x closed to %v, want @1.0", b.BoundVar)
	}
}

func TestConstAlphaScenario(t *testing.T) {
	x := binder.NewBinder("x")
	y := binder.NewBinder("y")

	// \x. \y. x
	konst := mkLam(x, expr(mkLam(y, fv(x.FreeVar))))

	if n := len(binder.FreeVars(konst)); n != 0 {
		t.Fatalf("closed term has %d free variables", n)
	}

	xPrime, body := konst.scope.Unbind()

	set := binder.FreeVars(body)
	if len(set) != 1 || !set.Contains(xPrime.FreeVar) {
		t.Errorf("opened body should have exactly the fresh variable free, got %v", set)
	}

	want := mkLam(binder.NewBinder("y"), fv(xPrime.FreeVar))
	if !body.TermEq(want) {
		t.Error("opened body should be alpha-equivalent to \\y. x'")
	}
}

func TestUnbind2(t *testing.T) {
	x := binder.NewBinder("x")
	y := binder.NewBinder("y")
	w := binder.FreshVar("w")

	s1 := mkLam(x, expr(ap{fn: fv(x.FreeVar), arg: fv(w)})).scope
	s2 := mkLam(y, fv(y.FreeVar)).scope

	p, b1, b2 := binder.Unbind2(s1, s2)

	if !b2.TermEq(fv(p.FreeVar)) {
		t.Error("second body should reference the shared fresh variable")
	}
	if want := (ap{fn: fv(p.FreeVar), arg: fv(w)}); !b1.TermEq(want) {
		t.Error("first body should reference the shared fresh variable")
	}
}

func TestUnbind2ArityMismatchPanics(t *testing.T) {
	x := binder.NewBinder("x")
	s1 := mkLam(x, fv(x.FreeVar)).scope
	s2 := binder.NewScope[binder.Ignore, expr](binder.Ignore{}, fv(binder.FreshVar("w")))

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on binder-count mismatch")
		}
	}()
	binder.Unbind2(s1, s2)
}

// lyingPattern advertises one binder when closing but none when freshened,
// simulating a broken hand-written Pattern implementation.
type lyingPattern struct {
	b     binder.Binder
	fresh bool
}

func (p lyingPattern) PatternEq(o binder.Pattern) bool { _, ok := o.(lyingPattern); return ok }
func (p lyingPattern) Freshen() binder.Pattern         { return lyingPattern{b: p.b, fresh: true} }

func (p lyingPattern) Binders() []binder.Binder {
	if p.fresh {
		return nil
	}
	return []binder.Binder{p.b}
}

func (p lyingPattern) ClosePattern(binder.ScopeState, []binder.Binder) binder.Pattern { return p }
func (p lyingPattern) OpenPattern(binder.ScopeState, []binder.Binder) binder.Pattern  { return p }
func (p lyingPattern) SubstPattern(binder.FreeVar, binder.Term) binder.Pattern        { return p }
func (p lyingPattern) VisitFreeVars(func(binder.FreeVar))                             {}

func TestOpenSlotMismatchPanics(t *testing.T) {
	x := binder.NewBinder("x")
	scope := binder.NewScope[lyingPattern, expr](lyingPattern{b: x}, fv(x.FreeVar))

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when a pattern under-reports its binders")
		}
	}()
	scope.Unbind()
}
