package binder

import (
	"strings"
	"testing"
)

func TestFreeVarEqIgnoresHints(t *testing.T) {
	v := FreshVar("x")
	renamed := FreeVar{ID: v.ID, Hint: "y"}

	if !v.Eq(renamed) {
		t.Error("same id with different hints should be equal")
	}
	if v.Eq(FreshVar("x")) {
		t.Error("distinct ids with the same hint should not be equal")
	}
}

func TestBoundVarEqIgnoresHints(t *testing.T) {
	tests := []struct {
		name string
		a, b BoundVar
		want bool
	}{
		{"same position", BoundVar{Offset: 1, Index: 2, Hint: "x"}, BoundVar{Offset: 1, Index: 2, Hint: "y"}, true},
		{"different offset", BoundVar{Offset: 0, Index: 2}, BoundVar{Offset: 1, Index: 2}, false},
		{"different index", BoundVar{Offset: 1, Index: 0}, BoundVar{Offset: 1, Index: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Eq(tt.b); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFreeLeafClose(t *testing.T) {
	x := NewBinder("x")
	other := FreshVar("z")

	closed := Free{x.FreeVar}.CloseTerm(OuterState().Incr(), []Binder{NewBinder("a"), x})
	b, ok := closed.(Bound)
	if !ok {
		t.Fatalf("got %T, want Bound", closed)
	}
	if b.Offset != 1 || b.Index != 1 {
		t.Errorf("got %v, want @1.1", b.BoundVar)
	}

	untouched := Free{other}.CloseTerm(OuterState(), []Binder{x})
	if _, ok := untouched.(Free); !ok {
		t.Errorf("non-matching free variable was rewritten to %T", untouched)
	}
}

func TestBoundLeafOpen(t *testing.T) {
	x := NewBinder("x")

	opened := Bound{BoundVar{Offset: 0, Index: 0}}.OpenTerm(OuterState(), []Binder{x})
	f, ok := opened.(Free)
	if !ok {
		t.Fatalf("got %T, want Free", opened)
	}
	if !f.FreeVar.Eq(x.FreeVar) {
		t.Errorf("opened to %v, want %v", f.FreeVar, x.FreeVar)
	}

	deeper := Bound{BoundVar{Offset: 1, Index: 0}}.OpenTerm(OuterState(), []Binder{x})
	if _, ok := deeper.(Bound); !ok {
		t.Errorf("reference to an outer scope was opened prematurely: %T", deeper)
	}
}

func TestBoundLeafOpenArityPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on out-of-range binder index")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "moniker:") {
			t.Errorf("unexpected panic value %v", r)
		}
	}()

	Bound{BoundVar{Offset: 0, Index: 3}}.OpenTerm(OuterState(), []Binder{NewBinder("x")})
}

func TestVarStrings(t *testing.T) {
	v := FreeVar{ID: 7, Hint: "x"}
	if got := v.String(); got != "x$7" {
		t.Errorf("got %q", got)
	}
	if got := (FreeVar{ID: 7}).String(); got != "$7" {
		t.Errorf("got %q", got)
	}
	if got := (BoundVar{Offset: 1, Index: 2, Hint: "x"}).String(); got != "x@1.2" {
		t.Errorf("got %q", got)
	}
}
