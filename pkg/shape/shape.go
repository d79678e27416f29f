// Package shape derives the binder capability methods for user AST types
// from their field layout, using reflection.
//
// A struct whose exported fields are Terms, Patterns, slices of either, or
// plain data can implement each capability method as a one-liner:
//
//	type App struct{ Fn, Arg Expr }
//
//	func (e App) TermEq(o binder.Term) bool                { return shape.TermEq(e, o) }
//	func (e App) CloseTerm(s binder.ScopeState, bs []binder.Binder) binder.Term {
//	    return shape.CloseTerm(e, s, bs)
//	}
//	// ... and so on for OpenTerm, Subst, VisitFreeVars.
//
// Fields are visited in declaration order, which fixes the positional slot
// numbering for derived patterns: the ordering is stable across all
// operations on logically identical shapes.
//
// Nodes wrapping a bare [binder.Var] implement Subst by hand, since replacing
// the whole node with an arbitrary term cannot be expressed field-by-field:
//
//	func (e Var) Subst(v binder.FreeVar, r binder.Term) binder.Term {
//	    if f, ok := e.V.(binder.Free); ok && f.FreeVar.Eq(v) {
//	        return r
//	    }
//	    return e
//	}
//
// Misuse (passing a non-struct, or a struct with unexported or otherwise
// untransformable fields holding binder content) is a programmer error and
// panics.
package shape

import (
	"fmt"
	"reflect"

	"github.com/heyrutvik/moniker/pkg/binder"
)

// CloseTerm rewrites matching free variables to bound references in every
// Term- or Pattern-valued field of t, returning a rebuilt value of the same
// type.
func CloseTerm(t binder.Term, state binder.ScopeState, binders []binder.Binder) binder.Term {
	out := mapValue(reflect.ValueOf(t),
		func(sub binder.Term) binder.Term { return sub.CloseTerm(state, binders) },
		func(sub binder.Pattern) binder.Pattern { return sub.ClosePattern(state, binders) },
	)
	return out.Interface().(binder.Term)
}

// OpenTerm replaces matching bound references with the given binders' free
// variables in every Term- or Pattern-valued field of t.
func OpenTerm(t binder.Term, state binder.ScopeState, binders []binder.Binder) binder.Term {
	out := mapValue(reflect.ValueOf(t),
		func(sub binder.Term) binder.Term { return sub.OpenTerm(state, binders) },
		func(sub binder.Pattern) binder.Pattern { return sub.OpenPattern(state, binders) },
	)
	return out.Interface().(binder.Term)
}

// Subst substitutes the free variable v with replacement throughout t's
// fields.
func Subst(t binder.Term, v binder.FreeVar, replacement binder.Term) binder.Term {
	out := mapValue(reflect.ValueOf(t),
		func(sub binder.Term) binder.Term { return sub.Subst(v, replacement) },
		func(sub binder.Pattern) binder.Pattern { return sub.SubstPattern(v, replacement) },
	)
	return out.Interface().(binder.Term)
}

// TermEq reports field-wise alpha-equivalence: a and b must have the same
// dynamic type; Term fields compare with TermEq, Pattern fields with
// PatternEq, everything else with reflect.DeepEqual.
func TermEq(a binder.Term, b binder.Term) bool {
	return eqValue(reflect.ValueOf(a), reflect.ValueOf(b))
}

// VisitFreeVars visits free variables of every Term- and Pattern-valued
// field of v in declaration order. It accepts both derived terms and
// derived patterns.
func VisitFreeVars(v any, visit func(binder.FreeVar)) {
	visitValue(reflect.ValueOf(v), visit)
}

// ClosePattern is the pattern-side counterpart of CloseTerm for derived
// composite patterns.
func ClosePattern(p binder.Pattern, state binder.ScopeState, binders []binder.Binder) binder.Pattern {
	out := mapValue(reflect.ValueOf(p),
		func(sub binder.Term) binder.Term { return sub.CloseTerm(state, binders) },
		func(sub binder.Pattern) binder.Pattern { return sub.ClosePattern(state, binders) },
	)
	return out.Interface().(binder.Pattern)
}

// OpenPattern is the pattern-side counterpart of OpenTerm.
func OpenPattern(p binder.Pattern, state binder.ScopeState, binders []binder.Binder) binder.Pattern {
	out := mapValue(reflect.ValueOf(p),
		func(sub binder.Term) binder.Term { return sub.OpenTerm(state, binders) },
		func(sub binder.Pattern) binder.Pattern { return sub.OpenPattern(state, binders) },
	)
	return out.Interface().(binder.Pattern)
}

// SubstPattern substitutes through a derived composite pattern's embedded
// content.
func SubstPattern(p binder.Pattern, v binder.FreeVar, replacement binder.Term) binder.Pattern {
	out := mapValue(reflect.ValueOf(p),
		func(sub binder.Term) binder.Term { return sub.Subst(v, replacement) },
		func(sub binder.Pattern) binder.Pattern { return sub.SubstPattern(v, replacement) },
	)
	return out.Interface().(binder.Pattern)
}

// PatternEq reports field-wise pattern equivalence, mirroring TermEq.
func PatternEq(a binder.Pattern, b binder.Pattern) bool {
	return eqValue(reflect.ValueOf(a), reflect.ValueOf(b))
}

// Freshen rebuilds a derived composite pattern with every Pattern-valued
// field freshened. Term fields (via Embed this never happens, but plain
// data may) are copied verbatim.
func Freshen(p binder.Pattern) binder.Pattern {
	out := mapValue(reflect.ValueOf(p),
		func(sub binder.Term) binder.Term { return sub },
		func(sub binder.Pattern) binder.Pattern { return sub.Freshen() },
	)
	return out.Interface().(binder.Pattern)
}

// Binders concatenates the binder sequences of a derived composite
// pattern's Pattern-valued fields in declaration order.
func Binders(p binder.Pattern) []binder.Binder {
	var binders []binder.Binder
	collectBinders(reflect.ValueOf(p), &binders)
	return binders
}

// mapValue rebuilds v with the callbacks applied to any binder content it
// holds. Structs are rebuilt field by field; pointers and slices are
// rebuilt around their element; values implementing the capabilities are
// transformed atomically via their own methods.
func mapValue(v reflect.Value, term func(binder.Term) binder.Term, pat func(binder.Pattern) binder.Pattern) reflect.Value {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(mapValue(v.Elem(), term, pat))
		return out
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(mapField(v.Index(i), term, pat))
		}
		return out
	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.NumField(); i++ {
			field := v.Field(i)
			if !out.Field(i).CanSet() {
				panic(fmt.Sprintf("shape: %s has unexported field %s", v.Type(), v.Type().Field(i).Name))
			}
			out.Field(i).Set(mapField(field, term, pat))
		}
		return out
	default:
		panic(fmt.Sprintf("shape: cannot derive over %s", v.Type()))
	}
}

// mapField transforms a single field value, recursing into slices and
// leaving plain data untouched.
func mapField(field reflect.Value, term func(binder.Term) binder.Term, pat func(binder.Pattern) binder.Pattern) reflect.Value {
	if !field.CanInterface() {
		return field
	}
	switch x := field.Interface().(type) {
	case binder.Pattern:
		return reflect.ValueOf(pat(x))
	case binder.Term:
		return reflect.ValueOf(term(x))
	}
	if field.Kind() == reflect.Slice && !field.IsNil() {
		out := reflect.MakeSlice(field.Type(), field.Len(), field.Len())
		for i := 0; i < field.Len(); i++ {
			out.Index(i).Set(mapField(field.Index(i), term, pat))
		}
		return out
	}
	return field
}

func eqValue(a, b reflect.Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch a.Kind() {
	case reflect.Pointer:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		return eqValue(a.Elem(), b.Elem())
	case reflect.Slice:
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !eqField(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !eqField(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("shape: cannot derive over %s", a.Type()))
	}
}

func eqField(a, b reflect.Value) bool {
	if !a.CanInterface() {
		panic(fmt.Sprintf("shape: cannot compare unexported field of type %s", a.Type()))
	}
	switch x := a.Interface().(type) {
	case binder.Pattern:
		y, ok := b.Interface().(binder.Pattern)
		return ok && x.PatternEq(y)
	case binder.Term:
		y, ok := b.Interface().(binder.Term)
		return ok && x.TermEq(y)
	}
	if a.Kind() == reflect.Slice {
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !eqField(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a.Interface(), b.Interface())
}

func visitValue(v reflect.Value, visit func(binder.FreeVar)) {
	switch v.Kind() {
	case reflect.Pointer:
		if !v.IsNil() {
			visitValue(v.Elem(), visit)
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			visitField(v.Index(i), visit)
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			visitField(v.Field(i), visit)
		}
	default:
		panic(fmt.Sprintf("shape: cannot derive over %s", v.Type()))
	}
}

func visitField(field reflect.Value, visit func(binder.FreeVar)) {
	if !field.CanInterface() {
		return
	}
	switch x := field.Interface().(type) {
	case binder.Pattern:
		x.VisitFreeVars(visit)
		return
	case binder.Term:
		x.VisitFreeVars(visit)
		return
	}
	if field.Kind() == reflect.Slice {
		for i := 0; i < field.Len(); i++ {
			visitField(field.Index(i), visit)
		}
	}
}

func collectBinders(v reflect.Value, out *[]binder.Binder) {
	switch v.Kind() {
	case reflect.Pointer:
		if !v.IsNil() {
			collectBinders(v.Elem(), out)
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			binderField(v.Index(i), out)
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			binderField(v.Field(i), out)
		}
	default:
		panic(fmt.Sprintf("shape: cannot derive over %s", v.Type()))
	}
}

func binderField(field reflect.Value, out *[]binder.Binder) {
	if !field.CanInterface() {
		return
	}
	if x, ok := field.Interface().(binder.Pattern); ok {
		*out = append(*out, x.Binders()...)
		return
	}
	if field.Kind() == reflect.Slice {
		for i := 0; i < field.Len(); i++ {
			binderField(field.Index(i), out)
		}
	}
}
