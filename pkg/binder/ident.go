package binder

import "sync/atomic"

// FreeVarID is the process-unique identity of a free variable.
//
// Identities are drawn from a single monotonic counter and are never reused
// for the lifetime of the process, so two FreeVars with the same id are
// always the same variable no matter where or when they were created.
type FreeVarID uint64

var lastID atomic.Uint64

// freshID returns an id that no previous call has returned.
// Safe for concurrent use; this counter is the only piece of shared mutable
// state in the whole package.
func freshID() FreeVarID {
	return FreeVarID(lastID.Add(1))
}
