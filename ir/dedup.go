// SPDX-License-Identifier: MIT
//
// File: dedup.go
// Role: PushDedupTeeScope/PopDedupTeeScope/WithDedupTeeScope and FormatTee,
// the debug tee-dedup printer of spec.md §4.2
// ("Debug rendering"). Upgraded from the Rust original's single
// thread-local slot to a proper nestable stack, since spec.md §4.2 requires
// scopes to be "strictly nested" — a single slot cannot represent a nested
// scope reliably once the outer scope resumes.

package ir

import "fmt"

// dedupTeeScope assigns each tee cell first seen within it a stable small
// integer id, so repeat occurrences render as a back-reference.
type dedupTeeScope struct {
	next int
	ids  map[*Cell]int
}

// teeScopes is the active nesting stack; the innermost (most recently
// pushed) scope is teeScopes[len-1].
var teeScopes []*dedupTeeScope

// PushDedupTeeScope starts a new nested dedup scope. Every push must be
// matched by a PopDedupTeeScope; WithDedupTeeScope does this automatically.
func PushDedupTeeScope() {
	teeScopes = append(teeScopes, &dedupTeeScope{ids: make(map[*Cell]int)})
}

// PopDedupTeeScope ends the innermost dedup scope.
func PopDedupTeeScope() {
	if len(teeScopes) == 0 {
		panic("ir: PopDedupTeeScope called with no active scope")
	}
	teeScopes = teeScopes[:len(teeScopes)-1]
}

// WithDedupTeeScope runs f with a fresh nested dedup scope active, popping
// it on return (even if f panics).
func WithDedupTeeScope(f func() string) string {
	PushDedupTeeScope()
	defer PopDedupTeeScope()
	return f()
}

// FormatTee renders a Tee for debugging: a back-reference "<tee N>" if its
// cell was already printed within the innermost active scope, otherwise
// "<tee N>: <body>" (or "<tee>: <body>" outside any scope).
func FormatTee(t *Tee) string {
	if len(teeScopes) == 0 {
		return fmt.Sprintf("<tee>: %s", Format(t.Inner.Inner))
	}
	scope := teeScopes[len(teeScopes)-1]
	if id, ok := scope.ids[t.Inner]; ok {
		return fmt.Sprintf("<tee %d>", id)
	}
	id := scope.next
	scope.next++
	scope.ids[t.Inner] = id
	return fmt.Sprintf("<tee %d>: %s", id, Format(t.Inner.Inner))
}
