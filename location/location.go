// SPDX-License-Identifier: MIT
//
// File: location.go
// Role: LocationId tagged value and its Root() operation.

package location

import "fmt"

// Kind tags which variant an ID holds.
type Kind int

const (
	// KindProcess identifies a single, non-replicated process.
	KindProcess Kind = iota
	// KindCluster identifies a replicated group of processes.
	KindCluster
	// KindExternalProcess identifies a process outside the dataflow program
	// (e.g. a client), reachable only through a registered external key.
	KindExternalProcess
	// KindTick identifies a tick-scoped view of an inner location. Ticks
	// nest: the inner ID may itself be a Tick.
	KindTick
)

// String renders the Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindProcess:
		return "Process"
	case KindCluster:
		return "Cluster"
	case KindExternalProcess:
		return "ExternalProcess"
	case KindTick:
		return "Tick"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ID is a tagged location value. The numeric ID is unique within its Kind,
// not globally; two IDs of different Kind may share the same number without
// colliding. For KindTick, Number holds the owning process/cluster's id and
// Inner holds the location being delayed.
//
// ID is a small, comparable value for Process/Cluster/ExternalProcess (safe
// to use as a map key directly); KindTick values are NOT directly comparable
// with == because Inner is a pointer — use Equal.
type ID struct {
	Kind   Kind
	Number int
	Inner  *ID // non-nil iff Kind == KindTick
}

// Process constructs a Process(id) location.
func Process(id int) ID { return ID{Kind: KindProcess, Number: id} }

// Cluster constructs a Cluster(id) location.
func Cluster(id int) ID { return ID{Kind: KindCluster, Number: id} }

// ExternalProcess constructs an ExternalProcess(id) location.
func ExternalProcess(id int) ID { return ID{Kind: KindExternalProcess, Number: id} }

// Tick constructs a Tick(ownerID, inner) location: a tick-scoped view of
// inner, owned by the process/cluster identified by ownerID.
func Tick(ownerID int, inner ID) ID {
	innerCopy := inner
	return ID{Kind: KindTick, Number: ownerID, Inner: &innerCopy}
}

// Root walks through nested Tick layers and returns the first non-Tick
// location. Only a Root() result is a valid endpoint for emission or
// networking; callers MUST NOT treat a Tick ID itself as an endpoint.
//
// Complexity: O(depth) in Tick nesting.
func (l ID) Root() ID {
	for l.Kind == KindTick {
		l = *l.Inner
	}
	return l
}

// Equal reports whether two IDs name the same location, recursing through
// Tick wrappers.
func (l ID) Equal(other ID) bool {
	if l.Kind != other.Kind {
		return false
	}
	if l.Kind == KindTick {
		return l.Number == other.Number && l.Inner.Equal(*other.Inner)
	}
	return l.Number == other.Number
}

// String renders the ID for diagnostics, e.g. "Process(3)" or
// "Tick(1, Cluster(2))".
func (l ID) String() string {
	switch l.Kind {
	case KindTick:
		return fmt.Sprintf("Tick(%d, %s)", l.Number, l.Inner.String())
	default:
		return fmt.Sprintf("%s(%d)", l.Kind, l.Number)
	}
}
