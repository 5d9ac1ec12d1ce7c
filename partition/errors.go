// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for structural faults Build treats as internal
// bugs (spec.md §7 "Structural violation") rather than diagnosable user
// program errors.

package partition

import "errors"

// ErrMalformedHandoff indicates a handoff node was found with an in-degree
// or out-degree other than exactly 1, violating the invariant that every
// handoff is spliced into exactly one edge by InsertIntermediate.
var ErrMalformedHandoff = errors.New("partition: handoff does not have exactly one predecessor and one successor")
