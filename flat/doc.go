// Package flat implements the flat-graph model of spec.md §3
// ("Flat-graph model"): a mutable multigraph of operator and handoff nodes
// joined by directed, port-indexed edges. It is produced by the surface
// layer (out of scope here) and consumed by package partition.
//
// Adapted from the teacher's core.Graph adjacency-list engine: same
// monotonic-ID-then-sort determinism for Nodes()/Edges(), generalized from
// string vertex IDs and int64 edge weights to integer Node/Edge IDs and
// typed, port-indexed edges. Per spec.md §5 ("single-threaded, synchronous
// compilation... no locking"), the teacher's sync.RWMutex pair is dropped:
// this Graph is not safe for concurrent use, by design, matching the
// compiler's single-threaded execution model.
//
// Invariants (spec.md §3):
//   - No edge directly connects two handoffs.
//   - Every handoff has exactly one predecessor and one successor once
//     lowering (package partition) completes; mid-lowering a handoff may
//     temporarily have zero of either while being wired up.
package flat
