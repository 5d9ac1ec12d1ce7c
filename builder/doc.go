// Package builder provides reusable “functional-options”-style fixture
// constructors for flat.Graph topologies, mirroring the teacher library's
// graph-builder package (BuilderOption mutating an immutable config, one
// Constructor closure per shape) but regenerated to emit operator/handoff
// topologies exercised by partition.Build instead of core.Graph vertex
// topologies.
//
// The package offers four deterministic constructors, one per recurring
// shape in spec.md's seed scenarios:
//
//   - Linear:     a straight operator chain (S1).
//   - Fanout:     a single source feeding N sinks through a shared map (S2).
//   - BinaryJoin: two sources feeding a two-input operator feeding a sink
//     (S3, and — with a feedback edge added by the caller — S4).
//   - TickLoop:   an accumulator wired to a defer_tick feedback edge (S5).
//
// BuildGraph returns a label->flat.NodeID map, filled in by every
// constructor it runs, alongside the graph and any error, so callers
// (tests) can refer to individual operators by the label they supplied
// rather than by their assigned NodeID.
package builder
