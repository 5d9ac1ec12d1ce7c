// Package dfir is a dataflow-graph compiler core: it lowers a typed IR of
// stream operators — annotated with the process/cluster/external location
// each one runs on — into one partitioned, stratified execution graph per
// location.
//
// Two subsystems do the heavy lifting:
//
//   - IR & Network Materialization (packages location, ir, deploy,
//     network): a typed operator graph with shared (multi-consumer) tee
//     nodes, recursive structural transformations that preserve sharing,
//     and a late-binding scheme that turns each cross-location edge into a
//     concrete (sink, source, connect-callback) triple once the deployment
//     topology is known.
//   - Flat-to-Partitioned Lowering (packages catalogue, flat, partition):
//     given a flat graph of operators with typed input ports, color every
//     node as pull/push/computation, greedily coalesce nodes into
//     subgraphs, insert handoffs on every boundary-crossing edge, compute a
//     stratum number per subgraph, and isolate external-input operators
//     into stratum 0.
//
// Everything here is a pure, synchronous, in-memory transformation: no
// sockets, files, or environment are read; diagnostics (package diag) are
// collected as values rather than printed. The surface embedded-DSL
// front-end, the token-level code generator, and the deployment runtime
// that owns actual sockets/processes are explicitly out of scope — see
// SPEC_FULL.md.
//
// Subpackages:
//
//	location/   — LocationId tagged value (Process/Cluster/ExternalProcess/Tick)
//	catalogue/  — the static operator catalogue (arity, ports, delay types)
//	ir/         — the IR graph: Leaf/Node variants, Tee, transform traversals
//	deploy/     — the deployment capability interface + an in-memory Local impl
//	network/    — the network materializer (Building -> Finalized)
//	flat/       — the flat multigraph of operator/handoff nodes
//	partition/  — the flat-to-partitioned builder and PartitionedGraph
//	diag/       — the diagnostics sink (spans, levels, collected sets)
//	builder/    — flat-graph fixture builder (Linear/Fanout/BinaryJoin/TickLoop)
package dfir
