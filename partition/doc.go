// Package partition implements the flat-to-partitioned builder of
// spec.md §4.4, the heart of the compiler: given a flat.Graph, it colors
// every node Pull/Push/Comp/Hoff/None, greedily coalesces nodes into
// subgraphs via union-find, inserts handoffs on every subgraph-crossing
// edge, computes a topological order within each subgraph, assigns a
// stratum number per subgraph (synthesizing a delaying identity subgraph
// for unresolved Tick crossers and diagnosing unbroken negative cycles for
// Stratum crossers), and isolates external-input operators into their own
// stratum-0 subgraph.
//
// Grounded on original_source/hydroflow_lang/src/graph/flat_to_partitioned.rs
// (phases A-G below are that file's make_subgraphs /
// helper_find_subgraph_unionfind / find_subgraph_strata /
// separate_external_inputs / helper_find_subgraph_handoffs, faithfully
// reproduced) and on the teacher's prim_kruskal union-find and
// dfs.TopologicalSort traversal idiom, generalized from string vertex ids
// to flat.NodeID/SubgraphID and extended with a Kosaraju SCC pass the
// teacher has no equivalent of (grounded on the same DFS coloring idiom,
// not copied from any teacher file).
//
// Per spec.md §5, Build is a single-threaded, synchronous, in-memory
// transformation: no goroutines, no locking, no I/O.
package partition
