// Package location defines LocationId, the tagged value that names where a
// dataflow operator runs: a single process, a cluster of replicated
// processes, an external (non-dataflow) process, or a tick-scoped view of
// one of those.
//
// What:
//
//   - ID: a tagged value in four variants — Process, Cluster,
//     ExternalProcess, Tick. Tick wraps an inner ID and is transparent to
//     identity comparisons that matter for networking and emission.
//   - Root: unwraps nested Tick layers to the first non-Tick ID. Only a
//     Root ID is a valid endpoint for emission or network materialization.
//
// Why:
//
//   - The IR and the network materializer need to group, compare, and key
//     maps by "where does this run", without caring whether the immediate
//     annotation is wrapped in one or more tick scopes.
//
// Complexity: every operation here is O(depth) in the Tick nesting, which
// is bounded by the program's syntactic nesting (effectively O(1)).
package location
