// SPDX-License-Identifier: MIT
//
// File: partitioned_graph.go
// Role: PartitionedGraph, the value type of spec.md §4.5 — the builder's
// output, consumed by the (out of scope) emitter.

package partition

import "github.com/dfir-lang/dfir/flat"

// PartitionedGraph is the output of Build: a flat.Graph (now carrying
// inserted handoffs) annotated with every piece of bookkeeping the
// downstream emitter needs: per-node color and subgraph, per-subgraph
// topological node order and stratum, and per-subgraph handoff lists.
type PartitionedGraph struct {
	// Flat is the underlying graph, mutated in place by Build: handoffs
	// and the occasional injected identity() node are added, but no
	// caller-supplied node is ever removed.
	Flat *flat.Graph

	// NodeColor holds the color Phases A/B gave each node present when
	// Build started: Pull/Push/Comp, or None for an operator no merge
	// inferred a color for (handoffs are Hoff). Nodes Build inserts
	// (handoffs, identity()) have no entry.
	NodeColor map[flat.NodeID]Color

	// NodeSubgraph maps every operator node to its subgraph. Handoff nodes
	// never appear as keys (spec.md §8 property 1).
	NodeSubgraph map[flat.NodeID]SubgraphID

	// SubgraphNodes lists each subgraph's operator nodes in topological
	// order.
	SubgraphNodes map[SubgraphID][]flat.NodeID

	// SubgraphStratum maps each subgraph to its assigned execution stratum.
	SubgraphStratum map[SubgraphID]int

	// SubgraphRecvHandoffs lists, per subgraph, the handoff nodes whose
	// outgoing edge enters that subgraph.
	SubgraphRecvHandoffs map[SubgraphID][]flat.NodeID

	// SubgraphSendHandoffs lists, per subgraph, the handoff nodes whose
	// incoming edge leaves that subgraph.
	SubgraphSendHandoffs map[SubgraphID][]flat.NodeID

	// SubgraphInternalHandoffs lists handoffs whose unique predecessor's
	// subgraph equals its unique successor's subgraph.
	SubgraphInternalHandoffs []flat.NodeID

	// NodeNames optionally maps a node to a human-readable variable name,
	// supplied via WithNodeNames; nil unless a caller set one.
	NodeNames map[flat.NodeID]string
}

// Options configures Build.
type Options struct {
	nodeNames map[flat.NodeID]string
}

// Option configures optional Build behavior.
type Option func(*Options)

func defaultOptions() Options { return Options{} }

// WithNodeNames attaches a node->variable-name map to the PartitionedGraph,
// carried through untouched for the downstream emitter's use.
func WithNodeNames(names map[flat.NodeID]string) Option {
	return func(o *Options) { o.nodeNames = names }
}
