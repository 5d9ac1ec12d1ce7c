// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Build orchestrates Phases A-G of spec.md §4.4 over a flat.Graph,
// producing a PartitionedGraph plus any diagnostics collected along the
// way (spec.md §9 "diagnostics as values, not control flow" — Build keeps
// going after a negative-cycle diagnostic rather than aborting).

package partition

import (
	"fmt"

	"github.com/dfir-lang/dfir/catalogue"
	"github.com/dfir-lang/dfir/diag"
	"github.com/dfir-lang/dfir/flat"
)

// Build runs the flat-to-partitioned compiler over g, mutating g in place
// (inserting handoffs and, where a Tick-delay edge requires it, a fresh
// identity() node) and returning the resulting PartitionedGraph alongside
// a diag.Set. The set's HasErrors is true only for a diagnosed unbroken
// negative cycle (spec.md seed scenario S4); every other fault panics as
// an internal invariant violation, per spec.md §7.
func Build(g *flat.Graph, opts ...Option) (*PartitionedGraph, *diag.Set) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	diags := &diag.Set{}

	// Phase A.
	color := make(map[flat.NodeID]Color)
	for _, n := range g.Nodes() {
		color[n.ID] = computeColor(n.Kind == flat.KindHandoff, g.InDegree(n.ID), g.OutDegree(n.ID))
	}

	// Phase B.
	nodeIDs := make([]flat.NodeID, 0)
	for _, n := range g.Nodes() {
		nodeIDs = append(nodeIDs, n.ID)
	}
	uf := newUnionFind(nodeIDs)
	internal := make(map[flat.EdgeID]bool)
	type crosser struct{ src, dst flat.NodeID }
	var crossers []crosser
	for _, e := range g.Edges() {
		if isBarrierCrosser(g, e) {
			crossers = append(crossers, crosser{e.Src, e.Dst})
		}
	}
	for progress := true; progress; {
		progress = false
		for _, e := range g.Edges() {
			if internal[e.ID] {
				continue
			}
			if uf.connected(e.Src, e.Dst) {
				continue
			}
			blocked := false
			for _, c := range crossers {
				if (uf.find(c.src) == uf.find(e.Src) && uf.find(c.dst) == uf.find(e.Dst)) ||
					(uf.find(c.src) == uf.find(e.Dst) && uf.find(c.dst) == uf.find(e.Src)) {
					blocked = true
					break
				}
			}
			if blocked {
				continue
			}
			if canConnectColorize(color, e.Src, e.Dst) {
				uf.union(e.Src, e.Dst)
				internal[e.ID] = true
				progress = true
			}
		}
	}

	// Phase C.
	for _, e := range g.Edges() {
		if internal[e.ID] {
			continue
		}
		h := g.AddHandoff()
		if _, _, err := g.InsertIntermediate(e.ID, h); err != nil {
			panic(fmt.Sprintf("partition: inserting handoff: %v", err))
		}
	}

	// Phase D.
	nodeSubgraph := make(map[flat.NodeID]SubgraphID)
	subgraphNodes := make(map[SubgraphID][]flat.NodeID)
	nextSG := SubgraphID(0)
	for _, group := range sortedGroups(uf, g) {
		sg := nextSG
		nextSG++
		for _, n := range group {
			nodeSubgraph[n] = sg
		}
		ordered := topoSortNodes(group, func(n flat.NodeID) []flat.NodeID {
			var succs []flat.NodeID
			for _, e := range g.Successors(n) {
				if dstSG, ok := nodeSubgraph[e.Dst]; ok && dstSG == sg {
					succs = append(succs, e.Dst)
				}
			}
			return succs
		})
		subgraphNodes[sg] = ordered
	}

	// Phase E.
	stratum := assignStrata(g, nodeSubgraph, subgraphNodes, &nextSG, diags)

	// Phase F.
	isolateExternalInputs(g, color, nodeSubgraph, subgraphNodes, stratum, &nextSG)

	// Phase G.
	recv, send, internalHandoffs := bookkeepHandoffs(g, nodeSubgraph)

	return &PartitionedGraph{
		Flat:                     g,
		NodeColor:                color,
		NodeSubgraph:             nodeSubgraph,
		SubgraphNodes:            subgraphNodes,
		SubgraphStratum:          stratum,
		SubgraphRecvHandoffs:     recv,
		SubgraphSendHandoffs:     send,
		SubgraphInternalHandoffs: internalHandoffs,
		NodeNames:                o.nodeNames,
	}, diags
}

// sortedGroups returns uf's operator-node equivalence classes, sorted by
// each class's union-find representative ID (members sorted by ID within a
// class), so subgraph id assignment is deterministic.
func sortedGroups(uf *unionFind, g *flat.Graph) [][]flat.NodeID {
	groups := uf.groups()
	var reps []flat.NodeID
	for rep := range groups {
		n, _ := g.Node(rep)
		if n.Kind != flat.KindOperator {
			continue
		}
		reps = append(reps, rep)
	}
	for i := 1; i < len(reps); i++ {
		for j := i; j > 0 && reps[j] < reps[j-1]; j-- {
			reps[j], reps[j-1] = reps[j-1], reps[j]
		}
	}
	out := make([][]flat.NodeID, 0, len(reps))
	for _, rep := range reps {
		members := groups[rep]
		var ops []flat.NodeID
		for _, m := range members {
			if n, _ := g.Node(m); n.Kind == flat.KindOperator {
				ops = append(ops, m)
			}
		}
		for i := 1; i < len(ops); i++ {
			for j := i; j > 0 && ops[j] < ops[j-1]; j-- {
				ops[j], ops[j-1] = ops[j-1], ops[j]
			}
		}
		out = append(out, ops)
	}
	return out
}

// edgeDelayType looks up the delay type e's destination port imposes,
// returning DelayNone for handoff destinations or path-indexed ports (no
// builtin operator uses a path port with a non-None delay).
func edgeDelayType(g *flat.Graph, e *flat.Edge) catalogue.DelayType {
	dst, ok := g.Node(e.Dst)
	if !ok || dst.Kind != flat.KindOperator || dst.Operator == nil || dst.Operator.Spec == nil {
		return catalogue.DelayNone
	}
	switch e.DstPort.Kind {
	case flat.PortInt:
		return dst.Operator.Spec.InputDelayTypeFn(e.DstPort.Int)
	case flat.PortElided:
		return dst.Operator.Spec.InputDelayTypeFn(0)
	default:
		return catalogue.DelayNone
	}
}

func isBarrierCrosser(g *flat.Graph, e *flat.Edge) bool {
	return edgeDelayType(g, e) != catalogue.DelayNone
}

// handoffEndpoints returns h's unique predecessor and successor node,
// panicking with ErrMalformedHandoff if h does not have exactly one of
// each — every handoff is spliced into exactly one edge by
// InsertIntermediate, so this should never fire outside a bug.
func handoffEndpoints(g *flat.Graph, h flat.NodeID) (pred, succ flat.NodeID) {
	preds := g.Predecessors(h)
	succs := g.Successors(h)
	if len(preds) != 1 || len(succs) != 1 {
		panic(ErrMalformedHandoff)
	}
	return preds[0].Src, succs[0].Dst
}
