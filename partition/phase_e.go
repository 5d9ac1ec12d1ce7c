// SPDX-License-Identifier: MIT
//
// File: phase_e.go
// Role: Phase E — stratum assignment via SCC + condensation + topological
// propagation, then re-processing of Tick and Stratum barrier-crossing
// handoffs (spec.md §4.4 Phase E, steps 1-5).

package partition

import (
	"fmt"

	"github.com/dfir-lang/dfir/catalogue"
	"github.com/dfir-lang/dfir/diag"
	"github.com/dfir-lang/dfir/flat"
)

type sgEdge struct {
	handoff        flat.NodeID
	predSg, succSg SubgraphID
	negative       bool
}

// assignStrata builds the subgraph graph from g's handoffs, assigns a
// stratum to every subgraph named in subgraphNodes, and returns the
// resulting map. It mutates g (and nodeSubgraph/subgraphNodes) in place
// when a Tick crosser requires an injected identity() subgraph, allocating
// fresh subgraph ids from *nextSG.
func assignStrata(
	g *flat.Graph,
	nodeSubgraph map[flat.NodeID]SubgraphID,
	subgraphNodes map[SubgraphID][]flat.NodeID,
	nextSG *SubgraphID,
	diags *diag.Set,
) map[SubgraphID]int {
	var edges []sgEdge
	var tickCrossers []sgEdge

	for _, n := range g.Nodes() {
		if n.Kind != flat.KindHandoff {
			continue
		}
		pred, succ := handoffEndpoints(g, n.ID)
		outEdge := g.Successors(n.ID)[0]
		e := sgEdge{
			handoff: n.ID,
			predSg:  nodeSubgraph[pred],
			succSg:  nodeSubgraph[succ],
		}
		switch edgeDelayType(g, outEdge) {
		case catalogue.DelayTick:
			tickCrossers = append(tickCrossers, e)
		case catalogue.DelayStratum:
			e.negative = true
			edges = append(edges, e)
		default:
			edges = append(edges, e)
		}
	}

	vertices := make([]SubgraphID, 0, len(subgraphNodes))
	for sg := range subgraphNodes {
		vertices = append(vertices, sg)
	}

	succFn := func(v SubgraphID) []SubgraphID {
		var out []SubgraphID
		for _, e := range edges {
			if e.predSg == v {
				out = append(out, e.succSg)
			}
		}
		return out
	}
	predFn := func(v SubgraphID) []SubgraphID {
		var out []SubgraphID
		for _, e := range edges {
			if e.succSg == v {
				out = append(out, e.predSg)
			}
		}
		return out
	}

	comps := sccKosaraju(vertices, succFn, predFn)
	compIdx := condensation(comps)

	stratum := make(map[SubgraphID]int, len(vertices))
	for idx, comp := range comps {
		best := 0
		for _, sg := range comp {
			for _, e := range edges {
				if e.succSg != sg || compIdx[e.predSg] == idx {
					continue
				}
				cand := stratum[e.predSg]
				if e.negative {
					cand++
				}
				if cand > best {
					best = cand
				}
			}
		}
		for _, sg := range comp {
			stratum[sg] = best
		}
	}

	maxStratum := 0
	for _, s := range stratum {
		if s > maxStratum {
			maxStratum = s
		}
	}

	// Step 4: re-process Tick crossers.
	for _, tc := range tickCrossers {
		if stratum[tc.predSg] > stratum[tc.succSg] {
			continue
		}
		// tc.handoff's outgoing edge already runs handoff -> succ; that
		// handoff is the "fresh handoff" on the predecessor side. Splice
		// identity into this edge and bracket only the far side with a new
		// handoff, so the result is pred -> handoff -> identity -> handoff
		// -> succ with no two handoffs ever adjacent.
		outEdge := g.Successors(tc.handoff)[0]
		identityNode := g.AddOperator(&flat.OperatorInstance{
			Name: "identity",
			Spec: catalogue.Builtins().MustLookup("identity"),
		})
		_, e2, err := g.InsertIntermediate(outEdge.ID, identityNode)
		if err != nil {
			panic(fmt.Sprintf("partition: splicing tick-delay identity: %v", err))
		}
		handoffB := g.AddHandoff()
		if _, _, err := g.InsertIntermediate(e2, handoffB); err != nil {
			panic(fmt.Sprintf("partition: bracketing tick-delay identity: %v", err))
		}

		newSG := *nextSG
		*nextSG++
		nodeSubgraph[identityNode] = newSG
		subgraphNodes[newSG] = []flat.NodeID{identityNode}
		stratum[newSG] = maxStratum + 1
	}

	// Step 5: re-process Stratum (negative) crossers.
	for _, e := range edges {
		if !e.negative {
			continue
		}
		if stratum[e.succSg] > stratum[e.predSg] {
			continue
		}
		_, succ := handoffEndpoints(g, e.handoff)
		outEdge := g.Successors(e.handoff)[0]
		span := diag.PortSpan(fmt.Sprintf("%d", succ), outEdge.DstPort.String())
		diags.Add(diag.Errorf(span,
			"Negative edge creates a negative cycle which must be broken with a next-tick operator"))
	}

	return stratum
}
