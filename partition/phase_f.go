// SPDX-License-Identifier: MIT
//
// File: phase_f.go
// Role: Phase F — isolate every catalogue-marked external-input operator
// that ended up outside stratum 0 into its own singleton stratum-0
// subgraph, with a handoff on every outgoing edge.

package partition

import "github.com/dfir-lang/dfir/flat"

func isolateExternalInputs(
	g *flat.Graph,
	color map[flat.NodeID]Color,
	nodeSubgraph map[flat.NodeID]SubgraphID,
	subgraphNodes map[SubgraphID][]flat.NodeID,
	stratum map[SubgraphID]int,
	nextSG *SubgraphID,
) {
	for _, n := range g.Nodes() {
		if n.Kind != flat.KindOperator || n.Operator == nil || n.Operator.Spec == nil {
			continue
		}
		if !n.Operator.Spec.IsExternalInput {
			continue
		}
		oldSG := nodeSubgraph[n.ID]
		if stratum[oldSG] == 0 {
			continue
		}

		subgraphNodes[oldSG] = removeNodeID(subgraphNodes[oldSG], n.ID)

		newSG := *nextSG
		*nextSG++
		nodeSubgraph[n.ID] = newSG
		subgraphNodes[newSG] = []flat.NodeID{n.ID}
		stratum[newSG] = 0

		outgoing := g.Successors(n.ID)
		for _, e := range outgoing {
			dst, _ := g.Node(e.Dst)
			if dst.Kind == flat.KindHandoff {
				continue
			}
			h := g.AddHandoff()
			if _, _, err := g.InsertIntermediate(e.ID, h); err != nil {
				panic("partition: isolating external input: " + err.Error())
			}
		}
	}
}

func removeNodeID(nodes []flat.NodeID, target flat.NodeID) []flat.NodeID {
	out := nodes[:0]
	for _, n := range nodes {
		if n != target {
			out = append(out, n)
		}
	}
	return out
}
