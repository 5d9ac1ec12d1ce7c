// SPDX-License-Identifier: MIT
//
// File: phase_g.go
// Role: Phase G — walk the final graph's edges to build each subgraph's
// recv/send handoff lists and the internal-handoff list.

package partition

import "github.com/dfir-lang/dfir/flat"

func bookkeepHandoffs(g *flat.Graph, nodeSubgraph map[flat.NodeID]SubgraphID) (
	recv map[SubgraphID][]flat.NodeID,
	send map[SubgraphID][]flat.NodeID,
	internal []flat.NodeID,
) {
	recv = make(map[SubgraphID][]flat.NodeID)
	send = make(map[SubgraphID][]flat.NodeID)

	for _, e := range g.Edges() {
		srcNode, _ := g.Node(e.Src)
		dstNode, _ := g.Node(e.Dst)
		if srcNode.Kind == flat.KindHandoff && dstNode.Kind == flat.KindHandoff {
			panic(flat.ErrConsecutiveHandoffs)
		}
		if srcNode.Kind == flat.KindOperator && dstNode.Kind == flat.KindHandoff {
			sg := nodeSubgraph[srcNode.ID]
			send[sg] = append(send[sg], dstNode.ID)
		}
		if srcNode.Kind == flat.KindHandoff && dstNode.Kind == flat.KindOperator {
			sg := nodeSubgraph[dstNode.ID]
			recv[sg] = append(recv[sg], srcNode.ID)
		}
	}

	for _, n := range g.Nodes() {
		if n.Kind != flat.KindHandoff {
			continue
		}
		pred, succ := handoffEndpoints(g, n.ID)
		if nodeSubgraph[pred] == nodeSubgraph[succ] {
			internal = append(internal, n.ID)
		}
	}
	return recv, send, internal
}
