// SPDX-License-Identifier: MIT
//
// File: graph_algorithms.go
// Role: small directed-graph algorithms over SubgraphID used by Phase D/E —
// topological order within a subgraph (flat.NodeID granularity) and
// Kosaraju SCC + condensation over the subgraph-adjacency graph (SubgraphID
// granularity).
//
// topoSortNodes generalizes dfs.TopologicalSort's White/Gray/Black
// coloring from core.Graph/string ids to an adjacency func over
// flat.NodeID; sccKosaraju and condense are new, grounded on the same DFS
// coloring idiom since the teacher carries no SCC implementation.

package partition

import "github.com/dfir-lang/dfir/flat"

type vertexState int

const (
	white vertexState = iota
	gray
	black
)

// topoSortNodes returns nodes in topological order given an adjacency
// function succ. Panics if the induced graph has a cycle: callers only use
// this within a single subgraph, which Phase B guarantees is acyclic.
func topoSortNodes(nodes []flat.NodeID, succ func(flat.NodeID) []flat.NodeID) []flat.NodeID {
	state := make(map[flat.NodeID]vertexState, len(nodes))
	order := make([]flat.NodeID, 0, len(nodes))

	var visit func(n flat.NodeID)
	visit = func(n flat.NodeID) {
		switch state[n] {
		case black:
			return
		case gray:
			panic("partition: cycle within subgraph during topological sort")
		}
		state[n] = gray
		for _, m := range succ(n) {
			visit(m)
		}
		state[n] = black
		order = append(order, n)
	}

	for _, n := range nodes {
		if state[n] == white {
			visit(n)
		}
	}
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// SubgraphID identifies one coalesced subgraph, assigned by Phase D (and by
// Phases E and F for the subgraphs they add).
type SubgraphID int

// sccKosaraju computes the strongly connected components of the directed
// graph (vertices, succ), returning each component as a slice of vertices.
// Components are returned in an order consistent with a topological sort of
// the condensation (a component's dependencies appear before it).
func sccKosaraju(vertices []SubgraphID, succ func(SubgraphID) []SubgraphID, pred func(SubgraphID) []SubgraphID) [][]SubgraphID {
	state := make(map[SubgraphID]vertexState, len(vertices))
	order := make([]SubgraphID, 0, len(vertices))

	var visit1 func(v SubgraphID)
	visit1 = func(v SubgraphID) {
		if state[v] != white {
			return
		}
		state[v] = gray
		for _, w := range succ(v) {
			visit1(w)
		}
		state[v] = black
		order = append(order, v)
	}
	for _, v := range vertices {
		visit1(v)
	}

	assigned := make(map[SubgraphID]bool, len(vertices))
	var comps [][]SubgraphID
	var visit2 func(v SubgraphID, comp *[]SubgraphID)
	visit2 = func(v SubgraphID, comp *[]SubgraphID) {
		if assigned[v] {
			return
		}
		assigned[v] = true
		*comp = append(*comp, v)
		for _, w := range pred(v) {
			visit2(w, comp)
		}
	}
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		if assigned[v] {
			continue
		}
		comp := []SubgraphID{}
		visit2(v, &comp)
		comps = append(comps, comp)
	}
	return comps
}

// condensation maps every vertex to the index of its SCC within comps.
func condensation(comps [][]SubgraphID) map[SubgraphID]int {
	m := make(map[SubgraphID]int)
	for i, comp := range comps {
		for _, v := range comp {
			m[v] = i
		}
	}
	return m
}
