// SPDX-License-Identifier: MIT
//
// File: unionfind.go
// Role: disjoint-set union over flat.NodeIDs, generalized from
// prim_kruskal's inline string-keyed union-find to flat.NodeID with path
// compression and union by rank, used by Phase B to coalesce nodes into
// subgraphs.

package partition

import "github.com/dfir-lang/dfir/flat"

type unionFind struct {
	parent map[flat.NodeID]flat.NodeID
	rank   map[flat.NodeID]int
}

func newUnionFind(nodes []flat.NodeID) *unionFind {
	uf := &unionFind{
		parent: make(map[flat.NodeID]flat.NodeID, len(nodes)),
		rank:   make(map[flat.NodeID]int, len(nodes)),
	}
	for _, n := range nodes {
		uf.parent[n] = n
	}
	return uf
}

func (uf *unionFind) find(n flat.NodeID) flat.NodeID {
	root := n
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[n] != root {
		next := uf.parent[n]
		uf.parent[n] = root
		n = next
	}
	return root
}

// union merges the sets containing a and b, returning false if they were
// already in the same set.
func (uf *unionFind) union(a, b flat.NodeID) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
	return true
}

// connected reports whether a and b are in the same set.
func (uf *unionFind) connected(a, b flat.NodeID) bool {
	return uf.find(a) == uf.find(b)
}

// groups returns the members of every set, keyed by the set's
// representative.
func (uf *unionFind) groups() map[flat.NodeID][]flat.NodeID {
	out := make(map[flat.NodeID][]flat.NodeID)
	for n := range uf.parent {
		r := uf.find(n)
		out[r] = append(out[r], n)
	}
	return out
}
