// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: the Graph type and its mutation/query surface: AddOperator,
// AddHandoff, AddEdge, Nodes, Edges, Predecessors, Successors, InDegree,
// OutDegree, InsertIntermediate.
// Determinism:
//   - Nodes() and Edges() return values sorted by ID ascending.
//   - nextNodeID/nextEdgeID are monotonic plain counters (no atomics needed:
//     spec.md §5 guarantees single-threaded access).
// Concurrency:
//   - None. Unlike the teacher's core.Graph, this type carries no mutex;
//     callers must not share a *Graph across goroutines.

package flat

import "sort"

// Graph is a mutable multigraph of operator and handoff nodes joined by
// directed, port-indexed edges (spec.md §3).
type Graph struct {
	nextNodeID NodeID
	nextEdgeID EdgeID

	nodes map[NodeID]*Node
	edges map[EdgeID]*Edge

	// out[n] is the set of edge IDs leaving n; in[n] is the set entering n.
	out map[NodeID]map[EdgeID]struct{}
	in  map[NodeID]map[EdgeID]struct{}
}

// NewGraph returns an empty flat graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[NodeID]*Node),
		edges: make(map[EdgeID]*Edge),
		out:   make(map[NodeID]map[EdgeID]struct{}),
		in:    make(map[NodeID]map[EdgeID]struct{}),
	}
}

// AddOperator inserts a new operator node and returns its ID.
//
// Complexity: O(1)
func (g *Graph) AddOperator(op *OperatorInstance) NodeID {
	id := g.nextNodeID
	g.nextNodeID++
	g.nodes[id] = &Node{ID: id, Kind: KindOperator, Operator: op}
	g.out[id] = make(map[EdgeID]struct{})
	g.in[id] = make(map[EdgeID]struct{})
	return id
}

// AddHandoff inserts a new handoff node and returns its ID.
//
// Complexity: O(1)
func (g *Graph) AddHandoff() NodeID {
	id := g.nextNodeID
	g.nextNodeID++
	g.nodes[id] = &Node{ID: id, Kind: KindHandoff}
	g.out[id] = make(map[EdgeID]struct{})
	g.in[id] = make(map[EdgeID]struct{})
	return id
}

// AddEdge connects src's srcPort to dst's dstPort.
//
// Steps:
//  1. Validate both endpoints exist.
//  2. Reject an edge directly joining two handoffs (spec.md §3 invariant).
//  3. Allocate an edge ID, store it, link into out[src]/in[dst].
//
// Complexity: O(1)
func (g *Graph) AddEdge(src NodeID, srcPort PortIndex, dst NodeID, dstPort PortIndex) (EdgeID, error) {
	sn, ok := g.nodes[src]
	if !ok {
		return 0, ErrNodeNotFound
	}
	dn, ok := g.nodes[dst]
	if !ok {
		return 0, ErrNodeNotFound
	}
	if sn.Kind == KindHandoff && dn.Kind == KindHandoff {
		return 0, ErrConsecutiveHandoffs
	}

	id := g.nextEdgeID
	g.nextEdgeID++
	e := &Edge{ID: id, Src: src, SrcPort: srcPort, Dst: dst, DstPort: dstPort}
	g.edges[id] = e
	g.out[src][id] = struct{}{}
	g.in[dst][id] = struct{}{}
	return id, nil
}

// RemoveEdge deletes the edge with the given ID.
//
// Complexity: O(1)
func (g *Graph) RemoveEdge(id EdgeID) error {
	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, id)
	delete(g.out[e.Src], id)
	delete(g.in[e.Dst], id)
	return nil
}

// Node returns the node with the given ID.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Edge returns the edge with the given ID.
func (g *Graph) Edge(id EdgeID) (*Edge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

// Nodes returns all nodes sorted by ID ascending.
//
// Complexity: O(n log n)
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Edges returns all edges sorted by ID ascending.
//
// Complexity: O(e log e)
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Predecessors returns the edges entering n, sorted by ID ascending.
func (g *Graph) Predecessors(n NodeID) []*Edge {
	return g.edgeSubset(g.in[n])
}

// Successors returns the edges leaving n, sorted by ID ascending.
func (g *Graph) Successors(n NodeID) []*Edge {
	return g.edgeSubset(g.out[n])
}

func (g *Graph) edgeSubset(ids map[EdgeID]struct{}) []*Edge {
	out := make([]*Edge, 0, len(ids))
	for id := range ids {
		out = append(out, g.edges[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// InDegree reports how many edges enter n.
func (g *Graph) InDegree(n NodeID) int { return len(g.in[n]) }

// OutDegree reports how many edges leave n.
func (g *Graph) OutDegree(n NodeID) int { return len(g.out[n]) }

// InsertIntermediate splices a new node into the middle of an existing edge,
// replacing Src -[edgeID]-> Dst with Src -> new -> Dst. The original edge is
// removed and two new edges are created. Both new edges use Elided() ports
// on the side touching the new node, mirroring the Rust original's
// insert_intermediate_node port-elision: a freshly spliced node always has
// exactly one predecessor and one successor on the spliced side, so no
// explicit port index is needed there.
//
// Used by partition's Phase C to insert handoffs on boundary-crossing edges,
// and by Phase E to splice the identity() subgraph into a tick-delayed edge.
//
// Complexity: O(1)
func (g *Graph) InsertIntermediate(edgeID EdgeID, mid NodeID) (EdgeID, EdgeID, error) {
	e, ok := g.edges[edgeID]
	if !ok {
		return 0, 0, ErrEdgeNotFound
	}
	if _, ok := g.nodes[mid]; !ok {
		return 0, 0, ErrNodeNotFound
	}
	if err := g.RemoveEdge(edgeID); err != nil {
		return 0, 0, err
	}
	first, err := g.AddEdge(e.Src, e.SrcPort, mid, Elided())
	if err != nil {
		return 0, 0, err
	}
	second, err := g.AddEdge(mid, Elided(), e.Dst, e.DstPort)
	if err != nil {
		return 0, 0, err
	}
	return first, second, nil
}
