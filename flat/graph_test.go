// Package flat_test exercises Graph's mutation and query surface: node/edge
// insertion, degree queries, sorted iteration, consecutive-handoff
// rejection, and the InsertIntermediate splice primitive.
package flat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfir-lang/dfir/catalogue"
	"github.com/dfir-lang/dfir/flat"
)

func mapOp() *flat.OperatorInstance {
	return &flat.OperatorInstance{Name: "map", Spec: catalogue.Builtins().MustLookup("map")}
}

func TestAddEdge_ConnectsOperators(t *testing.T) {
	g := flat.NewGraph()
	a := g.AddOperator(mapOp())
	b := g.AddOperator(mapOp())

	eid, err := g.AddEdge(a, flat.Elided(), b, flat.Elided())
	require.NoError(t, err)
	assert.Equal(t, 1, g.OutDegree(a))
	assert.Equal(t, 1, g.InDegree(b))
	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, eid, edges[0].ID)
}

func TestAddEdge_RejectsConsecutiveHandoffs(t *testing.T) {
	g := flat.NewGraph()
	h1 := g.AddHandoff()
	h2 := g.AddHandoff()

	_, err := g.AddEdge(h1, flat.Elided(), h2, flat.Elided())
	assert.ErrorIs(t, err, flat.ErrConsecutiveHandoffs)
}

func TestAddEdge_UnknownEndpoint(t *testing.T) {
	g := flat.NewGraph()
	a := g.AddOperator(mapOp())

	_, err := g.AddEdge(a, flat.Elided(), flat.NodeID(999), flat.Elided())
	assert.ErrorIs(t, err, flat.ErrNodeNotFound)
}

func TestNodesAndEdges_SortedByID(t *testing.T) {
	g := flat.NewGraph()
	ids := make([]flat.NodeID, 0, 5)
	for i := 0; i < 5; i++ {
		ids = append(ids, g.AddOperator(mapOp()))
	}
	nodes := g.Nodes()
	for i, n := range nodes {
		assert.Equal(t, ids[i], n.ID, "expected Nodes() sorted by ID ascending at index %d", i)
	}
	eids := make([]flat.EdgeID, 0, 4)
	for i := 1; i < 5; i++ {
		eid, err := g.AddEdge(ids[i-1], flat.Elided(), ids[i], flat.Elided())
		require.NoError(t, err)
		eids = append(eids, eid)
	}
	for i, e := range g.Edges() {
		assert.Equal(t, eids[i], e.ID, "expected Edges() sorted by ID ascending at index %d", i)
	}
}

func TestInsertIntermediate_SplicesHandoff(t *testing.T) {
	g := flat.NewGraph()
	a := g.AddOperator(mapOp())
	b := g.AddOperator(mapOp())
	eid, err := g.AddEdge(a, flat.Elided(), b, flat.IntPort(1))
	require.NoError(t, err)

	h := g.AddHandoff()
	first, second, err := g.InsertIntermediate(eid, h)
	require.NoError(t, err)

	_, ok := g.Edge(eid)
	assert.False(t, ok, "expected original edge to be removed after splice")

	fe, _ := g.Edge(first)
	se, _ := g.Edge(second)
	assert.Equal(t, a, fe.Src)
	assert.Equal(t, h, fe.Dst)
	assert.Equal(t, h, se.Src)
	assert.Equal(t, b, se.Dst)
	assert.Equal(t, flat.PortInt, se.DstPort.Kind)
	assert.Equal(t, 1, se.DstPort.Int)
	assert.Equal(t, flat.PortElided, fe.SrcPort.Kind)
	assert.Equal(t, flat.PortElided, fe.DstPort.Kind)
	assert.Equal(t, 1, g.InDegree(h))
	assert.Equal(t, 1, g.OutDegree(h))
}

func TestInsertIntermediate_UnknownEdge(t *testing.T) {
	g := flat.NewGraph()
	h := g.AddHandoff()
	_, _, err := g.InsertIntermediate(flat.EdgeID(999), h)
	assert.ErrorIs(t, err, flat.ErrEdgeNotFound)
}

func TestRemoveEdge_UnknownEdge(t *testing.T) {
	g := flat.NewGraph()
	err := g.RemoveEdge(flat.EdgeID(999))
	assert.ErrorIs(t, err, flat.ErrEdgeNotFound)
}
