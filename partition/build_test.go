// Package partition_test exercises Build against spec.md §8's seed
// scenarios: a linear pipeline, a tee fan-out, a stratum-crossing edge
// (clean and as an unbroken negative cycle), and a tick-delay loop.
package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfir-lang/dfir/catalogue"
	"github.com/dfir-lang/dfir/flat"
	"github.com/dfir-lang/dfir/partition"
)

func op(name string) *flat.OperatorInstance {
	return &flat.OperatorInstance{Name: name, Spec: catalogue.Builtins().MustLookup(name)}
}

// S1: src -> map -> filter -> for_each, a single chain.
func TestBuild_LinearPipelineCoalescesIntoOneSubgraph(t *testing.T) {
	g := flat.NewGraph()
	src := g.AddOperator(op("source_iter"))
	m := g.AddOperator(op("map"))
	f := g.AddOperator(op("filter"))
	fe := g.AddOperator(op("for_each"))
	mustEdge(t, g, src, flat.Elided(), m, flat.Elided())
	mustEdge(t, g, m, flat.Elided(), f, flat.Elided())
	mustEdge(t, g, f, flat.Elided(), fe, flat.Elided())

	pg, diags := partition.Build(g)
	require.False(t, diags.HasErrors(), "unexpected diagnostics: %v", diags.All())

	sg, ok := pg.NodeSubgraph[src]
	require.True(t, ok, "src has no subgraph")
	for _, n := range []flat.NodeID{src, m, f, fe} {
		assert.Equal(t, sg, pg.NodeSubgraph[n], "node %d expected in subgraph %d", n, sg)
	}
	assert.Equal(t, 0, pg.SubgraphStratum[sg])
	assert.Equal(t, []flat.NodeID{src, m, f, fe}, pg.SubgraphNodes[sg])
	for _, n := range g.Nodes() {
		assert.NotEqual(t, flat.KindHandoff, n.Kind, "expected zero handoffs, found %d", n.ID)
	}
}

// S2: src -> map -> {for_each_a, for_each_b}, a fan-out fork.
func TestBuild_TeeForkProducesConsistentSubgraphs(t *testing.T) {
	g := flat.NewGraph()
	src := g.AddOperator(op("source_iter"))
	m := g.AddOperator(op("map"))
	a := g.AddOperator(op("for_each"))
	b := g.AddOperator(op("for_each"))
	mustEdge(t, g, src, flat.Elided(), m, flat.Elided())
	mustEdge(t, g, m, flat.Elided(), a, flat.Elided())
	mustEdge(t, g, m, flat.Elided(), b, flat.Elided())

	pg, diags := partition.Build(g)
	require.False(t, diags.HasErrors(), "unexpected diagnostics: %v", diags.All())
	assertPartitionInvariants(t, pg)
}

// S3: src_a -> difference.pos; src_b -> difference.neg (Stratum); difference
// -> for_each. Expected: two subgraphs at strata 0 and 1, no diagnostic.
func TestBuild_StratumCrossingAssignsTwoStrata(t *testing.T) {
	g := flat.NewGraph()
	srcA := g.AddOperator(op("source_iter"))
	srcB := g.AddOperator(op("source_iter"))
	diff := g.AddOperator(op("difference"))
	fe := g.AddOperator(op("for_each"))
	mustEdge(t, g, srcA, flat.Elided(), diff, flat.IntPort(0))
	mustEdge(t, g, srcB, flat.Elided(), diff, flat.IntPort(1))
	mustEdge(t, g, diff, flat.Elided(), fe, flat.Elided())

	pg, diags := partition.Build(g)
	require.False(t, diags.HasErrors(), "unexpected diagnostics: %v", diags.All())
	assertPartitionInvariants(t, pg)

	sgA, sgDiff, sgB := pg.NodeSubgraph[srcA], pg.NodeSubgraph[diff], pg.NodeSubgraph[srcB]
	assert.Equal(t, sgDiff, sgA, "expected src_a (Pull) to coalesce with difference (Pull) into one subgraph")
	assert.NotEqual(t, sgDiff, sgB, "expected src_b to stay in its own subgraph, split off by its Stratum-delayed neg edge")
	strB, strD := pg.SubgraphStratum[sgB], pg.SubgraphStratum[sgDiff]
	assert.Greater(t, strD, strB, "expected difference's subgraph stratum to exceed src_b's")
}

// S4: same shape as S3, but difference's output feeds back into its own neg
// input through an intermediate node with no tick delay anywhere on the
// cycle. Expected: a diagnostic mentioning "negative cycle".
func TestBuild_UnbrokenNegativeCycleDiagnoses(t *testing.T) {
	g := flat.NewGraph()
	srcA := g.AddOperator(op("source_iter"))
	diff := g.AddOperator(op("difference"))
	fb := g.AddOperator(op("map"))
	fe := g.AddOperator(op("for_each"))
	mustEdge(t, g, srcA, flat.Elided(), diff, flat.IntPort(0))
	mustEdge(t, g, diff, flat.Elided(), fb, flat.Elided())
	mustEdge(t, g, fb, flat.Elided(), diff, flat.IntPort(1))
	mustEdge(t, g, diff, flat.Elided(), fe, flat.Elided())

	_, diags := partition.Build(g)
	require.True(t, diags.HasErrors(), "expected a negative-cycle diagnostic")

	require.NotEmpty(t, diags.All())
	assert.Contains(t, diags.All()[0].Message, "negative cycle")
}

// S5: acc (chain) <-> defer_tick, a tick-delay loop. Expected: an injected
// identity() subgraph at stratum max_stratum+1.
func TestBuild_TickDelayLoopInjectsIdentitySubgraph(t *testing.T) {
	g := flat.NewGraph()
	src := g.AddOperator(op("source_iter"))
	acc := g.AddOperator(op("chain"))
	tick := g.AddOperator(op("defer_tick"))
	mustEdge(t, g, src, flat.Elided(), acc, flat.IntPort(0))
	mustEdge(t, g, tick, flat.Elided(), acc, flat.IntPort(1))
	mustEdge(t, g, acc, flat.Elided(), tick, flat.Elided())

	pg, diags := partition.Build(g)
	require.False(t, diags.HasErrors(), "unexpected diagnostics: %v", diags.All())
	assertPartitionInvariants(t, pg)

	maxStratum := 0
	for _, s := range pg.SubgraphStratum {
		if s > maxStratum {
			maxStratum = s
		}
	}
	accStratum := pg.SubgraphStratum[pg.NodeSubgraph[acc]]
	assert.Greater(t, maxStratum, accStratum, "expected an injected subgraph strictly above acc's stratum")

	foundIdentity := false
	for _, n := range g.Nodes() {
		if n.Kind == flat.KindOperator && n.Operator.Name == "identity" {
			foundIdentity = true
			assert.Equal(t, maxStratum, pg.SubgraphStratum[pg.NodeSubgraph[n.ID]], "expected the injected identity node at the max stratum")
		}
	}
	assert.True(t, foundIdentity, "expected Build to inject an identity() node for the tick-delay loop")
}

func mustEdge(t *testing.T, g *flat.Graph, src flat.NodeID, srcPort flat.PortIndex, dst flat.NodeID, dstPort flat.PortIndex) {
	t.Helper()
	_, err := g.AddEdge(src, srcPort, dst, dstPort)
	require.NoError(t, err)
}

// assertPartitionInvariants checks the universal properties of spec.md §8
// that must hold for every accepted input, regardless of its shape.
func assertPartitionInvariants(t *testing.T, pg *partition.PartitionedGraph) {
	t.Helper()
	for _, n := range pg.Flat.Nodes() {
		if n.Kind == flat.KindOperator {
			_, ok := pg.NodeSubgraph[n.ID]
			assert.True(t, ok, "operator node %d has no subgraph", n.ID)
		} else {
			_, ok := pg.NodeSubgraph[n.ID]
			assert.False(t, ok, "handoff node %d unexpectedly has a subgraph", n.ID)
		}
	}
	for sg, nodes := range pg.SubgraphNodes {
		_, ok := pg.SubgraphStratum[sg]
		assert.True(t, ok, "subgraph %d has no stratum assigned", sg)
		for _, n := range nodes {
			assert.Equal(t, sg, pg.NodeSubgraph[n], "node %d listed under subgraph %d but mapped elsewhere", n, sg)
		}
	}
	for _, e := range pg.Flat.Edges() {
		srcNode, _ := pg.Flat.Node(e.Src)
		dstNode, _ := pg.Flat.Node(e.Dst)
		assert.False(t, srcNode.Kind == flat.KindHandoff && dstNode.Kind == flat.KindHandoff,
			"found a consecutive handoff->handoff edge %d", e.ID)
		if srcNode.Kind == flat.KindOperator && dstNode.Kind == flat.KindOperator {
			assert.Equal(t, pg.NodeSubgraph[srcNode.ID], pg.NodeSubgraph[dstNode.ID],
				"direct operator->operator edge %d crosses subgraphs without a handoff", e.ID)
		}
	}
}
