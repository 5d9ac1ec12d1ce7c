package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfir-lang/dfir/builder"
	"github.com/dfir-lang/dfir/catalogue"
	"github.com/dfir-lang/dfir/flat"
)

func TestLinear_RejectsTooFewOperators(t *testing.T) {
	_, _, err := builder.BuildGraph(nil, builder.Linear(builder.NamedOp{Label: "only", Op: "map"}))
	assert.ErrorIs(t, err, builder.ErrTooFewOperators)
}

func TestLinear_BuildsChain(t *testing.T) {
	g, names, err := builder.BuildGraph(nil, builder.Linear(
		builder.NamedOp{Label: "src", Op: "source_iter"},
		builder.NamedOp{Label: "m", Op: "map"},
		builder.NamedOp{Label: "f", Op: "filter"},
		builder.NamedOp{Label: "fe", Op: "for_each"},
	))
	require.NoError(t, err)
	require.Len(t, names, 4)
	assert.Equal(t, 1, g.OutDegree(names["src"]))
	assert.Equal(t, 1, g.InDegree(names["fe"]))
	assert.Len(t, g.Edges(), 3)
}

func TestFanout_RejectsTooFewBranches(t *testing.T) {
	_, _, err := builder.BuildGraph(nil, builder.Fanout(
		builder.NamedOp{Label: "src", Op: "source_iter"},
		builder.NamedOp{Label: "m", Op: "map"},
		builder.NamedOp{Label: "only", Op: "for_each"},
	))
	assert.ErrorIs(t, err, builder.ErrTooFewOperators)
}

func TestFanout_BuildsForkedTopology(t *testing.T) {
	g, names, err := builder.BuildGraph(nil, builder.Fanout(
		builder.NamedOp{Label: "src", Op: "source_iter"},
		builder.NamedOp{Label: "m", Op: "map"},
		builder.NamedOp{Label: "a", Op: "for_each"},
		builder.NamedOp{Label: "b", Op: "for_each"},
	))
	require.NoError(t, err)
	assert.Equal(t, 2, g.OutDegree(names["m"]))
	assert.Len(t, g.Edges(), 3)
}

func TestBinaryJoin_WiresBothInputPorts(t *testing.T) {
	g, names, err := builder.BuildGraph(nil, builder.BinaryJoin(
		builder.NamedOp{Label: "srcA", Op: "source_iter"},
		builder.NamedOp{Label: "srcB", Op: "source_iter"},
		builder.NamedOp{Label: "diff", Op: "difference"},
		builder.NamedOp{Label: "fe", Op: "for_each"},
	))
	require.NoError(t, err)
	assert.Equal(t, 2, g.InDegree(names["diff"]))

	var sawPort0, sawPort1 bool
	for _, e := range g.Edges() {
		if e.Dst == names["diff"] {
			switch e.DstPort.Int {
			case 0:
				sawPort0 = true
			case 1:
				sawPort1 = true
			}
		}
	}
	assert.True(t, sawPort0, "expected an edge into difference port 0")
	assert.True(t, sawPort1, "expected an edge into difference port 1")
}

// TestLinear_LeavesRoomForAHandWiredFeedbackPort shows how a caller builds
// S4 on top of Linear: wire only difference's pos input through Linear,
// then close the negative cycle by hand through its neg port, exactly as
// spec.md's S4 negative-cycle fixture requires.
func TestLinear_LeavesRoomForAHandWiredFeedbackPort(t *testing.T) {
	g, names, err := builder.BuildGraph(nil, builder.Linear(
		builder.NamedOp{Label: "srcA", Op: "source_iter"},
		builder.NamedOp{Label: "diff", Op: "difference"},
		builder.NamedOp{Label: "sink", Op: "for_each"},
	))
	require.NoError(t, err)

	feedback := g.AddOperator(&flat.OperatorInstance{Name: "map", Spec: catalogue.Builtins().MustLookup("map")})
	_, err = g.AddEdge(names["diff"], flat.Elided(), feedback, flat.Elided())
	require.NoError(t, err)
	_, err = g.AddEdge(feedback, flat.Elided(), names["diff"], flat.IntPort(1))
	require.NoError(t, err)

	assert.Equal(t, 2, g.InDegree(names["diff"]))
	assert.Equal(t, 2, g.OutDegree(names["diff"]))
}

func TestTickLoop_WiresFeedbackThroughTick(t *testing.T) {
	g, names, err := builder.BuildGraph(nil, builder.TickLoop(
		builder.NamedOp{Label: "src", Op: "source_iter"},
		builder.NamedOp{Label: "acc", Op: "chain"},
		builder.NamedOp{Label: "tick", Op: "defer_tick"},
	))
	require.NoError(t, err)
	assert.Equal(t, 2, g.InDegree(names["acc"]))
	assert.Equal(t, 1, g.InDegree(names["tick"]))
	assert.Equal(t, 1, g.OutDegree(names["tick"]))
}

func TestBuildGraph_RejectsUnknownOperator(t *testing.T) {
	_, _, err := builder.BuildGraph(nil, builder.Linear(
		builder.NamedOp{Label: "a", Op: "does_not_exist"},
		builder.NamedOp{Label: "b", Op: "map"},
	))
	assert.ErrorIs(t, err, builder.ErrUnknownOperator)
}

func TestBuildGraph_ComposesConstructorsOverSharedNames(t *testing.T) {
	g, names, err := builder.BuildGraph(nil,
		builder.Linear(
			builder.NamedOp{Label: "src", Op: "source_iter"},
			builder.NamedOp{Label: "m", Op: "map"},
		),
		builder.Fanout(
			builder.NamedOp{Label: "m", Op: "map"},
			builder.NamedOp{Label: "m2", Op: "map"},
			builder.NamedOp{Label: "a", Op: "for_each"},
			builder.NamedOp{Label: "b", Op: "for_each"},
		),
	)
	require.NoError(t, err)
	require.Len(t, names, 5)
	assert.Len(t, g.Edges(), 4)
}
