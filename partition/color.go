// SPDX-License-Identifier: MIT
//
// File: color.go
// Role: Phase A — assign every flat node a Pull/Push/Comp/Hoff/None color
// and the color-compatibility/inference table that drives Phase B's
// union-find coalescing.

package partition

import "github.com/dfir-lang/dfir/flat"

// Color is a node's role in the dataflow: whether it pulls from its
// predecessors, pushes to its successors, both, neither, or is a handoff.
type Color int

const (
	ColorNone Color = iota
	ColorPull
	ColorPush
	ColorComp
	ColorHoff
)

func (c Color) String() string {
	switch c {
	case ColorPull:
		return "Pull"
	case ColorPush:
		return "Push"
	case ColorComp:
		return "Comp"
	case ColorHoff:
		return "Hoff"
	default:
		return "None"
	}
}

// computeColor assigns a node's initial color from its handoff-ness and
// in/out degree, exactly mirroring hydroflow_lang/src/graph/mod.rs's
// node_color: handoffs are always Hoff; a node with more than one input
// AND more than one output is Comp; more than one input alone is Pull;
// more than one output alone is Push; otherwise a zero-input node is Pull,
// a zero-output node is Push, and a node with exactly one of each is
// undetermined (None) until an edge infers it in Phase B.
func computeColor(isHandoff bool, in, out int) Color {
	if isHandoff {
		return ColorHoff
	}
	if in > 1 && out > 1 {
		return ColorComp
	}
	if in > 1 {
		return ColorPull
	}
	if out > 1 {
		return ColorPush
	}
	if in == 0 {
		return ColorPull
	}
	if out == 0 {
		return ColorPush
	}
	return ColorNone
}

// canConnectColorize reports whether an edge src->dst may be coalesced into
// the same subgraph given the current color assignment, inferring and
// recording an undetermined (None) endpoint's color in color when the
// other side forces it. Mirrors can_connect_colorize in
// flat_to_partitioned.rs, including its inference side effects, except that
// a Hoff source never merges: Hoff -> None is rejected like every other
// Hoff -> * edge.
func canConnectColorize(color map[flat.NodeID]Color, src, dst flat.NodeID) bool {
	cs, cd := color[src], color[dst]

	switch {
	case cs == ColorNone && cd == ColorNone:
		return false

	case cs == ColorNone && (cd == ColorPull || cd == ColorComp):
		color[src] = ColorPull
		return true
	case cs == ColorNone && (cd == ColorPush || cd == ColorHoff):
		color[src] = ColorPush
		return true

	case cd == ColorNone && cs == ColorPull:
		color[dst] = ColorPull
		return true
	case cd == ColorNone && (cs == ColorComp || cs == ColorPush):
		color[dst] = ColorPush
		return true

	case cs == ColorPull && cd == ColorPull:
		return true
	case cs == ColorPull && cd == ColorComp:
		return true
	case cs == ColorPull && cd == ColorPush:
		return true

	case cs == ColorComp && cd == ColorPush:
		return true

	case cs == ColorPush && cd == ColorPush:
		return true

	default:
		return false
	}
}
