// SPDX-License-Identifier: MIT
// Package: dfir/builder
//
// constructors.go — Linear/Fanout/BinaryJoin/TickLoop: the four recurring
// shapes spec.md's seed scenarios compose, generalizing the teacher
// library's Path/Star/Cycle constructors (fixed topology, deterministic
// node identity, stable edge-emission order) from core.Graph vertices to
// flat.Graph operator/handoff nodes.
//
// Contract shared by every constructor in this file:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Look up each NamedOp's operator spec in cfg.cat; ErrUnknownOperator
//     on a miss.
//   - Reuse an already-named node from a prior constructor in the same
//     BuildGraph call instead of creating a duplicate (so constructors
//     compose into larger fixtures).
//   - Emit edges in a stable, documented order.

package builder

import (
	"github.com/dfir-lang/dfir/flat"
)

// NamedOp names a single operator node by both its fixture-local label
// (used as the key in the names map BuildGraph returns) and the catalogue
// operator it instantiates (e.g. "map", "difference", "defer_tick").
type NamedOp struct {
	Label string
	Op    string
}

// Constructor applies a deterministic flat.Graph mutation using the
// resolved builderConfig, recording any newly created nodes under their
// label in names.
type Constructor func(g *flat.Graph, cfg *builderConfig, names map[string]flat.NodeID) error

// BuildGraph creates a new flat.Graph, resolves the builder configuration
// from opts, and applies all constructors in order, threading a shared
// names map so later constructors can reference nodes earlier ones created.
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*flat.Graph, map[string]flat.NodeID, error) {
	g := flat.NewGraph()
	cfg := newBuilderConfig(opts...)
	names := make(map[string]flat.NodeID)
	for _, con := range cons {
		if con == nil {
			return nil, nil, builderErrorf(MethodLinear, "nil constructor: %w", ErrConstructFailed)
		}
		if err := con(g, cfg, names); err != nil {
			return nil, nil, err
		}
	}
	return g, names, nil
}

// resolveOrCreate returns the existing node for n.Label if a prior
// constructor already created it, otherwise looks n.Op up in cfg.cat and
// adds a fresh operator node.
func resolveOrCreate(g *flat.Graph, cfg *builderConfig, names map[string]flat.NodeID, n NamedOp, method string) (flat.NodeID, error) {
	if id, ok := names[n.Label]; ok {
		return id, nil
	}
	spec, ok := cfg.cat.Lookup(n.Op)
	if !ok {
		return 0, builderErrorf(method, "%s: %w", n.Op, ErrUnknownOperator)
	}
	id := g.AddOperator(&flat.OperatorInstance{Name: n.Op, Spec: spec})
	names[n.Label] = id
	return id, nil
}

// Linear builds a straight chain ops[0] -> ops[1] -> ... -> ops[n-1],
// connecting each pair's elided ports (spec.md seed scenario S1).
func Linear(ops ...NamedOp) Constructor {
	return func(g *flat.Graph, cfg *builderConfig, names map[string]flat.NodeID) error {
		if len(ops) < MinLinearOperators {
			return builderErrorf(MethodLinear, "len(ops)=%d < min=%d: %w", len(ops), MinLinearOperators, ErrTooFewOperators)
		}
		ids := make([]flat.NodeID, len(ops))
		for i, op := range ops {
			id, err := resolveOrCreate(g, cfg, names, op, MethodLinear)
			if err != nil {
				return err
			}
			ids[i] = id
		}
		for i := 1; i < len(ids); i++ {
			if _, err := g.AddEdge(ids[i-1], flat.Elided(), ids[i], flat.Elided()); err != nil {
				return builderErrorf(MethodLinear, "AddEdge(%s->%s): %w", ops[i-1].Label, ops[i].Label, err)
			}
		}
		return nil
	}
}

// Fanout builds src -> fan -> branches[0], src -> fan -> branches[1], ...
// every branch fed from the same fan node (spec.md seed scenario S2).
func Fanout(src, fan NamedOp, branches ...NamedOp) Constructor {
	return func(g *flat.Graph, cfg *builderConfig, names map[string]flat.NodeID) error {
		if len(branches) < MinFanoutBranches {
			return builderErrorf(MethodFanout, "len(branches)=%d < min=%d: %w", len(branches), MinFanoutBranches, ErrTooFewOperators)
		}
		srcID, err := resolveOrCreate(g, cfg, names, src, MethodFanout)
		if err != nil {
			return err
		}
		fanID, err := resolveOrCreate(g, cfg, names, fan, MethodFanout)
		if err != nil {
			return err
		}
		if _, err := g.AddEdge(srcID, flat.Elided(), fanID, flat.Elided()); err != nil {
			return builderErrorf(MethodFanout, "AddEdge(%s->%s): %w", src.Label, fan.Label, err)
		}
		for _, b := range branches {
			bID, err := resolveOrCreate(g, cfg, names, b, MethodFanout)
			if err != nil {
				return err
			}
			if _, err := g.AddEdge(fanID, flat.Elided(), bID, flat.Elided()); err != nil {
				return builderErrorf(MethodFanout, "AddEdge(%s->%s): %w", fan.Label, b.Label, err)
			}
		}
		return nil
	}
}

// BinaryJoin builds srcA -> join.port0, srcB -> join.port1, join -> sink
// (spec.md seed scenarios S3/S4 — the caller adds the S4 feedback edge
// separately via g.AddEdge once BuildGraph returns).
func BinaryJoin(srcA, srcB, join, sink NamedOp) Constructor {
	return func(g *flat.Graph, cfg *builderConfig, names map[string]flat.NodeID) error {
		aID, err := resolveOrCreate(g, cfg, names, srcA, MethodBinaryJoin)
		if err != nil {
			return err
		}
		bID, err := resolveOrCreate(g, cfg, names, srcB, MethodBinaryJoin)
		if err != nil {
			return err
		}
		joinID, err := resolveOrCreate(g, cfg, names, join, MethodBinaryJoin)
		if err != nil {
			return err
		}
		sinkID, err := resolveOrCreate(g, cfg, names, sink, MethodBinaryJoin)
		if err != nil {
			return err
		}
		if _, err := g.AddEdge(aID, flat.Elided(), joinID, flat.IntPort(0)); err != nil {
			return builderErrorf(MethodBinaryJoin, "AddEdge(%s->%s.0): %w", srcA.Label, join.Label, err)
		}
		if _, err := g.AddEdge(bID, flat.Elided(), joinID, flat.IntPort(1)); err != nil {
			return builderErrorf(MethodBinaryJoin, "AddEdge(%s->%s.1): %w", srcB.Label, join.Label, err)
		}
		if _, err := g.AddEdge(joinID, flat.Elided(), sinkID, flat.Elided()); err != nil {
			return builderErrorf(MethodBinaryJoin, "AddEdge(%s->%s): %w", join.Label, sink.Label, err)
		}
		return nil
	}
}

// TickLoop builds src -> acc.port0, tick -> acc.port1, acc -> tick, a
// feedback loop crossing a Tick-delayed input port (spec.md seed scenario
// S5).
func TickLoop(src, acc, tick NamedOp) Constructor {
	return func(g *flat.Graph, cfg *builderConfig, names map[string]flat.NodeID) error {
		srcID, err := resolveOrCreate(g, cfg, names, src, MethodTickLoop)
		if err != nil {
			return err
		}
		accID, err := resolveOrCreate(g, cfg, names, acc, MethodTickLoop)
		if err != nil {
			return err
		}
		tickID, err := resolveOrCreate(g, cfg, names, tick, MethodTickLoop)
		if err != nil {
			return err
		}
		if _, err := g.AddEdge(srcID, flat.Elided(), accID, flat.IntPort(0)); err != nil {
			return builderErrorf(MethodTickLoop, "AddEdge(%s->%s.0): %w", src.Label, acc.Label, err)
		}
		if _, err := g.AddEdge(tickID, flat.Elided(), accID, flat.IntPort(1)); err != nil {
			return builderErrorf(MethodTickLoop, "AddEdge(%s->%s.1): %w", tick.Label, acc.Label, err)
		}
		if _, err := g.AddEdge(accID, flat.Elided(), tickID, flat.Elided()); err != nil {
			return builderErrorf(MethodTickLoop, "AddEdge(%s->%s): %w", acc.Label, tick.Label, err)
		}
		return nil
	}
}
