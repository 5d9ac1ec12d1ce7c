// SPDX-License-Identifier: MIT
//
// File: format.go
// Role: Format renders a Node tree as a debug string, routing Tee through
// FormatTee so tee dedup scopes (dedup.go) take effect.

package ir

import "fmt"

// Format renders n for debugging. It never panics on a Placeholder — unlike
// the traversals, printing a stray Placeholder is diagnostic, not a
// traversal bug, so it renders as the literal "Placeholder" instead.
func Format(n Node) string {
	switch v := n.(type) {
	case nil:
		return "<nil>"
	case *Placeholder:
		return "Placeholder"
	case *Source:
		return fmt.Sprintf("Source{%v @ %s}", v.Source, v.Location)
	case *CycleSource:
		return fmt.Sprintf("CycleSource{%s @ %s}", v.Ident, v.Location)
	case *Tee:
		return FormatTee(v)
	case *Persist:
		return fmt.Sprintf("Persist(%s)", Format(v.Input))
	case *Unpersist:
		return fmt.Sprintf("Unpersist(%s)", Format(v.Input))
	case *Delta:
		return fmt.Sprintf("Delta(%s)", Format(v.Input))
	case *Chain:
		return fmt.Sprintf("Chain(%s, %s)", Format(v.Left), Format(v.Right))
	case *CrossProduct:
		return fmt.Sprintf("CrossProduct(%s, %s)", Format(v.Left), Format(v.Right))
	case *CrossSingleton:
		return fmt.Sprintf("CrossSingleton(%s, %s)", Format(v.Left), Format(v.Right))
	case *Join:
		return fmt.Sprintf("Join(%s, %s)", Format(v.Left), Format(v.Right))
	case *Difference:
		return fmt.Sprintf("Difference(%s, %s)", Format(v.Left), Format(v.Right))
	case *AntiJoin:
		return fmt.Sprintf("AntiJoin(%s, %s)", Format(v.Left), Format(v.Right))
	case *Map:
		return fmt.Sprintf("Map{%s}(%s)", v.F, Format(v.Input))
	case *FlatMap:
		return fmt.Sprintf("FlatMap{%s}(%s)", v.F, Format(v.Input))
	case *Filter:
		return fmt.Sprintf("Filter{%s}(%s)", v.F, Format(v.Input))
	case *FilterMap:
		return fmt.Sprintf("FilterMap{%s}(%s)", v.F, Format(v.Input))
	case *DeferTick:
		return fmt.Sprintf("DeferTick(%s)", Format(v.Input))
	case *Enumerate:
		return fmt.Sprintf("Enumerate{static=%t}(%s)", v.IsStatic, Format(v.Input))
	case *Inspect:
		return fmt.Sprintf("Inspect{%s}(%s)", v.F, Format(v.Input))
	case *Unique:
		return fmt.Sprintf("Unique(%s)", Format(v.Input))
	case *Sort:
		return fmt.Sprintf("Sort(%s)", Format(v.Input))
	case *Fold:
		return fmt.Sprintf("Fold{%s,%s}(%s)", v.Init, v.Acc, Format(v.Input))
	case *FoldKeyed:
		return fmt.Sprintf("FoldKeyed{%s,%s}(%s)", v.Init, v.Acc, Format(v.Input))
	case *Reduce:
		return fmt.Sprintf("Reduce{%s}(%s)", v.F, Format(v.Input))
	case *ReduceKeyed:
		return fmt.Sprintf("ReduceKeyed{%s}(%s)", v.F, Format(v.Input))
	case *Network:
		return fmt.Sprintf("Network{%s -> %s}(%s)", v.FromLocation, v.ToLocation, Format(v.Input))
	default:
		return fmt.Sprintf("<unknown node %T>", n)
	}
}

// FormatLeaf renders a Leaf for debugging.
func FormatLeaf(l Leaf) string {
	switch v := l.(type) {
	case *ForEach:
		return fmt.Sprintf("ForEach{%s}(%s)", v.F, Format(v.Input))
	case *DestSink:
		return fmt.Sprintf("DestSink{%s}(%s)", v.Sink, Format(v.Input))
	case *CycleSink:
		return fmt.Sprintf("CycleSink{%s @ %s}(%s)", v.Ident, v.Location, Format(v.Input))
	default:
		return fmt.Sprintf("<unknown leaf %T>", l)
	}
}
