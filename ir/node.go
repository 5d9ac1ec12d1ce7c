// SPDX-License-Identifier: MIT
//
// File: node.go
// Role: the Leaf/Node marker interfaces and every concrete IR variant named
// in spec.md §3 ("IR Node") and §5 of original_source/hydro_lang/src/ir.rs.

package ir

import "github.com/dfir-lang/dfir/location"

// Leaf is a terminal IR node: a pipeline stage that consumes but does not
// emit a downstream value. Every concrete Leaf is a pointer-to-struct type.
type Leaf interface {
	isLeaf()
}

// Node is an interior IR node: it may be an input to some Leaf or to
// another Node. Every concrete Node is a pointer-to-struct type.
type Node interface {
	isNode()
}

// ForEach runs f on every element of Input and emits nothing downstream.
type ForEach struct {
	F     string
	Input Node
}

// DestSink writes every element of Input to an external sink expression.
type DestSink struct {
	Sink  string
	Input Node
}

// CycleSink closes a cycle begun by a CycleSource sharing the same Ident:
// Input's values become available to that CycleSource on the next
// iteration. Location must equal the location of Input (spec.md §3
// invariant), checked by the surface layer, not enforced here.
type CycleSink struct {
	Ident    string
	Location location.ID
	Input    Node
}

func (*ForEach) isLeaf()   {}
func (*DestSink) isLeaf()  {}
func (*CycleSink) isLeaf() {}

// Placeholder marks a node slot mid-transformation. It must never be
// observed outside TransformChildren/TransformBottomUp; encountering one
// elsewhere is a programming fault (spec.md §4.2, §7).
type Placeholder struct{}

// Source is where data enters the graph (spec.md "IR Node", sources).
type Source struct {
	Source   HydroSource
	Location location.ID
}

// CycleSource is the open end of a cycle, paired with a CycleSink sharing
// the same Ident.
type CycleSource struct {
	Ident    string
	Location location.ID
}

// Tee is a shared mutable cell: any number of parents may hold a Tee
// pointing at the same *Cell, and all of them observe the same body after a
// transformation (spec.md §3 "Tee").
type Tee struct {
	Inner *Cell
}

// Cell is the reference-counted-by-convention body a Tee shares. Its
// address is its identity: two *Cell values are "the same tee" iff they are
// the same pointer.
type Cell struct {
	Inner Node
}

// Persist retains every element Input has ever emitted, across ticks.
type Persist struct{ Input Node }

// Unpersist clears Input's retained history at the start of every tick.
type Unpersist struct{ Input Node }

// Delta emits only the elements new to Input since the last tick.
type Delta struct{ Input Node }

// Chain concatenates Left's and Right's elements; both must resolve to the
// same location at emit time (spec.md §3 invariant).
type Chain struct{ Left, Right Node }

// CrossProduct emits the Cartesian product of Left and Right.
type CrossProduct struct{ Left, Right Node }

// CrossSingleton pairs every element of Left with Right's single value.
type CrossSingleton struct{ Left, Right Node }

// Join emits matching key-value pairs from Left ("lhs") and Right ("rhs").
type Join struct{ Left, Right Node }

// Difference emits Left's elements not present in Right ("neg"), which
// typically carries a Stratum delay (catalogue-declared, not enforced here).
type Difference struct{ Left, Right Node }

// AntiJoin emits Left's elements whose key is absent from Right ("neg").
type AntiJoin struct{ Left, Right Node }

// Map applies F to every element of Input.
type Map struct {
	F     string
	Input Node
}

// FlatMap applies F to every element of Input and flattens the results.
type FlatMap struct {
	F     string
	Input Node
}

// Filter retains elements of Input for which F is true.
type Filter struct {
	F     string
	Input Node
}

// FilterMap applies F to every element of Input, retaining only non-empty
// results.
type FilterMap struct {
	F     string
	Input Node
}

// DeferTick delays Input's elements to the next tick (a Tick barrier, per
// the catalogue's delay-type declaration on whichever port receives it).
type DeferTick struct{ Input Node }

// Enumerate pairs every element of Input with its index. IsStatic marks
// whether the count starts fresh each tick (false) or persists (true).
type Enumerate struct {
	IsStatic bool
	Input    Node
}

// Inspect runs F on every element of Input for its side effect and passes
// the element through unchanged.
type Inspect struct {
	F     string
	Input Node
}

// Unique deduplicates Input's elements.
type Unique struct{ Input Node }

// Sort orders Input's elements.
type Sort struct{ Input Node }

// Fold reduces Input to a single accumulator seeded by Init and combined by
// Acc.
type Fold struct {
	Init, Acc string
	Input     Node
}

// FoldKeyed reduces Input per key to an accumulator seeded by Init and
// combined by Acc.
type FoldKeyed struct {
	Init, Acc string
	Input     Node
}

// Reduce combines Input's elements pairwise with F, with no explicit seed.
type Reduce struct {
	F     string
	Input Node
}

// ReduceKeyed combines Input's elements pairwise with F, per key.
type ReduceKeyed struct {
	F     string
	Input Node
}

func (*Placeholder) isNode()    {}
func (*Source) isNode()         {}
func (*CycleSource) isNode()    {}
func (*Tee) isNode()            {}
func (*Persist) isNode()        {}
func (*Unpersist) isNode()      {}
func (*Delta) isNode()          {}
func (*Chain) isNode()          {}
func (*CrossProduct) isNode()   {}
func (*CrossSingleton) isNode() {}
func (*Join) isNode()           {}
func (*Difference) isNode()     {}
func (*AntiJoin) isNode()       {}
func (*Map) isNode()            {}
func (*FlatMap) isNode()        {}
func (*Filter) isNode()         {}
func (*FilterMap) isNode()      {}
func (*DeferTick) isNode()      {}
func (*Enumerate) isNode()      {}
func (*Inspect) isNode()        {}
func (*Unique) isNode()         {}
func (*Sort) isNode()           {}
func (*Fold) isNode()           {}
func (*FoldKeyed) isNode()      {}
func (*Reduce) isNode()         {}
func (*ReduceKeyed) isNode()    {}
func (*Network) isNode()        {}
