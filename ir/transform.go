// SPDX-License-Identifier: MIT
//
// File: transform.go
// Role: TransformChildren (for both Node and Leaf), TransformBottomUp, and
// ConnectNetwork — the recursive traversals of spec.md §4.2.
// Concurrency: none; these traversals assume single-threaded, synchronous
// access per spec.md §5.

package ir

// SeenTees maps an original tee *Cell to the *Cell its transformed body now
// lives in. TransformChildren populates it so that a second Tee pointing at
// an already-transformed cell is redirected instead of re-transformed.
type SeenTees map[*Cell]*Cell

// ChildFunc is applied to each child slot of a node during
// TransformChildren. It receives the address of the field holding that
// child, so it may replace the child outright (e.g. the tee-dedup branch
// does exactly this for a Tee's Inner).
type ChildFunc func(child *Node)

// TransformChildren applies f to every child of n exactly once, honoring
// tee sharing via seen. Leaves alone any node with no children (Placeholder
// excepted: it panics, since a Placeholder reaching a traversal is always a
// programming fault per spec.md §4.2/§7).
func TransformChildren(n Node, f ChildFunc, seen SeenTees) {
	switch v := n.(type) {
	case *Placeholder:
		panic("ir: encountered Placeholder outside a transformation")

	case *Source, *CycleSource:
		// no children

	case *Tee:
		transformTee(v, f, seen)

	case *Persist:
		f(&v.Input)
	case *Unpersist:
		f(&v.Input)
	case *Delta:
		f(&v.Input)

	case *Chain:
		f(&v.Left)
		f(&v.Right)
	case *CrossProduct:
		f(&v.Left)
		f(&v.Right)
	case *CrossSingleton:
		f(&v.Left)
		f(&v.Right)
	case *Join:
		f(&v.Left)
		f(&v.Right)
	case *Difference:
		f(&v.Left)
		f(&v.Right)
	case *AntiJoin:
		f(&v.Left)
		f(&v.Right)

	case *Map:
		f(&v.Input)
	case *FlatMap:
		f(&v.Input)
	case *Filter:
		f(&v.Input)
	case *FilterMap:
		f(&v.Input)

	case *DeferTick:
		f(&v.Input)
	case *Enumerate:
		f(&v.Input)
	case *Inspect:
		f(&v.Input)

	case *Unique:
		f(&v.Input)
	case *Sort:
		f(&v.Input)
	case *Fold:
		f(&v.Input)
	case *FoldKeyed:
		f(&v.Input)
	case *Reduce:
		f(&v.Input)
	case *ReduceKeyed:
		f(&v.Input)

	case *Network:
		f(&v.Input)

	default:
		panic("ir: TransformChildren: unhandled Node variant")
	}
}

// transformTee implements the placeholder-then-overwrite protocol of
// spec.md §4.2: on first visit to orig, install a fresh cell (holding a
// Placeholder) into seen *before* recursing into orig's body, so a cycle
// threaded back through the same tee sees the partially-built cell and
// terminates instead of looping forever; once the recursive transform
// returns, overwrite the new cell with the transformed body.
func transformTee(t *Tee, f ChildFunc, seen SeenTees) {
	orig := t.Inner
	if transformed, ok := seen[orig]; ok {
		t.Inner = transformed
		return
	}

	transformedCell := &Cell{Inner: &Placeholder{}}
	seen[orig] = transformedCell

	body := orig.Inner
	orig.Inner = &Placeholder{}
	f(&body)

	transformedCell.Inner = body
	t.Inner = transformedCell
}

// TransformChildrenLeaf is TransformChildren's counterpart for Leaf, which
// has exactly one child slot in every variant.
func TransformChildrenLeaf(l Leaf, f ChildFunc, seen SeenTees) {
	switch v := l.(type) {
	case *ForEach:
		f(&v.Input)
	case *DestSink:
		f(&v.Input)
	case *CycleSink:
		f(&v.Input)
	default:
		panic("ir: TransformChildrenLeaf: unhandled Leaf variant")
	}
}

// BottomUpFunc is applied to a node after all of its children have already
// been transformed, with a caller-supplied context threaded through the
// whole traversal.
type BottomUpFunc func(n *Node, ctx interface{})

// TransformBottomUp performs a depth-first post-order rewrite: every child
// of *n is transformed first, then f runs on *n itself.
func TransformBottomUp(n *Node, f BottomUpFunc, seen SeenTees, ctx interface{}) {
	TransformChildren(*n, func(child *Node) {
		TransformBottomUp(child, f, seen, ctx)
	}, seen)
	f(n, ctx)
}

// TransformBottomUpLeaf is TransformBottomUp's entry point for a Leaf root.
func TransformBottomUpLeaf(l Leaf, f BottomUpFunc, seen SeenTees, ctx interface{}) {
	TransformChildrenLeaf(l, func(child *Node) {
		TransformBottomUp(child, f, seen, ctx)
	}, seen)
}

// ConnectNetwork walks *n post-order and invokes every Finalized Network
// node's connect callback exactly once. Any Network still in state
// Building panics (spec.md §4.2 "panics if any Network is still
// Building").
func ConnectNetwork(n *Node, seen SeenTees) {
	TransformChildren(*n, func(child *Node) {
		ConnectNetwork(child, seen)
	}, seen)
	if net, ok := (*n).(*Network); ok {
		net.Instantiate.Connect()
	}
}

// ConnectNetworkLeaf is ConnectNetwork's entry point for a Leaf root.
func ConnectNetworkLeaf(l Leaf, seen SeenTees) {
	TransformChildrenLeaf(l, func(child *Node) {
		ConnectNetwork(child, seen)
	}, seen)
}
