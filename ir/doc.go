// Package ir implements the typed IR graph described in spec.md §3/§4.2: a
// tagged-variant operator graph with two kinds of nodes — Leaf (sinks:
// ForEach, DestSink, CycleSink) and Node (everything else: sources, Tee,
// unary/binary/stateful stream operators, Network, and the transient
// Placeholder) — plus the recursive traversals that rewrite it while
// preserving shared (multi-consumer) subtrees.
//
// Node variants are modeled as pointer-to-struct types implementing a
// marker interface, the idiomatic Go analogue of the teacher corpus's
// tagged-union encodings: a concrete struct's address IS its identity, so
// TransformChildren can mutate a child in place through &concrete.Field
// instead of reconstructing and returning a new owned value the way the
// Rust original's Box<HydroNode> does.
//
// Tee sharing uses the same trick at one remove: Tee.Inner is a *Cell, and
// two Tee values sharing a *Cell observe each other's mutations, the Go
// equivalent of Rc<RefCell<HydroNode>>. TransformChildren's tee branch
// follows the placeholder-then-overwrite protocol of spec.md §4.2 exactly:
// on first visit to a *Cell, install a fresh transformed cell in seenTees
// before recursing into the original body, so a cycle threaded back through
// the same tee (cycle_source/cycle_sink indirection) terminates instead of
// looping forever.
//
// Per spec.md §5 ("single-threaded, synchronous... no locking, no
// suspension"), none of this package's types carry a mutex; callers must
// not share an IR graph across goroutines while traversing it.
package ir
