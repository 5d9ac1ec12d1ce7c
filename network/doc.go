// Package network implements the network materializer of spec.md §4.3: a
// post-order walk over an IR graph that finds every Network node still in
// ir.Building state and finalizes it by dispatching on the ordered pair
// (from_location.Root(), to_location.Root()) to the matching deploy.Local
// (or any other deploy.Capability) former.
//
// Grounded on original_source/hydro_lang/src/ir.rs's instantiate_network
// function (the match over LocationId pairs) and compile_network (the
// post-order traversal that calls it). Generalized from Rust's six-armed
// match with two todo!()/panic!() arms into an explicit switch covering
// exactly the six supported pairs spec.md §4.3 lists. Tick locations are
// unwrapped to their Root() before dispatch; External<->External and every
// other pair panic.
package network
