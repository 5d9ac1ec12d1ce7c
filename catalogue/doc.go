// Package catalogue is the read-only operator catalogue consumed by the
// flat-to-partitioned builder (spec.md §4.1).
//
// What:
//
//   - Spec: the static description of one operator kind — its arity
//     range, its input/output port list, a per-port delay-type function,
//     whether it is an external input, and its persistence/type-argument
//     shape.
//   - DelayType: None / Tick / Stratum, the three ways an input port can
//     delay the values it receives relative to the tick/stratum in which
//     they were produced.
//   - Catalogue: a name-indexed, immutable registry of Specs.
//
// Why:
//
//   - Phases B and E (coalescing, stratum assignment) of the
//     partitioned-graph builder need, for every edge, "does this input
//     port delay", and Phase F needs "is this operator an external input",
//     without
//     caring about anything else the operator does. The catalogue is the
//     single source of truth for that, decoupled from the IR/flat graph
//     so it can be swapped or extended without touching the builder.
//
// Mutation: the catalogue is built once (NewCatalogue) and never mutated
// afterward; no operation here writes to a Catalogue's internal map.
package catalogue
