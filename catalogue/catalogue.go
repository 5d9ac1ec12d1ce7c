// SPDX-License-Identifier: MIT
//
// File: catalogue.go
// Role: Operator Spec definitions and the Catalogue registry (spec.md §4.1).
// Policy:
//   - No algorithms live here beyond simple lookups; Spec values are pure data.
//   - A Catalogue, once built, is read-only: callers must not mutate the
//     map returned by internal accessors.

package catalogue

import "fmt"

// DelayType is the delay an input port imposes on the values it receives.
type DelayType int

const (
	// DelayNone means values arrive in the same stratum/tick they were sent.
	DelayNone DelayType = iota
	// DelayTick means values are buffered and arrive in the next tick.
	DelayTick
	// DelayStratum means values must arrive in a strictly later stratum of
	// the same tick (a "negative edge" per spec.md §3).
	DelayStratum
)

// String renders the DelayType for diagnostics.
func (d DelayType) String() string {
	switch d {
	case DelayNone:
		return "None"
	case DelayTick:
		return "Tick"
	case DelayStratum:
		return "Stratum"
	default:
		return fmt.Sprintf("DelayType(%d)", int(d))
	}
}

// Port describes one input or output port of an operator by its declared
// index. Operators with a single input/output use index 0; binary operators
// typically use 0 and 1 (e.g. Join's "lhs"/"rhs").
type Port struct {
	// Index is the port's position, matching flat.PortIndex.Int for
	// elided-free edges into/out of this operator.
	Index int
	// Name documents the port's role (e.g. "lhs", "rhs", "pos", "neg").
	// Not used for any comparison — diagnostics only.
	Name string
}

// PersistenceMode enumerates how an operator is allowed to persist state
// across ticks.
type PersistenceMode int

const (
	// PersistNone: the operator holds no state across ticks.
	PersistNone PersistenceMode = iota
	// PersistTick: state is cleared at the start of every tick.
	PersistTick
	// PersistStatic: state survives for the lifetime of the program.
	PersistStatic
	// PersistMutable: state survives across ticks and may be mutated
	// in place (e.g. FoldKeyed accumulators).
	PersistMutable
)

// Arity bounds the number of operand subgraphs (distinct from ports: arity
// counts operator arguments such as a closure count, not edges).
type Arity struct {
	Min int
	Max int // -1 means unbounded
}

// Spec is the immutable description of one operator kind.
type Spec struct {
	// Name is the catalogue key, e.g. "map", "join", "defer_tick".
	Name string

	// Arity bounds the operator's argument count (closures, constants).
	Arity Arity

	// InputPorts and OutputPorts list the operator's typed ports in
	// declaration order. Most unary operators have exactly one of each;
	// binary operators (Chain, Join, ...) have two input ports.
	InputPorts  []Port
	OutputPorts []Port

	// InputDelayType returns the delay type imposed by the given input
	// port index. Ports not present in the map default to DelayNone.
	InputDelayType map[int]DelayType

	// IsExternalInput marks operators that read from outside the
	// dataflow program (spec.md Phase F): these are forced into their
	// own stratum-0 subgraph regardless of where lowering would
	// otherwise place them.
	IsExternalInput bool

	// AllowedPersistence lists the persistence modes this operator may
	// be constructed with; empty means PersistNone only.
	AllowedPersistence []PersistenceMode

	// TypeArgCount is the number of generic type arguments the operator
	// takes (0 for most operators; e.g. Fold takes 0, but a typed Network
	// might take 2 for serialize/deserialize types).
	TypeArgCount int
}

// InputDelayTypeFn returns the delay type for the given input port index,
// defaulting to DelayNone when unspecified.
func (s *Spec) InputDelayTypeFn(portIndex int) DelayType {
	if s == nil || s.InputDelayType == nil {
		return DelayNone
	}
	if dt, ok := s.InputDelayType[portIndex]; ok {
		return dt
	}
	return DelayNone
}

// InDegree and OutDegree report the declared port counts. Phase A node
// coloring does not use them (it colors from the flat graph's actual edge
// degree); they are provided for catalogue-level validation / diagnostics
// only.
func (s *Spec) InDegree() int  { return len(s.InputPorts) }
func (s *Spec) OutDegree() int { return len(s.OutputPorts) }

// Catalogue is a read-only, name-indexed registry of operator Specs.
type Catalogue struct {
	specs map[string]*Spec
}

// NewCatalogue builds a Catalogue from the given Specs. Duplicate names
// overwrite earlier entries in the order given (last write wins), mirroring
// map-literal semantics; callers should not rely on that and instead supply
// unique names.
func NewCatalogue(specs ...*Spec) *Catalogue {
	c := &Catalogue{specs: make(map[string]*Spec, len(specs))}
	for _, s := range specs {
		c.specs[s.Name] = s
	}
	return c
}

// Lookup returns the Spec registered under name, and whether it was found.
// The returned pointer must not be mutated by callers.
func (c *Catalogue) Lookup(name string) (*Spec, bool) {
	s, ok := c.specs[name]
	return s, ok
}

// MustLookup is Lookup but panics if name is not registered; used where the
// caller has already validated the operator name against the surface layer
// (spec.md treats an unknown operator name here as a structural fault, not
// a user error, since the surface layer is responsible for validating names
// before constructing IR/flat-graph nodes).
func (c *Catalogue) MustLookup(name string) *Spec {
	s, ok := c.specs[name]
	if !ok {
		panic(fmt.Sprintf("catalogue: unknown operator %q", name))
	}
	return s
}
