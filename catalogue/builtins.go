// SPDX-License-Identifier: MIT
//
// File: builtins.go
// Role: the Catalogue of operator Specs matching ir.Node's variant list
// (spec.md §3), built afresh by every Builtins() call and used by tests,
// the builder package, and the partition builder.

package catalogue

func unaryInput(delay DelayType) []Port {
	p := []Port{{Index: 0, Name: "in"}}
	_ = delay
	return p
}

func unaryOutput() []Port {
	return []Port{{Index: 0, Name: "out"}}
}

func sinkSpec(name string) *Spec {
	return &Spec{
		Name:           name,
		InputPorts:     unaryInput(DelayNone),
		InputDelayType: map[int]DelayType{0: DelayNone},
	}
}

func unarySpec(name string, delay DelayType) *Spec {
	return &Spec{
		Name:           name,
		Arity:          Arity{Min: 0, Max: 0},
		InputPorts:     unaryInput(delay),
		OutputPorts:    unaryOutput(),
		InputDelayType: map[int]DelayType{0: delay},
	}
}

func binarySpec(name string, leftName, rightName string, rightDelay DelayType) *Spec {
	return &Spec{
		Name: name,
		Arity: Arity{
			Min: 0,
			Max: 0,
		},
		InputPorts: []Port{
			{Index: 0, Name: leftName},
			{Index: 1, Name: rightName},
		},
		OutputPorts:    unaryOutput(),
		InputDelayType: map[int]DelayType{0: DelayNone, 1: rightDelay},
	}
}

// Builtins returns a Catalogue populated with the operator Specs named in
// spec.md §3: unary ops, binary ops, stateful aggregations, sources, and
// cycle endpoints. It is the default catalogue used by the builder
// package's fixture constructors.
func Builtins() *Catalogue {
	return NewCatalogue(
		// Unary stream ops (spec.md §3 "Unary ops").
		unarySpec("persist", DelayNone),
		unarySpec("unpersist", DelayNone),
		unarySpec("delta", DelayNone),
		unarySpec("map", DelayNone),
		unarySpec("flat_map", DelayNone),
		unarySpec("filter", DelayNone),
		unarySpec("filter_map", DelayNone),
		unarySpec("defer_tick", DelayTick),
		unarySpec("enumerate", DelayNone),
		unarySpec("inspect", DelayNone),
		unarySpec("sort", DelayNone),
		unarySpec("unique", DelayNone),

		// Binary stream ops (same-location inputs required). Difference and
		// AntiJoin's "neg" (subtrahend) port is a Stratum barrier crosser:
		// the negative side must be fully computed one stratum ahead of the
		// positive side to avoid an unbroken negative cycle (spec.md §3/§8 S3/S4).
		binarySpec("chain", "first", "second", DelayNone),
		binarySpec("cross_product", "lhs", "rhs", DelayNone),
		binarySpec("cross_singleton", "lhs", "singleton", DelayNone),
		binarySpec("join", "lhs", "rhs", DelayNone),
		binarySpec("difference", "pos", "neg", DelayStratum),
		binarySpec("anti_join", "pos", "neg", DelayStratum),

		// Stateful aggregations.
		unarySpec("fold", DelayNone),
		unarySpec("fold_keyed", DelayNone),
		unarySpec("reduce", DelayNone),
		unarySpec("reduce_keyed", DelayNone),

		// Sources: no input ports; external inputs are isolated to their
		// own stratum-0 subgraph in Phase F.
		&Spec{
			Name:            "source_stream",
			OutputPorts:     unaryOutput(),
			IsExternalInput: true,
		},
		&Spec{
			Name:            "source_external_network",
			OutputPorts:     unaryOutput(),
			IsExternalInput: true,
		},
		&Spec{
			Name:        "source_iter",
			OutputPorts: unaryOutput(),
		},
		&Spec{
			Name:            "spin",
			OutputPorts:     unaryOutput(),
			IsExternalInput: true,
		},

		// Cycle endpoints (paired via a Tee in the IR; in the flat graph
		// they are ordinary single-port operators).
		&Spec{
			Name:        "cycle_source",
			OutputPorts: unaryOutput(),
		},

		// Leaves: ForEach/DestSink/CycleSink have one input port and no
		// output (sinks).
		sinkSpec("for_each"),
		sinkSpec("dest_sink"),
		sinkSpec("cycle_sink"),

		// identity() is the synthetic operator injected by Phase E.4 to
		// delay a tick-crosser by one stratum.
		unarySpec("identity", DelayNone),
	)
}
