// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: the Network IR node and its Building/Finalized instantiation slot
// (spec.md §3 "Network node", §9 "Late-binding network instantiation").

package ir

import "github.com/dfir-lang/dfir/location"

// InstantiateState tags which state a Network node's instantiation slot is
// in.
type InstantiateState int

const (
	// Building means the network edge has not yet been materialized.
	Building InstantiateState = iota
	// Finalized means Finalize has produced sink/source expressions and an
	// at-most-once connect callback.
	Finalized
)

// Instantiate is the Network node's single-shot state machine: Building ->
// Finalized -> (callback consumed). It is package network's job to call
// Finalize; package ir only enforces the state machine's contract.
type Instantiate struct {
	state   InstantiateState
	Sink    string
	Source  string
	connect func()
}

// NewInstantiate returns a fresh slot in the Building state.
func NewInstantiate() *Instantiate {
	return &Instantiate{state: Building}
}

// State reports the slot's current state.
func (in *Instantiate) State() InstantiateState { return in.state }

// Finalize transitions Building -> Finalized, recording the sink/source
// expressions and the connect callback. Finalizing an already-Finalized
// slot is a state-machine misuse (spec.md §7): fail fast.
func (in *Instantiate) Finalize(sink, source string, connect func()) {
	if in.state == Finalized {
		panic("ir: network already finalized")
	}
	in.state = Finalized
	in.Sink = sink
	in.Source = source
	in.connect = connect
}

// Connect invokes the connect callback exactly once. Calling it before
// Finalize, or a second time after the callback has already run, is a
// state-machine misuse: fail fast.
func (in *Instantiate) Connect() {
	if in.state != Finalized {
		panic("ir: network not finalized before connect_network")
	}
	if in.connect == nil {
		panic("ir: network connect callback already consumed")
	}
	cb := in.connect
	in.connect = nil
	cb()
}

// Network carries data across a location boundary. Input is the local side
// feeding the network edge; FromKey/ToKey identify external endpoints when
// one side is an ExternalProcess (nil otherwise).
type Network struct {
	FromLocation  location.ID
	FromKey       *int
	ToLocation    location.ID
	ToKey         *int
	SerializeFn   string
	DeserializeFn string
	Instantiate   *Instantiate
	Input         Node
}
