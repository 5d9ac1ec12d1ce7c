// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: NodeID/EdgeID, PortIndex, NodeKind, Node, Edge, OperatorInstance,
// and sentinel errors for the flat-graph model.

package flat

import (
	"errors"
	"fmt"

	"github.com/dfir-lang/dfir/catalogue"
)

// Sentinel errors for flat-graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("flat: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("flat: edge not found")

	// ErrConsecutiveHandoffs indicates an edge would connect two handoff
	// nodes directly, violating spec.md §3's flat-graph invariant.
	ErrConsecutiveHandoffs = errors.New("flat: edge would connect two handoffs directly")
)

// PortIndexKind tags which shape a PortIndex holds.
type PortIndexKind int

const (
	// PortElided means the edge's operator has exactly one port on this
	// side, so no explicit index is needed (e.g. a unary operator's single
	// input). Produced automatically by InsertIntermediate for the
	// newly-spliced sides of a split edge.
	PortElided PortIndexKind = iota
	// PortInt means the port is selected by a declared integer index
	// (matching catalogue.Port.Index), e.g. Join's port 0 ("lhs") vs
	// port 1 ("rhs").
	PortInt
	// PortPath means the port is selected by a structural path, used when
	// an operator's ports are named by destructuring (tuple/struct access)
	// rather than a flat integer — e.g. a demultiplexing operator with
	// named enum-variant output ports.
	PortPath
)

// PortIndex identifies one port of an operator node on one side of an edge.
type PortIndex struct {
	Kind PortIndexKind
	Int  int      // valid when Kind == PortInt
	Path []string // valid when Kind == PortPath
}

// Elided is the zero-information PortIndex, used for single-ported sides.
func Elided() PortIndex { return PortIndex{Kind: PortElided} }

// IntPort builds a PortIndex selecting a declared integer port.
func IntPort(i int) PortIndex { return PortIndex{Kind: PortInt, Int: i} }

// PathPort builds a PortIndex selecting a structural path.
func PathPort(path ...string) PortIndex { return PortIndex{Kind: PortPath, Path: path} }

// String renders a PortIndex for diagnostics.
func (p PortIndex) String() string {
	switch p.Kind {
	case PortInt:
		return fmt.Sprintf("%d", p.Int)
	case PortPath:
		return fmt.Sprintf("%v", p.Path)
	default:
		return "_"
	}
}

// NodeID uniquely identifies a node within a Graph.
type NodeID int

// EdgeID uniquely identifies an edge within a Graph.
type EdgeID int

// NodeKind distinguishes operator nodes from handoff nodes.
type NodeKind int

const (
	// KindOperator is a node backed by an OperatorInstance.
	KindOperator NodeKind = iota
	// KindHandoff is a queueing node inserted between subgraphs
	// (spec.md Glossary "Handoff"); it has no OperatorInstance.
	KindHandoff
)

// OperatorInstance names one operator node's catalogue entry and arguments.
// Arguments are kept opaque (string form) since the core never evaluates
// them — only the downstream emitter (out of scope) does.
type OperatorInstance struct {
	Name      string
	Spec      *catalogue.Spec
	Arguments []string
}

// Node is one vertex of the flat graph: either an operator (with an
// OperatorInstance) or a handoff (without one).
type Node struct {
	ID       NodeID
	Kind     NodeKind
	Operator *OperatorInstance // nil when Kind == KindHandoff
}

// Edge is one directed, port-indexed connection between two nodes.
type Edge struct {
	ID      EdgeID
	Src     NodeID
	SrcPort PortIndex
	Dst     NodeID
	DstPort PortIndex
}
