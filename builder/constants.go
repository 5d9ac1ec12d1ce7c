// Package builder defines shared constants used by flat-graph fixture
// constructors, ensuring consistent defaults and error context across all
// topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodLinear is the canonical name for the Linear constructor.
	MethodLinear = "Linear"
	// MethodFanout is the canonical name for the Fanout constructor.
	MethodFanout = "Fanout"
	// MethodBinaryJoin is the canonical name for the BinaryJoin constructor.
	MethodBinaryJoin = "BinaryJoin"
	// MethodTickLoop is the canonical name for the TickLoop constructor.
	MethodTickLoop = "TickLoop"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinLinearOperators is the smallest meaningful size for a Linear chain.
// A chain of fewer than 2 operators has no edges.
const MinLinearOperators = 2

// MinFanoutBranches is the smallest meaningful branch count for Fanout.
// A fanout of fewer than 2 branches is just a Linear chain.
const MinFanoutBranches = 2
