// SPDX-License-Identifier: MIT
// Package: dfir/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using %w.
//   • Constructors MUST NOT panic; validation panics are confined to option
//     constructor functions (WithX...), per the teacher's rules.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewOperators indicates a numeric parameter (operator count, branch
// count) is smaller than the constructor's allowed minimum.
var ErrTooFewOperators = errors.New("builder: parameter too small")

// ErrUnknownOperator indicates a name passed to a constructor is not
// registered in the resolved catalogue.
var ErrUnknownOperator = errors.New("builder: unknown operator")

// ErrConstructFailed indicates BuildGraph was handed a nil Constructor.
// Edge-wiring failures inside a constructor wrap the flat package's own
// error instead.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps an inner error message with the given method context,
// returning "<Method>: <formatted message>". A %w verb in format keeps the
// wrapped error reachable through errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
