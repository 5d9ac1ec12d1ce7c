// SPDX-License-Identifier: MIT
//
// File: diag.go
// Role: Span/Level/Diagnostic value types and the collecting Set.

package diag

import "fmt"

// Level is a diagnostic's severity.
type Level int

const (
	// LevelError marks a diagnostic that prevents downstream emission.
	LevelError Level = iota
	// LevelWarning marks a diagnostic that does not block emission.
	LevelWarning
	// LevelNote marks an informational diagnostic.
	LevelNote
)

// String renders the Level for printing.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelNote:
		return "note"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Span locates a diagnostic within the compiled graph. The core has no
// source text to point into (spec.md §6: no parsing happens here), so a
// Span is a human-readable locator built by the caller from whatever graph
// identifiers it has in hand — e.g. "node 7, port neg".
type Span struct {
	Label string
}

// NodeSpan builds a Span identifying a node by id.
func NodeSpan(nodeID, label string) Span {
	return Span{Label: fmt.Sprintf("node %s (%s)", nodeID, label)}
}

// PortSpan builds a Span identifying a specific input port of a node.
func PortSpan(nodeID, portLabel string) Span {
	return Span{Label: fmt.Sprintf("node %s, port %s", nodeID, portLabel)}
}

// Diagnostic is one structured error/warning/note.
type Diagnostic struct {
	Span    Span
	Level   Level
	Message string
}

// String renders the diagnostic as "<level>: <message> (at <span>)".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s (at %s)", d.Level, d.Message, d.Span.Label)
}

// Error implements error so a Diagnostic can be returned/wrapped directly
// where a single failure (rather than a collected Set) is more natural.
func (d Diagnostic) Error() string { return d.String() }

// Errorf builds a LevelError Diagnostic at span with a formatted message.
func Errorf(span Span, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Span: span, Level: LevelError, Message: fmt.Sprintf(format, args...)}
}

// Set collects diagnostics produced over the course of one compilation.
// Unlike a single error return, a Set lets later phases keep reporting
// problems after an earlier phase already found one (spec.md §9).
type Set struct {
	items []Diagnostic
}

// Add appends d to the set.
func (s *Set) Add(d Diagnostic) { s.items = append(s.items, d) }

// HasErrors reports whether any collected diagnostic is LevelError.
func (s *Set) HasErrors() bool {
	for _, d := range s.items {
		if d.Level == LevelError {
			return true
		}
	}
	return false
}

// All returns the collected diagnostics in insertion order. The returned
// slice must not be mutated by callers.
func (s *Set) All() []Diagnostic { return s.items }

// Len reports how many diagnostics have been collected.
func (s *Set) Len() int { return len(s.items) }
