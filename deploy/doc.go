// Package deploy defines the capability set the network materializer
// (package network) consumes to turn a Network IR node into concrete
// sink/source expressions and a connect callback (spec.md §6 "Deployment
// -> network materializer").
//
// Capability is the interface a real deployment runtime would implement
// against actual sockets and processes (out of scope here, per spec.md
// §1's "deployment runtime that owns the actual sockets and processes").
// Local is a finite in-memory implementation used by tests so the rest of
// the module can be exercised end to end without inventing a real
// transport.
package deploy
