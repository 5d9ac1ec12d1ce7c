// SPDX-License-Identifier: MIT
//
// File: materialize.go
// Role: Materialize/MaterializeLeaf walk an IR graph and finalize every
// Building Network node via the location-pair dispatch table of spec.md
// §4.3.

package network

import (
	"fmt"

	"github.com/dfir-lang/dfir/deploy"
	"github.com/dfir-lang/dfir/ir"
	"github.com/dfir-lang/dfir/location"
)

// Registry names the processes/clusters/externals a compiled program's
// location ids refer to. An id absent from the relevant map falls back to
// a generated name ("process3"), so a Registry need only name the ids a
// caller cares to label.
type Registry struct {
	Processes map[int]string
	Clusters  map[int]string
	Externals map[int]string
}

func (r Registry) process(id int) string  { return lookup(r.Processes, "process", id) }
func (r Registry) cluster(id int) string  { return lookup(r.Clusters, "cluster", id) }
func (r Registry) external(id int) string { return lookup(r.Externals, "external", id) }

func lookup(m map[int]string, prefix string, id int) string {
	if m != nil {
		if n, ok := m[id]; ok {
			return n
		}
	}
	return fmt.Sprintf("%s%d", prefix, id)
}

// Materialize walks *root post-order and finalizes every Building Network
// node it finds, using cap to allocate ports and form expressions.
func Materialize(root *ir.Node, cap deploy.Capability, reg Registry) {
	seen := ir.SeenTees{}
	materializeNode(root, cap, reg, seen)
}

// MaterializeLeaf is Materialize's entry point for a Leaf root.
func MaterializeLeaf(l ir.Leaf, cap deploy.Capability, reg Registry) {
	seen := ir.SeenTees{}
	ir.TransformChildrenLeaf(l, func(child *ir.Node) {
		materializeNode(child, cap, reg, seen)
	}, seen)
}

func materializeNode(n *ir.Node, cap deploy.Capability, reg Registry, seen ir.SeenTees) {
	ir.TransformChildren(*n, func(child *ir.Node) {
		materializeNode(child, cap, reg, seen)
	}, seen)
	if net, ok := (*n).(*ir.Network); ok {
		finalize(net, cap, reg)
	}
}

// finalize dispatches on (from.Root(), to.Root()) per spec.md §4.3's table.
func finalize(net *ir.Network, cap deploy.Capability, reg Registry) {
	from := net.FromLocation.Root()
	to := net.ToLocation.Root()

	switch {
	case from.Kind == location.KindProcess && to.Kind == location.KindProcess:
		fromName, toName := reg.process(from.Number), reg.process(to.Number)
		sinkPort := cap.AllocateProcessPort(fromName)
		sourcePort := cap.AllocateProcessPort(toName)
		sink, source := cap.O2OSinkSource(fromName, sinkPort, toName, sourcePort)
		net.Instantiate.Finalize(sink, source, cap.O2OConnect(fromName, sinkPort, toName, sourcePort))

	case from.Kind == location.KindProcess && to.Kind == location.KindCluster:
		fromName, toName := reg.process(from.Number), reg.cluster(to.Number)
		sinkPort := cap.AllocateProcessPort(fromName)
		sourcePort := cap.AllocateClusterPort(toName)
		sink, source := cap.O2MSinkSource(fromName, sinkPort, toName, sourcePort)
		net.Instantiate.Finalize(sink, source, cap.O2MConnect(fromName, sinkPort, toName, sourcePort))

	case from.Kind == location.KindCluster && to.Kind == location.KindProcess:
		fromName, toName := reg.cluster(from.Number), reg.process(to.Number)
		sinkPort := cap.AllocateClusterPort(fromName)
		sourcePort := cap.AllocateProcessPort(toName)
		sink, source := cap.M2OSinkSource(fromName, sinkPort, toName, sourcePort)
		net.Instantiate.Finalize(sink, source, cap.M2OConnect(fromName, sinkPort, toName, sourcePort))

	case from.Kind == location.KindCluster && to.Kind == location.KindCluster:
		fromName, toName := reg.cluster(from.Number), reg.cluster(to.Number)
		sinkPort := cap.AllocateClusterPort(fromName)
		sourcePort := cap.AllocateClusterPort(toName)
		sink, source := cap.M2MSinkSource(fromName, sinkPort, toName, sourcePort)
		net.Instantiate.Finalize(sink, source, cap.M2MConnect(fromName, sinkPort, toName, sourcePort))

	case from.Kind == location.KindExternalProcess && to.Kind == location.KindProcess:
		if net.FromKey == nil {
			panic("network: external->process edge missing from_key")
		}
		fromName, toName := reg.external(from.Number), reg.process(to.Number)
		sinkPort := cap.AllocateExternalPort(fromName)
		sourcePort := cap.AllocateProcessPort(toName)
		cap.Register(fromName, *net.FromKey, sinkPort)
		source := cap.E2OSource(fromName, sinkPort, toName, sourcePort)
		net.Instantiate.Finalize("", source, cap.E2OConnect(fromName, sinkPort, toName, sourcePort))

	case from.Kind == location.KindProcess && to.Kind == location.KindExternalProcess:
		if net.ToKey == nil {
			panic("network: process->external edge missing to_key")
		}
		fromName, toName := reg.process(from.Number), reg.external(to.Number)
		sinkPort := cap.AllocateProcessPort(fromName)
		sourcePort := cap.AllocateExternalPort(toName)
		cap.Register(toName, *net.ToKey, sourcePort)
		sink := cap.O2ESink(fromName, sinkPort, toName, sourcePort)
		net.Instantiate.Finalize(sink, "", cap.O2EConnect(fromName, sinkPort, toName, sourcePort))

	case from.Kind == location.KindExternalProcess && to.Kind == location.KindExternalProcess:
		panic("network: cannot send from external to external")

	default:
		panic(fmt.Sprintf("network: unsupported location pair %s -> %s", from, to))
	}
}
