// Package network_test exercises the location-pair dispatch arms (all but
// Process->External), the missing-key and External-External rejections,
// and the finalize-then-connect lifecycle (spec.md seed scenario S6).
package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfir-lang/dfir/deploy"
	"github.com/dfir-lang/dfir/ir"
	"github.com/dfir-lang/dfir/location"
	"github.com/dfir-lang/dfir/network"
)

func networkNode(from, to location.ID) *ir.Network {
	return &ir.Network{
		FromLocation: from,
		ToLocation:   to,
		Instantiate:  ir.NewInstantiate(),
		Input:        &ir.Source{Source: ir.Spin{}, Location: from},
	}
}

func TestMaterialize_ProcessToProcess(t *testing.T) {
	net := networkNode(location.Process(1), location.Process(2))
	var root ir.Node = net
	cap := deploy.NewLocal()

	network.Materialize(&root, cap, network.Registry{})

	assert.Equal(t, ir.Finalized, net.Instantiate.State())
	assert.NotEmpty(t, net.Instantiate.Sink)
	assert.NotEmpty(t, net.Instantiate.Source)
}

func TestMaterialize_ExternalToProcess_RegistersKey(t *testing.T) {
	key := 7
	net := &ir.Network{
		FromLocation: location.ExternalProcess(1),
		ToLocation:   location.Process(2),
		FromKey:      &key,
		Instantiate:  ir.NewInstantiate(),
		Input:        &ir.Source{Source: ir.ExternalNetwork{}, Location: location.ExternalProcess(1)},
	}
	var root ir.Node = net
	cap := deploy.NewLocal()

	network.Materialize(&root, cap, network.Registry{Externals: map[int]string{1: "client"}})

	_, ok := cap.RegisteredPort("client", key)
	assert.True(t, ok, "expected the external's sink port to be registered under its from_key")
	assert.NotEmpty(t, net.Instantiate.Source)
}

func TestMaterialize_ExternalToProcess_MissingKeyPanics(t *testing.T) {
	net := networkNode(location.ExternalProcess(1), location.Process(2))
	var root ir.Node = net
	assert.Panics(t, func() {
		network.Materialize(&root, deploy.NewLocal(), network.Registry{})
	}, "expected a missing from_key to panic")
}

func TestMaterialize_ExternalToExternalPanics(t *testing.T) {
	net := networkNode(location.ExternalProcess(1), location.ExternalProcess(2))
	var root ir.Node = net
	assert.Panics(t, func() {
		network.Materialize(&root, deploy.NewLocal(), network.Registry{})
	}, "expected external->external to panic")
}

func TestMaterialize_ThenConnectNetwork_RunsCallbackOnce(t *testing.T) {
	net := networkNode(location.Process(1), location.Process(2))
	var root ir.Node = net
	cap := deploy.NewLocal()
	network.Materialize(&root, cap, network.Registry{})

	ir.ConnectNetwork(&root, ir.SeenTees{})
	require.Len(t, cap.Connections, 1)

	assert.Panics(t, func() {
		ir.ConnectNetwork(&root, ir.SeenTees{})
	}, "expected a second ConnectNetwork to panic")
}

func TestMaterialize_ClusterPairs(t *testing.T) {
	cases := []struct {
		name     string
		from, to location.ID
	}{
		{"ProcessToCluster", location.Process(1), location.Cluster(2)},
		{"ClusterToProcess", location.Cluster(1), location.Process(2)},
		{"ClusterToCluster", location.Cluster(1), location.Cluster(2)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			net := networkNode(c.from, c.to)
			var root ir.Node = net
			network.Materialize(&root, deploy.NewLocal(), network.Registry{})
			assert.Equal(t, ir.Finalized, net.Instantiate.State())
		})
	}
}
