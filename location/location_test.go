package location_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dfir-lang/dfir/location"
)

func TestRoot_UnwrapsNestedTicks(t *testing.T) {
	base := location.Process(7)
	once := location.Tick(1, base)
	twice := location.Tick(2, once)

	assert.True(t, twice.Root().Equal(base))
	assert.True(t, base.Root().Equal(base), "Root() of non-Tick should be itself")
}

func TestEqual(t *testing.T) {
	a := location.Tick(1, location.Cluster(4))
	b := location.Tick(1, location.Cluster(4))
	c := location.Tick(1, location.Cluster(5))

	assert.True(t, a.Equal(b), "expected equal Tick locations")
	assert.False(t, a.Equal(c), "expected distinct Tick locations to differ")
	assert.False(t, location.Process(1).Equal(location.Cluster(1)), "different kinds with same number must not be equal")
}

func TestString(t *testing.T) {
	got := location.Tick(1, location.Cluster(2)).String()
	assert.Equal(t, "Tick(1, Cluster(2))", got)
}
