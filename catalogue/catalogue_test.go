package catalogue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfir-lang/dfir/catalogue"
)

func TestBuiltins_DeferTickIsTickDelayed(t *testing.T) {
	cat := catalogue.Builtins()
	spec, ok := cat.Lookup("defer_tick")
	require.True(t, ok, "defer_tick not registered")
	assert.Equal(t, catalogue.DelayTick, spec.InputDelayTypeFn(0))
}

func TestBuiltins_DifferenceNegIsStratumDelayed(t *testing.T) {
	cat := catalogue.Builtins()
	spec, ok := cat.Lookup("difference")
	require.True(t, ok, "difference not registered")
	assert.Equal(t, catalogue.DelayStratum, spec.InputDelayTypeFn(1))
	assert.Equal(t, catalogue.DelayNone, spec.InputDelayTypeFn(0))
}

func TestBuiltins_UnknownPortDefaultsToNone(t *testing.T) {
	cat := catalogue.Builtins()
	spec, _ := cat.Lookup("map")
	assert.Equal(t, catalogue.DelayNone, spec.InputDelayTypeFn(99))
}

func TestBuiltins_ExternalInputsMarked(t *testing.T) {
	cat := catalogue.Builtins()
	for _, name := range []string{"source_stream", "source_external_network", "spin"} {
		spec, ok := cat.Lookup(name)
		require.True(t, ok, "%s not registered", name)
		assert.True(t, spec.IsExternalInput, "%s should be IsExternalInput", name)
	}
	spec, _ := cat.Lookup("source_iter")
	assert.False(t, spec.IsExternalInput, "source_iter should not be IsExternalInput")
}

func TestLookup_MissingReturnsFalse(t *testing.T) {
	cat := catalogue.Builtins()
	_, ok := cat.Lookup("does_not_exist")
	assert.False(t, ok, "expected missing operator to report ok=false")
}

func TestMustLookup_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		catalogue.Builtins().MustLookup("does_not_exist")
	}, "expected MustLookup to panic on unknown operator")
}
