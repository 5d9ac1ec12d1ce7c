// Package builder provides internal configuration types and functional
// options for flat-graph fixture constructors. It centralizes the one
// setting every constructor needs — which operator catalogue to resolve
// names against — to keep constructor implementations DRY and consistent.
//
// The key type is BuilderOption, a function that mutates a builderConfig.
// Use newBuilderConfig to obtain a config with sensible defaults (the
// builtin catalogue), then apply any number of BuilderOption. Later
// options override earlier ones.
package builder

import "github.com/dfir-lang/dfir/catalogue"

// BuilderOption customizes the behavior of a fixture constructor. It
// mutates the builderConfig before graph construction begins.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the configurable parameters for fixture builders.
type builderConfig struct {
	cat *catalogue.Catalogue // operator catalogue constructors look names up in
}

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{cat: catalogue.Builtins()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithCatalogue injects a custom operator catalogue into the builderConfig.
// If cat is nil, this option is a no-op.
func WithCatalogue(cat *catalogue.Catalogue) BuilderOption {
	return func(cfg *builderConfig) {
		if cat != nil {
			cfg.cat = cat
		}
	}
}
