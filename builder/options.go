// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// options.go — functional options and the resolved builder configuration.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors panic on nil arguments; FromEdgeList itself never panics.
//   • newBuilderConfig applies options in order (later overrides earlier).

package builder

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvtree/core"
)

// Option customizes FromEdgeList.
type Option func(*builderConfig)

// builderConfig is passed by value through the construction passes.
type builderConfig struct {
	// logger receives one debug entry per wired edge and one for the root.
	logger *zap.Logger
	// treeOpts are forwarded to core.New for the resulting tree.
	treeOpts []core.TreeOption
}

// WithLogger sets the logger used for debug entries during construction.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) { c.logger = l }
}

// WithTreeOptions forwards options to the core.Tree being built.
func WithTreeOptions(opts ...core.TreeOption) Option {
	return func(c *builderConfig) {
		c.treeOpts = append(c.treeOpts, opts...)
	}
}

// newBuilderConfig resolves defaults (no-op logger, no tree options) and applies opts.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
