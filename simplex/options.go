// SPDX-License-Identifier: MIT

// Package simplex: functional configuration for solve calls.
// Options govern resources and observability only; they never change the
// optimum of a solvable instance.

package simplex

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/linprog/logger"
)

// DefaultMaxNodes is the default branch-and-bound node budget.
// Zero means unbounded: the search contract is exponential worst case and
// callers wanting a hard stop must set WithMaxNodes or WithContext.
const DefaultMaxNodes = 0

// Internal panic messages (no magic strings).
const (
	panicMaxNodesInvalid = "simplex: WithMaxNodes: n must be >= 0"
	panicContextNil      = "simplex: WithContext: ctx must be non-nil"
)

// Options stores the effective solve configuration after applying Option
// setters. Fields are unexported; public entry points accept ...Option.
type Options struct {
	maxNodes int             // branch-and-bound node budget; 0 = unbounded
	ctx      context.Context // checked at branch boundaries only
	log      zerolog.Logger  // per-solve structured logger
}

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error); user-triggered failures use sentinels.
type Option func(*Options)

// WithMaxNodes caps the number of branch-and-bound nodes explored by one
// solve. The budget includes the root relaxation. n = 0 means unbounded;
// exhausting a positive budget yields ErrNodeLimit. Panics on n < 0.
func WithMaxNodes(n int) Option {
	if n < 0 {
		panic(panicMaxNodesInvalid)
	}

	return func(o *Options) { o.maxNodes = n }
}

// WithContext attaches a cancellation context to the solve. Cancellation
// is observed only at branch boundaries - never mid-pivot - so a canceled
// solve never leaves a tableau in a non-canonical state. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(panicContextNil)
	}

	return func(o *Options) { o.ctx = ctx }
}

// WithLogger overrides the package-global logger for one solve.
// Phase transitions and pivot counts log at debug level; branch-and-bound
// incumbent updates at debug, budget exhaustion at warn.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.log = l }
}

// gatherOptions resolves option setters against documented defaults.
// Last-writer-wins; the global logger is sampled at call time so that
// logger.Set/Disable affect subsequent solves.
func gatherOptions(opts ...Option) Options {
	o := Options{
		maxNodes: DefaultMaxNodes,
		ctx:      context.Background(),
		log:      logger.Logger(),
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}
