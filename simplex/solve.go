// Package simplex - unified dispatcher for solve calls.
//
// Maximize and Minimize are the canonical entry points: they gather
// options, run the branch-and-bound search (which collapses to a single
// relaxation solve when no integrality flag is set), verify the
// objective-row constant against the primal values, and wrap the result
// as an immutable Solved.
//
// Design principles:
//   - Deterministic: fixed pivot and branch ordering; no randomness anywhere.
//   - Strict sentinels: only errors from types.go reach the caller.
//   - From scratch: no state survives between solves; prior Solved values
//     for the same model stay valid but are superseded, never mutated.
package simplex

import (
	"fmt"
	"math/big"
)

// Maximize solves the model with the objective Σ obj, maximizing.
// When any variable carries the integrality flag the LP relaxation is
// refined by branch-and-bound; otherwise the relaxation itself is optimal.
//
// Errors: ErrSyntax (malformed objective), ErrInfeasible, ErrUnbounded,
// ErrNodeLimit, and the context's error when a WithContext solve is
// canceled at a branch boundary.
//
// Complexity: O(pivots · rows · cols) exact-rational work per node;
// node count is 1 without integrality flags.
func (m *Model) Maximize(obj []Term, opts ...Option) (*Solved, error) {
	return m.optimize(obj, maximizeDir, opts...)
}

// Minimize solves the model with the objective Σ obj, minimizing.
// Contracts and errors are identical to Maximize.
func (m *Model) Minimize(obj []Term, opts ...Option) (*Solved, error) {
	return m.optimize(obj, minimizeDir, opts...)
}

// optimize runs the shared solve pipeline for both directions.
func (m *Model) optimize(obj []Term, dir direction, opts ...Option) (*Solved, error) {
	o := gatherOptions(opts...)

	e := &bnbEngine{
		obj:      obj,
		dir:      dir,
		ctx:      o.ctx,
		maxNodes: o.maxNodes,
		log:      o.log,
	}
	if err := e.search(m); err != nil {
		return nil, err
	}
	if e.incumbent == nil {
		// Every branch was pruned as infeasible: no integral point exists.
		return nil, ErrInfeasible
	}

	verifyObjective(obj, e.incumbent)
	o.log.Debug().
		Int("nodes", e.nodes).
		Str("objective", e.incumbent.objective.RatString()).
		Msg("solve: optimal")

	return &Solved{model: m, dir: dir, rel: e.incumbent, nodes: e.nodes}, nil
}

// verifyObjective cross-checks the tableau's objective constant against
// the dot product of objective coefficients and extracted variable values.
// A divergence would mean a broken pivot invariant, so it panics rather
// than returning a sentinel: this is a programmer error, not bad input.
func verifyObjective(obj []Term, rel *relaxation) {
	dot := new(big.Rat)
	tmp := new(big.Rat)
	for _, t := range obj {
		tmp.Mul(t.Coeff, rel.value(t.Var))
		dot.Add(dot, tmp)
	}
	if dot.Cmp(rel.objective) != 0 {
		panic(fmt.Sprintf(
			"simplex: objective row constant %s diverged from primal value %s",
			rel.objective.RatString(), dot.RatString()))
	}
}
