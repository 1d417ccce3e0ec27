// Package simplex — Branch-and-Bound (integer search with incumbent pruning).
//
// The search enumerates LP relaxations depth-first with deterministic
// branching and bound-based pruning:
//
//  1. Solve the relaxation of the current model. Infeasible children are
//     pruned; an unbounded relaxation propagates unchanged (it can only
//     occur at the root — children are restrictions of their parent).
//  2. If the relaxation cannot beat the incumbent (≤ when maximizing,
//     ≥ when minimizing; equality prunes, so the first incumbent wins),
//     discard the subtree.
//  3. If every integral-flagged variable is integer-valued, the
//     relaxation is a new incumbent.
//  4. Otherwise branch on the first fractional integral variable in
//     column order, with value v: the ⌊v⌋ child first, the ⌈v⌉ child
//     second. Models are persistent, so each child is an independent fork.
//
// Cancellation and the node budget are checked only at branch boundaries,
// never mid-pivot. Every node re-solves from scratch; there is no
// warm start across models.
//
// Complexity: exponential worst case in the number of integral variables;
// practical speed comes from incumbent pruning.
package simplex

import (
	"context"
	"errors"
	"math/big"

	"github.com/rs/zerolog"
)

// bnbEngine holds all search data and policies for one top-level solve.
type bnbEngine struct {
	// Problem
	obj []Term
	dir direction

	// Budget / cancellation (branch boundaries only)
	ctx      context.Context
	maxNodes int
	nodes    int

	// Current best integral solution
	incumbent *relaxation

	log zerolog.Logger
}

// better reports whether a candidate objective beats the incumbent's in
// the optimization direction. Equality does not beat: the first incumbent
// found is kept, which makes the search deterministic.
func (e *bnbEngine) better(candidate, incumbent *big.Rat) bool {
	if e.dir == maximizeDir {
		return candidate.Cmp(incumbent) > 0
	}

	return candidate.Cmp(incumbent) < 0
}

// firstFractional returns the first integral-flagged variable (in column
// order) whose relaxation value is non-integer. A big.Rat is canonical, so
// integrality is exactly "denominator == 1".
func firstFractional(m *Model, rel *relaxation) (string, *big.Rat, bool) {
	for _, v := range rel.varOrder {
		if !m.IsIntegral(v) {
			continue
		}
		val := rel.value(v)
		if val.IsInt() {
			continue
		}

		return v, val, true
	}

	return "", nil, false
}

// floorRat returns ⌊q⌋ as a rational. big.Rat denominators are positive,
// so Euclidean division of the numerator is the floor.
func floorRat(q *big.Rat) *big.Rat {
	f := new(big.Int).Div(q.Num(), q.Denom())

	return new(big.Rat).SetInt(f)
}

// search explores the subtree rooted at model m. It updates e.incumbent
// and returns a non-nil error only for terminal failures (unbounded root,
// exhausted budget, canceled context).
func (e *bnbEngine) search(m *Model) error {
	// Branch-boundary checks: never interrupt a pivot sequence.
	if err := e.ctx.Err(); err != nil {
		return err
	}
	if e.maxNodes > 0 && e.nodes >= e.maxNodes {
		e.log.Warn().Int("maxNodes", e.maxNodes).Msg("branch-and-bound: node budget exhausted")

		return ErrNodeLimit
	}
	e.nodes++

	rel, err := solveRelaxation(m, e.obj, e.dir, e.log)
	if err != nil {
		if errors.Is(err, ErrInfeasible) {
			return nil // pruned leaf
		}

		return err
	}

	// Bound pruning: a relaxation that cannot beat the incumbent bounds
	// every integral point of its subtree.
	if e.incumbent != nil && !e.better(rel.objective, e.incumbent.objective) {
		return nil
	}

	v, val, fractional := firstFractional(m, rel)
	if !fractional {
		e.incumbent = rel
		e.log.Debug().
			Str("objective", rel.objective.RatString()).
			Int("node", e.nodes).
			Msg("branch-and-bound: new incumbent")

		return nil
	}

	// Bisect on v: x ≤ ⌊v⌋ first, then x ≥ ⌊v⌋+1. Forked models never
	// alias the parent.
	lo := floorRat(val)
	hi := new(big.Rat).Add(lo, big.NewRat(1, 1))
	one := big.NewRat(1, 1)

	left, err := m.Constraint(NewConstraint(LessEq, lo, T(one, v)))
	if err != nil {
		return err
	}
	if err = e.search(left); err != nil {
		return err
	}

	right, err := m.Constraint(NewConstraint(GreaterEq, hi, T(one, v)))
	if err != nil {
		return err
	}

	return e.search(right)
}
