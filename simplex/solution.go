// Package simplex - read-only views over a solved model.
//
// Solved pairs the model that was optimized with the values extracted
// from the terminal tableau. It is created only by a successful Maximize
// or Minimize call and is never mutated afterwards; superseding a solve
// simply produces a new Solved while the old one stays readable.
package simplex

import "math/big"

// Solved is the immutable result of one successful solve.
// The zero value (and nil) is unusable: every accessor returns
// ErrNotSolved for it.
type Solved struct {
	model *Model
	dir   direction
	rel   *relaxation
	nodes int
}

// ok guards accessors against zero/nil receivers.
func (s *Solved) ok() error {
	if s == nil || s.rel == nil || s.model == nil {
		return ErrNotSolved
	}

	return nil
}

// Status reports the solve outcome. Values produced by Maximize/Minimize
// are always Optimal — infeasible and unbounded instances surface as
// ErrInfeasible/ErrUnbounded instead of a Solved.
func (s *Solved) Status() (Status, error) {
	if err := s.ok(); err != nil {
		return 0, err
	}

	return Optimal, nil
}

// Objective returns the exact optimal objective value in the caller's
// optimization sense. The returned rational is a copy.
func (s *Solved) Objective() (*big.Rat, error) {
	if err := s.ok(); err != nil {
		return nil, err
	}

	return new(big.Rat).Set(s.rel.objective), nil
}

// Value returns the exact value of v in the optimal basis. A variable
// that never entered the basis — including one absent from the model —
// sits at its implicit lower bound and reads as zero.
func (s *Solved) Value(v string) (*big.Rat, error) {
	if err := s.ok(); err != nil {
		return nil, err
	}

	return new(big.Rat).Set(s.rel.value(v)), nil
}

// ShadowPrice returns the dual value of the named constraint: the
// marginal change of the optimum per unit increase of the constraint's
// right-hand side, in the caller's optimization sense.
//
// The value is read off the final Phase 2 objective row under the
// constraint's slack (≤) or surplus (≥) column. Equality constraints are
// encoded purely via artificial columns and have no such mapping; they
// return ErrNoShadowPrice (a known limitation of the two-phase dual
// extraction). Unknown names return ErrUnknownConstraintName.
//
// For integer programs the dual belongs to the incumbent's LP subproblem,
// not to the integer hull.
func (s *Solved) ShadowPrice(name string) (*big.Rat, error) {
	if err := s.ok(); err != nil {
		return nil, err
	}
	if y, ok := s.rel.duals[name]; ok {
		return new(big.Rat).Set(y), nil
	}
	if _, ok := s.rel.eqNames[name]; ok {
		return nil, ErrNoShadowPrice
	}

	return nil, ErrUnknownConstraintName
}

// Variables returns the solved problem's variables in column order
// (model first-seen order, then objective-only variables). The slice is
// a copy.
func (s *Solved) Variables() ([]string, error) {
	if err := s.ok(); err != nil {
		return nil, err
	}
	out := make([]string, len(s.rel.varOrder))
	copy(out, s.rel.varOrder)

	return out, nil
}

// Pivots reports the pivot count of the incumbent's relaxation solve.
// Diagnostic only; not part of the optimization contract.
func (s *Solved) Pivots() (int, error) {
	if err := s.ok(); err != nil {
		return 0, err
	}

	return s.rel.pivots, nil
}

// Nodes reports how many branch-and-bound nodes the solve explored
// (1 for a pure LP). Diagnostic only.
func (s *Solved) Nodes() (int, error) {
	if err := s.ok(); err != nil {
		return 0, err
	}

	return s.nodes, nil
}
