// Package simplex - assignment and transportation formulators.
//
// Both problems reduce to the general engine: build equality constraints
// over variables x(i,j) ≥ 0, minimize Σ cost·x, and decode the solved
// values back into a matrix. Their constraint matrices are totally
// unimodular, so the pure LP relaxation already lands on an integral
// vertex — no branch-and-bound and no integrality flags are involved
// (and no dedicated network algorithm either; the general tableau does
// the work).
package simplex

import (
	"fmt"
	"math/big"
)

// cellVar names the decision variable for cell (i, j). The derived key is
// opaque but totally ordered, which keeps pivot and branch tie-breaking
// deterministic.
func cellVar(i, j int) string { return fmt.Sprintf("x(%d,%d)", i, j) }

// validateCosts checks that costs is a non-empty, rectangular matrix of
// non-nil rationals and returns its shape.
func validateCosts(costs [][]*big.Rat) (int, int, error) {
	if len(costs) == 0 || len(costs[0]) == 0 {
		return 0, 0, ErrDimensionMismatch
	}
	cols := len(costs[0])
	for _, row := range costs {
		if len(row) != cols {
			return 0, 0, ErrDimensionMismatch
		}
		for _, c := range row {
			if c == nil {
				return 0, 0, ErrSyntax
			}
		}
	}

	return len(costs), cols, nil
}

// matrixModel builds the shared transportation-shape model: one equality
// row per source with RHS rowTotals[i], one per destination with RHS
// colTotals[j], and the minimization objective Σ cost(i,j)·x(i,j).
func matrixModel(rows, cols int, rowTotals, colTotals []*big.Rat, costs [][]*big.Rat) (*Model, []Term, error) {
	m := NewModel()
	var err error
	one := big.NewRat(1, 1)

	var i, j int
	for i = 0; i < rows; i++ {
		terms := make([]Term, cols)
		for j = 0; j < cols; j++ {
			terms[j] = T(one, cellVar(i, j))
		}
		if m, err = m.Constraint(NewConstraint(Eq, rowTotals[i], terms...)); err != nil {
			return nil, nil, err
		}
	}
	for j = 0; j < cols; j++ {
		terms := make([]Term, rows)
		for i = 0; i < rows; i++ {
			terms[i] = T(one, cellVar(i, j))
		}
		if m, err = m.Constraint(NewConstraint(Eq, colTotals[j], terms...)); err != nil {
			return nil, nil, err
		}
	}

	obj := make([]Term, 0, rows*cols)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			obj = append(obj, T(costs[i][j], cellVar(i, j)))
		}
	}

	return m, obj, nil
}

// decodeCells reads the solved x(i,j) values into a rows×cols matrix of
// caller-owned rationals.
func decodeCells(sol *Solved, rows, cols int) ([][]*big.Rat, error) {
	out := make([][]*big.Rat, rows)
	var i, j int
	for i = 0; i < rows; i++ {
		out[i] = make([]*big.Rat, cols)
		for j = 0; j < cols; j++ {
			v, err := sol.Value(cellVar(i, j))
			if err != nil {
				return nil, err
			}
			out[i][j] = v
		}
	}

	return out, nil
}

// Assignment solves the n×n assignment problem for the given cost matrix:
// minimize Σ cost(i,j)·x(i,j) subject to each row and each column of x
// summing to one, x ≥ 0. Total unimodularity guarantees the returned
// matrix is an exact 0/1 adjacency matrix straight from the relaxation.
//
// Errors: ErrDimensionMismatch for a non-square or ragged matrix,
// ErrSyntax for nil cost entries.
//
// Complexity: an LP with 2n rows and n² structural columns.
func Assignment(costs [][]*big.Rat, opts ...Option) ([][]*big.Rat, error) {
	rows, cols, err := validateCosts(costs)
	if err != nil {
		return nil, err
	}
	if rows != cols {
		return nil, ErrDimensionMismatch
	}

	ones := make([]*big.Rat, rows)
	for i := range ones {
		ones[i] = big.NewRat(1, 1)
	}
	m, obj, err := matrixModel(rows, cols, ones, ones, costs)
	if err != nil {
		return nil, err
	}
	sol, err := m.Minimize(obj, opts...)
	if err != nil {
		return nil, err
	}

	return decodeCells(sol, rows, cols)
}

// Transportation solves the transportation problem: route flow x(i,j)
// from sources with the given supplies to destinations with the given
// demands, minimizing Σ cost(i,j)·x(i,j), subject to every supply being
// shipped exactly and every demand being met exactly.
//
// Supply and demand totals must be exactly equal (ErrMismatchedTotals),
// and the cost matrix shape must be len(supplies)×len(demands)
// (ErrDimensionMismatch). For integer supplies and demands the optimal
// plan is integral by total unimodularity.
func Transportation(supplies, demands []*big.Rat, costs [][]*big.Rat, opts ...Option) ([][]*big.Rat, error) {
	rows, cols, err := validateCosts(costs)
	if err != nil {
		return nil, err
	}
	if rows != len(supplies) || cols != len(demands) {
		return nil, ErrDimensionMismatch
	}

	totalS := new(big.Rat)
	for _, s := range supplies {
		if s == nil {
			return nil, ErrSyntax
		}
		totalS.Add(totalS, s)
	}
	totalD := new(big.Rat)
	for _, d := range demands {
		if d == nil {
			return nil, ErrSyntax
		}
		totalD.Add(totalD, d)
	}
	if totalS.Cmp(totalD) != 0 {
		return nil, ErrMismatchedTotals
	}

	m, obj, err := matrixModel(rows, cols, supplies, demands, costs)
	if err != nil {
		return nil, err
	}
	sol, err := m.Minimize(obj, opts...)
	if err != nil {
		return nil, err
	}

	return decodeCells(sol, rows, cols)
}
