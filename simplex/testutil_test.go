// Package simplex_test - shared helpers and golden model builders used
// across the solver test files.
package simplex_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linprog/simplex"
)

// rat parses an exact rational literal, failing the test on bad input.
func rat(t *testing.T, s string) *big.Rat {
	t.Helper()
	r, err := simplex.RS(s)
	require.NoError(t, err)

	return r
}

// requireRat asserts exact rational equality with readable output.
func requireRat(t *testing.T, want *big.Rat, got *big.Rat) {
	t.Helper()
	require.NotNil(t, got)
	require.Zerof(t, want.Cmp(got), "want %s, got %s", want.RatString(), got.RatString())
}

// requireValue asserts the exact solved value of one variable.
func requireValue(t *testing.T, sol *simplex.Solved, v string, want *big.Rat) {
	t.Helper()
	got, err := sol.Value(v)
	require.NoError(t, err)
	requireRat(t, want, got)
}

// mustConstrain extends a model, failing the test on error.
func mustConstrain(t *testing.T, m *simplex.Model, c simplex.Constraint) *simplex.Model {
	t.Helper()
	next, err := m.Constraint(c)
	require.NoError(t, err)

	return next
}

// productionModel builds the blending LP
//
//	minimize  0.4·x1 + 0.5·x2
//	s.t.      0.3·x1 + 0.1·x2 ≤ 2.7   ("mix")
//	          0.5·x1 + 0.5·x2 = 6     ("blend")
//	          0.6·x1 + 0.4·x2 ≥ 6     ("floor")
//
// with the known optimum x1 = 15/2, x2 = 9/2, objective 21/4.
func productionModel(t *testing.T) *simplex.Model {
	t.Helper()
	m := simplex.NewModel()
	m = mustConstrain(t, m, simplex.NamedConstraint("mix", simplex.LessEq, rat(t, "2.7"),
		simplex.T(rat(t, "0.3"), "x1"), simplex.T(rat(t, "0.1"), "x2")))
	m = mustConstrain(t, m, simplex.NamedConstraint("blend", simplex.Eq, simplex.R(6, 1),
		simplex.T(rat(t, "0.5"), "x1"), simplex.T(rat(t, "0.5"), "x2")))
	m = mustConstrain(t, m, simplex.NamedConstraint("floor", simplex.GreaterEq, simplex.R(6, 1),
		simplex.T(rat(t, "0.6"), "x1"), simplex.T(rat(t, "0.4"), "x2")))

	return m
}

// knapsackModel builds the bounded knapsack LP
//
//	maximize  7·x1 + 4·x2
//	s.t.      6·x1 + 4·x2 ≤ 8   ("cap")
//	          x1 ≤ 1             ("bx1")
//	          x2 ≤ 2             ("bx2")
//
// whose relaxation peaks at x1 = 1, x2 = 1/2, objective 9, and whose
// integral restriction peaks at x1 = 0, x2 = 2, objective 8.
func knapsackModel(t *testing.T) *simplex.Model {
	t.Helper()
	one := simplex.R(1, 1)
	m := simplex.NewModel()
	m = mustConstrain(t, m, simplex.NamedConstraint("cap", simplex.LessEq, simplex.R(8, 1),
		simplex.T(simplex.R(6, 1), "x1"), simplex.T(simplex.R(4, 1), "x2")))
	m = mustConstrain(t, m, simplex.NamedConstraint("bx1", simplex.LessEq, one, simplex.T(one, "x1")))
	m = mustConstrain(t, m, simplex.NamedConstraint("bx2", simplex.LessEq, simplex.R(2, 1), simplex.T(one, "x2")))

	return m
}

// knapsackObjective is the 7·x1 + 4·x2 objective of knapsackModel.
func knapsackObjective(t *testing.T) []simplex.Term {
	t.Helper()

	return []simplex.Term{
		simplex.T(simplex.R(7, 1), "x1"),
		simplex.T(simplex.R(4, 1), "x2"),
	}
}

// coinChangeModel builds the coin-change integer program
//
//	minimize  c1 + c5 + c20
//	s.t.      c1 + 5·c5 + 20·c20 = 111
//	          c1 ≤ 3,  c5 ≤ 20,  c20 ≤ 10
//	          c1, c5, c20 integral
//
// with the unique optimum c1 = 1, c5 = 2, c20 = 5 (8 coins).
func coinChangeModel(t *testing.T) *simplex.Model {
	t.Helper()
	one := simplex.R(1, 1)
	m := simplex.NewModel()
	m = mustConstrain(t, m, simplex.NewConstraint(simplex.Eq, simplex.R(111, 1),
		simplex.T(one, "c1"), simplex.T(simplex.R(5, 1), "c5"), simplex.T(simplex.R(20, 1), "c20")))
	m = mustConstrain(t, m, simplex.NewConstraint(simplex.LessEq, simplex.R(3, 1), simplex.T(one, "c1")))
	m = mustConstrain(t, m, simplex.NewConstraint(simplex.LessEq, simplex.R(20, 1), simplex.T(one, "c5")))
	m = mustConstrain(t, m, simplex.NewConstraint(simplex.LessEq, simplex.R(10, 1), simplex.T(one, "c20")))

	return m.Integral("c1", "c5", "c20")
}

// coinChangeObjective counts coins: c1 + c5 + c20.
func coinChangeObjective(t *testing.T) []simplex.Term {
	t.Helper()
	one := simplex.R(1, 1)

	return []simplex.Term{
		simplex.T(one, "c1"),
		simplex.T(one, "c5"),
		simplex.T(one, "c20"),
	}
}
