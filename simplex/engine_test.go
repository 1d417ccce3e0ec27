package simplex_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linprog/simplex"
)

// TestMinimizeProductionBlend solves the three-relation blending LP
// (≤, =, ≥ in one model) and checks the exact optimum.
func TestMinimizeProductionBlend(t *testing.T) {
	m := productionModel(t)
	obj := []simplex.Term{
		simplex.T(rat(t, "0.4"), "x1"),
		simplex.T(rat(t, "0.5"), "x2"),
	}

	sol, err := m.Minimize(obj)
	require.NoError(t, err)

	status, err := sol.Status()
	require.NoError(t, err)
	require.Equal(t, simplex.Optimal, status)

	requireValue(t, sol, "x1", simplex.R(15, 2))
	requireValue(t, sol, "x2", simplex.R(9, 2))

	objective, err := sol.Objective()
	require.NoError(t, err)
	requireRat(t, simplex.R(21, 4), objective)
}

// TestMaximizeKnapsackRelaxation solves the bounded knapsack LP without
// integrality flags: the fractional vertex x1 = 1, x2 = 1/2 is optimal.
func TestMaximizeKnapsackRelaxation(t *testing.T) {
	sol, err := knapsackModel(t).Maximize(knapsackObjective(t))
	require.NoError(t, err)

	requireValue(t, sol, "x1", simplex.R(1, 1))
	requireValue(t, sol, "x2", simplex.R(1, 2))

	objective, err := sol.Objective()
	require.NoError(t, err)
	requireRat(t, simplex.R(9, 1), objective)

	nodes, err := sol.Nodes()
	require.NoError(t, err)
	require.Equal(t, 1, nodes) // pure LP: a single relaxation

	pivots, err := sol.Pivots()
	require.NoError(t, err)
	require.Positive(t, pivots)
}

// TestShadowPricesMaximize reads the duals of the knapsack LP. At the
// optimum the capacity row and the x1 bound are binding with unit prices;
// the slack x2 bound prices at zero.
func TestShadowPricesMaximize(t *testing.T) {
	sol, err := knapsackModel(t).Maximize(knapsackObjective(t))
	require.NoError(t, err)

	y, err := sol.ShadowPrice("cap")
	require.NoError(t, err)
	requireRat(t, simplex.R(1, 1), y)

	y, err = sol.ShadowPrice("bx1")
	require.NoError(t, err)
	requireRat(t, simplex.R(1, 1), y)

	y, err = sol.ShadowPrice("bx2")
	require.NoError(t, err)
	require.Zero(t, y.Sign())

	_, err = sol.ShadowPrice("ghost")
	require.ErrorIs(t, err, simplex.ErrUnknownConstraintName)
}

// TestShadowPricesMinimize reads the duals of the blending LP in the
// minimization sense: raising the binding ≤ capacity lowers the optimum
// (price −1/2), the slack ≥ floor prices at zero, and the equality row has
// no slack/surplus column to read from.
func TestShadowPricesMinimize(t *testing.T) {
	obj := []simplex.Term{
		simplex.T(rat(t, "0.4"), "x1"),
		simplex.T(rat(t, "0.5"), "x2"),
	}
	sol, err := productionModel(t).Minimize(obj)
	require.NoError(t, err)

	y, err := sol.ShadowPrice("mix")
	require.NoError(t, err)
	requireRat(t, simplex.R(-1, 2), y)

	y, err = sol.ShadowPrice("floor")
	require.NoError(t, err)
	require.Zero(t, y.Sign())

	_, err = sol.ShadowPrice("blend")
	require.ErrorIs(t, err, simplex.ErrNoShadowPrice)
}

// TestInfeasibleModel drives Phase 1 to a strictly positive minimum.
func TestInfeasibleModel(t *testing.T) {
	one := simplex.R(1, 1)
	m := mustConstrain(t, simplex.NewModel(),
		simplex.NewConstraint(simplex.Eq, simplex.R(1, 1), simplex.T(one, "x")))
	m = mustConstrain(t, m,
		simplex.NewConstraint(simplex.Eq, simplex.R(2, 1), simplex.T(one, "x")))

	_, err := m.Minimize([]simplex.Term{simplex.T(one, "x")})
	require.ErrorIs(t, err, simplex.ErrInfeasible)
}

// TestUnboundedModel builds an objective with no finite maximum: x ≥ 1
// imposes no upper limit, so the entering column has no positive pivot.
func TestUnboundedModel(t *testing.T) {
	one := simplex.R(1, 1)
	m := mustConstrain(t, simplex.NewModel(),
		simplex.NewConstraint(simplex.GreaterEq, one, simplex.T(one, "x")))

	_, err := m.Maximize([]simplex.Term{simplex.T(one, "x")})
	require.ErrorIs(t, err, simplex.ErrUnbounded)
}

// TestConstraintFreeModel covers the degenerate no-constraint path: every
// variable sits at its lower bound, so minimizing a non-negative objective
// yields zero while maximizing a positive one is unbounded.
func TestConstraintFreeModel(t *testing.T) {
	one := simplex.R(1, 1)
	m := simplex.NewModel()

	sol, err := m.Minimize([]simplex.Term{simplex.T(one, "x")})
	require.NoError(t, err)
	requireValue(t, sol, "x", new(big.Rat))
	objective, err := sol.Objective()
	require.NoError(t, err)
	require.Zero(t, objective.Sign())

	_, err = m.Maximize([]simplex.Term{simplex.T(one, "x")})
	require.ErrorIs(t, err, simplex.ErrUnbounded)
}

// TestResolveIsIdempotent solves the same model twice and requires
// identical exact results: no state leaks between solves.
func TestResolveIsIdempotent(t *testing.T) {
	m := knapsackModel(t)
	obj := knapsackObjective(t)

	first, err := m.Maximize(obj)
	require.NoError(t, err)
	second, err := m.Maximize(obj)
	require.NoError(t, err)

	o1, err := first.Objective()
	require.NoError(t, err)
	o2, err := second.Objective()
	require.NoError(t, err)
	requireRat(t, o1, o2)

	vars, err := first.Variables()
	require.NoError(t, err)
	for _, v := range vars {
		v1, err := first.Value(v)
		require.NoError(t, err)
		v2, err := second.Value(v)
		require.NoError(t, err)
		requireRat(t, v1, v2)
	}
}

// TestSolvedSurvivesModelExtension: extending the model after a solve must
// not disturb the earlier Solved view.
func TestSolvedSurvivesModelExtension(t *testing.T) {
	m := knapsackModel(t)
	sol, err := m.Maximize(knapsackObjective(t))
	require.NoError(t, err)

	one := simplex.R(1, 1)
	_, err = m.Constraint(simplex.NewConstraint(simplex.LessEq, new(big.Rat), simplex.T(one, "x1")))
	require.NoError(t, err)

	requireValue(t, sol, "x1", simplex.R(1, 1))
	requireValue(t, sol, "x2", simplex.R(1, 2))
}

// TestObjectiveOnlyVariable: a variable that appears only in the objective
// has no constraint column. Minimizing it pins it at zero; its positive
// cost cannot help a minimization.
func TestObjectiveOnlyVariable(t *testing.T) {
	one := simplex.R(1, 1)
	m := mustConstrain(t, simplex.NewModel(),
		simplex.NewConstraint(simplex.GreaterEq, simplex.R(3, 1), simplex.T(one, "x")))

	sol, err := m.Minimize([]simplex.Term{simplex.T(one, "x"), simplex.T(one, "free")})
	require.NoError(t, err)
	requireValue(t, sol, "x", simplex.R(3, 1))
	requireValue(t, sol, "free", new(big.Rat))

	// Maximizing the unconstrained variable is unbounded.
	_, err = m.Maximize([]simplex.Term{simplex.T(one, "free")})
	require.ErrorIs(t, err, simplex.ErrUnbounded)
}

// TestNotSolvedAccessors: every accessor of a zero or nil Solved returns
// ErrNotSolved instead of fabricating values.
func TestNotSolvedAccessors(t *testing.T) {
	for _, sol := range []*simplex.Solved{nil, new(simplex.Solved)} {
		_, err := sol.Status()
		require.ErrorIs(t, err, simplex.ErrNotSolved)
		_, err = sol.Objective()
		require.ErrorIs(t, err, simplex.ErrNotSolved)
		_, err = sol.Value("x")
		require.ErrorIs(t, err, simplex.ErrNotSolved)
		_, err = sol.ShadowPrice("cap")
		require.ErrorIs(t, err, simplex.ErrNotSolved)
		_, err = sol.Variables()
		require.ErrorIs(t, err, simplex.ErrNotSolved)
		_, err = sol.Pivots()
		require.ErrorIs(t, err, simplex.ErrNotSolved)
		_, err = sol.Nodes()
		require.ErrorIs(t, err, simplex.ErrNotSolved)
	}
}

// TestValueReturnsCopies: mutating a returned rational must not corrupt
// later reads of the same solution.
func TestValueReturnsCopies(t *testing.T) {
	sol, err := knapsackModel(t).Maximize(knapsackObjective(t))
	require.NoError(t, err)

	v, err := sol.Value("x1")
	require.NoError(t, err)
	v.SetInt64(42)

	requireValue(t, sol, "x1", simplex.R(1, 1))
}
