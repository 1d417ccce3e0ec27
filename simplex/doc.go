// Package simplex solves linear and mixed-integer programs exactly.
//
// It provides a persistent constraint model and a two-phase simplex
// solver over arbitrary-precision rationals (math/big.Rat), extended by
// depth-first branch-and-bound for integrality constraints:
//
//   - Model — immutable constraint state; every mutating operation
//     (Constraint, ConstraintAdd, Integral) returns a new model while the
//     prior one remains valid and independently solvable.
//
//   - Maximize / Minimize — build a tableau, run Phase 1 (artificial
//     feasibility) and Phase 2 (Dantzig pivoting), then branch-and-bound
//     when any variable is flagged integral. Each call solves from
//     scratch; there is no warm start.
//
//   - Solved — the read-only result: exact objective, variable values,
//     and shadow prices for named constraints with a slack/surplus column.
//
//   - Assignment / Transportation — formulators that reduce the classic
//     matrix problems to the same engine; total unimodularity makes the
//     pure LP relaxation land on integral vertices.
//
// Determinism:
//   - Entering variable: most negative reduced cost, lowest column index on ties.
//   - Leaving variable: minimal RHS/entry ratio over strictly positive entries,
//     ties by lowest basic-variable column index (keeps degenerate
//     tableaus from cycling).
//   - Branching: first fractional integral variable in column order,
//     floor child before ceil child.
//
// Complexity:
//   - Pivoting: polynomial-typical, exponential worst case on pathological
//     degenerate inputs. Per pivot O(m·n) exact-rational operations.
//   - Branch-and-bound: exponential worst case; bounded explicitly via
//     WithMaxNodes, cancelable via WithContext (checked only at branch
//     boundaries, never mid-pivot).
//
// Errors (sentinel, matched via errors.Is): ErrSyntax, ErrDuplicateName,
// ErrUnknownConstraintName, ErrInfeasible, ErrUnbounded,
// ErrMismatchedTotals, ErrDimensionMismatch, ErrNotSolved,
// ErrNoShadowPrice, ErrNodeLimit.
//
// Example usage:
//
//	m := simplex.NewModel()
//	m, err := m.Constraint(simplex.NewConstraint(simplex.LessEq, simplex.R(8, 1),
//	        simplex.T(simplex.R(6, 1), "x1"), simplex.T(simplex.R(4, 1), "x2")))
//	if err != nil {
//	        log.Fatal(err)
//	}
//	sol, err := m.Maximize([]simplex.Term{
//	        simplex.T(simplex.R(7, 1), "x1"),
//	        simplex.T(simplex.R(4, 1), "x2"),
//	})
//	if err != nil {
//	        log.Fatal(err)
//	}
//	v, _ := sol.Value("x2")
//	fmt.Println(v.RatString()) // exact: 1/2
package simplex
