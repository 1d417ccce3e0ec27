// Package linprog is an exact-arithmetic linear-programming toolkit:
// persistent constraint models, a two-phase rational simplex solver,
// branch-and-bound for integer programs, and classic problem formulators.
//
// 🚀 What is linprog?
//
//	A deterministic, exact (big.Rat) optimization library that brings together:
//		• Persistent models: every constraint addition returns a new, independent model
//		• Two-phase simplex: Dantzig pivoting with lowest-index anti-cycling tie-breaks
//		• Branch-and-bound: depth-first integer search with incumbent pruning
//		• Duality: shadow prices read straight off the final tableau
//		• Formulators: assignment & transportation reduced to the same engine
//
// ✨ Why choose linprog?
//
//   - Exact results – every coefficient, pivot and answer is a rational number;
//     no floating-point drift, no tolerance tuning
//   - Reproducible – deterministic pivot and branch ordering, stable across runs
//   - Persistent – models are immutable values; fork them freely, solve them
//     concurrently, keep every intermediate version
//
// Everything is organized under three subpackages:
//
//	ratmat/  — dense exact-rational matrices (the tableau substrate)
//	simplex/ — models, the two-phase engine, branch-and-bound, formulators
//	logger/  — process-wide structured logging (zerolog)
//
// Quick sketch:
//
//	m := simplex.NewModel()
//	m, _ = m.Constraint(simplex.NewConstraint(simplex.LessEq, simplex.R(8, 1),
//	        simplex.T(simplex.R(6, 1), "x1"), simplex.T(simplex.R(4, 1), "x2")))
//	sol, _ := m.Maximize([]simplex.Term{
//	        simplex.T(simplex.R(7, 1), "x1"), simplex.T(simplex.R(4, 1), "x2")})
//
// See each subpackage's doc.go for contracts, complexity notes and the
// full error taxonomy.
package linprog
