// Package ratmat provides dense matrix primitives over exact rational
// numbers (math/big.Rat) for tableau-based computations.
//
// It includes one concrete representation plus in-place row operations:
//
//   - Dense — a row-major matrix of *big.Rat entries.
//
//   - At/Set copy values in and out, so callers can never alias the
//     backing storage by accident.
//
//   - RawRowView exposes a backing row for hot-path arithmetic
//     (the simplex pivot loop); mutate it only through the row helpers.
//
//   - ScaleRow / AddScaledRow / Scale / AddScaled — the elementary row
//     operations of Gaussian-style elimination, performed exactly.
//
// All operations are exact: no rounding ever occurs, and equality is true
// rational equality (big.Rat keeps a canonical reduced form).
//
// Use this package when an algorithm's correctness depends on exact
// comparisons — ratio tests, degeneracy checks, integrality checks —
// where floating point would be unsound.
package ratmat
