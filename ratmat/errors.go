// SPDX-License-Identifier: MIT
// Package ratmat: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// ratmat package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user input.

package ratmat

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("ratmat: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("ratmat: index out of bounds")

	// ErrNilEntry indicates that a nil *big.Rat was supplied where a value is required.
	ErrNilEntry = errors.New("ratmat: nil rational entry")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. ingesting a ragged [][]*big.Rat or combining rows of unequal length.
	ErrDimensionMismatch = errors.New("ratmat: dimension mismatch")
)
