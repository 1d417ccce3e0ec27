// Package ratmat: elementary row operations, the building blocks of exact
// Gaussian-style elimination and simplex pivoting.
//
// Two layers are provided:
//   - slice-level helpers (Scale, AddScaled) operating on []*big.Rat rows,
//     usable both on RawRowView slices and on free-standing row vectors
//     (e.g. an objective row kept outside the matrix);
//   - matrix-level wrappers (ScaleRow, AddScaledRow) with bounds checking.
//
// All operations are in place and exact.
package ratmat

import "math/big"

// Scale multiplies every entry of row by f, in place.
// A nil f or a nil entry yields ErrNilEntry; the row may be partially
// scaled in that case only if the nil entry is interior, so validate first
// when the row origin is untrusted.
// Complexity: O(len(row)).
func Scale(row []*big.Rat, f *big.Rat) error {
	if f == nil {
		return ErrNilEntry
	}
	for _, v := range row {
		if v == nil {
			return ErrNilEntry
		}
		v.Mul(v, f)
	}

	return nil
}

// AddScaled performs dst += f · src entry-wise, in place.
// dst and src must have equal length (ErrDimensionMismatch otherwise).
// Complexity: O(len(dst)), with one scratch rational.
func AddScaled(dst, src []*big.Rat, f *big.Rat) error {
	if f == nil {
		return ErrNilEntry
	}
	if len(dst) != len(src) {
		return ErrDimensionMismatch
	}
	tmp := new(big.Rat) // scratch for f·src[i]; reused across entries
	for i := range dst {
		if dst[i] == nil || src[i] == nil {
			return ErrNilEntry
		}
		tmp.Mul(src[i], f)
		dst[i].Add(dst[i], tmp)
	}

	return nil
}

// ScaleRow multiplies row i of m by f, in place.
// Complexity: O(cols).
func (m *Dense) ScaleRow(i int, f *big.Rat) error {
	if i < 0 || i >= m.r {
		return denseErrorf("ScaleRow", i, 0, ErrIndexOutOfBounds)
	}

	return Scale(m.RawRowView(i), f)
}

// AddScaledRow performs row dst += f · row src, in place.
// dst == src is rejected as ErrDimensionMismatch (the operation would read
// entries it already overwrote).
// Complexity: O(cols).
func (m *Dense) AddScaledRow(dst, src int, f *big.Rat) error {
	if dst < 0 || dst >= m.r || src < 0 || src >= m.r {
		return denseErrorf("AddScaledRow", dst, src, ErrIndexOutOfBounds)
	}
	if dst == src {
		return denseErrorf("AddScaledRow", dst, src, ErrDimensionMismatch)
	}

	return AddScaled(m.RawRowView(dst), m.RawRowView(src), f)
}
