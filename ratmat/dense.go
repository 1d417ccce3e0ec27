// Package ratmat: Dense is a concrete, row-major matrix of *big.Rat
// entries, storing elements in a flat slice for locality and cheap row
// views. Every entry is always non-nil; a fresh Dense is all zeros.
package ratmat

import (
	"fmt"
	"math/big"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of exact rational values.
// r is rows, c is columns, and data holds r*c entries in row-major order.
// Entries are owned by the matrix: At returns copies, Set stores copies.
type Dense struct {
	r, c int        // number of rows and columns
	data []*big.Rat // flat backing storage, length == r*c, entries non-nil
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice with fresh zero rationals.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]*big.Rat, rows*cols)
	for i := range data {
		data[i] = new(big.Rat)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// FromRows builds a Dense from a rectangular [][]*big.Rat, deep-copying
// every entry so later caller mutation cannot alias the matrix.
//
// Errors: ErrInvalidDimensions for empty input, ErrDimensionMismatch for
// ragged rows, ErrNilEntry for nil rationals.
// Complexity: O(r*c).
func FromRows(rows [][]*big.Rat) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, ErrDimensionMismatch
		}
		for j = 0; j < cols; j++ {
			if rows[i][j] == nil {
				return nil, ErrNilEntry
			}
			m.data[i*cols+j].Set(rows[i][j])
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves a copy of the element at (row, col).
// The returned rational is owned by the caller.
// Complexity: O(1) plus one allocation.
func (m *Dense) At(row, col int) (*big.Rat, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return nil, err
	}

	return new(big.Rat).Set(m.data[idx]), nil
}

// Set assigns a copy of v at (row, col). A nil v yields ErrNilEntry.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v *big.Rat) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if v == nil {
		return denseErrorf("Set", row, col, ErrNilEntry)
	}
	m.data[idx].Set(v)

	return nil
}

// RawRowView returns the backing slice of row i.
// The slice aliases matrix storage: writes through it are visible in the
// matrix. Intended for pivot-style hot loops together with Scale and
// AddScaled; entries must stay non-nil. Panics on an out-of-range row
// (programmer error, mirroring slice indexing).
// Complexity: O(1).
func (m *Dense) RawRowView(i int) []*big.Rat {
	if i < 0 || i >= m.r {
		panic("ratmat: RawRowView row out of range")
	}

	return m.data[i*m.c : (i+1)*m.c]
}

// Clone returns a deep copy of the Dense matrix: fresh storage, fresh entries.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]*big.Rat, len(m.data))
	for i, v := range m.data {
		cp[i] = new(big.Rat).Set(v)
	}

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports exact entry-wise equality with o (same shape, same rationals).
// Complexity: O(r*c).
func (m *Dense) Equal(o *Dense) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i].Cmp(o.data[i]) != 0 {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for debugging; entries print in canonical
// numerator/denominator form (RatString). Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteByte('[')
		for j = 0; j < m.c; j++ {
			b.WriteString(m.data[i*m.c+j].RatString())
			if j < m.c-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
