// Package ratmat_test contains unit tests for the Dense exact-rational
// matrix and its elementary row operations.
package ratmat_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linprog/ratmat"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := ratmat.NewDense(0, 5)
	require.ErrorIs(t, err, ratmat.ErrInvalidDimensions)

	_, err = ratmat.NewDense(5, -1)
	require.ErrorIs(t, err, ratmat.ErrInvalidDimensions)
}

// TestNewDenseZeroInitialized verifies a fresh matrix reads as exact zeros.
func TestNewDenseZeroInitialized(t *testing.T) {
	m, err := ratmat.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Zero(t, v.Sign())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := ratmat.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, ratmat.ErrIndexOutOfBounds)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, ratmat.ErrIndexOutOfBounds)

	err = m.Set(2, 0, big.NewRat(1, 2))
	require.ErrorIs(t, err, ratmat.ErrIndexOutOfBounds)
}

// TestSetCopiesValues validates that Set stores a copy, so later mutation
// of the caller's rational does not leak into the matrix.
func TestSetCopiesValues(t *testing.T) {
	m, err := ratmat.NewDense(1, 1)
	require.NoError(t, err)

	v := big.NewRat(1, 3)
	require.NoError(t, m.Set(0, 0, v))
	v.SetInt64(7) // caller mutates after the fact

	got, err := m.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, got.Cmp(big.NewRat(1, 3)))
}

// TestSetNilEntry ensures nil rationals are rejected.
func TestSetNilEntry(t *testing.T) {
	m, err := ratmat.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 0, nil), ratmat.ErrNilEntry)
}

// TestFromRows validates ingestion: shape checks, nil checks, deep copy.
func TestFromRows(t *testing.T) {
	_, err := ratmat.FromRows(nil)
	require.ErrorIs(t, err, ratmat.ErrInvalidDimensions)

	_, err = ratmat.FromRows([][]*big.Rat{
		{big.NewRat(1, 1), big.NewRat(2, 1)},
		{big.NewRat(3, 1)},
	})
	require.ErrorIs(t, err, ratmat.ErrDimensionMismatch)

	_, err = ratmat.FromRows([][]*big.Rat{{big.NewRat(1, 1), nil}})
	require.ErrorIs(t, err, ratmat.ErrNilEntry)

	src := [][]*big.Rat{{big.NewRat(1, 2), big.NewRat(3, 4)}}
	m, err := ratmat.FromRows(src)
	require.NoError(t, err)
	src[0][0].SetInt64(9) // mutate source; matrix must not change

	got, err := m.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, got.Cmp(big.NewRat(1, 2)))
}

// TestCloneIndependence verifies Clone produces fully independent storage.
func TestCloneIndependence(t *testing.T) {
	m, err := ratmat.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, big.NewRat(5, 7)))

	c := m.Clone()
	require.True(t, m.Equal(c))

	require.NoError(t, c.Set(0, 1, big.NewRat(1, 1)))
	require.False(t, m.Equal(c))

	got, err := m.At(0, 1)
	require.NoError(t, err)
	require.Zero(t, got.Cmp(big.NewRat(5, 7)))
}

// TestRawRowViewAliases confirms that RawRowView writes are visible in the
// matrix (the documented hot-path contract).
func TestRawRowViewAliases(t *testing.T) {
	m, err := ratmat.NewDense(1, 2)
	require.NoError(t, err)

	row := m.RawRowView(0)
	row[1].SetFrac64(2, 3)

	got, err := m.At(0, 1)
	require.NoError(t, err)
	require.Zero(t, got.Cmp(big.NewRat(2, 3)))
}

// TestScaleAndAddScaled exercises the exact elementary row operations.
func TestScaleAndAddScaled(t *testing.T) {
	m, err := ratmat.FromRows([][]*big.Rat{
		{big.NewRat(1, 2), big.NewRat(2, 1)},
		{big.NewRat(1, 1), big.NewRat(-1, 3)},
	})
	require.NoError(t, err)

	// Row 0 × 2 → [1, 4].
	require.NoError(t, m.ScaleRow(0, big.NewRat(2, 1)))
	got, err := m.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, got.Cmp(big.NewRat(1, 1)))

	// Row 1 += −1 · row 0 → [0, −13/3].
	require.NoError(t, m.AddScaledRow(1, 0, big.NewRat(-1, 1)))
	got, err = m.At(1, 0)
	require.NoError(t, err)
	require.Zero(t, got.Sign())
	got, err = m.At(1, 1)
	require.NoError(t, err)
	require.Zero(t, got.Cmp(big.NewRat(-13, 3)))
}

// TestAddScaledRowSameRow ensures the self-aliasing case is rejected.
func TestAddScaledRowSameRow(t *testing.T) {
	m, err := ratmat.NewDense(2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, m.AddScaledRow(1, 1, big.NewRat(1, 1)), ratmat.ErrDimensionMismatch)
}

// TestStringCanonicalForm checks entries print in reduced num/den form.
func TestStringCanonicalForm(t *testing.T) {
	m, err := ratmat.FromRows([][]*big.Rat{{big.NewRat(2, 4), big.NewRat(3, 1)}})
	require.NoError(t, err)
	require.Equal(t, "[1/2, 3]\n", m.String())
}
