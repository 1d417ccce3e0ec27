// Package simplex - tableau construction.
//
// newTableau turns a frozen Model plus an objective into the initial
// simplex tableau:
//
//   - one column per distinct structural variable, assigned in stable
//     first-seen order (constraint order first, then objective-only
//     variables);
//   - per constraint row: a slack column (≤), a surplus plus an artificial
//     column (≥), or an artificial column (=);
//   - initial basis: slack variables for ≤ rows, artificial variables for
//     =/≥ rows;
//   - the RHS is stored as the last matrix column, so every elementary row
//     operation updates it together with the coefficients.
//
// The invariant maintained by every pivot: each basic variable's column is
// the identity vector in its row (canonical form).
package simplex

import (
	"math/big"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/linprog/ratmat"
)

// colKind classifies a tableau column.
type colKind uint8

const (
	colStructural colKind = iota // a user variable
	colSlack                     // slack of a ≤ row
	colSurplus                   // surplus of a ≥ row
	colArtificial                // Phase 1 artificial of a =/≥ row
)

// tableau is the mutable working state of one relaxation solve. It is
// created per solve and never escapes the engine; Solved keeps only
// extracted values.
type tableau struct {
	rows int // constraint rows
	cols int // total columns, RHS excluded

	mat *ratmat.Dense // rows × (cols+1); column cols is the RHS
	obj []*big.Rat    // length cols+1: reduced costs | −z (minimization sense)
	cost []*big.Rat   // length cols: the real objective, minimization sense

	basis []int     // row -> basic column
	kinds []colKind // column -> kind

	artCols *bitset.BitSet // artificial columns
	intCols *bitset.BitSet // structural columns of integral-flagged variables

	structural int            // count of structural columns
	varOfCol   []string       // structural column -> variable name
	colOfVar   map[string]int // variable name -> structural column

	slackOfRow []int  // row -> slack/surplus column, -1 for equality rows
	flippedRow []bool // row was sign-normalized at ingestion
	nameOfRow  []string
}

// objColumns builds the merged minimization-sense cost per variable,
// registering objective-only variables in first-seen order.
func objColumns(m *Model, obj []Term, dir direction) ([]string, map[string]*big.Rat, error) {
	varOrder := make([]string, len(m.varOrder))
	copy(varOrder, m.varOrder)
	seen := make(map[string]int, len(varOrder))
	for i, v := range varOrder {
		seen[v] = i
	}

	cost := make(map[string]*big.Rat, len(obj))
	for _, t := range obj {
		if t.Var == "" || t.Coeff == nil {
			return nil, nil, ErrSyntax
		}
		if _, ok := seen[t.Var]; !ok {
			seen[t.Var] = len(varOrder)
			varOrder = append(varOrder, t.Var)
		}
		c := new(big.Rat).Set(t.Coeff)
		if dir == maximizeDir {
			c.Neg(c) // maximization is solved as minimization of the negation
		}
		if q, ok := cost[t.Var]; ok {
			q.Add(q, c)
			continue
		}
		cost[t.Var] = c
	}

	return varOrder, cost, nil
}

// newTableau assembles the initial tableau for m with the given objective.
// Requires at least one constraint row; the constraint-free case is handled
// by the caller before tableau construction.
// Complexity: O(rows · cols) time and memory.
func newTableau(m *Model, obj []Term, dir direction) (*tableau, error) {
	varOrder, costByVar, err := objColumns(m, obj, dir)
	if err != nil {
		return nil, err
	}

	t := &tableau{
		rows:       len(m.cons),
		structural: len(varOrder),
		varOfCol:   varOrder,
		colOfVar:   make(map[string]int, len(varOrder)),
		slackOfRow: make([]int, len(m.cons)),
		flippedRow: make([]bool, len(m.cons)),
		nameOfRow:  make([]string, len(m.cons)),
	}
	for i, v := range varOrder {
		t.colOfVar[v] = i
	}

	// Column layout: structural | slack/surplus (per row, in row order) |
	// artificial (per row, in row order).
	extra := 0
	artificials := 0
	for _, row := range m.cons {
		switch row.rel {
		case LessEq:
			extra++
		case GreaterEq:
			extra++
			artificials++
		case Eq:
			artificials++
		}
	}
	t.cols = t.structural + extra + artificials

	t.mat, err = ratmat.NewDense(t.rows, t.cols+1)
	if err != nil {
		return nil, err
	}
	t.kinds = make([]colKind, t.cols)
	t.basis = make([]int, t.rows)
	t.artCols = bitset.New(uint(t.cols))
	t.intCols = bitset.New(uint(t.cols))

	for v := range m.integral {
		if col, ok := t.colOfVar[v]; ok {
			t.intCols.Set(uint(col))
		}
	}

	// Fill coefficients, then slack/surplus/artificial unit entries.
	nextExtra := t.structural
	nextArt := t.structural + extra
	var i int
	one := big.NewRat(1, 1)
	negOne := big.NewRat(-1, 1)
	for i = 0; i < t.rows; i++ {
		row := m.cons[i]
		dst := t.mat.RawRowView(i)
		for v, q := range row.coeffs {
			dst[t.colOfVar[v]].Set(q)
		}
		dst[t.cols].Set(row.rhs)
		t.flippedRow[i] = row.flipped
		t.nameOfRow[i] = row.name
		t.slackOfRow[i] = -1

		switch row.rel {
		case LessEq:
			t.kinds[nextExtra] = colSlack
			dst[nextExtra].Set(one)
			t.slackOfRow[i] = nextExtra
			t.basis[i] = nextExtra
			nextExtra++
		case GreaterEq:
			t.kinds[nextExtra] = colSurplus
			dst[nextExtra].Set(negOne)
			t.slackOfRow[i] = nextExtra
			nextExtra++
			t.kinds[nextArt] = colArtificial
			dst[nextArt].Set(one)
			t.artCols.Set(uint(nextArt))
			t.basis[i] = nextArt
			nextArt++
		case Eq:
			t.kinds[nextArt] = colArtificial
			dst[nextArt].Set(one)
			t.artCols.Set(uint(nextArt))
			t.basis[i] = nextArt
			nextArt++
		}
	}

	// Real objective in minimization sense; slack/surplus/artificial
	// columns cost zero.
	t.cost = make([]*big.Rat, t.cols)
	for j := range t.cost {
		t.cost[j] = new(big.Rat)
	}
	for v, c := range costByVar {
		t.cost[t.colOfVar[v]].Set(c)
	}

	t.obj = make([]*big.Rat, t.cols+1)
	for j := range t.obj {
		t.obj[j] = new(big.Rat)
	}

	return t, nil
}

// pivot performs the exchange at (row, col): scales the pivot row so the
// pivot entry becomes one, then eliminates the entering column from every
// other row and from the objective row, preserving the canonical-form
// invariant. The pivot entry must be non-zero.
// Complexity: O(rows · cols) exact-rational operations.
func (t *tableau) pivot(row, col int) error {
	prow := t.mat.RawRowView(row)
	inv := new(big.Rat).Inv(prow[col])
	if err := ratmat.Scale(prow, inv); err != nil {
		return err
	}

	var r int
	fac := new(big.Rat)
	for r = 0; r < t.rows; r++ {
		if r == row {
			continue
		}
		entry := t.mat.RawRowView(r)[col]
		if entry.Sign() == 0 {
			continue
		}
		fac.Neg(entry) // snapshot before AddScaled mutates the entry
		if err := ratmat.AddScaled(t.mat.RawRowView(r), prow, fac); err != nil {
			return err
		}
	}
	if t.obj[col].Sign() != 0 {
		fac.Neg(t.obj[col])
		if err := ratmat.AddScaled(t.obj, prow, fac); err != nil {
			return err
		}
	}
	t.basis[row] = col

	return nil
}

// rhs returns the right-hand entry of row r (aliased, not a copy).
func (t *tableau) rhs(r int) *big.Rat { return t.mat.RawRowView(r)[t.cols] }
