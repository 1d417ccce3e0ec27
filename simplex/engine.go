// Package simplex — two-phase exact simplex engine.
//
// The engine runs the state machine Phase1 → Phase2 → {Optimal,
// Infeasible, Unbounded} over a tableau (Phase 1 is skipped when no
// artificial column exists):
//
//  1. Phase 1 minimizes the sum of artificial variables. A strictly
//     positive minimum proves the original constraint set infeasible.
//     At zero, basic artificials are driven out where possible and the
//     artificial columns are barred from ever entering again.
//  2. Phase 2 reinstalls the real objective expressed in the current
//     basis and pivots to optimality.
//
// Pivot selection (deterministic):
//   - entering: most negative reduced cost, lowest column index on ties
//     (Dantzig's rule);
//   - leaving: minimal RHS/entry over strictly positive entries, ties by
//     lowest basic-variable column index, which keeps degenerate tableaus
//     from cycling.
//
// Every operation is exact; no epsilon appears anywhere in this file.
package simplex

import (
	"math/big"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/linprog/ratmat"
)

// relaxation is the extracted outcome of one LP solve. It is immutable
// once built; branch-and-bound and Solved read from it freely.
type relaxation struct {
	varOrder  []string            // structural variables in column order
	values    map[string]*big.Rat // basic structural values; absent = 0
	objective *big.Rat            // optimum in the user's sense
	duals     map[string]*big.Rat // named rows with slack/surplus, user sense
	eqNames   map[string]struct{} // named equality rows (no dual mapping)
	pivots    int
}

// value returns the solution value of v (zero when non-basic).
func (r *relaxation) value(v string) *big.Rat {
	if q, ok := r.values[v]; ok {
		return q
	}

	return new(big.Rat)
}

// engine wraps one tableau with pivot bookkeeping. A dedicated struct
// (instead of closures) keeps hot-path state predictable and testable.
type engine struct {
	t      *tableau
	log    zerolog.Logger
	pivots int
}

// enteringColumn returns the non-basic column with the most negative
// reduced cost, or -1 when none is negative (phase optimum reached).
// Artificial columns are excluded once barArtificials is set.
func (e *engine) enteringColumn(barArtificials bool) int {
	best := -1
	var bestVal *big.Rat
	var j int
	for j = 0; j < e.t.cols; j++ {
		if barArtificials && e.t.artCols.Test(uint(j)) {
			continue
		}
		c := e.t.obj[j]
		if c.Sign() >= 0 {
			continue
		}
		// Strict comparison keeps the lowest column index on ties.
		if best < 0 || c.Cmp(bestVal) < 0 {
			best = j
			bestVal = c
		}
	}

	return best
}

// leavingRow runs the ratio test for the entering column: among rows with
// a strictly positive entry, the minimal RHS/entry wins; ties go to the
// row whose basic variable has the lowest column index. Returns -1 when no
// row qualifies (the objective is unbounded along this column).
func (e *engine) leavingRow(col int) int {
	best := -1
	var bestRatio *big.Rat
	ratio := new(big.Rat)
	var r int
	for r = 0; r < e.t.rows; r++ {
		entry := e.t.mat.RawRowView(r)[col]
		if entry.Sign() <= 0 {
			continue
		}
		ratio.Quo(e.t.rhs(r), entry)
		switch {
		case best < 0:
			best = r
			bestRatio = new(big.Rat).Set(ratio)
		case ratio.Cmp(bestRatio) < 0:
			best = r
			bestRatio.Set(ratio)
		case ratio.Cmp(bestRatio) == 0 && e.t.basis[r] < e.t.basis[best]:
			best = r
		}
	}

	return best
}

// iterate pivots until the current phase's objective row has no negative
// reduced cost. Returns ErrUnbounded when an entering column admits no
// ratio-test candidate.
func (e *engine) iterate(barArtificials bool) error {
	for {
		col := e.enteringColumn(barArtificials)
		if col < 0 {
			return nil
		}
		row := e.leavingRow(col)
		if row < 0 {
			return ErrUnbounded
		}
		if err := e.t.pivot(row, col); err != nil {
			return err
		}
		e.pivots++
	}
}

// installPhase1 sets the working objective to "minimize the sum of
// artificial variables", expressed in the initial basis (each basic
// artificial row is subtracted so basic columns read zero).
func (e *engine) installPhase1() error {
	t := e.t
	for j := 0; j <= t.cols; j++ {
		t.obj[j].SetInt64(0)
	}
	one := big.NewRat(1, 1)
	for j := 0; j < t.cols; j++ {
		if t.artCols.Test(uint(j)) {
			t.obj[j].Set(one)
		}
	}
	negOne := big.NewRat(-1, 1)
	for r := 0; r < t.rows; r++ {
		if t.kinds[t.basis[r]] == colArtificial {
			if err := ratmat.AddScaled(t.obj, t.mat.RawRowView(r), negOne); err != nil {
				return err
			}
		}
	}

	return nil
}

// installPhase2 reinstalls the real objective in terms of the current
// basis: raw costs first, then one elimination per row whose basic column
// carries a non-zero cost.
func (e *engine) installPhase2() error {
	t := e.t
	for j := 0; j < t.cols; j++ {
		t.obj[j].Set(t.cost[j])
	}
	t.obj[t.cols].SetInt64(0)
	fac := new(big.Rat)
	for r := 0; r < t.rows; r++ {
		cb := t.obj[t.basis[r]]
		if cb.Sign() == 0 {
			continue
		}
		fac.Neg(cb)
		if err := ratmat.AddScaled(t.obj, t.mat.RawRowView(r), fac); err != nil {
			return err
		}
	}

	return nil
}

// evictArtificials pivots basic artificial variables out of the basis
// after a successful Phase 1. A row whose non-artificial entries are all
// zero is redundant; its artificial stays basic at zero and can never
// turn positive because artificial columns are barred from entering.
func (e *engine) evictArtificials() error {
	t := e.t
	var r, j int
	for r = 0; r < t.rows; r++ {
		if t.kinds[t.basis[r]] != colArtificial {
			continue
		}
		row := t.mat.RawRowView(r)
		for j = 0; j < t.cols; j++ {
			if t.artCols.Test(uint(j)) {
				continue
			}
			if row[j].Sign() != 0 {
				if err := t.pivot(r, j); err != nil {
					return err
				}
				e.pivots++
				break
			}
		}
	}

	return nil
}

// run executes the full two-phase procedure on the tableau.
func (e *engine) run() error {
	if e.t.artCols.Any() {
		if err := e.installPhase1(); err != nil {
			return err
		}
		if err := e.iterate(false); err != nil {
			// Phase 1 minimizes a sum of non-negative variables and is
			// bounded below by zero; an unbounded report here is a
			// programmer error, not a property of the input.
			return err
		}
		// Phase 1 optimum is −obj[cols]; strictly positive ⇒ infeasible.
		if e.t.obj[e.t.cols].Sign() != 0 {
			e.log.Debug().Int("pivots", e.pivots).Msg("phase 1: infeasible")

			return ErrInfeasible
		}
		if err := e.evictArtificials(); err != nil {
			return err
		}
		e.log.Debug().Int("pivots", e.pivots).Msg("phase 1: feasible basis found")
	}

	if err := e.installPhase2(); err != nil {
		return err
	}
	if err := e.iterate(true); err != nil {
		if err == ErrUnbounded {
			e.log.Debug().Int("pivots", e.pivots).Msg("phase 2: unbounded")
		}

		return err
	}
	e.log.Debug().Int("pivots", e.pivots).Msg("phase 2: optimal")

	return nil
}

// extract reads the optimal basis into an immutable relaxation, including
// the dual values of named rows.
//
// Dual convention (two-phase method): with the problem solved in
// minimization sense, the multiplier of row i is −c̄ under its slack
// column, +c̄ under its surplus column, where c̄ is the final reduced
// cost. The value is then mapped back to the user's sense: negated for
// maximization, and negated again for rows that were sign-normalized at
// ingestion. Named equality rows carry no slack/surplus column and are
// recorded in eqNames instead (ErrNoShadowPrice on lookup).
func (e *engine) extract(dir direction) *relaxation {
	t := e.t
	res := &relaxation{
		varOrder: t.varOfCol,
		values:   make(map[string]*big.Rat, t.rows),
		duals:    make(map[string]*big.Rat),
		eqNames:  make(map[string]struct{}),
		pivots:   e.pivots,
	}

	for r := 0; r < t.rows; r++ {
		col := t.basis[r]
		if col < t.structural {
			res.values[t.varOfCol[col]] = new(big.Rat).Set(t.rhs(r))
		}
	}

	// Tableau constant: obj[cols] = −z in minimization sense.
	z := new(big.Rat).Neg(t.obj[t.cols])
	if dir == maximizeDir {
		z.Neg(z)
	}
	res.objective = z

	for r := 0; r < t.rows; r++ {
		name := t.nameOfRow[r]
		if name == "" {
			continue
		}
		sc := t.slackOfRow[r]
		if sc < 0 {
			res.eqNames[name] = struct{}{}
			continue
		}
		y := new(big.Rat).Set(t.obj[sc])
		if t.kinds[sc] == colSlack {
			y.Neg(y)
		}
		if dir == maximizeDir {
			y.Neg(y)
		}
		if t.flippedRow[r] {
			y.Neg(y)
		}
		res.duals[name] = y
	}

	return res
}

// solveRelaxation solves the pure LP relaxation of m with the given
// objective. Constraint-free models are resolved directly: every variable
// sits at its lower bound zero unless the objective improves without
// limit, in which case the problem is unbounded.
func solveRelaxation(m *Model, obj []Term, dir direction, log zerolog.Logger) (*relaxation, error) {
	if len(m.cons) == 0 {
		varOrder, costByVar, err := objColumns(m, obj, dir)
		if err != nil {
			return nil, err
		}
		for _, c := range costByVar {
			if c.Sign() < 0 {
				return nil, ErrUnbounded
			}
		}

		return &relaxation{
			varOrder:  varOrder,
			values:    make(map[string]*big.Rat),
			objective: new(big.Rat),
			duals:     make(map[string]*big.Rat),
			eqNames:   make(map[string]struct{}),
		}, nil
	}

	t, err := newTableau(m, obj, dir)
	if err != nil {
		return nil, err
	}
	e := &engine{t: t, log: log}
	if err = e.run(); err != nil {
		return nil, err
	}

	return e.extract(dir), nil
}
