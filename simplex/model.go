// Package simplex - persistent constraint model.
//
// A Model is an immutable value: Constraint, ConstraintAdd and Integral
// return a fresh model and never touch the receiver, so two independent
// extensions of the same ancestor never interfere. This is what lets
// branch-and-bound fork a model per branch without copying tableaus or
// taking locks, and what lets callers keep and re-solve any intermediate
// version.
//
// Sharing discipline:
//   - top-level containers (constraint slice, name/variable indices) are
//     copied on every mutation;
//   - individual constraint rows are shared structurally until a mutation
//     (ConstraintAdd) targets them, at which point that row alone is cloned;
//   - every ingested *big.Rat is deep-copied, so callers mutating their
//     own rationals after the call cannot alias model state.
package simplex

import "math/big"

// conRow is one normalized constraint inside a model.
// Rows are stored sign-normalized: rhs >= 0 always holds, with `flipped`
// recording whether the user's original row was negated to get there
// (needed to report duals in the user's sense).
type conRow struct {
	name    string              // "" when anonymous
	coeffs  map[string]*big.Rat // variable -> exact coefficient, duplicates summed
	rel     Relation            // relation after sign normalization
	rhs     *big.Rat            // non-negative after sign normalization
	flipped bool                // true when the ingested row was negated
}

// cloneCoeffs deep-copies the coefficient map of a row.
func (c *conRow) cloneCoeffs() map[string]*big.Rat {
	cp := make(map[string]*big.Rat, len(c.coeffs))
	for v, q := range c.coeffs {
		cp[v] = new(big.Rat).Set(q)
	}

	return cp
}

// Model is a persistent set of constraints plus integrality flags.
// The zero value is not usable; obtain models from NewModel.
type Model struct {
	cons     []conRow            // ordered constraint sequence
	names    map[string]int      // constraint name -> index into cons
	varOrder []string            // variables in first-seen order (column order)
	varIndex map[string]int      // variable -> index into varOrder
	integral map[string]struct{} // variables flagged integral
}

// NewModel returns the empty model: no constraints, no variables, no
// integrality flags.
func NewModel() *Model {
	return &Model{
		names:    make(map[string]int),
		varIndex: make(map[string]int),
		integral: make(map[string]struct{}),
	}
}

// fork shallow-copies the model's top-level containers. Constraint rows
// stay shared; mutators clone the specific row they touch.
func (m *Model) fork() *Model {
	n := &Model{
		cons:     make([]conRow, len(m.cons)),
		names:    make(map[string]int, len(m.names)),
		varOrder: make([]string, len(m.varOrder)),
		varIndex: make(map[string]int, len(m.varIndex)),
		integral: make(map[string]struct{}, len(m.integral)),
	}
	copy(n.cons, m.cons)
	copy(n.varOrder, m.varOrder)
	for k, v := range m.names {
		n.names[k] = v
	}
	for k, v := range m.varIndex {
		n.varIndex[k] = v
	}
	for k := range m.integral {
		n.integral[k] = struct{}{}
	}

	return n
}

// registerVar records a variable in first-seen column order.
func (m *Model) registerVar(v string) {
	if _, ok := m.varIndex[v]; ok {
		return
	}
	m.varIndex[v] = len(m.varOrder)
	m.varOrder = append(m.varOrder, v)
}

// validateTerms rejects structurally malformed normalized expressions.
func validateTerms(terms []Term) error {
	if len(terms) == 0 {
		return ErrSyntax
	}
	for _, t := range terms {
		if t.Var == "" || t.Coeff == nil {
			return ErrSyntax
		}
	}

	return nil
}

// mergeTerms folds a term list into a coefficient map, summing duplicates
// exactly. Variable registration order follows the term slice, not map
// iteration, to keep column assignment deterministic.
func mergeTerms(dst map[string]*big.Rat, terms []Term) {
	for _, t := range terms {
		if q, ok := dst[t.Var]; ok {
			q.Add(q, t.Coeff)
			continue
		}
		dst[t.Var] = new(big.Rat).Set(t.Coeff)
	}
}

// Constraint returns a new model extended with c. The receiver is unchanged.
//
// Validation: non-empty term list, non-empty variable names, non-nil
// coefficients and constant, a supported relation (ErrSyntax otherwise);
// a non-empty name must be unused in the model (ErrDuplicateName).
//
// Normalization: duplicate variables on the LHS are summed; a negative
// constant negates the whole row and flips ≤/≥ so that stored rows always
// carry a non-negative RHS (equalities keep their relation).
//
// Complexity: O(|terms| + |model|) time for the persistent copy.
func (m *Model) Constraint(c Constraint) (*Model, error) {
	if err := validateTerms(c.Terms); err != nil {
		return nil, err
	}
	if c.RHS == nil || !c.Rel.valid() {
		return nil, ErrSyntax
	}
	if c.Name != "" {
		if _, dup := m.names[c.Name]; dup {
			return nil, ErrDuplicateName
		}
	}

	row := conRow{
		name:   c.Name,
		coeffs: make(map[string]*big.Rat, len(c.Terms)),
		rel:    c.Rel,
		rhs:    new(big.Rat).Set(c.RHS),
	}
	mergeTerms(row.coeffs, c.Terms)

	// Sign normalization: keep RHS non-negative, flip the relation.
	if row.rhs.Sign() < 0 {
		row.rhs.Neg(row.rhs)
		for _, q := range row.coeffs {
			q.Neg(q)
		}
		switch row.rel {
		case LessEq:
			row.rel = GreaterEq
		case GreaterEq:
			row.rel = LessEq
		}
		row.flipped = true
	}

	out := m.fork()
	if c.Name != "" {
		out.names[c.Name] = len(out.cons)
	}
	out.cons = append(out.cons, row)
	// Register variables in term order (first-seen column assignment).
	for _, t := range c.Terms {
		out.registerVar(t.Var)
	}

	return out, nil
}

// ConstraintAdd returns a new model in which the named constraint's LHS is
// extended by extra, merging coefficients by variable. The relation and
// constant are unchanged. The receiver is unchanged.
//
// Errors: ErrUnknownConstraintName when name is absent; ErrSyntax for a
// malformed extra term list.
//
// Complexity: O(|extra| + |row| + |model|).
func (m *Model) ConstraintAdd(name string, extra []Term) (*Model, error) {
	idx, ok := m.names[name]
	if !ok {
		return nil, ErrUnknownConstraintName
	}
	if err := validateTerms(extra); err != nil {
		return nil, err
	}

	out := m.fork()
	row := out.cons[idx]
	row.coeffs = row.cloneCoeffs() // copy-on-write: only this row is forked

	// The stored row may have been sign-normalized; extending the user's
	// original LHS then means subtracting from the stored one.
	terms := extra
	if row.flipped {
		terms = make([]Term, len(extra))
		for i, t := range extra {
			terms[i] = Term{Coeff: new(big.Rat).Neg(t.Coeff), Var: t.Var}
		}
	}
	mergeTerms(row.coeffs, terms)
	out.cons[idx] = row
	for _, t := range extra {
		out.registerVar(t.Var)
	}

	return out, nil
}

// Integral returns a new model with vars flagged as integer-valued.
// Unknown variables may be flagged ahead of their first constraint
// occurrence; flags without a matching column are inert. The receiver is
// unchanged.
func (m *Model) Integral(vars ...string) *Model {
	out := m.fork()
	for _, v := range vars {
		if v == "" {
			continue
		}
		out.integral[v] = struct{}{}
	}

	return out
}

// Constraints reports the number of constraints in the model.
func (m *Model) Constraints() int { return len(m.cons) }

// Variables returns the model's variables in column (first-seen) order.
// The returned slice is a copy.
func (m *Model) Variables() []string {
	out := make([]string, len(m.varOrder))
	copy(out, m.varOrder)

	return out
}

// IsIntegral reports whether v carries the integrality flag.
func (m *Model) IsIntegral(v string) bool {
	_, ok := m.integral[v]

	return ok
}
