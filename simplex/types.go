// SPDX-License-Identifier: MIT
// Package simplex: sentinel error set, public enums and the normalized
// constraint representation. All solver entry points return ONLY these
// sentinels for user-triggered failures; tests match them via errors.Is.

package simplex

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrSyntax is returned for a malformed normalized expression: empty
	// term lists, empty variable names, nil coefficients or constants.
	ErrSyntax = errors.New("simplex: malformed constraint expression")

	// ErrDuplicateName is returned when two named constraints in one model
	// share a name.
	ErrDuplicateName = errors.New("simplex: duplicate constraint name")

	// ErrUnknownConstraintName is returned when ConstraintAdd or ShadowPrice
	// references a name absent from the model.
	ErrUnknownConstraintName = errors.New("simplex: unknown constraint name")

	// ErrInfeasible is returned when the constraint set admits no feasible
	// point (the Phase 1 minimum is strictly positive), or when an integer
	// program has no integral feasible point.
	ErrInfeasible = errors.New("simplex: constraint set is infeasible")

	// ErrUnbounded is returned when the objective can be improved without
	// limit (an entering column has no positive entry in the ratio test).
	ErrUnbounded = errors.New("simplex: objective is unbounded")

	// ErrMismatchedTotals is returned by Transportation when supply and
	// demand sums differ.
	ErrMismatchedTotals = errors.New("simplex: supply and demand totals differ")

	// ErrDimensionMismatch is returned for malformed cost/supply/demand
	// shapes (empty, ragged, or inconsistent lengths).
	ErrDimensionMismatch = errors.New("simplex: dimension mismatch")

	// ErrNotSolved is returned when results are read from a zero or nil
	// Solved value, i.e. one not produced by Maximize or Minimize.
	ErrNotSolved = errors.New("simplex: model has not been solved")

	// ErrNoShadowPrice is returned when a dual value is requested for a
	// constraint without an associated slack or surplus column (equality
	// rows are encoded purely via artificial columns; see Solved.ShadowPrice).
	ErrNoShadowPrice = errors.New("simplex: constraint has no slack or surplus column")

	// ErrNodeLimit is returned when the branch-and-bound node budget set
	// via WithMaxNodes is exhausted before optimality is proven.
	ErrNodeLimit = errors.New("simplex: branch-and-bound node budget exhausted")
)

// Relation is the relational operator of a constraint.
type Relation int

const (
	// Eq is the equality relation (=).
	Eq Relation = iota

	// LessEq is the less-than-or-equal relation (≤).
	LessEq

	// GreaterEq is the greater-than-or-equal relation (≥).
	GreaterEq
)

// String returns the conventional symbol of the relation.
func (r Relation) String() string {
	switch r {
	case Eq:
		return "="
	case LessEq:
		return "<="
	case GreaterEq:
		return ">="
	default:
		return fmt.Sprintf("Relation(%d)", int(r))
	}
}

// valid reports whether r is one of the three supported relations.
func (r Relation) valid() bool { return r == Eq || r == LessEq || r == GreaterEq }

// Status classifies the outcome of a solve.
type Status int

const (
	// Optimal means an optimal basic feasible solution was found.
	Optimal Status = iota

	// Infeasible means the constraint set admits no feasible point.
	Infeasible

	// Unbounded means the objective improves without limit.
	Unbounded
)

// String returns a stable lower-case name for the status.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// direction is the optimization sense. Internally every problem is solved
// as a minimization; maximization negates the objective on the way in and
// the reported optimum on the way out.
type direction int

const (
	minimizeDir direction = iota
	maximizeDir
)

// Term is one (coefficient, variable) pair of a normalized linear
// expression. Duplicate variables within one expression are summed at
// ingestion.
type Term struct {
	// Coeff is the exact rational coefficient; nil is rejected as ErrSyntax.
	Coeff *big.Rat

	// Var is the opaque, totally-ordered variable key; empty is rejected
	// as ErrSyntax. Variables are implicitly bounded below by zero.
	Var string
}

// T builds a Term. Shorthand for composing normalized expressions.
func T(coeff *big.Rat, v string) Term { return Term{Coeff: coeff, Var: v} }

// R builds the exact rational num/den. den must be non-zero (programmer
// error; big.Rat panics on zero denominators).
func R(num, den int64) *big.Rat { return big.NewRat(num, den) }

// RS parses an exact rational from a decimal ("0.3") or fraction ("3/10")
// literal. Decimal input converts losslessly: RS("0.3") is exactly 3/10.
func RS(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("parse %q: %w", s, ErrSyntax)
	}

	return r, nil
}

// Constraint is a normalized linear constraint: Terms Rel RHS.
// The zero value is malformed; build constraints with NewConstraint or
// NamedConstraint.
type Constraint struct {
	// Name optionally identifies the constraint for ConstraintAdd and
	// ShadowPrice lookups. Empty means anonymous. Names are unique per model.
	Name string

	// Terms is the left-hand side as (coefficient, variable) pairs.
	Terms []Term

	// Rel is the relational operator.
	Rel Relation

	// RHS is the right-hand constant. A negative constant is
	// sign-normalized at ingestion (row negated, relation flipped).
	RHS *big.Rat
}

// NewConstraint builds an anonymous constraint `terms rel rhs`.
func NewConstraint(rel Relation, rhs *big.Rat, terms ...Term) Constraint {
	return Constraint{Terms: terms, Rel: rel, RHS: rhs}
}

// NamedConstraint builds a named constraint `terms rel rhs`. The name
// enables ConstraintAdd extension and ShadowPrice lookup.
func NamedConstraint(name string, rel Relation, rhs *big.Rat, terms ...Term) Constraint {
	return Constraint{Name: name, Terms: terms, Rel: rel, RHS: rhs}
}
