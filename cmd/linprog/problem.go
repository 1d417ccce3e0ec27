package main

import (
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linprog/simplex"
)

// termSpec is one (variable, coefficient) pair of a YAML problem file.
// Coefficients are rational literals so exactness survives the file format.
type termSpec struct {
	Var   string `yaml:"var"`
	Coeff string `yaml:"coeff"`
}

// constraintSpec is one constraint of a YAML problem file. Relation is
// one of "<=", ">=", "=".
type constraintSpec struct {
	Name     string     `yaml:"name,omitempty"`
	Terms    []termSpec `yaml:"terms"`
	Relation string     `yaml:"relation"`
	RHS      string     `yaml:"rhs"`
}

// problemSpec is the top-level schema of `linprog solve` input.
type problemSpec struct {
	// Direction is "maximize" or "minimize".
	Direction   string           `yaml:"direction"`
	Objective   []termSpec       `yaml:"objective"`
	Constraints []constraintSpec `yaml:"constraints"`
	Integral    []string         `yaml:"integral,omitempty"`
}

// matrixSpec is the shared schema of the assignment and transportation
// subcommands. Supplies and demands are ignored by assignment.
type matrixSpec struct {
	Costs    [][]string `yaml:"costs"`
	Supplies []string   `yaml:"supplies,omitempty"`
	Demands  []string   `yaml:"demands,omitempty"`
}

// loadYAML reads and strictly decodes one YAML file into out.
func loadYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

// parseTerms converts YAML term pairs into solver terms.
func parseTerms(specs []termSpec) ([]simplex.Term, error) {
	terms := make([]simplex.Term, len(specs))
	for i, s := range specs {
		coeff, err := simplex.RS(s.Coeff)
		if err != nil {
			return nil, fmt.Errorf("term %q: %w", s.Var, err)
		}
		terms[i] = simplex.T(coeff, s.Var)
	}

	return terms, nil
}

// parseRelation maps the YAML relation literal onto the solver enum.
func parseRelation(s string) (simplex.Relation, error) {
	switch s {
	case "<=":
		return simplex.LessEq, nil
	case ">=":
		return simplex.GreaterEq, nil
	case "=", "==":
		return simplex.Eq, nil
	default:
		return 0, fmt.Errorf("unknown relation %q (want \"<=\", \">=\" or \"=\")", s)
	}
}

// buildModel assembles the persistent model described by spec.
func buildModel(spec *problemSpec) (*simplex.Model, []simplex.Term, error) {
	m := simplex.NewModel()
	for i, cs := range spec.Constraints {
		terms, err := parseTerms(cs.Terms)
		if err != nil {
			return nil, nil, fmt.Errorf("constraint %d: %w", i, err)
		}
		rel, err := parseRelation(cs.Relation)
		if err != nil {
			return nil, nil, fmt.Errorf("constraint %d: %w", i, err)
		}
		rhs, err := simplex.RS(cs.RHS)
		if err != nil {
			return nil, nil, fmt.Errorf("constraint %d: %w", i, err)
		}
		if m, err = m.Constraint(simplex.NamedConstraint(cs.Name, rel, rhs, terms...)); err != nil {
			return nil, nil, fmt.Errorf("constraint %d: %w", i, err)
		}
	}
	if len(spec.Integral) > 0 {
		m = m.Integral(spec.Integral...)
	}

	obj, err := parseTerms(spec.Objective)
	if err != nil {
		return nil, nil, fmt.Errorf("objective: %w", err)
	}

	return m, obj, nil
}

// parseRatVector parses a vector of rational literals.
func parseRatVector(lits []string) ([]*big.Rat, error) {
	out := make([]*big.Rat, len(lits))
	for i, s := range lits {
		r, err := simplex.RS(s)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}

	return out, nil
}

// parseRatMatrix parses a matrix of rational literals.
func parseRatMatrix(lits [][]string) ([][]*big.Rat, error) {
	out := make([][]*big.Rat, len(lits))
	for i, row := range lits {
		v, err := parseRatVector(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

// printPlan writes a solved shipment/assignment matrix as aligned
// rational cells.
func printPlan(plan [][]*big.Rat) {
	for _, row := range plan {
		for j, cell := range row {
			if j > 0 {
				fmt.Print("\t")
			}
			fmt.Print(cell.RatString())
		}
		fmt.Println()
	}
}

// planCost returns Σ cost(i,j)·plan(i,j) as a rational literal.
func planCost(costs, plan [][]*big.Rat) string {
	total := new(big.Rat)
	tmp := new(big.Rat)
	for i, row := range plan {
		for j, cell := range row {
			tmp.Mul(costs[i][j], cell)
			total.Add(total, tmp)
		}
	}

	return total.RatString()
}

// solveOptions translates the global flags into solver options.
func solveOptions() []simplex.Option {
	var opts []simplex.Option
	if maxNodes > 0 {
		opts = append(opts, simplex.WithMaxNodes(maxNodes))
	}

	return opts
}
