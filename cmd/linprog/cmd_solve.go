package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linprog/simplex"
)

var solveCmd = &cobra.Command{
	Use:   "solve <problem.yaml>",
	Short: "Solve a general LP/ILP problem file",
	Long: `Solve reads a YAML problem description and prints the exact optimum.

Example file:

    direction: maximize
    objective:
      - {var: x1, coeff: "7"}
      - {var: x2, coeff: "4"}
    constraints:
      - name: cap
        relation: "<="
        rhs: "8"
        terms:
          - {var: x1, coeff: "6"}
          - {var: x2, coeff: "4"}
    integral: [x1, x2]`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func runSolve(cmd *cobra.Command, args []string) error {
	var spec problemSpec
	if err := loadYAML(args[0], &spec); err != nil {
		return err
	}

	m, obj, err := buildModel(&spec)
	if err != nil {
		return err
	}

	var sol *simplex.Solved
	switch spec.Direction {
	case "maximize", "max":
		sol, err = m.Maximize(obj, solveOptions()...)
	case "minimize", "min":
		sol, err = m.Minimize(obj, solveOptions()...)
	default:
		return fmt.Errorf("unknown direction %q (want \"maximize\" or \"minimize\")", spec.Direction)
	}
	if err != nil {
		return err
	}

	objective, err := sol.Objective()
	if err != nil {
		return err
	}
	fmt.Println("objective =", objective.RatString())

	vars, err := sol.Variables()
	if err != nil {
		return err
	}
	for _, v := range vars {
		val, err := sol.Value(v)
		if err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", v, val.RatString())
	}

	// Duals for every named inequality; equality rows carry none.
	for _, cs := range spec.Constraints {
		if cs.Name == "" {
			continue
		}
		y, err := sol.ShadowPrice(cs.Name)
		if err != nil {
			continue
		}
		fmt.Printf("shadow(%s) = %s\n", cs.Name, y.RatString())
	}

	return nil
}
