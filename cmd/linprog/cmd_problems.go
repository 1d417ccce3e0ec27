package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linprog/simplex"
)

var assignmentCmd = &cobra.Command{
	Use:   "assignment <costs.yaml>",
	Short: "Solve an n×n assignment problem",
	Long: `Assignment reads a square cost matrix and prints the optimal 0/1
assignment matrix plus its total cost.

Example file:

    costs:
      - ["4", "1", "3"]
      - ["2", "0", "5"]
      - ["3", "2", "2"]`,
	Args: cobra.ExactArgs(1),
	RunE: runAssignment,
}

var transportationCmd = &cobra.Command{
	Use:   "transportation <problem.yaml>",
	Short: "Solve a balanced transportation problem",
	Long: `Transportation reads supplies, demands and a cost matrix and prints
the optimal shipment plan plus its total cost. Supply and demand totals
must be exactly equal.

Example file:

    supplies: ["20", "30"]
    demands:  ["10", "25", "15"]
    costs:
      - ["2", "3", "1"]
      - ["5", "4", "8"]`,
	Args: cobra.ExactArgs(1),
	RunE: runTransportation,
}

func runAssignment(cmd *cobra.Command, args []string) error {
	var spec matrixSpec
	if err := loadYAML(args[0], &spec); err != nil {
		return err
	}
	costs, err := parseRatMatrix(spec.Costs)
	if err != nil {
		return err
	}

	plan, err := simplex.Assignment(costs, solveOptions()...)
	if err != nil {
		return err
	}
	printPlan(plan)
	fmt.Println("total =", planCost(costs, plan))

	return nil
}

func runTransportation(cmd *cobra.Command, args []string) error {
	var spec matrixSpec
	if err := loadYAML(args[0], &spec); err != nil {
		return err
	}
	costs, err := parseRatMatrix(spec.Costs)
	if err != nil {
		return err
	}
	supplies, err := parseRatVector(spec.Supplies)
	if err != nil {
		return err
	}
	demands, err := parseRatVector(spec.Demands)
	if err != nil {
		return err
	}

	plan, err := simplex.Transportation(supplies, demands, costs, solveOptions()...)
	if err != nil {
		return err
	}
	printPlan(plan)
	fmt.Println("total =", planCost(costs, plan))

	return nil
}
