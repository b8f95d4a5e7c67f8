package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/motionkit/manifold"
	"github.com/motionkit/manifold/pkg/adapters/serial"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate the constraint at a joint configuration",
	Long: `Builds an evaluator from the YAML constraint description and evaluates
F(q) and dF/dq against a planar serial arm with the given link lengths.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runEval(cmd); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().String("lengths", "0.5,0.4,0.3", "Comma-separated link lengths of the serial arm")
	evalCmd.Flags().String("q", "", "Comma-separated joint values (required)")
	_ = evalCmd.MarkFlagRequired("q")
}

func runEval(cmd *cobra.Command) error {
	set, err := loadConstraintSet(cmd)
	if err != nil {
		return err
	}

	lengthsFlag, _ := cmd.Flags().GetString("lengths")
	lengths, err := parseFloats(lengthsFlag)
	if err != nil {
		return fmt.Errorf("parsing --lengths: %w", err)
	}
	qFlag, _ := cmd.Flags().GetString("q")
	q, err := parseFloats(qFlag)
	if err != nil {
		return fmt.Errorf("parsing --q: %w", err)
	}

	arm, err := serial.New(lengths...)
	if err != nil {
		return err
	}
	eval, err := manifold.New(set, arm.DOF(), manifold.WithLogger(cmdLogger(cmd)))
	if err != nil {
		return err
	}

	f, err := eval.Function(arm, q)
	if err != nil {
		return err
	}
	jac, err := eval.Jacobian(arm, q)
	if err != nil {
		return err
	}
	ok, err := eval.Satisfied(arm, q)
	if err != nil {
		return err
	}

	fmt.Printf("link: %s\n", eval.LinkName())
	fmt.Printf("F(q)   = %v\n", mat.Formatted(f.T()))
	fmt.Printf("dF/dq  =\n%v\n", mat.Formatted(jac, mat.Prefix("         ")))
	fmt.Printf("‖F(q)‖ ≤ %g: %v\n", eval.Tolerance(), ok)
	return nil
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
