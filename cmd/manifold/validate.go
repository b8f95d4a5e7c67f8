package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/motionkit/manifold"
	"github.com/motionkit/manifold/internal/logging"
	"github.com/motionkit/manifold/pkg/domain"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a constraint description for consistency",
	Long: `Builds an evaluator from the YAML constraint description and reports
unsupported combinations, missing fields and equality extents that would make
every sampled state invalid.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Int("dof", 6, "Degrees of freedom of the planning group")
}

func runValidate(cmd *cobra.Command) error {
	set, err := loadConstraintSet(cmd)
	if err != nil {
		return err
	}
	dof, _ := cmd.Flags().GetInt("dof")

	eval, err := manifold.New(set, dof, manifold.WithLogger(cmdLogger(cmd)))
	if err != nil {
		return err
	}

	fmt.Printf("Constraint description is valid.\n")
	fmt.Printf("  link:         %s\n", eval.LinkName())
	fmt.Printf("  co-dimension: %d\n", eval.CoDimension())
	fmt.Printf("  tolerance:    %g\n", eval.Tolerance())
	return nil
}

// loadConstraintSet reads the YAML description named by the persistent
// --constraints flag.
func loadConstraintSet(cmd *cobra.Command) (domain.ConstraintSet, error) {
	path, _ := cmd.Flags().GetString("constraints")
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.ConstraintSet{}, fmt.Errorf("reading constraint description: %w", err)
	}
	var set domain.ConstraintSet
	if err := yaml.Unmarshal(raw, &set); err != nil {
		return domain.ConstraintSet{}, fmt.Errorf("decoding constraint description: %w", err)
	}
	return set, nil
}

func cmdLogger(cmd *cobra.Command) *slog.Logger {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}
