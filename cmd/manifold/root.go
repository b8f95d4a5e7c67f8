package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "manifold",
	Short: "Manifold turns pose constraints into differentiable planner residuals",
	Long: `Manifold builds equality-style constraint functions F(q)=0 and their
Jacobians from declarative pose constraints on a robot link, the form a
sampling-based planner needs for a constrained state space.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("constraints", "c", "constraints.yaml", "YAML constraint description file")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log selection and validation diagnostics")
}
