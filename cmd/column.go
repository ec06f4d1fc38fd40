package cmd

import (
	"github.com/spf13/cobra"
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Rectangular column interaction and verification",
	Long: `Generate P-M interaction diagrams and verify rectangular reinforced
concrete columns against factored load combinations, per NSCP 2015.

Subcommands:
  interaction  - Build and display the P-M interaction curve
  verify       - Check demand combinations against the capacity curve
  slenderness  - Classify slenderness and compute moment magnification

All calculations follow NSCP 2015 strength design method.`,
}

func init() {
	rootCmd.AddCommand(columnCmd)
}
