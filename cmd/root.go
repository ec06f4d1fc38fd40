package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gorcc/internal/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gorcc",
	Short: "Reinforced Concrete Column Design Tool",
	Long: `gorcc - Go Reinforced Concrete Column Designer

A CLI tool for the verification of reinforced concrete columns
based on the National Structural Code of the Philippines (NSCP).

This tool helps structural engineers perform:
  - P-M interaction diagram generation (strain compatibility)
  - Demand/capacity verification against factored load combinations
  - Slenderness classification and moment magnification
  - Factored demand calculation from NSCP load combinations

All calculations follow NSCP 2015 (Volume 1) provisions.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gorcc v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Reinforced Concrete Column Designer                  ║")
		fmt.Printf("  ║   %s ©  %s                             ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the verification of reinforced concrete columns")
		fmt.Println("  based on the National Structural Code of the Philippines (NSCP).")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • P-M interaction curve from strain compatibility")
		fmt.Println("    • Safety factor per load combination, governing combo report")
		fmt.Println("    • Slenderness and moment magnification checks")
		fmt.Println("    • Batch verification of member sets from JSON")
		fmt.Println()
		fmt.Println("  Use 'gorcc --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
