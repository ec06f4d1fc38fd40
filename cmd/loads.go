package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcc/internal/nscp"
	"github.com/spf13/cobra"
)

var (
	// Unfactored axial forces (kN, + = compression)
	axialDead       float64
	axialLive       float64
	axialRoof       float64
	axialWind       float64
	axialEarthquake float64
	axialRain       float64

	// Unfactored moments (kN-m)
	momentDead       float64
	momentLive       float64
	momentRoof       float64
	momentWind       float64
	momentEarthquake float64
	momentRain       float64

	// Options
	useSimplified bool
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Calculate factored (Pu, Mu) pairs using NSCP load combinations",
	Long: `Calculate the factored axial force and moment demands based on NSCP
2015 load combinations. Each combination produces one (Pu, Mu) pair; the
full set is what gets verified against the interaction curve.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Gravity loads
  gorcc loads --pd 800 --pl 350 --md 45 --ml 25

  # With earthquake
  gorcc loads --pd 800 --pl 350 --pe 120 --md 45 --ml 25 --me 180

  # Simplified gravity combinations only
  gorcc loads --pd 800 --pl 350 --md 45 --ml 25 --simplified`,
	Run: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)

	// Axial force flags
	loadsCmd.Flags().Float64Var(&axialDead, "pd", 0, "Axial force due to dead load (kN)")
	loadsCmd.Flags().Float64Var(&axialLive, "pl", 0, "Axial force due to live load (kN)")
	loadsCmd.Flags().Float64Var(&axialRoof, "plr", 0, "Axial force due to roof live load (kN)")
	loadsCmd.Flags().Float64Var(&axialWind, "pw", 0, "Axial force due to wind load (kN)")
	loadsCmd.Flags().Float64Var(&axialEarthquake, "pe", 0, "Axial force due to earthquake load (kN)")
	loadsCmd.Flags().Float64Var(&axialRain, "pr", 0, "Axial force due to rain load (kN)")

	// Moment flags
	loadsCmd.Flags().Float64Var(&momentDead, "md", 0, "Moment due to dead load (kN-m)")
	loadsCmd.Flags().Float64Var(&momentLive, "ml", 0, "Moment due to live load (kN-m)")
	loadsCmd.Flags().Float64Var(&momentRoof, "mlr", 0, "Moment due to roof live load (kN-m)")
	loadsCmd.Flags().Float64Var(&momentWind, "mw", 0, "Moment due to wind load (kN-m)")
	loadsCmd.Flags().Float64Var(&momentEarthquake, "me", 0, "Moment due to earthquake load (kN-m)")
	loadsCmd.Flags().Float64Var(&momentRain, "mr", 0, "Moment due to rain load (kN-m)")

	// Options
	loadsCmd.Flags().BoolVarP(&useSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
}

func runLoads(cmd *cobra.Command, args []string) {
	effects := nscp.LoadEffects{
		Axial: nscp.EffectSet{
			Dead:       axialDead,
			Live:       axialLive,
			Roof:       axialRoof,
			Wind:       axialWind,
			Earthquake: axialEarthquake,
			Rain:       axialRain,
		},
		Moment: nscp.EffectSet{
			Dead:       momentDead,
			Live:       momentLive,
			Roof:       momentRoof,
			Wind:       momentWind,
			Earthquake: momentEarthquake,
			Rain:       momentRain,
		},
	}

	if effects.Axial == (nscp.EffectSet{}) && effects.Moment == (nscp.EffectSet{}) {
		fmt.Println("Error: Please provide at least one unfactored load effect.")
		fmt.Println("Use 'gorcc loads --help' for usage information.")
		return
	}

	combinations := nscp.LoadCombinations
	if useSimplified {
		combinations = nscp.SimplifiedCombinations
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("        NSCP 2015 FACTORED DEMAND CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("UNFACTORED EFFECTS (P in kN, M in kN-m):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	printEffect(w, "Dead Load (D)", effects.Axial.Dead, effects.Moment.Dead)
	printEffect(w, "Live Load (L)", effects.Axial.Live, effects.Moment.Live)
	printEffect(w, "Roof Live Load (Lr)", effects.Axial.Roof, effects.Moment.Roof)
	printEffect(w, "Wind Load (W)", effects.Axial.Wind, effects.Moment.Wind)
	printEffect(w, "Earthquake Load (E)", effects.Axial.Earthquake, effects.Moment.Earthquake)
	printEffect(w, "Rain Load (R)", effects.Axial.Rain, effects.Moment.Rain)
	w.Flush()
	fmt.Println()

	demands := nscp.FactorDemands(effects, combinations)
	governing := nscp.GoverningDemand(effects, combinations)

	fmt.Println("FACTORED DEMANDS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Combo\tDescription\tPu (kN)\tMu (kN-m)\n")
	for _, d := range demands {
		marker := ""
		if d.Combination.ID == governing.Combination.ID {
			marker = "  ◄ max Mu"
		}
		fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f%s\n",
			d.Combination.ID, d.Combination.Description, d.Pu, d.Mu, marker)
	}
	w.Flush()
	fmt.Println()
	fmt.Println("  Verify the full set with 'gorcc column verify'; the largest")
	fmt.Println("  moment is not always the critical pair on the curve.")
	fmt.Println()
}

func printEffect(w *tabwriter.Writer, name string, p, m float64) {
	if p != 0 || m != 0 {
		fmt.Fprintf(w, "  %s:\tP = %.2f\tM = %.2f\n", name, p, m)
	}
}
