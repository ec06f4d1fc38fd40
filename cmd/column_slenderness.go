package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcc/internal/column"
	"github.com/spf13/cobra"
)

var (
	// Slenderness inputs
	slendLu    float64
	slendK     float64
	slendWidth float64
	slendThick float64
	slendFc    float64
	slendCm    float64
	slendPu    float64
	slendCat   string
)

var columnSlendernessCmd = &cobra.Command{
	Use:   "slenderness",
	Short: "Classify slenderness and compute moment magnification",
	Long: `Classify a compression member as slender and compute the Euler
critical load, the moment magnification factor and the empirical
axial reduction factor.

The analysis follows NSCP 2015 provisions:
  - Section 406.2.5:     Slenderness limit for braced members
  - Section 406.6.4.5.2: Moment magnification
  - Table 406.6.3.1.1:   Cracked-section stiffness

Examples:
  # Short tied column
  gorcc column slenderness --lu 2000 --thickness 300 --width 300 --k 0.8 --pu 800

  # Slender wall segment
  gorcc column slenderness --lu 4500 --thickness 200 --width 1000 \
      --category wall --pu 1500`,
	Run: runColumnSlenderness,
}

func init() {
	columnCmd.AddCommand(columnSlendernessCmd)

	columnSlendernessCmd.Flags().Float64Var(&slendLu, "lu", 0, "Unsupported length (mm) [required]")
	columnSlendernessCmd.Flags().Float64Var(&slendK, "k", 0, "Effective length factor")
	columnSlendernessCmd.Flags().Float64VarP(&slendWidth, "width", "b", 0, "Section dimension perpendicular to buckling (mm) [required]")
	columnSlendernessCmd.Flags().Float64VarP(&slendThick, "thickness", "t", 0, "Minimum section dimension (mm) [required]")
	columnSlendernessCmd.Flags().Float64Var(&slendFc, "fc", 0, "Concrete compressive strength f'c (MPa)")
	columnSlendernessCmd.Flags().Float64Var(&slendCm, "cm", 0, "Moment equivalence factor Cm")
	columnSlendernessCmd.Flags().Float64Var(&slendPu, "pu", 0, "Factored axial load (kN)")
	columnSlendernessCmd.Flags().StringVar(&slendCat, "category", "tied-column", "Element category: tied-column, spiral-column or wall")

	columnSlendernessCmd.MarkFlagRequired("lu")
	columnSlendernessCmd.MarkFlagRequired("width")
	columnSlendernessCmd.MarkFlagRequired("thickness")
}

func runColumnSlenderness(cmd *cobra.Command, args []string) {
	defaults := loadDefaults()
	if slendFc <= 0 {
		slendFc = defaults.Fc
	}

	behavior := column.ResolveBehavior(column.ParseCategory(slendCat))
	k := slendK
	if k <= 0 {
		k = behavior.DefaultK
	}

	result, err := column.AnalyzeSlenderness(column.SlendernessInput{
		Lu:              slendLu,
		K:               k,
		Width:           slendWidth,
		Thickness:       slendThick,
		Fc:              slendFc,
		Cm:              slendCm,
		StiffnessFactor: behavior.StiffnessFactor,
		Pu:              slendPu,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SLENDERNESS ANALYSIS - NSCP 2015")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Category:\t%s\n", column.ParseCategory(slendCat))
	fmt.Fprintf(w, "  Effective length factor (k):\t%.2f\n", result.K)
	fmt.Fprintf(w, "  Radius of gyration (r):\t%.1f mm\n", slendThick/math.Sqrt(12))
	fmt.Fprintf(w, "  Slenderness ratio (λ):\t%.1f\n", result.Lambda)
	fmt.Fprintf(w, "  Slender:\t%v\n", result.IsSlender)
	fmt.Fprintf(w, "  Critical load (Pc):\t%.1f kN\n", result.Pc)
	if result.Unstable {
		fmt.Fprintf(w, "  Magnification (δns):\t∞ — UNSTABLE (Pu ≥ 0.75·Pc)\n")
	} else {
		fmt.Fprintf(w, "  Magnification (δns):\t%.3f\n", result.DeltaNs)
	}
	if result.Rejected {
		fmt.Fprintf(w, "  Reduction factor:\t0 — REJECTED (k·lu/(32t) ≥ 1)\n")
	} else {
		fmt.Fprintf(w, "  Reduction factor:\t%.3f\n", result.ReductionFactor)
	}
	w.Flush()
	fmt.Println()
}
