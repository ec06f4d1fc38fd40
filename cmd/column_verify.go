package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcc/internal/column"
	"github.com/alexiusacademia/gorcc/internal/diagram"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Verification inputs
	verifyWidth  float64
	verifyDepth  float64
	verifyCover  float64
	verifyFc     float64
	verifyFy     float64
	verifyAs     float64
	verifyPu     []float64
	verifyMu     []float64
	verifyLu     float64
	verifyK      float64
	verifyCm     float64
	verifyCat    string
	verifyPoints int
	verifyFile   string
	verifyOutput string
)

var columnVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify demand combinations against the column capacity",
	Long: `Check factored (Pu, Mu) load combinations against the column's P-M
interaction curve. Reports the safety factor per the governing
combination, with OK at SF >= 1.0.

With --lu the member is first classified for slenderness: moments are
magnified per combination and slender members take the empirical axial
capacity reduction. Instability and rejection are reported explicitly.

With --file, members are loaded from a JSON definition and verified in
batch; members sharing a section reuse one cached curve.

Examples:
  # Single column, two combinations
  gorcc column verify -b 400 --depth 400 -a 2513 \
      --pu 1200 --mu 180 --pu 800 --mu 240

  # Slender member
  gorcc column verify -b 300 --depth 300 -a 1810 --lu 6000 --k 1.0 \
      --pu 900 --mu 60

  # Batch from file
  gorcc column verify --file members.json`,
	Run: runColumnVerify,
}

func init() {
	columnCmd.AddCommand(columnVerifyCmd)

	columnVerifyCmd.Flags().Float64VarP(&verifyWidth, "width", "b", 0, "Column width (mm)")
	columnVerifyCmd.Flags().Float64Var(&verifyDepth, "depth", 0, "Column depth (mm)")
	columnVerifyCmd.Flags().Float64VarP(&verifyCover, "cover", "c", 0, "Effective cover to steel centroid (mm)")
	columnVerifyCmd.Flags().Float64Var(&verifyFc, "fc", 0, "Concrete compressive strength f'c (MPa)")
	columnVerifyCmd.Flags().Float64Var(&verifyFy, "fy", 0, "Steel yield strength fy (MPa)")
	columnVerifyCmd.Flags().Float64VarP(&verifyAs, "as", "a", 0, "Total longitudinal steel area Ast (mm²)")

	columnVerifyCmd.Flags().Float64SliceVar(&verifyPu, "pu", nil, "Factored axial load (kN, + = compression); repeatable")
	columnVerifyCmd.Flags().Float64SliceVar(&verifyMu, "mu", nil, "Factored moment (kN-m); repeatable, paired with --pu")

	columnVerifyCmd.Flags().Float64Var(&verifyLu, "lu", 0, "Unsupported length (mm); enables the slenderness check")
	columnVerifyCmd.Flags().Float64Var(&verifyK, "k", 0, "Effective length factor")
	columnVerifyCmd.Flags().Float64Var(&verifyCm, "cm", 0, "Moment equivalence factor Cm")
	columnVerifyCmd.Flags().StringVar(&verifyCat, "category", "tied-column", "Element category: tied-column, spiral-column or wall")

	columnVerifyCmd.Flags().IntVar(&verifyPoints, "points", 0, "Number of neutral-axis samples")
	columnVerifyCmd.Flags().StringVar(&verifyFile, "file", "", "JSON member definition file for batch verification")
	columnVerifyCmd.Flags().StringVarP(&verifyOutput, "output", "o", "", "Export the diagram with demand points (.png, .svg, .pdf)")
}

func runColumnVerify(cmd *cobra.Command, args []string) {
	defaults := loadDefaults()
	if verifyPoints <= 0 {
		verifyPoints = defaults.Points
	}

	if verifyFile != "" {
		runBatchVerify(verifyFile, verifyPoints)
		return
	}

	applyMaterialDefaults(defaults, &verifyFc, &verifyFy, &verifyCover)

	if verifyWidth <= 0 || verifyDepth <= 0 || verifyAs <= 0 {
		fmt.Println("Error: --width, --depth and --as are required unless --file is given")
		return
	}
	if len(verifyPu) == 0 || len(verifyPu) != len(verifyMu) {
		fmt.Println("Error: --pu and --mu must be given in equal numbers")
		return
	}

	demands := make([]column.DemandPoint, len(verifyPu))
	for i := range verifyPu {
		demands[i] = column.DemandPoint{
			Pu:    verifyPu[i],
			Mu:    verifyMu[i],
			Label: fmt.Sprintf("C%d", i+1),
		}
	}

	member := column.Member{
		Name: fmt.Sprintf("%.0fx%.0f", verifyWidth, verifyDepth),
		Section: *column.NewColumn(
			verifyWidth, verifyDepth, verifyCover, verifyFc, verifyFy, verifyAs),
		Category: verifyCat,
		Lu:       verifyLu,
		K:        verifyK,
		Cm:       verifyCm,
		Demands:  demands,
	}

	cache := column.NewCurveCache()
	result, err := column.VerifyMember(cache, member, verifyPoints)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printMemberResult(result)

	if verifyOutput != "" && !result.Unstable && !result.Rejected {
		curve, err := cache.Get(&member.Section, column.ParseCategory(verifyCat), verifyPoints)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := exportDiagram(curve, demands, member.Name, verifyOutput); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
		fmt.Printf("  Diagram saved to %s\n\n", verifyOutput)
	}
}

func runBatchVerify(filename string, points int) {
	members, err := column.LoadMembers(filename)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	log.Debugf("loaded %d members from %s", len(members), filename)

	cache := column.NewCurveCache()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BATCH COLUMN VERIFICATION - NSCP 2015")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Member\tSF\tCritical Combo\tPu (kN)\tMu (kN-m)\tStatus\n")
	for _, m := range members {
		result, err := column.VerifyMember(cache, m, points)
		if err != nil {
			fmt.Fprintf(w, "  %s\t-\t-\t-\t-\tERROR: %v\n", m.Name, err)
			continue
		}
		if result.Unstable || result.Rejected {
			fmt.Fprintf(w, "  %s\t-\t-\t-\t-\t%s\n", m.Name, result.Status())
			continue
		}
		vr := result.Verification
		fmt.Fprintf(w, "  %s\t%s\t%s\t%.1f\t%.1f\t%s\n",
			m.Name, formatSF(vr.SafetyFactor), vr.CriticalLabel,
			vr.CriticalPu, vr.CriticalMu, result.Status())
	}
	w.Flush()

	log.Debugf("curve cache held %d distinct sections", cache.Len())
	fmt.Println()
}

func printMemberResult(result column.MemberResult) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     COLUMN VERIFICATION - NSCP 2015")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if sr := result.Slenderness; sr != nil {
		fmt.Println("SLENDERNESS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  k·lu/r (λ):\t%.1f\n", sr.Lambda)
		fmt.Fprintf(w, "  Slender:\t%v\n", sr.IsSlender)
		fmt.Fprintf(w, "  Pc:\t%.1f kN\n", sr.Pc)
		if sr.Unstable {
			fmt.Fprintf(w, "  δns:\t∞ (unstable)\n")
		} else {
			fmt.Fprintf(w, "  δns:\t%.3f\n", sr.DeltaNs)
		}
		fmt.Fprintf(w, "  Reduction factor:\t%.3f\n", sr.ReductionFactor)
		w.Flush()
		fmt.Println()
	}

	if result.Unstable {
		fmt.Println(diagram.DrawSummaryBox("VERIFICATION RESULT", []string{
			"Status: UNSTABLE",
			"Pu ≥ 0.75·Pc — the member buckles before reaching",
			"its cross-section capacity. Increase the section or",
			"reduce the unsupported length.",
		}))
		return
	}
	if result.Rejected {
		fmt.Println(diagram.DrawSummaryBox("VERIFICATION RESULT", []string{
			"Status: REJECTED",
			"k·lu/(32t) ≥ 1 — slenderness beyond the empirical",
			"method's range. The member is inadmissible as sized.",
		}))
		return
	}

	vr := result.Verification
	lines := []string{
		fmt.Sprintf("Status: %s", result.Status()),
		fmt.Sprintf("Safety factor = %s", formatSF(vr.SafetyFactor)),
		fmt.Sprintf("Critical combo: %s (Pu=%.1f kN, Mu=%.1f kN-m)",
			vr.CriticalLabel, vr.CriticalPu, vr.CriticalMu),
		fmt.Sprintf("φMn at P=0      = %.1f kN-m", vr.PhiMnAtZeroP),
		fmt.Sprintf("φMn at critical Pu = %.1f kN-m", vr.PhiMnAtCriticalPu),
	}
	if vr.ExceedsAxialCapacity {
		lines = append(lines, "⚠ A combination exceeds the axial capacity φPn,max")
	}
	if vr.NetTension {
		lines = append(lines, fmt.Sprintf("⚠ %d combination(s) put the member in net tension", vr.NetTensionCount))
	}
	if vr.WorstTier != column.TierRay {
		lines = append(lines, fmt.Sprintf("⚠ Fallback evaluation used: %s", vr.WorstTier))
		log.Debugf("geometric fallback tier %s used", vr.WorstTier)
	}
	fmt.Println(diagram.DrawSummaryBox("VERIFICATION RESULT", lines))
}

func formatSF(sf float64) string {
	if math.IsInf(sf, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.3f", sf)
}
