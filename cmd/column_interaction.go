package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcc/internal/column"
	"github.com/alexiusacademia/gorcc/internal/diagram"
	"github.com/alexiusacademia/gorcc/internal/nscp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Interaction inputs
	interWidth  float64
	interDepth  float64
	interCover  float64
	interFc     float64
	interFy     float64
	interAs     float64
	interCat    string
	interPoints int
	interOutput string
)

var columnInteractionCmd = &cobra.Command{
	Use:   "interaction",
	Short: "Build the P-M interaction curve for a rectangular column",
	Long: `Sweep the neutral-axis depth through the section to assemble the
P-M interaction curve, from the pure compression apex to the pure
tension apex.

The analysis follows NSCP 2015 provisions:
  - Section 410.2.7.3: Equivalent rectangular stress block
  - Section 421.2.2:   Strength reduction factors
  - Section 422.4.2:   Maximum axial strength cap

Examples:
  # 400x400mm column with 8-20mm bars (As = 2513 mm²)
  gorcc column interaction --width 400 --depth 400 --cover 65 --fc 28 --fy 415 --as 2513

  # Export the diagram to a PNG
  gorcc column interaction -b 400 --depth 400 -a 2513 --output pm.png`,
	Run: runColumnInteraction,
}

func init() {
	columnCmd.AddCommand(columnInteractionCmd)

	// Geometry flags
	columnInteractionCmd.Flags().Float64VarP(&interWidth, "width", "b", 0, "Column width, perpendicular to bending (mm) [required]")
	columnInteractionCmd.Flags().Float64Var(&interDepth, "depth", 0, "Column depth, along bending axis (mm) [required]")
	columnInteractionCmd.Flags().Float64VarP(&interCover, "cover", "c", 0, "Effective cover to steel centroid (mm)")

	// Material flags
	columnInteractionCmd.Flags().Float64Var(&interFc, "fc", 0, "Concrete compressive strength f'c (MPa)")
	columnInteractionCmd.Flags().Float64Var(&interFy, "fy", 0, "Steel yield strength fy (MPa)")

	// Reinforcement flags
	columnInteractionCmd.Flags().Float64VarP(&interAs, "as", "a", 0, "Total longitudinal steel area Ast (mm²) [required]")
	columnInteractionCmd.Flags().StringVar(&interCat, "category", "tied-column", "Element category: tied-column, spiral-column or wall")

	// Output flags
	columnInteractionCmd.Flags().IntVar(&interPoints, "points", 0, "Number of neutral-axis samples")
	columnInteractionCmd.Flags().StringVarP(&interOutput, "output", "o", "", "Export the diagram to an image file (.png, .svg, .pdf)")

	columnInteractionCmd.MarkFlagRequired("width")
	columnInteractionCmd.MarkFlagRequired("depth")
	columnInteractionCmd.MarkFlagRequired("as")
}

func runColumnInteraction(cmd *cobra.Command, args []string) {
	defaults := loadDefaults()
	applyMaterialDefaults(defaults, &interFc, &interFy, &interCover)
	if interPoints <= 0 {
		interPoints = defaults.Points
	}

	col := column.NewColumn(interWidth, interDepth, interCover, interFc, interFy, interAs)
	col.Name = fmt.Sprintf("%.0fx%.0f", interWidth, interDepth)

	curve, err := column.BuildInteractionCurve(col, column.ParseCategory(interCat), interPoints)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	log.Debugf("built interaction curve with %d points", len(curve))

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     COLUMN INTERACTION DIAGRAM - NSCP 2015")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Input summary
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Column Width (b):\t%.0f mm\n", col.Width)
	fmt.Fprintf(w, "  Column Depth (h):\t%.0f mm\n", col.Depth)
	fmt.Fprintf(w, "  Concrete Cover:\t%.0f mm\n", interCover)
	fmt.Fprintf(w, "  f'c:\t%.1f MPa\n", col.Fc)
	fmt.Fprintf(w, "  fy:\t%.1f MPa\n", col.Fy)
	fmt.Fprintf(w, "  Total Steel (Ast):\t%.2f mm²\n", col.SteelArea())
	fmt.Fprintf(w, "  Steel Ratio (ρ):\t%.4f\n", col.SteelRatio())
	fmt.Fprintf(w, "  β1:\t%.3f\n", nscp.Beta1(col.Fc))
	w.Flush()

	rho := col.SteelRatio()
	if rho < nscp.RhoMinColumn {
		fmt.Printf("  ⚠ ρ below the column minimum of %.2f\n", nscp.RhoMinColumn)
	} else if rho > nscp.RhoMaxColumn {
		fmt.Printf("  ⚠ ρ above the column maximum of %.2f\n", nscp.RhoMaxColumn)
	}
	fmt.Println()

	// Section sketch
	depths := make([]float64, len(col.Reinforcement))
	for i, layer := range col.Reinforcement {
		depths[i] = layer.D
	}
	d := col.EffectiveDepth()
	cb := d * nscp.EpsilonCU / (nscp.EpsilonCU + col.Fy/nscp.Es)
	fmt.Println(diagram.DrawASCIISection(diagram.SectionData{
		Width:       col.Width,
		Depth:       col.Depth,
		LayerDepths: depths,
		BalancedC:   cb,
	}))

	// Curve table
	fmt.Println("INTERACTION CURVE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  c (mm)\tεt\tφ\tPn (kN)\tMn (kN-m)\tφPn (kN)\tφMn (kN-m)\n")
	for _, p := range curve {
		fmt.Fprintf(w, "  %.1f\t%.4f\t%.3f\t%.1f\t%.1f\t%.1f\t%.1f\n",
			p.C, p.EpsilonT, p.Phi, p.Pn, p.Mn, p.PhiPn, p.PhiMn)
	}
	w.Flush()

	// Sweep plot
	phiPn := make([]float64, len(curve))
	phiMn := make([]float64, len(curve))
	for i, p := range curve {
		phiPn[i] = p.PhiPn
		phiMn[i] = p.PhiMn
	}
	fmt.Println(diagram.DrawCurveSweep(phiPn, phiMn))

	// Summary
	fmt.Println(diagram.DrawSummaryBox("CAPACITY SUMMARY", []string{
		fmt.Sprintf("φPn,max = %.1f kN (compression apex)", curve.MaxPhiPn()),
		fmt.Sprintf("φPn,min = %.1f kN (tension apex)", curve.MinPhiPn()),
		fmt.Sprintf("φMn at P=0 = %.1f kN-m", column.PhiMnAtZeroP(curve)),
	}))

	if interOutput != "" {
		if err := exportDiagram(curve, nil, col.Name, interOutput); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
		fmt.Printf("  Diagram saved to %s\n\n", interOutput)
	}
}

// applyMaterialDefaults fills zero-valued material/cover flags from the
// config defaults.
func applyMaterialDefaults(defaults Defaults, fc, fy, cover *float64) {
	if *fc <= 0 {
		*fc = defaults.Fc
	}
	if *fy <= 0 {
		*fy = defaults.Fy
	}
	if *cover <= 0 {
		*cover = defaults.Cover
	}
}

// exportDiagram renders the curve (and optionally demands) to an image file.
func exportDiagram(curve column.InteractionCurve, demands []column.DemandPoint, title, filename string) error {
	data := diagram.InteractionDiagramData{
		Title: fmt.Sprintf("Column %s - Interaction Diagram", title),
	}
	for _, p := range curve {
		data.Nominal = append(data.Nominal, diagram.CurvePoint{M: p.Mn, P: p.Pn})
		data.Design = append(data.Design, diagram.CurvePoint{M: p.PhiMn, P: p.PhiPn})
	}
	for _, dp := range demands {
		data.Demands = append(data.Demands, diagram.CurvePoint{M: dp.Mu, P: dp.Pu})
	}
	return diagram.ExportInteractionDiagram(data, filename)
}
