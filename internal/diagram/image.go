package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// CurvePoint is one (M, P) pair for plotting, in kN-m and kN.
type CurvePoint struct {
	M float64
	P float64
}

// InteractionDiagramData holds everything the P-M diagram export needs.
type InteractionDiagramData struct {
	Title string

	// Curves, ordered compression apex to tension apex
	Nominal []CurvePoint // (Mn, Pn)
	Design  []CurvePoint // (φMn, φPn)

	// Demand points, one per load combination
	Demands []CurvePoint
}

// ExportInteractionDiagram renders the P-M interaction diagram to an image
// file. Supported formats follow the extension (.png, .svg, .pdf); anything
// else falls back to PNG.
func ExportInteractionDiagram(data InteractionDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = data.Title
	if p.Title.Text == "" {
		p.Title.Text = "Column Interaction Diagram"
	}
	p.X.Label.Text = "Moment (kN-m)"
	p.Y.Label.Text = "Axial Load (kN)"
	p.Legend.Top = true

	nominal, err := plotter.NewLine(toXYs(data.Nominal))
	if err != nil {
		return err
	}
	nominal.LineStyle.Width = vg.Points(1)
	nominal.LineStyle.Color = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	nominal.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(nominal)
	p.Legend.Add("Nominal (Pn, Mn)", nominal)

	design, err := plotter.NewLine(toXYs(data.Design))
	if err != nil {
		return err
	}
	design.LineStyle.Width = vg.Points(2)
	design.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(design)
	p.Legend.Add("Design (φPn, φMn)", design)

	if len(data.Demands) > 0 {
		demands, err := plotter.NewScatter(toXYs(data.Demands))
		if err != nil {
			return err
		}
		demands.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		demands.GlyphStyle.Radius = vg.Points(3)
		demands.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(demands)
		p.Legend.Add("Demands (Pu, Mu)", demands)
	}

	// Zero-axial reference line
	var maxM float64
	for _, pt := range data.Design {
		if pt.M > maxM {
			maxM = pt.M
		}
	}
	zero, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: maxM * 1.1, Y: 0}})
	if err != nil {
		return err
	}
	zero.LineStyle.Width = vg.Points(0.5)
	zero.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	p.Add(zero)

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

func toXYs(pts []CurvePoint) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.M, Y: pt.P}
	}
	return xys
}
