package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"
)

// SectionData holds what the ASCII column section diagram needs.
type SectionData struct {
	// Section dimensions (mm)
	Width float64
	Depth float64

	// Reinforcement layer positions from the compression face (mm)
	LayerDepths []float64

	// Balanced neutral axis depth (mm), drawn as reference
	BalancedC float64
}

// DrawASCIISection renders the column cross-section with its reinforcement
// layers and the balanced neutral axis.
func DrawASCIISection(data SectionData) string {
	var sb strings.Builder

	widthChars := 24
	depthChars := 16

	layerLines := make(map[int]bool)
	for _, d := range data.LayerDepths {
		line := int(d / data.Depth * float64(depthChars))
		if line <= 0 {
			line = 1
		}
		if line >= depthChars {
			line = depthChars - 1
		}
		layerLines[line] = true
	}
	naLine := int(data.BalancedC / data.Depth * float64(depthChars))

	sb.WriteString("\n")
	sb.WriteString("  COLUMN SECTION  (compression face on top)\n")
	sb.WriteString("  ──────────────\n")

	for i := 0; i <= depthChars; i++ {
		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", widthChars)))
		case i == depthChars:
			sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars)))
		default:
			fill := strings.Repeat(" ", widthChars)
			if layerLines[i] {
				mid := widthChars / 2
				fill = fill[:mid-3] + "●────●" + fill[mid+3:]
			}
			sb.WriteString(fmt.Sprintf("  │%s│", fill))
			if i == naLine {
				sb.WriteString(" ◄─ balanced N.A.")
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString(fmt.Sprintf("\n  b = %.0f mm, h = %.0f mm, cb = %.1f mm\n",
		data.Width, data.Depth, data.BalancedC))

	return sb.String()
}

// DrawCurveSweep plots the design axial and moment strengths along the
// curve sweep, compression apex first. The axial series decreasing
// monotonically is a quick visual sanity check on the curve ordering.
func DrawCurveSweep(phiPn, phiMn []float64) string {
	plot := asciigraph.PlotMany(
		[][]float64{phiPn, phiMn},
		asciigraph.Height(14),
		asciigraph.Width(60),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
		asciigraph.SeriesLegends("φPn (kN)", "φMn (kN-m)"),
		asciigraph.Caption("interaction curve sweep, compression apex → tension apex"),
	)
	return "\n" + plot + "\n"
}

// DrawSummaryBox creates a summary box for results. Widths are measured in
// runes so lines with multibyte glyphs (φ, δ, ∞, ⚠) keep the borders
// aligned.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", padRunes(title, maxLen-2)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", padRunes(line, maxLen-2)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// padRunes left-aligns s in a field of width runes.
func padRunes(s string, width int) string {
	if pad := width - utf8.RuneCountInString(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
