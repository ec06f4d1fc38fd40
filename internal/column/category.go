package column

import "github.com/alexiusacademia/gorcc/internal/nscp"

// ElementCategory is a closed set of compression member categories. Each
// category maps to a fixed design behavior; there is no dynamic dispatch.
type ElementCategory int

const (
	// CategoryTiedColumn is a rectangular column with lateral ties.
	CategoryTiedColumn ElementCategory = iota
	// CategorySpiralColumn is a column with spiral transverse reinforcement.
	CategorySpiralColumn
	// CategoryWall is a structural wall segment loaded in its plane.
	CategoryWall
)

func (ec ElementCategory) String() string {
	switch ec {
	case CategoryTiedColumn:
		return "tied-column"
	case CategorySpiralColumn:
		return "spiral-column"
	case CategoryWall:
		return "wall"
	}
	return "unknown"
}

// Behavior is the resolved design behavior for an element category.
type Behavior struct {
	// Cracked-section stiffness multiplier on Ec·Ig for buckling
	// (NSCP 2015 Table 406.6.3.1.1(a)).
	StiffnessFactor float64

	// Default effective length factor for braced members.
	DefaultK float64

	// Maximum axial strength factor on P0 (tied vs spiral).
	AxialCap float64

	// Compression-controlled strength reduction factor (tied vs spiral).
	PhiCompression float64

	// Whether the empirical slenderness reduction applies.
	AppliesSlendernessReduction bool
}

// ResolveBehavior maps a category to its design behavior. The cap and φ
// floor feed the curve builder; the stiffness factor and default k feed the
// slenderness analysis.
func ResolveBehavior(ec ElementCategory) Behavior {
	switch ec {
	case CategorySpiralColumn:
		return Behavior{
			StiffnessFactor:             0.70,
			DefaultK:                    1.0,
			AxialCap:                    nscp.AxialCapSpiral,
			PhiCompression:              nscp.PhiCompressionSp,
			AppliesSlendernessReduction: true,
		}
	case CategoryWall:
		return Behavior{
			StiffnessFactor:             0.35,
			DefaultK:                    0.8,
			AxialCap:                    nscp.AxialCapTied,
			PhiCompression:              nscp.PhiCompression,
			AppliesSlendernessReduction: true,
		}
	default: // CategoryTiedColumn
		return Behavior{
			StiffnessFactor:             0.70,
			DefaultK:                    1.0,
			AxialCap:                    nscp.AxialCapTied,
			PhiCompression:              nscp.PhiCompression,
			AppliesSlendernessReduction: true,
		}
	}
}
