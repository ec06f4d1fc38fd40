package column

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcc/internal/nscp"
)

// SlendernessInput describes a compression member for second-order checks.
type SlendernessInput struct {
	Lu        float64 // Unsupported length (mm)
	K         float64 // Effective length factor (default 1.0)
	Width     float64 // Section dimension perpendicular to buckling (mm)
	Thickness float64 // Minimum section dimension, in the buckling plane (mm)
	Fc        float64 // Concrete compressive strength (MPa)
	Cm        float64 // Moment equivalence factor (default 1.0)

	// Cracked-section stiffness multiplier on Ec·Ig; element-category
	// dependent (see ResolveBehavior). Default 0.70.
	StiffnessFactor float64

	Pu float64 // Factored axial load (kN, + = compression)
}

// SlendernessResult holds the slenderness classification and the
// magnification/reduction quantities derived from it.
type SlendernessResult struct {
	Lambda    float64 // k·lu/r
	IsSlender bool    // Lambda above the code limit
	K         float64 // effective length factor actually used
	Pc        float64 // Euler critical buckling load (kN)

	// Moment magnification factor, >= 1.0. +Inf when the member is
	// unstable; Unstable is the authoritative flag for that state.
	DeltaNs  float64
	Unstable bool

	// Empirical axial reduction factor, 1 - (k·lu/(32t))². Rejected marks
	// the member as inadmissible (factor forced to 0); it must propagate
	// as a hard failure, never as a near-zero capacity.
	ReductionFactor float64
	Rejected        bool
}

// AnalyzeSlenderness classifies the member and computes buckling,
// magnification and reduction quantities. Pure function; instability and
// rejection are explicit outcomes, not errors.
func AnalyzeSlenderness(in SlendernessInput) (SlendernessResult, error) {
	if in.Lu <= 0 || in.Thickness <= 0 || in.Width <= 0 {
		return SlendernessResult{}, fmt.Errorf("%w: lu=%.2f, t=%.2f, b=%.2f",
			ErrInvalidGeometry, in.Lu, in.Thickness, in.Width)
	}
	if in.Fc <= 0 {
		return SlendernessResult{}, fmt.Errorf("%w: f'c=%.2f", ErrInvalidMaterial, in.Fc)
	}

	k := in.K
	if k <= 0 {
		k = 1.0
	}
	cm := in.Cm
	if cm <= 0 {
		cm = 1.0
	}
	stiffness := in.StiffnessFactor
	if stiffness <= 0 {
		stiffness = 0.70
	}

	result := SlendernessResult{K: k}

	// Radius of gyration of the rectangular section about the buckling axis.
	r := in.Thickness / math.Sqrt(12)
	result.Lambda = k * in.Lu / r
	result.IsSlender = result.Lambda > nscp.SlendernessLimit

	// Euler critical load on the effective (cracked) stiffness.
	ig := in.Width * math.Pow(in.Thickness, 3) / 12 // mm⁴
	ei := stiffness * nscp.Ec(in.Fc) * ig           // N·mm²
	result.Pc = math.Pi * math.Pi * ei / math.Pow(k*in.Lu, 2) / 1000 // kN

	// Moment magnification, NSCP 2015 Section 406.6.4.5.2.
	limit := 0.75 * result.Pc
	if in.Pu >= limit {
		result.DeltaNs = math.Inf(1)
		result.Unstable = true
	} else {
		result.DeltaNs = cm / (1 - in.Pu/limit)
		if result.DeltaNs < 1.0 {
			result.DeltaNs = 1.0
		}
	}

	// Empirical axial reduction for slender members. Short members take no
	// reduction even when the ratio is nominally nonzero.
	ratio := k * in.Lu / (32 * in.Thickness)
	switch {
	case ratio >= 1:
		result.ReductionFactor = 0
		result.Rejected = true
	case !result.IsSlender:
		result.ReductionFactor = 1.0
	default:
		result.ReductionFactor = 1 - ratio*ratio
	}

	return result, nil
}
