package nscp

import "math"

// NSCP 2015 Material Constants

const (
	// Beta1 factors for equivalent rectangular stress block
	// Section 410.2.7.3
	Beta1Max = 0.85 // for f'c <= 28 MPa
	Beta1Min = 0.65 // minimum value

	// Strain limits
	EpsilonCU = 0.003 // Ultimate concrete strain (Section 410.2.2.1)

	// Strength reduction factors (Section 421.2)
	PhiFlexure       = 0.90 // Tension-controlled sections
	PhiCompression   = 0.65 // Compression-controlled (tied)
	PhiCompressionSp = 0.75 // Compression-controlled (spiral)

	// Maximum axial strength factors (Section 422.4.2.1)
	AxialCapTied   = 0.80 // tied columns: Pn,max = 0.80 P0
	AxialCapSpiral = 0.85 // spiral columns: Pn,max = 0.85 P0

	// Column longitudinal reinforcement limits (Section 410.6.1.1)
	RhoMinColumn = 0.01
	RhoMaxColumn = 0.08

	// Slenderness limit for compression members braced against sidesway
	// (Section 406.2.5). Above this, second-order effects must be considered.
	SlendernessLimit = 22.0

	// Modulus of elasticity for steel (Section 420.2.2)
	Es = 200000.0 // MPa
)

// Beta1 calculates the factor for equivalent rectangular stress block
// NSCP 2015 Section 410.2.7.3
func Beta1(fc float64) float64 {
	if fc <= 28 {
		return Beta1Max
	}
	// β1 = 0.85 - 0.05(f'c - 28)/7 for f'c > 28 MPa
	beta1 := Beta1Max - 0.05*(fc-28)/7
	return math.Max(beta1, Beta1Min)
}

// Ec calculates the modulus of elasticity of normal-weight concrete
// NSCP 2015 Section 419.2.2.1: Ec = 4700·√f'c (MPa)
func Ec(fc float64) float64 {
	return 4700 * math.Sqrt(fc)
}

// Phi calculates the strength reduction factor based on the extreme
// tension steel strain, interpolating from the compression-controlled
// floor (0.65 tied, 0.75 spiral) up to 0.90
// NSCP 2015 Section 421.2.2 and Table 421.2.2
func Phi(epsilonT, fy, phiCompression float64) float64 {
	epsilonTY := fy / Es

	if epsilonT >= epsilonTY+0.003 {
		// Tension-controlled
		return PhiFlexure
	} else if epsilonT <= epsilonTY {
		// Compression-controlled
		return phiCompression
	}
	// Transition zone
	return phiCompression + (PhiFlexure-phiCompression)*(epsilonT-epsilonTY)/0.003
}

// MaxAxialStrength calculates P0, the nominal axial strength at zero
// eccentricity, NSCP 2015 Section 422.4.2.2
// Ag and Ast in mm², strengths in MPa; result in N
func MaxAxialStrength(fc, fy, ag, ast float64) float64 {
	return 0.85*fc*(ag-ast) + fy*ast
}
