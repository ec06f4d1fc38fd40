package column

import "math"

// VerificationResult is the outcome of checking a demand set against an
// interaction curve. Numerical edge cases land in the flags, never in an
// error.
type VerificationResult struct {
	SafetyFactor float64 // governing (minimum) SF over all combinations
	OK           bool    // SafetyFactor >= 1.0, within tolerance

	// Governing combination
	CriticalLabel string
	CriticalPu    float64 // kN
	CriticalMu    float64 // kN-m

	// Interpolated capacities for reporting
	PhiMnAtZeroP      float64 // kN-m, design moment capacity at P = 0
	PhiMnAtCriticalPu float64 // kN-m, design moment capacity at the critical Pu

	// Flags for upstream rule dispatchers
	ExceedsAxialCapacity bool
	NetTension           bool
	NetTensionCount      int

	// Worst fallback tier used across the demand set; anything above
	// TierRay signals reduced geometric precision.
	WorstTier FallbackTier
}

// CheckFlexure evaluates every demand point against the curve and reports
// the governing result. An empty demand set verifies trivially.
func CheckFlexure(ic InteractionCurve, demands []DemandPoint) VerificationResult {
	result := VerificationResult{
		SafetyFactor: math.Inf(1),
		OK:           true,
		PhiMnAtZeroP: PhiMnAtZeroP(ic),
	}

	maxPhiPn := ic.MaxPhiPn()

	for _, dp := range demands {
		ev := SafetyFactor(ic, dp)

		if ev.Tier > result.WorstTier {
			result.WorstTier = ev.Tier
		}
		if dp.Pu > maxPhiPn {
			result.ExceedsAxialCapacity = true
		}
		if dp.Pu < 0 {
			result.NetTension = true
			result.NetTensionCount++
		}

		if ev.SF < result.SafetyFactor {
			result.SafetyFactor = ev.SF
			result.CriticalLabel = dp.Label
			result.CriticalPu = dp.Pu
			result.CriticalMu = dp.Mu
		}
	}

	// Same tolerance the evaluator uses, so a demand sitting exactly on
	// the boundary verifies as adequate.
	result.OK = result.SafetyFactor >= insideTolerance
	result.PhiMnAtCriticalPu = PhiMnAtP(ic, result.CriticalPu)

	return result
}

// Status renders the pass/fail state the way reports print it.
func (vr VerificationResult) Status() string {
	if vr.OK {
		return "OK"
	}
	return "NOT OK"
}
