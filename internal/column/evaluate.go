package column

import "math"

// DemandPoint is one factored load combination acting on the member.
type DemandPoint struct {
	Pu    float64 `json:"pu"` // kN (+ = compression)
	Mu    float64 `json:"mu"` // kN-m (magnitude)
	Label string  `json:"label,omitempty"`
}

// FallbackTier records how the safety factor was obtained. Anything above
// TierRay signals reduced geometric precision and is surfaced in results.
type FallbackTier int

const (
	// TierRay is the primary path: exact ray/segment intersection.
	TierRay FallbackTier = iota
	// TierNearestAngle is used when no segment intersects the demand ray;
	// the nearest curve point within an angular tolerance stands in for the
	// boundary.
	TierNearestAngle
	// TierPolygon is the last resort: a point-in-polygon test with fixed
	// conservative safety factors.
	TierPolygon
)

func (t FallbackTier) String() string {
	switch t {
	case TierRay:
		return "ray-intersection"
	case TierNearestAngle:
		return "nearest-angle"
	case TierPolygon:
		return "point-in-polygon"
	}
	return "unknown"
}

const (
	// Segment-parameter slack for the ray intersection; lets demand rays
	// passing exactly through a curve vertex register on either segment.
	segmentSlack = 0.001

	// Angular tolerance for the tier-1 fallback (radians, ~15°).
	angleTolerance = 15 * math.Pi / 180

	// Fixed safety factors for the tier-2 fallback. Placeholder values
	// with no code derivation; kept as-is deliberately.
	fallbackAmpleSF        = 10.0
	fallbackInsufficientSF = 0.1

	// A safety factor this close to 1.0 still counts as on or inside the
	// boundary.
	insideTolerance = 0.999
)

// Evaluation is the outcome of a single demand-versus-capacity check.
type Evaluation struct {
	SF     float64      // scale factor to the capacity boundary; +Inf for zero demand
	Inside bool         // demand point enclosed by the curve
	Tier   FallbackTier // how SF was obtained
}

// SafetyFactor computes how far the demand vector (Mu, Pu) can be scaled
// before it crosses the capacity boundary. The curve is treated as a
// piecewise-linear boundary in the (φMn, φPn) plane, star-shaped about the
// origin. Numerical edge cases never fail; they degrade through the
// fallback tiers instead.
func SafetyFactor(ic InteractionCurve, dp DemandPoint) Evaluation {
	r := math.Hypot(dp.Mu, dp.Pu)
	if r < 1e-9 {
		// No demand: any section, however small, is adequate.
		return Evaluation{SF: math.Inf(1), Inside: true, Tier: TierRay}
	}

	// The ray is parametrized as t·(Mu, Pu), so the demand point itself
	// sits at t = 1 and the first boundary crossing is the safety factor.
	if t, ok := rayIntersection(ic, dp.Mu, dp.Pu); ok {
		return Evaluation{SF: t, Inside: t >= insideTolerance, Tier: TierRay}
	}

	if dist, ok := nearestByAngle(ic, dp.Mu, dp.Pu); ok {
		sf := dist / r
		return Evaluation{SF: sf, Inside: sf >= insideTolerance, Tier: TierNearestAngle}
	}

	if pointInCurve(ic, dp.Mu, dp.Pu) {
		return Evaluation{SF: fallbackAmpleSF, Inside: true, Tier: TierPolygon}
	}
	return Evaluation{SF: fallbackInsufficientSF, Inside: false, Tier: TierPolygon}
}

// rayIntersection finds the smallest t > 0 where t·(mu, pu) crosses a curve
// segment, solving the 2×2 linear system per segment.
func rayIntersection(ic InteractionCurve, mu, pu float64) (float64, bool) {
	best := math.Inf(1)
	found := false

	for i := 0; i+1 < len(ic); i++ {
		x1, y1 := ic[i].PhiMn, ic[i].PhiPn
		dx := ic[i+1].PhiMn - x1
		dy := ic[i+1].PhiPn - y1

		// t·mu = x1 + s·dx
		// t·pu = y1 + s·dy
		det := dx*pu - dy*mu
		if math.Abs(det) < 1e-12 {
			continue // ray parallel to segment
		}
		t := (dx*y1 - dy*x1) / det
		s := (mu*y1 - pu*x1) / det

		if t > 0 && s >= -segmentSlack && s <= 1+segmentSlack && t < best {
			best = t
			found = true
		}
	}
	return best, found
}

// nearestByAngle finds the distance from the origin to the curve point whose
// direction is closest to the demand ray, within the angular tolerance.
func nearestByAngle(ic InteractionCurve, mu, pu float64) (float64, bool) {
	demandAngle := math.Atan2(pu, mu)

	bestDelta := math.Inf(1)
	var bestDist float64
	for _, p := range ic {
		if p.PhiMn == 0 && p.PhiPn == 0 {
			continue
		}
		delta := math.Abs(angleDiff(math.Atan2(p.PhiPn, p.PhiMn), demandAngle))
		if delta <= angleTolerance && delta < bestDelta {
			bestDelta = delta
			bestDist = math.Hypot(p.PhiMn, p.PhiPn)
		}
	}
	return bestDist, !math.IsInf(bestDelta, 1)
}

// angleDiff normalizes the difference between two angles to [-π, π].
func angleDiff(a, b float64) float64 {
	d := a - b
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// pointInCurve runs a crossing-number test on the closed polygon formed by
// the curve points.
func pointInCurve(ic InteractionCurve, mu, pu float64) bool {
	n := len(ic)
	if n < 3 {
		return false
	}

	inside := false
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		x1, y1 := ic[i].PhiMn, ic[i].PhiPn
		x2, y2 := ic[j].PhiMn, ic[j].PhiPn

		if (y1 <= pu && y2 > pu) || (y2 <= pu && y1 > pu) {
			xCross := x1 + (pu-y1)/(y2-y1)*(x2-x1)
			if mu < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// PhiMnAtZeroP returns the design moment capacity at zero axial load,
// interpolated between the nearest positive-P and negative-P curve points.
func PhiMnAtZeroP(ic InteractionCurve) float64 {
	return PhiMnAtP(ic, 0)
}

// PhiMnAtP returns the design moment capacity at the given axial load,
// interpolating between the bracketing curve points. Axial loads outside
// the curve's range are clamped, not extrapolated.
func PhiMnAtP(ic InteractionCurve, pu float64) float64 {
	if len(ic) == 0 {
		return 0
	}

	// φPn is descending along the curve.
	if pu >= ic[0].PhiPn {
		return ic[0].PhiMn
	}
	if pu <= ic[len(ic)-1].PhiPn {
		return ic[len(ic)-1].PhiMn
	}

	for i := 0; i+1 < len(ic); i++ {
		hi, lo := ic[i], ic[i+1]
		if pu <= hi.PhiPn && pu >= lo.PhiPn {
			span := hi.PhiPn - lo.PhiPn
			if span < 1e-9 {
				return hi.PhiMn
			}
			frac := (hi.PhiPn - pu) / span
			return hi.PhiMn + frac*(lo.PhiMn-hi.PhiMn)
		}
	}
	return ic[len(ic)-1].PhiMn
}
