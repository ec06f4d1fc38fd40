package column

import (
	"math"
	"sort"

	"github.com/alexiusacademia/gorcc/internal/nscp"
)

// DefaultCurvePoints is the default number of neutral-axis samples used to
// trace the interaction curve between the two apexes.
const DefaultCurvePoints = 50

// cFloor is the smallest neutral-axis depth sampled (mm). Depths below this
// are numerically degenerate (strains blow up) and are skipped.
const cFloor = 1.0

// CapacityPoint is one point on the P-M interaction curve.
type CapacityPoint struct {
	Pn       float64 // Nominal axial strength (kN, + = compression)
	Mn       float64 // Nominal moment strength (kN-m, always >= 0)
	Phi      float64 // Strength reduction factor
	PhiPn    float64 // Design axial strength (kN)
	PhiMn    float64 // Design moment strength (kN-m)
	C        float64 // Neutral axis depth (mm)
	EpsilonT float64 // Extreme tension steel strain
}

// InteractionCurve is an ordered sequence of capacity points, from the pure
// compression apex (M=0, max φPn) down to the pure tension apex (M=0, min
// φPn). φPn is non-increasing along the sequence. Curves are derived purely
// from the section definition and must never be mutated after creation;
// adjustments (e.g. slenderness reduction) produce a new curve.
type InteractionCurve []CapacityPoint

// BuildInteractionCurve sweeps the neutral-axis depth to assemble the
// interaction curve for the section. The category sets the axial cap and the
// compression-controlled φ (tied 0.80/0.65, spiral 0.85/0.75). numPoints <= 0
// uses DefaultCurvePoints. Identical inputs always produce an identical
// point sequence.
func BuildInteractionCurve(col *Column, cat ElementCategory, numPoints int) (InteractionCurve, error) {
	if err := col.Validate(); err != nil {
		return nil, err
	}
	if numPoints <= 0 {
		numPoints = DefaultCurvePoints
	}
	behavior := ResolveBehavior(cat)

	b := col.Width
	h := col.Depth
	beta1 := nscp.Beta1(col.Fc)
	ag := col.GrossArea()
	ast := col.SteelArea()
	d := col.EffectiveDepth()
	if d <= 0 {
		// No reinforcement positions to control the sweep; use the full depth.
		d = h
	}

	// Pure compression apex, capped per code at 0.80 P0 (tied, walls) or
	// 0.85 P0 (spiral).
	p0 := nscp.MaxAxialStrength(col.Fc, col.Fy, ag, ast) // N
	pnMax := behavior.AxialCap * p0

	points := make(InteractionCurve, 0, numPoints+2)
	points = append(points, CapacityPoint{
		Pn:       pnMax / 1000,
		Mn:       0,
		Phi:      behavior.PhiCompression,
		PhiPn:    behavior.PhiCompression * pnMax / 1000,
		PhiMn:    0,
		C:        10 * d, // top of the sweep; strictly c -> ∞
		EpsilonT: 0,
	})

	// Balanced neutral axis depth.
	epsilonY := col.Fy / nscp.Es
	cb := d * nscp.EpsilonCU / (nscp.EpsilonCU + epsilonY)

	for _, c := range sampleDepths(d, cb, numPoints) {
		points = append(points, capacityAt(col, b, h, beta1, pnMax, behavior.PhiCompression, c))
	}

	// Pure tension apex: all layers yielding in tension. With no steel this
	// degenerates to (0, 0).
	pt := -ast * col.Fy // N
	points = append(points, CapacityPoint{
		Pn:       pt / 1000,
		Mn:       0,
		Phi:      nscp.PhiFlexure,
		PhiPn:    nscp.PhiFlexure * pt / 1000,
		PhiMn:    0,
		C:        0,
		EpsilonT: nscp.EpsilonCU + epsilonY, // nominal; section fully cracked
	})

	// Descending φPn. Stable: equal values at zone boundaries keep their
	// sweep order.
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].PhiPn > points[j].PhiPn
	})

	return points, nil
}

// sampleDepths builds the neutral-axis sampling schedule in three zones:
// compression-dominant (10d down to d), transition (d down to cb) and
// tension-controlled (cb down to the numeric floor). The union is deduped
// and sorted descending.
func sampleDepths(d, cb float64, numPoints int) []float64 {
	perZone := numPoints / 3
	if perZone < 2 {
		perZone = 2
	}

	var samples []float64
	samples = appendLinspace(samples, 10*d, d, perZone)
	samples = appendLinspace(samples, d, cb, perZone)
	samples = appendLinspace(samples, cb, cFloor, perZone)

	sort.Sort(sort.Reverse(sort.Float64Slice(samples)))

	deduped := samples[:0]
	for i, c := range samples {
		if c < cFloor {
			continue
		}
		if i > 0 && math.Abs(c-samples[i-1]) < 1e-9 {
			continue
		}
		deduped = append(deduped, c)
	}
	return deduped
}

// appendLinspace appends n evenly spaced values from start to end inclusive.
func appendLinspace(dst []float64, start, end float64, n int) []float64 {
	step := (end - start) / float64(n-1)
	for i := 0; i < n; i++ {
		dst = append(dst, start+float64(i)*step)
	}
	return dst
}

// capacityAt computes the capacity point for one neutral-axis depth c using
// strain compatibility and the equivalent rectangular stress block. phiC is
// the category's compression-controlled φ floor.
func capacityAt(col *Column, b, h, beta1, pnMax, phiC, c float64) CapacityPoint {
	// Whitney stress block, never deeper than the section.
	a := beta1 * c
	if a > h {
		a = h
	}

	// Concrete contribution about the section centroid.
	cc := 0.85 * col.Fc * a * b  // N
	mc := cc * (h - a) / 2       // N-mm

	var steelP, steelM, maxTension float64
	for _, layer := range col.Reinforcement {
		// Linear strain profile, + = tension.
		strain := nscp.EpsilonCU * (layer.D - c) / c

		// Elasto-plastic steel.
		stress := strain * nscp.Es
		if stress > col.Fy {
			stress = col.Fy
		} else if stress < -col.Fy {
			stress = -col.Fy
		}

		force := layer.Area * stress // N, + = tension
		if layer.D <= a && stress < 0 {
			// Layer embedded in the compression block: the displaced
			// concrete is already counted in Cc.
			force = layer.Area * (stress + 0.85*col.Fc)
		}

		// Tension subtracts from the axial capacity.
		steelP -= force
		// Both tension steel below the centroid and compression steel
		// above it contribute positive moment.
		steelM += force * (layer.D - h/2)

		if strain > maxTension {
			maxTension = strain
		}
	}

	pn := cc + steelP
	if pn > pnMax {
		pn = pnMax
	}
	mn := math.Abs(mc + steelM)
	phi := nscp.Phi(maxTension, col.Fy, phiC)

	return CapacityPoint{
		Pn:       pn / 1000,
		Mn:       mn / 1e6,
		Phi:      phi,
		PhiPn:    phi * pn / 1000,
		PhiMn:    phi * mn / 1e6,
		C:        c,
		EpsilonT: maxTension,
	}
}

// MaxPhiPn returns the design axial capacity at the compression apex.
func (ic InteractionCurve) MaxPhiPn() float64 {
	if len(ic) == 0 {
		return 0
	}
	return ic[0].PhiPn
}

// MinPhiPn returns the design axial capacity at the tension apex.
func (ic InteractionCurve) MinPhiPn() float64 {
	if len(ic) == 0 {
		return 0
	}
	return ic[len(ic)-1].PhiPn
}

// Reduced returns a new curve with every strength quantity scaled by factor.
// The receiver is left untouched, so cached curves stay safe under
// concurrent readers.
func (ic InteractionCurve) Reduced(factor float64) InteractionCurve {
	reduced := make(InteractionCurve, len(ic))
	for i, p := range ic {
		p.Pn *= factor
		p.Mn *= factor
		p.PhiPn *= factor
		p.PhiMn *= factor
		reduced[i] = p
	}
	return reduced
}
