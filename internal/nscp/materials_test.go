package nscp

import (
	"math"
	"testing"
)

func TestBeta1(t *testing.T) {
	cases := []struct {
		name string
		fc   float64
		want float64
	}{
		{"LowStrength", 21, 0.85},
		{"AtLimit", 28, 0.85},
		{"Interpolated", 35, 0.80},
		{"ClampedToMin", 70, 0.65},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Beta1(tc.fc)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Beta1(%.0f) = %.4f; want %.4f", tc.fc, got, tc.want)
			}
		})
	}
}

func TestPhi(t *testing.T) {
	const fy = 415.0
	epsY := fy / Es // 0.002075

	cases := []struct {
		name string
		eps  float64
		phiC float64
		want float64
	}{
		{"CompressionControlled", epsY / 2, PhiCompression, PhiCompression},
		{"AtYield", epsY, PhiCompression, PhiCompression},
		{"TensionControlled", epsY + 0.003, PhiCompression, PhiFlexure},
		{"WellPastYield", 0.010, PhiCompression, PhiFlexure},
		{"TransitionMidpoint", epsY + 0.0015, PhiCompression, (PhiCompression + PhiFlexure) / 2},
		{"SpiralCompressionControlled", epsY / 2, PhiCompressionSp, PhiCompressionSp},
		{"SpiralTensionControlled", epsY + 0.003, PhiCompressionSp, PhiFlexure},
		{"SpiralTransitionMidpoint", epsY + 0.0015, PhiCompressionSp, (PhiCompressionSp + PhiFlexure) / 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Phi(tc.eps, fy, tc.phiC)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Phi(%.5f, %.0f, %.2f) = %.4f; want %.4f",
					tc.eps, fy, tc.phiC, got, tc.want)
			}
		})
	}
}

func TestEc(t *testing.T) {
	got := Ec(25)
	want := 4700 * 5.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Ec(25) = %.1f; want %.1f", got, want)
	}
}

func TestMaxAxialStrength(t *testing.T) {
	// 200x3000 section with 3000 mm² of steel, hand-calculated.
	got := MaxAxialStrength(25, 420, 200*3000, 3000)
	want := 0.85*25*(600000-3000) + 420*3000
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("MaxAxialStrength = %.1f N; want %.1f N", got, want)
	}
}
