package column

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeSlendernessValidation(t *testing.T) {
	_, err := AnalyzeSlenderness(SlendernessInput{Lu: 0, Width: 300, Thickness: 300, Fc: 28})
	require.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = AnalyzeSlenderness(SlendernessInput{Lu: 3000, Width: 300, Thickness: 300, Fc: 0})
	require.ErrorIs(t, err, ErrInvalidMaterial)
}

func TestShortThickMemberIsNotSlender(t *testing.T) {
	result, err := AnalyzeSlenderness(SlendernessInput{
		Lu:        2000,
		K:         0.8,
		Width:     300,
		Thickness: 300,
		Fc:        28,
		Pu:        500,
	})
	require.NoError(t, err)

	// λ = 0.8·2000/(300/√12) = 18.5 < 22
	assert.InDelta(t, 0.8*2000/(300/math.Sqrt(12)), result.Lambda, 1e-9)
	assert.False(t, result.IsSlender)
	assert.InDelta(t, 1.0, result.DeltaNs, 1e-6)
	assert.InDelta(t, 1.0, result.ReductionFactor, 1e-9)
	assert.False(t, result.Unstable)
	assert.False(t, result.Rejected)
}

func TestDeltaNsDivergesTowardInstability(t *testing.T) {
	input := SlendernessInput{
		Lu:        6000,
		K:         1.0,
		Width:     300,
		Thickness: 300,
		Fc:        28,
	}

	// Find the critical load once, then walk Pu toward 0.75·Pc.
	base, err := AnalyzeSlenderness(input)
	require.NoError(t, err)
	limit := 0.75 * base.Pc

	prev := 0.0
	for _, frac := range []float64{0.5, 0.8, 0.95, 0.99} {
		input.Pu = frac * limit
		result, err := AnalyzeSlenderness(input)
		require.NoError(t, err)
		require.False(t, result.Unstable, "frac %.2f", frac)
		assert.Greater(t, result.DeltaNs, prev, "frac %.2f", frac)
		prev = result.DeltaNs
	}

	// At and beyond the limit: explicit instability, never a huge finite
	// magnifier.
	input.Pu = limit
	result, err := AnalyzeSlenderness(input)
	require.NoError(t, err)
	assert.True(t, result.Unstable)
	assert.True(t, math.IsInf(result.DeltaNs, 1))
}

func TestDeltaNsFlooredAtOne(t *testing.T) {
	// Net tension makes the raw expression drop below 1.
	result, err := AnalyzeSlenderness(SlendernessInput{
		Lu:        6000,
		K:         1.0,
		Width:     300,
		Thickness: 300,
		Fc:        28,
		Pu:        -200,
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, result.DeltaNs, 1e-9)
}

func TestEulerCriticalLoad(t *testing.T) {
	result, err := AnalyzeSlenderness(SlendernessInput{
		Lu:              4000,
		K:               1.0,
		Width:           300,
		Thickness:       300,
		Fc:              25,
		StiffnessFactor: 0.70,
	})
	require.NoError(t, err)

	ig := 300.0 * 300 * 300 * 300 / 12
	ei := 0.70 * 4700 * 5 * ig
	want := math.Pi * math.Pi * ei / (4000.0 * 4000.0) / 1000
	assert.InDelta(t, want, result.Pc, 1e-6)
}

func TestSlendernessRejection(t *testing.T) {
	// k·lu/(32t) ≥ 1: beyond the empirical method's range.
	result, err := AnalyzeSlenderness(SlendernessInput{
		Lu:        10000,
		K:         1.0,
		Width:     300,
		Thickness: 300,
		Fc:        28,
	})
	require.NoError(t, err)
	assert.True(t, result.Rejected)
	assert.Equal(t, 0.0, result.ReductionFactor)
}

func TestSlenderReductionFactor(t *testing.T) {
	result, err := AnalyzeSlenderness(SlendernessInput{
		Lu:        6000,
		K:         1.0,
		Width:     300,
		Thickness: 300,
		Fc:        28,
	})
	require.NoError(t, err)
	require.True(t, result.IsSlender)

	ratio := 6000.0 / (32 * 300)
	assert.InDelta(t, 1-ratio*ratio, result.ReductionFactor, 1e-9)
}
