package column

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFlexureEmptyDemandSet(t *testing.T) {
	result := CheckFlexure(diamondCurve(), nil)
	assert.True(t, math.IsInf(result.SafetyFactor, 1))
	assert.True(t, result.OK)
	assert.Equal(t, "OK", result.Status())
}

func TestCheckFlexureZeroDemand(t *testing.T) {
	result := CheckFlexure(diamondCurve(), []DemandPoint{{Pu: 0, Mu: 0, Label: "C1"}})
	assert.True(t, math.IsInf(result.SafetyFactor, 1))
	assert.True(t, result.OK)
}

func TestCheckFlexureGoverningCombination(t *testing.T) {
	demands := []DemandPoint{
		{Pu: 250, Mu: 50, Label: "1.4D"},      // comfortable
		{Pu: 600, Mu: 100, Label: "1.2D+1.6L"}, // governing
		{Pu: 100, Mu: 20, Label: "0.9D+1.0W"},  // comfortable
	}

	result := CheckFlexure(diamondCurve(), demands)

	assert.Equal(t, "1.2D+1.6L", result.CriticalLabel)
	assert.InDelta(t, 600, result.CriticalPu, 1e-9)
	assert.InDelta(t, 100, result.CriticalMu, 1e-9)
	assert.True(t, result.OK)
	assert.InDelta(t, 500, result.PhiMnAtZeroP, 1e-9)
	assert.Equal(t, TierRay, result.WorstTier)
}

func TestCheckFlexureFailingDemand(t *testing.T) {
	result := CheckFlexure(diamondCurve(), []DemandPoint{
		{Pu: 1500, Mu: 250, Label: "overload"},
	})

	assert.False(t, result.OK)
	assert.Equal(t, "NOT OK", result.Status())
	assert.InDelta(t, 0.5, result.SafetyFactor, 1e-9)
	assert.True(t, result.ExceedsAxialCapacity)
}

func TestCheckFlexureBoundaryDemandIsOK(t *testing.T) {
	result := CheckFlexure(diamondCurve(), []DemandPoint{
		{Pu: 750, Mu: 125, Label: "on-boundary"},
	})

	assert.InDelta(t, 1.0, result.SafetyFactor, 1e-9)
	assert.True(t, result.OK)
}

func TestCheckFlexureNetTensionCount(t *testing.T) {
	demands := []DemandPoint{
		{Pu: 500, Mu: 50, Label: "gravity"},
		{Pu: -100, Mu: 30, Label: "uplift-1"},
		{Pu: -50, Mu: 10, Label: "uplift-2"},
	}

	result := CheckFlexure(diamondCurve(), demands)

	assert.True(t, result.NetTension)
	assert.Equal(t, 2, result.NetTensionCount)
}

func TestCheckFlexureOnBuiltCurve(t *testing.T) {
	curve, err := BuildInteractionCurve(testColumn(), CategoryTiedColumn, 0)
	require.NoError(t, err)

	demands := []DemandPoint{
		{Pu: 800, Mu: 100, Label: "C1"},
		{Pu: 1200, Mu: 150, Label: "C2"},
	}

	result := CheckFlexure(curve, demands)

	require.Equal(t, TierRay, result.WorstTier)
	assert.Greater(t, result.PhiMnAtZeroP, 0.0)
	assert.Greater(t, result.PhiMnAtCriticalPu, 0.0)
	// The further-out combination governs.
	assert.Equal(t, "C2", result.CriticalLabel)
}
