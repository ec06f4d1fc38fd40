package column

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyMemberWithoutSlenderness(t *testing.T) {
	member := Member{
		Name:    "C-01",
		Section: *testColumn(),
		Demands: []DemandPoint{
			{Pu: 800, Mu: 100, Label: "1.2D+1.6L"},
		},
	}

	result, err := VerifyMember(NewCurveCache(), member, 0)
	require.NoError(t, err)

	assert.Nil(t, result.Slenderness)
	assert.False(t, result.Unstable)
	assert.False(t, result.Rejected)
	assert.Equal(t, "1.2D+1.6L", result.Verification.CriticalLabel)
}

func TestVerifyMemberSpiralAxialCapacity(t *testing.T) {
	// Pu between the tied cap (0.65·0.80·P0) and the spiral cap
	// (0.75·0.85·P0): only the spiral member verifies.
	demands := []DemandPoint{{Pu: 2800, Mu: 0, Label: "1.4D"}}
	tied := Member{Name: "C-01", Section: *testColumn(), Demands: demands}
	spiral := tied
	spiral.Category = "spiral-column"

	cache := NewCurveCache()
	tiedResult, err := VerifyMember(cache, tied, 0)
	require.NoError(t, err)
	spiralResult, err := VerifyMember(cache, spiral, 0)
	require.NoError(t, err)

	assert.False(t, tiedResult.Verification.OK)
	assert.True(t, tiedResult.Verification.ExceedsAxialCapacity)
	assert.True(t, spiralResult.Verification.OK)
	assert.False(t, spiralResult.Verification.ExceedsAxialCapacity)

	// Different categories never share a cached curve.
	assert.Equal(t, 2, cache.Len())
}

func TestVerifyMemberMagnifiesSlenderMoments(t *testing.T) {
	demands := []DemandPoint{{Pu: 900, Mu: 60, Label: "C1"}}

	stocky := Member{
		Section: *NewColumn(300, 300, 65, 28, 415, 1810),
		Demands: demands,
	}
	slender := stocky
	slender.Lu = 6000
	slender.K = 1.0

	cache := NewCurveCache()
	stockyResult, err := VerifyMember(cache, stocky, 0)
	require.NoError(t, err)
	slenderResult, err := VerifyMember(cache, slender, 0)
	require.NoError(t, err)

	require.NotNil(t, slenderResult.Slenderness)
	require.True(t, slenderResult.Slenderness.IsSlender)
	require.False(t, slenderResult.Unstable)

	// Magnified moments against a reduced curve can only lower the SF.
	assert.Less(t, slenderResult.Verification.SafetyFactor,
		stockyResult.Verification.SafetyFactor)

	// The caller's demand slice is untouched.
	assert.InDelta(t, 60, demands[0].Mu, 1e-9)
}

func TestVerifyMemberReportsInstability(t *testing.T) {
	member := Member{
		Section: *NewColumn(250, 250, 65, 21, 415, 1256),
		Lu:      7500,
		K:       1.0,
		Demands: []DemandPoint{{Pu: 5000, Mu: 10, Label: "crush"}},
	}

	result, err := VerifyMember(NewCurveCache(), member, 0)
	require.NoError(t, err)

	assert.True(t, result.Unstable)
	assert.Equal(t, "UNSTABLE", result.Status())
}

func TestVerifyMemberReportsRejection(t *testing.T) {
	member := Member{
		Section: *NewColumn(300, 300, 65, 28, 415, 1810),
		Lu:      12000,
		K:       1.0,
		Demands: []DemandPoint{{Pu: 100, Mu: 10, Label: "C1"}},
	}

	result, err := VerifyMember(NewCurveCache(), member, 0)
	require.NoError(t, err)

	assert.True(t, result.Rejected)
	assert.Equal(t, "REJECTED", result.Status())
}

func TestVerifyMemberSharesCurvesAcrossMembers(t *testing.T) {
	cache := NewCurveCache()
	one := Member{Name: "C-01", Section: *testColumn(),
		Demands: []DemandPoint{{Pu: 500, Mu: 50, Label: "C1"}}}
	two := Member{Name: "C-02", Section: *testColumn(),
		Demands: []DemandPoint{{Pu: 700, Mu: 90, Label: "C1"}}}

	_, err := VerifyMember(cache, one, 0)
	require.NoError(t, err)
	_, err = VerifyMember(cache, two, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, cache.Len())
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, CategorySpiralColumn, ParseCategory("spiral-column"))
	assert.Equal(t, CategoryWall, ParseCategory("wall"))
	assert.Equal(t, CategoryTiedColumn, ParseCategory("tied-column"))
	assert.Equal(t, CategoryTiedColumn, ParseCategory(""))
}

func TestResolveBehavior(t *testing.T) {
	wall := ResolveBehavior(CategoryWall)
	assert.InDelta(t, 0.35, wall.StiffnessFactor, 1e-9)

	tied := ResolveBehavior(CategoryTiedColumn)
	assert.InDelta(t, 0.70, tied.StiffnessFactor, 1e-9)
	assert.InDelta(t, 0.80, tied.AxialCap, 1e-9)
	assert.InDelta(t, 0.65, tied.PhiCompression, 1e-9)

	spiral := ResolveBehavior(CategorySpiralColumn)
	assert.InDelta(t, 0.85, spiral.AxialCap, 1e-9)
	assert.InDelta(t, 0.75, spiral.PhiCompression, 1e-9)
}

func TestLoadMembers(t *testing.T) {
	const definition = `{
  "members": [
    {
      "name": "C-01",
      "section": {
        "width": 400,
        "depth": 400,
        "fc": 28,
        "fy": 415,
        "reinforcement": [
          {"d": 65, "area": 1256.5},
          {"d": 335, "area": 1256.5}
        ]
      },
      "lu": 3000,
      "k": 1.0,
      "demands": [
        {"pu": 800, "mu": 100, "label": "1.2D+1.6L"}
      ]
    }
  ]
}`

	path := filepath.Join(t.TempDir(), "members.json")
	require.NoError(t, os.WriteFile(path, []byte(definition), 0644))

	members, err := LoadMembers(path)
	require.NoError(t, err)
	require.Len(t, members, 1)

	m := members[0]
	assert.Equal(t, "C-01", m.Name)
	assert.InDelta(t, 400, m.Section.Width, 1e-9)
	assert.Len(t, m.Section.Reinforcement, 2)
	assert.InDelta(t, 3000, m.Lu, 1e-9)
	require.Len(t, m.Demands, 1)
	assert.Equal(t, "1.2D+1.6L", m.Demands[0].Label)
}

func TestLoadMembersRejectsInvalidSection(t *testing.T) {
	const definition = `{
  "members": [
    {"name": "bad", "section": {"width": 0, "depth": 400, "fc": 28, "fy": 415}}
  ]
}`

	path := filepath.Join(t.TempDir(), "members.json")
	require.NoError(t, os.WriteFile(path, []byte(definition), 0644))

	_, err := LoadMembers(path)
	require.ErrorIs(t, err, ErrInvalidGeometry)
}
