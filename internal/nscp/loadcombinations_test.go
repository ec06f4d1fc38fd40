package nscp

import (
	"math"
	"testing"
)

func TestFactorDemands(t *testing.T) {
	effects := LoadEffects{
		Axial:  EffectSet{Dead: 100, Live: 50},
		Moment: EffectSet{Dead: 10, Live: 8},
	}

	demands := FactorDemands(effects, SimplifiedCombinations)
	if len(demands) != len(SimplifiedCombinations) {
		t.Fatalf("got %d demands; want %d", len(demands), len(SimplifiedCombinations))
	}

	// 1.4D
	if math.Abs(demands[0].Pu-140) > 1e-9 || math.Abs(demands[0].Mu-14) > 1e-9 {
		t.Errorf("1.4D demand = (%.2f, %.2f); want (140, 14)", demands[0].Pu, demands[0].Mu)
	}
	// 1.2D + 1.6L
	if math.Abs(demands[1].Pu-200) > 1e-9 || math.Abs(demands[1].Mu-24.8) > 1e-9 {
		t.Errorf("1.2D+1.6L demand = (%.2f, %.2f); want (200, 24.8)", demands[1].Pu, demands[1].Mu)
	}
}

func TestGoverningDemand(t *testing.T) {
	effects := LoadEffects{
		Axial:  EffectSet{Dead: 100, Live: 50},
		Moment: EffectSet{Dead: 10, Live: 8},
	}

	governing := GoverningDemand(effects, SimplifiedCombinations)
	if governing.Combination.ID != "2" {
		t.Errorf("governing combination = %s; want 2 (1.2D+1.6L)", governing.Combination.ID)
	}
	if math.Abs(governing.Mu-24.8) > 1e-9 {
		t.Errorf("governing Mu = %.2f; want 24.8", governing.Mu)
	}
}

func TestGoverningDemandTensionCombination(t *testing.T) {
	// Uplift case: 0.9D + 1.0W can put the member in net tension while a
	// gravity combination has the bigger moment.
	effects := LoadEffects{
		Axial:  EffectSet{Dead: 50, Wind: -200},
		Moment: EffectSet{Dead: 5, Wind: 30},
	}

	demands := FactorDemands(effects, LoadCombinations)
	var found bool
	for _, d := range demands {
		if d.Combination.ID == "6" {
			found = true
			want := 0.9*50 + 1.0*(-200)
			if math.Abs(d.Pu-want) > 1e-9 {
				t.Errorf("0.9D+1.0W Pu = %.2f; want %.2f", d.Pu, want)
			}
		}
	}
	if !found {
		t.Fatal("combination 6 (0.9D + 1.0W) missing from basic set")
	}
}
