package nscp

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// SimplifiedCombinations for gravity-only column verification
var SimplifiedCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// LoadEffects holds unfactored axial forces and moments from each load type
// for a single member. Axial forces in kN (+ = compression), moments in kN-m.
type LoadEffects struct {
	Axial  EffectSet
	Moment EffectSet
}

// EffectSet holds one unfactored effect (axial force or moment) per load type.
type EffectSet struct {
	Dead       float64
	Live       float64
	Roof       float64
	Wind       float64
	Earthquake float64
	Rain       float64
}

// Factor applies the combination's load factors to an effect set.
func (lc LoadCombination) Factor(e EffectSet) float64 {
	return lc.Dead*e.Dead +
		lc.Live*e.Live +
		lc.Roof*e.Roof +
		lc.Wind*e.Wind +
		lc.Earthquake*e.Earthquake +
		lc.Rain*e.Rain
}

// FactoredDemand holds the factored axial force and moment for one combination.
type FactoredDemand struct {
	Combination LoadCombination
	Pu          float64 // kN (+ = compression)
	Mu          float64 // kN-m
}

// FactorDemands applies every combination to the member's load effects,
// producing one (Pu, Mu) demand per combination.
func FactorDemands(effects LoadEffects, combinations []LoadCombination) []FactoredDemand {
	demands := make([]FactoredDemand, 0, len(combinations))
	for _, combo := range combinations {
		demands = append(demands, FactoredDemand{
			Combination: combo,
			Pu:          combo.Factor(effects.Axial),
			Mu:          combo.Factor(effects.Moment),
		})
	}
	return demands
}

// GoverningDemand finds the combination giving the largest factored moment.
// The full set of demands should still be verified against the interaction
// curve; the largest moment is not always the critical pair.
func GoverningDemand(effects LoadEffects, combinations []LoadCombination) FactoredDemand {
	var governing FactoredDemand
	for i, combo := range combinations {
		mu := combo.Factor(effects.Moment)
		if i == 0 || mu > governing.Mu {
			governing = FactoredDemand{
				Combination: combo,
				Pu:          combo.Factor(effects.Axial),
				Mu:          mu,
			}
		}
	}
	return governing
}
