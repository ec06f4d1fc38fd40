package column

import (
	"encoding/json"
	"fmt"
	"os"
)

// Member ties a column section to its length, support condition and factored
// demand set. This is the unit of batch verification.
type Member struct {
	Name     string `json:"name,omitempty"`
	Section  Column `json:"section"`
	Category string `json:"category,omitempty"` // tied-column, spiral-column or wall

	// Slenderness inputs. Lu = 0 skips the slenderness check entirely.
	Lu float64 `json:"lu,omitempty"` // unsupported length (mm)
	K  float64 `json:"k,omitempty"`  // effective length factor
	Cm float64 `json:"cm,omitempty"` // moment equivalence factor

	Demands []DemandPoint `json:"demands"`
}

// memberFile is the on-disk shape of a batch definition.
type memberFile struct {
	Members []Member `json:"members"`
}

// LoadMembers loads member definitions from a JSON file and validates every
// section before returning.
func LoadMembers(filepath string) ([]Member, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var file memberFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	for i := range file.Members {
		if err := file.Members[i].Section.Validate(); err != nil {
			return nil, fmt.Errorf("member %q: %w", file.Members[i].Name, err)
		}
	}
	return file.Members, nil
}

// ParseCategory maps the JSON category string to its ElementCategory.
// Unknown strings default to a tied column.
func ParseCategory(s string) ElementCategory {
	switch s {
	case "spiral-column":
		return CategorySpiralColumn
	case "wall":
		return CategoryWall
	default:
		return CategoryTiedColumn
	}
}

// MemberResult is the full verification outcome for one member.
type MemberResult struct {
	Name         string
	Slenderness  *SlendernessResult // nil when the check was skipped
	Verification VerificationResult

	// Unstable and Rejected are hard failures from the slenderness check;
	// when either is set the flexure verification was not run.
	Unstable bool
	Rejected bool
}

// Status renders the member outcome, giving slenderness hard failures
// precedence over the flexure check.
func (mr MemberResult) Status() string {
	switch {
	case mr.Unstable:
		return "UNSTABLE"
	case mr.Rejected:
		return "REJECTED"
	default:
		return mr.Verification.Status()
	}
}

// VerifyMember runs the complete check for one member: slenderness
// classification, per-combination moment magnification, capacity reduction
// for slender members, then the flexure verification. Curves come from the
// cache so members sharing a section and category reuse the same curve.
func VerifyMember(cache *CurveCache, m Member, numPoints int) (MemberResult, error) {
	result := MemberResult{Name: m.Name}

	cat := ParseCategory(m.Category)
	curve, err := cache.Get(&m.Section, cat, numPoints)
	if err != nil {
		return result, err
	}

	demands := m.Demands
	if m.Lu > 0 {
		behavior := ResolveBehavior(cat)

		k := m.K
		if k <= 0 {
			k = behavior.DefaultK
		}

		// Magnification depends on each combination's axial load, so every
		// demand point gets its own analysis. The original demand slice is
		// never modified.
		magnified := make([]DemandPoint, 0, len(demands))
		var governing *SlendernessResult
		for _, dp := range demands {
			sr, err := AnalyzeSlenderness(SlendernessInput{
				Lu:              m.Lu,
				K:               k,
				Width:           m.Section.Width,
				Thickness:       min(m.Section.Width, m.Section.Depth),
				Fc:              m.Section.Fc,
				Cm:              m.Cm,
				StiffnessFactor: behavior.StiffnessFactor,
				Pu:              dp.Pu,
			})
			if err != nil {
				return result, err
			}
			if governing == nil || sr.DeltaNs > governing.DeltaNs {
				governing = &sr
			}
			if sr.Unstable {
				result.Unstable = true
				continue
			}
			dp.Mu *= sr.DeltaNs
			magnified = append(magnified, dp)
		}

		if governing != nil {
			result.Slenderness = governing
			if governing.Rejected {
				result.Rejected = true
			}
		}
		if result.Unstable || result.Rejected {
			return result, nil
		}

		demands = magnified
		if governing != nil && governing.IsSlender && behavior.AppliesSlendernessReduction {
			curve = curve.Reduced(governing.ReductionFactor)
		}
	}

	result.Verification = CheckFlexure(curve, demands)
	return result, nil
}
