package column

import "errors"

var (
	// ErrInvalidGeometry indicates a non-positive section dimension.
	ErrInvalidGeometry = errors.New("column: section dimensions must be positive")
	// ErrInvalidMaterial indicates a non-positive material strength.
	ErrInvalidMaterial = errors.New("column: material strengths must be positive")
	// ErrInvalidReinforcement indicates a reinforcement layer with
	// non-positive area or a position outside the section.
	ErrInvalidReinforcement = errors.New("column: invalid reinforcement layer")
)
