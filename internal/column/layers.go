package column

import "fmt"

// SteelLayer represents a layer of longitudinal reinforcement.
// Layers are value types; once a section is built they are never mutated.
type SteelLayer struct {
	// Distance from the extreme compression fiber to the layer centroid
	D float64 `json:"d"` // mm

	// Reinforcement area in this layer
	Area float64 `json:"area"` // mm²
}

// DefaultLayers builds the standard two-layer idealization: half the total
// steel at the cover line, half at h - cover.
func DefaultLayers(h, cover, asTotal float64) []SteelLayer {
	return []SteelLayer{
		{D: cover, Area: asTotal / 2},
		{D: h - cover, Area: asTotal / 2},
	}
}

// Column represents a rectangular reinforced concrete column section.
type Column struct {
	Name string `json:"name,omitempty"`

	// Geometry (mm). Width is perpendicular to the bending axis,
	// Depth is along it.
	Width float64 `json:"width"`
	Depth float64 `json:"depth"`

	// Material properties (MPa)
	Fc float64 `json:"fc"` // Concrete compressive strength
	Fy float64 `json:"fy"` // Steel yield strength

	// Reinforcement layers, measured from the compression face
	Reinforcement []SteelLayer `json:"reinforcement"`
}

// NewColumn creates a column with the default two-layer reinforcement
// idealization at cover and depth-cover.
func NewColumn(width, depth, cover, fc, fy, asTotal float64) *Column {
	return &Column{
		Width:         width,
		Depth:         depth,
		Fc:            fc,
		Fy:            fy,
		Reinforcement: DefaultLayers(depth, cover, asTotal),
	}
}

// GrossArea returns Ag in mm².
func (c *Column) GrossArea() float64 {
	return c.Width * c.Depth
}

// SteelArea returns the total longitudinal steel area Ast in mm².
func (c *Column) SteelArea() float64 {
	var total float64
	for _, layer := range c.Reinforcement {
		total += layer.Area
	}
	return total
}

// EffectiveDepth returns d, the distance from the compression face to the
// farthest reinforcement layer.
func (c *Column) EffectiveDepth() float64 {
	var d float64
	for _, layer := range c.Reinforcement {
		if layer.D > d {
			d = layer.D
		}
	}
	return d
}

// SteelRatio returns Ast/Ag.
func (c *Column) SteelRatio() float64 {
	ag := c.GrossArea()
	if ag <= 0 {
		return 0
	}
	return c.SteelArea() / ag
}

// Validate checks the section definition. Geometry and material failures are
// fatal; no capacity curve can be produced from a section that fails here.
func (c *Column) Validate() error {
	if c.Width <= 0 || c.Depth <= 0 {
		return fmt.Errorf("%w: b=%.2f, h=%.2f", ErrInvalidGeometry, c.Width, c.Depth)
	}
	if c.Fc <= 0 || c.Fy <= 0 {
		return fmt.Errorf("%w: f'c=%.2f, fy=%.2f", ErrInvalidMaterial, c.Fc, c.Fy)
	}
	for i, layer := range c.Reinforcement {
		if layer.Area < 0 {
			return fmt.Errorf("%w: layer %d area=%.2f", ErrInvalidReinforcement, i+1, layer.Area)
		}
		if layer.D < 0 || layer.D > c.Depth {
			return fmt.Errorf("%w: layer %d at d=%.2f outside section depth %.2f",
				ErrInvalidReinforcement, i+1, layer.D, c.Depth)
		}
	}
	return nil
}
