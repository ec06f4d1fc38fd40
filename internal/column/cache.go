package column

import (
	"fmt"
	"hash/fnv"
)

// CurveKey is a content hash of everything the curve derives from:
// geometry, materials, reinforcement and element category. Two sections
// with the same key produce byte-identical curves.
type CurveKey uint64

// Key computes the section's content hash. Changing any reinforcement layer
// or the category changes the key, so stale curves are never served after
// a redesign.
func (c *Column) Key(cat ElementCategory, numPoints int) CurveKey {
	h := fnv.New64a()
	fmt.Fprintf(h, "%v|%v|%v|%v|%s|%d", c.Width, c.Depth, c.Fc, c.Fy, cat, numPoints)
	for _, layer := range c.Reinforcement {
		fmt.Fprintf(h, "|%v:%v", layer.D, layer.Area)
	}
	return CurveKey(h.Sum64())
}

// CurveCache memoizes interaction curves by content key. Curves are never
// mutated after creation, so handing the same slice to multiple readers is
// safe; the cache itself is a plain map owned by a single calling layer and
// is not synchronized.
type CurveCache struct {
	curves map[CurveKey]InteractionCurve
}

// NewCurveCache creates an empty cache.
func NewCurveCache() *CurveCache {
	return &CurveCache{curves: make(map[CurveKey]InteractionCurve)}
}

// Get returns the curve for the section and category, building it on
// first use.
func (cc *CurveCache) Get(col *Column, cat ElementCategory, numPoints int) (InteractionCurve, error) {
	key := col.Key(cat, numPoints)
	if curve, ok := cc.curves[key]; ok {
		return curve, nil
	}
	curve, err := BuildInteractionCurve(col, cat, numPoints)
	if err != nil {
		return nil, err
	}
	cc.curves[key] = curve
	return curve, nil
}

// Invalidate drops the entry for the section and category, if present.
func (cc *CurveCache) Invalidate(col *Column, cat ElementCategory, numPoints int) {
	delete(cc.curves, col.Key(cat, numPoints))
}

// Len reports the number of cached curves.
func (cc *CurveCache) Len() int {
	return len(cc.curves)
}
