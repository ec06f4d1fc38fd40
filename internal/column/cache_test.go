package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurveKeyChangesWithReinforcement(t *testing.T) {
	a := testColumn()
	b := testColumn()
	require.Equal(t, a.Key(CategoryTiedColumn, 50), b.Key(CategoryTiedColumn, 50))

	b.Reinforcement[0].Area += 100
	assert.NotEqual(t, a.Key(CategoryTiedColumn, 50), b.Key(CategoryTiedColumn, 50))

	// Sample count is part of the identity too.
	assert.NotEqual(t, a.Key(CategoryTiedColumn, 50), a.Key(CategoryTiedColumn, 60))
}

func TestCurveKeyChangesWithCategory(t *testing.T) {
	col := testColumn()

	// Same section, different cap and φ floor: never the same curve.
	assert.NotEqual(t, col.Key(CategoryTiedColumn, 50), col.Key(CategorySpiralColumn, 50))
	assert.NotEqual(t, col.Key(CategoryTiedColumn, 50), col.Key(CategoryWall, 50))
}

func TestCurveCacheReuse(t *testing.T) {
	cache := NewCurveCache()

	first, err := cache.Get(testColumn(), CategoryTiedColumn, 50)
	require.NoError(t, err)
	second, err := cache.Get(testColumn(), CategoryTiedColumn, 50)
	require.NoError(t, err)

	assert.Equal(t, 1, cache.Len())
	// Same backing slice, not a rebuilt copy.
	assert.Same(t, &first[0], &second[0])
}

func TestCurveCacheSeparatesCategories(t *testing.T) {
	cache := NewCurveCache()

	tied, err := cache.Get(testColumn(), CategoryTiedColumn, 50)
	require.NoError(t, err)
	spiral, err := cache.Get(testColumn(), CategorySpiralColumn, 50)
	require.NoError(t, err)

	assert.Equal(t, 2, cache.Len())
	assert.Greater(t, spiral[0].PhiPn, tied[0].PhiPn)
}

func TestCurveCacheInvalidate(t *testing.T) {
	cache := NewCurveCache()
	col := testColumn()

	_, err := cache.Get(col, CategoryTiedColumn, 50)
	require.NoError(t, err)
	require.Equal(t, 1, cache.Len())

	cache.Invalidate(col, CategoryTiedColumn, 50)
	assert.Equal(t, 0, cache.Len())
}

func TestCurveCachePropagatesValidation(t *testing.T) {
	cache := NewCurveCache()

	_, err := cache.Get(NewColumn(0, 400, 65, 28, 415, 2513), CategoryTiedColumn, 50)
	require.ErrorIs(t, err, ErrInvalidGeometry)
	assert.Equal(t, 0, cache.Len())
}
