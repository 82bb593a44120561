package region_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skin-detector/internal/mask"
	"skin-detector/internal/region"
)

// fillBlock marks a w x h block of skin pixels starting at (x, y).
func fillBlock(m *mask.Mask, x, y, w, h int) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			m.Set(x+dx, y+dy, 255)
		}
	}
}

func TestExtractSingleComponent(t *testing.T) {
	m := mask.New(20, 20)
	fillBlock(m, 4, 4, 12, 12)

	components := region.Extract(m, 100)

	require.Len(t, components, 1)
	c := components[0]
	assert.Equal(t, "skin_region_0", c.ID)
	assert.Equal(t, 144, c.Area)
	assert.Len(t, c.Pixels, 144)
	assert.Equal(t, 4, c.Bounds.X)
	assert.Equal(t, 4, c.Bounds.Y)
	assert.Equal(t, 11, c.Bounds.Width)
	assert.Equal(t, 11, c.Bounds.Height)
	assert.InDelta(t, 9.5, c.Center.X, 1e-9)
	assert.InDelta(t, 9.5, c.Center.Y, 1e-9)
	assert.InDelta(t, 0.144, c.Confidence, 1e-9)
}

func TestExtractMinAreaThreshold(t *testing.T) {
	m := mask.New(40, 40)
	fillBlock(m, 0, 0, 10, 10)  // 100 px: kept
	fillBlock(m, 20, 20, 9, 11) // 99 px: dropped

	components := region.Extract(m, 100)

	require.Len(t, components, 1)
	assert.Equal(t, 100, components[0].Area)
}

func TestExtractComponentsAreFourConnected(t *testing.T) {
	// Two blocks touching only diagonally must stay separate components.
	m := mask.New(40, 40)
	fillBlock(m, 0, 0, 12, 12)
	fillBlock(m, 12, 12, 12, 12)

	components := region.Extract(m, 100)

	require.Len(t, components, 2)
	assert.Equal(t, "skin_region_0", components[0].ID)
	assert.Equal(t, "skin_region_1", components[1].ID)
}

func TestExtractDiscoveryOrder(t *testing.T) {
	// Raster order: the block with the smaller first-row y comes first.
	m := mask.New(60, 60)
	fillBlock(m, 30, 2, 11, 11)
	fillBlock(m, 2, 20, 11, 11)

	components := region.Extract(m, 100)

	require.Len(t, components, 2)
	assert.Equal(t, 30, components[0].Bounds.X)
	assert.Equal(t, 2, components[1].Bounds.X)
}

func TestExtractConfidenceCap(t *testing.T) {
	m := mask.New(60, 60)
	fillBlock(m, 0, 0, 40, 40) // 1600 px > 1000

	components := region.Extract(m, 100)

	require.Len(t, components, 1)
	assert.Equal(t, 1.0, components[0].Confidence)
}

func TestExtractEmptyMask(t *testing.T) {
	m := mask.New(30, 30)

	components := region.Extract(m, 100)

	assert.Empty(t, components)
}

func TestExtractCenterInsideBounds(t *testing.T) {
	m := mask.New(50, 50)
	fillBlock(m, 7, 13, 20, 10)

	components := region.Extract(m, 100)

	require.Len(t, components, 1)
	c := components[0]
	assert.True(t, c.Bounds.Contains(c.Center))
}
