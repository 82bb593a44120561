package region_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skin-detector/internal/region"
	"skin-detector/pkg/geometry"
)

func TestClassifyBodyPart(t *testing.T) {
	// All cases use a 1000x1000 image; bounds are sized to produce the
	// aspect ratio named in each case.
	tests := []struct {
		name     string
		center   geometry.Point2D
		bounds   geometry.RectInt
		area     int
		expected region.BodyPart
	}{
		{
			name:     "Face: upper middle, square-ish",
			center:   geometry.Point2D{X: 500, Y: 100},
			bounds:   geometry.RectInt{X: 450, Y: 50, Width: 100, Height: 100},
			area:     5000,
			expected: region.BodyPartFace,
		},
		{
			name:     "Neck: narrow band below face",
			center:   geometry.Point2D{X: 500, Y: 450},
			bounds:   geometry.RectInt{X: 480, Y: 400, Width: 40, Height: 100},
			area:     3000,
			expected: region.BodyPartNeck,
		},
		{
			name:     "Arm: left edge, elongated",
			center:   geometry.Point2D{X: 100, Y: 500},
			bounds:   geometry.RectInt{X: 80, Y: 300, Width: 40, Height: 200},
			area:     4000,
			expected: region.BodyPartArm,
		},
		{
			name:     "Arm wins over hand when both match",
			center:   geometry.Point2D{X: 100, Y: 500},
			bounds:   geometry.RectInt{X: 90, Y: 400, Width: 20, Height: 200},
			area:     1500,
			expected: region.BodyPartArm,
		},
		{
			name:     "Hand: small region at the edge, not arm-shaped",
			center:   geometry.Point2D{X: 100, Y: 500},
			bounds:   geometry.RectInt{X: 80, Y: 480, Width: 40, Height: 80},
			area:     1000,
			expected: region.BodyPartHand,
		},
		{
			name:     "Torso: large central region",
			center:   geometry.Point2D{X: 500, Y: 500},
			bounds:   geometry.RectInt{X: 350, Y: 300, Width: 300, Height: 300},
			area:     100000,
			expected: region.BodyPartTorso,
		},
		{
			name:     "Leg: lower elongated region",
			center:   geometry.Point2D{X: 500, Y: 700},
			bounds:   geometry.RectInt{X: 470, Y: 600, Width: 60, Height: 200},
			area:     4000,
			expected: region.BodyPartLeg,
		},
		{
			name:     "Unknown: nothing matches",
			center:   geometry.Point2D{X: 500, Y: 500},
			bounds:   geometry.RectInt{X: 450, Y: 450, Width: 100, Height: 100},
			area:     2500,
			expected: region.BodyPartUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := region.ClassifyBodyPart(tt.center, tt.bounds, tt.area, 1000, 1000)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestClassifyBodyPartIsPure(t *testing.T) {
	center := geometry.Point2D{X: 500, Y: 100}
	bounds := geometry.RectInt{X: 450, Y: 50, Width: 100, Height: 100}

	first := region.ClassifyBodyPart(center, bounds, 5000, 1000, 1000)
	second := region.ClassifyBodyPart(center, bounds, 5000, 1000, 1000)
	assert.Equal(t, first, second)
}

func TestClassifyBodyPartDegenerateImage(t *testing.T) {
	got := region.ClassifyBodyPart(geometry.Point2D{}, geometry.RectInt{}, 100, 0, 0)
	assert.Equal(t, region.BodyPartUnknown, got)
}

func TestBodyPartString(t *testing.T) {
	assert.Equal(t, "face", region.BodyPartFace.String())
	assert.Equal(t, "torso", region.BodyPartTorso.String())
	assert.Equal(t, "unknown", region.BodyPartUnknown.String())
	assert.Equal(t, "unknown", region.BodyPart(99).String())
}
