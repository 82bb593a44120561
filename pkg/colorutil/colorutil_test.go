package colorutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skin-detector/pkg/colorutil"
)

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		h, s, v float64
	}{
		{name: "Red", r: 255, g: 0, b: 0, h: 0, s: 1, v: 1},
		{name: "Green", r: 0, g: 255, b: 0, h: 120, s: 1, v: 1},
		{name: "Blue", r: 0, g: 0, b: 255, h: 240, s: 1, v: 1},
		{name: "Black", r: 0, g: 0, b: 0, h: 0, s: 0, v: 0},
		{name: "White", r: 255, g: 255, b: 255, h: 0, s: 0, v: 1},
		{name: "Gray", r: 128, g: 128, b: 128, h: 0, s: 0, v: 128.0 / 255.0},
		{name: "Light skin tone", r: 224, g: 172, b: 105, h: 33.78, s: 0.5313, v: 0.8784},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v := colorutil.RGBToHSV(tt.r, tt.g, tt.b)
			assert.InDelta(t, tt.h, h, 0.01)
			assert.InDelta(t, tt.s, s, 0.001)
			assert.InDelta(t, tt.v, v, 0.001)
		})
	}
}

func TestRGBToHSVHueRange(t *testing.T) {
	// Hue must stay in [0, 360) even for reddish colors where the raw
	// formula goes negative.
	h, _, _ := colorutil.RGBToHSV(255, 80, 109)
	assert.GreaterOrEqual(t, h, 340.0)
	assert.Less(t, h, 360.0)
}
