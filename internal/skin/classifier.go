// Package skin classifies pixels as exposed skin using HSV range matching.
package skin

import (
	"image"

	"skin-detector/internal/mask"
	"skin-detector/pkg/colorutil"
)

// PersonThreshold is the person-mask gate: only pixels whose person
// confidence exceeds this value are considered at all.
const PersonThreshold = 128

// HSVRange describes one skin-tone band. Hue is in degrees [0,360),
// saturation and value in [0,1]. Hue matching is half-open [HueMin,HueMax);
// a range with HueMin > HueMax wraps around 360.
type HSVRange struct {
	Name   string
	HueMin float64
	HueMax float64
	SatMin float64
	SatMax float64
	ValMin float64
	ValMax float64
}

// Contains reports whether the HSV triple falls inside the range.
func (r HSVRange) Contains(h, s, v float64) bool {
	if s < r.SatMin || s > r.SatMax || v < r.ValMin || v > r.ValMax {
		return false
	}
	if r.HueMin <= r.HueMax {
		return h >= r.HueMin && h < r.HueMax
	}
	// Wrap-around band, e.g. reddish hues near 360
	return h >= r.HueMin || h < r.HueMax
}

// DefaultRanges returns the skin-tone bands used for classification.
// The set covers light, medium and dark complexions plus a wrap-around
// reddish band for flushed or warm-lit skin near hue 360.
func DefaultRanges() []HSVRange {
	return []HSVRange{
		{Name: "light", HueMin: 0, HueMax: 50, SatMin: 0.20, SatMax: 0.68, ValMin: 0.35, ValMax: 1.0},
		{Name: "medium", HueMin: 0, HueMax: 40, SatMin: 0.25, SatMax: 0.75, ValMin: 0.20, ValMax: 0.85},
		{Name: "dark", HueMin: 0, HueMax: 35, SatMin: 0.30, SatMax: 0.85, ValMin: 0.05, ValMax: 0.60},
		{Name: "reddish", HueMin: 340, HueMax: 360, SatMin: 0.15, SatMax: 0.70, ValMin: 0.30, ValMax: 1.0},
	}
}

// Classify marks every pixel that passes the person-mask gate and matches at
// least one skin-tone range. The output mask has the same dimensions as the
// input; skin pixels are 255, everything else 0. Pure and deterministic for
// identical inputs.
//
// The person mask must have the image's dimensions; a mismatch is a
// programming error and panics.
func Classify(img *image.RGBA, person *mask.Mask, ranges []HSVRange) *mask.Mask {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if person.Width != w || person.Height != h {
		panic("skin: person mask dimensions do not match image")
	}

	out := mask.New(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if person.Data[y*w+x] <= PersonThreshold {
				continue
			}

			i := img.PixOffset(x, y)
			hue, sat, val := colorutil.RGBToHSV(
				float64(img.Pix[i]),
				float64(img.Pix[i+1]),
				float64(img.Pix[i+2]),
			)

			for _, r := range ranges {
				if r.Contains(hue, sat, val) {
					out.Data[y*w+x] = 255
					break
				}
			}
		}
	}

	return out
}
