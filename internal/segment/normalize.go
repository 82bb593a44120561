package segment

import (
	"image"

	"skin-detector/internal/mask"
)

// maskFromFloats converts a probability map (values in [0,1], row-major,
// srcW x srcH) into a byte mask scaled up to dstW x dstH with
// nearest-neighbor sampling. Values outside [0,1] are clamped.
func maskFromFloats(probs []float32, srcW, srcH, dstW, dstH int) *mask.Mask {
	out := mask.New(dstW, dstH)
	if srcW <= 0 || srcH <= 0 || len(probs) < srcW*srcH {
		return out
	}

	for y := 0; y < dstH; y++ {
		sy := y * srcH / dstH
		for x := 0; x < dstW; x++ {
			sx := x * srcW / dstW
			p := probs[sy*srcW+sx]
			if p < 0 {
				p = 0
			}
			if p > 1 {
				p = 1
			}
			out.Data[y*dstW+x] = uint8(p*255 + 0.5)
		}
	}

	return out
}

// maskFromImage converts a grayscale-ish rendering of the model output into
// a byte mask scaled up to dstW x dstH with nearest-neighbor sampling. The
// luminance of each pixel is taken as the person confidence.
func maskFromImage(img image.Image, dstW, dstH int) *mask.Mask {
	out := mask.New(dstW, dstH)
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return out
	}

	for y := 0; y < dstH; y++ {
		sy := bounds.Min.Y + y*srcH/dstH
		for x := 0; x < dstW; x++ {
			sx := bounds.Min.X + x*srcW/dstW
			r, g, b, _ := img.At(sx, sy).RGBA()
			// Fast luminance: (19595*R + 38470*G + 7471*B) >> 16
			out.Data[y*dstW+x] = uint8((19595*(r>>8) + 38470*(g>>8) + 7471*(b>>8)) >> 16)
		}
	}

	return out
}
