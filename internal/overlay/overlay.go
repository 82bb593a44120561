// Package overlay renders detection results onto a copy of the source
// image for visual inspection.
package overlay

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"skin-detector/internal/detect"
	"skin-detector/internal/imgio"
	"skin-detector/internal/region"
	"skin-detector/pkg/colorutil"
)

// bodyPartColors maps each category to its overlay color.
var bodyPartColors = map[region.BodyPart]color.RGBA{
	region.BodyPartFace:    colorutil.Yellow,
	region.BodyPartNeck:    colorutil.Cyan,
	region.BodyPartArm:     colorutil.Green,
	region.BodyPartHand:    colorutil.Magenta,
	region.BodyPartTorso:   colorutil.Blue,
	region.BodyPartLeg:     colorutil.Orange,
	region.BodyPartFoot:    colorutil.White,
	region.BodyPartUnknown: colorutil.White,
}

// Render draws the detection result over a copy of the source image: a
// green tint on skin pixels (when the result carries the skin mask), the
// bounding box and hull outline of each region, and a body-part label.
// The source image is not modified.
func Render(src image.Image, res *detect.SkinDetectionResult) *image.RGBA {
	base := imgio.ToRGBA(src)
	out := image.NewRGBA(base.Rect)
	copy(out.Pix, base.Pix)

	if res == nil {
		return out
	}

	if res.SkinMask != nil {
		tintSkin(out, res)
	}

	for _, r := range res.Regions {
		col, ok := bodyPartColors[r.BodyPart]
		if !ok {
			col = colorutil.White
		}

		drawRect(out, r.BoundingBox.X, r.BoundingBox.Y,
			r.BoundingBox.X+r.BoundingBox.Width, r.BoundingBox.Y+r.BoundingBox.Height, col, 2)
		drawPolygon(out, r.Polygon, col, 1)
		drawLabel(out, r.BodyPart.String(), r.BoundingBox.X+3, r.BoundingBox.Y+3, col, 2)
	}

	return out
}

// tintSkin blends a green cast into every skin pixel.
func tintSkin(out *image.RGBA, res *detect.SkinDetectionResult) {
	m := res.SkinMask
	w := out.Rect.Dx()
	h := out.Rect.Dy()
	if m.Width != w || m.Height != h {
		return
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.Data[y*m.Width+x] == 0 {
				continue
			}
			i := out.PixOffset(x, y)
			out.Pix[i] = uint8(uint16(out.Pix[i]) * 3 / 4)
			out.Pix[i+1] = uint8((uint16(out.Pix[i+1])*3 + 255) / 4)
			out.Pix[i+2] = uint8(uint16(out.Pix[i+2]) * 3 / 4)
		}
	}
}

// Save writes the image to disk; the format follows the file extension.
func Save(img image.Image, path string) error {
	return imaging.Save(img, path)
}
