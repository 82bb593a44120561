package region

import (
	"skin-detector/pkg/geometry"
)

// ClassifyBodyPart labels a region from its geometry normalized to the
// image dimensions. The decision list is ordered and first-match-wins; a
// region may satisfy several rules (a small region near an edge can look
// like both an arm and a hand) and the ordering is what resolves that.
func ClassifyBodyPart(center geometry.Point2D, bounds geometry.RectInt, area, imageWidth, imageHeight int) BodyPart {
	if imageWidth <= 0 || imageHeight <= 0 {
		return BodyPartUnknown
	}

	relX := center.X / float64(imageWidth)
	relY := center.Y / float64(imageHeight)

	aspectRatio := 0.0
	if bounds.Height > 0 {
		aspectRatio = float64(bounds.Width) / float64(bounds.Height)
	}

	switch {
	case relY < 0.4 && relX > 0.2 && relX < 0.8 && aspectRatio > 0.7 && aspectRatio < 1.3:
		return BodyPartFace
	case relY > 0.3 && relY < 0.6 && relX > 0.35 && relX < 0.65 && aspectRatio < 0.5:
		return BodyPartNeck
	case (relX < 0.3 || relX > 0.7) && aspectRatio < 0.4:
		return BodyPartArm
	case area < 2000 && (relX < 0.2 || relX > 0.8):
		return BodyPartHand
	case relX > 0.3 && relX < 0.7 && relY > 0.4 && relY < 0.8 && area > 5000:
		return BodyPartTorso
	case relY > 0.6 && aspectRatio < 0.6:
		return BodyPartLeg
	default:
		return BodyPartUnknown
	}
}
