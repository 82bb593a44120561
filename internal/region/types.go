// Package region groups skin pixels into connected components and labels
// them with coarse body-part categories.
package region

import (
	"skin-detector/pkg/geometry"
)

// BodyPart is a coarse body-part category assigned to a skin region.
type BodyPart int

const (
	BodyPartUnknown BodyPart = iota
	BodyPartFace
	BodyPartNeck
	BodyPartArm
	BodyPartHand
	BodyPartTorso
	BodyPartLeg
	BodyPartFoot
)

func (b BodyPart) String() string {
	switch b {
	case BodyPartFace:
		return "face"
	case BodyPartNeck:
		return "neck"
	case BodyPartArm:
		return "arm"
	case BodyPartHand:
		return "hand"
	case BodyPartTorso:
		return "torso"
	case BodyPartLeg:
		return "leg"
	case BodyPartFoot:
		return "foot"
	default:
		return "unknown"
	}
}

// SkinRegion is one connected component of skin pixels. Created once per
// detection call and not mutated afterwards.
type SkinRegion struct {
	ID          string             `json:"id"`
	BodyPart    BodyPart           `json:"body_part"`
	Polygon     []geometry.Point2D `json:"polygon"`
	BoundingBox geometry.RectInt   `json:"bounding_box"`
	Area        int                `json:"area"`
	Confidence  float64            `json:"confidence"`
	Center      geometry.Point2D   `json:"center"`
}

// Component is a raw connected component produced by Extract, before hull
// simplification and body-part labeling.
type Component struct {
	ID         string
	Pixels     []geometry.Point2D
	Area       int
	Bounds     geometry.RectInt
	Center     geometry.Point2D
	Confidence float64
}
