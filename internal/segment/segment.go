// Package segment invokes an external person-segmentation model and
// normalizes its output into a per-pixel confidence mask.
package segment

import (
	"errors"
	"image"

	"skin-detector/internal/mask"
)

// ErrNotInitialized is returned when inference is requested before
// Initialize has completed (or after Dispose).
var ErrNotInitialized = errors.New("segmenter not initialized")

// ErrUnavailable is returned when the external model produced no usable
// mask and no fallback could be constructed.
var ErrUnavailable = errors.New("segmentation unavailable")

// Segmenter produces a per-pixel "is person" confidence mask for an image.
// Mask values are 0-255 where 255 means certain person.
type Segmenter interface {
	// Initialize performs one-time setup of the external model. Calling it
	// again after success is a no-op.
	Initialize() error

	// Segment runs person segmentation on the image. The returned mask has
	// the same dimensions as the image and is owned by the caller.
	Segment(img image.Image) (*mask.Mask, error)

	// Dispose releases the model. Further Segment calls fail with
	// ErrNotInitialized until Initialize is called again.
	Dispose() error
}

// Passthrough is a Segmenter that marks every pixel as person. It is the
// conservative default when no model is configured: skin classification
// still runs, just without the person gate narrowing it down.
type Passthrough struct {
	initialized bool
}

// NewPassthrough creates a Passthrough segmenter.
func NewPassthrough() *Passthrough {
	return &Passthrough{}
}

// Initialize marks the segmenter ready.
func (p *Passthrough) Initialize() error {
	p.initialized = true
	return nil
}

// Segment returns an all-person mask of the image dimensions.
func (p *Passthrough) Segment(img image.Image) (*mask.Mask, error) {
	if !p.initialized {
		return nil, ErrNotInitialized
	}
	bounds := img.Bounds()
	return mask.NewFilled(bounds.Dx(), bounds.Dy(), 255), nil
}

// Dispose resets the segmenter to the uninitialized state.
func (p *Passthrough) Dispose() error {
	p.initialized = false
	return nil
}
