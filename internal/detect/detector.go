// Package detect sequences segmentation, skin classification, region
// extraction, hull simplification and body-part labeling into one
// detection pipeline.
package detect

import (
	"fmt"
	"image"
	"sort"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"skin-detector/internal/imgio"
	"skin-detector/internal/mask"
	"skin-detector/internal/region"
	"skin-detector/internal/segment"
	"skin-detector/internal/skin"
	"skin-detector/pkg/geometry"
)

// Options configures a Detector.
type Options struct {
	// MinRegionArea is the minimum component size in pixels; smaller
	// components are treated as noise.
	MinRegionArea int

	// SkinRanges are the HSV bands used for skin matching.
	SkinRanges []skin.HSVRange

	// KeepMasks attaches the intermediate person and skin masks to the
	// result. They are copies; mutating them does not affect later calls.
	KeepMasks bool
}

// DefaultOptions returns the standard pipeline configuration.
func DefaultOptions() Options {
	return Options{
		MinRegionArea: region.DefaultMinArea,
		SkinRanges:    skin.DefaultRanges(),
	}
}

// SkinDetectionResult is the outcome of one detection call. It is never
// mutated after being returned.
type SkinDetectionResult struct {
	Success        bool                `json:"success"`
	Regions        []region.SkinRegion `json:"regions"`
	TotalSkinArea  int                 `json:"total_skin_area"`
	TotalImageArea int                 `json:"total_image_area"`
	SkinCoverage   float64             `json:"skin_coverage_percentage"`
	PersonMask     *mask.Mask          `json:"-"`
	SkinMask       *mask.Mask          `json:"-"`
	Message        string              `json:"message,omitempty"`
}

// Detector runs the full skin-detection pipeline. One Detector supports one
// in-flight call at a time; the segmentation adapter serializes overlapping
// callers.
type Detector struct {
	seg  segment.Segmenter
	opts Options
	log  *logrus.Logger
}

// New creates a Detector using the given segmenter.
func New(seg segment.Segmenter, opts Options, logger *logrus.Logger) *Detector {
	if opts.MinRegionArea <= 0 {
		opts.MinRegionArea = region.DefaultMinArea
	}
	if len(opts.SkinRanges) == 0 {
		opts.SkinRanges = skin.DefaultRanges()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Detector{seg: seg, opts: opts, log: logger}
}

// Initialize prepares the segmentation adapter. Idempotent.
func (d *Detector) Initialize() error {
	return d.seg.Initialize()
}

// Dispose releases the segmentation adapter. The detector is unusable
// afterwards until Initialize is called again.
func (d *Detector) Dispose() error {
	return d.seg.Dispose()
}

// DetectSkinAreas runs the pipeline on one image. It never returns an
// error and never panics past this boundary: every upstream failure is
// surfaced as a Success=false result with a descriptive message.
func (d *Detector) DetectSkinAreas(img image.Image) (result *SkinDetectionResult) {
	defer func() {
		if r := recover(); r != nil {
			d.log.WithField("panic", r).Error("detection pipeline failed")
			result = failure(fmt.Sprintf("processing failure: %v", r))
		}
	}()

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return failure("empty image")
	}

	personMask, err := d.seg.Segment(img)
	if err != nil {
		d.log.WithError(err).Warn("person segmentation failed")
		return failure(fmt.Sprintf("person segmentation failed: %v", err))
	}

	rgba := imgio.ToRGBA(img)
	skinMask := skin.Classify(rgba, personMask, d.opts.SkinRanges)

	components := region.Extract(skinMask, d.opts.MinRegionArea)

	regions := make([]region.SkinRegion, 0, len(components))
	for _, c := range components {
		regions = append(regions, region.SkinRegion{
			ID:          c.ID,
			BodyPart:    region.ClassifyBodyPart(c.Center, c.Bounds, c.Area, w, h),
			Polygon:     geometry.ConvexHull(c.Pixels),
			BoundingBox: c.Bounds,
			Area:        c.Area,
			Confidence:  c.Confidence,
			Center:      c.Center,
		})
	}

	// Largest regions first; ties keep discovery order.
	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].Area > regions[j].Area
	})

	totalSkinArea := 0
	confidences := make([]float64, len(regions))
	for i, r := range regions {
		totalSkinArea += r.Area
		confidences[i] = r.Confidence
	}

	totalImageArea := w * h
	coverage := float64(totalSkinArea) / float64(totalImageArea) * 100

	entry := d.log.WithFields(logrus.Fields{
		"regions":  len(regions),
		"coverage": fmt.Sprintf("%.2f%%", coverage),
	})
	if len(confidences) > 0 {
		entry = entry.WithField("mean_confidence", stat.Mean(confidences, nil))
	}
	entry.Info("skin detection complete")

	result = &SkinDetectionResult{
		Success:        true,
		Regions:        regions,
		TotalSkinArea:  totalSkinArea,
		TotalImageArea: totalImageArea,
		SkinCoverage:   coverage,
		Message:        fmt.Sprintf("detected %d skin regions", len(regions)),
	}
	if d.opts.KeepMasks {
		result.PersonMask = personMask.Clone()
		result.SkinMask = skinMask.Clone()
	}
	return result
}

// IsPointInSkinArea tests the point against each region's polygon in the
// supplied order using ray casting and returns the first region that
// contains it.
func IsPointInSkinArea(p geometry.Point2D, regions []region.SkinRegion) (bool, *region.SkinRegion) {
	for i := range regions {
		if geometry.PointInPolygon(p, regions[i].Polygon) {
			return true, &regions[i]
		}
	}
	return false, nil
}

func failure(message string) *SkinDetectionResult {
	return &SkinDetectionResult{
		Success: false,
		Regions: []region.SkinRegion{},
		Message: message,
	}
}
