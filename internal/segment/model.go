package segment

import (
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"skin-detector/internal/mask"
)

// Model wraps an external DNN person-segmentation model behind the
// Segmenter interface. The model file is opaque to this package; any
// network loadable by the OpenCV DNN module (ONNX, TensorFlow, Caffe)
// whose output is a person-probability map will do.
//
// Calls are serialized: a mutex admits one in-flight request at a time and
// each request carries a generated id, so a result can never be delivered
// against the wrong call. Cancellation is not supported; a request runs to
// completion or failure.
type Model struct {
	modelPath string
	inputSize int
	log       *logrus.Logger

	mu          sync.Mutex
	net         gocv.Net
	scratch     gocv.Mat
	initialized bool
}

// NewModel creates a model-backed segmenter. inputSize is the square side
// length the image is resized to before inference; zero selects the default.
func NewModel(modelPath string, inputSize int, logger *logrus.Logger) *Model {
	if inputSize <= 0 {
		inputSize = 256
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Model{
		modelPath: modelPath,
		inputSize: inputSize,
		log:       logger,
	}
}

// Initialize loads the network. Idempotent: a second call after success
// returns nil without reloading.
func (m *Model) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	net := gocv.ReadNet(m.modelPath, "")
	if net.Empty() {
		return fmt.Errorf("load segmentation model %q: %w", m.modelPath, ErrUnavailable)
	}

	m.net = net
	m.scratch = gocv.NewMat()
	m.initialized = true
	m.log.WithField("model", m.modelPath).Info("segmentation model loaded")
	return nil
}

// Segment runs the model on the image and returns a person-confidence mask
// of the image dimensions. The returned mask is an independent copy; it is
// never a view of adapter-owned scratch memory.
func (m *Model) Segment(img image.Image) (*mask.Mask, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return nil, ErrNotInitialized
	}

	reqID := uuid.NewString()
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	entry := m.log.WithFields(logrus.Fields{
		"request_id": reqID,
		"width":      w,
		"height":     h,
	})
	entry.Debug("segmentation request")

	// The scratch Mat is adapter-owned and reused across calls; it is
	// replaced (not appended to) per request so no stale data survives.
	resized := imaging.Resize(img, m.inputSize, m.inputSize, imaging.Lanczos)
	if !m.scratch.Empty() {
		m.scratch.Close()
	}
	m.scratch = imageToMat(resized)

	blob := gocv.BlobFromImage(m.scratch, 1.0/255.0, image.Pt(m.inputSize, m.inputSize),
		gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	m.net.SetInput(blob, "")
	out := m.net.Forward("")
	defer out.Close()

	if out.Empty() {
		entry.Warn("model returned empty output")
		return nil, ErrUnavailable
	}

	result := m.normalize(out, w, h, entry)
	entry.WithField("person_pixels", result.CountAbove(128)).Debug("segmentation complete")
	return result, nil
}

// normalize converts the raw network output into a full-size mask. The
// output may arrive as raw float data or as something only renderable as an
// image; both are handled. If neither works the documented fallback is an
// all-person mask, which is conservative rather than correct.
func (m *Model) normalize(out gocv.Mat, w, h int, entry *logrus.Entry) *mask.Mask {
	if probs, srcW, srcH, ok := personChannel(out); ok {
		return maskFromFloats(probs, srcW, srcH, w, h)
	}

	if img, err := out.ToImage(); err == nil {
		return maskFromImage(img, w, h)
	}

	entry.Warn("model output not recognized, falling back to all-person mask")
	return mask.NewFilled(w, h, 255)
}

// personChannel extracts the person-probability plane from a network output
// Mat. Supports NCHW outputs with one channel (probability map) or two
// channels (background, person) and plain 2D maps.
func personChannel(out gocv.Mat) ([]float32, int, int, bool) {
	data, err := out.DataPtrFloat32()
	if err != nil {
		return nil, 0, 0, false
	}

	sz := out.Size()
	switch len(sz) {
	case 4:
		c, sh, sw := sz[1], sz[2], sz[3]
		plane := sh * sw
		if len(data) < c*plane {
			return nil, 0, 0, false
		}
		switch c {
		case 1:
			return data[:plane], sw, sh, true
		case 2:
			return data[plane : 2*plane], sw, sh, true
		}
		return nil, 0, 0, false
	case 2:
		sh, sw := sz[0], sz[1]
		if len(data) < sh*sw {
			return nil, 0, 0, false
		}
		return data[:sh*sw], sw, sh, true
	}

	return nil, 0, 0, false
}

// Dispose releases the network and scratch buffer and resets the adapter to
// the uninitialized state.
func (m *Model) Dispose() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return nil
	}

	if err := m.net.Close(); err != nil {
		return fmt.Errorf("close segmentation model: %w", err)
	}
	if !m.scratch.Empty() {
		m.scratch.Close()
	}
	m.initialized = false
	m.log.Info("segmentation model released")
	return nil
}

// imageToMat converts a Go image.Image to a gocv.Mat in BGR format.
func imageToMat(img image.Image) gocv.Mat {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	mat := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC3)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			mat.SetUCharAt(y, x*3+0, uint8(b>>8))
			mat.SetUCharAt(y, x*3+1, uint8(g>>8))
			mat.SetUCharAt(y, x*3+2, uint8(r>>8))
		}
	}

	return mat
}
