package engine

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/whispra/ocr-sidecar/internal/config"
	"github.com/whispra/ocr-sidecar/internal/imaging"
)

// Tesseract is the gosseract-backed engine. One handle wraps one configured
// client, bound to a script and acceleration mode at construction time, and is
// reused for every subsequent Detect call on the same configuration.
type Tesseract struct {
	client *gosseract.Client
	script string
}

// NewTesseract constructs an engine for the given script identifier.
// Accelerated mode points the client at the fast trained-data set; a missing
// or unusable data set surfaces as a construction error so the caller can
// retry without acceleration.
func NewTesseract(cfg *config.Config, script string, accelerated bool) (*Tesseract, error) {
	dataDir, err := cfg.DataDirFor(accelerated)
	if err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	if err := client.SetTessdataPrefix(dataDir); err != nil {
		client.Close()
		return nil, fmt.Errorf("set trained data path: %w", err)
	}
	if err := client.SetLanguage(trainedDataName(script)); err != nil {
		client.Close()
		return nil, fmt.Errorf("set language %q: %w", script, err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_AUTO); err != nil {
		client.Close()
		return nil, fmt.Errorf("set page segmentation mode: %w", err)
	}

	return &Tesseract{client: client, script: script}, nil
}

// Detect stages the capture for recognition and returns line-level detections
// with coordinates mapped back to the original capture.
func (t *Tesseract) Detect(imagePath string) ([]Detection, error) {
	prep, err := imaging.Prepare(imagePath)
	if err != nil {
		return nil, err
	}
	defer prep.Cleanup()

	if err := t.client.SetImage(prep.Path); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := t.client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	detections := make([]Detection, 0, len(boxes))
	for _, box := range boxes {
		text := strings.TrimSpace(box.Word)
		if text == "" {
			continue
		}

		x1 := float64(box.Box.Min.X) / prep.Scale
		y1 := float64(box.Box.Min.Y) / prep.Scale
		x2 := float64(box.Box.Max.X) / prep.Scale
		y2 := float64(box.Box.Max.Y) / prep.Scale

		detections = append(detections, Detection{
			Quad: [4]Point{
				{X: x1, Y: y1},
				{X: x2, Y: y1},
				{X: x2, Y: y2},
				{X: x1, Y: y2},
			},
			Text:       text,
			Confidence: float64(box.Confidence) / 100.0,
		})
	}

	return detections, nil
}

// DefaultFactory returns the cache factory constructing gosseract engines
// against the given configuration.
func DefaultFactory(cfg *config.Config) Factory {
	return func(script string, accelerated bool) (Engine, error) {
		return NewTesseract(cfg, script, accelerated)
	}
}
