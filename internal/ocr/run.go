// Package ocr implements the sidecar's OCR operation: request validation,
// language resolution, engine selection with acceleration fallback, and
// normalization of raw detections into the response shape the host
// application consumes.
package ocr

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/whispra/ocr-sidecar/internal/engine"
)

// DefaultLanguage is used when a request does not name a language.
const DefaultLanguage = "en"

// Run performs OCR on the image at imagePath. The language is an abstract
// code ("en", "zh", ...); unknown codes resolve to the Latin script. When
// accelerated mode is requested and the accelerated engine cannot be
// constructed, Run retries once without acceleration before giving up.
//
// Run never panics and never propagates an error: every failure is reported
// as a failed Response.
func Run(cache *engine.Cache, imagePath, language string, useGPU bool) Response {
	if language == "" {
		language = DefaultLanguage
	}
	script := engine.ResolveScript(language)

	if _, err := os.Stat(imagePath); err != nil {
		return Fail(fmt.Sprintf("Image file not found: %s", imagePath))
	}

	eng, err := cache.GetOrCreate(script, useGPU)
	if err != nil && useGPU {
		// Any accelerated construction failure is grounds for one retry in
		// standard mode, whatever the underlying cause.
		log.Printf("accelerated engine unavailable (%v), retrying without acceleration", err)
		eng, err = cache.GetOrCreate(script, false)
	}
	if err != nil {
		return Fail(err.Error())
	}

	detections, err := eng.Detect(imagePath)
	if err != nil {
		return Fail(err.Error())
	}

	boxes := make([]TextBox, 0, len(detections))
	texts := make([]string, 0, len(detections))
	for _, d := range detections {
		box := boxFromDetection(d)
		boxes = append(boxes, box)
		texts = append(texts, box.Text)
	}
	log.Printf("found %d text boxes in %s", len(boxes), imagePath)

	return Response{
		Success:    true,
		TextBoxes:  boxes,
		FullText:   strings.Join(texts, " "),
		Language:   script,
		TotalBoxes: len(boxes),
	}
}
