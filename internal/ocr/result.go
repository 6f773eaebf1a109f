package ocr

import (
	"math"

	"github.com/whispra/ocr-sidecar/internal/engine"
)

// TextBox is one recognized text region, normalized to an axis-aligned
// rectangle with integer pixel coordinates.
type TextBox struct {
	Text       string  `json:"text"`
	X          int     `json:"x"`
	Y          int     `json:"y"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Confidence float64 `json:"confidence"`
}

// Response is the result of one OCR request. On success TextBoxes carries the
// detections in recognition order, FullText the space-joined texts, Language
// the resolved script identifier, and TotalBoxes the detection count; all
// four keys are emitted even when nothing was detected. On failure Error
// carries the message and TextBoxes is empty but never null.
type Response struct {
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
	TextBoxes  []TextBox `json:"text_boxes"`
	FullText   string    `json:"full_text"`
	Language   string    `json:"language,omitempty"`
	TotalBoxes int       `json:"total_boxes"`
}

// Fail builds a failed Response with the given message.
func Fail(message string) Response {
	return Response{
		Success:   false,
		Error:     message,
		TextBoxes: []TextBox{},
	}
}

// boxFromDetection flattens a quadrilateral detection into an axis-aligned
// box using the first and third corners (the diagonal), taking the minimum
// corner as the origin so reversed diagonals still yield non-negative sizes.
func boxFromDetection(d engine.Detection) TextBox {
	x1, y1 := d.Quad[0].X, d.Quad[0].Y
	x2, y2 := d.Quad[2].X, d.Quad[2].Y

	return TextBox{
		Text:       d.Text,
		X:          int(math.Min(x1, x2)),
		Y:          int(math.Min(y1, y2)),
		Width:      int(math.Abs(x2 - x1)),
		Height:     int(math.Abs(y2 - y1)),
		Confidence: d.Confidence,
	}
}
