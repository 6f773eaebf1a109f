package engine

// Point is a pixel coordinate in the source capture.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Detection is one recognized text region as reported by the backend: the
// quadrilateral outlining the region (corners ordered top-left, top-right,
// bottom-right, bottom-left), the recognized text, and a confidence in [0, 1].
type Detection struct {
	Quad       [4]Point
	Text       string
	Confidence float64
}

// Engine is one configured instance of the OCR capability, bound to a single
// script and acceleration mode. Implementations are not safe for concurrent
// use; the sidecar drives them from a single goroutine.
type Engine interface {
	// Detect recognizes text regions in the image at the given path.
	// Coordinates are relative to the original image, regardless of any
	// preprocessing the implementation applies.
	Detect(imagePath string) ([]Detection, error)
}
