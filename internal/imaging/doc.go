// Package imaging stages screen captures for recognition.
//
// Screen captures are awkward OCR input: small UI text, dark themes, colored
// backgrounds. Prepare normalizes a capture before it reaches the engine:
// grayscale conversion, inversion of dark-theme captures, and 2x upscaling of
// small captures. The staged image is written to a temporary PNG because the
// engine consumes file paths; the applied scale factor travels with it so
// detection coordinates can be mapped back to the original capture.
package imaging
