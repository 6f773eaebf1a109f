package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	"image/png"
	"os"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// upscaleBelow is the longest-side threshold (pixels) under which a capture is
// upscaled before recognition. Small captures carry small glyphs, and the
// recognizer does noticeably better on 2x supersampled input.
const upscaleBelow = 900

// darkLuminance is the mean-luminance cutoff below which a capture is treated
// as a dark UI theme and inverted to dark-on-light before recognition.
const darkLuminance = 0.35

// Prepared is a capture staged for recognition: a temporary PNG on disk plus
// the scale factor that was applied, so detection coordinates can be mapped
// back to the original capture.
type Prepared struct {
	// Path is the temporary PNG handed to the engine.
	Path string

	// Scale is the upscale factor applied to the capture (1 when unchanged).
	// Divide detection coordinates by Scale to recover original coordinates.
	Scale float64

	// Inverted reports whether the capture was inverted for a dark theme.
	Inverted bool
}

// Cleanup removes the temporary file. Safe to call more than once.
func (p *Prepared) Cleanup() {
	if p.Path != "" {
		os.Remove(p.Path)
		p.Path = ""
	}
}

// Prepare stages the capture at path for recognition: grayscale conversion,
// inversion of dark-theme captures, and 2x upscaling of small captures. The
// caller owns the returned temp file and must call Cleanup.
func Prepare(path string) (*Prepared, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	gray := effect.Grayscale(img)

	inverted := false
	var staged image.Image = gray
	if meanLuminance(gray) < darkLuminance {
		staged = effect.Invert(gray)
		inverted = true
	}

	scale := 1.0
	bounds := staged.Bounds()
	longest := bounds.Dx()
	if bounds.Dy() > longest {
		longest = bounds.Dy()
	}
	if longest > 0 && longest < upscaleBelow {
		scale = 2.0
		staged = imaging.Resize(staged, bounds.Dx()*2, bounds.Dy()*2, imaging.Lanczos)
	}

	tmpFile, err := os.CreateTemp("", "ocr-capture-*.png")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if err := png.Encode(tmpFile, staged); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to encode temp image: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to write temp image: %w", err)
	}

	return &Prepared{Path: tmpPath, Scale: scale, Inverted: inverted}, nil
}

// meanLuminance samples the image on a coarse grid and returns the mean
// perceptual lightness (CIE L*, scaled to [0, 1]).
func meanLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 1.0
	}

	step := bounds.Dx() / 64
	if bounds.Dy()/64 > step {
		step = bounds.Dy() / 64
	}
	if step < 1 {
		step = 1
	}

	var sum float64
	var count int
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			l, _, _ := c.Lab()
			sum += l
			count++
		}
	}
	if count == 0 {
		return 1.0
	}
	return sum / float64(count)
}
