package engine

import (
	"github.com/otiai10/gosseract/v2"

	"github.com/whispra/ocr-sidecar/internal/config"
)

// Info describes the availability of the OCR backend.
type Info struct {
	Available   bool     `json:"available"`
	Version     string   `json:"version,omitempty"`
	Error       string   `json:"error,omitempty"`
	Backend     string   `json:"backend"`
	DataDir     string   `json:"data_dir,omitempty"`
	FastDataDir string   `json:"fast_data_dir,omitempty"`
	Languages   []string `json:"languages"`
}

// Probe reports whether the backend can be used with the given configuration:
// trained-data resolution for both modes, the Tesseract version, and the
// abstract language codes the sidecar accepts.
func Probe(cfg *config.Config) Info {
	info := Info{
		Backend:   "tesseract (gosseract)",
		Languages: SupportedLanguages(),
	}

	dataDir, err := cfg.DataDirFor(false)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.DataDir = dataDir

	if fastDir, err := cfg.DataDirFor(true); err == nil && fastDir != dataDir {
		info.FastDataDir = fastDir
	}

	client := gosseract.NewClient()
	defer client.Close()
	info.Version = client.Version()
	info.Available = true
	return info
}
