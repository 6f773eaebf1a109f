// Package config resolves the locations of the OCR trained-data sets.
//
// The sidecar never mutates process-wide search paths at runtime; the data
// directories are resolved once at startup and handed to the engine layer
// explicitly. Two sets exist: the standard models, and a fast integer-LSTM set
// used when accelerated inference is requested.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Environment overrides for the resolved data directories.
const (
	EnvDataDir     = "OCR_SIDECAR_DATA_DIR"
	EnvFastDataDir = "OCR_SIDECAR_FAST_DATA_DIR"
)

// Config holds the resolved trained-data locations.
type Config struct {
	// DataDir is the standard trained-data directory.
	DataDir string

	// FastDataDir holds the fast integer-LSTM trained-data set, preferred
	// when accelerated inference is requested. May be absent on disk.
	FastDataDir string
}

// Load resolves the configuration from environment overrides, falling back to
// the host application's model directory under the user config dir.
func Load() *Config {
	cfg := &Config{
		DataDir:     os.Getenv(EnvDataDir),
		FastDataDir: os.Getenv(EnvFastDataDir),
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	modelRoot := filepath.Join(base, "whispra", "models")

	if cfg.DataDir == "" {
		cfg.DataDir = filepath.Join(modelRoot, "tessdata")
	}
	if cfg.FastDataDir == "" {
		cfg.FastDataDir = filepath.Join(modelRoot, "tessdata-fast")
	}
	return cfg
}

// DataDirFor returns the trained-data directory to use for the requested
// acceleration mode. Accelerated requests prefer the fast set and quietly fall
// back to the standard set when the fast set is not installed. An error means
// no usable set exists on disk.
func (c *Config) DataDirFor(accelerated bool) (string, error) {
	if accelerated && dirExists(c.FastDataDir) {
		return c.FastDataDir, nil
	}
	if dirExists(c.DataDir) {
		return c.DataDir, nil
	}
	if accelerated {
		return "", fmt.Errorf("no trained data installed (checked %s and %s)", c.FastDataDir, c.DataDir)
	}
	return "", fmt.Errorf("no trained data installed (checked %s)", c.DataDir)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
