// Package config loads detector configuration from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the tunable settings of the detection pipeline.
type Config struct {
	// ModelPath points at the person-segmentation model file. Empty means
	// no model: segmentation falls back to an all-person mask.
	ModelPath string

	// ModelInputSize is the square side length images are resized to
	// before inference.
	ModelInputSize int

	// MinRegionArea is the noise floor for connected components, in pixels.
	MinRegionArea int

	// KeepMasks attaches intermediate masks to results (needed for the
	// overlay skin tint).
	KeepMasks bool

	LogLevel string
	LogFile  string
}

// Load reads configuration with defaults, a .env file (when present) and
// environment variable overrides, in that order of precedence.
func Load() *Config {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	cfg := &Config{
		ModelInputSize: 256,
		MinRegionArea:  100,
		KeepMasks:      true,
		LogLevel:       "info",
	}

	if val := os.Getenv("SKINDETECT_MODEL"); val != "" {
		cfg.ModelPath = val
	}
	if val := getIntEnv("SKINDETECT_MODEL_INPUT_SIZE"); val > 0 {
		cfg.ModelInputSize = val
	}
	if val := getIntEnv("SKINDETECT_MIN_REGION_AREA"); val > 0 {
		cfg.MinRegionArea = val
	}
	if val := os.Getenv("SKINDETECT_KEEP_MASKS"); val != "" {
		cfg.KeepMasks = val == "1" || val == "true"
	}
	if val := os.Getenv("SKINDETECT_LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}
	if val := os.Getenv("SKINDETECT_LOG_FILE"); val != "" {
		cfg.LogFile = val
	}

	return cfg
}

// getIntEnv retrieves an integer environment variable, 0 when unset or
// malformed.
func getIntEnv(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return n
}
