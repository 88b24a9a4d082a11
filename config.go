package lightyear

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const (
	// DEFAULT_ORIGIN_SHIFT_THRESHOLD is the camera distance (world units) that
	// triggers a render origin shift, 50km by default
	DEFAULT_ORIGIN_SHIFT_THRESHOLD = 50_000.0
	// DEFAULT_MAX_RENDER_DISTANCE is the soft budget for camera-relative
	// magnitudes, 1 billion units by default
	DEFAULT_MAX_RENDER_DISTANCE = 1e9
)

var (
	ErrInvalidThreshold      = errors.New("origin shift threshold must be positive")
	ErrInvalidRenderDistance = errors.New("max render distance must be positive")
)

// LargeWorldConfig is the static configuration for the large world coordinate
// system. It is consumed once at world setup; the running system is never
// asked to operate on unvalidated values.
type LargeWorldConfig struct {
	// Enable large world coordinate support
	EnableLargeWorld bool `toml:"enable_large_world"`
	// Distance threshold for origin shifting (in world units)
	OriginShiftThreshold float64 `toml:"origin_shift_threshold"`
	// Use logarithmic depth buffer for better z-precision
	UseLogarithmicDepth bool `toml:"use_logarithmic_depth"`
	// Maximum rendering distance from camera
	MaxRenderDistance float64 `toml:"max_render_distance"`
}

// DefaultLargeWorldConfig returns the documented defaults
func DefaultLargeWorldConfig() LargeWorldConfig {
	return LargeWorldConfig{
		EnableLargeWorld:     true,
		OriginShiftThreshold: DEFAULT_ORIGIN_SHIFT_THRESHOLD,
		UseLogarithmicDepth:  true,
		MaxRenderDistance:    DEFAULT_MAX_RENDER_DISTANCE,
	}
}

// Validate rejects configurations the coordinate core must never run with.
// A zero or negative threshold would degenerate to shifting every frame.
func (c LargeWorldConfig) Validate() error {
	if c.OriginShiftThreshold <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidThreshold, c.OriginShiftThreshold)
	}
	if c.MaxRenderDistance <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidRenderDistance, c.MaxRenderDistance)
	}
	return nil
}

// LoadConfig reads a TOML configuration file. Absent keys keep their default
// values, and the result is validated before being returned.
func LoadConfig(path string) (LargeWorldConfig, error) {
	cfg := DefaultLargeWorldConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}

	return cfg, nil
}
