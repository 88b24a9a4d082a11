package lightyear

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLargeWorldConfig(t *testing.T) {
	cfg := DefaultLargeWorldConfig()

	if !cfg.EnableLargeWorld {
		t.Error("EnableLargeWorld should default to true")
	}
	if cfg.OriginShiftThreshold != 50_000.0 {
		t.Errorf("OriginShiftThreshold = %v, want 50000", cfg.OriginShiftThreshold)
	}
	if !cfg.UseLogarithmicDepth {
		t.Error("UseLogarithmicDepth should default to true")
	}
	if cfg.MaxRenderDistance != 1e9 {
		t.Errorf("MaxRenderDistance = %v, want 1e9", cfg.MaxRenderDistance)
	}
}

func TestLargeWorldConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*LargeWorldConfig)
		wantErr error
	}{
		{"defaults valid", func(c *LargeWorldConfig) {}, nil},
		{"zero threshold", func(c *LargeWorldConfig) { c.OriginShiftThreshold = 0 }, ErrInvalidThreshold},
		{"negative threshold", func(c *LargeWorldConfig) { c.OriginShiftThreshold = -50 }, ErrInvalidThreshold},
		{"zero render distance", func(c *LargeWorldConfig) { c.MaxRenderDistance = 0 }, ErrInvalidRenderDistance},
		{"negative render distance", func(c *LargeWorldConfig) { c.MaxRenderDistance = -1e9 }, ErrInvalidRenderDistance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultLargeWorldConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(dir, "partial.toml")
		data := []byte("origin_shift_threshold = 25000.0\n")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.OriginShiftThreshold != 25_000.0 {
			t.Errorf("OriginShiftThreshold = %v, want 25000", cfg.OriginShiftThreshold)
		}
		if cfg.MaxRenderDistance != 1e9 {
			t.Errorf("MaxRenderDistance = %v, want default 1e9", cfg.MaxRenderDistance)
		}
		if !cfg.UseLogarithmicDepth {
			t.Error("UseLogarithmicDepth should keep its default")
		}
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.toml")
		data := []byte("origin_shift_threshold = -1.0\n")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidThreshold) {
			t.Errorf("LoadConfig() error = %v, want ErrInvalidThreshold", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "missing.toml"))
		if err == nil {
			t.Error("LoadConfig() should fail for a missing file")
		}
	})
}
