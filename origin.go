package lightyear

import (
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// SHIFT_HISTORY_CAP bounds the shift history kept for debugging
	SHIFT_HISTORY_CAP = 100
	// SHIFT_HISTORY_DRAIN is how many old entries are dropped once the cap is hit
	SHIFT_HISTORY_DRAIN = 50
)

// CoordinateSystem manages the active render origin and converts between
// world-space and camera-relative single-precision coordinates.
//
// The origin is always a previously observed camera world position. All
// world positions stay in the unbounded f64 frame; only the final
// camera-relative values are cast to f32 for GPU upload.
type CoordinateSystem struct {
	origin              mgl64.Vec3
	threshold           float64
	useLogarithmicDepth bool
	maxRenderDistance   float64

	shiftHistory      []OriginShift
	shiftsPerformed   int
	precisionExceeded uint64
}

// OriginShift records a single origin shift for debugging
type OriginShift struct {
	At     time.Time
	Old    mgl64.Vec3
	New    mgl64.Vec3
	Camera mgl64.Vec3
}

// CoordinateSystemStats is a snapshot of the origin manager state
type CoordinateSystemStats struct {
	Origin              mgl64.Vec3
	Threshold           float64
	MaxRenderDistance   float64
	UseLogarithmicDepth bool
	ShiftsPerformed     int
	PrecisionExceeded   uint64
}

// NewCoordinateSystem creates an origin manager from a validated configuration
func NewCoordinateSystem(cfg LargeWorldConfig) (*CoordinateSystem, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &CoordinateSystem{
		threshold:           cfg.OriginShiftThreshold,
		useLogarithmicDepth: cfg.UseLogarithmicDepth,
		maxRenderDistance:   cfg.MaxRenderDistance,
	}, nil
}

// Origin returns the active render origin in world space
func (cs *CoordinateSystem) Origin() mgl64.Vec3 {
	return cs.origin
}

// Threshold returns the configured shift trigger distance
func (cs *CoordinateSystem) Threshold() float64 {
	return cs.threshold
}

// UseLogarithmicDepth reports whether the renderer should use a logarithmic
// depth buffer for z-precision at extreme view distances
func (cs *CoordinateSystem) UseLogarithmicDepth() bool {
	return cs.useLogarithmicDepth
}

// MaxRenderDistance returns the soft precision budget for camera-relative
// magnitudes
func (cs *CoordinateSystem) MaxRenderDistance() float64 {
	return cs.maxRenderDistance
}

// MaybeShiftOrigin re-centers the render origin on the camera when the camera
// has moved beyond the configured threshold. It returns the shift delta
// (new origin minus old origin) and true when a shift occurred.
//
// Call at most once per frame, before any camera-relative conversion for that
// frame. Every consumer holding cached camera-relative values must re-derive
// them when a shift is reported; stale values produce a visible full-scene
// jump.
func (cs *CoordinateSystem) MaybeShiftOrigin(cameraWorldPos mgl64.Vec3) (mgl64.Vec3, bool) {
	if cameraWorldPos.Sub(cs.origin).Len() <= cs.threshold {
		return mgl64.Vec3{}, false
	}

	old := cs.origin
	cs.origin = cameraWorldPos
	delta := cs.origin.Sub(old)

	cs.shiftsPerformed++
	cs.shiftHistory = append(cs.shiftHistory, OriginShift{
		At:     time.Now(),
		Old:    old,
		New:    cs.origin,
		Camera: cameraWorldPos,
	})
	if len(cs.shiftHistory) > SHIFT_HISTORY_CAP {
		cs.shiftHistory = append(cs.shiftHistory[:0], cs.shiftHistory[SHIFT_HISTORY_DRAIN:]...)
	}

	slog.Info("origin shift performed",
		"old", old, "new", cs.origin, "delta", delta)

	return delta, true
}

// ToCameraRelative converts a world position to camera-relative single
// precision. The subtraction happens in f64; the cast to f32 is the last step.
//
// Soft contract: results whose magnitude exceeds MaxRenderDistance approach
// the single-precision error floor. This is tracked as a diagnostic, never an
// error.
func (cs *CoordinateSystem) ToCameraRelative(worldPos mgl64.Vec3) mgl32.Vec3 {
	rel := worldPos.Sub(cs.origin)

	if rel.Len() > cs.maxRenderDistance {
		cs.precisionExceeded++
		slog.Debug("camera-relative magnitude exceeds precision budget",
			"magnitude", rel.Len(), "budget", cs.maxRenderDistance)
	}

	return mgl32.Vec3{float32(rel.X()), float32(rel.Y()), float32(rel.Z())}
}

// ShiftHistory returns a copy of the recorded origin shifts, oldest first
func (cs *CoordinateSystem) ShiftHistory() []OriginShift {
	history := make([]OriginShift, len(cs.shiftHistory))
	copy(history, cs.shiftHistory)
	return history
}

// Stats returns a snapshot of the coordinate system state
func (cs *CoordinateSystem) Stats() CoordinateSystemStats {
	return CoordinateSystemStats{
		Origin:              cs.origin,
		Threshold:           cs.threshold,
		MaxRenderDistance:   cs.maxRenderDistance,
		UseLogarithmicDepth: cs.useLogarithmicDepth,
		ShiftsPerformed:     cs.shiftsPerformed,
		PrecisionExceeded:   cs.precisionExceeded,
	}
}
