package lightyear

import (
	"github.com/akmonengine/lightyear/galaxy"
	"github.com/akmonengine/lightyear/pose"
	"github.com/go-gl/mathgl/mgl64"
)

const DEFAULT_WORKERS = 1

// World ties the coordinate core together and enforces the per-frame
// ordering: gather the camera world position, shift the origin at most once,
// then derive every camera-relative pose for the frame. The origin shift is
// the synchronization barrier between simulation and rendering phases; no
// camera-relative value may be read before BeginFrame returns.
type World struct {
	Coords    *CoordinateSystem
	Galaxy    *galaxy.CoordinateSystem
	Hierarchy *pose.Hierarchy
	Workers   int

	Events Events

	activeSector galaxy.Sector
	camera       mgl64.Vec3
}

// NewWorld creates a world from a validated configuration, with the default
// galaxy sector edge
func NewWorld(cfg LargeWorldConfig) (*World, error) {
	coords, err := NewCoordinateSystem(cfg)
	if err != nil {
		return nil, err
	}

	gcs, err := galaxy.NewCoordinateSystem(galaxy.DEFAULT_SECTOR_EDGE)
	if err != nil {
		return nil, err
	}

	return &World{
		Coords:    coords,
		Galaxy:    gcs,
		Hierarchy: pose.NewHierarchy(),
		Events:    NewEvents(),
	}, nil
}

// Camera returns the camera world position recorded by the last BeginFrame
func (w *World) Camera() mgl64.Vec3 {
	return w.camera
}

// ActiveSector returns the galaxy sector the camera currently occupies
func (w *World) ActiveSector() galaxy.Sector {
	return w.activeSector
}

// BeginFrame records the camera world position and re-centers the render
// origin if the camera moved beyond the shift threshold. It returns the
// shift delta and whether a shift occurred; the same values are also
// published as an OriginShiftEvent at EndFrame.
//
// Must be called exactly once per frame, before any camera-relative read.
func (w *World) BeginFrame(cameraWorldPos mgl64.Vec3) (mgl64.Vec3, bool) {
	w.camera = cameraWorldPos

	delta, shifted := w.Coords.MaybeShiftOrigin(cameraWorldPos)
	if shifted {
		w.Events.emit(OriginShiftEvent{
			Old:   w.Coords.Origin().Sub(delta),
			New:   w.Coords.Origin(),
			Delta: delta,
		})
	}

	sector := w.Galaxy.ActiveSectorFor(cameraWorldPos)
	if sector != w.activeSector {
		w.Events.emit(SectorChangeEvent{Old: w.activeSector, New: sector})
		w.activeSector = sector
	}

	return delta, shifted
}

// RenderPoses resolves the transform hierarchy and extracts a camera-relative
// pose for every node, in parallel. The returned slice reuses out when its
// capacity allows.
func (w *World) RenderPoses(out []pose.RenderPose) ([]pose.RenderPose, error) {
	if err := w.Hierarchy.Resolve(); err != nil {
		return out, err
	}

	n := w.Hierarchy.Len()
	if cap(out) < n {
		out = make([]pose.RenderPose, n)
	}
	out = out[:n]

	workers := max(DEFAULT_WORKERS, w.Workers)
	origin := w.Coords.Origin()
	budget := w.Coords.MaxRenderDistance()

	parallelRange(workers, n, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = w.Hierarchy.RenderPose(i, origin)
		}
	})

	// diagnostics are gathered serially so the event buffer needs no locking
	for i := range out {
		if m := float64(out[i].Magnitude()); m > budget {
			w.Events.emit(PrecisionWarningEvent{Magnitude: m, Budget: budget})
		}
	}

	return out, nil
}

// EndFrame delivers the events buffered during the frame
func (w *World) EndFrame() {
	w.Events.flush()
}
