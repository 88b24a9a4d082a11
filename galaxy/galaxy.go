package galaxy

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DEFAULT_SECTOR_EDGE keeps f64 exact to well below a millimeter across
	// one sector
	DEFAULT_SECTOR_EDGE = 1e12
	// DEFAULT_ADOPT_THRESHOLD is the flat-space magnitude beyond which an
	// entity moves to the sectored representation
	DEFAULT_ADOPT_THRESHOLD = 1e15
	// DEFAULT_RENDER_DISTANCE bounds which sectored positions are considered
	// renderable
	DEFAULT_RENDER_DISTANCE = 1e15
	// MAX_VISIBLE_RADIUS caps the sector enumeration around the camera
	MAX_VISIBLE_RADIUS = 8
)

var (
	ErrInvalidSectorEdge = errors.New("sector edge length must be positive")
	ErrSectorOverflow    = errors.New("sector index out of representable range")
	ErrNotAdjacent       = errors.New("position is outside the active sector neighborhood")
)

// CoordinateSystem performs sector arithmetic for positions beyond flat
// double-precision safety.
//
// AdoptThreshold and RenderDistance are tuning policy, not invariants; the
// defaults are heuristics inherited from planetary-scale testing.
type CoordinateSystem struct {
	sectorEdge float64

	// AdoptThreshold is the FLAT to SECTORED transition distance
	AdoptThreshold float64
	// RenderDistance is the visibility cutoff for sectored positions
	RenderDistance float64
}

// NewCoordinateSystem creates a galaxy coordinate system with the given
// sector edge length
func NewCoordinateSystem(sectorEdge float64) (*CoordinateSystem, error) {
	if sectorEdge <= 0 || math.IsNaN(sectorEdge) || math.IsInf(sectorEdge, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSectorEdge, sectorEdge)
	}

	return &CoordinateSystem{
		sectorEdge:     sectorEdge,
		AdoptThreshold: DEFAULT_ADOPT_THRESHOLD,
		RenderDistance: DEFAULT_RENDER_DISTANCE,
	}, nil
}

// SectorEdge returns the edge length of one sector
func (cs *CoordinateSystem) SectorEdge() float64 {
	return cs.sectorEdge
}

// ToGalaxyPosition decomposes a flat position, expressed in the frame of the
// reference sector's origin, into sector plus normalized local offset
func (cs *CoordinateSystem) ToGalaxyPosition(flat mgl64.Vec3, reference Sector) (Position, error) {
	return cs.Normalize(Position{Sector: reference, Local: flat})
}

// Normalize re-wraps the local offset into [0, edge) per axis, carrying whole
// sector steps into the sector index. Normalize is idempotent: a normalized
// position passes through unchanged.
//
// Index arithmetic that would leave the representable int64 range is reported
// as ErrSectorOverflow, never wrapped silently.
func (cs *CoordinateSystem) Normalize(p Position) (Position, error) {
	sector := [3]int64{p.Sector.X, p.Sector.Y, p.Sector.Z}
	local := [3]float64{p.Local.X(), p.Local.Y(), p.Local.Z()}

	for axis := 0; axis < 3; axis++ {
		carry := math.Floor(local[axis] / cs.sectorEdge)
		if carry == 0 {
			continue
		}
		if carry >= float64(math.MaxInt64) || carry <= float64(math.MinInt64) || math.IsNaN(carry) {
			return p, fmt.Errorf("%w: axis %d carry %v", ErrSectorOverflow, axis, carry)
		}

		shifted, ok := addIndex(sector[axis], int64(carry))
		if !ok {
			return p, fmt.Errorf("%w: axis %d index %d + carry %d", ErrSectorOverflow, axis, sector[axis], int64(carry))
		}

		sector[axis] = shifted
		local[axis] -= carry * cs.sectorEdge

		// rounding in the carry multiply can leave the offset exactly on
		// the far face; fold it into the next sector
		if local[axis] >= cs.sectorEdge {
			shifted, ok = addIndex(sector[axis], 1)
			if !ok {
				return p, fmt.Errorf("%w: axis %d index %d + 1", ErrSectorOverflow, axis, sector[axis])
			}
			sector[axis] = shifted
			local[axis] -= cs.sectorEdge
		}
		if local[axis] < 0 {
			local[axis] = 0
		}
	}

	return Position{
		Sector: Sector{X: sector[0], Y: sector[1], Z: sector[2]},
		Local:  mgl64.Vec3{local[0], local[1], local[2]},
	}, nil
}

func addIndex(base, delta int64) (int64, bool) {
	sum := base + delta
	if (delta > 0 && sum < base) || (delta < 0 && sum > base) {
		return 0, false
	}
	return sum, true
}

// Distance computes the true distance between two galaxy positions.
//
// Both positions are expressed in a common frame by differencing their
// sector indices as integers and scaling by the edge length, so the result
// stays stable even for sectors separated by large index gaps. Neither
// position is ever flattened to a single absolute double.
func (cs *CoordinateSystem) Distance(a, b Position) float64 {
	rel := cs.relative(a, b)
	return rel.Len()
}

// CameraRelative expresses a position in the frame of a camera position,
// using the same integer sector differencing as Distance
func (cs *CoordinateSystem) CameraRelative(p, camera Position) mgl64.Vec3 {
	return cs.relative(camera, p)
}

// relative returns b expressed in a's frame
func (cs *CoordinateSystem) relative(a, b Position) mgl64.Vec3 {
	sectorDelta := a.Sector.Delta(b.Sector)
	return mgl64.Vec3{
		sectorDelta.X()*cs.sectorEdge + (b.Local.X() - a.Local.X()),
		sectorDelta.Y()*cs.sectorEdge + (b.Local.Y() - a.Local.Y()),
		sectorDelta.Z()*cs.sectorEdge + (b.Local.Z() - a.Local.Z()),
	}
}

// ActiveSectorFor determines which sector the camera occupies. The camera
// position is flat and therefore bounded by the flat-space regime, so the
// floor division cannot overflow in practice; extreme inputs saturate.
func (cs *CoordinateSystem) ActiveSectorFor(cameraWorldPos mgl64.Vec3) Sector {
	return Sector{
		X: floorIndex(cameraWorldPos.X() / cs.sectorEdge),
		Y: floorIndex(cameraWorldPos.Y() / cs.sectorEdge),
		Z: floorIndex(cameraWorldPos.Z() / cs.sectorEdge),
	}
}

func floorIndex(v float64) int64 {
	f := math.Floor(v)
	if f >= float64(math.MaxInt64) {
		return math.MaxInt64
	}
	if f <= float64(math.MinInt64) {
		return math.MinInt64
	}
	return int64(f)
}

// Flatten projects a galaxy position down to a flat position in the active
// sector's frame. Only positions in the active sector or one of its
// neighbors are within precision-safe range; anything further returns
// ErrNotAdjacent and must stay in hierarchical form.
func (cs *CoordinateSystem) Flatten(p Position, active Sector) (mgl64.Vec3, error) {
	if !p.Sector.Adjacent(active) {
		return mgl64.Vec3{}, fmt.Errorf("%w: sector (%d,%d,%d) vs active (%d,%d,%d)",
			ErrNotAdjacent, p.Sector.X, p.Sector.Y, p.Sector.Z, active.X, active.Y, active.Z)
	}

	return cs.relative(Position{Sector: active}, p), nil
}

// SectorBounds returns the world-space extent of a sector
func (cs *CoordinateSystem) SectorBounds(s Sector) Bounds {
	min := s.Offset(cs.sectorEdge)
	return Bounds{
		Min: min,
		Max: min.Add(mgl64.Vec3{cs.sectorEdge, cs.sectorEdge, cs.sectorEdge}),
	}
}

// ShouldRender reports whether a position is within render distance of the
// camera, with a cheap sector-level early rejection
func (cs *CoordinateSystem) ShouldRender(p, camera Position) bool {
	if p.SameSector(camera) {
		return p.Local.Sub(camera.Local).Len() <= cs.RenderDistance
	}

	sectorDist := camera.Sector.Delta(p.Sector).Len() * cs.sectorEdge
	if sectorDist > cs.RenderDistance+2*cs.sectorEdge {
		return false
	}

	return cs.Distance(p, camera) <= cs.RenderDistance
}

// VisibleSectors enumerates the sectors with any point within render
// distance of the camera. The search radius is capped so a misconfigured
// render distance cannot explode the enumeration.
func (cs *CoordinateSystem) VisibleSectors(camera Position) []Sector {
	radius := int64(MAX_VISIBLE_RADIUS)
	if ratio := math.Ceil(cs.RenderDistance / cs.sectorEdge); ratio+1 < MAX_VISIBLE_RADIUS {
		radius = int64(ratio) + 1
	}

	visible := make([]Sector, 0, 27)
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			for dz := -radius; dz <= radius; dz++ {
				sx, okX := addIndex(camera.Sector.X, dx)
				sy, okY := addIndex(camera.Sector.Y, dy)
				sz, okZ := addIndex(camera.Sector.Z, dz)
				if !okX || !okY || !okZ {
					continue
				}

				// candidate bounds expressed in the camera sector's frame,
				// so the test stays exact at any sector index
				corner := mgl64.Vec3{
					float64(dx) * cs.sectorEdge,
					float64(dy) * cs.sectorEdge,
					float64(dz) * cs.sectorEdge,
				}
				bounds := Bounds{
					Min: corner,
					Max: corner.Add(mgl64.Vec3{cs.sectorEdge, cs.sectorEdge, cs.sectorEdge}),
				}

				closest := bounds.ClosestPoint(camera.Local)
				if closest.Sub(camera.Local).Len() <= cs.RenderDistance {
					visible = append(visible, Sector{X: sx, Y: sy, Z: sz})
				}
			}
		}
	}

	return visible
}
