package galaxy

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Sector identifies a fixed-size cubic region of space by its integer
// coordinates in the galaxy grid. The edge length is a property of the
// CoordinateSystem, not of the sector value itself.
type Sector struct {
	X, Y, Z int64
}

// Adjacent reports whether two sectors are the same or touch each other
// (Chebyshev distance at most 1)
func (s Sector) Adjacent(other Sector) bool {
	return axisAdjacent(s.X, other.X) &&
		axisAdjacent(s.Y, other.Y) &&
		axisAdjacent(s.Z, other.Z)
}

func axisAdjacent(a, b int64) bool {
	if a > b {
		a, b = b, a
	}
	// unsigned subtraction stays correct even when b-a overflows int64
	return uint64(b)-uint64(a) <= 1
}

// Offset returns the world-space position of the sector's minimum corner.
// At extreme indices this saturates f64 precision and is only meaningful for
// sectors near the active one.
func (s Sector) Offset(edge float64) mgl64.Vec3 {
	return mgl64.Vec3{
		float64(s.X) * edge,
		float64(s.Y) * edge,
		float64(s.Z) * edge,
	}
}

// Delta returns the per-axis index difference other-s as floats, for
// distance computation across arbitrarily distant sectors
func (s Sector) Delta(other Sector) mgl64.Vec3 {
	return mgl64.Vec3{
		indexDelta(s.X, other.X),
		indexDelta(s.Y, other.Y),
		indexDelta(s.Z, other.Z),
	}
}

// indexDelta computes b-a without wrapping; when the exact difference does
// not fit int64 it falls back to float arithmetic, which at that separation
// is beyond f64 resolution anyway
func indexDelta(a, b int64) float64 {
	d := b - a
	if (b > a) != (d > 0) && b != a {
		return float64(b) - float64(a)
	}
	return float64(d)
}

// Bounds is the axis-aligned extent of a sector in world space
type Bounds struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// Contains reports whether a point lies inside the bounds, with the maximum
// faces exclusive to match the [0, edge) local-offset convention
func (b Bounds) Contains(p mgl64.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() < b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() < b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() < b.Max.Z()
}

// ClosestPoint returns the point inside the bounds nearest to p
func (b Bounds) ClosestPoint(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		clamp(p.X(), b.Min.X(), b.Max.X()),
		clamp(p.Y(), b.Min.Y(), b.Max.Y()),
		clamp(p.Z(), b.Min.Z(), b.Max.Z()),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
