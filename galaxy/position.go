package galaxy

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Position is a hierarchical galaxy-scale position: a sector index plus a
// high-precision local offset within that sector.
//
// A normalized Position keeps Local in [0, edge) on every axis. Positions
// produced by the CoordinateSystem are always normalized; values built by
// hand should be passed through Normalize before use.
type Position struct {
	Sector Sector     `json:"sector"`
	Local  mgl64.Vec3 `json:"local"`
}

// SameSector reports whether two positions share a sector
func (p Position) SameSector(other Position) bool {
	return p.Sector == other.Sector
}

// String renders the position for diagnostics
func (p Position) String() string {
	return fmt.Sprintf("sector(%d,%d,%d)+(%.3f,%.3f,%.3f)",
		p.Sector.X, p.Sector.Y, p.Sector.Z,
		p.Local.X(), p.Local.Y(), p.Local.Z())
}
