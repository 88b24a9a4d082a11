package galaxy

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Tier names the two position representations an entity can be in
type Tier uint8

const (
	// TierFlat is an ordinary flat f64 world position
	TierFlat Tier = iota
	// TierSectored is a hierarchical sector+local position
	TierSectored
)

func (t Tier) String() string {
	switch t {
	case TierFlat:
		return "flat"
	case TierSectored:
		return "sectored"
	}
	return "unknown"
}

// EntityPosition is the tagged per-entity representation: exactly one of a
// flat world position or a sectored galaxy position is populated, so every
// consumer must handle both cases explicitly.
type EntityPosition struct {
	tier     Tier
	flat     mgl64.Vec3
	sectored Position
}

// FlatPosition wraps an ordinary world position
func FlatPosition(p mgl64.Vec3) EntityPosition {
	return EntityPosition{tier: TierFlat, flat: p}
}

// SectoredPosition wraps a hierarchical galaxy position
func SectoredPosition(p Position) EntityPosition {
	return EntityPosition{tier: TierSectored, sectored: p}
}

// Tier returns which representation is populated
func (ep EntityPosition) Tier() Tier {
	return ep.tier
}

// AsFlat returns the flat position when the entity is in the flat tier
func (ep EntityPosition) AsFlat() (mgl64.Vec3, bool) {
	return ep.flat, ep.tier == TierFlat
}

// AsSectored returns the galaxy position when the entity is in the sectored
// tier
func (ep EntityPosition) AsSectored() (Position, bool) {
	return ep.sectored, ep.tier == TierSectored
}

// Promote moves a flat entity to the sectored tier once its distance from
// the active origin exceeds AdoptThreshold. Entities below the threshold and
// entities already sectored pass through unchanged. The true position is
// preserved to double-precision rounding.
func (cs *CoordinateSystem) Promote(ep EntityPosition, origin mgl64.Vec3) (EntityPosition, error) {
	if ep.tier != TierFlat {
		return ep, nil
	}
	if ep.flat.Sub(origin).Len() <= cs.AdoptThreshold {
		return ep, nil
	}

	pos, err := cs.ToGalaxyPosition(ep.flat, Sector{})
	if err != nil {
		return ep, err
	}

	return SectoredPosition(pos), nil
}

// Demote moves a sectored entity back to the flat tier once its sector is
// the active sector or one of its neighbors. Entities further out and
// entities already flat pass through unchanged. The result is expressed in
// the active sector's frame.
func (cs *CoordinateSystem) Demote(ep EntityPosition, active Sector) (EntityPosition, error) {
	if ep.tier != TierSectored {
		return ep, nil
	}
	if !ep.sectored.Sector.Adjacent(active) {
		return ep, nil
	}

	flat, err := cs.Flatten(ep.sectored, active)
	if err != nil {
		return ep, err
	}

	return FlatPosition(flat), nil
}
