package pose

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// GALAXY_SCALE_THRESHOLD is the distance from the world origin beyond which a
// flat f64 position should move to a sectored representation
const GALAXY_SCALE_THRESHOLD = 1e15

// WorldTransform represents a high-precision pose in the unbounded world frame.
//
// Position uses 64-bit floats so entities stay stable at planetary distances
// from the origin. Rotation and scale are origin-shift invariant and keep
// single precision. Position is always world-space, never camera-relative;
// producers (physics, scripting) must only ever write world-space values here.
type WorldTransform struct {
	Position mgl64.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// NewWorldTransform creates an identity transform
func NewWorldTransform() WorldTransform {
	return WorldTransform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// FromPosition creates a transform at the given world position
func FromPosition(position mgl64.Vec3) WorldTransform {
	t := NewWorldTransform()
	t.Position = position
	return t
}

// FromPositionRotation creates a transform with position and rotation
func FromPositionRotation(position mgl64.Vec3, rotation mgl32.Quat) WorldTransform {
	t := NewWorldTransform()
	t.Position = position
	t.Rotation = rotation
	return t
}

// ToCameraRelative derives the renderer-ready pose for the given render
// origin. The subtraction is done in f64; only the result is cast to f32,
// which is safe because the value is now camera-relative and small.
func (t WorldTransform) ToCameraRelative(origin mgl64.Vec3) RenderPose {
	rel := t.Position.Sub(origin)

	return RenderPose{
		Position: mgl32.Vec3{float32(rel.X()), float32(rel.Y()), float32(rel.Z())},
		Rotation: t.Rotation,
		Scale:    t.Scale,
	}
}

// SetWorldPosition sets the position in world space
func (t *WorldTransform) SetWorldPosition(position mgl64.Vec3) {
	t.Position = position
}

// Translate moves the transform by a world-space delta. Mutation always
// happens in world space so repeated updates never accumulate f32 error.
func (t *WorldTransform) Translate(delta mgl64.Vec3) {
	t.Position = t.Position.Add(delta)
}

// DistanceTo returns the world-space distance to another transform
func (t WorldTransform) DistanceTo(other WorldTransform) float64 {
	return t.Position.Sub(other.Position).Len()
}

// WithinRenderDistance reports whether the transform is close enough to the
// camera to be rendered
func (t WorldTransform) WithinRenderDistance(cameraWorldPos mgl64.Vec3, maxDistance float64) bool {
	return t.Position.Sub(cameraWorldPos).Len() <= maxDistance
}

// GalaxyScale reports whether the position sits beyond flat double-precision
// safety and should be promoted to a sectored representation
func (t WorldTransform) GalaxyScale() bool {
	return t.Position.Len() > GALAXY_SCALE_THRESHOLD
}

// Matrix returns the full TRS matrix in 64-bit precision
func (t WorldTransform) Matrix() mgl64.Mat4 {
	translate := mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotate := Quat64(t.Rotation).Mat4()
	scale := mgl64.Scale3D(float64(t.Scale.X()), float64(t.Scale.Y()), float64(t.Scale.Z()))

	return translate.Mul4(rotate).Mul4(scale)
}

// LookAt orients the transform towards a target, with -Z as forward in a
// right-handed frame
func (t *WorldTransform) LookAt(target, up mgl64.Vec3) {
	forward := target.Sub(t.Position).Normalize()
	right := forward.Cross(up).Normalize()
	actualUp := right.Cross(forward)

	// basis vectors as the columns of the rotation matrix
	back := forward.Mul(-1)
	m := mgl64.Mat3{
		right.X(), right.Y(), right.Z(),
		actualUp.X(), actualUp.Y(), actualUp.Z(),
		back.X(), back.Y(), back.Z(),
	}

	t.Rotation = Quat32(mgl64.Mat4ToQuat(m.Mat4()))
}

// Quat64 widens a single-precision quaternion for f64 composition
func Quat64(q mgl32.Quat) mgl64.Quat {
	return mgl64.Quat{
		W: float64(q.W),
		V: mgl64.Vec3{float64(q.V.X()), float64(q.V.Y()), float64(q.V.Z())},
	}
}

// Quat32 narrows a quaternion back to single precision
func Quat32(q mgl64.Quat) mgl32.Quat {
	return mgl32.Quat{
		W: float32(q.W),
		V: mgl32.Vec3{float32(q.V.X()), float32(q.V.Y()), float32(q.V.Z())},
	}
}
