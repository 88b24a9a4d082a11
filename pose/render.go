package pose

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// RenderPose is a camera-relative, single-precision pose ready for GPU
// buffer upload. It is only valid for the origin it was derived from; after
// an origin shift every cached RenderPose must be re-derived.
type RenderPose struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// Magnitude returns the distance from the render origin
func (p RenderPose) Magnitude() float32 {
	x, y, z := p.Position.X(), p.Position.Y(), p.Position.Z()
	return math32.Sqrt(x*x + y*y + z*z)
}

// Headroom returns the fraction of the precision budget this pose consumes.
// Values above 1 mean the pose is outside the configured safe range and
// single-precision rounding may become visible.
func (p RenderPose) Headroom(maxRenderDistance float64) float32 {
	if maxRenderDistance <= 0 {
		return 0
	}
	return p.Magnitude() / float32(maxRenderDistance)
}
