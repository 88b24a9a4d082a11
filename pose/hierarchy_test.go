package pose

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

func TestHierarchy_PrecisionAtLargeDistances(t *testing.T) {
	h := NewHierarchy()

	// Parent 50 million units out, child 10 units along +x
	parent := h.Add(NO_PARENT, FromPosition(mgl64.Vec3{50_000_000, 0, 0}))
	child := h.Add(parent, FromPosition(mgl64.Vec3{10, 0, 0}))

	if err := h.Resolve(); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if got := h.GlobalPosition(child); got != (mgl64.Vec3{50_000_010, 0, 0}) {
		t.Errorf("child global = %v, want (50000010,0,0)", got)
	}

	// Composition stays in f64 end-to-end; the f32 cast happens only here
	origin := mgl64.Vec3{50_000_005, 0, 0}
	rel := h.RenderPose(child, origin)
	if math.Abs(float64(rel.Position.X())-5) > 0.001 {
		t.Errorf("child relative x = %v, want 5", rel.Position.X())
	}
}

func TestHierarchy_ComposeRotationScale(t *testing.T) {
	h := NewHierarchy()

	parentTransform := FromPosition(mgl64.Vec3{100, 0, 0})
	parentTransform.Rotation = mgl32.QuatRotate(float32(math.Pi/2), mgl32.Vec3{0, 1, 0})
	parentTransform.Scale = mgl32.Vec3{2, 2, 2}
	parent := h.Add(NO_PARENT, parentTransform)

	child := h.Add(parent, FromPosition(mgl64.Vec3{1, 0, 0}))

	if err := h.Resolve(); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	// local +x scaled to 2 then rotated 90 degrees about +y lands on -z
	got := h.GlobalPosition(child)
	want := mgl64.Vec3{100, 0, -2}
	if got.Sub(want).Len() > 1e-5 {
		t.Errorf("child global = %v, want %v", got, want)
	}

	if s := h.Global(child).Scale; s.Sub(mgl32.Vec3{2, 2, 2}).Len() > 1e-6 {
		t.Errorf("child global scale = %v, want (2,2,2)", s)
	}
}

func TestHierarchy_DeepChain(t *testing.T) {
	h := NewHierarchy()

	node := h.Add(NO_PARENT, FromPosition(mgl64.Vec3{1_000_000, 0, 0}))
	for i := 0; i < 10; i++ {
		node = h.Add(node, FromPosition(mgl64.Vec3{1, 0, 0}))
	}

	if err := h.Resolve(); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if got := h.GlobalPosition(node); got != (mgl64.Vec3{1_000_010, 0, 0}) {
		t.Errorf("leaf global = %v, want (1000010,0,0)", got)
	}
}

func TestHierarchy_CycleDetection(t *testing.T) {
	h := NewHierarchy()
	a := h.Add(NO_PARENT, NewWorldTransform())
	b := h.Add(a, NewWorldTransform())
	h.SetParent(a, b) // a -> b -> a

	if err := h.Resolve(); !errors.Is(err, ErrHierarchyCycle) {
		t.Errorf("Resolve() error = %v, want ErrHierarchyCycle", err)
	}
}

func TestHierarchy_LocalMutation(t *testing.T) {
	h := NewHierarchy()
	root := h.Add(NO_PARENT, FromPosition(mgl64.Vec3{5, 0, 0}))

	h.Local(root).Translate(mgl64.Vec3{0, 7, 0})
	if err := h.Resolve(); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if got := h.GlobalPosition(root); got != (mgl64.Vec3{5, 7, 0}) {
		t.Errorf("global = %v, want (5,7,0)", got)
	}
}
