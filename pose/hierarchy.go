package pose

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// NO_PARENT marks a root node
const NO_PARENT = -1

var ErrHierarchyCycle = errors.New("cyclic parent link in transform hierarchy")

// Hierarchy is an arena of parent-linked world transforms.
//
// Parent links are back-references by index, so the graph is validated as a
// DAG at Resolve time rather than assumed acyclic structurally. Composition
// of child poses runs end-to-end in f64; the only f32 cast happens at the
// final camera-relative step.
type Hierarchy struct {
	nodes []node
}

type node struct {
	local  WorldTransform
	parent int
	global WorldTransform
}

// NewHierarchy creates an empty transform hierarchy
func NewHierarchy() *Hierarchy {
	return &Hierarchy{}
}

// Add appends a transform and returns its index. parent must be NO_PARENT or
// the index of a previously added node.
func (h *Hierarchy) Add(parent int, local WorldTransform) int {
	h.nodes = append(h.nodes, node{local: local, parent: parent, global: local})
	return len(h.nodes) - 1
}

// Len returns the number of nodes
func (h *Hierarchy) Len() int {
	return len(h.nodes)
}

// Local returns a mutable reference to a node's local transform, for
// physics and scripting producers
func (h *Hierarchy) Local(i int) *WorldTransform {
	return &h.nodes[i].local
}

// SetParent re-parents a node. Cycles introduced here are reported by the
// next Resolve call.
func (h *Hierarchy) SetParent(i, parent int) {
	h.nodes[i].parent = parent
}

// Parent returns the parent index of a node, or NO_PARENT
func (h *Hierarchy) Parent(i int) int {
	return h.nodes[i].parent
}

// Resolve recomputes every node's effective world pose from the parent
// links, breadth-first from the roots. A node left unreachable means its
// parent chain loops, which is reported as ErrHierarchyCycle.
func (h *Hierarchy) Resolve() error {
	children := make([][]int, len(h.nodes))
	queue := make([]int, 0, len(h.nodes))
	visited := make([]bool, len(h.nodes))

	for i, n := range h.nodes {
		if n.parent == NO_PARENT {
			h.nodes[i].global = n.local
			visited[i] = true
			queue = append(queue, i)
			continue
		}
		children[n.parent] = append(children[n.parent], i)
	}

	for head := 0; head < len(queue); head++ {
		parent := queue[head]
		for _, child := range children[parent] {
			if visited[child] {
				continue
			}
			visited[child] = true

			h.nodes[child].global = compose(h.nodes[parent].global, h.nodes[child].local)
			queue = append(queue, child)
		}
	}

	for i, ok := range visited {
		if !ok {
			return fmt.Errorf("%w: node %d is unreachable from any root", ErrHierarchyCycle, i)
		}
	}

	return nil
}

// compose combines a parent world pose with a child local pose. The local
// offset is scaled, rotated and added in f64.
func compose(parent, local WorldTransform) WorldTransform {
	scaled := mgl64.Vec3{
		local.Position.X() * float64(parent.Scale.X()),
		local.Position.Y() * float64(parent.Scale.Y()),
		local.Position.Z() * float64(parent.Scale.Z()),
	}

	return WorldTransform{
		Position: parent.Position.Add(Quat64(parent.Rotation).Rotate(scaled)),
		Rotation: parent.Rotation.Mul(local.Rotation),
		Scale: mgl32.Vec3{
			parent.Scale.X() * local.Scale.X(),
			parent.Scale.Y() * local.Scale.Y(),
			parent.Scale.Z() * local.Scale.Z(),
		},
	}
}

// Global returns a node's resolved world pose. Only valid after Resolve.
func (h *Hierarchy) Global(i int) WorldTransform {
	return h.nodes[i].global
}

// GlobalPosition returns a node's resolved world position
func (h *Hierarchy) GlobalPosition(i int) mgl64.Vec3 {
	return h.nodes[i].global.Position
}

// RenderPose derives a node's camera-relative pose for the given origin
func (h *Hierarchy) RenderPose(i int, origin mgl64.Vec3) RenderPose {
	return h.nodes[i].global.ToCameraRelative(origin)
}
