// Package transform is a 3D scene-graph of named nodes. World poses are kept
// in sync eagerly: any local or world write refreshes the node's subtree, so
// reads never see a stale pose.
package transform

import (
	"github.com/automoto/bonebrawl/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

type Node struct {
	Name string

	local    gamemath.Pose
	world    gamemath.Pose
	parent   *Node
	children []*Node
}

// NewNode returns a root node at the identity pose.
func NewNode(name string) *Node {
	return &Node{
		Name:  name,
		local: gamemath.IdentityPose(),
		world: gamemath.IdentityPose(),
	}
}

// NewChild creates a node under parent with the given local pose.
func NewChild(parent *Node, name string, local gamemath.Pose) *Node {
	n := NewNode(name)
	n.local = local
	if parent != nil {
		n.SetParent(parent, false)
	} else {
		n.world = local
	}
	return n
}

func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Children() []*Node { return n.children }
func (n *Node) ChildCount() int   { return len(n.children) }
func (n *Node) Child(i int) *Node { return n.children[i] }

func (n *Node) Local() gamemath.Pose { return n.local }
func (n *Node) World() gamemath.Pose { return n.world }

func (n *Node) Position() mgl64.Vec3 { return n.world.Position }
func (n *Node) Rotation() mgl64.Quat { return n.world.Rotation }

// SetLocal replaces the pose relative to the parent.
func (n *Node) SetLocal(p gamemath.Pose) {
	n.local = p
	n.refresh()
}

// SetLocalRotation replaces only the local rotation.
func (n *Node) SetLocalRotation(q mgl64.Quat) {
	n.local.Rotation = q
	n.refresh()
}

// SetWorld places the node at a world pose, deriving the local pose from the
// parent. Scale is taken from p.
func (n *Node) SetWorld(p gamemath.Pose) {
	if n.parent == nil {
		n.local = p
	} else {
		n.local = n.parent.world.Relative(p)
	}
	n.refresh()
}

// SetPositionAndRotation sets the world position and rotation, keeping the
// current world scale.
func (n *Node) SetPositionAndRotation(pos mgl64.Vec3, rot mgl64.Quat) {
	n.SetWorld(gamemath.Pose{Position: pos, Rotation: rot, Scale: n.world.Scale})
}

// SetParent moves the node under parent (nil detaches it). With worldStays
// the world pose is preserved, otherwise the local pose is.
func (n *Node) SetParent(parent *Node, worldStays bool) {
	if parent == n.parent {
		return
	}
	for p := parent; p != nil; p = p.parent {
		if p == n {
			// Refuse cycles.
			return
		}
	}
	world := n.world
	if n.parent != nil {
		n.parent.removeChild(n)
	}
	n.parent = parent
	if parent != nil {
		parent.children = append(parent.children, n)
	}
	if worldStays {
		n.SetWorld(world)
		return
	}
	n.refresh()
}

func (n *Node) removeChild(c *Node) {
	for i, ch := range n.children {
		if ch == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// TransformPoint maps a point from this node's local space to world space.
func (n *Node) TransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return n.world.TransformPoint(p)
}

// InverseTransformPoint maps a world point into this node's local space.
func (n *Node) InverseTransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return n.world.InverseTransformPoint(p)
}

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from fn skips that node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Find returns the first node named name in depth-first order, including n.
func (n *Node) Find(name string) *Node {
	if n == nil {
		return nil
	}
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Path returns the slash separated names from the root down to n.
func (n *Node) Path() string {
	if n.parent == nil {
		return n.Name
	}
	return n.parent.Path() + "/" + n.Name
}

func (n *Node) refresh() {
	if n.parent == nil {
		n.world = n.local
	} else {
		n.world = n.parent.world.Compose(n.local)
	}
	for _, c := range n.children {
		c.refresh()
	}
}
