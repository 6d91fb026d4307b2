// Package skeleton indexes the joints of a transform hierarchy and answers
// nearest-joint queries against it.
package skeleton

import (
	"github.com/automoto/bonebrawl/shared/transform"
	"github.com/go-gl/mathgl/mgl64"
)

// Flatten returns every node reachable from root, depth-first with parents
// before children. A nil root yields an empty slice.
func Flatten(root *transform.Node) []*transform.Node {
	var out []*transform.Node
	root.Walk(func(n *transform.Node) bool {
		out = append(out, n)
		return true
	})
	return out
}

// Registry is a snapshot of a skeleton's joints taken at construction time.
// Joint poses keep changing; the set and its order do not.
type Registry struct {
	root   *transform.Node
	joints []*transform.Node
	byName map[string]*transform.Node
}

func New(root *transform.Node) *Registry {
	joints := Flatten(root)
	byName := make(map[string]*transform.Node, len(joints))
	for _, j := range joints {
		if _, dup := byName[j.Name]; !dup {
			byName[j.Name] = j
		}
	}
	return &Registry{root: root, joints: joints, byName: byName}
}

func (r *Registry) Root() *transform.Node { return r.root }

// Joints returns the joints in traversal order. Callers must not modify it.
func (r *Registry) Joints() []*transform.Node { return r.joints }

func (r *Registry) Len() int { return len(r.joints) }

func (r *Registry) Empty() bool { return r == nil || len(r.joints) == 0 }

// Find returns the first joint with the exact name in traversal order.
func (r *Registry) Find(name string) (*transform.Node, bool) {
	if r == nil {
		return nil, false
	}
	j, ok := r.byName[name]
	return j, ok
}

// Nearest returns the joint closest to point by squared Euclidean distance.
// Ties keep the earliest joint in traversal order.
func (r *Registry) Nearest(point mgl64.Vec3) (*transform.Node, bool) {
	if r.Empty() {
		return nil, false
	}
	return Nearest(r.joints, point)
}

// Nearest is the linear scan behind Registry.Nearest.
func Nearest(joints []*transform.Node, point mgl64.Vec3) (*transform.Node, bool) {
	var best *transform.Node
	bestSqr := 0.0
	for _, j := range joints {
		d := j.Position().Sub(point).LenSqr()
		if best == nil || d < bestSqr {
			best, bestSqr = j, d
		}
	}
	return best, best != nil
}
