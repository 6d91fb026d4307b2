package transform

import (
	"testing"

	"github.com/automoto/bonebrawl/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

func near(a, b mgl64.Vec3) bool { return a.Sub(b).Len() < 1e-6 }

func TestWorldFollowsParent(t *testing.T) {
	root := NewNode("root")
	child := NewChild(root, "child", gamemath.NewPose(mgl64.Vec3{0, 1, 0}, mgl64.QuatIdent()))
	grand := NewChild(child, "grand", gamemath.NewPose(mgl64.Vec3{0, 0, 1}, mgl64.QuatIdent()))

	root.SetLocal(gamemath.NewPose(mgl64.Vec3{5, 0, 0}, gamemath.Euler(0, 90, 0)))

	if got := child.Position(); !near(got, mgl64.Vec3{5, 1, 0}) {
		t.Fatalf("child position = %v", got)
	}
	// Yaw 90 turns local +Z into world +X.
	if got := grand.Position(); !near(got, mgl64.Vec3{6, 1, 0}) {
		t.Fatalf("grand position = %v", got)
	}
}

func TestSetParent(t *testing.T) {
	cases := []struct {
		name       string
		worldStays bool
		want       mgl64.Vec3
	}{
		{"world_stays", true, mgl64.Vec3{1, 0, 0}},
		{"local_stays", false, mgl64.Vec3{1, 2, 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			parent := NewChild(nil, "parent", gamemath.NewPose(mgl64.Vec3{0, 2, 0}, mgl64.QuatIdent()))
			n := NewChild(nil, "n", gamemath.NewPose(mgl64.Vec3{1, 0, 0}, mgl64.QuatIdent()))
			n.SetParent(parent, c.worldStays)
			if got := n.Position(); !near(got, c.want) {
				t.Fatalf("position = %v, want %v", got, c.want)
			}
			if n.Parent() != parent || parent.ChildCount() != 1 {
				t.Fatalf("parent link not established")
			}
		})
	}
}

func TestSetParentRejectsCycle(t *testing.T) {
	a := NewNode("a")
	b := NewChild(a, "b", gamemath.IdentityPose())
	a.SetParent(b, true)
	if a.Parent() != nil {
		t.Fatalf("cycle was created")
	}
}

func TestFindAndWalkOrder(t *testing.T) {
	root := NewNode("hips")
	spine := NewChild(root, "spine", gamemath.IdentityPose())
	NewChild(spine, "head", gamemath.IdentityPose())
	NewChild(root, "leg", gamemath.IdentityPose())

	var order []string
	root.Walk(func(n *Node) bool {
		order = append(order, n.Name)
		return true
	})
	want := []string{"hips", "spine", "head", "leg"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("walk order = %v, want %v", order, want)
		}
	}
	if root.Find("head") == nil || root.Find("tail") != nil {
		t.Fatalf("Find mismatch")
	}
	if p := root.Find("head").Path(); p != "hips/spine/head" {
		t.Fatalf("path = %q", p)
	}
}

func TestSetWorldUnderRotatedParent(t *testing.T) {
	parent := NewChild(nil, "p", gamemath.NewPose(mgl64.Vec3{1, 1, 1}, gamemath.Euler(10, 30, 0)))
	n := NewChild(parent, "n", gamemath.IdentityPose())
	target := gamemath.NewPose(mgl64.Vec3{-2, 0, 4}, gamemath.Euler(0, -45, 0))
	n.SetWorld(target)
	if !near(n.Position(), target.Position) {
		t.Fatalf("position = %v, want %v", n.Position(), target.Position)
	}
	if gamemath.AngleBetween(n.Rotation(), target.Rotation) > 1e-6 {
		t.Fatalf("rotation mismatch")
	}
}
