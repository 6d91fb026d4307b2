package skeleton

import (
	"math/rand"
	"testing"

	"github.com/automoto/bonebrawl/shared/gamemath"
	"github.com/automoto/bonebrawl/shared/transform"
	"github.com/go-gl/mathgl/mgl64"
)

func at(parent *transform.Node, name string, x, y, z float64) *transform.Node {
	n := transform.NewChild(parent, name, gamemath.IdentityPose())
	n.SetWorld(gamemath.NewPose(mgl64.Vec3{x, y, z}, mgl64.QuatIdent()))
	return n
}

func TestFlatten(t *testing.T) {
	cases := []struct {
		name  string
		build func() *transform.Node
		want  []string
	}{
		{"nil_root", func() *transform.Node { return nil }, nil},
		{"single", func() *transform.Node { return transform.NewNode("hips") }, []string{"hips"}},
		{"depth_first", func() *transform.Node {
			hips := transform.NewNode("hips")
			spine := at(hips, "spine", 0, 1, 0)
			at(spine, "neck", 0, 1.5, 0)
			at(hips, "thigh_l", -0.2, 0, 0)
			return hips
		}, []string{"hips", "spine", "neck", "thigh_l"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Flatten(c.build())
			if len(got) != len(c.want) {
				t.Fatalf("got %d joints, want %d", len(got), len(c.want))
			}
			for i, j := range got {
				if j.Name != c.want[i] {
					t.Fatalf("joint %d = %q, want %q", i, j.Name, c.want[i])
				}
			}
		})
	}
}

func TestNearestExample(t *testing.T) {
	root := at(nil, "root", 0, 0, 0)
	upper := at(root, "upper", 0, 1, 0)
	reg := New(root)

	j, ok := reg.Nearest(mgl64.Vec3{0, 0.9, 0})
	if !ok || j != upper {
		t.Fatalf("nearest = %v, want upper", j)
	}
}

func TestNearestEmpty(t *testing.T) {
	reg := New(nil)
	if !reg.Empty() {
		t.Fatalf("registry from nil root should be empty")
	}
	if _, ok := reg.Nearest(mgl64.Vec3{}); ok {
		t.Fatalf("empty registry resolved a joint")
	}
}

func TestNearestTieKeepsTraversalOrder(t *testing.T) {
	root := at(nil, "root", 0, 5, 0)
	left := at(root, "left", -1, 0, 0)
	at(root, "right", 1, 0, 0)
	j, _ := New(root).Nearest(mgl64.Vec3{0, 0, 0})
	if j != left {
		t.Fatalf("tie resolved to %q, want left", j.Name)
	}
}

func TestNearestIsMinimal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randVec := func() mgl64.Vec3 {
		return mgl64.Vec3{rng.Float64()*4 - 2, rng.Float64() * 2, rng.Float64()*4 - 2}
	}
	for trial := 0; trial < 50; trial++ {
		root := transform.NewNode("root")
		root.SetWorld(gamemath.NewPose(randVec(), mgl64.QuatIdent()))
		parent := root
		for i := 0; i < 1+rng.Intn(40); i++ {
			p := randVec()
			n := at(parent, "j", p[0], p[1], p[2])
			if rng.Intn(3) == 0 {
				parent = n
			}
		}
		reg := New(root)
		point := randVec()
		best, ok := reg.Nearest(point)
		if !ok {
			t.Fatalf("trial %d: no joint", trial)
		}
		bestD := best.Position().Sub(point).LenSqr()
		for _, j := range reg.Joints() {
			if d := j.Position().Sub(point).LenSqr(); d < bestD {
				t.Fatalf("trial %d: joint at %v is closer (%v < %v)", trial, j.Position(), d, bestD)
			}
		}
	}
}

func TestFindFirstByTraversal(t *testing.T) {
	root := transform.NewNode("root")
	a := at(root, "hand", 1, 0, 0)
	at(a, "hand", 2, 0, 0)
	reg := New(root)
	j, ok := reg.Find("hand")
	if !ok || j != a {
		t.Fatalf("Find returned %v", j)
	}
	if _, ok := reg.Find("missing"); ok {
		t.Fatalf("found missing joint")
	}
}
