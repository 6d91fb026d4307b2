package binding

import (
	"math"
	"testing"

	"github.com/automoto/bonebrawl/shared/gamemath"
	"github.com/automoto/bonebrawl/shared/skeleton"
	"github.com/automoto/bonebrawl/shared/transform"
	"github.com/go-gl/mathgl/mgl64"
)

const tol = 1e-6

func near(a, b mgl64.Vec3) bool { return a.Sub(b).Len() < tol }

func sameRot(a, b mgl64.Quat) bool { return gamemath.AngleBetween(a, b) < tol }

func joint(parent *transform.Node, name string, pos mgl64.Vec3, rot mgl64.Quat) *transform.Node {
	n := transform.NewChild(parent, name, gamemath.IdentityPose())
	n.SetWorld(gamemath.NewPose(pos, rot))
	return n
}

func TestBindExample(t *testing.T) {
	root := joint(nil, "root", mgl64.Vec3{0, 0, 0}, mgl64.QuatIdent())
	upper := joint(root, "upper", mgl64.Vec3{0, 1, 0}, mgl64.QuatIdent())
	reg := skeleton.New(root)

	attachment := gamemath.NewPose(mgl64.Vec3{0, 0.9, 0}, mgl64.QuatIdent())
	j, ok := reg.Nearest(attachment.Position)
	if !ok || j != upper {
		t.Fatalf("bound to %v, want upper", j)
	}
	off := ComputeOffset(j, attachment)
	if !near(off.Position, mgl64.Vec3{0, -0.1, 0}) {
		t.Fatalf("offset = %v, want (0,-0.1,0)", off.Position)
	}
}

func TestOffsetRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		joint  gamemath.Pose
		attach gamemath.Pose
	}{
		{"identity", gamemath.IdentityPose(), gamemath.NewPose(mgl64.Vec3{1, 2, 3}, gamemath.Euler(10, 20, 30))},
		{"rotated_joint", gamemath.NewPose(mgl64.Vec3{0, 1, 0}, gamemath.Euler(0, 90, 0)),
			gamemath.NewPose(mgl64.Vec3{0.2, 1.1, -0.3}, gamemath.Euler(-15, 0, 45))},
		{"scaled_joint", gamemath.Pose{Position: mgl64.Vec3{-1, 0.5, 2}, Rotation: gamemath.Euler(30, -60, 5), Scale: mgl64.Vec3{0.01, 0.01, 0.01}},
			gamemath.NewPose(mgl64.Vec3{-1.1, 0.7, 2.05}, gamemath.Euler(80, 10, 0))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			j := joint(nil, "j", c.joint.Position, c.joint.Rotation)
			local := j.Local()
			local.Scale = c.joint.Scale
			j.SetLocal(local)

			off := ComputeOffset(j, c.attach)
			pos, rot := Target(j, off)
			if !near(pos, c.attach.Position) {
				t.Fatalf("position = %v, want %v", pos, c.attach.Position)
			}
			if !sameRot(rot, c.attach.Rotation) {
				t.Fatalf("rotation off by %v rad", gamemath.AngleBetween(rot, c.attach.Rotation))
			}
		})
	}
}

func TestApplyWithoutSmoothingSnaps(t *testing.T) {
	j := joint(nil, "hand", mgl64.Vec3{0, 1, 0}, mgl64.QuatIdent())
	node := joint(nil, "sword", mgl64.Vec3{0, 1, 0.5}, mgl64.QuatIdent())
	off := ComputeOffset(j, node.World())

	for _, yaw := range []float64{30, 90, 200} {
		j.SetWorld(gamemath.NewPose(mgl64.Vec3{1, 1, 1}, gamemath.Euler(0, yaw, 0)))
		Apply(node, j, off, Smoothing{}, 1.0/60)
		wantPos, wantRot := Target(j, off)
		if node.Position() != wantPos {
			t.Fatalf("yaw %v: position %v, want exactly %v", yaw, node.Position(), wantPos)
		}
		if !sameRot(node.Rotation(), wantRot) {
			t.Fatalf("yaw %v: rotation lagging", yaw)
		}
	}
}

func TestSmoothingConverges(t *testing.T) {
	j := joint(nil, "hand", mgl64.Vec3{0, 0, 0}, mgl64.QuatIdent())
	node := joint(nil, "sword", mgl64.Vec3{0, 0, 0}, mgl64.QuatIdent())
	off := IdentityOffset()
	j.SetWorld(gamemath.NewPose(mgl64.Vec3{10, 0, 0}, mgl64.QuatIdent()))

	s := Smoothing{Position: 0.3, Rotation: 0.3}
	Apply(node, j, off, s, 1.0/60)
	if x := node.Position()[0]; math.Abs(x-3) > tol {
		t.Fatalf("after one reference frame x = %v, want 3", x)
	}
	for i := 0; i < 300; i++ {
		Apply(node, j, off, s, 1.0/60)
	}
	if !near(node.Position(), mgl64.Vec3{10, 0, 0}) {
		t.Fatalf("did not converge: %v", node.Position())
	}
}

func TestAttachAsChildFollowsWithoutApply(t *testing.T) {
	j := joint(nil, "hand", mgl64.Vec3{0, 1, 0}, mgl64.QuatIdent())
	node := joint(nil, "sword", mgl64.Vec3{0, 1.5, 0}, mgl64.QuatIdent())
	AttachAsChild(node, j, ComputeOffset(j, node.World()))

	j.SetWorld(gamemath.NewPose(mgl64.Vec3{2, 1, 0}, gamemath.Euler(0, 0, 90)))
	want, _ := Target(j, Offset{Position: mgl64.Vec3{0, 0.5, 0}, Rotation: mgl64.QuatIdent()})
	if !near(node.Position(), want) {
		t.Fatalf("child position = %v, want %v", node.Position(), want)
	}
}

func TestFilter(t *testing.T) {
	f := Filter{
		ExcludeNameContains: []string{"CapsuleRoot", "MainCapsule", "BodyCollider"},
		LayerMask:           AllLayers,
	}
	cases := []struct {
		name    string
		filter  Filter
		col     string
		layer   int
		trigger bool
		want    bool
	}{
		{"plain", f, "Hitbox_Hand_R", 0, false, true},
		{"excluded_case_insensitive", f, "player_maincapsule", 0, false, false},
		{"excluded_substring", f, "BodyColliderLower", 3, true, false},
		{"only_triggers_rejects_solid", Filter{OnlyTriggers: true, LayerMask: AllLayers}, "Hurt", 0, false, false},
		{"only_triggers_accepts_trigger", Filter{OnlyTriggers: true, LayerMask: AllLayers}, "Hurt", 0, true, true},
		{"layer_masked_out", Filter{LayerMask: 1 << 8}, "Hurt", 3, true, false},
		{"layer_masked_in", Filter{LayerMask: 1 << 8}, "Hurt", 8, true, true},
		{"empty_key_ignored", Filter{ExcludeNameContains: []string{""}, LayerMask: AllLayers}, "Hurt", 0, false, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.filter.Eligible(c.col, c.layer, c.trigger); got != c.want {
				t.Fatalf("Eligible = %v, want %v", got, c.want)
			}
		})
	}
}

func TestParseTiming(t *testing.T) {
	for in, want := range map[string]Timing{"": TimingLate, "LATE": TimingLate, "fixed": TimingFixed, "update": TimingUpdate, "normal": TimingUpdate} {
		got, err := ParseTiming(in)
		if err != nil || got != want {
			t.Fatalf("ParseTiming(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseTiming("whenever"); err == nil {
		t.Fatalf("expected error")
	}
}
