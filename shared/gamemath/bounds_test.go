package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBoundsOfBoxRotated(t *testing.T) {
	pose := NewPose(mgl64.Vec3{1, 0, 0}, Euler(0, 45, 0))
	b := BoundsOfBox(pose, mgl64.Vec3{}, mgl64.Vec3{2, 2, 2})

	half := math.Sqrt2
	if !vecNear(b.Min, mgl64.Vec3{1 - half, -1, -half}) || !vecNear(b.Max, mgl64.Vec3{1 + half, 1, half}) {
		t.Fatalf("bounds = %v..%v", b.Min, b.Max)
	}
}

func TestBoundsOfSphereAndCapsule(t *testing.T) {
	pose := IdentityPose()
	pose.Position = mgl64.Vec3{0, 1, 0}
	pose.Scale = mgl64.Vec3{1, 2, 1}

	s := BoundsOfSphere(pose, mgl64.Vec3{}, 0.5)
	if !vecNear(s.Size(), mgl64.Vec3{2, 2, 2}) {
		t.Fatalf("sphere size = %v", s.Size())
	}

	c := BoundsOfCapsule(IdentityPose(), mgl64.Vec3{0, 1, 0}, 0.25, 2)
	if !vecNear(c.Min, mgl64.Vec3{-0.25, 0, -0.25}) || !vecNear(c.Max, mgl64.Vec3{0.25, 2, 0.25}) {
		t.Fatalf("capsule = %v..%v", c.Min, c.Max)
	}
}

func TestAABBOverlaps(t *testing.T) {
	unit := AABB{Max: mgl64.Vec3{1, 1, 1}}
	tests := []struct {
		name  string
		other AABB
		want  bool
	}{
		{"inside", AABB{Min: mgl64.Vec3{0.25, 0.25, 0.25}, Max: mgl64.Vec3{0.5, 0.5, 0.5}}, true},
		{"touching", AABB{Min: mgl64.Vec3{1, 0, 0}, Max: mgl64.Vec3{2, 1, 1}}, true},
		{"apart on y", AABB{Min: mgl64.Vec3{0, 1.5, 0}, Max: mgl64.Vec3{1, 2, 1}}, false},
		{"empty", EmptyAABB(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unit.Overlaps(tt.other); got != tt.want {
				t.Fatalf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}
