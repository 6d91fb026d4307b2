package gamemath

import "github.com/go-gl/mathgl/mgl64"

var (
	Up      = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
	Right   = mgl64.Vec3{1, 0, 0}
	One     = mgl64.Vec3{1, 1, 1}
)

// Pose is a position, rotation and per-axis scale. Composition follows the
// usual scene-graph rule: scale, then rotate, then translate.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

// IdentityPose returns a pose at the origin with no rotation and unit scale.
func IdentityPose() Pose {
	return Pose{Rotation: mgl64.QuatIdent(), Scale: One}
}

// NewPose returns a unit-scale pose.
func NewPose(pos mgl64.Vec3, rot mgl64.Quat) Pose {
	return Pose{Position: pos, Rotation: rot, Scale: One}
}

// TransformPoint maps p from the pose's local space into the parent space.
func (p Pose) TransformPoint(v mgl64.Vec3) mgl64.Vec3 {
	scaled := mgl64.Vec3{v[0] * p.Scale[0], v[1] * p.Scale[1], v[2] * p.Scale[2]}
	return p.Position.Add(p.Rotation.Rotate(scaled))
}

// InverseTransformPoint maps v from the parent space into the pose's local
// space. Axes with zero scale map to zero.
func (p Pose) InverseTransformPoint(v mgl64.Vec3) mgl64.Vec3 {
	local := p.Rotation.Inverse().Rotate(v.Sub(p.Position))
	return divScale(local, p.Scale)
}

// TransformDirection rotates a direction; scale and translation are ignored.
func (p Pose) TransformDirection(d mgl64.Vec3) mgl64.Vec3 {
	return p.Rotation.Rotate(d)
}

// Compose returns the pose of a child with the given local pose under p.
func (p Pose) Compose(local Pose) Pose {
	return Pose{
		Position: p.TransformPoint(local.Position),
		Rotation: p.Rotation.Mul(local.Rotation).Normalize(),
		Scale: mgl64.Vec3{
			p.Scale[0] * local.Scale[0],
			p.Scale[1] * local.Scale[1],
			p.Scale[2] * local.Scale[2],
		},
	}
}

// Relative returns the local pose that world would have as a child of p.
// It is the inverse of Compose: p.Compose(p.Relative(w)) == w.
func (p Pose) Relative(world Pose) Pose {
	return Pose{
		Position: p.InverseTransformPoint(world.Position),
		Rotation: p.Rotation.Inverse().Mul(world.Rotation).Normalize(),
		Scale:    divScale(world.Scale, p.Scale),
	}
}

func divScale(v, s mgl64.Vec3) mgl64.Vec3 {
	var out mgl64.Vec3
	for i := 0; i < 3; i++ {
		if s[i] != 0 {
			out[i] = v[i] / s[i]
		}
	}
	return out
}
