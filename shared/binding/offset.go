// Package binding keeps an attachment rigidly posed relative to a joint.
//
// The stored offset lives in the joint's local frame. Every tick the target
// pose is rebuilt from the joint's current world pose and the offset, so
// error never accumulates across frames.
package binding

import (
	"github.com/automoto/bonebrawl/shared/gamemath"
	"github.com/automoto/bonebrawl/shared/transform"
	"github.com/go-gl/mathgl/mgl64"
)

// Offset is an attachment pose expressed in its joint's local frame.
type Offset struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// IdentityOffset places the attachment exactly on the joint.
func IdentityOffset() Offset {
	return Offset{Rotation: mgl64.QuatIdent()}
}

// OffsetFromEuler builds an offset from a position and (pitch, yaw, roll)
// degrees.
func OffsetFromEuler(pos, euler mgl64.Vec3) Offset {
	return Offset{Position: pos, Rotation: gamemath.EulerVec(euler)}
}

// ComputeOffset captures the attachment's current world pose relative to the
// joint.
func ComputeOffset(joint *transform.Node, attachment gamemath.Pose) Offset {
	return ComputeOffsetFromPose(joint.World(), attachment)
}

func ComputeOffsetFromPose(joint, attachment gamemath.Pose) Offset {
	return Offset{
		Position: joint.InverseTransformPoint(attachment.Position),
		Rotation: joint.Rotation.Inverse().Mul(attachment.Rotation).Normalize(),
	}
}

// Target returns the world position and rotation the attachment should have
// for the joint's current pose.
func Target(joint *transform.Node, off Offset) (mgl64.Vec3, mgl64.Quat) {
	return TargetFromPose(joint.World(), off)
}

func TargetFromPose(joint gamemath.Pose, off Offset) (mgl64.Vec3, mgl64.Quat) {
	return joint.TransformPoint(off.Position), joint.Rotation.Mul(off.Rotation).Normalize()
}
