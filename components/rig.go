package components

import (
	"github.com/automoto/bonebrawl/shared/gamemath"
	"github.com/automoto/bonebrawl/shared/skeleton"
	"github.com/yohamta/donburi"
)

// RigData owns a skeleton. Rest holds the local pose of every joint at spawn,
// in Skeleton.Joints() order, so clips can be swapped without leaking the
// previous clip's rotations.
type RigData struct {
	Name     string
	Prefab   string // file the rig was built from
	Skeleton *skeleton.Registry
	Rest     []gamemath.Pose
}

var Rig = donburi.NewComponentType[RigData]()

// CaptureRest records the current local pose of every joint as the rest pose.
func (r *RigData) CaptureRest() {
	joints := r.Skeleton.Joints()
	r.Rest = make([]gamemath.Pose, len(joints))
	for i, j := range joints {
		r.Rest[i] = j.Local()
	}
}

// ResetPose restores the rest pose captured by CaptureRest.
func (r *RigData) ResetPose() {
	joints := r.Skeleton.Joints()
	if len(r.Rest) != len(joints) {
		return
	}
	for i, j := range joints {
		j.SetLocal(r.Rest[i])
	}
}
