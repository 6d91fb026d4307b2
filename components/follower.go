package components

import (
	"github.com/automoto/bonebrawl/shared/binding"
	"github.com/automoto/bonebrawl/shared/transform"
	"github.com/yohamta/donburi"
)

// FollowerData keeps an entity's transform rigidly attached to a joint.
type FollowerData struct {
	Joint          *transform.Node
	Offset         binding.Offset
	Timing         binding.Timing
	Smoothing      binding.Smoothing
	AttachAsChild  bool
	ComputeOnStart bool // take the offset from the pose seen on the first tick

	Started  bool
	Attached bool // reparented under Joint, no per-frame work
	Disabled bool // missing joint, reported once
}

var Follower = donburi.NewComponentType[FollowerData]()
