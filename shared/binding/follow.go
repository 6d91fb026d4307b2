package binding

import (
	"fmt"
	"strings"

	"github.com/automoto/bonebrawl/shared/gamemath"
	"github.com/automoto/bonebrawl/shared/transform"
	"github.com/go-gl/mathgl/mgl64"
)

// Timing selects the scheduler phase a follower is applied in.
type Timing int

const (
	// TimingLate runs after animation has posed the skeleton.
	TimingLate Timing = iota
	// TimingFixed runs in the fixed step and re-syncs the broadphase.
	TimingFixed
	// TimingUpdate runs in the simulate phase right after the animator.
	TimingUpdate
)

func (t Timing) String() string {
	switch t {
	case TimingLate:
		return "late"
	case TimingFixed:
		return "fixed"
	case TimingUpdate:
		return "update"
	}
	return fmt.Sprintf("Timing(%d)", int(t))
}

// ParseTiming accepts "late", "fixed" and "update". The empty string is
// TimingLate.
func ParseTiming(s string) (Timing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "late", "post-animation":
		return TimingLate, nil
	case "fixed", "physics":
		return TimingFixed, nil
	case "update", "normal", "animator":
		return TimingUpdate, nil
	}
	return TimingLate, fmt.Errorf("unknown follow timing %q", s)
}

// Smoothing holds per-reference-frame blend factors in [0, 1). Zero snaps.
type Smoothing struct {
	Position float64
	Rotation float64
}

// Follow moves current toward the target pose. With zero smoothing the
// target is returned exactly.
func Follow(curPos mgl64.Vec3, curRot mgl64.Quat, tgtPos mgl64.Vec3, tgtRot mgl64.Quat, s Smoothing, dt float64) (mgl64.Vec3, mgl64.Quat) {
	pos := tgtPos
	if s.Position > 0 {
		pos = gamemath.LerpVec(curPos, tgtPos, gamemath.BlendFactor(s.Position, dt, gamemath.ReferenceRate))
	}
	rot := tgtRot
	if s.Rotation > 0 {
		rot = gamemath.SlerpClamped(curRot, tgtRot, gamemath.BlendFactor(s.Rotation, dt, gamemath.ReferenceRate))
	}
	return pos, rot
}

// Apply poses node from joint and offset, honouring smoothing.
func Apply(node, joint *transform.Node, off Offset, s Smoothing, dt float64) {
	tgtPos, tgtRot := Target(joint, off)
	pos, rot := Follow(node.Position(), node.Rotation(), tgtPos, tgtRot, s, dt)
	node.SetPositionAndRotation(pos, rot)
}

// AttachAsChild reparents node under joint with off as its local pose. The
// hierarchy then carries the node along without per-frame work.
func AttachAsChild(node, joint *transform.Node, off Offset) {
	node.SetParent(joint, false)
	local := node.Local()
	local.Position = off.Position
	local.Rotation = off.Rotation
	node.SetLocal(local)
}
