// Package camera implements a third-person orbit rig: pointer deltas steer a
// target yaw/pitch, the view eases toward it, and the eye sits on a sphere
// of clamped radius around a focus point above the target.
package camera

import (
	"github.com/automoto/bonebrawl/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

type Config struct {
	FocusOffset mgl64.Vec3

	Distance    float64
	MinDistance float64
	MaxDistance float64
	ZoomStep    float64 // fraction of the distance range per scroll unit

	SensX    float64 // degrees per pixel
	SensY    float64
	PitchMin float64
	PitchMax float64

	RotationResponsiveness float64
	FollowLerp             float64
}

// Input is one frame of camera control.
type Input struct {
	Look       mgl64.Vec2 // pointer delta in pixels
	Zoom       float64    // scroll units, positive zooms in
	CursorFree bool       // look is ignored while the cursor is released
}

type Rig struct {
	Config Config

	targetYaw, targetPitch float64
	yaw, pitch             float64
	distance               float64

	position mgl64.Vec3
	rotation mgl64.Quat
	placed   bool
}

func NewRig(cfg Config) *Rig {
	r := &Rig{Config: cfg, rotation: mgl64.QuatIdent()}
	r.distance = gamemath.Clamp(cfg.Distance, cfg.MinDistance, cfg.MaxDistance)
	return r
}

func (r *Rig) Yaw() float64         { return r.yaw }
func (r *Rig) Pitch() float64       { return r.pitch }
func (r *Rig) TargetYaw() float64   { return r.targetYaw }
func (r *Rig) TargetPitch() float64 { return r.targetPitch }
func (r *Rig) Distance() float64    { return r.distance }
func (r *Rig) Position() mgl64.Vec3 { return r.position }
func (r *Rig) Rotation() mgl64.Quat { return r.rotation }
func (r *Rig) Pose() gamemath.Pose  { return gamemath.NewPose(r.position, r.rotation) }

// SetAngles places both the current and target angles, e.g. on spawn.
func (r *Rig) SetAngles(yaw, pitch float64) {
	pitch = gamemath.Clamp(pitch, r.Config.PitchMin, r.Config.PitchMax)
	r.yaw, r.targetYaw = yaw, yaw
	r.pitch, r.targetPitch = pitch, pitch
}

// SetDistance sets the orbit radius within the configured range.
func (r *Rig) SetDistance(d float64) {
	r.distance = gamemath.Clamp(d, r.Config.MinDistance, r.Config.MaxDistance)
}

// Look accumulates a pointer delta into the target angles. The delta is
// not scaled by frame time.
func (r *Rig) Look(delta mgl64.Vec2) {
	if delta == (mgl64.Vec2{}) {
		return
	}
	r.targetYaw += delta[0] * r.Config.SensX
	r.targetPitch -= delta[1] * r.Config.SensY
	r.targetPitch = gamemath.Clamp(r.targetPitch, r.Config.PitchMin, r.Config.PitchMax)
}

// Zoom moves the orbit radius by a fraction of the configured range.
func (r *Rig) Zoom(scroll float64) {
	if scroll == 0 {
		return
	}
	span := r.Config.MaxDistance - r.Config.MinDistance
	r.SetDistance(r.distance - scroll*r.Config.ZoomStep*span)
}

// Pivot is the point the camera orbits for a target at position.
func (r *Rig) Pivot(target mgl64.Vec3) mgl64.Vec3 {
	return target.Add(r.Config.FocusOffset)
}

// Desired returns the eye position the rig is easing toward.
func (r *Rig) Desired(target mgl64.Vec3) mgl64.Vec3 {
	rot := gamemath.Euler(r.pitch, r.yaw, 0)
	return r.Pivot(target).Add(rot.Rotate(mgl64.Vec3{0, 0, -r.distance}))
}

// Update applies input and advances smoothing by dt toward target.
func (r *Rig) Update(in Input, target mgl64.Vec3, dt float64) {
	if !in.CursorFree {
		r.Look(in.Look)
	}
	r.Zoom(in.Zoom)

	t := gamemath.ExpBlend(r.Config.RotationResponsiveness, dt)
	r.yaw = gamemath.LerpAngle(r.yaw, r.targetYaw, t)
	r.pitch = gamemath.LerpAngle(r.pitch, r.targetPitch, t)

	desired := r.Desired(target)
	if !r.placed {
		r.position = desired
		r.placed = true
	} else {
		r.position = gamemath.LerpVec(r.position, desired, gamemath.ExpBlend(r.Config.FollowLerp, dt))
	}
	pivot := r.Pivot(target)
	r.rotation = gamemath.LookRotation(pivot.Sub(r.position), gamemath.Up)
}
