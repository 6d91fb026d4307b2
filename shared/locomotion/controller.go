// Package locomotion turns directional input into camera-relative movement
// of an actor, with a dash that temporarily overrides steering.
package locomotion

import (
	"github.com/automoto/bonebrawl/shared/gamemath"
	"github.com/automoto/bonebrawl/shared/transform"
	"github.com/go-gl/mathgl/mgl64"
)

type Config struct {
	MoveSpeed   float64 // metres per second
	RotateSpeed float64 // slerp rate per second
	Deadzone    float64 // input magnitude below which the stick is idle
}

// Input is the per-frame intent for one actor.
type Input struct {
	Move mgl64.Vec2
	Dash bool
}

// Steer maps a 2D input to a horizontal direction relative to the camera.
// ok is false inside the deadzone or when the camera looks straight down.
func Steer(in mgl64.Vec2, deadzone float64, camera mgl64.Quat) (mgl64.Vec3, bool) {
	if in.LenSqr() < deadzone*deadzone || in.LenSqr() == 0 {
		return mgl64.Vec3{}, false
	}
	fwd := gamemath.NormalizeSafe(gamemath.ProjectOnPlane(gamemath.ForwardOf(camera), gamemath.Up))
	right := gamemath.NormalizeSafe(gamemath.ProjectOnPlane(gamemath.RightOf(camera), gamemath.Up))
	dir := gamemath.NormalizeSafe(fwd.Mul(in[1]).Add(right.Mul(in[0])))
	if dir.LenSqr() == 0 {
		return mgl64.Vec3{}, false
	}
	return dir, true
}

// Controller drives one actor node.
type Controller struct {
	Config Config
	Dash   *Dash

	walking bool
}

func NewController(cfg Config, dash DashConfig) *Controller {
	return &Controller{Config: cfg, Dash: NewDash(dash)}
}

// Walking reports whether the last update steered the actor.
func (c *Controller) Walking() bool { return c.walking }

// Update applies one frame of input to actor. camera is the rotation of the
// view the input is relative to.
func (c *Controller) Update(actor *transform.Node, in Input, camera mgl64.Quat, now, dt float64) {
	dir, steering := Steer(in.Move, c.Config.Deadzone, camera)

	if in.Dash {
		dashDir := dir
		if !steering {
			dashDir = gamemath.ForwardOf(actor.Rotation())
		}
		if c.Dash.Trigger(now, dashDir) {
			actor.SetPositionAndRotation(actor.Position(), gamemath.LookRotation(c.Dash.Direction(), gamemath.Up))
		}
	}

	if c.Dash.Locked() {
		c.walking = false
		dist, _ := c.Dash.Step(dt)
		actor.SetPositionAndRotation(actor.Position().Add(c.Dash.Direction().Mul(dist)), actor.Rotation())
		return
	}

	if !steering {
		c.walking = false
		return
	}
	c.walking = true
	target := gamemath.LookRotation(dir, gamemath.Up)
	rot := gamemath.SlerpClamped(actor.Rotation(), target, c.Config.RotateSpeed*dt)
	pos := actor.Position().Add(gamemath.ForwardOf(rot).Mul(c.Config.MoveSpeed * dt))
	actor.SetPositionAndRotation(pos, rot)
}
