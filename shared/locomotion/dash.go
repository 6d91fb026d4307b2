package locomotion

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type DashConfig struct {
	Speed    float64 // metres per second at full multiplier
	Duration float64 // seconds
	Cooldown float64 // seconds after a dash ends before the next may start
	Curve    ease.TweenFunc
}

type DashState int

const (
	DashReady DashState = iota
	Dashing
)

func (s DashState) String() string {
	switch s {
	case DashReady:
		return "Ready"
	case Dashing:
		return "Dashing"
	}
	return fmt.Sprintf("DashState(%d)", int(s))
}

// Dash is a timed movement override. The speed multiplier runs from 1 to 0
// over Duration along Curve; distance is integrated per step with the
// trapezoid rule, and the final step is clipped to the remaining time, so the
// dash lasts exactly Duration however frames are sliced.
type Dash struct {
	cfg DashConfig

	state   DashState
	dir     mgl64.Vec3
	started float64
	elapsed float64
	lastEnd float64
	mult    float64
	tween   *gween.Tween
}

func NewDash(cfg DashConfig) *Dash {
	if cfg.Curve == nil {
		cfg.Curve = DefaultCurve
	}
	return &Dash{cfg: cfg, lastEnd: math.Inf(-1)}
}

func (d *Dash) Config() DashConfig { return d.cfg }

// SetConfig swaps tuning; an in-flight dash keeps its original curve.
func (d *Dash) SetConfig(cfg DashConfig) {
	if cfg.Curve == nil {
		cfg.Curve = DefaultCurve
	}
	d.cfg = cfg
}

func (d *Dash) State() DashState      { return d.state }
func (d *Dash) Locked() bool          { return d.state == Dashing }
func (d *Dash) Direction() mgl64.Vec3 { return d.dir }
func (d *Dash) LastEnd() float64      { return d.lastEnd }

// Multiplier is the current speed multiplier in [0, 1].
func (d *Dash) Multiplier() float64 {
	if d.state != Dashing {
		return 0
	}
	return d.mult
}

// Ready reports whether Trigger would start a dash at time now.
func (d *Dash) Ready(now float64) bool {
	return d.state == DashReady && d.cfg.Duration > 0 && now >= d.lastEnd+d.cfg.Cooldown
}

// Trigger starts a dash toward dir at time now. It returns false and leaves
// the state untouched while dashing, while cooling down, or for a zero
// direction.
func (d *Dash) Trigger(now float64, dir mgl64.Vec3) bool {
	if !d.Ready(now) {
		return false
	}
	flat := mgl64.Vec3{dir[0], 0, dir[2]}
	if flat.LenSqr() < 1e-12 {
		return false
	}
	d.state = Dashing
	d.dir = flat.Normalize()
	d.started = now
	d.elapsed = 0
	d.mult = 1
	d.tween = gween.New(1, 0, float32(d.cfg.Duration), d.cfg.Curve)
	return true
}

// Step advances the dash by dt and returns the distance covered. done is
// true on the step that ends the dash.
func (d *Dash) Step(dt float64) (dist float64, done bool) {
	if d.state != Dashing || dt <= 0 {
		return 0, d.state != Dashing
	}
	step := math.Min(dt, d.cfg.Duration-d.elapsed)
	cur, _ := d.tween.Update(float32(step))
	next := float64(cur)
	d.elapsed += step
	if d.elapsed >= d.cfg.Duration-1e-9 {
		next = 0
	}
	dist = d.cfg.Speed * (d.mult + next) / 2 * step
	d.mult = next
	if d.elapsed >= d.cfg.Duration-1e-9 {
		d.state = DashReady
		d.lastEnd = d.started + d.cfg.Duration
		d.tween = nil
		done = true
	}
	return dist, done
}

// Cancel ends a dash early; the cooldown counts from now.
func (d *Dash) Cancel(now float64) {
	if d.state != Dashing {
		return
	}
	d.state = DashReady
	d.lastEnd = now
	d.tween = nil
}
