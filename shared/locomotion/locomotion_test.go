package locomotion

import (
	"math"
	"testing"

	"github.com/automoto/bonebrawl/shared/gamemath"
	"github.com/automoto/bonebrawl/shared/transform"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

func testDash() DashConfig {
	return DashConfig{Speed: 10, Duration: 0.25, Cooldown: 0.5, Curve: ease.InOutQuad}
}

func TestSteer(t *testing.T) {
	cases := []struct {
		name   string
		in     mgl64.Vec2
		camera mgl64.Quat
		want   mgl64.Vec3
		ok     bool
	}{
		{"deadzone", mgl64.Vec2{0.01, 0.02}, mgl64.QuatIdent(), mgl64.Vec3{}, false},
		{"zero", mgl64.Vec2{}, mgl64.QuatIdent(), mgl64.Vec3{}, false},
		{"forward", mgl64.Vec2{0, 1}, mgl64.QuatIdent(), mgl64.Vec3{0, 0, 1}, true},
		{"right", mgl64.Vec2{1, 0}, mgl64.QuatIdent(), mgl64.Vec3{1, 0, 0}, true},
		{"camera_yawed", mgl64.Vec2{0, 1}, gamemath.Euler(0, 90, 0), mgl64.Vec3{1, 0, 0}, true},
		{"camera_pitched_stays_flat", mgl64.Vec2{0, 0.5}, gamemath.Euler(40, 0, 0), mgl64.Vec3{0, 0, 1}, true},
		{"diagonal_normalized", mgl64.Vec2{1, 1}, mgl64.QuatIdent(), mgl64.Vec3{math.Sqrt2 / 2, 0, math.Sqrt2 / 2}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := Steer(c.in, 0.05, c.camera)
			if ok != c.ok {
				t.Fatalf("ok = %v, want %v", ok, c.ok)
			}
			if got.Sub(c.want).Len() > 1e-6 {
				t.Fatalf("dir = %v, want %v", got, c.want)
			}
		})
	}
}

func TestDashCooldownGate(t *testing.T) {
	d := NewDash(testDash())
	if !d.Trigger(0, mgl64.Vec3{0, 0, 1}) {
		t.Fatalf("first dash refused")
	}
	if d.Trigger(0.1, mgl64.Vec3{1, 0, 0}) {
		t.Fatalf("dash restarted while dashing")
	}
	for i := 0; i < 100 && d.Locked(); i++ {
		d.Step(1.0 / 60)
	}
	if d.LastEnd() != 0.25 {
		t.Fatalf("lastEnd = %v, want 0.25", d.LastEnd())
	}

	before := *d
	if d.Trigger(0.7, mgl64.Vec3{1, 0, 0}) {
		t.Fatalf("dash accepted during cooldown")
	}
	if d.state != before.state || d.dir != before.dir || d.lastEnd != before.lastEnd {
		t.Fatalf("refused trigger changed state")
	}
	if !d.Trigger(0.75, mgl64.Vec3{1, 0, 0}) {
		t.Fatalf("dash refused at lastEnd + cooldown")
	}
}

func TestDashLastsExactlyDuration(t *testing.T) {
	for _, dt := range []float64{1.0 / 30, 1.0 / 60, 1.0 / 144, 0.1} {
		d := NewDash(testDash())
		d.Trigger(0, mgl64.Vec3{0, 0, 1})
		elapsed, total := 0.0, 0.0
		for d.Locked() {
			step := math.Min(dt, d.Config().Duration-elapsed)
			dist, _ := d.Step(dt)
			elapsed += step
			total += dist
		}
		if math.Abs(elapsed-0.25) > 1e-9 {
			t.Fatalf("dt=%v: locked for %v, want 0.25", dt, elapsed)
		}
		// InOutQuad from 1 to 0 averages 0.5.
		want := 10 * 0.25 * 0.5
		if math.Abs(total-want)/want > 0.02 {
			t.Fatalf("dt=%v: distance %v, want ~%v", dt, total, want)
		}
	}
}

func TestDashZeroDirectionRefused(t *testing.T) {
	d := NewDash(testDash())
	if d.Trigger(0, mgl64.Vec3{0, 1, 0}) {
		t.Fatalf("vertical-only dash accepted")
	}
	if d.State() != DashReady {
		t.Fatalf("state = %v", d.State())
	}
}

func TestControllerDashLocksSteering(t *testing.T) {
	c := NewController(Config{MoveSpeed: 2, RotateSpeed: 10, Deadzone: 0.05}, testDash())
	actor := transform.NewNode("actor")
	cam := mgl64.QuatIdent()
	dt := 1.0 / 60
	now := 0.0

	c.Update(actor, Input{Move: mgl64.Vec2{1, 0}, Dash: true}, cam, now, dt)
	if !c.Dash.Locked() {
		t.Fatalf("dash did not start")
	}
	if f := gamemath.ForwardOf(actor.Rotation()); f.Sub(mgl64.Vec3{1, 0, 0}).Len() > 1e-6 {
		t.Fatalf("actor not snapped toward dash: %v", f)
	}

	// Steering input pointing the other way must be ignored while locked.
	for c.Dash.Locked() {
		now += dt
		c.Update(actor, Input{Move: mgl64.Vec2{-1, 0}}, cam, now, dt)
		if c.Walking() && c.Dash.Locked() {
			t.Fatalf("walking while dashing")
		}
	}
	if actor.Position()[0] <= 0 {
		t.Fatalf("dash did not move actor along +X: %v", actor.Position())
	}

	before := actor.Rotation()
	now += dt
	c.Update(actor, Input{Move: mgl64.Vec2{-1, 0}}, cam, now, dt)
	if !c.Walking() {
		t.Fatalf("steering did not resume")
	}
	if gamemath.AngleBetween(before, actor.Rotation()) == 0 {
		t.Fatalf("steering did not turn the actor")
	}
}

func TestControllerIdleInDeadzone(t *testing.T) {
	c := NewController(Config{MoveSpeed: 2, RotateSpeed: 10, Deadzone: 0.2}, testDash())
	actor := transform.NewNode("actor")
	c.Update(actor, Input{Move: mgl64.Vec2{0.1, 0.1}}, mgl64.QuatIdent(), 0, 1.0/60)
	if c.Walking() || actor.Position() != (mgl64.Vec3{}) {
		t.Fatalf("actor moved inside deadzone")
	}
}

func TestCurveByName(t *testing.T) {
	for _, name := range []string{"", "in-out-quad", "InOutCubic", "linear"} {
		if _, err := CurveByName(name); err != nil {
			t.Fatalf("CurveByName(%q): %v", name, err)
		}
	}
	if _, err := CurveByName("bounce-forever"); err == nil {
		t.Fatalf("expected error")
	}
}
