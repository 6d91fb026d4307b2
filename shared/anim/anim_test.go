package anim

import (
	"reflect"
	"testing"

	"github.com/automoto/bonebrawl/shared/gamemath"
	"github.com/automoto/bonebrawl/shared/skeleton"
	"github.com/automoto/bonebrawl/shared/transform"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

func attackClip() *Clip {
	c := &Clip{
		Name:     "attack",
		Duration: 1,
		Events: []Event{
			{Time: 0.6, Name: "hitbox_off"},
			{Time: 0.3, Name: "hitbox_on"},
		},
	}
	c.Normalize()
	return c
}

func TestAdvanceFiresEventsOnce(t *testing.T) {
	cases := []struct {
		name  string
		steps []float64
		want  [][]string
	}{
		{"small_steps", []float64{0.2, 0.2, 0.2, 0.5}, [][]string{nil, {"hitbox_on"}, {"hitbox_off"}, nil}},
		{"one_big_step", []float64{2}, [][]string{{"hitbox_on", "hitbox_off"}}},
		{"exact_boundary", []float64{0.3, 0.3}, [][]string{{"hitbox_on"}, {"hitbox_off"}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var p Player
			p.Play(attackClip())
			for i, dt := range c.steps {
				got := p.Advance(dt)
				if len(got) == 0 && len(c.want[i]) == 0 {
					continue
				}
				if !reflect.DeepEqual(got, c.want[i]) {
					t.Fatalf("step %d: events %v, want %v", i, got, c.want[i])
				}
			}
			if !p.Finished() && p.Time() >= 1 {
				t.Fatalf("clip past its end but not finished")
			}
		})
	}
}

func TestLoopWrapsAndFiresStartEvent(t *testing.T) {
	c := &Clip{Name: "walk", Duration: 0.5, Loop: true, Events: []Event{{Time: 0, Name: "step"}, {Time: 0.25, Name: "step"}}}
	var p Player
	p.Play(c)
	if got := p.Advance(0.1); !reflect.DeepEqual(got, []string{"step"}) {
		t.Fatalf("first advance = %v", got)
	}
	if got := p.Advance(0.5); !reflect.DeepEqual(got, []string{"step", "step"}) {
		t.Fatalf("wrap advance = %v", got)
	}
	if p.Loops() != 1 || p.Finished() {
		t.Fatalf("loops = %d finished = %v", p.Loops(), p.Finished())
	}
}

func TestTrackSample(t *testing.T) {
	tr := Track{Joint: "arm", Keys: []Key{
		{Time: 0, Rotation: mgl64.QuatIdent()},
		{Time: 1, Rotation: gamemath.Euler(0, 90, 0), Ease: ease.Linear},
	}}
	q, _ := tr.Sample(0.5)
	if d := gamemath.AngleBetween(q, gamemath.Euler(0, 45, 0)); d > 1e-6 {
		t.Fatalf("midpoint off by %v rad", d)
	}
	q, _ = tr.Sample(5)
	if d := gamemath.AngleBetween(q, gamemath.Euler(0, 90, 0)); d > 1e-6 {
		t.Fatalf("past end off by %v rad", d)
	}
}

func TestApplyPosesSkeleton(t *testing.T) {
	root := transform.NewNode("hips")
	arm := transform.NewChild(root, "arm", gamemath.NewPose(mgl64.Vec3{0, 1, 0}, mgl64.QuatIdent()))
	hand := transform.NewChild(arm, "hand", gamemath.NewPose(mgl64.Vec3{0, 0, 1}, mgl64.QuatIdent()))
	reg := skeleton.New(root)

	c := &Clip{Name: "swing", Duration: 1, Tracks: []Track{{Joint: "arm", Keys: []Key{
		{Time: 0, Rotation: gamemath.Euler(0, 90, 0)},
	}}, {Joint: "missing", Keys: []Key{{Time: 0, Rotation: mgl64.QuatIdent()}}}}}
	var p Player
	p.Play(c)
	p.Apply(reg.Find)

	if got := hand.Position(); got.Sub(mgl64.Vec3{1, 1, 0}).Len() > 1e-6 {
		t.Fatalf("hand = %v, want (1,1,0)", got)
	}
}
