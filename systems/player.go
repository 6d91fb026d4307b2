package systems

import (
	"math"

	"github.com/automoto/bonebrawl/components"
	cfg "github.com/automoto/bonebrawl/config"
	"github.com/automoto/bonebrawl/shared/locomotion"
	"github.com/automoto/bonebrawl/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// InputOf returns the input singleton, or an idle input when none exists.
func InputOf(w donburi.World) *components.InputData {
	if e, ok := components.Input.First(w); ok {
		return components.Input.Get(e)
	}
	return &components.InputData{}
}

// UpdatePlayer steers the player relative to its camera, triggers dashes and
// queues attacks for the animator.
func UpdatePlayer(w donburi.World) {
	in := InputOf(w)
	clk := components.ClockOf(w)
	arena, hasArena := arenaOf(w)

	tags.Player.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		p := components.Player.Get(e)
		if p.Controller == nil {
			return
		}

		camRot := mgl64.QuatIdent()
		if p.Camera != nil && p.Camera.Valid() {
			camRot = components.Camera.Get(p.Camera).Rig.Rotation()
		}

		node := components.Transform.Get(e).Node
		p.Controller.Update(node, locomotion.Input{
			Move: in.Move,
			Dash: in.JustPressed(cfg.ActionDash),
		}, camRot, clk.Now, clk.Delta)

		if hasArena {
			pos := node.Position()
			pos[0] = math.Max(0, math.Min(arena.Width, pos[0]))
			pos[2] = math.Max(0, math.Min(arena.Depth, pos[2]))
			node.SetPositionAndRotation(pos, node.Rotation())
		}

		if in.JustPressed(cfg.ActionAttack) && !p.Controller.Dash.Locked() && e.HasComponent(components.Animator) {
			components.Animator.Get(e).AttackQueue = true
		}
	})
}
