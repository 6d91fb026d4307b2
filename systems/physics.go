package systems

import (
	"math"

	"github.com/automoto/bonebrawl/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var bodyQuery = donburi.NewQuery(filter.Contains(components.Body, components.Transform))

// UpdateBodies integrates the velocity of dynamic bodies over one fixed step.
// Bodies stay on the ground plane; velocity decays with the body's damping.
func UpdateBodies(w donburi.World) {
	dt := components.ClockOf(w).Delta
	arena, hasArena := arenaOf(w)

	bodyQuery.Each(w, func(e *donburi.Entry) {
		b := components.Body.Get(e)
		if b.Kinematic {
			return
		}
		b.Velocity[1] = 0
		if b.Velocity.LenSqr() < 1e-8 {
			b.Velocity = b.Velocity.Mul(0)
			return
		}

		node := components.Transform.Get(e)
		pos := node.Position().Add(b.Velocity.Mul(dt))
		if hasArena {
			pos[0] = math.Max(0, math.Min(arena.Width, pos[0]))
			pos[2] = math.Max(0, math.Min(arena.Depth, pos[2]))
		}
		node.SetPositionAndRotation(pos, node.Rotation())

		if b.Damping > 0 {
			b.Velocity = b.Velocity.Mul(math.Exp(-b.Damping * dt))
		}
	})
}

func arenaOf(w donburi.World) (*components.ArenaData, bool) {
	e, ok := components.Arena.First(w)
	if !ok {
		return nil, false
	}
	return components.Arena.Get(e), true
}
