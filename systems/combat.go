package systems

import (
	"log"

	"github.com/automoto/bonebrawl/components"
	cfg "github.com/automoto/bonebrawl/config"
	"github.com/automoto/bonebrawl/tags"
	"github.com/yohamta/donburi"
)

// UpdateCombat applies queued damage events, keeps health values within
// their valid range and starts the death sequence at zero health.
func UpdateCombat(w donburi.World) {
	now := components.ClockOf(w).Now

	// Collect first: removing the event changes the entity's archetype.
	var hit []*donburi.Entry
	for e := range components.DamageEvent.Iter(w) {
		hit = append(hit, e)
	}

	for _, e := range hit {
		dmg := *components.DamageEvent.Get(e)
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
		if !e.HasComponent(components.Health) || e.HasComponent(components.Death) {
			continue
		}

		hp := components.Health.Get(e)
		hp.Current -= dmg.Amount

		if e.HasComponent(components.Body) {
			body := components.Body.Get(e)
			if !body.Kinematic {
				body.Velocity = body.Velocity.Add(dmg.Knockback)
			}
		}
		if e.HasComponent(components.Dummy) {
			d := components.Dummy.Get(e)
			d.HitsTaken++
			d.LastHitAt = now
		}
		if dmg.Attacker != nil && dmg.Attacker.Valid() && dmg.Attacker.HasComponent(components.Player) {
			components.Player.Get(dmg.Attacker).Hits++
		}
		if e.HasComponent(components.HitFlash) {
			components.HitFlash.Get(e).TimeToLive = cfg.Combat.HitFlashDuration
		} else {
			donburi.Add(e, components.HitFlash, &components.HitFlashData{
				TimeToLive: cfg.Combat.HitFlashDuration,
			})
		}
	}

	var dying []*donburi.Entry
	for e := range components.Health.Iter(w) {
		hp := components.Health.Get(e)
		if hp.Current < 0 {
			hp.Current = 0
		}
		if hp.Current > hp.Max {
			hp.Current = hp.Max
		}
		if hp.Current == 0 && !e.HasComponent(components.Death) {
			dying = append(dying, e)
		}
	}
	for _, e := range dying {
		startDeathSequence(w, e)
	}
}

func startDeathSequence(w donburi.World, e *donburi.Entry) {
	log.Printf("[Combat] %s knocked out", actorName(e))
	setHurtVolumes(w, e, false)
	SetHitWindows(w, e, "", false)
	if e.HasComponent(components.Player) {
		if c := components.Player.Get(e).Controller; c != nil {
			c.Dash.Cancel(components.ClockOf(w).Now)
		}
	}
	donburi.Add(e, components.Death, &components.DeathData{
		Timer: cfg.Combat.RespawnDelay,
	})
}

// UpdateDeaths counts down knocked-out actors and respawns them at their
// spawn pose with full health.
func UpdateDeaths(w donburi.World) {
	dt := components.ClockOf(w).Delta

	var ready []*donburi.Entry
	for e := range components.Death.Iter(w) {
		d := components.Death.Get(e)
		d.Timer -= dt
		if d.Timer <= 0 {
			ready = append(ready, e)
		}
	}
	for _, e := range ready {
		respawn(w, e)
	}
}

func respawn(w donburi.World, e *donburi.Entry) {
	donburi.Remove[components.DeathData](e, components.Death)
	if e.HasComponent(components.Health) {
		hp := components.Health.Get(e)
		hp.Current = hp.Max
	}
	if e.HasComponent(components.Spawn) {
		pose := components.Spawn.Get(e).Pose
		components.Transform.Get(e).SetPositionAndRotation(pose.Position, pose.Rotation)
	}
	if e.HasComponent(components.Body) {
		b := components.Body.Get(e)
		b.Velocity = b.Velocity.Mul(0)
	}
	setHurtVolumes(w, e, true)
}

func setHurtVolumes(w donburi.World, owner *donburi.Entry, enabled bool) {
	tags.Hurtbox.Each(w, func(e *donburi.Entry) {
		col := components.Collider.Get(e)
		if col.Owner == owner {
			col.Enabled = enabled
		}
	})
}

// UpdateHitFlash expires hit flashes.
func UpdateHitFlash(w donburi.World) {
	dt := components.ClockOf(w).Delta

	var done []*donburi.Entry
	for e := range components.HitFlash.Iter(w) {
		f := components.HitFlash.Get(e)
		f.TimeToLive -= dt
		if f.TimeToLive <= 0 {
			done = append(done, e)
		}
	}
	for _, e := range done {
		donburi.Remove[components.HitFlashData](e, components.HitFlash)
	}
}

func actorName(e *donburi.Entry) string {
	if e == nil || !e.Valid() {
		return "nobody"
	}
	if e.HasComponent(components.Rig) {
		return components.Rig.Get(e).Name
	}
	return e.String()
}
