package systems

import (
	"strings"

	"github.com/automoto/bonebrawl/components"
	"github.com/automoto/bonebrawl/shared/anim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var animatorQuery = donburi.NewQuery(filter.Contains(components.Animator, components.Rig))

// UpdateAnimators picks each actor's clip, advances it, dispatches the
// timeline events crossed this frame and poses the skeleton.
func UpdateAnimators(w donburi.World) {
	dt := components.ClockOf(w).Delta
	var events []clipEvent
	animatorQuery.Each(w, func(e *donburi.Entry) {
		a := components.Animator.Get(e)
		r := components.Rig.Get(e)

		if next := selectClip(e, a); next != nil && (next != a.Player.Clip() || a.Player.Finished()) {
			SetHitWindows(w, e, "", false)
			r.ResetPose()
			a.Player.Play(next)
		}
		for _, name := range a.Player.Advance(dt) {
			events = append(events, clipEvent{actor: e, name: name})
		}
		a.Player.Apply(r.Skeleton.Find)
	})

	// Opening a window can queue damage on another animated actor, so events
	// run once the query is done.
	for _, ev := range events {
		HandleAnimationEvent(w, ev.actor, ev.name)
	}
}

type clipEvent struct {
	actor *donburi.Entry
	name  string
}

// selectClip returns the clip that should be playing. A queued attack starts
// unless an attack is already running; a one-shot clip plays to its end
// before locomotion takes over again.
func selectClip(e *donburi.Entry, a *components.AnimatorData) *anim.Clip {
	cur := a.Player.Clip()
	if a.AttackQueue {
		a.AttackQueue = false
		attack := a.Clips[components.ClipAttack]
		if attack != nil && (cur != attack || a.Player.Finished()) {
			return attack
		}
	}
	if cur != nil && !cur.Loop && !a.Player.Finished() {
		return cur
	}

	want := components.ClipIdle
	if e.HasComponent(components.Player) && !e.HasComponent(components.Death) {
		if c := components.Player.Get(e).Controller; c != nil && c.Walking() {
			want = components.ClipWalk
		}
	}
	if c := a.Clips[want]; c != nil {
		return c
	}
	if c := a.Clips[components.ClipIdle]; c != nil {
		return c
	}
	return cur
}

// HandleAnimationEvent routes a clip event for actor e. Unknown events are
// ignored.
func HandleAnimationEvent(w donburi.World, e *donburi.Entry, event string) {
	name, volume, _ := strings.Cut(event, ":")
	switch name {
	case EventHitboxOn:
		SetHitWindows(w, e, volume, true)
	case EventHitboxOff:
		SetHitWindows(w, e, volume, false)
	}
}
