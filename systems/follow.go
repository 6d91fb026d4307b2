package systems

import (
	"log"

	"github.com/automoto/bonebrawl/components"
	"github.com/automoto/bonebrawl/shared/binding"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var followerQuery = donburi.NewQuery(filter.Contains(components.Follower, components.Transform))

// NewUpdateFollowers returns the follower system for one timing. Fixed-timed
// followers also move their broadphase footprint so the next overlap query
// sees the new pose.
func NewUpdateFollowers(timing binding.Timing) func(w donburi.World) {
	return func(w donburi.World) {
		dt := components.ClockOf(w).Delta
		followerQuery.Each(w, func(e *donburi.Entry) {
			f := components.Follower.Get(e)
			if f.Timing != timing || f.Disabled || f.Attached {
				return
			}
			if f.Joint == nil {
				log.Printf("Warning: [Follow] %s has no joint, follower disabled", followerName(e))
				f.Disabled = true
				return
			}
			node := components.Transform.Get(e).Node
			if !f.Started {
				if f.ComputeOnStart {
					f.Offset = binding.ComputeOffset(f.Joint, node.World())
				}
				f.Started = true
			}
			binding.Apply(node, f.Joint, f.Offset, f.Smoothing, dt)
			if timing == binding.TimingFixed && e.HasComponent(components.Collider) {
				SyncVolume(w, e)
			}
		})
	}
}

var (
	UpdateFollowersFixed  = NewUpdateFollowers(binding.TimingFixed)
	UpdateFollowersUpdate = NewUpdateFollowers(binding.TimingUpdate)
	UpdateFollowersLate   = NewUpdateFollowers(binding.TimingLate)
)

func followerName(e *donburi.Entry) string {
	if e.HasComponent(components.Collider) {
		return components.Collider.Get(e).Name
	}
	if t := components.Transform.Get(e); t.Node != nil {
		return t.Name
	}
	return e.String()
}
