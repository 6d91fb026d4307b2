package systems

import (
	"github.com/automoto/bonebrawl/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func arenaSpace(w donburi.World) (*resolv.Space, *components.ArenaData, bool) {
	e, ok := components.Space.First(w)
	if !ok || !e.HasComponent(components.Arena) {
		return nil, nil, false
	}
	return components.Space.Get(e), components.Arena.Get(e), true
}

// RemoveVolume takes the collider of e out of the broadphase.
func RemoveVolume(w donburi.World, e *donburi.Entry) {
	col := components.Collider.Get(e)
	if col.Object == nil {
		return
	}
	if space, _, ok := arenaSpace(w); ok {
		space.Remove(col.Object)
	}
	col.Object = nil
}

// SyncVolume moves the broadphase footprint of e to its current pose.
func SyncVolume(w donburi.World, e *donburi.Entry) {
	col := components.Collider.Get(e)
	if col.Object == nil {
		return
	}
	_, arena, ok := arenaSpace(w)
	if !ok {
		return
	}
	arena.PlaceFootprint(col.Object, col.Bounds(components.Transform.Get(e).Node))
	col.Object.Update()
}

// SyncVolumes refreshes every collider footprint.
func SyncVolumes(w donburi.World) {
	components.Collider.Each(w, func(e *donburi.Entry) {
		SyncVolume(w, e)
	})
}
