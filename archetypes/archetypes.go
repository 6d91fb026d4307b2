package archetypes

import (
	"github.com/automoto/bonebrawl/components"
	"github.com/automoto/bonebrawl/tags"
	"github.com/yohamta/donburi"
)

var (
	Clock = newArchetype(
		components.Clock,
	)
	Input = newArchetype(
		components.Input,
	)
	Space = newArchetype(
		components.Space,
		components.Arena,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Rig,
		components.Animator,
		components.Health,
		components.Spawn,
		components.Body,
	)
	Dummy = newArchetype(
		tags.Dummy,
		components.Dummy,
		components.Transform,
		components.Rig,
		components.Health,
		components.Spawn,
		components.Body,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Transform,
		components.Collider,
		components.HitVolume,
	)
	Hurtbox = newArchetype(
		tags.Hurtbox,
		components.Transform,
		components.Collider,
	)
	Solid = newArchetype(
		tags.Solid,
		components.Transform,
		components.Collider,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
		components.Transform,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
