package factory

import (
	"fmt"

	"github.com/automoto/bonebrawl/archetypes"
	"github.com/automoto/bonebrawl/components"
	cfg "github.com/automoto/bonebrawl/config"
	"github.com/automoto/bonebrawl/prefabs"
	"github.com/automoto/bonebrawl/shared/combat"
	"github.com/automoto/bonebrawl/shared/transform"
	"github.com/automoto/bonebrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateCollider spawns one collider of owner under the model node. Hit
// volumes start with a closed window; solid and hurt volumes start enabled.
func CreateCollider(w donburi.World, owner *donburi.Entry, model *transform.Node, spec prefabs.ColliderSpec) (*donburi.Entry, error) {
	shape, err := components.ParseShape(spec.Shape)
	if err != nil {
		return nil, fmt.Errorf("collider %q: %w", spec.Name, err)
	}
	role, err := components.ParseRole(spec.Role)
	if err != nil {
		return nil, fmt.Errorf("collider %q: %w", spec.Name, err)
	}

	var extra []donburi.IComponentType
	if spec.Body {
		extra = append(extra, components.Body)
	}

	var e *donburi.Entry
	switch role {
	case components.RoleHit:
		e = archetypes.Hitbox.Spawn(w, extra...)
	case components.RoleHurt:
		e = archetypes.Hurtbox.Spawn(w, extra...)
	default:
		e = archetypes.Solid.Spawn(w, extra...)
	}

	node := transform.NewChild(model, spec.Name, spec.Pose())
	components.Transform.SetValue(e, components.TransformData{Node: node})
	components.Collider.SetValue(e, components.ColliderData{
		Name:      spec.Name,
		Shape:     shape,
		Center:    spec.Center,
		Size:      spec.Size,
		Radius:    spec.Radius,
		Height:    spec.Height,
		IsTrigger: spec.Trigger,
		Layer:     spec.Layer,
		Role:      role,
		Enabled:   role != components.RoleHit,
		Owner:     owner,
	})

	if role == components.RoleHit {
		damage := spec.Damage
		if damage <= 0 {
			damage = cfg.Combat.HitDamage
		}
		components.HitVolume.SetValue(e, components.HitVolumeData{
			Window:    combat.NewHitWindow[donburi.Entity](damage),
			Knockback: cfg.Combat.Knockback,
		})
	}
	if spec.Body {
		components.Body.SetValue(e, components.BodyData{Kinematic: spec.Kinematic})
	}

	AddVolume(w, e)
	return e, nil
}

// AddVolume registers the collider of e with the arena broadphase. Without
// an arena the collider only takes part in exact overlap tests.
func AddVolume(w donburi.World, e *donburi.Entry) {
	se, ok := components.Space.First(w)
	if !ok || !se.HasComponent(components.Arena) {
		return
	}
	space := components.Space.Get(se)
	arena := components.Arena.Get(se)
	col := components.Collider.Get(e)
	if col.Object != nil {
		space.Remove(col.Object)
	}

	obj := resolv.NewObject(0, 0, 1, 1, resolvTag(col.Role))
	obj.Data = e
	arena.PlaceFootprint(obj, col.Bounds(components.Transform.Get(e).Node))
	space.Add(obj)
	obj.Update()
	col.Object = obj
}

func resolvTag(role components.VolumeRole) string {
	switch role {
	case components.RoleHit:
		return tags.ResolvHit
	case components.RoleHurt:
		return tags.ResolvHurt
	default:
		return tags.ResolvSolid
	}
}
