package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/bonebrawl/components"
	cfg "github.com/automoto/bonebrawl/config"
	"github.com/automoto/bonebrawl/prefabs"
	"github.com/automoto/bonebrawl/shared/gamemath"
	"github.com/automoto/bonebrawl/shared/skeleton"
	"github.com/automoto/bonebrawl/shared/transform"
	"github.com/yohamta/donburi"
)

// setupActor builds the actor node at spawn with the rig's skeleton and
// colliders beneath it. The rest pose is captured before any clip plays.
func setupActor(w donburi.World, e *donburi.Entry, spec *prefabs.RigSpec, spawn gamemath.Pose, health int) error {
	root := transform.NewNode(spec.Name)
	root.SetWorld(spawn)
	components.Transform.SetValue(e, components.TransformData{Node: root})

	rig := components.RigData{
		Name:     spec.Name,
		Prefab:   spec.Source,
		Skeleton: skeleton.New(prefabs.BuildSkeleton(root, spec.Skeleton)),
	}
	rig.CaptureRest()
	components.Rig.SetValue(e, rig)

	if spec.Health > 0 {
		health = spec.Health
	}
	components.Health.SetValue(e, components.HealthData{Current: health, Max: health})
	components.Spawn.SetValue(e, components.SpawnData{Pose: spawn})
	components.Body.SetValue(e, components.BodyData{Damping: cfg.Combat.BodyDamping})

	var errs []error
	for _, cs := range spec.Colliders {
		if _, err := CreateCollider(w, e, root, cs); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("actor %s: %w", spec.Name, err)
	}
	return nil
}

// setupAnimator gives the actor its clips. The animator picks the first clip
// on its next update.
func setupAnimator(e *donburi.Entry, spec *prefabs.RigSpec) error {
	clips, err := prefabs.BuildClips(spec.Clips)
	if err != nil {
		return err
	}
	components.Animator.SetValue(e, components.AnimatorData{Clips: clips})
	return nil
}
