package factory

import (
	"github.com/automoto/bonebrawl/archetypes"
	"github.com/automoto/bonebrawl/components"
	cfg "github.com/automoto/bonebrawl/config"
	"github.com/automoto/bonebrawl/prefabs"
	"github.com/automoto/bonebrawl/shared/gamemath"
	"github.com/automoto/bonebrawl/shared/locomotion"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the controllable character described by spec.
func CreatePlayer(w donburi.World, spec *prefabs.RigSpec, spawn gamemath.Pose) (*donburi.Entry, error) {
	player := archetypes.Player.Spawn(w)

	components.Player.SetValue(player, components.PlayerData{
		Controller: locomotion.NewController(LocomotionConfig(), DashConfig()),
	})
	if err := setupActor(w, player, spec, spawn, cfg.Combat.PlayerHealth); err != nil {
		return player, err
	}
	if err := setupAnimator(player, spec); err != nil {
		return player, err
	}
	// The player moves by transform; knockback is not applied to it.
	components.Body.Get(player).Kinematic = true

	return player, nil
}

// CreateDummy spawns a training target.
func CreateDummy(w donburi.World, spec *prefabs.RigSpec, spawn gamemath.Pose) (*donburi.Entry, error) {
	var extra []donburi.IComponentType
	if len(spec.Clips) > 0 {
		extra = append(extra, components.Animator)
	}
	dummy := archetypes.Dummy.Spawn(w, extra...)

	if err := setupActor(w, dummy, spec, spawn, cfg.Combat.DummyHealth); err != nil {
		return dummy, err
	}
	if len(spec.Clips) > 0 {
		if err := setupAnimator(dummy, spec); err != nil {
			return dummy, err
		}
	}
	return dummy, nil
}

// CreateInput creates the input singleton.
func CreateInput(w donburi.World) *donburi.Entry {
	return archetypes.Input.Spawn(w)
}
