package systems

import (
	"fmt"
	"log"

	"github.com/automoto/bonebrawl/components"
	"github.com/automoto/bonebrawl/prefabs"
	"github.com/automoto/bonebrawl/shared/gamemath"
	"github.com/automoto/bonebrawl/shared/leveldata"
	"github.com/automoto/bonebrawl/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Prefabs used when a map does not name one.
const (
	DefaultPlayerRig = "brawler.yaml"
	DefaultDummyRig  = "dummy.yaml"
)

// Roster lists the actors spawned into an arena.
type Roster struct {
	Player  *donburi.Entry
	Camera  *donburi.Entry
	Dummies []*donburi.Entry
}

// SpawnArena builds the arena described by level, or an empty default floor
// when level is nil, and spawns the player, its camera and the dummies. Every
// actor is bound to its skeleton before the first frame.
func SpawnArena(w donburi.World, level *leveldata.ArenaData) (*Roster, error) {
	arena := factory.DefaultArena()
	if level != nil {
		arena = factory.ArenaFromLevel(level)
	}
	factory.CreateSpace(w, arena)
	if _, ok := components.Input.First(w); !ok {
		factory.CreateInput(w)
	}

	specs := make(map[string]*prefabs.RigSpec)
	loadRig := func(name string) (*prefabs.RigSpec, error) {
		if s, ok := specs[name]; ok {
			return s, nil
		}
		s, err := prefabs.LoadRigSpec(name)
		if err != nil {
			return nil, err
		}
		specs[name] = s
		return s, nil
	}

	roster := &Roster{}
	spawn := gamemath.NewPose(mgl64.Vec3{arena.Width / 2, 0, arena.Depth / 4}, mgl64.QuatIdent())
	if level != nil && len(level.PlayerSpawns) > 0 {
		spawn = spawnPose(level.PlayerSpawns[0], arena.PixelsPerMeter)
	}
	spec, err := loadRig(DefaultPlayerRig)
	if err != nil {
		return nil, err
	}
	roster.Player, err = factory.CreatePlayer(w, spec, spawn)
	if err != nil {
		return nil, err
	}
	if _, err := BindRig(w, roster.Player, spec.Bind); err != nil {
		log.Printf("Warning: [Arena] binding %s: %v", spec.Name, err)
	}
	roster.Camera = factory.CreateCamera(w, roster.Player)

	if level != nil {
		for _, d := range level.Dummies {
			name := d.Rig
			if name == "" {
				name = DefaultDummyRig
			}
			spec, err := loadRig(name)
			if err != nil {
				return nil, fmt.Errorf("dummy %d: %w", d.Index, err)
			}
			dummy, err := factory.CreateDummy(w, spec, spawnPose(d, arena.PixelsPerMeter))
			if err != nil {
				return nil, err
			}
			if _, err := BindRig(w, dummy, spec.Bind); err != nil {
				log.Printf("Warning: [Arena] binding %s: %v", spec.Name, err)
			}
			roster.Dummies = append(roster.Dummies, dummy)
		}
	}

	SyncVolumes(w)
	return roster, nil
}

func spawnPose(s leveldata.SpawnPoint, pixelsPerMeter float64) gamemath.Pose {
	x, z := s.World(pixelsPerMeter)
	return gamemath.NewPose(mgl64.Vec3{x, 0, z}, gamemath.Euler(0, s.Yaw, 0))
}
