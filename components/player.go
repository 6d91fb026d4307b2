package components

import (
	"github.com/automoto/bonebrawl/shared/gamemath"
	"github.com/automoto/bonebrawl/shared/locomotion"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Controller *locomotion.Controller
	Camera     *donburi.Entry // rig the movement input is relative to
	Hits       int            // hits landed
}

var Player = donburi.NewComponentType[PlayerData]()

// DummyData is a training target.
type DummyData struct {
	HitsTaken int
	LastHitAt float64
}

var Dummy = donburi.NewComponentType[DummyData]()

// SpawnData remembers where an actor respawns.
type SpawnData struct {
	Pose gamemath.Pose
}

var Spawn = donburi.NewComponentType[SpawnData]()
