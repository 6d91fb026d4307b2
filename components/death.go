package components

import "github.com/yohamta/donburi"

// DeathData marks an entity that has run out of health.
// Timer counts down in seconds; when it reaches 0 the entity respawns.
type DeathData struct {
	Timer float64
}

var Death = donburi.NewComponentType[DeathData]()
