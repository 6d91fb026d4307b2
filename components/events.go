package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// HitEvent reports a hit volume striking an actor.
type HitEvent struct {
	Attacker *donburi.Entry
	Target   *donburi.Entry
	Volume   string
	Damage   int
}

var HitEvents = events.NewEventType[HitEvent]()
