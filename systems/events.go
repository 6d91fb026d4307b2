package systems

import (
	"log"

	"github.com/automoto/bonebrawl/components"
	"github.com/yohamta/donburi"
)

// SubscribeHitLog logs every hit once its event is processed.
func SubscribeHitLog(w donburi.World) {
	components.HitEvents.Subscribe(w, logHit)
}

func logHit(_ donburi.World, ev components.HitEvent) {
	log.Printf("[Combat] %s hit %s with %s for %d", actorName(ev.Attacker), actorName(ev.Target), ev.Volume, ev.Damage)
}

// ProcessHitEvents delivers the hits published this frame.
func ProcessHitEvents(w donburi.World) {
	components.HitEvents.ProcessEvents(w)
}
