package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type DamageEventData struct {
	Amount    int
	Knockback mgl64.Vec3     // velocity change in metres per second
	Attacker  *donburi.Entry // nil for environment damage
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
