package components

import (
	"github.com/automoto/bonebrawl/shared/combat"
	"github.com/yohamta/donburi"
)

// HitVolumeData gates a hit collider. The window opens and closes on
// animation events; each owner it touches is struck once per opening.
type HitVolumeData struct {
	Window    *combat.HitWindow[donburi.Entity]
	Knockback float64
}

var HitVolume = donburi.NewComponentType[HitVolumeData]()
