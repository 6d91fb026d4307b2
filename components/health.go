package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

type HitFlashData struct {
	// TimeToLive is the number of seconds the hit flash stays visible.
	TimeToLive float64
}

var Health = donburi.NewComponentType[HealthData]()
var HitFlash = donburi.NewComponentType[HitFlashData]()
