package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Dummy   = donburi.NewTag().SetName("Dummy")
	Hitbox  = donburi.NewTag().SetName("Hitbox")
	Hurtbox = donburi.NewTag().SetName("Hurtbox")
	Solid   = donburi.NewTag().SetName("Solid")
	Camera  = donburi.NewTag().SetName("Camera")
)

// Resolv tags for the ground-plane broadphase
const (
	ResolvSolid = "solid"
	ResolvHit   = "hit"
	ResolvHurt  = "hurt"
)
