package components

import (
	"github.com/automoto/bonebrawl/shared/anim"
	"github.com/yohamta/donburi"
)

// Clip names the animator selects between.
const (
	ClipIdle   = "idle"
	ClipWalk   = "walk"
	ClipAttack = "attack"
)

type AnimatorData struct {
	Player      anim.Player
	Clips       map[string]*anim.Clip
	AttackQueue bool
}

var Animator = donburi.NewComponentType[AnimatorData]()
