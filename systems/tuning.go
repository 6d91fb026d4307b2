package systems

import (
	"github.com/automoto/bonebrawl/components"
	cfg "github.com/automoto/bonebrawl/config"
	"github.com/automoto/bonebrawl/systems/factory"
	"github.com/automoto/bonebrawl/tags"
	"github.com/yohamta/donburi"
)

// ApplyTuning pushes the global config into live controllers, camera rigs
// and hit volumes after a tuning reload.
func ApplyTuning(w donburi.World) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		if p.Controller == nil {
			return
		}
		p.Controller.Config = factory.LocomotionConfig()
		p.Controller.Dash.SetConfig(factory.DashConfig())
	})
	tags.Camera.Each(w, func(e *donburi.Entry) {
		rig := components.Camera.Get(e).Rig
		rig.Config = factory.CameraConfig()
		rig.SetDistance(rig.Distance())
	})
	tags.Hitbox.Each(w, func(e *donburi.Entry) {
		hv := components.HitVolume.Get(e)
		hv.Knockback = cfg.Combat.Knockback
	})
}
