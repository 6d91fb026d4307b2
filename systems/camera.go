package systems

import (
	"github.com/automoto/bonebrawl/components"
	cfg "github.com/automoto/bonebrawl/config"
	"github.com/automoto/bonebrawl/shared/camera"
	"github.com/automoto/bonebrawl/tags"
	"github.com/yohamta/donburi"
)

// UpdateCamera orbits each camera rig around its target after the target
// has moved for the frame. Holding the free-cursor action suspends look.
func UpdateCamera(w donburi.World) {
	in := InputOf(w)
	dt := components.ClockOf(w).Delta

	tags.Camera.Each(w, func(e *donburi.Entry) {
		c := components.Camera.Get(e)
		if c.Target == nil || !c.Target.Valid() {
			return
		}
		c.CursorFree = in.Pressed(cfg.ActionFreeCursor)
		target := components.Transform.Get(c.Target).Position()
		c.Rig.Update(camera.Input{
			Look:       in.Look,
			Zoom:       in.Zoom,
			CursorFree: c.CursorFree,
		}, target, dt)
		components.Transform.Get(e).SetPositionAndRotation(c.Rig.Position(), c.Rig.Rotation())
	})
}
