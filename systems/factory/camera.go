package factory

import (
	"github.com/automoto/bonebrawl/archetypes"
	"github.com/automoto/bonebrawl/components"
	cfg "github.com/automoto/bonebrawl/config"
	"github.com/automoto/bonebrawl/shared/camera"
	"github.com/automoto/bonebrawl/shared/gamemath"
	"github.com/automoto/bonebrawl/shared/transform"
	"github.com/yohamta/donburi"
)

// CreateCamera creates an orbit camera around target. A player target moves
// relative to this camera.
func CreateCamera(w donburi.World, target *donburi.Entry) *donburi.Entry {
	cam := archetypes.Camera.Spawn(w)

	rig := camera.NewRig(CameraConfig())
	yaw := cfg.Camera.StartYaw
	if target != nil && target.HasComponent(components.Transform) {
		yaw += gamemath.YawOf(components.Transform.Get(target).Rotation())
	}
	rig.SetAngles(yaw, cfg.Camera.StartPitch)

	components.Camera.SetValue(cam, components.CameraData{
		Rig:    rig,
		Target: target,
	})
	components.Transform.SetValue(cam, components.TransformData{Node: transform.NewNode("camera")})

	if target != nil && target.HasComponent(components.Player) {
		components.Player.Get(target).Camera = cam
	}
	return cam
}
