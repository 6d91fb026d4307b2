package components

import (
	"github.com/automoto/bonebrawl/shared/camera"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Rig        *camera.Rig
	Target     *donburi.Entry
	CursorFree bool
}

var Camera = donburi.NewComponentType[CameraData]()
