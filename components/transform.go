package components

import (
	"github.com/automoto/bonebrawl/shared/transform"
	"github.com/yohamta/donburi"
)

// TransformData places an entity in the world hierarchy.
type TransformData struct {
	*transform.Node
}

var Transform = donburi.NewComponentType[TransformData]()
