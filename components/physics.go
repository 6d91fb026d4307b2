package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// BodyData is a simulated body. Kinematic bodies are moved by their transform
// only and ignore velocity.
type BodyData struct {
	Kinematic bool
	Velocity  mgl64.Vec3
	Damping   float64 // per second
}

var Body = donburi.NewComponentType[BodyData]()
