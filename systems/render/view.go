// Package render draws the arena from above, turned so the camera's facing
// points up the screen.
package render

import (
	"math"

	"github.com/automoto/bonebrawl/components"
	cfg "github.com/automoto/bonebrawl/config"
	"github.com/automoto/bonebrawl/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// View maps world points onto the screen.
type View struct {
	Center mgl64.Vec3 // world point drawn at the screen centre
	Yaw    float64    // degrees, this heading points up
	Scale  float64    // pixels per metre
	Width  float64
	Height float64
}

// ViewOf builds the view for the first camera, centred on its target.
func ViewOf(w donburi.World, width, height int) (View, bool) {
	e, ok := tags.Camera.First(w)
	if !ok {
		return View{}, false
	}
	c := components.Camera.Get(e)
	v := View{
		Yaw:    c.Rig.Yaw(),
		Scale:  cfg.Arena.PixelsPerMeter * 2,
		Width:  float64(width),
		Height: float64(height),
	}
	if c.Target != nil && c.Target.Valid() {
		v.Center = components.Transform.Get(c.Target).Position()
	}
	return v, true
}

// Project returns the screen position of a world point.
func (v View) Project(p mgl64.Vec3) (float32, float32) {
	s, c := math.Sincos(mgl64.DegToRad(v.Yaw))
	d := p.Sub(v.Center)
	right := d[0]*c - d[2]*s
	fwd := d[0]*s + d[2]*c
	return float32(v.Width/2 + right*v.Scale), float32(v.Height/2 - fwd*v.Scale)
}

// Length converts metres to pixels.
func (v View) Length(m float64) float32 {
	return float32(m * v.Scale)
}
