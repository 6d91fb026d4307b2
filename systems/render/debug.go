package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/bonebrawl/components"
	cfg "github.com/automoto/bonebrawl/config"
	"github.com/automoto/bonebrawl/fonts"
	"github.com/automoto/bonebrawl/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based HUD text
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug shows the broadphase footprints, the camera and a readout of
// clock, camera and hit window state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}
	w := ecs.World
	v, ok := ViewOf(w, screen.Bounds().Dx(), screen.Bounds().Dy())
	if !ok {
		return
	}

	if se, ok := components.Space.First(w); ok && se.HasComponent(components.Arena) {
		space := components.Space.Get(se)
		ppm := components.Arena.Get(se).PixelsPerMeter
		for _, obj := range space.Objects() {
			// Footprints are axis aligned in the world, so draw their outline
			// through the view rotation.
			x0, z0 := obj.X/ppm, obj.Y/ppm
			x1, z1 := (obj.X+obj.W)/ppm, (obj.Y+obj.H)/ppm
			clr := cfg.Gray
			if obj.HasTags(tags.ResolvHit) {
				clr = cfg.Red
			}
			outline(screen, v, x0, z0, x1, z1, clr)
		}
	}
	cameraMarker(w, screen, v)

	lines := debugLines(w)
	face := fonts.Mono.Get()
	x := cfg.C.Width - 300
	vector.FillRect(screen, float32(x-6), 4, 300, float32(len(lines)*14+8), cfg.BlackOverlay, false)
	for i, l := range lines {
		text.Draw(screen, l, face, x, 18+i*14, cfg.White)
	}
}

func debugLines(w donburi.World) []string {
	clk := components.ClockOf(w)
	lines := []string{
		fmt.Sprintf("frame %d  t %.2fs", clk.Frame, clk.Now),
		fmt.Sprintf("fixed steps %d  dt %.4f", clk.FixedSteps, clk.FixedDelta),
		fmt.Sprintf("tps %.0f  fps %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
	}
	if e, ok := tags.Camera.First(w); ok {
		rig := components.Camera.Get(e).Rig
		lines = append(lines, fmt.Sprintf("cam yaw %.1f pitch %.1f dist %.2f", rig.Yaw(), rig.Pitch(), rig.Distance()))
	}
	tags.Hitbox.Each(w, func(e *donburi.Entry) {
		col := components.Collider.Get(e)
		hv := components.HitVolume.Get(e)
		lines = append(lines, fmt.Sprintf("%s %s (%d)", col.Name, hv.Window.State(), hv.Window.Intervals()))
	})
	return lines
}

func outline(screen *ebiten.Image, v View, x0, z0, x1, z1 float64, clr color.Color) {
	corners := []mgl64.Vec3{{x0, 0, z0}, {x1, 0, z0}, {x1, 0, z1}, {x0, 0, z1}}
	for i := range corners {
		line(screen, v, corners[i], corners[(i+1)%len(corners)], 1, clr)
	}
}
