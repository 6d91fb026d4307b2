package render

import (
	"image/color"
	"math"

	"github.com/automoto/bonebrawl/assets"
	"github.com/automoto/bonebrawl/components"
	cfg "github.com/automoto/bonebrawl/config"
	"github.com/automoto/bonebrawl/shared/gamemath"
	"github.com/automoto/bonebrawl/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	actorRadius = 0.35 // metres
	discSize    = 64
)

var (
	actorDisc  *ebiten.Image
	shaderOp   = &ebiten.DrawRectShaderOptions{}
	drawOp     = &ebiten.DrawImageOptions{}
	flashColor = []float32{1, 1, 1}
)

// DrawArena renders the floor, the actors and their volumes.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Background)
	w := ecs.World
	v, ok := ViewOf(w, screen.Bounds().Dx(), screen.Bounds().Dy())
	if !ok {
		return
	}

	drawFloor(w, screen, v)
	drawActors(w, screen, v)
	components.Collider.Each(w, func(e *donburi.Entry) {
		drawCollider(screen, v, e)
	})
}

func drawFloor(w donburi.World, screen *ebiten.Image, v View) {
	se, ok := components.Arena.First(w)
	if !ok {
		return
	}
	a := components.Arena.Get(se)
	grid := color.RGBA{R: 40, G: 44, B: 54, A: 255}
	for x := 0.0; x <= a.Width; x++ {
		line(screen, v, mgl64.Vec3{x, 0, 0}, mgl64.Vec3{x, 0, a.Depth}, 1, grid)
	}
	for z := 0.0; z <= a.Depth; z++ {
		line(screen, v, mgl64.Vec3{0, 0, z}, mgl64.Vec3{a.Width, 0, z}, 1, grid)
	}
	corners := []mgl64.Vec3{{0, 0, 0}, {a.Width, 0, 0}, {a.Width, 0, a.Depth}, {0, 0, a.Depth}}
	for i := range corners {
		line(screen, v, corners[i], corners[(i+1)%len(corners)], 2, cfg.Gray)
	}
}

func drawActors(w donburi.World, screen *ebiten.Image, v View) {
	if actorDisc == nil {
		actorDisc = ebiten.NewImage(discSize, discSize)
		vector.FillCircle(actorDisc, discSize/2, discSize/2, discSize/2, color.White, true)
	}

	components.Rig.Each(w, func(e *donburi.Entry) {
		node := components.Transform.Get(e).Node
		clr := cfg.LightBlue
		if e.HasComponent(components.Dummy) {
			clr = cfg.Orange
		}
		if e.HasComponent(components.Death) {
			clr = cfg.Gray
		}

		x, y := v.Project(node.Position())
		size := v.Length(actorRadius * 2)
		flash := 0.0
		if e.HasComponent(components.HitFlash) && cfg.Combat.HitFlashDuration > 0 {
			flash = gamemath.Clamp01(components.HitFlash.Get(e).TimeToLive / cfg.Combat.HitFlashDuration)
		}
		drawDisc(screen, x-size/2, y-size/2, size, clr, flash)

		// Facing
		tip := node.Position().Add(gamemath.ForwardOf(node.Rotation()).Mul(actorRadius * 1.8))
		line(screen, v, node.Position(), tip, 2, cfg.White)

		if cfg.Debug.ShowJoints {
			drawSkeleton(screen, v, components.Rig.Get(e))
		}
	})
}

// drawDisc draws the actor disc tinted clr, blended toward white by flash.
func drawDisc(screen *ebiten.Image, x, y, size float32, clr color.RGBA, flash float64) {
	scale := float64(size) / discSize
	if flash > 0 && assets.FlashShader != nil {
		shaderOp.GeoM.Reset()
		shaderOp.GeoM.Scale(scale, scale)
		shaderOp.GeoM.Translate(float64(x), float64(y))
		shaderOp.Images[0] = actorDisc
		shaderOp.ColorScale.Reset()
		shaderOp.ColorScale.ScaleWithColor(clr)
		shaderOp.Uniforms = map[string]any{
			"Color":  flashColor,
			"Amount": float32(flash),
		}
		screen.DrawRectShader(discSize, discSize, assets.FlashShader, shaderOp)
		return
	}
	drawOp.GeoM.Reset()
	drawOp.GeoM.Scale(scale, scale)
	drawOp.GeoM.Translate(float64(x), float64(y))
	drawOp.ColorScale.Reset()
	drawOp.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(actorDisc, drawOp)
}

func drawSkeleton(screen *ebiten.Image, v View, r *components.RigData) {
	root := r.Skeleton.Root()
	for _, j := range r.Skeleton.Joints() {
		if j != root && j.Parent() != nil {
			line(screen, v, j.Parent().Position(), j.Position(), 1, cfg.Yellow)
		}
		x, y := v.Project(j.Position())
		vector.FillCircle(screen, x, y, 2, cfg.Yellow, false)
	}
}

func drawCollider(screen *ebiten.Image, v View, e *donburi.Entry) {
	col := components.Collider.Get(e)
	if col.Role == components.RoleSolid && !cfg.Debug.Overlay {
		return
	}
	node := components.Transform.Get(e).Node

	var clr color.RGBA
	switch col.Role {
	case components.RoleHit:
		if !col.Enabled {
			if !cfg.Debug.Overlay {
				return
			}
			clr = cfg.Gray
		} else {
			clr = cfg.Red
		}
	case components.RoleHurt:
		if !cfg.Debug.Overlay {
			return
		}
		clr = cfg.LightGreen
		if !col.Enabled {
			clr = cfg.Gray
		}
	default:
		clr = cfg.Blue
	}

	switch col.Shape {
	case components.ShapeSphere, components.ShapeCapsule:
		x, y := v.Project(col.WorldCenter(node))
		r := v.Length(col.Radius * gamemath.MaxAbs(node.World().Scale))
		vector.StrokeCircle(screen, x, y, float32(math.Max(float64(r), 1)), 1, clr, true)
	default:
		b := col.Bounds(node)
		corners := []mgl64.Vec3{
			{b.Min.X(), 0, b.Min.Z()}, {b.Max.X(), 0, b.Min.Z()},
			{b.Max.X(), 0, b.Max.Z()}, {b.Min.X(), 0, b.Max.Z()},
		}
		for i := range corners {
			line(screen, v, corners[i], corners[(i+1)%len(corners)], 1, clr)
		}
	}
}

func line(screen *ebiten.Image, v View, a, b mgl64.Vec3, width float32, clr color.Color) {
	x0, y0 := v.Project(a)
	x1, y1 := v.Project(b)
	vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
}

// cameraMarker draws where the orbit camera sits and what it looks at.
func cameraMarker(w donburi.World, screen *ebiten.Image, v View) {
	e, ok := tags.Camera.First(w)
	if !ok {
		return
	}
	rig := components.Camera.Get(e).Rig
	pos := rig.Position()
	x, y := v.Project(pos)
	vector.StrokeRect(screen, x-4, y-4, 8, 8, 1, cfg.White, false)
	look := pos.Add(gamemath.NormalizeSafe(gamemath.ProjectOnPlane(gamemath.ForwardOf(rig.Rotation()), gamemath.Up)))
	line(screen, v, pos, look, 1, cfg.White)
}
