package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/bonebrawl/components"
	cfg "github.com/automoto/bonebrawl/config"
	"github.com/automoto/bonebrawl/fonts"
	"github.com/automoto/bonebrawl/shared/locomotion"
	"github.com/automoto/bonebrawl/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based HUD text
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 160
	hudBarHeight = 12
	hudMargin    = 10
	hudLine      = 18
)

// DrawHUD renders the player's health, dash state and landed hits, and a
// health bar over every dummy.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	w := ecs.World
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)
	healthBar(screen, hudMargin, hudMargin, hudBarWidth, hudBarHeight, hp, cfg.Green)

	face := fonts.Regular.Get()
	p := components.Player.Get(playerEntry)
	y := hudMargin + hudBarHeight + hudLine
	text.Draw(screen, fmt.Sprintf("Hits landed: %d", p.Hits), face, hudMargin, y, cfg.White)
	if p.Controller != nil {
		y += hudLine
		text.Draw(screen, dashLabel(p.Controller.Dash), face, hudMargin, y, cfg.LightBlue)
	}
	if playerEntry.HasComponent(components.Death) {
		title := fonts.Title.Get()
		msg := fmt.Sprintf("Knocked out, back in %.1fs", components.Death.Get(playerEntry).Timer)
		text.Draw(screen, msg, title, cfg.C.Width/2-140, cfg.C.Height/2, cfg.LightRed)
	}

	v, ok := ViewOf(w, screen.Bounds().Dx(), screen.Bounds().Dy())
	if !ok {
		return
	}
	tags.Dummy.Each(w, func(e *donburi.Entry) {
		x, y := v.Project(components.Transform.Get(e).Position())
		barW := float32(40)
		healthBar(screen, x-barW/2, y-v.Length(actorRadius)-10, barW, 4, components.Health.Get(e), cfg.Orange)
		d := components.Dummy.Get(e)
		text.Draw(screen, fmt.Sprintf("%d", d.HitsTaken), fonts.Mono.Get(), int(x)-4, int(y-v.Length(actorRadius))-14, cfg.White)
	})
}

func healthBar(screen *ebiten.Image, x, y, width, height float32, hp *components.HealthData, clr color.RGBA) {
	vector.FillRect(screen, x, y, width, height, color.RGBA{R: 40, G: 40, B: 40, A: 255}, false)
	if hp.Max <= 0 {
		return
	}
	ratio := float32(hp.Current) / float32(hp.Max)
	vector.FillRect(screen, x, y, width*ratio, height, clr, false)
}

func dashLabel(d *locomotion.Dash) string {
	if d.Locked() {
		return fmt.Sprintf("Dash: %s x%.2f", d.State(), d.Multiplier())
	}
	return "Dash: " + d.State().String()
}
