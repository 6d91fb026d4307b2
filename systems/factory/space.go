package factory

import (
	"math"

	"github.com/automoto/bonebrawl/archetypes"
	"github.com/automoto/bonebrawl/components"
	cfg "github.com/automoto/bonebrawl/config"
	"github.com/automoto/bonebrawl/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace creates the arena and its broadphase. The space covers the
// arena floor in pixels.
func CreateSpace(w donburi.World, arena components.ArenaData) *donburi.Entry {
	if arena.PixelsPerMeter <= 0 {
		arena.PixelsPerMeter = cfg.Arena.PixelsPerMeter
	}
	space := archetypes.Space.Spawn(w)
	width := int(math.Ceil(arena.Width * arena.PixelsPerMeter))
	height := int(math.Ceil(arena.Depth * arena.PixelsPerMeter))
	cell := cfg.Arena.CellSize
	components.Space.Set(space, resolv.NewSpace(max(width, cell), max(height, cell), cell, cell))
	components.Arena.SetValue(space, arena)
	return space
}

// ArenaFromLevel converts parsed map data into metres.
func ArenaFromLevel(data *leveldata.ArenaData) components.ArenaData {
	ppm := data.PixelsPerMeter
	if ppm <= 0 {
		ppm = cfg.Arena.PixelsPerMeter
	}
	return components.ArenaData{
		Name:           data.Name,
		Width:          float64(data.MapWidth) / ppm,
		Depth:          float64(data.MapHeight) / ppm,
		PixelsPerMeter: ppm,
	}
}

// DefaultArena is the open floor used when no map is loaded.
func DefaultArena() components.ArenaData {
	ppm := cfg.Arena.PixelsPerMeter
	return components.ArenaData{
		Name:           "default",
		Width:          float64(cfg.Arena.DefaultWidth) / ppm,
		Depth:          float64(cfg.Arena.DefaultHeight) / ppm,
		PixelsPerMeter: ppm,
	}
}
