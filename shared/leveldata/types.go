// Package leveldata parses arena TMX files into plain placement data.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
package leveldata

// ArenaData holds the placement data parsed from a TMX arena file.
// Coordinates are map pixels; the map Y axis becomes world Z.
type ArenaData struct {
	Name           string
	MapWidth       int
	MapHeight      int
	PixelsPerMeter float64 // 0 when the map does not set one
	PlayerSpawns   []SpawnPoint
	Dummies        []SpawnPoint
}

// SpawnPoint represents an actor spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
	Yaw   float64 // degrees, 0 faces +Z
	Rig   string  // prefab file, empty for the default
}

// World converts a pixel position into metres on the ground plane.
func (s SpawnPoint) World(pixelsPerMeter float64) (x, z float64) {
	if pixelsPerMeter <= 0 {
		return s.X, s.Y
	}
	return s.X / pixelsPerMeter, s.Y / pixelsPerMeter
}
