package components

import (
	"github.com/automoto/bonebrawl/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ArenaData describes the playable ground plane. Width and Depth are in
// metres; PixelsPerMeter converts to the broadphase space units.
type ArenaData struct {
	Name           string
	Width          float64
	Depth          float64
	PixelsPerMeter float64
}

var Arena = donburi.NewComponentType[ArenaData]()

// ToSpace converts a world X/Z pair into broadphase coordinates.
func (a *ArenaData) ToSpace(x, z float64) (float64, float64) {
	return x * a.PixelsPerMeter, z * a.PixelsPerMeter
}

// Contains reports whether p lies on the arena floor rectangle.
func (a *ArenaData) Contains(p mgl64.Vec3) bool {
	return p.X() >= 0 && p.Z() >= 0 && p.X() <= a.Width && p.Z() <= a.Depth
}

// PlaceFootprint sizes obj to the ground-plane projection of b. The caller
// runs obj.Update once the object is in a space.
func (a *ArenaData) PlaceFootprint(obj *resolv.Object, b gamemath.AABB) {
	obj.X, obj.Y = a.ToSpace(b.Min.X(), b.Min.Z())
	size := b.Size()
	obj.W = max(size.X()*a.PixelsPerMeter, 1)
	obj.H = max(size.Z()*a.PixelsPerMeter, 1)
}
