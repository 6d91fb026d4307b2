package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB is an axis-aligned box in world space.
type AABB struct {
	Min, Max mgl64.Vec3
}

// EmptyAABB returns a box that contains nothing and grows with Extend.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

// Empty reports whether the box has no extent on some axis.
func (b AABB) Empty() bool {
	return b.Min.X() > b.Max.X() || b.Min.Y() > b.Max.Y() || b.Min.Z() > b.Max.Z()
}

// Extend grows b to contain p.
func (b AABB) Extend(p mgl64.Vec3) AABB {
	for i := 0; i < 3; i++ {
		b.Min[i] = math.Min(b.Min[i], p[i])
		b.Max[i] = math.Max(b.Max[i], p[i])
	}
	return b
}

// Grow pads every side by r.
func (b AABB) Grow(r float64) AABB {
	pad := mgl64.Vec3{r, r, r}
	return AABB{Min: b.Min.Sub(pad), Max: b.Max.Add(pad)}
}

func (b AABB) Center() mgl64.Vec3 { return b.Min.Add(b.Max).Mul(0.5) }
func (b AABB) Size() mgl64.Vec3   { return b.Max.Sub(b.Min) }

// Overlaps reports whether the boxes intersect; touching faces count.
func (b AABB) Overlaps(o AABB) bool {
	if b.Empty() || o.Empty() {
		return false
	}
	for i := 0; i < 3; i++ {
		if b.Max[i] < o.Min[i] || o.Max[i] < b.Min[i] {
			return false
		}
	}
	return true
}

// BoundsOfBox returns the world bounds of a box with the given local centre
// and full size placed by pose.
func BoundsOfBox(pose Pose, center, size mgl64.Vec3) AABB {
	half := size.Mul(0.5)
	b := EmptyAABB()
	for i := 0; i < 8; i++ {
		corner := mgl64.Vec3{half.X(), half.Y(), half.Z()}
		if i&1 != 0 {
			corner[0] = -corner[0]
		}
		if i&2 != 0 {
			corner[1] = -corner[1]
		}
		if i&4 != 0 {
			corner[2] = -corner[2]
		}
		b = b.Extend(pose.TransformPoint(center.Add(corner)))
	}
	return b
}

// BoundsOfSphere returns the world bounds of a sphere placed by pose. The
// radius is scaled by the largest axis of the pose scale.
func BoundsOfSphere(pose Pose, center mgl64.Vec3, radius float64) AABB {
	c := pose.TransformPoint(center)
	return AABB{Min: c, Max: c}.Grow(radius * MaxAbs(pose.Scale))
}

// BoundsOfCapsule returns the world bounds of a capsule aligned with the
// local Y axis. height is the full tip-to-tip length.
func BoundsOfCapsule(pose Pose, center mgl64.Vec3, radius, height float64) AABB {
	seg := math.Max(height*0.5-radius, 0)
	a := pose.TransformPoint(center.Add(mgl64.Vec3{0, seg, 0}))
	b := pose.TransformPoint(center.Sub(mgl64.Vec3{0, seg, 0}))
	return AABB{Min: a, Max: a}.Extend(b).Grow(radius * MaxAbs(pose.Scale))
}

// MaxAbs returns the largest absolute component of v.
func MaxAbs(v mgl64.Vec3) float64 {
	return math.Max(math.Abs(v.X()), math.Max(math.Abs(v.Y()), math.Abs(v.Z())))
}
