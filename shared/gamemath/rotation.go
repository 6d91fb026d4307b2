package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

// Euler builds a rotation from angles in degrees. Roll is applied first,
// then pitch about X, then yaw about Y. Positive pitch tilts the forward
// axis downward, positive yaw turns it toward +X.
func Euler(pitch, yaw, roll float64) mgl64.Quat {
	qy := mgl64.QuatRotate(mgl64.DegToRad(yaw), Up)
	qx := mgl64.QuatRotate(mgl64.DegToRad(pitch), Right)
	qz := mgl64.QuatRotate(mgl64.DegToRad(roll), Forward)
	return qy.Mul(qx).Mul(qz).Normalize()
}

// EulerVec is Euler with the angles packed as (pitch, yaw, roll).
func EulerVec(v mgl64.Vec3) mgl64.Quat {
	return Euler(v[0], v[1], v[2])
}

// ForwardOf returns the rotated +Z axis.
func ForwardOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(Forward)
}

// RightOf returns the rotated +X axis.
func RightOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(Right)
}

// ProjectOnPlane removes the component of v along the plane normal n.
func ProjectOnPlane(v, n mgl64.Vec3) mgl64.Vec3 {
	lenSqr := n.LenSqr()
	if lenSqr < epsilon {
		return v
	}
	return v.Sub(n.Mul(v.Dot(n) / lenSqr))
}

// NormalizeSafe normalizes v, returning the zero vector when v is too short.
func NormalizeSafe(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < epsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// LookRotation returns the rotation whose +Z axis points along forward and
// whose +Y axis is as close to up as possible. A zero forward yields the
// identity; a forward parallel to up falls back to +X as the right axis.
func LookRotation(forward, up mgl64.Vec3) mgl64.Quat {
	f := NormalizeSafe(forward)
	if f.LenSqr() == 0 {
		return mgl64.QuatIdent()
	}
	r := NormalizeSafe(up.Cross(f))
	if r.LenSqr() == 0 {
		r = Right
	}
	u := f.Cross(r)
	m := mgl64.Mat3FromCols(r, u, f)
	return mgl64.Mat4ToQuat(m.Mat4()).Normalize()
}

// SlerpClamped spherically interpolates along the shortest arc with t
// clamped to [0, 1].
func SlerpClamped(a, b mgl64.Quat, t float64) mgl64.Quat {
	t = Clamp01(t)
	if t == 0 {
		return a
	}
	if t == 1 {
		return b
	}
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, t).Normalize()
}

// LerpVec linearly interpolates two vectors with t clamped to [0, 1].
func LerpVec(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = Clamp01(t)
	if t == 1 {
		return b
	}
	return a.Add(b.Sub(a).Mul(t))
}

// AngleBetween returns the angle in radians between two rotations.
func AngleBetween(a, b mgl64.Quat) float64 {
	d := math.Abs(a.Normalize().Dot(b.Normalize()))
	if d > 1 {
		d = 1
	}
	return 2 * math.Acos(d)
}

// YawOf returns the heading in degrees of the rotation's forward axis on the
// horizontal plane.
func YawOf(q mgl64.Quat) float64 {
	f := ForwardOf(q)
	return mgl64.RadToDeg(math.Atan2(f[0], f[2]))
}
