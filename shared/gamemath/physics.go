package gamemath

import "math"

// ReferenceRate is the frame rate smoothing factors are tuned against.
const ReferenceRate = 60.0

// BlendFactor converts a per-reference-frame smoothing factor into the blend
// amount for a step of dt seconds: 1 - (1 - s)^(dt * rate).
// s <= 0 snaps (returns 1), s >= 1 never moves (returns 0).
func BlendFactor(smoothing, dt, rate float64) float64 {
	if smoothing <= 0 {
		return 1
	}
	if smoothing >= 1 || dt <= 0 {
		return 0
	}
	return 1 - math.Pow(1-smoothing, dt*rate)
}

// ExpBlend returns 1 - e^(-responsiveness*dt). Larger responsiveness is
// snappier; the result is independent of how dt is sliced.
func ExpBlend(responsiveness, dt float64) float64 {
	if responsiveness <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-responsiveness*dt)
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp linearly interpolates from a to b by t (unclamped).
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// DeltaAngle returns the shortest signed difference b - a in degrees,
// in the range (-180, 180].
func DeltaAngle(a, b float64) float64 {
	d := math.Mod(b-a, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

// LerpAngle interpolates between two angles in degrees along the shortest
// arc. t is clamped to [0, 1].
func LerpAngle(a, b, t float64) float64 {
	return a + DeltaAngle(a, b)*Clamp01(t)
}
