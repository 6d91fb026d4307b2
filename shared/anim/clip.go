// Package anim plays keyframed joint rotations and fires timeline events.
// It is deliberately small: one clip at a time, no blending.
package anim

import (
	"sort"

	"github.com/automoto/bonebrawl/shared/gamemath"
	"github.com/automoto/bonebrawl/shared/transform"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

// Key is a local joint rotation at a point in the clip. Ease shapes the
// interpolation from the previous key into this one.
type Key struct {
	Time     float64
	Rotation mgl64.Quat
	Ease     ease.TweenFunc
}

type Track struct {
	Joint string
	Keys  []Key
}

// Event is a named marker on the clip timeline.
type Event struct {
	Time float64
	Name string
}

type Clip struct {
	Name     string
	Duration float64
	Loop     bool
	Tracks   []Track
	Events   []Event
}

// Normalize sorts keys and events by time. Loaders call it once.
func (c *Clip) Normalize() {
	for i := range c.Tracks {
		keys := c.Tracks[i].Keys
		sort.SliceStable(keys, func(a, b int) bool { return keys[a].Time < keys[b].Time })
	}
	sort.SliceStable(c.Events, func(a, b int) bool { return c.Events[a].Time < c.Events[b].Time })
}

// Sample returns the track's rotation at time t.
func (tr Track) Sample(t float64) (mgl64.Quat, bool) {
	n := len(tr.Keys)
	if n == 0 {
		return mgl64.QuatIdent(), false
	}
	if t <= tr.Keys[0].Time {
		return tr.Keys[0].Rotation, true
	}
	if t >= tr.Keys[n-1].Time {
		return tr.Keys[n-1].Rotation, true
	}
	i := sort.Search(n, func(i int) bool { return tr.Keys[i].Time > t })
	k0, k1 := tr.Keys[i-1], tr.Keys[i]
	span := k1.Time - k0.Time
	if span <= 0 {
		return k1.Rotation, true
	}
	u := (t - k0.Time) / span
	if k1.Ease != nil {
		u = float64(k1.Ease(float32(u), 0, 1, 1))
	}
	return gamemath.SlerpClamped(k0.Rotation, k1.Rotation, u), true
}

// Apply poses every tracked joint that find can resolve.
func (c *Clip) Apply(t float64, find func(string) (*transform.Node, bool)) {
	for _, tr := range c.Tracks {
		node, ok := find(tr.Joint)
		if !ok {
			continue
		}
		if q, ok := tr.Sample(t); ok {
			node.SetLocalRotation(q)
		}
	}
}

// collect appends events with from < T <= to, or T == from when inclusive.
func (c *Clip) collect(dst []string, from, to float64, inclusive bool) []string {
	for _, e := range c.Events {
		if e.Time > to {
			break
		}
		if e.Time > from || (inclusive && e.Time == from) {
			dst = append(dst, e.Name)
		}
	}
	return dst
}
