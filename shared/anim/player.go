package anim

import (
	"math"

	"github.com/automoto/bonebrawl/shared/transform"
)

// maxWraps bounds how many loop wraps one Advance walks through.
const maxWraps = 8

type Player struct {
	clip     *Clip
	time     float64
	fresh    bool
	finished bool
	loops    int
}

// Play starts c from the beginning. Replaying the current clip restarts it.
func (p *Player) Play(c *Clip) {
	p.clip = c
	p.time = 0
	p.fresh = true
	p.finished = false
	p.loops = 0
}

func (p *Player) Clip() *Clip { return p.clip }

// Playing reports whether the current clip is called name.
func (p *Player) Playing(name string) bool {
	return p.clip != nil && p.clip.Name == name
}

func (p *Player) Time() float64  { return p.time }
func (p *Player) Finished() bool { return p.finished }
func (p *Player) Loops() int     { return p.loops }

// Advance moves the playhead by dt and returns the names of events crossed,
// in timeline order. Events at time zero fire on the first advance after
// Play and on every loop wrap.
func (p *Player) Advance(dt float64) []string {
	c := p.clip
	if c == nil || p.finished || dt < 0 {
		return nil
	}
	var fired []string
	from, inclusive := p.time, p.fresh
	p.fresh = false
	to := p.time + dt

	if c.Duration <= 0 {
		fired = c.collect(fired, 0, math.Inf(1), true)
		p.finished = !c.Loop
		return fired
	}

	for wraps := 0; ; wraps++ {
		if to <= c.Duration {
			fired = c.collect(fired, from, to, inclusive)
			p.time = to
			break
		}
		fired = c.collect(fired, from, c.Duration, inclusive)
		if !c.Loop {
			p.time = c.Duration
			break
		}
		to -= c.Duration
		from, inclusive = 0, true
		p.loops++
		if wraps >= maxWraps {
			p.time = math.Mod(to, c.Duration)
			break
		}
	}
	if !c.Loop && p.time >= c.Duration {
		p.finished = true
	}
	return fired
}

// Apply samples the current clip onto the skeleton.
func (p *Player) Apply(find func(string) (*transform.Node, bool)) {
	if p.clip == nil {
		return
	}
	p.clip.Apply(p.time, find)
}
