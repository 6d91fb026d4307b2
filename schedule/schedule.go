// Package schedule runs systems in explicit, ordered frame phases:
// Input, then zero or more Fixed steps, then Simulate, then Late.
//
// Fixed steps are driven by an accumulator and capped per frame so a long
// frame cannot spiral. The world Clock component is created on demand and
// kept current for the phase that is running.
package schedule

import (
	"fmt"
	"log"

	"github.com/automoto/bonebrawl/archetypes"
	"github.com/automoto/bonebrawl/components"
	"github.com/yohamta/donburi"
)

type Phase int

const (
	Input Phase = iota
	Fixed
	Simulate
	Late
	phaseCount
)

func (p Phase) String() string {
	switch p {
	case Input:
		return "input"
	case Fixed:
		return "fixed"
	case Simulate:
		return "simulate"
	case Late:
		return "late"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// System is one unit of frame work.
type System func(w donburi.World)

type entry struct {
	name     string
	run      System
	disabled bool
}

type Scheduler struct {
	world      donburi.World
	phases     [phaseCount][]*entry
	fixedDelta float64
	maxSteps   int
	acc        float64
	clock      *donburi.Entry
}

// New returns a scheduler stepping fixed systems every fixedDelta seconds,
// at most maxSteps times per frame.
func New(w donburi.World, fixedDelta float64, maxSteps int) *Scheduler {
	if maxSteps < 1 {
		maxSteps = 1
	}
	clk, ok := components.Clock.First(w)
	if !ok {
		clk = archetypes.Clock.Spawn(w)
	}
	c := components.Clock.Get(clk)
	c.FixedDelta = fixedDelta
	return &Scheduler{
		world:      w,
		fixedDelta: fixedDelta,
		maxSteps:   maxSteps,
		clock:      clk,
	}
}

// AddSystem appends sys to phase p. Systems in a phase run in insertion order.
func (s *Scheduler) AddSystem(p Phase, name string, sys System) *Scheduler {
	s.phases[p] = append(s.phases[p], &entry{name: name, run: sys})
	return s
}

// Disable stops the named system from running. It reports whether a system
// with that name was found.
func (s *Scheduler) Disable(name string) bool {
	found := false
	for p := range s.phases {
		for _, e := range s.phases[p] {
			if e.name == name {
				if !e.disabled {
					log.Printf("[Schedule] disabling %s (%s)", name, Phase(p))
				}
				e.disabled = true
				found = true
			}
		}
	}
	return found
}

// Names lists the enabled systems of phase p in run order.
func (s *Scheduler) Names(p Phase) []string {
	out := make([]string, 0, len(s.phases[p]))
	for _, e := range s.phases[p] {
		if !e.disabled {
			out = append(out, e.name)
		}
	}
	return out
}

// SetFixedDelta changes the fixed step length; the accumulator is kept.
func (s *Scheduler) SetFixedDelta(dt float64) {
	if dt <= 0 {
		return
	}
	s.fixedDelta = dt
	components.Clock.Get(s.clock).FixedDelta = dt
}

// Tick runs one frame of dt seconds and returns the number of fixed steps taken.
func (s *Scheduler) Tick(dt float64) int {
	if dt < 0 {
		dt = 0
	}
	c := components.Clock.Get(s.clock)
	c.Frame++
	c.Now += dt
	c.FrameDelta = dt
	c.Delta = dt

	s.run(Input)

	s.acc += dt
	steps := 0
	for s.acc >= s.fixedDelta && steps < s.maxSteps {
		c.Delta = s.fixedDelta
		s.run(Fixed)
		s.acc -= s.fixedDelta
		c.FixedTime += s.fixedDelta
		c.FixedSteps++
		steps++
	}
	if steps == s.maxSteps && s.acc >= s.fixedDelta {
		// Drop the backlog rather than carry it into the next frame.
		s.acc = 0
	}

	c.Delta = dt
	s.run(Simulate)
	s.run(Late)
	return steps
}

func (s *Scheduler) run(p Phase) {
	for _, e := range s.phases[p] {
		if e.disabled {
			continue
		}
		e.run(s.world)
	}
}
