package components

import "github.com/yohamta/donburi"

// ClockData is the frame clock shared by every system. Delta holds the step
// of the phase currently running: FixedDelta during fixed steps, the frame
// delta otherwise.
type ClockData struct {
	Now        float64 // seconds since start, advanced once per frame
	Delta      float64
	FrameDelta float64
	FixedDelta float64
	FixedTime  float64 // seconds simulated by fixed steps
	Frame      int
	FixedSteps int
}

var Clock = donburi.NewComponentType[ClockData]()

// ClockOf returns the world clock, or a zero clock when none was created.
func ClockOf(w donburi.World) *ClockData {
	if e, ok := Clock.First(w); ok {
		return Clock.Get(e)
	}
	return &ClockData{}
}
