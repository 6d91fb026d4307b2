package schedule

import (
	"math"
	"reflect"
	"testing"

	"github.com/automoto/bonebrawl/components"
	"github.com/yohamta/donburi"
)

func recorder(log *[]string, name string) System {
	return func(w donburi.World) { *log = append(*log, name) }
}

func TestTickRunsPhasesInOrder(t *testing.T) {
	w := donburi.NewWorld()
	var got []string
	s := New(w, 0.02, 5)
	s.AddSystem(Late, "late", recorder(&got, "late"))
	s.AddSystem(Simulate, "sim", recorder(&got, "sim"))
	s.AddSystem(Fixed, "fixed", recorder(&got, "fixed"))
	s.AddSystem(Input, "input", recorder(&got, "input"))

	steps := s.Tick(0.045)
	if steps != 2 {
		t.Fatalf("steps = %d, want 2", steps)
	}
	want := []string{"input", "fixed", "fixed", "sim", "late"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestAccumulatorCarriesRemainder(t *testing.T) {
	w := donburi.NewWorld()
	s := New(w, 0.02, 5)
	total := 0
	for i := 0; i < 60; i++ {
		total += s.Tick(1.0 / 60.0)
	}
	// one second at 50Hz, allowing for float drift on the last step
	if total < 49 || total > 50 {
		t.Fatalf("fixed steps in one second = %d, want ~50", total)
	}
}

func TestFixedStepsAreCapped(t *testing.T) {
	w := donburi.NewWorld()
	s := New(w, 0.02, 3)
	if steps := s.Tick(1.0); steps != 3 {
		t.Fatalf("steps = %d, want 3", steps)
	}
	if steps := s.Tick(0.01); steps != 0 {
		t.Fatalf("backlog carried over: %d steps", steps)
	}
}

func TestClockDeltaPerPhase(t *testing.T) {
	w := donburi.NewWorld()
	s := New(w, 0.02, 5)
	var fixedDelta, simDelta, now float64
	s.AddSystem(Fixed, "fixed", func(w donburi.World) {
		fixedDelta = components.ClockOf(w).Delta
	})
	s.AddSystem(Simulate, "sim", func(w donburi.World) {
		c := components.ClockOf(w)
		simDelta = c.Delta
		now = c.Now
	})

	s.Tick(0.025)
	s.Tick(0.025)
	if fixedDelta != 0.02 {
		t.Fatalf("fixed delta = %v", fixedDelta)
	}
	if simDelta != 0.025 {
		t.Fatalf("simulate delta = %v", simDelta)
	}
	if math.Abs(now-0.05) > 1e-12 {
		t.Fatalf("now = %v, want 0.05", now)
	}
	c := components.ClockOf(w)
	if c.Frame != 2 || c.FixedSteps != 2 {
		t.Fatalf("clock = %+v", *c)
	}
}

func TestDisable(t *testing.T) {
	w := donburi.NewWorld()
	var got []string
	s := New(w, 0.02, 5)
	s.AddSystem(Simulate, "a", recorder(&got, "a"))
	s.AddSystem(Simulate, "b", recorder(&got, "b"))

	if !s.Disable("a") {
		t.Fatal("Disable(a) = false")
	}
	if s.Disable("missing") {
		t.Fatal("Disable(missing) = true")
	}
	s.Tick(0.01)
	if !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("ran %v", got)
	}
	if names := s.Names(Simulate); !reflect.DeepEqual(names, []string{"b"}) {
		t.Fatalf("names = %v", names)
	}
}
