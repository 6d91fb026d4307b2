// Package combat holds the engine-free pieces of melee: the hit window state
// machine and the damage-receiving capability.
package combat

import "fmt"

// Damageable is implemented by anything that can take a hit.
type Damageable interface {
	ReceiveDamage(amount int)
}

// DamageFunc adapts a function to Damageable.
type DamageFunc func(amount int)

func (f DamageFunc) ReceiveDamage(amount int) { f(amount) }

type WindowState int

const (
	Disabled WindowState = iota
	Active
)

func (s WindowState) String() string {
	switch s {
	case Disabled:
		return "Disabled"
	case Active:
		return "Active"
	}
	return fmt.Sprintf("WindowState(%d)", int(s))
}

// HitWindow gates when a hit volume may report damage. It is opened and
// closed by animation events, never by a timer. Each target is reported at
// most once per Active interval; reopening starts a fresh interval.
type HitWindow[K comparable] struct {
	Damage int

	state  WindowState
	struck map[K]struct{}
	opened int
}

func NewHitWindow[K comparable](damage int) *HitWindow[K] {
	return &HitWindow[K]{Damage: damage, struck: make(map[K]struct{})}
}

func (w *HitWindow[K]) State() WindowState { return w.state }

func (w *HitWindow[K]) Active() bool { return w.state == Active }

// Intervals returns how many times the window has been opened.
func (w *HitWindow[K]) Intervals() int { return w.opened }

// Enable opens a new Active interval. Enabling an open window is a no-op.
func (w *HitWindow[K]) Enable() {
	if w.state == Active {
		return
	}
	w.state = Active
	w.opened++
	clear(w.struck)
}

// Disable closes the window.
func (w *HitWindow[K]) Disable() {
	w.state = Disabled
}

// Observe takes the set of targets currently overlapping the volume and
// returns those that begin a hit in this interval, in the order given.
// While Disabled it returns nothing and remembers nothing.
func (w *HitWindow[K]) Observe(contacts []K) []K {
	if w.state != Active {
		return nil
	}
	var begun []K
	for _, k := range contacts {
		if _, seen := w.struck[k]; seen {
			continue
		}
		w.struck[k] = struct{}{}
		begun = append(begun, k)
	}
	return begun
}

// Strike reports damage to every target that begins a hit and returns how
// many reports were made.
func (w *HitWindow[K]) Strike(contacts []K, resolve func(K) (Damageable, bool)) int {
	n := 0
	for _, k := range w.Observe(contacts) {
		d, ok := resolve(k)
		if !ok || d == nil {
			continue
		}
		d.ReceiveDamage(w.Damage)
		n++
	}
	return n
}
