package combat

import "testing"

type counter struct{ hits, total int }

func (c *counter) ReceiveDamage(amount int) {
	c.hits++
	c.total += amount
}

func TestHitWindowStartsDisabled(t *testing.T) {
	w := NewHitWindow[string](10)
	if w.State() != Disabled {
		t.Fatalf("initial state = %v", w.State())
	}
	if got := w.Observe([]string{"dummy"}); len(got) != 0 {
		t.Fatalf("disabled window reported %v", got)
	}
}

func TestHitWindowReports(t *testing.T) {
	type step struct {
		op       string // "enable", "disable", "observe"
		contacts []string
		want     int
	}
	cases := []struct {
		name  string
		steps []step
	}{
		{"disabled_reports_nothing", []step{
			{"observe", []string{"a", "b"}, 0},
		}},
		{"one_per_entity_per_interval", []step{
			{"enable", nil, 0},
			{"observe", []string{"a"}, 1},
			{"observe", []string{"a"}, 0},
			{"observe", []string{"a", "b"}, 1},
			{"observe", nil, 0},
			{"observe", []string{"a"}, 0},
		}},
		{"fresh_interval_reports_again", []step{
			{"enable", nil, 0},
			{"observe", []string{"a"}, 1},
			{"disable", nil, 0},
			{"observe", []string{"a"}, 0},
			{"enable", nil, 0},
			{"observe", []string{"a"}, 1},
		}},
		{"overlap_started_while_disabled_counts_on_enable", []step{
			{"observe", []string{"a"}, 0},
			{"enable", nil, 0},
			{"observe", []string{"a"}, 1},
		}},
		{"double_enable_keeps_interval", []step{
			{"enable", nil, 0},
			{"observe", []string{"a"}, 1},
			{"enable", nil, 0},
			{"observe", []string{"a"}, 0},
		}},
		{"duplicates_in_one_frame", []step{
			{"enable", nil, 0},
			{"observe", []string{"a", "a", "b"}, 2},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewHitWindow[string](5)
			for i, s := range c.steps {
				switch s.op {
				case "enable":
					w.Enable()
				case "disable":
					w.Disable()
				case "observe":
					if got := w.Observe(s.contacts); len(got) != s.want {
						t.Fatalf("step %d: got %v, want %d reports", i, got, s.want)
					}
				}
			}
		})
	}
}

func TestStrike(t *testing.T) {
	w := NewHitWindow[int](7)
	targets := map[int]*counter{1: {}, 2: {}}
	resolve := func(k int) (Damageable, bool) {
		c, ok := targets[k]
		return c, ok
	}

	if n := w.Strike([]int{1, 2, 3}, resolve); n != 0 {
		t.Fatalf("disabled strike reported %d", n)
	}
	w.Enable()
	if n := w.Strike([]int{1, 2, 3}, resolve); n != 2 {
		t.Fatalf("strike reported %d, want 2", n)
	}
	w.Strike([]int{1, 2}, resolve)
	if targets[1].hits != 1 || targets[1].total != 7 {
		t.Fatalf("target 1 = %+v", targets[1])
	}
	if w.Intervals() != 1 {
		t.Fatalf("intervals = %d", w.Intervals())
	}
}

func TestDamageFunc(t *testing.T) {
	got := 0
	var d Damageable = DamageFunc(func(a int) { got += a })
	d.ReceiveDamage(3)
	if got != 3 {
		t.Fatalf("got %d", got)
	}
}
