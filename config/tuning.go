package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tuning points at the global config values so a YAML document only
// overwrites the keys it names.
type tuning struct {
	Binding    *BindingConfig    `yaml:"binding"`
	Follow     *FollowConfig     `yaml:"follow"`
	Locomotion *LocomotionConfig `yaml:"locomotion"`
	Dash       *DashConfig       `yaml:"dash"`
	Camera     *CameraConfig     `yaml:"camera"`
	Combat     *CombatConfig     `yaml:"combat"`
	Schedule   *ScheduleConfig   `yaml:"schedule"`
	Arena      *ArenaConfig      `yaml:"arena"`
	Debug      *DebugConfig      `yaml:"debug"`
}

func globals() tuning {
	return tuning{
		Binding:    &Binding,
		Follow:     &Follow,
		Locomotion: &Locomotion,
		Dash:       &Dash,
		Camera:     &Camera,
		Combat:     &Combat,
		Schedule:   &Schedule,
		Arena:      &Arena,
		Debug:      &Debug,
	}
}

// ApplyTuning overlays a YAML tuning document onto the global configuration.
// The document is decoded into a copy first so a malformed file leaves the
// current values untouched.
func ApplyTuning(data []byte) error {
	b, f, l, d, c, cb, s, a, dbg := Binding, Follow, Locomotion, Dash, Camera, Combat, Schedule, Arena, Debug
	staged := tuning{&b, &f, &l, &d, &c, &cb, &s, &a, &dbg}
	if err := yaml.Unmarshal(data, &staged); err != nil {
		return fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if err := staged.validate(); err != nil {
		return err
	}

	g := globals()
	*g.Binding, *g.Follow, *g.Locomotion, *g.Dash = b, f, l, d
	*g.Camera, *g.Combat, *g.Schedule, *g.Arena, *g.Debug = c, cb, s, a, dbg
	return nil
}

// LoadTuning reads filename and applies it with ApplyTuning.
func LoadTuning(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("config: load %s: %w", filename, err)
	}
	if err := ApplyTuning(data); err != nil {
		return fmt.Errorf("config: %s: %w", filename, err)
	}
	return nil
}

func (t tuning) validate() error {
	if t.Camera.MinDistance > t.Camera.MaxDistance {
		return fmt.Errorf("config: camera min_distance %.2f exceeds max_distance %.2f", t.Camera.MinDistance, t.Camera.MaxDistance)
	}
	if t.Camera.PitchMin > t.Camera.PitchMax {
		return fmt.Errorf("config: camera pitch_min %.1f exceeds pitch_max %.1f", t.Camera.PitchMin, t.Camera.PitchMax)
	}
	if t.Dash.Duration < 0 || t.Dash.Cooldown < 0 {
		return fmt.Errorf("config: dash duration and cooldown must not be negative")
	}
	if t.Schedule.FixedDelta <= 0 {
		return fmt.Errorf("config: schedule fixed_delta must be positive")
	}
	if t.Arena.PixelsPerMeter <= 0 {
		return fmt.Errorf("config: arena pixels_per_meter must be positive")
	}
	return nil
}
