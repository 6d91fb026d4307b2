package config

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// BindingConfig controls how colliders are attached to the nearest joint of
// their rig when the rig is spawned.
type BindingConfig struct {
	ExcludeNameContains []string `yaml:"exclude_name_contains"`
	LayerMask           uint32   `yaml:"layer_mask"`
	OnlyTriggers        bool     `yaml:"only_triggers"`
	ComputeOffsets      bool     `yaml:"compute_offsets"`
	ComputeOnStart      bool     `yaml:"compute_on_start"` // offset from the first ticked pose when not computed at bind
	Overwrite           bool     `yaml:"overwrite"`
	AttachAsChild       bool     `yaml:"attach_as_child"`
	LogSummary          bool     `yaml:"log_summary"`
}

// FollowConfig holds defaults for attachments that follow a joint.
type FollowConfig struct {
	Timing            string  `yaml:"timing"`             // late, fixed or update
	PositionSmoothing float64 `yaml:"position_smoothing"` // 0 snaps, towards 1 lags
	RotationSmoothing float64 `yaml:"rotation_smoothing"`
}

// LocomotionConfig contains character movement values, metres and seconds.
type LocomotionConfig struct {
	MoveSpeed   float64 `yaml:"move_speed"`
	RotateSpeed float64 `yaml:"rotate_speed"`
	DeadZone    float64 `yaml:"dead_zone"`
}

// DashConfig contains the dash burst values.
type DashConfig struct {
	Speed    float64 `yaml:"speed"`
	Duration float64 `yaml:"duration"`
	Cooldown float64 `yaml:"cooldown"`
	Curve    string  `yaml:"curve"` // gween ease name, e.g. "inoutquad"
}

// CameraConfig contains orbit camera behaviour.
type CameraConfig struct {
	FocusOffset            mgl64.Vec3 `yaml:"focus_offset"`
	Distance               float64    `yaml:"distance"`
	MinDistance            float64    `yaml:"min_distance"`
	MaxDistance            float64    `yaml:"max_distance"`
	ZoomStep               float64    `yaml:"zoom_step"` // fraction of the zoom range per wheel notch
	SensitivityX           float64    `yaml:"sensitivity_x"`
	SensitivityY           float64    `yaml:"sensitivity_y"`
	PitchMin               float64    `yaml:"pitch_min"` // degrees
	PitchMax               float64    `yaml:"pitch_max"`
	RotationResponsiveness float64    `yaml:"rotation_responsiveness"`
	FollowLerp             float64    `yaml:"follow_lerp"`
	StartYaw               float64    `yaml:"start_yaw"`
	StartPitch             float64    `yaml:"start_pitch"`
}

// CombatConfig contains hit volume and damage values.
type CombatConfig struct {
	HitDamage         int     `yaml:"hit_damage"`
	Knockback         float64 `yaml:"knockback"` // metres per second added on hit
	DummyHealth       int     `yaml:"dummy_health"`
	PlayerHealth      int     `yaml:"player_health"`
	RespawnDelay      float64 `yaml:"respawn_delay"` // seconds
	BodyDamping       float64 `yaml:"body_damping"`
	HitFlashDuration  float64 `yaml:"hit_flash_duration"`
	VerticalTolerance float64 `yaml:"vertical_tolerance"`
}

// ScheduleConfig controls the frame phases.
type ScheduleConfig struct {
	FixedDelta   float64 `yaml:"fixed_delta"`
	MaxFixedStep int     `yaml:"max_fixed_steps"`
}

// ArenaConfig maps arena map units onto world metres.
type ArenaConfig struct {
	PixelsPerMeter float64 `yaml:"pixels_per_meter"`
	CellSize       int     `yaml:"cell_size"` // broadphase cell, map pixels
	DefaultWidth   int     `yaml:"default_width"`
	DefaultHeight  int     `yaml:"default_height"`
}

// DebugConfig contains debug view and command-line toggles.
type DebugConfig struct {
	Overlay    bool `yaml:"overlay"`
	ShowJoints bool `yaml:"show_joints"`
	Watch      bool `yaml:"watch"`
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Binding BindingConfig
var Follow FollowConfig
var Locomotion LocomotionConfig
var Dash DashConfig
var Camera CameraConfig
var Combat CombatConfig
var Schedule ScheduleConfig
var Arena ArenaConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Gray         = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	Background   = color.RGBA{R: 24, G: 26, B: 32, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "bonebrawl",
	}

	Binding = BindingConfig{
		ExcludeNameContains: []string{"CapsuleRoot", "MainCapsule", "BodyCollider"},
		LayerMask:           ^uint32(0),
		ComputeOffsets:      true,
		Overwrite:           true,
		LogSummary:          true,
	}

	Follow = FollowConfig{
		Timing: "late",
	}

	Locomotion = LocomotionConfig{
		MoveSpeed:   2.0,
		RotateSpeed: 10.0,
		DeadZone:    0.05,
	}

	Dash = DashConfig{
		Speed:    5.0,
		Duration: 0.5,
		Cooldown: 0.5,
		Curve:    "inoutquad",
	}

	Camera = CameraConfig{
		FocusOffset:            mgl64.Vec3{0, 1.5, 0},
		Distance:               5.0,
		MinDistance:            2.0,
		MaxDistance:            8.0,
		ZoomStep:               0.1,
		SensitivityX:           0.18,
		SensitivityY:           0.14,
		PitchMin:               -30,
		PitchMax:               60,
		RotationResponsiveness: 20,
		FollowLerp:             18,
		StartPitch:             15,
	}

	Combat = CombatConfig{
		HitDamage:         10,
		Knockback:         3.0,
		DummyHealth:       50,
		PlayerHealth:      100,
		RespawnDelay:      2.0,
		BodyDamping:       6.0,
		HitFlashDuration:  0.15,
		VerticalTolerance: 0.05,
	}

	Schedule = ScheduleConfig{
		FixedDelta:   1.0 / 50.0,
		MaxFixedStep: 5,
	}

	Arena = ArenaConfig{
		PixelsPerMeter: 32,
		CellSize:       16,
		DefaultWidth:   640,
		DefaultHeight:  640,
	}
}
