package factory

import (
	"log"

	cfg "github.com/automoto/bonebrawl/config"
	"github.com/automoto/bonebrawl/shared/camera"
	"github.com/automoto/bonebrawl/shared/locomotion"
)

// LocomotionConfig builds controller tuning from the global config.
func LocomotionConfig() locomotion.Config {
	return locomotion.Config{
		MoveSpeed:   cfg.Locomotion.MoveSpeed,
		RotateSpeed: cfg.Locomotion.RotateSpeed,
		Deadzone:    cfg.Locomotion.DeadZone,
	}
}

// DashConfig builds dash tuning from the global config. An unknown curve
// name falls back to the default curve.
func DashConfig() locomotion.DashConfig {
	curve, err := locomotion.CurveByName(cfg.Dash.Curve)
	if err != nil {
		log.Printf("Warning: %v, using default dash curve", err)
		curve = locomotion.DefaultCurve
	}
	return locomotion.DashConfig{
		Speed:    cfg.Dash.Speed,
		Duration: cfg.Dash.Duration,
		Cooldown: cfg.Dash.Cooldown,
		Curve:    curve,
	}
}

// CameraConfig builds the rig configuration from the global camera config.
func CameraConfig() camera.Config {
	return camera.Config{
		FocusOffset:            cfg.Camera.FocusOffset,
		Distance:               cfg.Camera.Distance,
		MinDistance:            cfg.Camera.MinDistance,
		MaxDistance:            cfg.Camera.MaxDistance,
		ZoomStep:               cfg.Camera.ZoomStep,
		SensX:                  cfg.Camera.SensitivityX,
		SensY:                  cfg.Camera.SensitivityY,
		PitchMin:               cfg.Camera.PitchMin,
		PitchMax:               cfg.Camera.PitchMax,
		RotationResponsiveness: cfg.Camera.RotationResponsiveness,
		FollowLerp:             cfg.Camera.FollowLerp,
	}
}
