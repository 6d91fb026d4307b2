package input

import (
	cfg "github.com/automoto/bonebrawl/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding lists the keys and buttons that trigger one action.
type Binding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Config holds all input mappings
type Config struct {
	Bindings map[cfg.ActionID]Binding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// StickLookSpeed converts right stick deflection into pointer pixels per second
	StickLookSpeed float64
}

// Settings is the global input configuration
var Settings Config

func init() {
	Settings = Config{
		AnalogDeadzone: 0.2,
		StickLookSpeed: 600,
		Bindings: map[cfg.ActionID]Binding{
			cfg.ActionMoveForward: {
				Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			cfg.ActionMoveBack: {
				Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			cfg.ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			cfg.ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			cfg.ActionDash: {
				Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeySpace},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			cfg.ActionAttack: {
				Keys:         []ebiten.Key{ebiten.KeyJ},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			cfg.ActionFreeCursor: {
				Keys: []ebiten.Key{ebiten.KeyAltLeft, ebiten.KeyAltRight},
			},
			cfg.ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF1},
				// Back / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			cfg.ActionRebind: {
				Keys: []ebiten.Key{ebiten.KeyF5},
			},
			cfg.ActionRecalculateOffsets: {
				Keys: []ebiten.Key{ebiten.KeyF6},
			},
		},
	}
}
