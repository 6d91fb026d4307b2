// Package input polls ebitengine devices into the input singleton.
package input

import (
	"strings"

	"github.com/automoto/bonebrawl/components"
	cfg "github.com/automoto/bonebrawl/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

var (
	lastCursor    [2]int
	cursorTracked bool
	cursorFree    = true
)

// Update polls raw input and updates the input singleton.
// Must run BEFORE any system that reads input.
func Update(w donburi.World) {
	in := getOrCreateInput(w)
	in.Advance()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range Settings.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				in.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					in.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	in.Move = DigitalMove(in)

	// Analog sticks override the digital direction when deflected
	stickMove, stickLook, gpID, ok := readSticks(gamepadIDs)
	if ok {
		gamepadUsed = true
		activeGamepadID = gpID
		if stickMove.LenSqr() > 0 {
			in.Move = stickMove
		}
		in.Look = stickLook.Mul(Settings.StickLookSpeed / float64(ebiten.TPS()))
	}

	x, y := ebiten.CursorPosition()
	if cursorTracked {
		delta := mgl64.Vec2{float64(x - lastCursor[0]), -float64(y - lastCursor[1])}
		if !cursorFree {
			in.Look = in.Look.Add(delta)
		}
	}
	lastCursor = [2]int{x, y}
	cursorTracked = true

	_, wheel := ebiten.Wheel()
	in.Zoom = wheel

	if gamepadUsed {
		in.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		in.LastInputMethod = components.InputKeyboard
	}
}

// DigitalMove folds the directional actions into a move vector of length at
// most 1.
func DigitalMove(in *components.InputData) mgl64.Vec2 {
	var v mgl64.Vec2
	if in.Pressed(cfg.ActionMoveForward) {
		v[1]++
	}
	if in.Pressed(cfg.ActionMoveBack) {
		v[1]--
	}
	if in.Pressed(cfg.ActionMoveRight) {
		v[0]++
	}
	if in.Pressed(cfg.ActionMoveLeft) {
		v[0]--
	}
	if l := v.Len(); l > 1 {
		v = v.Mul(1 / l)
	}
	return v
}

// SetCursorFree releases or captures the pointer. While captured, pointer
// motion steers the camera.
func SetCursorFree(free bool) {
	if free == cursorFree {
		return
	}
	cursorFree = free
	if free {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
	// Re-base so the mode switch does not read as a jump
	cursorTracked = false
}

// readSticks reads both sticks of the first deflected gamepad. The left
// stick maps up to forward; the right stick maps up to look up.
func readSticks(gamepads []ebiten.GamepadID) (move, look mgl64.Vec2, id ebiten.GamepadID, ok bool) {
	deadzone := Settings.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		lx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		rx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical)

		m := mgl64.Vec2{lx, -ly}
		l := mgl64.Vec2{rx, -ry}
		if m.Len() < deadzone {
			m = mgl64.Vec2{}
		} else if m.Len() > 1 {
			m = m.Normalize()
		}
		if l.Len() < deadzone {
			l = mgl64.Vec2{}
		}
		if m.LenSqr() == 0 && l.LenSqr() == 0 {
			continue
		}
		return m, l, gpID, true
	}
	return move, look, id, false
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
	}
	return components.Input.Get(entry)
}
