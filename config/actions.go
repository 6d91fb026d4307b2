package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionDash
	ActionAttack
	ActionFreeCursor
	ActionToggleDebug
	ActionRebind
	ActionRecalculateOffsets
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:               "none",
	ActionMoveForward:        "move_forward",
	ActionMoveBack:           "move_back",
	ActionMoveLeft:           "move_left",
	ActionMoveRight:          "move_right",
	ActionDash:               "dash",
	ActionAttack:             "attack",
	ActionFreeCursor:         "free_cursor",
	ActionToggleDebug:        "toggle_debug",
	ActionRebind:             "rebind",
	ActionRecalculateOffsets: "recalculate_offsets",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
