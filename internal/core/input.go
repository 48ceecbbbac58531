package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the engine to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionP1Up           // Up arrow - Player 1 paddle up
	ActionP1Down         // Down arrow - Player 1 paddle down
	ActionP2Up           // W - Player 2 paddle up
	ActionP2Down         // S - Player 2 paddle down
	ActionPause          // Space - pause/resume
	ActionConfirm        // Enter or click on the Play button
	ActionBack           // Escape - leave the match for the menu
	ActionQuit           // Q, Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionP1Up:
		return "P1Up"
	case ActionP1Down:
		return "P1Down"
	case ActionP2Up:
		return "P2Up"
	case ActionP2Down:
		return "P2Down"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state sampled for one frame.
// Actions holds edge-triggered presses ("just pressed"); Holding holds
// level-triggered state ("currently held").
type InputFrame struct {
	Actions map[Action]bool
	Holding map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Holding: make(map[Action]bool),
	}
}

// Set marks an action as pressed this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold marks an action as currently held.
func (f *InputFrame) Hold(a Action) {
	if f.Holding == nil {
		f.Holding = make(map[Action]bool)
	}
	f.Holding[a] = true
}

// Held returns true if the given action is currently held.
func (f InputFrame) Held(a Action) bool {
	if f.Holding == nil {
		return false
	}
	return f.Holding[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Holding {
		delete(f.Holding, k)
	}
}

// Axis returns -1, 0 or +1 from a pair of held actions.
func (f InputFrame) Axis(down, up Action) float64 {
	dir := 0.0
	if f.Held(down) {
		dir--
	}
	if f.Held(up) {
		dir++
	}
	return dir
}

// HoldTracker emulates held keys on hosts that only report presses (terminals).
// A press keeps its action held for the hold window; auto-repeat presses
// extend it. Pressing the opposite direction releases the other one at once.
type HoldTracker struct {
	window time.Duration
	until  map[Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultConfig().HoldWindow
	}
	return &HoldTracker{
		window: window,
		until:  make(map[Action]time.Time),
	}
}

// Press records a key press at time now.
func (h *HoldTracker) Press(a Action, now time.Time) {
	if opp, ok := opposite(a); ok {
		delete(h.until, opp)
	}
	h.until[a] = now.Add(h.window)
}

// Release drops the held state of a, if any.
func (h *HoldTracker) Release(a Action) {
	delete(h.until, a)
}

// Apply marks every action still inside its hold window as held in frame.
// Expired entries are forgotten.
func (h *HoldTracker) Apply(frame *InputFrame, now time.Time) {
	for a, until := range h.until {
		if now.Before(until) {
			frame.Hold(a)
			continue
		}
		delete(h.until, a)
	}
}

// Reset forgets all held actions.
func (h *HoldTracker) Reset() {
	for k := range h.until {
		delete(h.until, k)
	}
}

func opposite(a Action) (Action, bool) {
	switch a {
	case ActionP1Up:
		return ActionP1Down, true
	case ActionP1Down:
		return ActionP1Up, true
	case ActionP2Up:
		return ActionP2Down, true
	case ActionP2Down:
		return ActionP2Up, true
	default:
		return ActionNone, false
	}
}
