package brickpong

// State is one level of the game state stack.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Machine is the game state stack. Only the top state is live.
//
// Menu and Playing sit at the bottom and replace each other; Paused is the
// only overlay and can only sit on top of Playing, so the stack never holds
// more than two states. Requests that do not fit the current top are
// ignored and report false.
type Machine struct {
	stack [2]State
	depth int
}

// NewMachine returns a machine in the Menu state.
func NewMachine() *Machine {
	return &Machine{stack: [2]State{StateMenu}, depth: 1}
}

// Current returns the live state.
func (m *Machine) Current() State {
	return m.stack[m.depth-1]
}

// Depth returns the number of stacked states.
func (m *Machine) Depth() int {
	return m.depth
}

// Start replaces Menu with Playing.
func (m *Machine) Start() bool {
	if m.Current() != StateMenu {
		return false
	}
	m.stack[0] = StatePlaying
	return true
}

// Pause pushes Paused on top of Playing.
func (m *Machine) Pause() bool {
	if m.Current() != StatePlaying {
		return false
	}
	m.stack[1] = StatePaused
	m.depth = 2
	return true
}

// Resume pops Paused, uncovering Playing.
func (m *Machine) Resume() bool {
	if m.Current() != StatePaused {
		return false
	}
	m.depth = 1
	return true
}

// TogglePause pauses while playing and resumes while paused.
func (m *Machine) TogglePause() bool {
	switch m.Current() {
	case StatePlaying:
		return m.Pause()
	case StatePaused:
		return m.Resume()
	default:
		return false
	}
}

// Quit replaces Playing with Menu. Paused must be resumed first.
func (m *Machine) Quit() bool {
	if m.Current() != StatePlaying {
		return false
	}
	m.stack[0] = StateMenu
	return true
}
