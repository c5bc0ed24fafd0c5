// Package input defines the button set the game reads each frame.
package input

// Button is one of the fixed game buttons.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonJump
	ButtonRestart
	buttonCount
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonJump:
		return "jump"
	case ButtonRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Source reports whether a button is held. Implementations are refreshed
// once per frame before the world updates.
type Source interface {
	Held(b Button) bool
}

// State is a settable Source. Devices poll into it; tests drive it directly.
type State struct {
	held [buttonCount]bool
}

func (s *State) Held(b Button) bool {
	if s == nil || b < 0 || b >= buttonCount {
		return false
	}
	return s.held[b]
}

// Set marks b as held or released.
func (s *State) Set(b Button, held bool) {
	if s == nil || b < 0 || b >= buttonCount {
		return
	}
	s.held[b] = held
}

// Reset releases every button.
func (s *State) Reset() {
	if s == nil {
		return
	}
	s.held = [buttonCount]bool{}
}
