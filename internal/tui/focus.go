package tui

// FocusTarget identifies what receives key presses.
type FocusTarget int

const (
	FocusScene FocusTarget = iota // keys drive refs and the overlay
	FocusInput                    // keys edit the focused text input
)

// String returns the human-readable name of the focus target.
func (f FocusTarget) String() string {
	switch f {
	case FocusScene:
		return "scene"
	case FocusInput:
		return "input"
	default:
		return "unknown"
	}
}
