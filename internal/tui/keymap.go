package tui

// GlobalKeyBindings lists the keys the viewer handles while the scene has
// focus.
var GlobalKeyBindings = []string{"tab", "shift+tab", "enter", "right", "left", "o", "i", "esc", "q", "ctrl+c"}

// focusKeys maps each FocusTarget to the keys the viewer intercepts in that
// mode. Everything else typed into an input goes to the input.
var focusKeys = map[FocusTarget][]string{
	FocusScene: GlobalKeyBindings,
	FocusInput: {"esc", "tab", "ctrl+c"},
}

// IsGlobalKey reports whether key is a scene keybinding.
func IsGlobalKey(key string) bool {
	for _, k := range GlobalKeyBindings {
		if k == key {
			return true
		}
	}
	return false
}

// Intercepts reports whether the viewer handles key itself while focus is
// active, rather than passing it on or ignoring it.
func Intercepts(focus FocusTarget, key string) bool {
	for _, k := range focusKeys[focus] {
		if k == key {
			return true
		}
	}
	return false
}

// FocusKeys returns the keys intercepted while focus is active.
func FocusKeys(focus FocusTarget) []string {
	return focusKeys[focus]
}
