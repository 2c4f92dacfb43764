package state

import "sync"

// Theme modes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ThemeStore holds the display mode. It is state only: the hosting layer
// applies the mode to the page root and persists it on every change.
type ThemeStore struct {
	mu   sync.Mutex
	mode string
}

// NewThemeStore creates a store with the given initial mode. Anything other
// than a valid mode falls back to light, so a corrupt persisted value cannot
// leak into the UI.
func NewThemeStore(initial string) *ThemeStore {
	if initial != ThemeLight && initial != ThemeDark {
		initial = ThemeLight
	}
	return &ThemeStore{mode: initial}
}

// Toggle flips between light and dark and returns the new mode.
func (t *ThemeStore) Toggle() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.mode == ThemeLight {
		t.mode = ThemeDark
	} else {
		t.mode = ThemeLight
	}
	return t.mode
}

// Set sets the mode explicitly. Invalid modes are ignored.
func (t *ThemeStore) Set(mode string) {
	if mode != ThemeLight && mode != ThemeDark {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mode = mode
}

// Mode returns the current mode.
func (t *ThemeStore) Mode() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mode
}
