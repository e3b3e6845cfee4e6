package overlay

// Rect is a rectangle in screen cells, used for outside-press hit testing.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Manager owns show/hide state for the two transient overlays — the
// suggestion dropdown and the filter popover — and their outside-press
// dismissal rules. The two are independent: opening or dismissing one
// never touches the other. The renderer reports each overlay's rendered
// rectangle back here so presses can be classified.
type Manager struct {
	suggestionsOpen bool
	configOpen      bool

	inputRect   Rect // query input, the suggestion overlay's anchor
	suggestRect Rect // rendered dropdown
	triggerRect Rect // filter trigger control
	configRect  Rect // rendered popover
}

// SuggestionsOpen reports whether the suggestion dropdown is visible.
// Note it stays open with zero rows when the query empties; dismissal is
// only ever explicit (press outside, escape, commit).
func (m *Manager) SuggestionsOpen() bool { return m.suggestionsOpen }

// ConfigOpen reports whether the filter popover is visible.
func (m *Manager) ConfigOpen() bool { return m.configOpen }

// OpenSuggestions shows the dropdown; typing in the input calls this.
func (m *Manager) OpenSuggestions() { m.suggestionsOpen = true }

// CloseSuggestions hides the dropdown (commit, escape or outside press).
func (m *Manager) CloseSuggestions() { m.suggestionsOpen = false }

// ToggleConfig flips the filter popover on its trigger.
func (m *Manager) ToggleConfig() { m.configOpen = !m.configOpen }

// CloseConfig hides the filter popover.
func (m *Manager) CloseConfig() { m.configOpen = false }

// SetInputRect records where the query input was rendered.
func (m *Manager) SetInputRect(r Rect) { m.inputRect = r }

// SetSuggestRect records where the dropdown was rendered.
func (m *Manager) SetSuggestRect(r Rect) { m.suggestRect = r }

// SetTriggerRect records where the filter trigger was rendered.
func (m *Manager) SetTriggerRect(r Rect) { m.triggerRect = r }

// SetConfigRect records where the popover was rendered.
func (m *Manager) SetConfigRect(r Rect) { m.configRect = r }

// PressAt applies the outside-press dismissal rules for a press at the
// given cell. A press outside both the input and the dropdown closes the
// suggestions; a press outside both the popover and its trigger closes the
// popover. Returns which overlays were closed by this press.
func (m *Manager) PressAt(x, y int) (suggestionsClosed, configClosed bool) {
	if m.suggestionsOpen && !m.inputRect.Contains(x, y) && !m.suggestRect.Contains(x, y) {
		m.suggestionsOpen = false
		suggestionsClosed = true
	}
	if m.configOpen && !m.configRect.Contains(x, y) && !m.triggerRect.Contains(x, y) {
		m.configOpen = false
		configClosed = true
	}
	return suggestionsClosed, configClosed
}
