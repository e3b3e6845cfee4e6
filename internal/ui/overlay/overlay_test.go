package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestManager() *Manager {
	m := &Manager{}
	m.SetInputRect(Rect{X: 0, Y: 0, W: 40, H: 1})
	m.SetSuggestRect(Rect{X: 0, Y: 1, W: 40, H: 5})
	m.SetTriggerRect(Rect{X: 42, Y: 0, W: 8, H: 1})
	m.SetConfigRect(Rect{X: 30, Y: 2, W: 24, H: 6})
	return m
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	assert.True(t, r.Contains(2, 3))
	assert.True(t, r.Contains(5, 4))
	assert.False(t, r.Contains(6, 3), "right edge is exclusive")
	assert.False(t, r.Contains(2, 5), "bottom edge is exclusive")
	assert.False(t, r.Contains(1, 3))
}

func TestOutsidePressClosesSuggestions(t *testing.T) {
	m := newTestManager()
	m.OpenSuggestions()

	m.PressAt(10, 20)
	assert.False(t, m.SuggestionsOpen())
}

func TestPressInsideInputOrDropdownKeepsSuggestions(t *testing.T) {
	m := newTestManager()
	m.OpenSuggestions()

	m.PressAt(5, 0) // inside input
	assert.True(t, m.SuggestionsOpen())

	m.PressAt(5, 3) // inside dropdown
	assert.True(t, m.SuggestionsOpen())
}

func TestOutsidePressClosesPopoverOnly(t *testing.T) {
	m := newTestManager()
	m.ToggleConfig()
	assert.True(t, m.ConfigOpen())

	// Suggestion overlay closed, popover open: an outside press closes the
	// popover and leaves the suggestion state untouched.
	suggClosed, cfgClosed := m.PressAt(0, 20)
	assert.True(t, cfgClosed)
	assert.False(t, suggClosed)
	assert.False(t, m.ConfigOpen())
	assert.False(t, m.SuggestionsOpen())
}

func TestPressOnTriggerKeepsPopover(t *testing.T) {
	m := newTestManager()
	m.ToggleConfig()

	m.PressAt(43, 0) // on the trigger control
	assert.True(t, m.ConfigOpen())

	m.PressAt(35, 4) // inside the popover
	assert.True(t, m.ConfigOpen())
}

func TestOverlaysAreIndependent(t *testing.T) {
	m := newTestManager()
	m.OpenSuggestions()
	m.ToggleConfig()

	// Opening one did not close the other.
	assert.True(t, m.SuggestionsOpen())
	assert.True(t, m.ConfigOpen())

	// A press inside the dropdown but outside the popover closes only the
	// popover.
	m.PressAt(5, 3)
	assert.True(t, m.SuggestionsOpen())
	assert.False(t, m.ConfigOpen())
}

func TestToggleConfig(t *testing.T) {
	m := newTestManager()
	m.ToggleConfig()
	assert.True(t, m.ConfigOpen())
	m.ToggleConfig()
	assert.False(t, m.ConfigOpen())
}
