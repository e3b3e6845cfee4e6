package types

import tea "github.com/charmbracelet/bubbletea"

// Mode identifies which interactive region owns keyboard focus.
type Mode int

const (
	// ModeInput: real focus in the query text input, no logical selection.
	ModeInput Mode = iota
	// ModeSuggest: input keeps real focus, a suggestion row holds logical
	// focus (mirrored as the selected marker).
	ModeSuggest
	// ModeResults: a result link holds real focus.
	ModeResults
	// ModeConfig: the filter popover owns key events.
	ModeConfig
)

// Action is a command the model should execute in response to input.
type Action interface {
	Type() string
}

// Context provides read-only access to the model state the mode handlers
// need for their transition decisions.
type Context interface {
	QueryText() string
	SuggestionsOpen() bool
	SuggestionCount() int
	CurrentSuggestion() int // logical focus index, -1 for none
	ResultCount() int
	CurrentResult() int
	ConfigOpen() bool
	ConfigCursor() int
}

// ModeHandler handles key input for one focus region.
type ModeHandler interface {
	// HandleKey processes a key and returns actions plus whether the key
	// was consumed. Unconsumed keys in text-bearing modes flow into the
	// shared text input.
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when focus moves into this region.
	Enter(ctx Context) []Action

	// Exit is called when focus leaves this region.
	Exit(ctx Context) []Action

	// Name returns the region name for display.
	Name() string
}
