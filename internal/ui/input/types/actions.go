package types

// Focus / mode transitions
type ChangeModeAction struct {
	Mode  Mode
	Index int // target suggestion/result index, -1 when not applicable
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Query text actions
type UpdateQueryAction struct {
	Text string
}

func (a UpdateQueryAction) Type() string { return "update_query" }

// SubmitQueryAction commits the input's current text as the search query
// immediately, bypassing the remaining debounce window.
type SubmitQueryAction struct{}

func (a SubmitQueryAction) Type() string { return "submit_query" }

// CommitSuggestionAction commits the tag-stripped text of the suggestion
// at Index as the new query and closes the suggestion overlay.
type CommitSuggestionAction struct {
	Index int
}

func (a CommitSuggestionAction) Type() string { return "commit_suggestion" }

// Suggestion logical focus movement (within ModeSuggest).
type MoveSuggestionAction struct {
	Delta int
}

func (a MoveSuggestionAction) Type() string { return "move_suggestion" }

// Result focus movement (within ModeResults).
type MoveResultAction struct {
	Delta int
}

func (a MoveResultAction) Type() string { return "move_result" }

// Overlay actions
type CloseOverlaysAction struct{}

func (a CloseOverlaysAction) Type() string { return "close_overlays" }

type ToggleConfigAction struct{}

func (a ToggleConfigAction) Type() string { return "toggle_config" }

// Filter popover actions
type MoveConfigCursorAction struct {
	Delta int
}

func (a MoveConfigCursorAction) Type() string { return "move_config_cursor" }

type CycleFilterAction struct {
	Delta int // +1 cycles forward through the field's values, -1 back
}

func (a CycleFilterAction) Type() string { return "cycle_filter" }

// Pagination
type PageAction struct {
	Delta int
}

func (a PageAction) Type() string { return "page" }

// OpenResultAction opens the focused result's full record in the pager.
type OpenResultAction struct {
	Index int
}

func (a OpenResultAction) Type() string { return "open_result" }

// Viewport scrolling (only when no result link holds focus).
type ScrollAction struct {
	Delta int
}

func (a ScrollAction) Type() string { return "scroll" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C
}

func (a QuitAction) Type() string { return "quit" }
