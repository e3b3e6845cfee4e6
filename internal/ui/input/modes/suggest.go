package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"metaseek/internal/ui/input/types"
)

// SuggestMode routes keys while a suggestion row holds logical focus. The
// text input keeps real focus the whole time, so printable keys fall
// through to it (and drop the logical selection).
type SuggestMode struct{}

func NewSuggestMode() *SuggestMode {
	return &SuggestMode{}
}

func (m *SuggestMode) Name() string {
	return "suggest"
}

func (m *SuggestMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *SuggestMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *SuggestMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		return []types.Action{
			types.CloseOverlaysAction{},
			types.ChangeModeAction{Mode: types.ModeInput, Index: -1},
		}, true

	case tea.KeyDown:
		if ctx.CurrentSuggestion() < ctx.SuggestionCount()-1 {
			return []types.Action{types.MoveSuggestionAction{Delta: 1}}, true
		}
		return nil, true

	case tea.KeyUp:
		// Up from the first row returns real focus to the input.
		if ctx.CurrentSuggestion() == 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeInput, Index: -1}}, true
		}
		return []types.Action{types.MoveSuggestionAction{Delta: -1}}, true

	case tea.KeyEnter:
		return []types.Action{types.CommitSuggestionAction{Index: ctx.CurrentSuggestion()}}, true

	case tea.KeyCtrlF:
		return []types.Action{types.ToggleConfigAction{}}, true
	}

	// Printable keys keep editing the query; the handler drops logical
	// focus back to the input when the text changes.
	return nil, false
}
