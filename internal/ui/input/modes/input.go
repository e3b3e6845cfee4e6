package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"metaseek/internal/ui/input/types"
)

// InputMode is the resting state: real focus in the query text input with
// no logical suggestion selection.
type InputMode struct{}

func NewInputMode() *InputMode {
	return &InputMode{}
}

func (m *InputMode) Name() string {
	return "input"
}

func (m *InputMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *InputMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *InputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		return []types.Action{types.CloseOverlaysAction{}}, true

	case tea.KeyEnter:
		return []types.Action{types.SubmitQueryAction{}}, true

	case tea.KeyDown:
		// Open suggestions take focus first; otherwise jump to the first
		// result link.
		if ctx.SuggestionsOpen() && ctx.SuggestionCount() > 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeSuggest, Index: 0}}, true
		}
		if ctx.ResultCount() > 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeResults, Index: 0}}, true
		}
		return nil, true

	case tea.KeyUp:
		// Nothing above the input.
		return nil, true

	case tea.KeyPgDown:
		return []types.Action{types.ScrollAction{Delta: 1}}, true

	case tea.KeyPgUp:
		return []types.Action{types.ScrollAction{Delta: -1}}, true

	case tea.KeyCtrlF:
		return []types.Action{types.ToggleConfigAction{}}, true

	case tea.KeyF1:
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	// Everything else edits the query text.
	return nil, false
}
