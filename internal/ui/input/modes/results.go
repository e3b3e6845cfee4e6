package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"metaseek/internal/ui/input/types"
)

// ResultsMode routes keys while a result link holds real focus. Up/down
// are always consumed here so moving focus never also scrolls the
// viewport.
type ResultsMode struct{}

func NewResultsMode() *ResultsMode {
	return &ResultsMode{}
}

func (m *ResultsMode) Name() string {
	return "results"
}

func (m *ResultsMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ResultsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ResultsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeInput, Index: -1}}, true

	case tea.KeyDown:
		if ctx.CurrentResult() < ctx.ResultCount()-1 {
			return []types.Action{types.MoveResultAction{Delta: 1}}, true
		}
		return nil, true

	case tea.KeyUp:
		// Up from the first result returns focus to the input.
		if ctx.CurrentResult() == 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeInput, Index: -1}}, true
		}
		return []types.Action{types.MoveResultAction{Delta: -1}}, true

	case tea.KeyEnter:
		return []types.Action{types.OpenResultAction{Index: ctx.CurrentResult()}}, true

	case tea.KeyLeft:
		return []types.Action{types.PageAction{Delta: -1}}, true

	case tea.KeyRight:
		return []types.Action{types.PageAction{Delta: 1}}, true

	case tea.KeyPgDown:
		return []types.Action{types.ScrollAction{Delta: 1}}, true

	case tea.KeyPgUp:
		return []types.Action{types.ScrollAction{Delta: -1}}, true

	case tea.KeyCtrlF:
		return []types.Action{types.ToggleConfigAction{}}, true
	}

	switch msg.String() {
	case "j":
		if ctx.CurrentResult() < ctx.ResultCount()-1 {
			return []types.Action{types.MoveResultAction{Delta: 1}}, true
		}
		return nil, true
	case "k":
		if ctx.CurrentResult() == 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeInput, Index: -1}}, true
		}
		return []types.Action{types.MoveResultAction{Delta: -1}}, true
	case "[":
		return []types.Action{types.PageAction{Delta: -1}}, true
	case "]":
		return []types.Action{types.PageAction{Delta: 1}}, true
	case "/", "i":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeInput, Index: -1}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
