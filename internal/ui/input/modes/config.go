package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"metaseek/internal/ui/input/types"
)

// ConfigMode routes keys while the filter popover is open: up/down pick a
// filter field, left/right (or enter) cycle its value.
type ConfigMode struct{}

func NewConfigMode() *ConfigMode {
	return &ConfigMode{}
}

func (m *ConfigMode) Name() string {
	return "config"
}

func (m *ConfigMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfigMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfigMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		return []types.Action{
			types.CloseOverlaysAction{},
			types.ChangeModeAction{Mode: types.ModeInput, Index: -1},
		}, true

	case tea.KeyUp:
		return []types.Action{types.MoveConfigCursorAction{Delta: -1}}, true

	case tea.KeyDown:
		return []types.Action{types.MoveConfigCursorAction{Delta: 1}}, true

	case tea.KeyLeft:
		return []types.Action{types.CycleFilterAction{Delta: -1}}, true

	case tea.KeyRight, tea.KeyEnter:
		return []types.Action{types.CycleFilterAction{Delta: 1}}, true

	case tea.KeyCtrlF:
		return []types.Action{
			types.ToggleConfigAction{},
			types.ChangeModeAction{Mode: types.ModeInput, Index: -1},
		}, true
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.MoveConfigCursorAction{Delta: 1}}, true
	case "k":
		return []types.Action{types.MoveConfigCursorAction{Delta: -1}}, true
	case "h":
		return []types.Action{types.CycleFilterAction{Delta: -1}}, true
	case "l":
		return []types.Action{types.CycleFilterAction{Delta: 1}}, true
	}

	return nil, true // the popover swallows everything else while open
}
