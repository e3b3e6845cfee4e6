package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"metaseek/internal/ui/input/modes"
	"metaseek/internal/ui/input/types"
)

// Handler is the navigation state machine's key router. It owns the shared
// query text input and a registry of mode handlers, one per focus region,
// and translates raw key events into domain actions for the model.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
}

// New builds the handler with the query input seeded from the decoded
// deep link.
func New(initialQuery string) *Handler {
	ti := textinput.New()
	ti.Placeholder = "search the web"
	ti.SetValue(initialQuery)
	ti.CursorEnd()
	ti.Focus()

	h := &Handler{
		currentMode: types.ModeInput,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeInput] = modes.NewInputMode()
	h.modes[types.ModeSuggest] = modes.NewSuggestMode()
	h.modes[types.ModeResults] = modes.NewResultsMode()
	h.modes[types.ModeConfig] = modes.NewConfigMode()

	return h
}

// HandleKey routes a key event through the current mode and returns the
// actions the model should execute.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			if h.modes[h.currentMode] != nil {
				allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)
			}
			h.setMode(changeMode.Mode)
			if h.modes[h.currentMode] != nil {
				allActions = append(allActions, h.modes[h.currentMode].Enter(ctx)...)
			}
		}
		// ChangeModeAction is forwarded too: the model mirrors the new
		// focus index from it.
		allActions = append(allActions, action)
	}

	// Unconsumed keys in a text-bearing mode edit the query. Typing while
	// a suggestion held logical focus returns focus to the input.
	if h.isTextMode(h.currentMode) && !consumed {
		before := h.textInput.Value()
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		if h.textInput.Value() != before {
			if h.currentMode == types.ModeSuggest {
				h.setMode(types.ModeInput)
				allActions = append(allActions, types.ChangeModeAction{Mode: types.ModeInput, Index: -1})
			}
			allActions = append(allActions, types.UpdateQueryAction{Text: h.textInput.Value()})
		}
	}

	return allActions, cmd
}

// setMode switches the focus region and keeps real input focus in sync:
// the text input stays focused through suggestion navigation (logical
// focus only) and blurs when a result link or the popover takes over.
func (h *Handler) setMode(mode types.Mode) {
	h.currentMode = mode
	if h.isTextMode(mode) {
		h.textInput.Focus()
	} else {
		h.textInput.Blur()
	}
}

// ChangeMode forces a focus region change from outside the key flow (e.g.
// a mouse press on the input).
func (h *Handler) ChangeMode(mode types.Mode) {
	h.setMode(mode)
}

// CurrentMode returns the focus region that currently owns key events.
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// ModeName returns the current region's display name.
func (h *Handler) ModeName() string {
	if m := h.modes[h.currentMode]; m != nil {
		return m.Name()
	}
	return ""
}

// TextInput exposes the shared query input for rendering.
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// SetQueryText replaces the input's content (suggestion commit).
func (h *Handler) SetQueryText(text string) {
	h.textInput.SetValue(text)
	h.textInput.CursorEnd()
}

// Update handles non-key messages for the text input (cursor blink).
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

// Init returns the initial command for the handler.
func (h *Handler) Init() tea.Cmd {
	return textinput.Blink
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	switch mode {
	case types.ModeInput, types.ModeSuggest:
		return true
	default:
		return false
	}
}
