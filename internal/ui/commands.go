package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"metaseek/internal/api"
	"metaseek/internal/dispatch"
)

// debounceCmd schedules the timer for one debounce generation. By the time
// it fires a newer keystroke may have bumped the generation, in which case
// the elapse is a no-op.
func debounceCmd(gen int) tea.Cmd {
	return tea.Tick(dispatch.DebounceWindow, func(time.Time) tea.Msg {
		return debounceElapsedMsg{gen: gen}
	})
}

// searchCmd issues the main search read for a slot key.
func (m *Model) searchCmd(key string, q api.SearchQuery) tea.Cmd {
	return func() tea.Msg {
		results, err := m.backend.Search(context.Background(), q)
		return searchResultMsg{key: key, results: results, err: err}
	}
}

// suggestCmd issues the autocomplete read for a slot key.
func (m *Model) suggestCmd(key string) tea.Cmd {
	return func() tea.Msg {
		suggestions, err := m.backend.Autocomplete(context.Background(), key)
		return suggestResultMsg{key: key, suggestions: suggestions, err: err}
	}
}

// answersCmd issues the quick-answer read for a slot key.
func (m *Model) answersCmd(key string) tea.Cmd {
	return func() tea.Msg {
		answers, err := m.backend.QuickAnswers(context.Background(), key)
		return answersResultMsg{key: key, answers: answers, err: err}
	}
}
