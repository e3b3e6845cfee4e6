package ui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"metaseek/internal/api"
	"metaseek/internal/config"
	"metaseek/internal/dispatch"
	"metaseek/internal/session"
	"metaseek/internal/ui/input/types"
	"metaseek/internal/ui/views"
)

type stubBackend struct{}

func (stubBackend) Search(context.Context, api.SearchQuery) ([]api.Result, error) {
	return nil, nil
}
func (stubBackend) Autocomplete(context.Context, string) ([]string, error) {
	return nil, nil
}
func (stubBackend) QuickAnswers(context.Context, string) ([]api.QuickAnswer, error) {
	return nil, nil
}

func newTestModel(t *testing.T, rawLink string) *Model {
	t.Helper()
	m := NewModel(rawLink, &config.Config{APIURL: "http://localhost:3000"}, stubBackend{}, zap.NewNop())
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *Model, key tea.KeyType) {
	m.Update(tea.KeyMsg{Type: key})
}

func pressRune(m *Model, r rune) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func elapseDebounce(m *Model) {
	m.Update(debounceElapsedMsg{gen: m.dispatcher.DebounceGeneration()})
}

func resolveSuggestions(m *Model, suggestions []string) {
	m.Update(suggestResultMsg{key: m.dispatcher.Suggest.Key(), suggestions: suggestions})
}

func resolveSearch(m *Model, results []api.Result) {
	m.Update(searchResultMsg{key: m.dispatcher.Search.Key(), results: results})
}

func fakeResults(n int) []api.Result {
	results := make([]api.Result, n)
	for i := range results {
		results[i] = api.Result{
			Title:   fmt.Sprintf("result %d", i),
			Link:    fmt.Sprintf("https://example.com/%d", i),
			Snippet: "snippet",
			Source:  "google",
		}
	}
	return results
}

func TestTypingOpensSuggestionsAndFollowsLiveText(t *testing.T) {
	m := newTestModel(t, "")

	typeText(m, "cat")

	assert.True(t, m.overlays.SuggestionsOpen(), "typing should open the suggestion overlay")
	assert.Equal(t, "cat", m.controller.State().Query)
	assert.Equal(t, "search=cat", m.controller.Link())

	// Autocomplete and quick answers key off the live text immediately.
	assert.True(t, m.dispatcher.Suggest.IsLoading())
	assert.Equal(t, "cat", m.dispatcher.Suggest.Key())
	assert.True(t, m.dispatcher.Answers.IsLoading())

	// The main search waits for the debounce window.
	assert.Equal(t, dispatch.StatusIdle, m.dispatcher.Search.Status())
}

func TestShortQueryDoesNotFetchSuggestions(t *testing.T) {
	m := newTestModel(t, "")

	typeText(m, "ca")

	assert.True(t, m.overlays.SuggestionsOpen())
	assert.Equal(t, dispatch.StatusIdle, m.dispatcher.Suggest.Status())
}

func TestDebouncePromotesOnlyLatestGeneration(t *testing.T) {
	m := newTestModel(t, "")
	typeText(m, "cat")

	// A timer from an earlier keystroke fires late: nothing happens.
	m.Update(debounceElapsedMsg{gen: m.dispatcher.DebounceGeneration() - 1})
	assert.Equal(t, dispatch.StatusIdle, m.dispatcher.Search.Status())

	elapseDebounce(m)
	assert.True(t, m.dispatcher.Search.IsLoading())
	assert.Equal(t, "cat|1|||", m.dispatcher.Search.Key())
}

func TestStaleSearchResponseIsDropped(t *testing.T) {
	m := newTestModel(t, "search=cat")
	require.True(t, m.dispatcher.Search.IsLoading(), "deep link query should search at startup")
	staleKey := m.dispatcher.Search.Key()

	typeText(m, "s") // query is now "cats"
	press(m, tea.KeyEnter)
	require.Equal(t, "cats|1|||", m.dispatcher.Search.Key())

	// The superseded response lands late and must not surface.
	m.Update(searchResultMsg{key: staleKey, results: fakeResults(1)})
	assert.True(t, m.dispatcher.Search.IsLoading())
	assert.Empty(t, m.dispatcher.Search.Data())

	resolveSearch(m, fakeResults(3))
	assert.Len(t, m.dispatcher.Search.Data(), 3)
}

func TestSuggestionNavigationAndCommit(t *testing.T) {
	m := newTestModel(t, "")
	typeText(m, "cats")
	resolveSuggestions(m, []string{"<b>cats</b> for sale", "cats facts"})

	press(m, tea.KeyDown)
	assert.Equal(t, types.ModeSuggest, m.handler.CurrentMode())
	assert.Equal(t, 0, m.suggestIndex)

	press(m, tea.KeyDown)
	assert.Equal(t, 1, m.suggestIndex)
	press(m, tea.KeyDown) // already at the last row
	assert.Equal(t, 1, m.suggestIndex)

	press(m, tea.KeyUp)
	assert.Equal(t, 0, m.suggestIndex)
	press(m, tea.KeyUp) // up from the first row returns to the input
	assert.Equal(t, types.ModeInput, m.handler.CurrentMode())
	assert.Equal(t, -1, m.suggestIndex)

	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)

	// Committed text is the tag-stripped suggestion; the search fires
	// immediately, no debounce wait.
	assert.Equal(t, "cats for sale", m.controller.State().Query)
	assert.Equal(t, "cats for sale", m.handler.TextInput().Value())
	assert.False(t, m.overlays.SuggestionsOpen())
	assert.Equal(t, types.ModeInput, m.handler.CurrentMode())
	assert.True(t, m.dispatcher.Search.IsLoading())
	assert.Equal(t, "cats for sale|1|||", m.dispatcher.Search.Key())
}

func TestTypingWhileSuggestionFocusedReturnsToInput(t *testing.T) {
	m := newTestModel(t, "")
	typeText(m, "cats")
	resolveSuggestions(m, []string{"cats facts"})
	press(m, tea.KeyDown)
	require.Equal(t, types.ModeSuggest, m.handler.CurrentMode())

	pressRune(m, 'x')

	assert.Equal(t, types.ModeInput, m.handler.CurrentMode())
	assert.Equal(t, -1, m.suggestIndex)
	assert.Equal(t, "catsx", m.controller.State().Query)
}

func TestEmptyQueryKeepsOverlayOpen(t *testing.T) {
	m := newTestModel(t, "")
	typeText(m, "cat")
	resolveSuggestions(m, []string{"cat food"})

	for range 3 {
		press(m, tea.KeyBackspace)
	}

	assert.Equal(t, "", m.controller.State().Query)
	assert.True(t, m.overlays.SuggestionsOpen(), "overlay stays open with zero rows")
	assert.Equal(t, dispatch.StatusIdle, m.dispatcher.Suggest.Status())
	assert.Empty(t, m.dispatcher.Suggest.Data())
	assert.Equal(t, "", m.controller.Link())
}

func TestEscClosesOverlays(t *testing.T) {
	m := newTestModel(t, "")
	typeText(m, "cats")
	require.True(t, m.overlays.SuggestionsOpen())

	press(m, tea.KeyEsc)
	assert.False(t, m.overlays.SuggestionsOpen())
}

func TestClearingQueryResetsPage(t *testing.T) {
	m := newTestModel(t, "page=3&search=go")
	require.Equal(t, 3, m.controller.State().Page)
	require.Equal(t, "page=3&search=go", m.controller.Link())

	press(m, tea.KeyBackspace)
	press(m, tea.KeyBackspace)

	st := m.controller.State()
	assert.Equal(t, "", st.Query)
	assert.Equal(t, 1, st.Page)
	assert.Equal(t, "", m.controller.Link())
}

func TestPaginationKeys(t *testing.T) {
	m := newTestModel(t, "search=go")
	resolveSearch(m, fakeResults(5))

	press(m, tea.KeyDown) // focus first result
	require.Equal(t, types.ModeResults, m.handler.CurrentMode())

	pressRune(m, ']')
	st := m.controller.State()
	assert.Equal(t, 2, st.Page)
	assert.Equal(t, "page=2&search=go", m.controller.Link())
	assert.True(t, m.dispatcher.Search.IsLoading())
	assert.Equal(t, "go|2|||", m.dispatcher.Search.Key())

	pressRune(m, '[')
	assert.Equal(t, 1, m.controller.State().Page)

	pressRune(m, '[') // already on page 1
	assert.Equal(t, 1, m.controller.State().Page)
}

func TestFilterPopoverCycling(t *testing.T) {
	m := newTestModel(t, "")
	typeText(m, "cat")

	press(m, tea.KeyCtrlF)
	require.True(t, m.overlays.ConfigOpen())
	require.Equal(t, types.ModeConfig, m.handler.CurrentMode())

	press(m, tea.KeyRight) // date range: none -> day
	assert.Equal(t, session.DateRangeDay, m.controller.State().DateRange)
	assert.Equal(t, "date_range=day&search=cat", m.controller.Link())

	press(m, tea.KeyLeft) // back to none
	assert.Equal(t, session.DateRangeNone, m.controller.State().DateRange)

	press(m, tea.KeyDown) // region row
	press(m, tea.KeyRight)
	assert.Equal(t, session.RegionFR, m.controller.State().Region)

	press(m, tea.KeyEsc)
	assert.False(t, m.overlays.ConfigOpen())
	assert.Equal(t, types.ModeInput, m.handler.CurrentMode())
	// The chosen filter survives the popover closing.
	assert.Equal(t, session.RegionFR, m.controller.State().Region)
}

func TestResultNavigation(t *testing.T) {
	m := newTestModel(t, "search=go")
	resolveSearch(m, fakeResults(3))

	press(m, tea.KeyDown)
	assert.Equal(t, types.ModeResults, m.handler.CurrentMode())
	assert.Equal(t, 0, m.resultIndex)

	pressRune(m, 'j')
	assert.Equal(t, 1, m.resultIndex)
	pressRune(m, 'k')
	assert.Equal(t, 0, m.resultIndex)
	pressRune(m, 'k') // up from the first result returns to the input
	assert.Equal(t, types.ModeInput, m.handler.CurrentMode())
	assert.Equal(t, -1, m.resultIndex)
}

func TestOutsidePressClosesPopoverNotSuggestions(t *testing.T) {
	m := newTestModel(t, "")
	typeText(m, "cats")
	resolveSuggestions(m, []string{"cats facts", "cats for sale"})
	press(m, tea.KeyCtrlF)
	require.True(t, m.overlays.ConfigOpen())
	require.True(t, m.overlays.SuggestionsOpen())

	m.View() // records the rendered rects

	// Press on the query input: outside the popover and its trigger, but
	// inside the suggestion overlay's anchor.
	in := m.lastLayout.Input
	m.Update(tea.MouseMsg{X: in.X, Y: in.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	assert.False(t, m.overlays.ConfigOpen(), "popover dismissed by outside press")
	assert.True(t, m.overlays.SuggestionsOpen(), "suggestions unaffected by the same press")
}

func TestOutsidePressClosingPopoverReturnsFocusToInput(t *testing.T) {
	m := newTestModel(t, "")
	typeText(m, "cat")
	press(m, tea.KeyCtrlF)
	require.True(t, m.overlays.ConfigOpen())
	require.Equal(t, types.ModeConfig, m.handler.CurrentMode())
	m.View()

	m.Update(tea.MouseMsg{X: 0, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	assert.False(t, m.overlays.ConfigOpen())
	assert.Equal(t, types.ModeInput, m.handler.CurrentMode())

	// The dismissed popover must not keep the keyboard: arrows no longer
	// cycle filters and printable keys edit the query again.
	press(m, tea.KeyRight)
	assert.Equal(t, session.DateRangeNone, m.controller.State().DateRange)
	pressRune(m, 'x')
	assert.Equal(t, "catx", m.controller.State().Query)
}

func TestSuggestionFocusStaysOnRenderedRows(t *testing.T) {
	m := newTestModel(t, "")
	typeText(m, "cat")
	many := make([]string, views.MaxSuggestionRows+4)
	for i := range many {
		many[i] = fmt.Sprintf("cat %d", i)
	}
	resolveSuggestions(m, many)

	press(m, tea.KeyDown)
	for range len(many) {
		press(m, tea.KeyDown)
	}

	// The dropdown renders only the first MaxSuggestionRows rows; the
	// selected marker must stay on one of them.
	assert.Equal(t, views.MaxSuggestionRows-1, m.suggestIndex)
}

func TestOutsidePressClosesSuggestions(t *testing.T) {
	m := newTestModel(t, "")
	typeText(m, "cats")
	resolveSuggestions(m, []string{"cats facts"})
	m.View()

	m.Update(tea.MouseMsg{X: 0, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	assert.False(t, m.overlays.SuggestionsOpen())
}

func TestScrollDirectionDrivesBarVisibility(t *testing.T) {
	m := newTestModel(t, "search=go")
	resolveSearch(m, fakeResults(20))

	press(m, tea.KeyPgDown)
	assert.True(t, m.viewState().BarHidden, "scrolling down hides the search bar")

	press(m, tea.KeyPgUp)
	assert.False(t, m.viewState().BarHidden, "scrolling up reveals it")
}

func TestDeepLinkStartsSearchImmediately(t *testing.T) {
	m := newTestModel(t, "region=uk&search=go+generics&date_range=month")

	assert.True(t, m.dispatcher.Search.IsLoading())
	assert.Equal(t, "go generics|1|month|uk|", m.dispatcher.Search.Key())
	assert.Equal(t, "date_range=month&region=uk&search=go+generics", m.controller.Link())
}

func TestConfigDefaultsFillUnsetFilters(t *testing.T) {
	cfg := &config.Config{APIURL: "http://localhost:3000", Defaults: config.Defaults{Region: "fr"}}

	m := NewModel("search=x&region=us", cfg, stubBackend{}, zap.NewNop())
	assert.Equal(t, session.RegionUS, m.controller.State().Region, "deep link wins over the default")

	m = NewModel("search=x", cfg, stubBackend{}, zap.NewNop())
	assert.Equal(t, session.RegionFR, m.controller.State().Region)
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, "")

	press(m, tea.KeyF1)
	assert.True(t, m.showHelp)

	press(m, tea.KeyEsc)
	assert.False(t, m.showHelp)
}

func TestEmptyResultsReturnFocusToInput(t *testing.T) {
	m := newTestModel(t, "search=go")
	resolveSearch(m, fakeResults(2))
	press(m, tea.KeyDown)
	require.Equal(t, types.ModeResults, m.handler.CurrentMode())

	// A new page comes back empty: the focused link no longer exists.
	pressRune(m, ']')
	resolveSearch(m, nil)

	assert.Equal(t, types.ModeInput, m.handler.CurrentMode())
	assert.Equal(t, -1, m.resultIndex)
}
