package ui

import (
	"context"
	"net/url"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"metaseek/internal/api"
	"metaseek/internal/config"
	"metaseek/internal/dispatch"
	"metaseek/internal/session"
	"metaseek/internal/ui/input"
	"metaseek/internal/ui/input/types"
	"metaseek/internal/ui/logic"
	"metaseek/internal/ui/overlay"
	"metaseek/internal/ui/views"
)

// wheelLines is how far one mouse wheel notch scrolls the result list.
const wheelLines = 3

// Backend is the slice of the API client the model needs. Narrowed to an
// interface so tests can drive the full update loop without a server.
type Backend interface {
	Search(ctx context.Context, q api.SearchQuery) ([]api.Result, error)
	Autocomplete(ctx context.Context, query string) ([]string, error)
	QuickAnswers(ctx context.Context, query string) ([]api.QuickAnswer, error)
}

// Model is the root bubbletea model. It wires the session controller, the
// fetch dispatcher, the overlay manager and the input handler together;
// every mutation flows through Update, so none of them needs locking.
type Model struct {
	controller *session.Controller
	dispatcher *dispatch.Dispatcher
	backend    Backend
	logger     *zap.Logger

	handler  *input.Handler
	overlays *overlay.Manager
	renderer *views.Renderer
	scroll   logic.ScrollTracker
	spinner  spinner.Model

	program *tea.Program // set after construction, for the pager handoff

	width, height int
	suggestIndex  int // logical suggestion focus, -1 for none
	resultIndex   int // focused result link, -1 for none
	configCursor  int
	offset        int // line offset into the rendered result list
	showHelp      bool
	status        string

	lastLayout views.Layout
}

// NewModel builds the root model. rawLink is the deep link query string the
// program was started with ("" for a fresh session); config defaults fill
// in filter fields the link does not mention.
func NewModel(rawLink string, cfg *config.Config, backend Backend, logger *zap.Logger) *Model {
	rawLink = mergeDefaults(rawLink, cfg.Defaults)
	controller := session.NewController(rawLink)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		controller:   controller,
		dispatcher:   dispatch.NewDispatcher(controller.State().Query),
		backend:      backend,
		logger:       logger,
		handler:      input.New(controller.State().Query),
		overlays:     &overlay.Manager{},
		renderer:     views.NewRenderer(),
		spinner:      sp,
		suggestIndex: -1,
		resultIndex:  -1,
	}
}

// SetProgram hands the model the running program so the pager can release
// and restore the terminal around its run.
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// mergeDefaults layers configured default filters under the deep link:
// only fields the link itself does not carry are filled in.
func mergeDefaults(rawLink string, d config.Defaults) string {
	vals, _ := url.ParseQuery(rawLink)
	for key, val := range map[string]string{
		"date_range": d.DateRange,
		"region":     d.Region,
		"language":   d.Language,
	} {
		if val != "" && vals.Get(key) == "" {
			vals.Set(key, val)
		}
	}
	return vals.Encode()
}

func (m *Model) Init() tea.Cmd {
	// The dispatcher is seeded with the deep link's query, so a session
	// started from a link searches immediately.
	return tea.Batch(m.handler.Init(), m.spinner.Tick, m.planFetches())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			switch msg.String() {
			case "esc", "?", "f1", "q", "ctrl+c":
				m.showHelp = false
			}
			return m, nil
		}
		actions, cmd := m.handler.HandleKey(msg, m)
		return m, tea.Batch(cmd, m.applyActions(actions))

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case debounceElapsedMsg:
		if m.dispatcher.ElapseDebounce(msg.gen) {
			return m, m.planFetches()
		}
		return m, nil

	case searchResultMsg:
		if m.dispatcher.Search.Resolve(msg.key, msg.results, msg.err) {
			if msg.err != nil {
				m.logger.Warn("search failed", zap.String("key", msg.key), zap.Error(msg.err))
			}
			m.offset = 0
			m.scroll.Sample(0)
			m.syncResultFocus()
		}
		return m, nil

	case suggestResultMsg:
		if m.dispatcher.Suggest.Resolve(msg.key, msg.suggestions, msg.err) {
			if msg.err != nil {
				// Suggestions degrade silently; an empty dropdown is the
				// whole error surface.
				m.logger.Debug("autocomplete failed", zap.Error(msg.err))
			}
			m.syncSuggestFocus()
		}
		return m, nil

	case answersResultMsg:
		if m.dispatcher.Answers.Resolve(msg.key, msg.answers, msg.err) && msg.err != nil {
			m.logger.Debug("quick answers failed", zap.Error(msg.err))
		}
		return m, nil

	case ConfigReloadedMsg:
		// Filter defaults only seed fresh sessions; a mid-session reload
		// deliberately leaves the user's current choices alone.
		m.logger.Info("applied reloaded config")
		m.status = "config reloaded"
		return m, nil

	case pagerClosedMsg:
		if msg.err != nil {
			m.logger.Warn("pager exited with error", zap.Error(msg.err))
		}
		return m, nil

	default:
		var cmds []tea.Cmd
		var spinCmd tea.Cmd
		m.spinner, spinCmd = m.spinner.Update(msg)
		cmds = append(cmds, spinCmd, m.handler.Update(msg))
		return m, tea.Batch(cmds...)
	}
}

func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}
	out, layout := m.renderer.Render(m.viewState())
	m.lastLayout = layout
	m.overlays.SetInputRect(layout.Input)
	m.overlays.SetTriggerRect(layout.Trigger)
	m.overlays.SetSuggestRect(layout.Suggest)
	m.overlays.SetConfigRect(layout.Config)
	return out
}

// planFetches asks the dispatcher which reads the current state wants and
// turns each into a command. Safe to call after any state change: slots
// already settled on the right key refuse to re-begin.
func (m *Model) planFetches() tea.Cmd {
	st := m.controller.State()
	var cmds []tea.Cmd

	if key, start := m.dispatcher.PlanSearch(st); start {
		cmds = append(cmds, m.searchCmd(key, api.SearchQuery{
			Query:     m.dispatcher.DebouncedQuery(),
			Page:      st.Page,
			DateRange: string(st.DateRange),
			Region:    string(st.Region),
			Language:  string(st.Language),
		}))
	}
	if key, start := m.dispatcher.PlanSuggest(st.Query, m.overlays.SuggestionsOpen()); start {
		cmds = append(cmds, m.suggestCmd(key))
	}
	if key, start := m.dispatcher.PlanAnswers(st.Query); start {
		cmds = append(cmds, m.answersCmd(key))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) applyActions(actions []types.Action) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		if cmd := m.applyAction(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) applyAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.ChangeModeAction:
		switch a.Mode {
		case types.ModeSuggest:
			m.suggestIndex = clamp(a.Index, 0, m.visibleSuggestions()-1)
		case types.ModeResults:
			m.resultIndex = clamp(a.Index, 0, len(m.dispatcher.Search.Data())-1)
			m.ensureResultVisible()
		case types.ModeInput:
			m.suggestIndex = -1
			m.resultIndex = -1
		}
		return nil

	case types.UpdateQueryAction:
		m.controller.SetQuery(a.Text)
		m.overlays.OpenSuggestions()
		m.suggestIndex = -1
		gen := m.dispatcher.ObserveQuery(a.Text)
		// Autocomplete and quick answers follow the live text immediately;
		// the main search waits for the debounce timer.
		return tea.Batch(debounceCmd(gen), m.planFetches())

	case types.SubmitQueryAction:
		gen := m.dispatcher.ObserveQuery(m.controller.State().Query)
		m.dispatcher.ElapseDebounce(gen)
		m.overlays.CloseSuggestions()
		m.suggestIndex = -1
		return m.planFetches()

	case types.CommitSuggestionAction:
		suggestions := m.dispatcher.Suggest.Data()
		if a.Index < 0 || a.Index >= len(suggestions) {
			return nil
		}
		text := logic.StripTags(suggestions[a.Index])
		m.handler.SetQueryText(text)
		m.handler.ChangeMode(types.ModeInput)
		m.suggestIndex = -1
		m.controller.SetQuery(text)
		m.overlays.CloseSuggestions()
		gen := m.dispatcher.ObserveQuery(text)
		m.dispatcher.ElapseDebounce(gen)
		return m.planFetches()

	case types.MoveSuggestionAction:
		m.suggestIndex = clamp(m.suggestIndex+a.Delta, 0, m.visibleSuggestions()-1)
		return nil

	case types.MoveResultAction:
		m.resultIndex = clamp(m.resultIndex+a.Delta, 0, len(m.dispatcher.Search.Data())-1)
		m.ensureResultVisible()
		return nil

	case types.CloseOverlaysAction:
		m.overlays.CloseSuggestions()
		m.overlays.CloseConfig()
		m.suggestIndex = -1
		return m.planFetches()

	case types.ToggleConfigAction:
		m.overlays.ToggleConfig()
		if m.overlays.ConfigOpen() {
			m.handler.ChangeMode(types.ModeConfig)
		} else if m.handler.CurrentMode() == types.ModeConfig {
			m.handler.ChangeMode(types.ModeInput)
		}
		return nil

	case types.MoveConfigCursorAction:
		m.configCursor = clamp(m.configCursor+a.Delta, 0, views.ConfigFieldCount-1)
		return nil

	case types.CycleFilterAction:
		st := m.controller.State()
		switch m.configCursor {
		case 0:
			m.controller.SetDateRange(cycle(dateRanges, st.DateRange, a.Delta))
		case 1:
			m.controller.SetRegion(cycle(regions, st.Region, a.Delta))
		case 2:
			m.controller.SetLanguage(cycle(languages, st.Language, a.Delta))
		}
		return m.planFetches()

	case types.PageAction:
		st := m.controller.State()
		if st.Query == "" {
			return nil
		}
		m.controller.SetPage(st.Page + a.Delta)
		m.offset = 0
		m.scroll.Sample(0)
		if m.resultIndex > 0 {
			m.resultIndex = 0
		}
		return m.planFetches()

	case types.OpenResultAction:
		results := m.dispatcher.Search.Data()
		if a.Index < 0 || a.Index >= len(results) {
			return nil
		}
		return m.openResultCmd(results[a.Index])

	case types.ScrollAction:
		page := m.renderer.ListHeight(m.viewState())
		return m.scrollBy(a.Delta * page)

	case types.ToggleHelpAction:
		m.showHelp = !m.showHelp
		return nil

	case types.QuitAction:
		return tea.Quit
	}

	return nil
}

// handleMouse classifies a mouse event: wheel scrolls, a left press runs
// the outside-press dismissal rules and then whatever the press landed on.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m.scrollBy(-wheelLines)
	case tea.MouseButtonWheelDown:
		return m.scrollBy(wheelLines)
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	suggestionsClosed, configClosed := m.overlays.PressAt(msg.X, msg.Y)
	if suggestionsClosed && m.handler.CurrentMode() == types.ModeSuggest {
		m.handler.ChangeMode(types.ModeInput)
		m.suggestIndex = -1
	}
	if configClosed && m.handler.CurrentMode() == types.ModeConfig {
		m.handler.ChangeMode(types.ModeInput)
	}

	switch {
	case m.lastLayout.Trigger.Contains(msg.X, msg.Y):
		return m.applyAction(types.ToggleConfigAction{})

	case m.lastLayout.Input.Contains(msg.X, msg.Y):
		m.handler.ChangeMode(types.ModeInput)
		m.suggestIndex = -1
		m.resultIndex = -1

	case m.overlays.SuggestionsOpen() && m.lastLayout.Suggest.Contains(msg.X, msg.Y):
		idx := msg.Y - m.lastLayout.Suggest.Y
		if idx >= 0 && idx < m.visibleSuggestions() {
			return m.applyAction(types.CommitSuggestionAction{Index: idx})
		}
	}
	return nil
}

// scrollBy moves the result viewport and feeds the new offset to the
// scroll tracker, which decides search bar visibility from the direction.
func (m *Model) scrollBy(lines int) tea.Cmd {
	avail := m.renderer.ListHeight(m.viewState())
	total := len(m.dispatcher.Search.Data()) * views.ResultBlockHeight
	maxOffset := total - avail
	if maxOffset < 0 {
		maxOffset = 0
	}
	m.offset = clamp(m.offset+lines, 0, maxOffset)
	m.scroll.Sample(m.offset)
	return nil
}

// ensureResultVisible scrolls just enough to keep the focused result's
// block fully inside the viewport.
func (m *Model) ensureResultVisible() {
	if m.resultIndex < 0 {
		return
	}
	avail := m.renderer.ListHeight(m.viewState())
	top := m.resultIndex * views.ResultBlockHeight
	bottom := top + views.ResultBlockHeight
	if top < m.offset {
		m.offset = top
	} else if bottom > m.offset+avail {
		m.offset = bottom - avail
	}
	m.scroll.Sample(m.offset)
}

// syncResultFocus reconciles the focused result index with a fresh result
// list. Focus falls back to the input when the list empties.
func (m *Model) syncResultFocus() {
	n := len(m.dispatcher.Search.Data())
	if m.resultIndex >= n {
		m.resultIndex = n - 1
	}
	if n == 0 && m.handler.CurrentMode() == types.ModeResults {
		m.handler.ChangeMode(types.ModeInput)
		m.resultIndex = -1
	}
}

// syncSuggestFocus reconciles logical suggestion focus with a fresh
// suggestion list; when the list empties, focus returns to the input (the
// overlay itself stays open).
func (m *Model) syncSuggestFocus() {
	n := m.visibleSuggestions()
	if m.suggestIndex >= n {
		m.suggestIndex = n - 1
	}
	if n == 0 && m.handler.CurrentMode() == types.ModeSuggest {
		m.handler.ChangeMode(types.ModeInput)
		m.suggestIndex = -1
	}
}

// visibleSuggestions is how many suggestion rows are actually rendered;
// logical focus never moves past them.
func (m *Model) visibleSuggestions() int {
	n := len(m.dispatcher.Suggest.Data())
	if n > views.MaxSuggestionRows {
		n = views.MaxSuggestionRows
	}
	return n
}

// viewState snapshots everything the renderer needs.
func (m *Model) viewState() views.ViewState {
	st := m.controller.State()

	marked := m.suggestIndex
	if marked < 0 {
		// With no logical focus, the row matching the typed text (markup
		// aside) carries the selected indicator.
		marked = logic.ActiveSuggestion(m.dispatcher.Suggest.Data(), st.Query)
	}

	searchErr := ""
	if err := m.dispatcher.Search.Err(); err != nil {
		searchErr = err.Error()
	}

	return views.ViewState{
		Width:  m.width,
		Height: m.height,

		BarHidden: m.scroll.Hidden(),
		InputView: m.handler.TextInput().View(),

		SuggestionsOpen:  m.overlays.SuggestionsOpen(),
		Suggestions:      m.dispatcher.Suggest.Data(),
		MarkedSuggestion: marked,
		SuggestLoading:   m.dispatcher.Suggest.IsLoading(),

		ConfigOpen:   m.overlays.ConfigOpen(),
		ConfigCursor: m.configCursor,
		DateRange:    displayFilter(string(st.DateRange)),
		Region:       displayFilter(string(st.Region)),
		Language:     displayFilter(string(st.Language)),

		Answers:       m.dispatcher.Answers.Data(),
		Results:       m.dispatcher.Search.Data(),
		FocusedResult: m.resultIndex,
		Offset:        m.offset,
		SearchLoading: m.dispatcher.Search.IsLoading(),
		SearchErr:     searchErr,
		Spinner:       m.spinner.View(),

		ShowHelp:      m.showHelp,
		Link:          m.controller.Link(),
		Page:          st.Page,
		StatusMessage: m.status,
	}
}

// Context implementation for the mode handlers.

func (m *Model) QueryText() string      { return m.controller.State().Query }
func (m *Model) SuggestionsOpen() bool  { return m.overlays.SuggestionsOpen() }
func (m *Model) SuggestionCount() int   { return m.visibleSuggestions() }
func (m *Model) CurrentSuggestion() int { return m.suggestIndex }
func (m *Model) ResultCount() int       { return len(m.dispatcher.Search.Data()) }
func (m *Model) CurrentResult() int     { return m.resultIndex }
func (m *Model) ConfigOpen() bool       { return m.overlays.ConfigOpen() }
func (m *Model) ConfigCursor() int      { return m.configCursor }

var (
	dateRanges = []session.DateRange{
		session.DateRangeNone, session.DateRangeDay, session.DateRangeWeek,
		session.DateRangeMonth, session.DateRangeYear,
	}
	regions   = []session.Region{session.RegionNone, session.RegionFR, session.RegionUS, session.RegionUK}
	languages = []session.Language{session.LanguageNone, session.LanguageFR, session.LanguageEN}
)

// cycle steps through vals from cur by delta, wrapping at both ends.
func cycle[T comparable](vals []T, cur T, delta int) T {
	idx := 0
	for i, v := range vals {
		if v == cur {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(vals)) % len(vals)
	return vals[idx]
}

func displayFilter(s string) string {
	if s == "" {
		return "any"
	}
	return s
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
