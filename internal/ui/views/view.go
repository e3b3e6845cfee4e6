package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"metaseek/internal/api"
	"metaseek/internal/ui/overlay"
)

const footerLines = 2

// ViewState contains all the state needed for rendering.
type ViewState struct {
	Width  int
	Height int

	// Search bar
	BarHidden bool
	InputView string

	// Suggestion overlay
	SuggestionsOpen  bool
	Suggestions      []string
	MarkedSuggestion int // row carrying the selected indicator, -1 none
	SuggestLoading   bool

	// Filter popover
	ConfigOpen   bool
	ConfigCursor int
	DateRange    string
	Region       string
	Language     string

	// Data
	Answers       []api.QuickAnswer
	Results       []api.Result
	FocusedResult int // -1 unless a result link holds focus
	Offset        int // line offset into the rendered result list
	SearchLoading bool
	SearchErr     string
	Spinner       string

	// Chrome
	ShowHelp      bool
	Link          string
	Page          int
	StatusMessage string
}

// Layout reports where the interactive regions were rendered, for
// outside-press hit testing.
type Layout struct {
	Input   overlay.Rect
	Trigger overlay.Rect
	Suggest overlay.Rect
	Config  overlay.Rect
}

// Renderer handles all view rendering.
type Renderer struct {
	styles  *Styles
	suggest *SuggestionRenderer
	results *ResultRenderer
	answers *AnswerRenderer
	popover *PopoverRenderer
}

// NewRenderer creates a new renderer.
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:  styles,
		suggest: NewSuggestionRenderer(styles),
		results: NewResultRenderer(styles),
		answers: NewAnswerRenderer(styles),
		popover: NewPopoverRenderer(styles),
	}
}

// Results exposes the result renderer (pager detail view).
func (r *Renderer) Results() *ResultRenderer {
	return r.results
}

// Render produces the complete view plus the rendered layout.
func (r *Renderer) Render(st ViewState) (string, Layout) {
	if st.ShowHelp {
		return r.popover.RenderHelp(st.Width, st.Height), Layout{}
	}

	var lines []string
	var layout Layout
	row := 0

	if !st.BarHidden {
		bar, inputRect, triggerRect := r.renderBar(st, row)
		layout.Input = inputRect
		layout.Trigger = triggerRect
		lines = append(lines, bar)
		row++
	}

	if st.ConfigOpen {
		popLines := strings.Split(r.popover.RenderConfig(st.DateRange, st.Region, st.Language, st.ConfigCursor), "\n")
		layout.Config = overlay.Rect{X: 0, Y: row, W: lipgloss.Width(popLines[0]), H: len(popLines)}
		lines = append(lines, popLines...)
		row += len(popLines)
	}

	if st.SuggestionsOpen {
		sugLines := r.suggest.Render(st.Suggestions, st.MarkedSuggestion, st.SuggestLoading, st.Width)
		layout.Suggest = overlay.Rect{X: 0, Y: row, W: st.Width, H: len(sugLines)}
		lines = append(lines, sugLines...)
		row += len(sugLines)
	}

	lines = append(lines, "")
	row++

	for _, l := range r.contentHead(st) {
		lines = append(lines, l)
		row++
	}

	avail := st.Height - row - footerLines
	if avail < 1 {
		avail = 1
	}
	lines = append(lines, r.windowedResults(st, avail)...)

	lines = append(lines, r.renderFooter(st))
	return strings.Join(lines, "\n"), layout
}

// renderBar draws the search bar row: the query input with the filter
// trigger control right-aligned.
func (r *Renderer) renderBar(st ViewState, row int) (string, overlay.Rect, overlay.Rect) {
	trigger := "[^f] filters "
	style := r.styles.Trigger
	if st.ConfigOpen {
		style = r.styles.TriggerActive
	}
	triggerW := lipgloss.Width(trigger)

	inputW := st.Width - triggerW
	if inputW < 10 {
		inputW = 10
	}
	input := st.InputView
	if st.Spinner != "" && st.SearchLoading {
		input += " " + st.Spinner
	}
	gap := inputW - lipgloss.Width(input)
	if gap < 0 {
		gap = 0
	}
	bar := input + strings.Repeat(" ", gap) + style.Render(trigger)

	inputRect := overlay.Rect{X: 0, Y: row, W: inputW, H: 1}
	triggerRect := overlay.Rect{X: inputW, Y: row, W: triggerW, H: 1}
	return bar, inputRect, triggerRect
}

// contentHead renders everything between the overlays and the result
// window: quick answers, then the search slot's own status line.
func (r *Renderer) contentHead(st ViewState) []string {
	var lines []string

	if box := r.answers.Render(st.Answers, st.Width); box != "" {
		lines = append(lines, strings.Split(box, "\n")...)
		lines = append(lines, "")
	}

	switch {
	case st.SearchErr != "":
		// Only the search slot surfaces errors inline; the other two
		// degrade silently.
		lines = append(lines, r.styles.StatusError.Render("search failed: "+st.SearchErr), "")
	case st.SearchLoading && len(st.Results) == 0:
		lines = append(lines, r.styles.StatusLoading.Render(st.Spinner+" searching…"), "")
	}
	return lines
}

// windowedResults renders the visible slice of the result list.
func (r *Renderer) windowedResults(st ViewState, avail int) []string {
	var all []string
	for i, res := range st.Results {
		all = append(all, r.results.RenderBlock(res, i == st.FocusedResult, st.Width)...)
	}

	if len(all) <= avail {
		return padTo(all, avail)
	}

	offset := st.Offset
	maxOffset := len(all) - avail
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}

	window := make([]string, avail)
	copy(window, all[offset:offset+avail])
	if offset > 0 {
		window[0] = r.styles.Dim.Render("↑ more")
	}
	if offset+avail < len(all) {
		window[avail-1] = r.styles.Dim.Render("↓ more")
	}
	return window
}

// renderFooter draws the status line plus the deep-link line.
func (r *Renderer) renderFooter(st ViewState) string {
	var parts []string
	if len(st.Results) > 0 {
		parts = append(parts, fmt.Sprintf("%d results", len(st.Results)))
	}
	if st.Page > 1 || len(st.Results) > 0 {
		parts = append(parts, fmt.Sprintf("page %d", st.Page))
	}
	if st.StatusMessage != "" {
		parts = append(parts, st.StatusMessage)
	}
	status := r.styles.Status.Render(strings.Join(parts, " · "))

	link := ""
	if st.Link != "" {
		link = r.styles.DeepLink.Render("?" + st.Link)
	}
	return status + "\n" + link
}

// ListHeight returns how many result lines fit below the overlays, so the
// model can keep the focused result visible. Must mirror Render's math.
func (r *Renderer) ListHeight(st ViewState) int {
	row := 0
	if !st.BarHidden {
		row++
	}
	if st.ConfigOpen {
		row += len(strings.Split(r.popover.RenderConfig(st.DateRange, st.Region, st.Language, st.ConfigCursor), "\n"))
	}
	if st.SuggestionsOpen {
		row += len(r.suggest.Render(st.Suggestions, st.MarkedSuggestion, st.SuggestLoading, st.Width))
	}
	row++ // separator
	row += len(r.contentHead(st))

	avail := st.Height - row - footerLines
	if avail < 1 {
		avail = 1
	}
	return avail
}

func padTo(lines []string, n int) []string {
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}
