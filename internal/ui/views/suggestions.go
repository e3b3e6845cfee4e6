package views

import (
	"strings"

	"metaseek/internal/ui/logic"
)

// MaxSuggestionRows is how many dropdown rows render at most; the backend
// rarely sends more. Logical focus is clamped to this window too, so the
// selected marker always sits on a visible row.
const MaxSuggestionRows = 8

// SuggestionRenderer draws the autocomplete dropdown.
type SuggestionRenderer struct {
	styles *Styles
}

func NewSuggestionRenderer(styles *Styles) *SuggestionRenderer {
	return &SuggestionRenderer{styles: styles}
}

// Render returns the dropdown lines. marked is the single row carrying the
// selected indicator (logical focus when present, otherwise the row whose
// visible text equals the query), -1 for none. The dropdown deliberately
// renders even with zero rows — an open overlay with no items stays
// visible until it is explicitly dismissed.
func (sr *SuggestionRenderer) Render(suggestions []string, marked int, loading bool, width int) []string {
	if len(suggestions) == 0 {
		hint := "no suggestions"
		if loading {
			hint = "…"
		}
		return []string{"  " + sr.styles.SuggestionDim.Render(hint)}
	}

	rows := suggestions
	if len(rows) > MaxSuggestionRows {
		rows = rows[:MaxSuggestionRows]
	}

	lines := make([]string, 0, len(rows))
	for i, s := range rows {
		if i == marked {
			lines = append(lines, sr.styles.FocusIndicator.Render("▸ ")+
				sr.styles.SuggestionSel.Render(logic.StripTags(s)))
			continue
		}
		lines = append(lines, "  "+sr.renderRuns(s))
	}
	return lines
}

// renderRuns styles the tag-highlighted spans of one suggestion.
func (sr *SuggestionRenderer) renderRuns(s string) string {
	var b strings.Builder
	for _, run := range logic.HighlightSplit(s) {
		if run.Highlighted {
			b.WriteString(sr.styles.SuggestionHi.Render(run.Text))
		} else {
			b.WriteString(sr.styles.Suggestion.Render(run.Text))
		}
	}
	return b.String()
}
