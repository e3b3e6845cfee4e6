package views

import (
	"fmt"
	"strings"

	"metaseek/internal/api"
)

// AnswerRenderer draws the quick-answer box above the result list.
type AnswerRenderer struct {
	styles *Styles
}

func NewAnswerRenderer(styles *Styles) *AnswerRenderer {
	return &AnswerRenderer{styles: styles}
}

// Render returns the boxed quick answers, or "" when there are none —
// quick-answer failures degrade to exactly this same nothing.
func (ar *AnswerRenderer) Render(answers []api.QuickAnswer, width int) string {
	if len(answers) == 0 {
		return ""
	}

	var rows []string
	for i, a := range answers {
		if i > 0 {
			rows = append(rows, "")
		}
		rows = append(rows, fmt.Sprintf("%s  %s",
			ar.styles.AnswerTerm.Render(a.Term),
			ar.styles.AnswerSource.Render(a.AnswerType)))
		rows = append(rows, truncate(a.Definition, width-6))
		rows = append(rows, ar.styles.AnswerSource.Render("— "+a.Source))
	}
	return ar.styles.AnswerBox.Width(min(width-2, 76)).Render(strings.Join(rows, "\n"))
}
