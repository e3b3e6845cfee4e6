package views

import (
	"fmt"
	"strings"

	"metaseek/internal/api"
)

// Each result renders as a fixed-height block so offsets stay a pure
// function of the index.
const ResultBlockHeight = 4

// ResultRenderer draws the ranked result list.
type ResultRenderer struct {
	styles *Styles
}

func NewResultRenderer(styles *Styles) *ResultRenderer {
	return &ResultRenderer{styles: styles}
}

// RenderBlock renders one result as exactly ResultBlockHeight lines.
// focused marks the result link that holds real keyboard focus.
func (rr *ResultRenderer) RenderBlock(res api.Result, focused bool, width int) []string {
	title := truncate(res.Title, width-4)
	var titleLine string
	if focused {
		titleLine = rr.styles.FocusIndicator.Render("▸ ") + rr.styles.TitleFocused.Render(title)
	} else {
		titleLine = "  " + rr.styles.Title.Render(title)
	}

	meta := rr.metaLine(res, width)
	snippet := "  " + rr.styles.Snippet.Render(truncate(res.Snippet, width-2))

	return []string{titleLine, meta, snippet, ""}
}

// metaLine prefers breadcrumbs, then site name, then the bare link.
func (rr *ResultRenderer) metaLine(res api.Result, width int) string {
	var parts []string
	if len(res.Breadcrumbs) > 0 {
		crumbs := make([]string, 0, len(res.Breadcrumbs))
		for _, bc := range res.Breadcrumbs {
			crumbs = append(crumbs, bc.Text)
		}
		parts = append(parts, rr.styles.Breadcrumb.Render(strings.Join(crumbs, " › ")))
	} else if res.SiteName != "" {
		parts = append(parts, rr.styles.SiteName.Render(res.SiteName))
	}
	parts = append(parts, rr.styles.Link.Render(truncate(res.Link, width/2)))
	return "  " + strings.Join(parts, rr.styles.Dim.Render(" — "))
}

// RenderDetail renders the full record of one result for the pager.
func (rr *ResultRenderer) RenderDetail(res api.Result, answers []api.QuickAnswer) string {
	var b strings.Builder
	b.WriteString(rr.styles.TitleFocused.Render(res.Title))
	b.WriteString("\n\n")
	b.WriteString(rr.styles.Link.Render(res.Link))
	b.WriteString("\n")
	if len(res.Breadcrumbs) > 0 {
		for _, bc := range res.Breadcrumbs {
			b.WriteString(rr.styles.Breadcrumb.Render(fmt.Sprintf("  %s (%s)", bc.Text, bc.URL)))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(rr.styles.Snippet.Render(res.Snippet))
	b.WriteString("\n\n")
	b.WriteString(rr.styles.Dim.Render(fmt.Sprintf("source: %s", res.Source)))
	b.WriteString("\n")
	if res.SiteName != "" {
		b.WriteString(rr.styles.Dim.Render(fmt.Sprintf("site: %s", res.SiteName)))
		b.WriteString("\n")
	}
	b.WriteString(rr.styles.Dim.Render(fmt.Sprintf("score: %.3f", res.Score)))
	b.WriteString("\n")

	if len(answers) > 0 {
		b.WriteString("\n")
		b.WriteString(rr.styles.AnswerTerm.Render("Quick answers"))
		b.WriteString("\n")
		for _, a := range answers {
			b.WriteString(fmt.Sprintf("  %s — %s\n", rr.styles.AnswerTerm.Render(a.Term), a.Definition))
			b.WriteString(rr.styles.AnswerSource.Render(fmt.Sprintf("    %s, %s", a.AnswerType, a.Source)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// truncate cuts s to at most w runes, appending an ellipsis when cut.
func truncate(s string, w int) string {
	if w < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= w {
		return s
	}
	if w == 1 {
		return "…"
	}
	return string(runes[:w-1]) + "…"
}
