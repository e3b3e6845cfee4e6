package logic

import (
	"regexp"
	"strings"
)

// Suggestions arrive with simple markup tags around the highlighted part
// (e.g. "<b>cat</b> food"). All comparison and commit logic works on the
// visible text only.
var tagRE = regexp.MustCompile(`<[^>]*>`)

// StripTags removes embedded markup tags, leaving the visible text.
func StripTags(s string) string {
	return tagRE.ReplaceAllString(s, "")
}

// ActiveSuggestion returns the index of the suggestion whose visible text
// equals the current query, or -1. Exactly this index carries the
// selected marker when no manual selection is in play.
func ActiveSuggestion(suggestions []string, query string) int {
	for i, s := range suggestions {
		if StripTags(s) == query {
			return i
		}
	}
	return -1
}

// HighlightSplit splits a suggestion into the runs of plain and tagged
// text, in order, so the renderer can style the highlighted parts. The
// bool is true for runs that were inside a tag pair.
func HighlightSplit(s string) []HighlightRun {
	var runs []HighlightRun
	rest := s
	for rest != "" {
		loc := tagRE.FindStringIndex(rest)
		if loc == nil {
			runs = append(runs, HighlightRun{Text: rest})
			break
		}
		if loc[0] > 0 {
			runs = append(runs, HighlightRun{Text: rest[:loc[0]]})
		}
		open := rest[loc[0]:loc[1]]
		rest = rest[loc[1]:]
		if strings.HasPrefix(open, "</") {
			// Stray closing tag, skip it.
			continue
		}
		// Find the matching close; unterminated markup falls back to plain.
		closeLoc := tagRE.FindStringIndex(rest)
		if closeLoc == nil {
			runs = append(runs, HighlightRun{Text: rest})
			break
		}
		if closeLoc[0] > 0 {
			runs = append(runs, HighlightRun{Text: rest[:closeLoc[0]], Highlighted: true})
		}
		rest = rest[closeLoc[1]:]
	}
	return runs
}

// HighlightRun is one styled span of a suggestion string.
type HighlightRun struct {
	Text        string
	Highlighted bool
}
