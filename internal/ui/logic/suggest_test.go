package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"<b>cat</b> food", "cat food"},
		{"<em>cat</em><b>s</b>", "cats"},
		{"no tags at all", "no tags at all"},
		{"<b></b>", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripTags(tt.in))
	}
}

func TestActiveSuggestionMatchesOnVisibleTextOnly(t *testing.T) {
	suggestions := []string{"<b>cat</b> food", "<b>cat</b>s", "catalog"}

	assert.Equal(t, 1, ActiveSuggestion(suggestions, "cats"))
	assert.Equal(t, 0, ActiveSuggestion(suggestions, "cat food"))
	assert.Equal(t, -1, ActiveSuggestion(suggestions, "dogs"))
}

func TestActiveSuggestionIgnoresMarkupDifferences(t *testing.T) {
	// Different markup around identical visible text selects the same way.
	a := []string{"<b>ca</b>ts"}
	b := []string{"c<em>at</em>s"}
	assert.Equal(t, 0, ActiveSuggestion(a, "cats"))
	assert.Equal(t, 0, ActiveSuggestion(b, "cats"))
}

func TestHighlightSplit(t *testing.T) {
	runs := HighlightSplit("<b>cat</b> food")
	assert.Equal(t, []HighlightRun{
		{Text: "cat", Highlighted: true},
		{Text: " food"},
	}, runs)

	runs = HighlightSplit("plain")
	assert.Equal(t, []HighlightRun{{Text: "plain"}}, runs)
}

func TestScrollTrackerDirection(t *testing.T) {
	var tr ScrollTracker

	assert.False(t, tr.Sample(0), "no movement keeps the bar visible")
	assert.True(t, tr.Sample(5), "scrolling down hides")
	assert.True(t, tr.Sample(9), "still going down")
	assert.False(t, tr.Sample(4), "scrolling up reveals")
	assert.False(t, tr.Sample(4), "no delta reveals")
	assert.True(t, tr.Sample(5), "one row down hides again — no hysteresis")
}
