package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metaseek/internal/session"
)

func TestDebouncerSettlesOncePerPause(t *testing.T) {
	d := NewDebouncer("")

	// "cat" then "cats" within one window: only the second generation wins.
	gen1 := d.Observe("cat")
	gen2 := d.Observe("cats")

	assert.False(t, d.Elapse(gen1), "superseded keystroke timer must lose")
	assert.Equal(t, "", d.Settled())

	require.True(t, d.Elapse(gen2))
	assert.Equal(t, "cats", d.Settled())
}

func TestDebouncerInitialQuerySettled(t *testing.T) {
	d := NewDebouncer("from deep link")
	assert.Equal(t, "from deep link", d.Settled())
}

func TestOneSearchPerDebounceWindow(t *testing.T) {
	disp := NewDispatcher("")
	st := session.State{Page: 1}

	var issued []string

	// Typing "cat" then "cats" within the window.
	gen1 := disp.ObserveQuery("cat")
	st.Query = "cat"
	if key, start := disp.PlanSearch(st); start {
		issued = append(issued, key)
	}
	gen2 := disp.ObserveQuery("cats")
	st.Query = "cats"
	if key, start := disp.PlanSearch(st); start {
		issued = append(issued, key)
	}

	// No timer has elapsed yet: nothing issued.
	assert.Empty(t, issued)

	// The stale timer fires first and is ignored.
	assert.False(t, disp.ElapseDebounce(gen1))
	require.True(t, disp.ElapseDebounce(gen2))
	if key, start := disp.PlanSearch(st); start {
		issued = append(issued, key)
	}

	require.Len(t, issued, 1, "exactly one search per debounce window")
	assert.Equal(t, SearchKey("cats", st), issued[0])
}

func TestSearchDisabledOnEmptyDebouncedQuery(t *testing.T) {
	disp := NewDispatcher("cats")
	st := session.State{Query: "cats", Page: 1}

	key, start := disp.PlanSearch(st)
	require.True(t, start)
	require.True(t, disp.Search.Resolve(key, nil, nil))

	gen := disp.ObserveQuery("")
	require.True(t, disp.ElapseDebounce(gen))
	st.Query = ""
	st.Page = 1

	_, start = disp.PlanSearch(st)
	assert.False(t, start)
	assert.Equal(t, StatusIdle, disp.Search.Status())
}

func TestSearchKeyIncludesAllParameters(t *testing.T) {
	base := session.State{Query: "cats", Page: 1}
	withPage := base
	withPage.Page = 2
	withRegion := base
	withRegion.Region = session.RegionFR

	k1 := SearchKey("cats", base)
	assert.NotEqual(t, k1, SearchKey("cats", withPage))
	assert.NotEqual(t, k1, SearchKey("cats", withRegion))
	assert.NotEqual(t, k1, SearchKey("cat", base))
}

func TestPlanSuggestGating(t *testing.T) {
	disp := NewDispatcher("")

	// Overlay closed: disabled regardless of length.
	_, start := disp.PlanSuggest("cats", false)
	assert.False(t, start)

	// Too short even with the overlay open ("ca" is 2 runes).
	_, start = disp.PlanSuggest("ca", true)
	assert.False(t, start)

	// Three runes is enough — "cat" fires.
	key, start := disp.PlanSuggest("cat", true)
	assert.True(t, start)
	assert.Equal(t, "cat", key)

	// No debounce on autocomplete: the very next keystroke fires too.
	key, start = disp.PlanSuggest("cats", true)
	assert.True(t, start)
	assert.Equal(t, "cats", key)
}

func TestPlanAnswersGating(t *testing.T) {
	disp := NewDispatcher("")

	_, start := disp.PlanAnswers("")
	assert.False(t, start)

	key, start := disp.PlanAnswers("cat")
	assert.True(t, start)
	assert.Equal(t, "cat", key)

	// Same key again: already issued, no duplicate fetch.
	_, start = disp.PlanAnswers("cat")
	assert.False(t, start)
}

func TestSuggestSupersededByNewerQuery(t *testing.T) {
	disp := NewDispatcher("")

	key1, start := disp.PlanSuggest("cat", true)
	require.True(t, start)
	key2, start := disp.PlanSuggest("cats", true)
	require.True(t, start)

	// The older fetch lands after the newer one: dropped.
	require.True(t, disp.Suggest.Resolve(key2, []string{"cats videos"}, nil))
	assert.False(t, disp.Suggest.Resolve(key1, []string{"cat food"}, nil))
	assert.Equal(t, []string{"cats videos"}, disp.Suggest.Data())
}
