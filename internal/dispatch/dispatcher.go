package dispatch

import (
	"fmt"
	"unicode/utf8"

	"metaseek/internal/api"
	"metaseek/internal/session"
)

// Autocomplete only fires once the query is longer than this many runes.
const minSuggestLen = 2

// Dispatcher owns the three backend reads as keyed slots and decides, from
// current session state, which of them to (re)issue. It performs no I/O
// itself; the UI layer turns a true Plan* result into a fetch command and
// feeds the outcome back through the slot.
type Dispatcher struct {
	Search  Slot[[]api.Result]
	Suggest Slot[[]string]
	Answers Slot[[]api.QuickAnswer]

	debounce *Debouncer
}

// NewDispatcher seeds the debouncer with the startup query so a deep link
// searches without waiting for typing that never happened.
func NewDispatcher(initialQuery string) *Dispatcher {
	return &Dispatcher{debounce: NewDebouncer(initialQuery)}
}

// ObserveQuery registers a keystroke and returns the debounce generation
// the caller should schedule a timer for.
func (d *Dispatcher) ObserveQuery(text string) int {
	return d.debounce.Observe(text)
}

// ElapseDebounce promotes the live query if gen is still current.
func (d *Dispatcher) ElapseDebounce(gen int) bool {
	return d.debounce.Elapse(gen)
}

// DebounceGeneration returns the latest debounce generation.
func (d *Dispatcher) DebounceGeneration() int {
	return d.debounce.Generation()
}

// DebouncedQuery returns the settled query text that keys the main search.
func (d *Dispatcher) DebouncedQuery() string {
	return d.debounce.Settled()
}

// SearchKey composes the identity of a search read from everything that
// affects it.
func SearchKey(debounced string, st session.State) string {
	return fmt.Sprintf("%s|%d|%s|%s|%s", debounced, st.Page, st.DateRange, st.Region, st.Language)
}

// PlanSearch decides whether a new search read should be issued for the
// current state. A disabled search (empty debounced query) clears the slot.
func (d *Dispatcher) PlanSearch(st session.State) (key string, start bool) {
	debounced := d.debounce.Settled()
	if debounced == "" {
		d.Search.Disable()
		return "", false
	}
	key = SearchKey(debounced, st)
	return key, d.Search.Begin(key)
}

// PlanSuggest decides whether an autocomplete read should be issued. It
// keys off the live query and only runs while the suggestion overlay is
// open and the query is longer than two runes.
func (d *Dispatcher) PlanSuggest(query string, overlayOpen bool) (key string, start bool) {
	if !overlayOpen || utf8.RuneCountInString(query) <= minSuggestLen {
		d.Suggest.Disable()
		return "", false
	}
	return query, d.Suggest.Begin(query)
}

// PlanAnswers decides whether a quick-answer read should be issued; it keys
// off the live query and is disabled only when the query is empty.
func (d *Dispatcher) PlanAnswers(query string) (key string, start bool) {
	if query == "" {
		d.Answers.Disable()
		return "", false
	}
	return query, d.Answers.Begin(query)
}
