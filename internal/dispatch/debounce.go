package dispatch

import "time"

// DebounceWindow is how long input must be quiet before the live query is
// promoted to the debounced query that keys the main search.
const DebounceWindow = 300 * time.Millisecond

// Debouncer is a generation-counted projection of the query text. Every
// keystroke bumps the generation; a timer tick only promotes the live text
// when it still carries the current generation, so rapid typing settles to
// at most one promotion per pause. Autocomplete and quick answers bypass
// this entirely and key off the live text.
type Debouncer struct {
	gen     int
	live    string
	settled string
}

// NewDebouncer starts with the given text already settled, so a query
// arriving via a deep link searches immediately instead of waiting out a
// window nobody is typing in.
func NewDebouncer(initial string) *Debouncer {
	return &Debouncer{live: initial, settled: initial}
}

// Observe records a new live text and returns the generation a pending
// timer must present to win. Observing the current live text still bumps
// the generation, restarting the window.
func (d *Debouncer) Observe(text string) int {
	d.gen++
	d.live = text
	return d.gen
}

// Elapse is called when a debounce timer fires. Stale generations lose;
// only the latest promotes the live text and reports true.
func (d *Debouncer) Elapse(gen int) bool {
	if gen != d.gen {
		return false
	}
	d.settled = d.live
	return true
}

// Generation returns the current (latest) generation.
func (d *Debouncer) Generation() int { return d.gen }

// Settled returns the debounced query text.
func (d *Debouncer) Settled() string { return d.settled }

// Live returns the undebounced query text.
func (d *Debouncer) Live() string { return d.live }
