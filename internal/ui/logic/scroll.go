package logic

// ScrollTracker decides search bar visibility from scroll direction: any
// downward sample hides it, anything else reveals it. Pure sign of the
// delta, no hysteresis band.
type ScrollTracker struct {
	last   int
	hidden bool
}

// Sample feeds the current vertical offset and returns whether the search
// bar should now be hidden.
func (t *ScrollTracker) Sample(offset int) bool {
	t.hidden = offset > t.last
	t.last = offset
	return t.hidden
}

// Hidden reports the current visibility decision.
func (t *ScrollTracker) Hidden() bool { return t.hidden }
