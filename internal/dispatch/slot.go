package dispatch

// Status is the lifecycle state of a slot's latest read.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusSuccess
	StatusError
)

// Slot is a keyed asynchronous read and its latest settled outcome. A new
// key supersedes whatever is in flight; resolutions carrying any other key
// are dropped silently. That key comparison is the whole cancellation
// story: in-flight requests are never aborted, their results just stop
// mattering.
type Slot[T any] struct {
	key    string
	status Status
	data   T
	err    error
}

// Begin claims the slot for the given key. It returns true when the caller
// should actually issue the fetch, which is only the case for a key the
// slot has not seen. Re-beginning the current key is a no-op — including
// after an error, since a failed read retries only once its key changes.
func (s *Slot[T]) Begin(key string) bool {
	if s.status != StatusIdle && key == s.key {
		return false
	}
	s.key = key
	s.status = StatusPending
	s.err = nil
	return true
}

// Resolve applies the outcome of the fetch issued for key. Stale keys are
// ignored, success and failure alike, and the previous data survives. The
// return value reports whether the outcome was applied.
func (s *Slot[T]) Resolve(key string, data T, err error) bool {
	if key != s.key || s.status != StatusPending {
		return false
	}
	if err != nil {
		s.status = StatusError
		s.err = err
		return true
	}
	s.status = StatusSuccess
	s.data = data
	return true
}

// Disable clears the slot back to idle with zero data. Used when the
// read's enabling condition no longer holds (e.g. the query went empty);
// any in-flight response is superseded by the key reset.
func (s *Slot[T]) Disable() {
	var zero T
	s.key = ""
	s.status = StatusIdle
	s.data = zero
	s.err = nil
}

// Key returns the key of the latest issued read.
func (s *Slot[T]) Key() string { return s.key }

// Status returns the slot's lifecycle state.
func (s *Slot[T]) Status() Status { return s.status }

// IsLoading reports whether a read is in flight.
func (s *Slot[T]) IsLoading() bool { return s.status == StatusPending }

// Data returns the latest successful payload (zero value until one lands).
func (s *Slot[T]) Data() T { return s.data }

// Err returns the latest error, nil unless the current key failed.
func (s *Slot[T]) Err() error { return s.err }
