// Package load models the lifecycle of an asynchronously fetched value.
package load

// State is a tagged variant over the four phases of an async fetch:
// not requested, in flight, loaded, failed. A slot of this type is the only
// representation of remote data in the application; there are no separate
// "is loading" booleans to fall out of sync with the payload.
type State[T any] struct {
	kind  kind
	value T
	err   error
}

type kind int

const (
	kindNotRequested kind = iota
	kindLoading
	kindLoaded
	kindFailed
)

// NotRequested returns the zero phase: nothing has been asked for.
func NotRequested[T any]() State[T] {
	return State[T]{kind: kindNotRequested}
}

// Loading marks a request as in flight.
func Loading[T any]() State[T] {
	return State[T]{kind: kindLoading}
}

// Loaded wraps a successfully fetched value.
func Loaded[T any](value T) State[T] {
	return State[T]{kind: kindLoaded, value: value}
}

// Failed wraps a fetch failure.
func Failed[T any](err error) State[T] {
	return State[T]{kind: kindFailed, err: err}
}

// Value returns the loaded value and whether the state is Loaded.
func (s State[T]) Value() (T, bool) {
	return s.value, s.kind == kindLoaded
}

// Err returns the failure and whether the state is Failed.
func (s State[T]) Err() (error, bool) {
	return s.err, s.kind == kindFailed
}

// IsNotRequested reports whether nothing has been requested yet.
func (s State[T]) IsNotRequested() bool { return s.kind == kindNotRequested }

// IsLoading reports whether a request is in flight.
func (s State[T]) IsLoading() bool { return s.kind == kindLoading }

// IsLoaded reports whether a value is available.
func (s State[T]) IsLoaded() bool { return s.kind == kindLoaded }

// IsFailed reports whether the last request failed.
func (s State[T]) IsFailed() bool { return s.kind == kindFailed }

// String describes the phase for logs and tests.
func (s State[T]) String() string {
	switch s.kind {
	case kindLoading:
		return "loading"
	case kindLoaded:
		return "loaded"
	case kindFailed:
		return "failed"
	default:
		return "not-requested"
	}
}
