package app

// Result is the outcome of a use case that can fail for expected reasons.
// It is either a success carrying data or a failure carrying a
// human-readable message, never both.
type Result[T any] struct {
	ok      bool
	data    T
	message string
}

// Ok returns a successful result.
func Ok[T any](data T) Result[T] {
	return Result[T]{ok: true, data: data}
}

// Fail returns a failed result with a message suitable for display.
func Fail[T any](message string) Result[T] {
	return Result[T]{message: message}
}

func (r Result[T]) Success() bool { return r.ok }

// Data returns the payload and whether the result succeeded.
func (r Result[T]) Data() (T, bool) {
	return r.data, r.ok
}

// Message is the failure message. It is empty for successful results.
func (r Result[T]) Message() string {
	if r.ok {
		return ""
	}
	return r.message
}
