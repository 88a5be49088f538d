// Package fun provides the Result type: a two-variant success/failure
// outcome value with monadic combinators.
//
// A Result carries either a success value or a failure message, never both.
// Expected, recoverable conditions travel as Fail values; misusing an
// accessor (Get on a failure, Err on a success) is a programming error and
// panics with a *StateError rather than returning a domain failure.
//
// Map, FlatMap, and Fold change the value type and therefore live as
// package-level generic functions — Go methods cannot introduce new type
// parameters.
package fun

import "fmt"

// Result is the outcome of a computation: either a success value or a
// failure message. The zero value is a failure with an empty message;
// prefer the Ok and Fail constructors.
type Result[T any] struct {
	value T
	msg   string
	ok    bool
}

// Ok creates a successful Result holding value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Fail creates a failed Result carrying message.
func Fail[T any](message string) Result[T] {
	return Result[T]{msg: message}
}

// IsSuccess reports whether the Result holds a value.
func (r Result[T]) IsSuccess() bool { return r.ok }

// IsFailure reports whether the Result holds a failure message.
func (r Result[T]) IsFailure() bool { return !r.ok }

// Get returns the success value.
// Panics with a *StateError if the Result is a failure.
func (r Result[T]) Get() T {
	if !r.ok {
		panic(&StateError{Op: "Get", Msg: "Get called on failure result: " + r.msg})
	}
	return r.value
}

// Err returns the failure message.
// Panics with a *StateError if the Result is a success.
func (r Result[T]) Err() string {
	if r.ok {
		panic(&StateError{Op: "Err", Msg: "Err called on success result"})
	}
	return r.msg
}

// String renders the Result as Ok(value) or Fail(message).
func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return "Fail(" + r.msg + ")"
}

// Map applies f to the success value, producing a new success.
// On failure f is never invoked and the failure is carried over unchanged.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if !r.ok {
		return Fail[U](r.msg)
	}
	return Ok(f(r.value))
}

// FlatMap applies f (which itself returns a Result) to the success value
// and returns that Result directly. On failure f is never invoked and the
// original failure is returned unchanged.
func FlatMap[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if !r.ok {
		return Fail[U](r.msg)
	}
	return f(r.value)
}

// Fold collapses the Result into a single value. Exactly one of the two
// branches runs: onFailure with the message, or onSuccess with the value.
func Fold[T, U any](r Result[T], onFailure func(string) U, onSuccess func(T) U) U {
	if !r.ok {
		return onFailure(r.msg)
	}
	return onSuccess(r.value)
}

// StateError reports misuse of a Result accessor. It is raised by panic
// and is deliberately distinct from domain failures, which are Fail values.
type StateError struct {
	Op  string // accessor that was misused: "Get" or "Err"
	Msg string
}

func (e *StateError) Error() string {
	return "fun: " + e.Msg
}
