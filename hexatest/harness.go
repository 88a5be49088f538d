// Package hexatest provides a fluent harness for asserting on registered
// use cases, plus a YAML scenario runner with golden-trace comparison.
//
// A UseCaseTest executes its wrapped operation at most once: the first
// assertion triggers the invocation and caches the outcome, and every
// later assertion (including Map and Unwrap derivations) reuses the
// cached outcome. This is an idempotence guarantee for assertions, not a
// statement about the operation's own side effects.
package hexatest

import (
	"errors"
	"fmt"
	"testing"

	"github.com/roach88/portico/fun"
	"github.com/roach88/portico/hexa"
)

// resultOutcome is satisfied by fun.Result of any type parameter. Guard
// Err calls with IsFailure: Err panics on a success result.
type resultOutcome interface {
	IsFailure() bool
	Err() string
}

// PanicError wraps a panic captured from an operation body so the harness
// can report it through the same assertion surface as returned errors.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Harness is the entry point of the testing DSL, bound to one container
// and one testing.TB.
type Harness struct {
	tb testing.TB
	c  *hexa.Container
}

// ForContainer creates a Harness for c. Assertion failures are reported
// through tb.
func ForContainer(tb testing.TB, c *hexa.Container) *Harness {
	return &Harness{tb: tb, c: c}
}

// HasUseCase asserts that a use case is registered under name.
func (h *Harness) HasUseCase(name string) *Harness {
	h.tb.Helper()
	if !h.c.HasUseCase(name) {
		h.tb.Fatalf("expected use case %q to exist, but it doesn't", name)
	}
	return h
}

// DoesNotHaveUseCase asserts that no use case is registered under name.
func (h *Harness) DoesNotHaveUseCase(name string) *Harness {
	h.tb.Helper()
	if h.c.HasUseCase(name) {
		h.tb.Fatalf("expected use case %q to not exist, but it does", name)
	}
	return h
}

// Test starts a single-use test of the use case addressed by key.
func Test[I, O any](h *Harness, key hexa.UseCaseKey[I, O]) *UseCaseTest[I, O] {
	return &UseCaseTest[I, O]{tb: h.tb, c: h.c, key: key}
}

// UseCaseTest wraps one container + key + input and memoizes the first
// execution for repeated assertions.
type UseCaseTest[I, O any] struct {
	tb  testing.TB
	c   *hexa.Container
	key hexa.UseCaseKey[I, O]

	input    I
	executed bool
	output   O
	fault    error // lookup/type error from Invoke, or a *PanicError
}

// With records the input. Must be called before the first assertion.
func (tc *UseCaseTest[I, O]) With(input I) *UseCaseTest[I, O] {
	tc.input = input
	return tc
}

// run executes the use case on first call and is a no-op afterwards.
func (tc *UseCaseTest[I, O]) run() {
	if tc.executed {
		return
	}
	tc.executed = true
	func() {
		defer func() {
			if r := recover(); r != nil {
				tc.fault = &PanicError{Value: r}
			}
		}()
		out, err := hexa.Invoke(tc.c, tc.key, tc.input)
		if err != nil {
			tc.fault = err
			return
		}
		tc.output = out
	}()
}

// ExpectOk asserts that the invocation produced a successful outcome and
// passes the output to verifier. A captured fault or a failed Result
// output fails the test.
func (tc *UseCaseTest[I, O]) ExpectOk(verifier func(O)) *UseCaseTest[I, O] {
	tc.tb.Helper()
	tc.run()
	if tc.fault != nil {
		tc.tb.Fatalf("expected successful result but got: %v", tc.fault)
		return tc
	}
	if r, ok := any(tc.output).(resultOutcome); ok && r.IsFailure() {
		tc.tb.Fatalf("expected successful result but got failure: %s", r.Err())
		return tc
	}
	verifier(tc.output)
	return tc
}

// ExpectFailure asserts that the invocation produced a failure — either a
// captured fault or a failed Result output — and passes its message to
// errVerifier.
func (tc *UseCaseTest[I, O]) ExpectFailure(errVerifier func(string)) *UseCaseTest[I, O] {
	tc.tb.Helper()
	tc.run()
	if tc.fault != nil {
		errVerifier(tc.fault.Error())
		return tc
	}
	r, ok := any(tc.output).(resultOutcome)
	if !ok {
		tc.tb.Fatalf("expected a result-typed output but got %T", tc.output)
		return tc
	}
	if !r.IsFailure() {
		tc.tb.Fatalf("expected failure but got successful result: %v", tc.output)
		return tc
	}
	errVerifier(r.Err())
	return tc
}

// Expect asserts that predicate holds for the output. The description
// appears in the failure message.
func (tc *UseCaseTest[I, O]) Expect(predicate func(O) bool, description string) *UseCaseTest[I, O] {
	tc.tb.Helper()
	tc.run()
	if tc.fault != nil {
		tc.tb.Fatalf("expected result but got: %v", tc.fault)
		return tc
	}
	if !predicate(tc.output) {
		tc.tb.Fatalf("expected %s but was not satisfied by %v", description, tc.output)
	}
	return tc
}

// ExpectError asserts that a fault was captured and that it matches
// target under errors.As semantics. Operation-body panics match
// *PanicError (or the panic value's own error type, via Unwrap).
func (tc *UseCaseTest[I, O]) ExpectError(target any) *UseCaseTest[I, O] {
	tc.tb.Helper()
	tc.run()
	if tc.fault == nil {
		tc.tb.Fatalf("expected an error of type %T but none was raised", target)
		return tc
	}
	if !errors.As(tc.fault, target) {
		tc.tb.Fatalf("expected an error of type %T but got: %v", target, tc.fault)
	}
	return tc
}

// Map executes the use case if needed, then returns a new already-executed
// test carrying transform(output). The original operation is never
// invoked again; a panic inside transform is captured as the new test's
// fault.
func Map[I, O, T any](tc *UseCaseTest[I, O], transform func(O) T) *UseCaseTest[I, T] {
	tc.tb.Helper()
	tc.run()
	mapped := &UseCaseTest[I, T]{
		tb:       tc.tb,
		c:        tc.c,
		input:    tc.input,
		executed: true,
	}
	if tc.fault != nil {
		tc.tb.Fatalf("cannot map result: %v", tc.fault)
		mapped.fault = tc.fault
		return mapped
	}
	func() {
		defer func() {
			if r := recover(); r != nil {
				mapped.fault = &PanicError{Value: r}
			}
		}()
		mapped.output = transform(tc.output)
	}()
	return mapped
}

// Unwrap derives a test over the success value of a Result output. A
// failed Result surfaces as the derived test's fault (the underlying
// fun.StateError), so ExpectFailure still sees the failure message.
func Unwrap[I, U any](tc *UseCaseTest[I, fun.Result[U]]) *UseCaseTest[I, U] {
	tc.tb.Helper()
	return Map(tc, func(r fun.Result[U]) U { return r.Get() })
}
