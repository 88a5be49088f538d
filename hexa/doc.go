// Package hexa is an in-process composition container: callers register
// named operations (use cases), typed external dependencies (ports), and
// named data transforms (adapters), then dispatch to them through
// phantom-typed keys.
//
// # Error channels
//
// The package keeps four error channels deliberately separate. Do not
// collapse them into one:
//
//  1. Validation failure — an expected domain condition. Always a
//     fun.Result failure value, never an error return and never a panic.
//     A failing validator short-circuits the chain and the handler is
//     skipped.
//  2. Unregistered lookup — a configuration error. Invoke, Port, and
//     Adapt return a typed error whose message contains the missing name
//     or type (UnregisteredUseCaseError, UnregisteredPortError,
//     UnregisteredAdapterError, TypeMismatchError).
//  3. Operation-body defect — a panic inside a registered use case,
//     validator, or adapter propagates to the caller unaltered. The
//     container performs no recover and no wrapping.
//  4. Test-assertion failure — raised only by package hexatest through
//     testing.TB; it reports channels 1–3, it never replaces them.
//
// # Lifecycle and concurrency
//
// Construction is two-phase: a single-owner Builder accumulates staged
// registrations and Build materializes a Container. A built Container is
// intended to be read-only; concurrent Invoke/Port/Adapt/introspection
// calls are safe provided no caller runs a concurrent Register*. The
// engine imposes no locking — this is a documented precondition. There is
// no cancellation primitive: a blocking operation blocks its caller.
package hexa
