package hexa

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"

	"github.com/roach88/portico/fun"
)

// Builder accumulates staged registrations and materializes them into a
// Container. It is a single-owner value: confine it to one goroutine
// during construction.
//
// Each UseCase(b, key)...Handle(op) chain produces a finalized staged
// registration the moment Handle runs, so starting the next use case
// needs no explicit close. A stage is consumed exactly once; finalizing
// it twice panics.
//
// Build may be called more than once: the accumulator is retained and
// every call materializes a fresh, independent Container.
type Builder struct {
	useCases  []staged
	ports     []staged
	adapters  []staged
	logger    *slog.Logger
	overwrite bool
}

// staged is one finalized registration awaiting Build. The name is kept
// for duplicate detection and logging; register applies the typed
// registration to the target container.
type staged struct {
	name     string
	register func(*Container)
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger sets the logger used by Build. Defaults to a discard logger.
func WithLogger(l *slog.Logger) BuilderOption {
	return func(b *Builder) { b.logger = l }
}

// AllowOverwrite opts into last-write-wins semantics for staged
// registrations that share a name or port type. Without it, Build rejects
// duplicates with DuplicateRegistrationError.
func AllowOverwrite() BuilderOption {
	return func(b *Builder) { b.overwrite = true }
}

// NewBuilder creates an empty Builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// WithPort stages a port registration for type T. Ports do not interact
// with use case staging and may be added at any point before Build.
func WithPort[T any](b *Builder, impl T) *Builder {
	b.ports = append(b.ports, staged{
		name:     reflect.TypeFor[T]().String(),
		register: func(c *Container) { RegisterPort[T](c, impl) },
	})
	return b
}

// WithAdapter stages an adapter registration under key's name.
func WithAdapter[From, To any](b *Builder, key AdapterKey[From, To], fn func(From) To) *Builder {
	b.adapters = append(b.adapters, staged{
		name:     key.Name(),
		register: func(c *Container) { RegisterAdapter(c, key.Name(), fn) },
	})
	return b
}

// UseCase begins describing a use case under key's name. Finalize the
// stage with Handle, or attach validators first with Validate.
func UseCase[I, O any](b *Builder, key UseCaseKey[I, O]) *UseCaseStage[I, O] {
	return &UseCaseStage[I, O]{b: b, name: key.Name()}
}

// UseCaseStage is a pending use case definition with no validators.
type UseCaseStage[I, O any] struct {
	b    *Builder
	name string
	done bool
}

// Handle finalizes the use case with op and no validation, returning the
// builder for further chaining.
func (s *UseCaseStage[I, O]) Handle(op func(I) O) *Builder {
	s.consume()
	s.b.useCases = append(s.b.useCases, staged{
		name:     s.name,
		register: func(c *Container) { RegisterUseCase(c, s.name, op) },
	})
	return s.b
}

func (s *UseCaseStage[I, O]) consume() {
	if s.done {
		panic(fmt.Sprintf("hexa: use case stage %q already finalized", s.name))
	}
	s.done = true
}

// Validate attaches the first validation step to a use case stage. It is
// a package function because the validated handler returns
// fun.Result[O], a constraint Go cannot express on a method of
// UseCaseStage. Further steps chain with the Validate method:
//
//	hexa.Validate(hexa.UseCase(b, keys.Divide), nonEmpty).
//		Validate(nonZeroDivisor).
//		Handle(divide)
func Validate[I, O any](s *UseCaseStage[I, fun.Result[O]], step ValidationStep[I]) *ValidationStage[I, O] {
	s.consume()
	return &ValidationStage[I, O]{
		b:     s.b,
		name:  s.name,
		chain: NewValidationChain(step),
	}
}

// ValidationStage is a pending use case definition carrying a validation
// chain. Each Validate call consumes the stage and returns a new one, so
// a partially applied stage cannot be finalized twice.
type ValidationStage[I, O any] struct {
	b     *Builder
	name  string
	chain ValidationChain[I]
	done  bool
}

// Validate appends another step to the chain. Steps run in declaration
// order; the first failure short-circuits.
func (s *ValidationStage[I, O]) Validate(step ValidationStep[I]) *ValidationStage[I, O] {
	s.consume()
	return &ValidationStage[I, O]{
		b:     s.b,
		name:  s.name,
		chain: s.chain.Append(step),
	}
}

// Handle composes the validation chain with handler into one operation
// and finalizes the stage. The handler runs only when the composed
// validator succeeds, receiving the validated (possibly step-transformed)
// input; on failure the use case's result is the validator's failure,
// unaltered.
func (s *ValidationStage[I, O]) Handle(handler func(I) fun.Result[O]) *Builder {
	s.consume()
	validate := s.chain.Compose()
	op := func(input I) fun.Result[O] {
		r := validate(input)
		if r.IsFailure() {
			return fun.Fail[O](r.Err())
		}
		return handler(r.Get())
	}
	s.b.useCases = append(s.b.useCases, staged{
		name:     s.name,
		register: func(c *Container) { RegisterUseCase(c, s.name, op) },
	})
	return s.b
}

func (s *ValidationStage[I, O]) consume() {
	if s.done {
		panic(fmt.Sprintf("hexa: use case stage %q already finalized", s.name))
	}
	s.done = true
}

// Build materializes a Container from the staged registrations, in the
// order ports, adapters, use cases. Duplicate names or port types are
// rejected unless AllowOverwrite was set.
func (b *Builder) Build() (*Container, error) {
	var errs []error
	if !b.overwrite {
		errs = append(errs, findDuplicates("port", b.ports)...)
		errs = append(errs, findDuplicates("adapter", b.adapters)...)
		errs = append(errs, findDuplicates("use case", b.useCases)...)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	c := New()
	for _, s := range b.ports {
		s.register(c)
	}
	for _, s := range b.adapters {
		s.register(c)
	}
	for _, s := range b.useCases {
		s.register(c)
	}

	b.logger.Debug("container built",
		"container_id", c.ID(),
		"use_cases", len(b.useCases),
		"ports", len(b.ports),
		"adapters", len(b.adapters),
	)
	return c, nil
}

// MustBuild is like Build but panics on error. Intended for tests and
// demos where registrations are static.
func (b *Builder) MustBuild() *Container {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

func findDuplicates(kind string, entries []staged) []error {
	var errs []error
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.name] {
			errs = append(errs, &DuplicateRegistrationError{Kind: kind, Name: e.name})
			continue
		}
		seen[e.name] = true
	}
	return errs
}
