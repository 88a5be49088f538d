package hexa

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/google/uuid"
)

// Container holds the three registries: use cases by name, ports by type,
// and adapters by name. The registries are independent — a use case and an
// adapter may share a name.
//
// Registration is last-write-wins at this level; the Builder layers
// duplicate detection on top. After construction a Container should be
// treated as read-only: concurrent reads are safe as long as no Register*
// call runs concurrently.
type Container struct {
	id       string
	useCases map[string]entry
	ports    map[reflect.Type]any
	adapters map[string]entry
}

// entry stores a registered function together with its reflected type,
// which lookup paths check before dispatch.
type entry struct {
	fn     any
	fnType reflect.Type
}

// New creates an empty Container with a fresh instance ID.
func New() *Container {
	return &Container{
		id:       uuid.NewString(),
		useCases: make(map[string]entry),
		ports:    make(map[reflect.Type]any),
		adapters: make(map[string]entry),
	}
}

// ID returns the container's instance ID, used for log correlation.
func (c *Container) ID() string { return c.id }

// RegisterUseCase registers op under name, overwriting any prior entry.
func RegisterUseCase[I, O any](c *Container, name string, op func(I) O) {
	c.useCases[name] = entry{fn: op, fnType: reflect.TypeOf(op)}
}

// Invoke looks up the use case registered under key's name and applies it
// to input. It returns an UnregisteredUseCaseError if the name is absent
// and a TypeMismatchError if the registered operation's signature differs
// from the key's declared types. A panic inside the operation body
// propagates to the caller unaltered.
func Invoke[I, O any](c *Container, key UseCaseKey[I, O], input I) (O, error) {
	var zero O
	e, ok := c.useCases[key.name]
	if !ok {
		return zero, &UnregisteredUseCaseError{Name: key.name}
	}
	op, ok := e.fn.(func(I) O)
	if !ok {
		return zero, &TypeMismatchError{
			Kind:       "use case",
			Name:       key.name,
			Registered: e.fnType,
			Requested:  reflect.TypeOf((func(I) O)(nil)),
		}
	}
	return op(input), nil
}

// InvokeNamed dispatches to a use case by name with a dynamically typed
// input. The input is coerced to the operation's parameter type where the
// coercion is lossless (see coerceValue); otherwise a TypeMismatchError
// is returned. Used by embedding tools that receive inputs from data
// files rather than typed call sites.
func (c *Container) InvokeNamed(name string, input any) (any, error) {
	e, ok := c.useCases[name]
	if !ok {
		return nil, &UnregisteredUseCaseError{Name: name}
	}
	in, err := coerceValue(input, e.fnType.In(0))
	if err != nil {
		return nil, &TypeMismatchError{
			Kind:       "use case",
			Name:       name,
			Registered: e.fnType,
			Requested:  reflect.TypeOf(input),
		}
	}
	out := reflect.ValueOf(e.fn).Call([]reflect.Value{in})
	return out[0].Interface(), nil
}

// RegisterPort registers impl as the port instance for type T,
// overwriting any prior instance. T must be named explicitly when
// registering an implementation under its interface type:
//
//	hexa.RegisterPort[Mailer](c, smtpMailer{})
func RegisterPort[T any](c *Container, impl T) {
	c.ports[reflect.TypeFor[T]()] = impl
}

// Port retrieves the port instance registered for type T. The instance's
// shape is not validated beyond its registration type; the container
// never calls methods on a port.
func Port[T any](c *Container) (T, error) {
	v, ok := c.ports[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, &UnregisteredPortError{Type: reflect.TypeFor[T]()}
	}
	return v.(T), nil
}

// MustPort is like Port but panics on a missing registration. Intended
// for use inside operation bodies, where a missing port is a wiring
// defect.
func MustPort[T any](c *Container) T {
	v, err := Port[T](c)
	if err != nil {
		panic(err)
	}
	return v
}

// HasPort reports whether a port is registered for type T.
func HasPort[T any](c *Container) bool {
	_, ok := c.ports[reflect.TypeFor[T]()]
	return ok
}

// RegisterAdapter registers fn as the transform under name, overwriting
// any prior entry.
func RegisterAdapter[From, To any](c *Container, name string, fn func(From) To) {
	c.adapters[name] = entry{fn: fn, fnType: reflect.TypeOf(fn)}
}

// Adapt looks up the adapter registered under key's name and applies it
// to input. Error behavior mirrors Invoke: UnregisteredAdapterError for a
// missing name, TypeMismatchError for a signature disagreement, and
// panics from the transform body propagate unaltered.
func Adapt[From, To any](c *Container, key AdapterKey[From, To], input From) (To, error) {
	var zero To
	e, ok := c.adapters[key.name]
	if !ok {
		return zero, &UnregisteredAdapterError{Name: key.name}
	}
	fn, ok := e.fn.(func(From) To)
	if !ok {
		return zero, &TypeMismatchError{
			Kind:       "adapter",
			Name:       key.name,
			Registered: e.fnType,
			Requested:  reflect.TypeOf((func(From) To)(nil)),
		}
	}
	return fn(input), nil
}

// AdaptNamed dispatches to an adapter by name with a dynamically typed
// input, coercing it like InvokeNamed does.
func (c *Container) AdaptNamed(name string, input any) (any, error) {
	e, ok := c.adapters[name]
	if !ok {
		return nil, &UnregisteredAdapterError{Name: name}
	}
	in, err := coerceValue(input, e.fnType.In(0))
	if err != nil {
		return nil, &TypeMismatchError{
			Kind:       "adapter",
			Name:       name,
			Registered: e.fnType,
			Requested:  reflect.TypeOf(input),
		}
	}
	out := reflect.ValueOf(e.fn).Call([]reflect.Value{in})
	return out[0].Interface(), nil
}

// HasAdapter reports whether an adapter is registered under key's name.
func HasAdapter[From, To any](c *Container, key AdapterKey[From, To]) bool {
	_, ok := c.adapters[key.name]
	return ok
}

// HasUseCase reports whether a use case is registered under name.
func (c *Container) HasUseCase(name string) bool {
	_, ok := c.useCases[name]
	return ok
}

// UseCaseNames returns the registered use case names, sorted.
func (c *Container) UseCaseNames() []string {
	return sortedKeys(c.useCases)
}

// AdapterNames returns the registered adapter names, sorted.
func (c *Container) AdapterNames() []string {
	return sortedKeys(c.adapters)
}

// PortTypes returns the registered port types, sorted by type string.
func (c *Container) PortTypes() []reflect.Type {
	types := make([]reflect.Type, 0, len(c.ports))
	for t := range c.ports {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].String() < types[j].String()
	})
	return types
}

func sortedKeys(m map[string]entry) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Container) String() string {
	return fmt.Sprintf("Container(%s: %d use cases, %d ports, %d adapters)",
		c.id, len(c.useCases), len(c.ports), len(c.adapters))
}
