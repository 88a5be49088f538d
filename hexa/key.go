package hexa

// UseCaseKey identifies a use case for registration and invocation.
// The I and O type parameters are compile-time markers only: identity is
// the name, and two keys with the same name address the same registry
// entry regardless of their declared types. Invoke checks the declared
// types against the registered operation and returns a TypeMismatchError
// when they disagree.
//
// Keys are typically declared as package-level variables:
//
//	var Double = hexa.NewKey[int, int]("double")
type UseCaseKey[I, O any] struct {
	name string
}

// NewKey creates a use case key. Panics if name is empty.
func NewKey[I, O any](name string) UseCaseKey[I, O] {
	if name == "" {
		panic("hexa: use case key name must not be empty")
	}
	return UseCaseKey[I, O]{name: name}
}

// Name returns the key's name.
func (k UseCaseKey[I, O]) Name() string { return k.name }

func (k UseCaseKey[I, O]) String() string { return "UseCaseKey(" + k.name + ")" }

// AdapterKey identifies an adapter: a named pure transform from From to
// To. Adapters live in their own registry, so an adapter and a use case
// may share a name without colliding. AdapterKey and UseCaseKey are
// distinct types and are not interchangeable.
type AdapterKey[From, To any] struct {
	name string
}

// NewAdapterKey creates an adapter key. Panics if name is empty.
func NewAdapterKey[From, To any](name string) AdapterKey[From, To] {
	if name == "" {
		panic("hexa: adapter key name must not be empty")
	}
	return AdapterKey[From, To]{name: name}
}

// Name returns the key's name.
func (k AdapterKey[From, To]) Name() string { return k.name }

func (k AdapterKey[From, To]) String() string { return "AdapterKey(" + k.name + ")" }
