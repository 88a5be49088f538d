package hexa

import (
	"errors"
	"fmt"
	"reflect"
)

// UnregisteredUseCaseError is returned by Invoke and InvokeNamed when no
// use case exists under the requested name.
type UnregisteredUseCaseError struct {
	Name string
}

func (e *UnregisteredUseCaseError) Error() string {
	return fmt.Sprintf("no use case registered with name: %s", e.Name)
}

// UnregisteredPortError is returned by Port when no instance exists for
// the requested type.
type UnregisteredPortError struct {
	Type reflect.Type
}

func (e *UnregisteredPortError) Error() string {
	return fmt.Sprintf("no port registered for type: %s", e.Type)
}

// UnregisteredAdapterError is returned by Adapt and AdaptNamed when no
// adapter exists under the requested name.
type UnregisteredAdapterError struct {
	Name string
}

func (e *UnregisteredAdapterError) Error() string {
	return fmt.Sprintf("no adapter registered with name: %s", e.Name)
}

// TypeMismatchError is returned when an entry exists under the requested
// name but its registered signature does not match the caller's declared
// types. Registered is the stored function type; Requested is the type
// the caller asked for (the key's func(I) O, or the dynamic input type
// for InvokeNamed/AdaptNamed).
type TypeMismatchError struct {
	Kind       string // "use case" or "adapter"
	Name       string
	Registered reflect.Type
	Requested  reflect.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s %q registered as %s, requested as %s",
		e.Kind, e.Name, e.Registered, e.Requested)
}

// DuplicateRegistrationError is returned by Builder.Build when two staged
// registrations share a name or port type and overwriting was not opted
// into.
type DuplicateRegistrationError struct {
	Kind string // "use case", "port", or "adapter"
	Name string
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("duplicate %s registration: %s", e.Kind, e.Name)
}

// IsUnregistered reports whether err is any of the unregistered-lookup
// errors. Uses errors.As to handle wrapped errors.
func IsUnregistered(err error) bool {
	var uc *UnregisteredUseCaseError
	var p *UnregisteredPortError
	var a *UnregisteredAdapterError
	return errors.As(err, &uc) || errors.As(err, &p) || errors.As(err, &a)
}

// IsTypeMismatch reports whether err is a TypeMismatchError.
func IsTypeMismatch(err error) bool {
	var tm *TypeMismatchError
	return errors.As(err, &tm)
}
