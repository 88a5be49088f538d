package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/roach88/portico/fun"
	"github.com/roach88/portico/hexa"
)

// Salutation is the greeting prefix port consumed by the greet use case.
type Salutation string

// Demo keys. The CLI dispatches by name; the keys keep the demo wiring
// typed end to end.
var (
	keyDouble = hexa.NewKey[int, int]("double")
	keyDivide = hexa.NewKey[[]int, fun.Result[int]]("divide")
	keyGreet  = hexa.NewKey[string, string]("greet")
	keyBoom   = hexa.NewKey[string, string]("boom")

	adapterToLen = hexa.NewAdapterKey[string, int]("toLen")
)

// newDemoContainer builds the container the CLI operates on: a handful of
// inline operations exercising plain dispatch, validated dispatch, port
// lookup, adapters, and defect propagation.
func newDemoContainer(logger *slog.Logger) (*hexa.Container, error) {
	var c *hexa.Container

	b := hexa.NewBuilder(hexa.WithLogger(logger))
	hexa.WithPort[Salutation](b, "Hello")
	hexa.WithAdapter(b, adapterToLen, func(s string) int { return len(s) })

	hexa.UseCase(b, keyDouble).Handle(func(x int) int { return x * 2 })

	hexa.Validate(hexa.UseCase(b, keyDivide), func(in []int) fun.Result[[]int] {
		if len(in) != 2 {
			return fun.Fail[[]int](fmt.Sprintf("divide needs [dividend, divisor], got %d values", len(in)))
		}
		return fun.Ok(in)
	}).Validate(func(in []int) fun.Result[[]int] {
		if in[1] == 0 {
			return fun.Fail[[]int]("Cannot divide by zero")
		}
		return fun.Ok(in)
	}).Handle(func(in []int) fun.Result[int] {
		return fun.Ok(in[0] / in[1])
	})

	// The port is resolved at invoke time, after c is assigned below.
	hexa.UseCase(b, keyGreet).Handle(func(name string) string {
		sal := hexa.MustPort[Salutation](c)
		return fmt.Sprintf("%s, %s!", sal, strings.TrimSpace(name))
	})

	hexa.UseCase(b, keyBoom).Handle(func(msg string) string {
		panic(fmt.Errorf("boom: %s", msg))
	})

	built, err := b.Build()
	if err != nil {
		return nil, err
	}
	c = built
	return c, nil
}
