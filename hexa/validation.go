package hexa

import "github.com/roach88/portico/fun"

// ValidationStep checks (and may normalize) a use case input. A failure
// short-circuits the rest of the chain and skips the handler.
type ValidationStep[I any] func(I) fun.Result[I]

// ValidationChain is an ordered sequence of validation steps. Chains are
// value types: Append copies, so a chain captured by a composed operation
// cannot be mutated afterwards.
type ValidationChain[I any] struct {
	steps []ValidationStep[I]
}

// NewValidationChain creates a chain from steps in declaration order.
func NewValidationChain[I any](steps ...ValidationStep[I]) ValidationChain[I] {
	return ValidationChain[I]{steps: append([]ValidationStep[I](nil), steps...)}
}

// Append returns a new chain with step added at the end.
func (vc ValidationChain[I]) Append(step ValidationStep[I]) ValidationChain[I] {
	steps := make([]ValidationStep[I], len(vc.steps), len(vc.steps)+1)
	copy(steps, vc.steps)
	return ValidationChain[I]{steps: append(steps, step)}
}

// Len returns the number of steps in the chain.
func (vc ValidationChain[I]) Len() int { return len(vc.steps) }

// Compose collapses the chain into a single validator: fun.Ok(input)
// folded through FlatMap over each step in order. Because FlatMap on a
// failure never invokes its argument, a failing step at position k
// guarantees steps k+1..n do not run.
func (vc ValidationChain[I]) Compose() func(I) fun.Result[I] {
	steps := vc.steps
	return func(input I) fun.Result[I] {
		r := fun.Ok(input)
		for _, step := range steps {
			r = fun.FlatMap(r, step)
		}
		return r
	}
}
