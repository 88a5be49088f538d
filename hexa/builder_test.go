package hexa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/portico/fun"
	"github.com/roach88/portico/hexa"
)

var (
	keyDouble = hexa.NewKey[int, int]("double")
	keyTriple = hexa.NewKey[int, int]("triple")
	keyDivide = hexa.NewKey[[]int, fun.Result[int]]("divide")
)

func TestBuilder_ImplicitClosure(t *testing.T) {
	b := hexa.NewBuilder()
	// Starting the second use case needs no explicit close of the first.
	hexa.UseCase(b, keyDouble).Handle(func(x int) int { return x * 2 })
	hexa.UseCase(b, keyTriple).Handle(func(x int) int { return x * 3 })

	c, err := b.Build()
	require.NoError(t, err)

	got, err := hexa.Invoke(c, keyDouble, 4)
	require.NoError(t, err)
	assert.Equal(t, 8, got)

	got, err = hexa.Invoke(c, keyTriple, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestBuilder_ValidatedUseCase(t *testing.T) {
	b := hexa.NewBuilder()
	hexa.Validate(hexa.UseCase(b, keyDivide), func(in []int) fun.Result[[]int] {
		if len(in) != 2 {
			return fun.Fail[[]int]("divide needs [dividend, divisor]")
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
	c := b.MustBuild()

	r, err := hexa.Invoke(c, keyDivide, []int{10, 2})
	require.NoError(t, err)
	require.True(t, r.IsSuccess())
	assert.Equal(t, 5, r.Get())

	r, err = hexa.Invoke(c, keyDivide, []int{10, 0})
	require.NoError(t, err)
	require.True(t, r.IsFailure())
	assert.Equal(t, "Cannot divide by zero", r.Err())

	r, err = hexa.Invoke(c, keyDivide, []int{10})
	require.NoError(t, err)
	require.True(t, r.IsFailure())
	assert.Equal(t, "divide needs [dividend, divisor]", r.Err())
}

// The handler must never run when a validator fails.
func TestBuilder_HandlerSkippedOnValidationFailure(t *testing.T) {
	handled := 0
	b := hexa.NewBuilder()
	hexa.Validate(hexa.UseCase(b, keyDivide), func(in []int) fun.Result[[]int] {
		return fun.Fail[[]int]("rejected")
	}).Handle(func(in []int) fun.Result[int] {
		handled++
		return fun.Ok(0)
	})
	c := b.MustBuild()

	r, err := hexa.Invoke(c, keyDivide, []int{1, 2})
	require.NoError(t, err)
	require.True(t, r.IsFailure())
	assert.Equal(t, 0, handled)
}

func TestBuilder_StageConsumedOnce(t *testing.T) {
	b := hexa.NewBuilder()
	stage := hexa.UseCase(b, keyDouble)
	stage.Handle(func(x int) int { return x * 2 })

	assert.PanicsWithValue(t, `hexa: use case stage "double" already finalized`, func() {
		stage.Handle(func(x int) int { return x })
	})
}

func TestBuilder_ValidationStageConsumedOnce(t *testing.T) {
	b := hexa.NewBuilder()
	stage := hexa.Validate(hexa.UseCase(b, keyDivide), func(in []int) fun.Result[[]int] {
		return fun.Ok(in)
	})
	stage.Handle(func(in []int) fun.Result[int] { return fun.Ok(0) })

	assert.PanicsWithValue(t, `hexa: use case stage "divide" already finalized`, func() {
		stage.Validate(func(in []int) fun.Result[[]int] { return fun.Ok(in) })
	})
}

func TestBuilder_DuplicateRejected(t *testing.T) {
	b := hexa.NewBuilder()
	hexa.UseCase(b, keyDouble).Handle(func(x int) int { return x * 2 })
	hexa.UseCase(b, keyDouble).Handle(func(x int) int { return x * 20 })

	_, err := b.Build()
	require.Error(t, err)
	var dup *hexa.DuplicateRegistrationError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "use case", dup.Kind)
	assert.Equal(t, "double", dup.Name)
}

func TestBuilder_AllowOverwrite(t *testing.T) {
	b := hexa.NewBuilder(hexa.AllowOverwrite())
	hexa.UseCase(b, keyDouble).Handle(func(x int) int { return x * 2 })
	hexa.UseCase(b, keyDouble).Handle(func(x int) int { return x * 20 })

	c, err := b.Build()
	require.NoError(t, err)

	got, err := hexa.Invoke(c, keyDouble, 1)
	require.NoError(t, err)
	assert.Equal(t, 20, got, "later registration wins when overwrite is allowed")
}

func TestBuilder_PortsAndAdapters(t *testing.T) {
	toLen := hexa.NewAdapterKey[string, int]("toLen")

	b := hexa.NewBuilder()
	hexa.WithPort[EmailService](b, &stubMailer{})
	hexa.WithAdapter(b, toLen, func(s string) int { return len(s) })
	c := b.MustBuild()

	assert.True(t, hexa.HasPort[EmailService](c))
	got, err := hexa.Adapt(c, toLen, "abcd")
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestBuilder_DuplicatePortRejected(t *testing.T) {
	b := hexa.NewBuilder()
	hexa.WithPort[EmailService](b, &stubMailer{})
	hexa.WithPort[EmailService](b, &stubMailer{})

	_, err := b.Build()
	require.Error(t, err)
	var dup *hexa.DuplicateRegistrationError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "port", dup.Kind)
}

func TestBuilder_RebuildProducesIndependentContainers(t *testing.T) {
	b := hexa.NewBuilder()
	hexa.UseCase(b, keyDouble).Handle(func(x int) int { return x * 2 })

	c1 := b.MustBuild()
	c2 := b.MustBuild()
	require.NotEqual(t, c1.ID(), c2.ID())

	// Mutating one container must not leak into the other.
	hexa.RegisterUseCase(c1, "extra", func(x int) int { return x })
	assert.True(t, c1.HasUseCase("extra"))
	assert.False(t, c2.HasUseCase("extra"))

	got, err := hexa.Invoke(c2, keyDouble, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}
