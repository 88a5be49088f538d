package fun_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/portico/fun"
)

func TestOk(t *testing.T) {
	r := fun.Ok(42)
	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.Equal(t, 42, r.Get())
}

func TestFail(t *testing.T) {
	r := fun.Fail[int]("nope")
	assert.False(t, r.IsSuccess())
	assert.True(t, r.IsFailure())
	assert.Equal(t, "nope", r.Err())
}

func TestGet_OnFailurePanics(t *testing.T) {
	r := fun.Fail[int]("nope")

	defer func() {
		rec := recover()
		require.NotNil(t, rec, "Get on a failure must panic")
		se, ok := rec.(*fun.StateError)
		require.True(t, ok, "panic value should be a *StateError, got %T", rec)
		assert.Equal(t, "Get", se.Op)
		assert.Contains(t, se.Error(), "nope")
	}()
	r.Get()
}

func TestErr_OnSuccessPanics(t *testing.T) {
	r := fun.Ok("fine")

	defer func() {
		rec := recover()
		require.NotNil(t, rec, "Err on a success must panic")
		se, ok := rec.(*fun.StateError)
		require.True(t, ok, "panic value should be a *StateError, got %T", rec)
		assert.Equal(t, "Err", se.Op)
	}()
	r.Err()
}

func TestMap_Success(t *testing.T) {
	r := fun.Map(fun.Ok(5), func(x int) int { return x * 2 })
	require.True(t, r.IsSuccess())
	assert.Equal(t, 10, r.Get())
}

func TestMap_ChangesType(t *testing.T) {
	r := fun.Map(fun.Ok(5), func(x int) string { return "v" })
	require.True(t, r.IsSuccess())
	assert.Equal(t, "v", r.Get())
}

func TestMap_FailureNeverInvokesMapper(t *testing.T) {
	calls := 0
	r := fun.Map(fun.Fail[int]("broken"), func(x int) int {
		calls++
		return x
	})

	require.True(t, r.IsFailure())
	assert.Equal(t, "broken", r.Err())
	assert.Equal(t, 0, calls, "mapper must not run on a failure")
}

func TestFlatMap_SuccessReturnsMapperResult(t *testing.T) {
	ok := fun.FlatMap(fun.Ok(5), func(x int) fun.Result[int] { return fun.Ok(x + 1) })
	require.True(t, ok.IsSuccess())
	assert.Equal(t, 6, ok.Get())

	failed := fun.FlatMap(fun.Ok(5), func(x int) fun.Result[int] { return fun.Fail[int]("inner") })
	require.True(t, failed.IsFailure())
	assert.Equal(t, "inner", failed.Err())
}

func TestFlatMap_FailureNeverInvokesMapper(t *testing.T) {
	calls := 0
	r := fun.FlatMap(fun.Fail[int]("broken"), func(x int) fun.Result[string] {
		calls++
		return fun.Ok("unreachable")
	})

	require.True(t, r.IsFailure())
	assert.Equal(t, "broken", r.Err())
	assert.Equal(t, 0, calls)
}

func TestFold_InvokesExactlyOneBranch(t *testing.T) {
	onFailure := 0
	onSuccess := 0

	got := fun.Fold(fun.Ok(7),
		func(msg string) int { onFailure++; return -1 },
		func(x int) int { onSuccess++; return x },
	)
	assert.Equal(t, 7, got)
	assert.Equal(t, 0, onFailure)
	assert.Equal(t, 1, onSuccess)

	got = fun.Fold(fun.Fail[int]("bad"),
		func(msg string) int { onFailure++; return -1 },
		func(x int) int { onSuccess++; return x },
	)
	assert.Equal(t, -1, got)
	assert.Equal(t, 1, onFailure)
	assert.Equal(t, 1, onSuccess)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Ok(5)", fun.Ok(5).String())
	assert.Equal(t, "Fail(bad input)", fun.Fail[int]("bad input").String())
}
