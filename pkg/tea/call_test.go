package tea

import (
	"errors"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func parsePerson(text string) (person, error) {
	var p person
	err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(text, &p)
	return p, err
}

func TestCall1_ParseSuccess(t *testing.T) {
	t.Parallel()
	r := Call1(parsePerson, `{"name":"Charlie","age":33}`)
	require.True(t, r.IsOk(), "unexpected error: %v", r.Err())
	assert.Equal(t, person{Name: "Charlie", Age: 33}, r.Unwrap())
}

func TestCall1_ParseFailure(t *testing.T) {
	t.Parallel()
	r := Call1(parsePerson, `{"name":`)
	require.True(t, r.IsErr())

	var panicErr *PanicError
	assert.NotErrorAs(t, r.UnwrapErr(), &panicErr)
	assert.Equal(t, person{}, r.UnwrapOrDefault())
}

func TestCall_ReturnsErrorUnchanged(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	r := Call(func() (int, error) { return 0, boom })
	if got := r.UnwrapErr(); got != boom {
		t.Fatalf("expected the returned error, got %v", got)
	}
}

func TestCall_RecoversPanic(t *testing.T) {
	t.Parallel()
	cause := errors.New("index out of range")
	r := Call(func() (int, error) { panic(cause) })

	require.True(t, r.IsErr())
	var perr *PanicError
	require.ErrorAs(t, r.UnwrapErr(), &perr)
	assert.Equal(t, cause, perr.Value)
	assert.ErrorIs(t, r.UnwrapErr(), cause)
	assert.NotEmpty(t, perr.Stack)

	r = CallValue(func() int { panic("plain string") })
	require.ErrorAs(t, r.UnwrapErr(), &perr)
	assert.Equal(t, "panic: plain string", perr.Error())
	assert.Nil(t, perr.Unwrap())
}

func TestCall_TypedNilErrorIsOk(t *testing.T) {
	t.Parallel()
	var typed *PanicError
	r := Call(func() (int, error) { return 4, typed })
	assert.Equal(t, Ok[int, error](4), r)
}

func TestCall2(t *testing.T) {
	t.Parallel()
	div := func(a, b int) (int, error) {
		if b == 0 {
			return 0, errors.New("division by zero")
		}
		return a / b, nil
	}
	assert.Equal(t, 5, Call2(div, 10, 2).Unwrap())
	assert.EqualError(t, Call2(div, 1, 0).UnwrapErr(), "division by zero")
}

func TestGetErrors(t *testing.T) {
	t.Parallel()
	a, b := errors.New("a"), errors.New("b")
	assert.Empty(t, GetErrors(nil))
	assert.Equal(t, []error{a}, GetErrors(a))
	assert.Equal(t, []error{a, b}, GetErrors(errors.Join(a, b)))
}
