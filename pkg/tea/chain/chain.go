package chain

import (
	"github.com/ib-77/tea/pkg/tea"
	"github.com/ib-77/tea/pkg/tea/solo"
)

// Chain wraps a tea.Result to enable fluent chaining
type Chain[T any] struct {
	result tea.Result[T, error]
}

// Start creates a new chain from a tea.Result
func Start[T any](result tea.Result[T, error]) *Chain[T] {
	return &Chain[T]{
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{
		result: tea.Ok[T, error](value),
	}
}

// FromCall creates a new chain from the outcome of tea.Call
func FromCall[T any](f func() (T, error)) *Chain[T] {
	return &Chain[T]{
		result: tea.Call(f),
	}
}

// Result returns the underlying tea.Result
func (c *Chain[T]) Result() tea.Result[T, error] {
	return c.result
}

// Then chains a function that returns tea.Result[U, error]
func Then[T, U any](c *Chain[T], onOk func(T) tea.Result[U, error]) *Chain[U] {
	return &Chain[U]{
		result: solo.AndThen(c.result, onOk),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnOk func(T) (U, error)) *Chain[U] {
	return &Chain[U]{
		result: solo.Try(c.result, tryOnOk),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onOk func(T) U) *Chain[U] {
	return &Chain[U]{
		result: solo.Map(c.result, onOk),
	}
}

// Validate fails the chain with errMsg when validate rejects the value
func (c *Chain[T]) Validate(validate func(T) (bool, string)) *Chain[T] {
	return &Chain[T]{
		result: solo.AndValidate(c.result, validate),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onOk func(T)) *Chain[T] {
	return &Chain[T]{
		result: solo.Tee(c.result, onOk),
	}
}

func (c *Chain[T]) OnError(onErr func(error)) *Chain[T] {
	return &Chain[T]{
		result: c.result.InspectErr(onErr),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onOk func(T) U, onErr func(error) U) U {
	return solo.Finally(c.result, onOk, onErr)
}
