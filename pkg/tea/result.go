package tea

import (
	"fmt"
	"iter"
)

// Result is either Ok(value) or Err(err). The zero value is Err holding E's zero value.
type Result[T any, E any] struct {
	value T
	err   E
	isOk  bool
}

func Ok[T any, E any](v T) Result[T, E] {
	return Result[T, E]{
		value: v,
		isOk:  true,
	}
}

func Err[T any, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:  err,
		isOk: false,
	}
}

func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

func (r Result[T, E]) IsErr() bool {
	return !r.isOk
}

func (r Result[T, E]) IsOkAnd(predicate func(T) bool) bool {
	return r.isOk && predicate(r.value)
}

func (r Result[T, E]) IsErrAnd(predicate func(E) bool) bool {
	return !r.isOk && predicate(r.err)
}

// Ok projects the success side, discarding the error.
func (r Result[T, E]) Ok() Option[T] {
	if r.isOk {
		return Some(r.value)
	}
	return None[T]()
}

// Err projects the failure side, discarding the value.
func (r Result[T, E]) Err() Option[E] {
	if r.isOk {
		return None[E]()
	}
	return Some(r.err)
}

func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.isOk
}

func (r Result[T, E]) GetErr() (E, bool) {
	return r.err, !r.isOk
}

func (r Result[T, E]) Unwrap() T {
	if !r.isOk {
		unwrapFailure(ErrUnwrapErr, "", r.err)
	}
	return r.value
}

func (r Result[T, E]) Expect(msg string) T {
	if !r.isOk {
		unwrapFailure(ErrUnwrapErr, msg, r.err)
	}
	return r.value
}

func (r Result[T, E]) UnwrapErr() E {
	if r.isOk {
		unwrapFailure(ErrUnwrapOk, "", r.value)
	}
	return r.err
}

func (r Result[T, E]) ExpectErr(msg string) E {
	if r.isOk {
		unwrapFailure(ErrUnwrapOk, msg, r.value)
	}
	return r.err
}

func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.isOk {
		return r.value
	}
	return fallback
}

func (r Result[T, E]) UnwrapOrElse(fallback func(E) T) T {
	if r.isOk {
		return r.value
	}
	return fallback(r.err)
}

func (r Result[T, E]) UnwrapOrDefault() T {
	if r.isOk {
		return r.value
	}
	var zero T
	return zero
}

func (r Result[T, E]) Map(f func(T) T) Result[T, E] {
	if r.isOk {
		return Ok[T, E](f(r.value))
	}
	return r
}

func (r Result[T, E]) MapErr(f func(E) E) Result[T, E] {
	if r.isOk {
		return r
	}
	return Err[T](f(r.err))
}

func (r Result[T, E]) Inspect(f func(T)) Result[T, E] {
	if r.isOk {
		f(r.value)
	}
	return r
}

func (r Result[T, E]) InspectErr(f func(E)) Result[T, E] {
	if !r.isOk {
		f(r.err)
	}
	return r
}

// And returns other if r is Ok, otherwise r's error.
func (r Result[T, E]) And(other Result[T, E]) Result[T, E] {
	if r.isOk {
		return other
	}
	return r
}

func (r Result[T, E]) AndThen(f func(T) Result[T, E]) Result[T, E] {
	if r.isOk {
		return f(r.value)
	}
	return r
}

func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.isOk {
		return r
	}
	return other
}

func (r Result[T, E]) OrElse(f func(E) Result[T, E]) Result[T, E] {
	if r.isOk {
		return r
	}
	return f(r.err)
}

// All yields the value once when Ok. Every call returns a fresh sequence.
func (r Result[T, E]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.isOk {
			yield(r.value)
		}
	}
}

func (r Result[T, E]) String() string {
	if r.isOk {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
