package tea

import (
	"fmt"
	"iter"
)

// Option is either Some(value) or None. The zero value is None.
type Option[T any] struct {
	value  T
	isSome bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{
		value:  v,
		isSome: true,
	}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns Some(*p), or None when p is nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromPair adapts the comma-ok idiom: FromPair(m[k]).
func FromPair[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) IsSome() bool {
	return o.isSome
}

func (o Option[T]) IsNone() bool {
	return !o.isSome
}

func (o Option[T]) IsSomeAnd(predicate func(T) bool) bool {
	return o.isSome && predicate(o.value)
}

func (o Option[T]) IsNoneOr(predicate func(T) bool) bool {
	return !o.isSome || predicate(o.value)
}

// Get returns the value and whether it is present. On None the value is T's zero value.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.isSome
}

// Unwrap returns the value or panics with an *UnwrapError of kind ErrUnwrapNone.
func (o Option[T]) Unwrap() T {
	if !o.isSome {
		unwrapFailure(ErrUnwrapNone, "", nil)
	}
	return o.value
}

// Expect is Unwrap with a caller-supplied panic message.
func (o Option[T]) Expect(msg string) T {
	if !o.isSome {
		unwrapFailure(ErrUnwrapNone, msg, nil)
	}
	return o.value
}

func (o Option[T]) UnwrapOr(fallback T) T {
	if o.isSome {
		return o.value
	}
	return fallback
}

func (o Option[T]) UnwrapOrElse(fallback func() T) T {
	if o.isSome {
		return o.value
	}
	return fallback()
}

func (o Option[T]) UnwrapOrDefault() T {
	return o.value
}

// Map transforms the value keeping its type. Use maybe.Map to change the type.
func (o Option[T]) Map(f func(T) T) Option[T] {
	if o.isSome {
		return Some(f(o.value))
	}
	return o
}

func (o Option[T]) Inspect(f func(T)) Option[T] {
	if o.isSome {
		f(o.value)
	}
	return o
}

// And returns other if o is Some, otherwise None.
func (o Option[T]) And(other Option[T]) Option[T] {
	if o.isSome {
		return other
	}
	return o
}

func (o Option[T]) AndThen(f func(T) Option[T]) Option[T] {
	if o.isSome {
		return f(o.value)
	}
	return o
}

func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.isSome && predicate(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.isSome {
		return o
	}
	return other
}

func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.isSome {
		return o
	}
	return f()
}

// Xor returns the Some side when exactly one of o and other is Some.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	switch {
	case o.isSome && !other.isSome:
		return o
	case !o.isSome && other.isSome:
		return other
	default:
		return None[T]()
	}
}

// Take moves the value out, leaving None in the slot.
func (o *Option[T]) Take() Option[T] {
	prev := *o
	*o = None[T]()
	return prev
}

// TakeIf takes the value only when predicate holds for it.
func (o *Option[T]) TakeIf(predicate func(T) bool) Option[T] {
	if o.isSome && predicate(o.value) {
		return o.Take()
	}
	return None[T]()
}

// Replace stores v and returns the previous contents.
func (o *Option[T]) Replace(v T) Option[T] {
	prev := *o
	*o = Some(v)
	return prev
}

// Insert stores v, discarding any previous value, and returns a pointer into the slot.
func (o *Option[T]) Insert(v T) *T {
	*o = Some(v)
	return &o.value
}

func (o *Option[T]) GetOrInsert(v T) *T {
	if !o.isSome {
		*o = Some(v)
	}
	return &o.value
}

func (o *Option[T]) GetOrInsertWith(f func() T) *T {
	if !o.isSome {
		*o = Some(f())
	}
	return &o.value
}

// All yields the value once when Some. Every call returns a fresh sequence.
func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.isSome {
			yield(o.value)
		}
	}
}

func (o Option[T]) String() string {
	if o.isSome {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
