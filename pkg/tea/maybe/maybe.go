package maybe

import (
	"iter"

	"github.com/ib-77/tea/pkg/tea"
)

func Map[T, U any](o tea.Option[T], f func(T) U) tea.Option[U] {
	if v, ok := o.Get(); ok {
		return tea.Some(f(v))
	}
	return tea.None[U]()
}

func MapOr[T, U any](o tea.Option[T], fallback U, f func(T) U) U {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return fallback
}

func MapOrElse[T, U any](o tea.Option[T], fallback func() U, f func(T) U) U {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return fallback()
}

func And[T, U any](o tea.Option[T], other tea.Option[U]) tea.Option[U] {
	if o.IsSome() {
		return other
	}
	return tea.None[U]()
}

func AndThen[T, U any](o tea.Option[T], f func(T) tea.Option[U]) tea.Option[U] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return tea.None[U]()
}

// Zip is Some only when both sides are Some.
func Zip[T, U any](o tea.Option[T], other tea.Option[U]) tea.Option[tea.Pair[T, U]] {
	return ZipWith(o, other, tea.PairOf[T, U])
}

func ZipWith[T, U, R any](o tea.Option[T], other tea.Option[U], f func(T, U) R) tea.Option[R] {
	a, okA := o.Get()
	b, okB := other.Get()
	if okA && okB {
		return tea.Some(f(a, b))
	}
	return tea.None[R]()
}

func Unzip[T, U any](o tea.Option[tea.Pair[T, U]]) (tea.Option[T], tea.Option[U]) {
	if p, ok := o.Get(); ok {
		return tea.Some(p.First), tea.Some(p.Second)
	}
	return tea.None[T](), tea.None[U]()
}

func OkOr[T, E any](o tea.Option[T], err E) tea.Result[T, E] {
	if v, ok := o.Get(); ok {
		return tea.Ok[T, E](v)
	}
	return tea.Err[T](err)
}

func OkOrElse[T, E any](o tea.Option[T], f func() E) tea.Result[T, E] {
	if v, ok := o.Get(); ok {
		return tea.Ok[T, E](v)
	}
	return tea.Err[T](f())
}

// Transpose turns Option[Result[U, E]] into Result[Option[U], E].
// None maps to Ok(None).
func Transpose[U, E any](o tea.Option[tea.Result[U, E]]) tea.Result[tea.Option[U], E] {
	r, ok := o.Get()
	if !ok {
		return tea.Ok[tea.Option[U], E](tea.None[U]())
	}
	if e, isErr := r.GetErr(); isErr {
		return tea.Err[tea.Option[U]](e)
	}
	return tea.Ok[tea.Option[U], E](r.Ok())
}

func Flatten[T any](o tea.Option[tea.Option[T]]) tea.Option[T] {
	if inner, ok := o.Get(); ok {
		return inner
	}
	return tea.None[T]()
}

// Match calls exactly one of the handlers. Both handlers are required.
func Match[T, R any](o tea.Option[T], onSome func(T) R, onNone func() R) R {
	if v, ok := o.Get(); ok {
		return onSome(v)
	}
	return onNone()
}

func Equal[T comparable](a, b tea.Option[T]) bool {
	va, okA := a.Get()
	vb, okB := b.Get()
	if okA != okB {
		return false
	}
	return !okA || va == vb
}

// First returns the first element of seq, if any.
func First[T any](seq iter.Seq[T]) tea.Option[T] {
	for v := range seq {
		return tea.Some(v)
	}
	return tea.None[T]()
}

// Values yields the payloads of the Some elements of seq.
func Values[T any](seq iter.Seq[tea.Option[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for o := range seq {
			if v, ok := o.Get(); ok {
				if !yield(v) {
					return
				}
			}
		}
	}
}
