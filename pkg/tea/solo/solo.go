package solo

import (
	"errors"

	"github.com/ib-77/tea/pkg/tea"
)

// FromPair adapts the (value, error) idiom.
func FromPair[T any](v T, err error) tea.Result[T, error] {
	if !tea.IsNil(err) {
		return tea.Err[T](err)
	}
	return tea.Ok[T, error](v)
}

func Validate[T any](input T, validate func(in T) (isValid bool, errMsg string)) tea.Result[T, error] {
	return AndValidate(tea.Ok[T, error](input), validate)
}

func AndValidate[T any](input tea.Result[T, error],
	validate func(in T) (valid bool, errMsg string)) tea.Result[T, error] {

	if v, ok := input.Get(); ok {
		if isValid, errMsg := validate(v); isValid {
			return input
		} else {
			return tea.Err[T](errors.New(errMsg))
		}
	}
	return input
}

func Map[T, U, E any](input tea.Result[T, E], onOk func(T) U) tea.Result[U, E] {
	if v, ok := input.Get(); ok {
		return tea.Ok[U, E](onOk(v))
	}
	return tea.Err[U](input.UnwrapErr())
}

func MapErr[T, E, F any](input tea.Result[T, E], onErr func(E) F) tea.Result[T, F] {
	if e, isErr := input.GetErr(); isErr {
		return tea.Err[T](onErr(e))
	}
	return tea.Ok[T, F](input.Unwrap())
}

func MapOr[T, U, E any](input tea.Result[T, E], fallback U, onOk func(T) U) U {
	if v, ok := input.Get(); ok {
		return onOk(v)
	}
	return fallback
}

func MapOrElse[T, U, E any](input tea.Result[T, E], onErr func(E) U, onOk func(T) U) U {
	if v, ok := input.Get(); ok {
		return onOk(v)
	}
	return onErr(input.UnwrapErr())
}

func And[T, U, E any](input tea.Result[T, E], other tea.Result[U, E]) tea.Result[U, E] {
	if input.IsOk() {
		return other
	}
	return tea.Err[U](input.UnwrapErr())
}

func AndThen[T, U, E any](input tea.Result[T, E], onOk func(T) tea.Result[U, E]) tea.Result[U, E] {
	if v, ok := input.Get(); ok {
		return onOk(v)
	}
	return tea.Err[U](input.UnwrapErr())
}

func Or[T, E, F any](input tea.Result[T, E], other tea.Result[T, F]) tea.Result[T, F] {
	if v, ok := input.Get(); ok {
		return tea.Ok[T, F](v)
	}
	return other
}

func OrElse[T, E, F any](input tea.Result[T, E], onErr func(E) tea.Result[T, F]) tea.Result[T, F] {
	if v, ok := input.Get(); ok {
		return tea.Ok[T, F](v)
	}
	return onErr(input.UnwrapErr())
}

// Try runs onOk on the Ok value through tea.Call, so both a returned error
// and a panic become Err.
func Try[T, U any](input tea.Result[T, error], onOk func(T) (U, error)) tea.Result[U, error] {
	if v, ok := input.Get(); ok {
		return tea.Call1(onOk, v)
	}
	return tea.Err[U](input.UnwrapErr())
}

func FailOnError[T any](input tea.Result[T, error], maybeErr func(in T) error) tea.Result[T, error] {
	if v, ok := input.Get(); ok {
		if err := maybeErr(v); !tea.IsNil(err) {
			return tea.Err[T](err)
		}
	}
	return input
}

func Tee[T, E any](input tea.Result[T, E], onOk func(T)) tea.Result[T, E] {
	return input.Inspect(onOk)
}

func DoubleTee[T, E any](input tea.Result[T, E], onOk func(T), onErr func(E)) tea.Result[T, E] {
	if v, ok := input.Get(); ok {
		onOk(v)
	} else {
		onErr(input.UnwrapErr())
	}
	return input
}

// Transpose turns Result[Option[U], E] into Option[Result[U, E]].
// Ok(None) maps to None, Err(e) to Some(Err(e)).
func Transpose[U, E any](input tea.Result[tea.Option[U], E]) tea.Option[tea.Result[U, E]] {
	if e, isErr := input.GetErr(); isErr {
		return tea.Some(tea.Err[U](e))
	}
	if v, ok := input.Unwrap().Get(); ok {
		return tea.Some(tea.Ok[U, E](v))
	}
	return tea.None[tea.Result[U, E]]()
}

func Flatten[T, E any](input tea.Result[tea.Result[T, E], E]) tea.Result[T, E] {
	if inner, ok := input.Get(); ok {
		return inner
	}
	return tea.Err[T](input.UnwrapErr())
}

// Finally collapses the result into a value. Both handlers are required.
func Finally[T, E, R any](input tea.Result[T, E], onOk func(T) R, onErr func(E) R) R {
	if v, ok := input.Get(); ok {
		return onOk(v)
	}
	return onErr(input.UnwrapErr())
}

// Join returns Ok with every value, or the first Err encountered.
func Join[T, E any](inputs ...tea.Result[T, E]) tea.Result[[]T, E] {
	out := make([]T, 0, len(inputs))
	for _, in := range inputs {
		v, ok := in.Get()
		if !ok {
			return tea.Err[[]T](in.UnwrapErr())
		}
		out = append(out, v)
	}
	return tea.Ok[[]T, E](out)
}

// JoinAll is Join that keeps going past failures and reports every error
// joined with errors.Join.
func JoinAll[T any](inputs ...tea.Result[T, error]) tea.Result[[]T, error] {
	var err error
	out := make([]T, 0, len(inputs))

	for _, in := range inputs {
		if v, ok := in.Get(); ok {
			out = append(out, v)
			continue
		}
		e := tea.GetErrors(err)
		e = append(e, in.UnwrapErr())
		err = errors.Join(e...)
	}

	if tea.IsNil(err) {
		return tea.Ok[[]T, error](out)
	}
	return tea.Err[[]T](err)
}
