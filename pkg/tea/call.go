package tea

import (
	"runtime/debug"

	log "github.com/sirupsen/logrus"
)

// Call runs f and captures its outcome: Ok on success, Err on a non-nil error,
// Err(*PanicError) when f panics.
func Call[T any](f func() (T, error)) (res Result[T, error]) {
	defer func() {
		if r := recover(); r != nil {
			perr := &PanicError{Value: r, Stack: debug.Stack()}
			log.Debugf("Call: recovered panic, err=%v", perr)
			res = Err[T, error](perr)
		}
	}()

	v, err := f()
	if !IsNil(err) {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

func Call1[A, T any](f func(A) (T, error), a A) Result[T, error] {
	return Call(func() (T, error) { return f(a) })
}

func Call2[A, B, T any](f func(A, B) (T, error), a A, b B) Result[T, error] {
	return Call(func() (T, error) { return f(a, b) })
}

// CallValue is Call for functions that signal failure only by panicking.
func CallValue[T any](f func() T) Result[T, error] {
	return Call(func() (T, error) { return f(), nil })
}
