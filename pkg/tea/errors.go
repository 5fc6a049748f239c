package tea

import (
	"errors"
	"fmt"
)

var (
	ErrUnwrapNone = errors.New("unwrap on None value")
	ErrUnwrapErr  = errors.New("unwrap on Err value")
	ErrUnwrapOk   = errors.New("unwrap_err on Ok value")
)

// UnwrapError is the panic value raised by Unwrap, Expect, UnwrapErr and ExpectErr
// when called on the wrong variant.
type UnwrapError struct {
	Kind    error
	Msg     string
	Payload any
}

func (e *UnwrapError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.Payload != nil {
		return fmt.Sprintf("%s: %v", msg, e.Payload)
	}
	return msg
}

// Unwrap exposes both the kind and, when it is an error, the payload of the wrong variant.
func (e *UnwrapError) Unwrap() []error {
	errs := []error{e.Kind}
	if err, ok := e.Payload.(error); ok && !IsNil(err) {
		errs = append(errs, err)
	}
	return errs
}

func unwrapFailure(kind error, msg string, payload any) {
	panic(&UnwrapError{Kind: kind, Msg: msg, Payload: payload})
}

// PanicError holds a value recovered from a panic inside Call.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
