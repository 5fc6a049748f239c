package collection

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrClone  = errors.New("collection: value cannot be deep-copied")
	ErrEncode = errors.New("collection: cannot encode to json")
	ErrDecode = errors.New("collection: cannot decode from json")
)

// CloneError reports the entry that failed to copy during Clone.
type CloneError struct {
	Collection uuid.UUID
	Key        any
	Err        error
}

func (e *CloneError) Error() string {
	return fmt.Sprintf("%v: key=%v: %v", ErrClone, e.Key, e.Err)
}

func (e *CloneError) Unwrap() []error {
	return []error{ErrClone, e.Err}
}

// EncodeError reports a ToJSON failure.
type EncodeError struct {
	Collection uuid.UUID
	Err        error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%v: %v", ErrEncode, e.Err)
}

func (e *EncodeError) Unwrap() []error {
	return []error{ErrEncode, e.Err}
}
