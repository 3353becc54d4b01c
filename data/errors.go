package data

import (
	"errors"
	"fmt"
)

// ErrEmptyKeyword is returned when a keyword would be stored with an empty
// value. An empty keyword matches every entry, so it is rejected at the
// storage boundary no matter what the caller validated.
var ErrEmptyKeyword = errors.New("keyword value is empty")

// StorageError wraps any failure of the underlying database so callers can
// distinguish storage trouble from domain conditions like "not found".
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
