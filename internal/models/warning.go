package models

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorClass classifies a per-directory failure
type ErrorClass int

const (
	// ClassOther covers I/O failures other than the two below.
	ClassOther ErrorClass = iota
	// ClassNotFound means the path vanished or never existed.
	ClassNotFound
	// ClassPermissionDenied means the directory could not be opened or listed.
	ClassPermissionDenied
)

// String returns the string representation of ErrorClass.
func (c ErrorClass) String() string {
	switch c {
	case ClassNotFound:
		return "not_found"
	case ClassPermissionDenied:
		return "permission_denied"
	default:
		return "other"
	}
}

// ClassifyError maps a filesystem error to its ErrorClass.
func ClassifyError(err error) ErrorClass {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ClassNotFound
	case errors.Is(err, fs.ErrPermission):
		return ClassPermissionDenied
	default:
		return ClassOther
	}
}

// Warning is a non-fatal failure attached to one subtree
type Warning struct {
	Path  string     // Subtree that could not be read
	Class ErrorClass // Error classification
	Err   error      // Underlying error
}

// NewWarning creates a Warning for path, classifying err.
func NewWarning(path string, err error) Warning {
	return Warning{
		Path:  path,
		Class: ClassifyError(err),
		Err:   err,
	}
}

// Error implements the error interface so a Warning can travel as one.
func (w Warning) Error() string {
	return fmt.Sprintf("%s: %v", w.Path, w.Err)
}

// Unwrap returns the underlying error.
func (w Warning) Unwrap() error {
	return w.Err
}
