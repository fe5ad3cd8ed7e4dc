// Package apperror holds the error taxonomy of the image ingestion pipeline
// and its mapping onto HTTP status codes.
package apperror

import (
	"errors"
	"net/http"
)

type Kind string

const (
	TooManyFiles      Kind = "TooManyFiles"
	FileTooLarge      Kind = "FileTooLarge"
	UnexpectedField   Kind = "UnexpectedField"
	UnsupportedFormat Kind = "UnsupportedFormat"
	MissingImage      Kind = "MissingImage"
	InvalidField      Kind = "InvalidField"
	MalformedRequest  Kind = "MalformedRequest"

	NotFound Kind = "NotFound"

	RemoteStoreFailure Kind = "RemoteStoreFailure"
	PersistenceFailure Kind = "PersistenceFailure"

	// CompressionFailure is recovered inside the pipeline and never reaches
	// the HTTP boundary.
	CompressionFailure Kind = "CompressionFailure"

	Internal Kind = "Internal"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func New(kind Kind, message string, err error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case TooManyFiles, FileTooLarge, UnexpectedField, UnsupportedFormat,
		MissingImage, InvalidField, MalformedRequest:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// KindOf returns the kind carried by err, or Internal when err holds no *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}

	return Internal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
