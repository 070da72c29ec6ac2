package speech

import (
	"errors"
	"net/http"
)

// Kind classifies a failed speech request.
type Kind int

const (
	InternalError Kind = iota
	MissingCredential
	MissingText
	TextTooLong
	InvalidCredential
	ProviderError
)

var kindNames = map[Kind]string{
	InternalError:     "InternalError",
	MissingCredential: "MissingCredential",
	MissingText:       "MissingText",
	TextTooLong:       "TextTooLong",
	InvalidCredential: "InvalidCredential",
	ProviderError:     "ProviderError",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Status is the HTTP status a caller sees for this kind.
func (k Kind) Status() int {
	switch k {
	case MissingCredential, MissingText, TextTooLong:
		return http.StatusBadRequest
	case InvalidCredential:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error is returned by Service.Generate for every failure. Message is safe to
// show to the caller; Err keeps the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf reports the Kind of err, or InternalError when err did not come
// from this package.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return InternalError
}
