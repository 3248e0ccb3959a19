package types

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed operation so handlers and batch callers can tell
// a bad request apart from a missing reference, a uniqueness violation, or a
// failing collaborator.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindDependency Kind = "dependency"
)

type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Dependency(format string, args ...any) *Error {
	return &Error{Kind: KindDependency, Message: fmt.Sprintf(format, args...)}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus maps an error to the response code a handler should send.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindDependency:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// BatchFailure reports one rejected item of a bulk call. Index refers to the
// position in the caller's input so results can be correlated.
type BatchFailure struct {
	Index  int    `json:"index"`
	Kind   Kind   `json:"kind"`
	Reason string `json:"reason"`
}

func FailureAt(index int, err error) BatchFailure {
	f := BatchFailure{Index: index, Reason: err.Error()}
	var e *Error
	if errors.As(err, &e) {
		f.Kind = e.Kind
		f.Reason = e.Message
	}
	return f
}
