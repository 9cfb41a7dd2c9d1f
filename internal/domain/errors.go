package domain

import "errors"

// ErrorKind identifies one failure class of the calculator. The enumeration
// is closed; Message is total over it and maps anything else to
// "Unknown error".
type ErrorKind string

const (
	KindNullOrEmptyInput      ErrorKind = "null_or_empty_input"
	KindInvalidFormat         ErrorKind = "invalid_format"
	KindInvalidDate           ErrorKind = "invalid_date"
	KindDateConversionError   ErrorKind = "date_conversion_error"
	KindSystemTimeUnavailable ErrorKind = "system_time_unavailable"
	KindFutureDateError       ErrorKind = "future_date_error"
)

// Error is a tagged calculator error. Errors of the same Kind compare equal
// under errors.Is regardless of Detail or Cause.
type Error struct {
	Kind   ErrorKind
	Detail string
	Cause  error
}

// NewError creates an error of the given kind with no extra detail.
func NewError(kind ErrorKind) *Error {
	return &Error{Kind: kind}
}

func (e *Error) Error() string {
	msg := Message(e.Kind)
	if e.Detail != "" {
		return msg + ": " + e.Detail
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Message returns the fixed display text for an error kind.
func Message(kind ErrorKind) string {
	switch kind {
	case KindNullOrEmptyInput:
		return "No date provided"
	case KindInvalidFormat:
		return "Invalid date format"
	case KindInvalidDate:
		return "Invalid date value"
	case KindDateConversionError:
		return "Failed to convert date"
	case KindSystemTimeUnavailable:
		return "Failed to get system time"
	case KindFutureDateError:
		return "LNMP date is in the future"
	default:
		return "Unknown error"
	}
}

// MessageFor maps any error to its fixed display text. Errors that are not
// calculator errors map to "Unknown error".
func MessageFor(err error) string {
	var cerr *Error
	if errors.As(err, &cerr) {
		return Message(cerr.Kind)
	}
	return Message("")
}
