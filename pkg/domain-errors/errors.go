// Package domainerrors provides coded domain errors. Services and validation
// return these so callers can branch on the failure kind without matching on
// message text; the presentation layer owns the human-readable wording.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code identifies the kind of domain failure.
type Code string

const (
	// Interactive input failures. All are recovered locally by re-prompting.
	CodeEmptyInput Code = "empty_input"
	CodeNotInteger Code = "not_integer"
	CodeOutOfRange Code = "out_of_range"

	// Field validation failures.
	CodeDateMalformed  Code = "date_malformed"
	CodeDateInFuture   Code = "date_in_future"
	CodeDateTooOld     Code = "date_too_old"
	CodeEmailMalformed Code = "email_malformed"

	// Enrollment guard failures.
	CodeNotFound            Code = "not_found"
	CodeDuplicateEnrollment Code = "duplicate_enrollment"
	CodeAgeRestricted       Code = "age_restricted"

	// Constructor and infrastructure failures.
	CodeInvariantViolation Code = "invariant_violation"
	CodeInternal           Code = "internal"
)

// Error carries a code alongside the message and an optional cause.
type Error struct {
	code  Code
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.cause }

// Code returns the error's domain code.
func (e *Error) Code() Code { return e.code }

// New constructs a coded domain error.
func New(code Code, msg string) error {
	return &Error{code: code, msg: msg}
}

// Wrap attaches a code and context message to an underlying error.
func Wrap(err error, code Code, msg string) error {
	return &Error{code: code, msg: msg, cause: err}
}

// HasCode reports whether any error in the chain carries the given code.
func HasCode(err error, code Code) bool {
	for err != nil {
		var de *Error
		if errors.As(err, &de) {
			if de.code == code {
				return true
			}
			err = de.cause
			continue
		}
		return false
	}
	return false
}

// CodeOf returns the code of the outermost domain error in the chain, or the
// empty code when err is not a domain error.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.code
	}
	return ""
}
