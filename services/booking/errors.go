package booking

import (
	"errors"
	"fmt"
)

// RejectionCode classifies the expected business outcomes of a booking
// request. Rejections are routine results, not failures: guests hitting
// unavailable dates is normal traffic.
type RejectionCode string

const (
	RejectInvalidRange      RejectionCode = "INVALID_RANGE"
	RejectOverCapacity      RejectionCode = "OVER_CAPACITY"
	RejectStayLength        RejectionCode = "STAY_LENGTH_VIOLATION"
	RejectDatesUnavailable  RejectionCode = "DATES_UNAVAILABLE"
	RejectNoLongerAvailable RejectionCode = "NO_LONGER_AVAILABLE"
)

// Rejection is a typed admission-control outcome.
type Rejection struct {
	Code    RejectionCode
	Message string
}

func (e *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewRejection(code RejectionCode, msg string) *Rejection {
	return &Rejection{Code: code, Message: msg}
}

// AsRejection unwraps a Rejection from an error chain.
func AsRejection(err error) (*Rejection, bool) {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

// ValidationError marks malformed input rejected before any store access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

// AsValidationError unwraps a ValidationError from an error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// TransitionError reports an attempt to move a booking through an edge the
// lifecycle does not define.
type TransitionError struct {
	From   string
	Action string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s a booking in status %s", e.Action, e.From)
}
