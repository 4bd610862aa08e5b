package activities

import (
	"errors"
	"fmt"
)

type ErrorReason string

const (
	REASON_ACTIVITY_DOES_NOT_EXIST  ErrorReason = "ACTIVITY_DOES_NOT_EXIST"
	REASON_ACTIVITY_ALREADY_EXISTS  ErrorReason = "ACTIVITY_ALREADY_EXISTS"
	REASON_PARTICIPANT_NOT_ENROLLED ErrorReason = "PARTICIPANT_NOT_ENROLLED"
	REASON_ALREADY_ENROLLED         ErrorReason = "ALREADY_ENROLLED"
	REASON_VERSION_CONFLICT         ErrorReason = "VERSION_CONFLICT"
	REASON_FAILED_TO_FETCH          ErrorReason = "FAILED_TO_FETCH"
	REASON_FAILED_TO_WRITE          ErrorReason = "FAILED_TO_WRITE"
)

type Error struct {
	Reason  ErrorReason
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Reason, e.Message)
	}
	return fmt.Sprintf("%s: %s. Cause: %s", e.Reason, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newActivityError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewActivityDoesNotExistError(message string, cause error) *Error {
	return newActivityError(REASON_ACTIVITY_DOES_NOT_EXIST, message, cause)
}

func NewActivityAlreadyExistsError(message string, cause error) *Error {
	return newActivityError(REASON_ACTIVITY_ALREADY_EXISTS, message, cause)
}

func NewParticipantNotEnrolledError(activityName string, email string) *Error {
	return newActivityError(REASON_PARTICIPANT_NOT_ENROLLED, fmt.Sprintf("%q is not enrolled in %q", email, activityName), nil)
}

func NewAlreadyEnrolledError(activityName string, email string) *Error {
	return newActivityError(REASON_ALREADY_ENROLLED, fmt.Sprintf("%q is already enrolled in %q", email, activityName), nil)
}

func NewVersionConflictError(message string, cause error) *Error {
	return newActivityError(REASON_VERSION_CONFLICT, message, cause)
}

func NewFailedToFetchError(message string, cause error) *Error {
	return newActivityError(REASON_FAILED_TO_FETCH, message, cause)
}

func NewFailedToWriteError(message string, cause error) *Error {
	return newActivityError(REASON_FAILED_TO_WRITE, message, cause)
}

// HasReason reports whether err is, or wraps, an *Error with the given reason.
func HasReason(err error, reason ErrorReason) bool {
	var actErr *Error
	if !errors.As(err, &actErr) {
		return false
	}
	return actErr.Reason == reason
}
