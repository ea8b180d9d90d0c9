package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the targets of errors.Is checks throughout
// the application.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrVersionIsInvalid  = errors.New("version is invalid")
	ErrConfiguration     = errors.New("configuration is broken")
	ErrAccessDenied      = errors.New("access denied")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrEmptyAssignment   = errors.New("assignment is empty")
)

// sanitize collapses newlines into spaces so error messages stay on a single
// log line.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

// ObjectNotFoundError indicates that a requested object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping
// the underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping
// the underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value lies outside its allowed range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping
// the underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping
// the underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates that an aggregate version check failed.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError wrapping the
// underlying cause.
func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without a cause.
func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName))
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// ConfigurationError indicates broken provisioning, such as a missing
// sequence counter document. It is fatal for the operation and must be
// surfaced to an operator rather than retried.
type ConfigurationError struct {
	Detail string
	Cause  error
}

// NewConfigurationError creates a ConfigurationError without a cause.
func NewConfigurationError(detail string) *ConfigurationError {
	return &ConfigurationError{Detail: detail}
}

// NewConfigurationErrorWithCause creates a ConfigurationError wrapping the
// underlying cause.
func NewConfigurationErrorWithCause(detail string, cause error) *ConfigurationError {
	return &ConfigurationError{Detail: detail, Cause: cause}
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrConfiguration, e.Detail, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConfiguration, e.Detail))
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// AccessDeniedError indicates that the access gate refused an operation.
// Reason holds a machine-readable code (no_session, email_unverified,
// pending_approval, role_mismatch) so callers can route to the correct
// remediation view.
type AccessDeniedError struct {
	Reason string
}

// NewAccessDeniedError creates an AccessDeniedError with the given reason code.
func NewAccessDeniedError(reason string) *AccessDeniedError {
	return &AccessDeniedError{Reason: reason}
}

func (e *AccessDeniedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrAccessDenied, e.Reason))
}

func (e *AccessDeniedError) Unwrap() error {
	return ErrAccessDenied
}

// InvalidTransitionError indicates a rejected order status transition,
// either because the current status is terminal or the target status is
// not recognized.
type InvalidTransitionError struct {
	From string
	To   string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// origin and target statuses.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// EmptyAssignmentError indicates an assignment operation received no
// assignable value (an empty technician list or a blank sales label).
type EmptyAssignmentError struct {
	ParamName string
}

// NewEmptyAssignmentError creates an EmptyAssignmentError for the given parameter.
func NewEmptyAssignmentError(paramName string) *EmptyAssignmentError {
	return &EmptyAssignmentError{ParamName: paramName}
}

func (e *EmptyAssignmentError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrEmptyAssignment, e.ParamName))
}

func (e *EmptyAssignmentError) Unwrap() error {
	return ErrEmptyAssignment
}
