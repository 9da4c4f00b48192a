// Package jerrors provides custom error types for jules42.
// These error types let command code distinguish user mistakes and expected
// remote conditions from transport failures.
package jerrors

import (
	"fmt"
)

// JulesError is the base interface for all jules42 errors
type JulesError interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all jules42 errors
type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// UsageError represents an invalid command invocation, such as a missing
// required option combination. Commands abort immediately with a non-zero
// exit when one is raised.
type UsageError struct {
	baseError
}

// NewUsageError creates a new usage error
func NewUsageError(message string) *UsageError {
	return &UsageError{
		baseError: baseError{
			code:    "USAGE_ERROR",
			message: message,
		},
	}
}

// ChecksumNotFoundError is returned when the remote store has no file
// content matching the requested checksum. It is distinct from transport
// failures so callers can report it as a plain message.
type ChecksumNotFoundError struct {
	baseError
	Checksum string
}

// NewChecksumNotFoundError creates a new checksum-not-found error
func NewChecksumNotFoundError(checksum string, message string) *ChecksumNotFoundError {
	return &ChecksumNotFoundError{
		baseError: baseError{
			code:    "CHECKSUM_NOT_FOUND",
			message: message,
		},
		Checksum: checksum,
	}
}

// ProfileError represents errors in the credential profile store
type ProfileError struct {
	baseError
	Profile string
}

// NewProfileError creates a new profile error
func NewProfileError(profile string, message string, cause error) *ProfileError {
	return &ProfileError{
		baseError: baseError{
			code:    "PROFILE_ERROR",
			message: message,
			cause:   cause,
		},
		Profile: profile,
	}
}

// APIError represents a non-success response from the platform API
type APIError struct {
	baseError
	StatusCode int
}

// NewAPIError creates a new API error
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{
		baseError: baseError{
			code:    "API_ERROR",
			message: message,
		},
		StatusCode: statusCode,
	}
}
