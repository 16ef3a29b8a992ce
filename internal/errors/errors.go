// Package errors defines custom error types for the info query.
// QueryError classifies every failure so the entry point can pick an exit code.
package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/amaumene/nyaainfo/internal/constants"
)

// QueryError represents errors that occur while querying torrent info
type QueryError struct {
	Type    string
	Message string
	Cause   error
}

func (e *QueryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *QueryError) Unwrap() error {
	return e.Cause
}

// Error type constants
const (
	ErrorTypeUsage         = "USAGE"
	ErrorTypeAuthConfig    = "AUTH_CONFIG"
	ErrorTypeTransport     = "TRANSPORT"
	ErrorTypeResponseParse = "RESPONSE_PARSE"
	ErrorTypeAPI           = "API_ERROR"
)

// NewQueryError creates a new QueryError
func NewQueryError(errorType, message string, cause error) *QueryError {
	return &QueryError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewUsageError creates a command-line usage error
func NewUsageError(message string) *QueryError {
	return NewQueryError(ErrorTypeUsage, message, nil)
}

// NewInvalidTargetError creates an error for an identifier that is neither an id nor a hash
func NewInvalidTargetError(target string) *QueryError {
	return NewUsageError(fmt.Sprintf("query %q was not a valid id or valid hash", target))
}

// NewAuthConfigError creates a missing credentials error
func NewAuthConfigError() *QueryError {
	return NewQueryError(ErrorTypeAuthConfig, "no authorization found from arguments or environment variables", nil)
}

// NewTransportError creates an HTTP transport error
func NewTransportError(url string, cause error) *QueryError {
	return NewQueryError(ErrorTypeTransport, fmt.Sprintf("request to %s failed", url), cause)
}

// NewResponseParseError creates an error for a body that is not JSON.
// The message is the text shown to the user.
func NewResponseParseError(body string, cause error) *QueryError {
	return NewQueryError(ErrorTypeResponseParse, "Bad response:\n"+body, cause)
}

// NewAPIError creates an error for a response carrying an errors field
func NewAPIError(apiErrors string) *QueryError {
	return NewQueryError(ErrorTypeAPI, "Info request failed: "+apiErrors, nil)
}

// TypeOf returns the QueryError type in err's chain, or "" if there is none.
func TypeOf(err error) string {
	var qe *QueryError
	if stderrors.As(err, &qe) {
		return qe.Type
	}
	return ""
}

// IsRecovered reports whether err is a response-level failure whose message
// is meant for stdout.
func IsRecovered(err error) bool {
	switch TypeOf(err) {
	case ErrorTypeResponseParse, ErrorTypeAPI:
		return true
	}
	return false
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return constants.ExitOK
	}
	switch TypeOf(err) {
	case ErrorTypeResponseParse, ErrorTypeAPI:
		return constants.ExitBadResult
	case ErrorTypeUsage, ErrorTypeAuthConfig:
		return constants.ExitUsage
	case ErrorTypeTransport:
		return constants.ExitTransport
	}
	return constants.ExitBadResult
}
