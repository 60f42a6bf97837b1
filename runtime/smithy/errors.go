package smithy

import (
	"errors"
	"fmt"
)

// ErrorFault classifies the party responsible for an API error.
type ErrorFault int

// Fault classifications.
const (
	FaultUnknown ErrorFault = iota
	FaultClient
	FaultServer
)

// String returns the fault name.
func (f ErrorFault) String() string {
	switch f {
	case FaultClient:
		return "client"
	case FaultServer:
		return "server"
	default:
		return "unknown"
	}
}

// APIError is the base contract implemented by every generated error type.
type APIError interface {
	error
	// ErrorCode returns the modeled error name.
	ErrorCode() string
	// ErrorMessage returns the message sent by the service, if any.
	ErrorMessage() string
	// ErrorFault reports who caused the error.
	ErrorFault() ErrorFault
}

// RetryableError is implemented by errors modeled as retryable.
type RetryableError interface {
	error
	Retryable() bool
}

// GenericAPIError is an APIError for error codes that have no generated type.
type GenericAPIError struct {
	Code    string
	Message string
	Fault   ErrorFault
}

// Error implements the error interface.
func (e *GenericAPIError) Error() string {
	return fmt.Sprintf("api error %s: %s", e.Code, e.Message)
}

// ErrorCode implements APIError.
func (e *GenericAPIError) ErrorCode() string { return e.Code }

// ErrorMessage implements APIError.
func (e *GenericAPIError) ErrorMessage() string { return e.Message }

// ErrorFault implements APIError.
func (e *GenericAPIError) ErrorFault() ErrorFault { return e.Fault }

var _ APIError = (*GenericAPIError)(nil)

// IsRetryable reports whether err, or an error it wraps, is a RetryableError
// that reports itself as retryable.
func IsRetryable(err error) bool {
	var re RetryableError
	return errors.As(err, &re) && re.Retryable()
}
