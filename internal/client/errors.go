package client

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
)

// ErrorType represents the category of a failed API call
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error (connection refused, timeout, etc.)
	ErrTypeNetwork ErrorType = iota
	// ErrTypeAuth indicates an authentication failure (invalid credentials)
	ErrTypeAuth
	// ErrTypeHTTP indicates an HTTP-level error (non-2xx status code)
	ErrTypeHTTP
	// ErrTypeParse indicates a parsing error (malformed JSON, invalid response)
	ErrTypeParse
	// ErrTypeDNS indicates a DNS resolution failure
	ErrTypeDNS
	// ErrTypeTimeout indicates a request timeout
	ErrTypeTimeout
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeAuth:
		return "Authentication Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeTimeout:
		return "Timeout"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// APIError represents a failed call against the server
type APIError struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	Server     string    // Server base URL (for context)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *APIError) Unwrap() error {
	return e.Err
}

// ErrBadLogin is returned by Login when the server rejects the credentials.
// The login screen matches on it to re-prompt instead of erroring out
var ErrBadLogin = errors.New("bad username or password")

// ClassifyNetworkError analyzes a transport error and wraps it with the
// most specific category it can determine
func ClassifyNetworkError(err error, server string) *APIError {
	if err == nil {
		return nil
	}

	if os.IsTimeout(err) {
		return &APIError{
			Type:    ErrTypeTimeout,
			Message: "Request timed out",
			Server:  server,
			Err:     err,
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &APIError{
			Type:    ErrTypeDNS,
			Message: fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Server:  server,
			Err:     err,
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		// Recursively classify the underlying error
		classified := ClassifyNetworkError(urlErr.Err, server)
		if classified != nil {
			return classified
		}
	}

	return &APIError{
		Type:    ErrTypeNetwork,
		Message: "Network error occurred",
		Server:  server,
		Err:     err,
	}
}

// NewAuthError creates an authentication error
func NewAuthError(message string, server string) *APIError {
	return &APIError{
		Type:    ErrTypeAuth,
		Message: message,
		Server:  server,
	}
}

// NewHTTPError creates an HTTP-level error
func NewHTTPError(statusCode int, message string, server string) *APIError {
	return &APIError{
		Type:       ErrTypeHTTP,
		Message:    message,
		StatusCode: statusCode,
		Server:     server,
	}
}

// NewParseError creates a response parsing error
func NewParseError(message string, err error) *APIError {
	return &APIError{
		Type:    ErrTypeParse,
		Message: message,
		Err:     err,
	}
}

// IsAuthError reports whether err is an authentication failure
func IsAuthError(err error) bool {
	if errors.Is(err, ErrBadLogin) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Type == ErrTypeAuth
}
