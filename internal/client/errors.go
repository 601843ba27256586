package client

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration indicates missing or empty API credentials. No
	// network call is attempted once this is detected.
	ErrConfiguration = errors.New("ecoflow api credentials are not configured")

	// ErrSerialRequired indicates a device operation was invoked without a
	// serial number.
	ErrSerialRequired = errors.New("device serial number is required")
)

// TransportError wraps an HTTP-level failure: network error, DNS failure,
// timeout, or a non-2xx status. The target host is included so the message
// points at the endpoint that failed.
type TransportError struct {
	Host string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.Host, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// VendorError carries a failure signalled inside a successful HTTP
// response. Code and Message are the vendor's values verbatim, so callers
// can tell invalid credentials from an unknown serial or a rate limit.
type VendorError struct {
	Code    string
	Message string
}

func (e *VendorError) Error() string {
	return fmt.Sprintf("ecoflow api returned error code %s: %s", e.Code, e.Message)
}
