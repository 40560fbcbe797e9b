package yxc

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"syscall"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error (host unreachable, reset, etc.)
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates a request timeout (only possible when a timeout is configured)
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates the device refused the connection
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates a DNS resolution failure
	ErrTypeDNS
	// ErrTypeConnection indicates the device could not be reached while it was being opened
	ErrTypeConnection
	// ErrTypeParse indicates a successful response whose body was not a JSON object
	ErrTypeParse
	// ErrTypeValidation indicates invalid input (malformed address, bad parameter)
	ErrTypeValidation
)

// NetworkErrorSubtype provides more specific network error classification
type NetworkErrorSubtype int

const (
	NetworkErrorGeneral NetworkErrorSubtype = iota
	NetworkErrorTimeout
	NetworkErrorConnectionRefused
	NetworkErrorDNS
	NetworkErrorHostUnreachable
	NetworkErrorNetworkUnreachable
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeConnection:
		return "Connection Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeValidation:
		return "Validation Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// DeviceError represents an error that occurred while talking to a receiver
type DeviceError struct {
	Type           ErrorType           // Category of error
	Message        string              // Human-readable error message
	StatusCode     int                 // HTTP status code (if applicable)
	URL            string              // Request URL (if applicable)
	Err            error               // Underlying error (if any)
	NetworkSubtype NetworkErrorSubtype // More specific network error type
	DeviceIP       string              // Device address (for context)
	Retryable      bool                // Whether the error is retryable
}

// Error implements the error interface
func (e *DeviceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *DeviceError) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError analyzes a transport error and returns a more specific error type
func ClassifyNetworkError(err error, deviceIP string) *DeviceError {
	if err == nil {
		return nil
	}

	if os.IsTimeout(err) {
		return &DeviceError{
			Type:           ErrTypeTimeout,
			Message:        "Request timed out",
			Err:            err,
			NetworkSubtype: NetworkErrorTimeout,
			DeviceIP:       deviceIP,
			Retryable:      true,
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &DeviceError{
			Type:           ErrTypeDNS,
			Message:        fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:            err,
			NetworkSubtype: NetworkErrorDNS,
			DeviceIP:       deviceIP,
			Retryable:      false,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if errors.Is(opErr.Err, syscall.ECONNREFUSED) {
			return &DeviceError{
				Type:           ErrTypeConnectionRefused,
				Message:        "Device refused connection",
				Err:            err,
				NetworkSubtype: NetworkErrorConnectionRefused,
				DeviceIP:       deviceIP,
				Retryable:      true,
			}
		}
		if errors.Is(opErr.Err, syscall.EHOSTUNREACH) {
			return &DeviceError{
				Type:           ErrTypeNetwork,
				Message:        "Host unreachable",
				Err:            err,
				NetworkSubtype: NetworkErrorHostUnreachable,
				DeviceIP:       deviceIP,
				Retryable:      true,
			}
		}
		if errors.Is(opErr.Err, syscall.ENETUNREACH) {
			return &DeviceError{
				Type:           ErrTypeNetwork,
				Message:        "Network unreachable",
				Err:            err,
				NetworkSubtype: NetworkErrorNetworkUnreachable,
				DeviceIP:       deviceIP,
				Retryable:      true,
			}
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil && urlErr.Err != err {
		return ClassifyNetworkError(urlErr.Err, deviceIP)
	}

	return &DeviceError{
		Type:           ErrTypeNetwork,
		Message:        "Network error occurred",
		Err:            err,
		NetworkSubtype: NetworkErrorGeneral,
		DeviceIP:       deviceIP,
		Retryable:      true,
	}
}

// NewNetworkError creates a transport-level error with automatic classification
func NewNetworkError(message, target string, err error) *DeviceError {
	classified := ClassifyNetworkError(err, hostOf(target))
	if classified == nil {
		classified = &DeviceError{
			Type:      ErrTypeNetwork,
			Message:   message,
			Retryable: true,
		}
	}
	classified.Message = message
	classified.URL = target
	return classified
}

// NewConnectionError reports that the receiver at target could not be reached
// while opening a Device. cause is nil when the device answered with a
// non-success status.
func NewConnectionError(target string, cause error) *DeviceError {
	return &DeviceError{
		Type:      ErrTypeConnection,
		Message:   fmt.Sprintf("Unable to connect to %s", target),
		URL:       target,
		Err:       cause,
		DeviceIP:  hostOf(target),
		Retryable: false,
	}
}

// NewParseError creates a parsing error
func NewParseError(message, target string, statusCode int, err error) *DeviceError {
	return &DeviceError{
		Type:       ErrTypeParse,
		Message:    message,
		URL:        target,
		StatusCode: statusCode,
		Err:        err,
		Retryable:  false,
	}
}

// NewValidationError creates a validation error
func NewValidationError(message string) *DeviceError {
	return &DeviceError{
		Type:      ErrTypeValidation,
		Message:   message,
		Retryable: false,
	}
}

func asDeviceError(err error) (*DeviceError, bool) {
	var devErr *DeviceError
	if errors.As(err, &devErr) {
		return devErr, true
	}
	return nil, false
}

// IsNetworkError checks if an error is a transport failure, including the
// connection error raised while opening a Device
func IsNetworkError(err error) bool {
	devErr, ok := asDeviceError(err)
	if !ok {
		return false
	}
	switch devErr.Type {
	case ErrTypeNetwork, ErrTypeTimeout, ErrTypeConnectionRefused, ErrTypeDNS, ErrTypeConnection:
		return true
	}
	return false
}

// IsConnectionError checks if an error is the connection error raised by NewDevice
func IsConnectionError(err error) bool {
	devErr, ok := asDeviceError(err)
	return ok && devErr.Type == ErrTypeConnection
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	devErr, ok := asDeviceError(err)
	return ok && devErr.Type == ErrTypeParse
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	devErr, ok := asDeviceError(err)
	return ok && devErr.Type == ErrTypeValidation
}

// IsRetryable checks if an error should be retried
func IsRetryable(err error) bool {
	devErr, ok := asDeviceError(err)
	if !ok {
		return false
	}
	return devErr.Retryable
}

// GetTroubleshootingHint returns user-friendly troubleshooting advice for an error
func GetTroubleshootingHint(err error) string {
	devErr, ok := asDeviceError(err)
	if !ok {
		return "An unexpected error occurred. Please try again."
	}

	switch devErr.Type {
	case ErrTypeTimeout:
		return strings.Join([]string{
			"The receiver did not respond in time.",
			"Troubleshooting:",
			"  • Check that the receiver is powered on (standby still answers)",
			"  • Verify the receiver and this computer are on the same network",
			"  • Try increasing --timeout",
		}, "\n")

	case ErrTypeConnectionRefused:
		return strings.Join([]string{
			"The receiver refused the connection.",
			"Troubleshooting:",
			"  • Confirm the address belongs to a MusicCast receiver",
			"  • Check whether network standby is enabled on the receiver",
			"  • Verify the port number (default is 80)",
		}, "\n")

	case ErrTypeDNS:
		return strings.Join([]string{
			"Could not resolve the receiver hostname.",
			"Troubleshooting:",
			"  • Use the receiver's IPv4 address instead of a hostname",
		}, "\n")

	case ErrTypeConnection:
		return strings.Join([]string{
			"The receiver could not be opened.",
			"Troubleshooting:",
			"  • Check the address shown in the error",
			"  • Open the MusicCast app and confirm the receiver is online",
			"  • Try pinging the receiver: ping " + devErr.DeviceIP,
		}, "\n")

	case ErrTypeNetwork:
		hint := []string{"Network communication failed."}

		switch devErr.NetworkSubtype {
		case NetworkErrorHostUnreachable:
			hint = append(hint, "The receiver is not reachable on the network.",
				"Troubleshooting:",
				"  • Verify the receiver address is correct",
				"  • Check that you're on the same network as the receiver",
				"  • Try pinging the receiver: ping "+devErr.DeviceIP)

		case NetworkErrorNetworkUnreachable:
			hint = append(hint, "Your computer cannot reach the receiver's network.",
				"Troubleshooting:",
				"  • Check your network adapter settings",
				"  • Verify WiFi or Ethernet is connected")

		default:
			hint = append(hint, "Troubleshooting:",
				"  • Check your network connection",
				"  • Verify the receiver is powered on")
		}

		return strings.Join(hint, "\n")

	case ErrTypeParse:
		return strings.Join([]string{
			"Failed to parse the receiver's response.",
			"The endpoint may not exist on this model or firmware.",
		}, "\n")

	case ErrTypeValidation:
		return "The supplied value is invalid. Check the error message for details."

	default:
		return "An error occurred. Please check the error message for details."
	}
}

// GetShortErrorMessage returns a concise, user-friendly error message
func GetShortErrorMessage(err error) string {
	devErr, ok := asDeviceError(err)
	if !ok {
		return err.Error()
	}

	switch devErr.Type {
	case ErrTypeTimeout:
		return "Receiver not responding (timeout)"
	case ErrTypeConnectionRefused:
		return "Receiver refused connection"
	case ErrTypeDNS:
		return "Cannot resolve receiver hostname"
	case ErrTypeConnection:
		return devErr.Message
	case ErrTypeNetwork:
		switch devErr.NetworkSubtype {
		case NetworkErrorHostUnreachable:
			return "Receiver unreachable - check network connection"
		case NetworkErrorNetworkUnreachable:
			return "Network unreachable - check connection"
		default:
			return "Network error - check connection"
		}
	case ErrTypeParse:
		return "Failed to parse receiver response"
	default:
		return devErr.Message
	}
}

// hostOf extracts the host part of a request URL for error context
func hostOf(target string) string {
	u, err := url.Parse(target)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
