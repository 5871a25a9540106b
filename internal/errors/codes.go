package errors

import "net/http"

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// FromHTTPStatus maps a status answered by the remote service to a code.
// Statuses below 400 map to CodeOK.
func FromHTTPStatus(status int) Code {
	switch {
	case status < http.StatusBadRequest:
		return CodeOK
	case status == http.StatusUnauthorized:
		return CodeUnauthenticated
	case status == http.StatusForbidden:
		return CodePermissionDenied
	case status == http.StatusNotFound:
		return CodeNotFound
	case status == http.StatusRequestTimeout:
		return CodeDeadlineExceeded
	case status == http.StatusTooManyRequests:
		return CodeResourceExhausted
	case status == http.StatusBadRequest:
		return CodeInvalidArgument
	case status >= http.StatusInternalServerError:
		return CodeUnavailable
	default:
		// 402 not enough gems/gold, 409 conflicting state, and so on
		return CodeFailedPrecondition
	}
}
