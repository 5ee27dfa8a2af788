package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/esportlab/elab/pkg/proto"
)

// Problem is an RFC 7807 problem-detail payload as returned by the backend
// on non-2xx responses.
type Problem struct {
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Status   int    `json:"status"`
	Type     string `json:"type,omitempty"`
	Instance string `json:"instance,omitempty"`
	TraceID  string `json:"traceId,omitempty"`
}

// Error is an API error. It carries the HTTP status and, when the backend
// sent one, the structured problem document.
type Error struct {
	StatusCode int
	Problem    *Problem
	RequestID  string
}

// Error implements error. Structured errors surface the backend's detail
// verbatim; bare statuses fall back to the HTTP status text.
func (e *Error) Error() string {
	if e.Problem != nil && e.Problem.Detail != "" {
		return e.Problem.Detail
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Is maps HTTP statuses onto the proto sentinel errors so callers can use
// errors.Is without caring about transport details.
func (e *Error) Is(target error) bool {
	switch target {
	case proto.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case proto.ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	}
	return false
}

// IsRetryable reports whether a failed read request may be retried. Client
// error classes must not be retried; connectivity failures and server
// errors may.
func IsRetryable(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 || apiErr.StatusCode == http.StatusTooManyRequests
	}

	// Non-API errors are transport failures.
	return err != nil
}
