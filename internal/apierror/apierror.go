// Package apierror provides standardized error types and response envelopes
// for the API. All errors returned to clients go through this package to
// ensure consistency and to prevent leaking internal details (stack traces,
// DB errors, etc.).
package apierror

import "errors"

// Kind classifies an error into one of the HTTP-mappable categories.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindBusinessRule
)

// Error is the canonical application error. Services construct these;
// the handler layer maps Kind to an HTTP status code.
type Error struct {
	Kind    Kind
	Message string
	Details map[string]string
}

func (e *Error) Error() string { return e.Message }

// Response is the wire envelope for all 4xx/5xx HTTP responses.
type Response struct {
	ErrorMsg string            `json:"error"`
	Details  map[string]string `json:"details,omitempty"`
}

func NewResponse(msg string) *Response { return &Response{ErrorMsg: msg} }

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// ValidationFields wraps multiple field-level errors.
func ValidationFields(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Details: fields}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// BusinessRule marks a request that is well-formed but violates a domain
// invariant (overpayment, invalid state transition, referenced-entity delete).
func BusinessRule(msg string) *Error {
	return &Error{Kind: KindBusinessRule, Message: msg}
}

func Internal(msg string) *Error {
	return &Error{Kind: KindInternal, Message: msg}
}

// KindOf extracts the Kind from any error chain. Unknown errors are internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}
