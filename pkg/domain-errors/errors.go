// Package domainerrors defines coded errors that cross service boundaries.
// Services attach a Code describing what went wrong; the transport layer maps
// codes to HTTP statuses without inspecting error strings.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a class of failure. Codes are part of the client-visible API:
// every distinct validation failure gets its own code so clients can tell them
// apart without parsing messages.
type Code string

const (
	CodeBadRequest Code = "bad_request"
	CodeNotFound   Code = "not_found"
	CodeInternal   Code = "internal"

	// Shuffle and reading validation codes.
	CodeEmptyCatalog     Code = "empty_catalog"
	CodeMissingShuffleID Code = "missing_shuffle_id"
	CodeShuffleNotFound  Code = "shuffle_not_found"
	CodeMissingQuestion  Code = "missing_question"
	CodePicksNotArray    Code = "picks_not_array"
	CodeWrongPickCount   Code = "wrong_pick_count"
	CodeInvalidPick      Code = "invalid_pick"
	CodePickOutOfPool    Code = "pick_out_of_pool"
	CodeDuplicatePick    Code = "duplicate_pick"
)

// Error is a coded error with an optional wrapped cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a coded error with a message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap annotates a cause with a code and message.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for uncoded errors.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// MessageOf extracts the client-safe message from err. Uncoded errors get a
// generic message so internals never leak to clients.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}

// ToHTTPStatus maps a code to its HTTP status. Every validation code is a 400:
// they are all caused by malformed client input, never by server state.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeEmptyCatalog, CodeInternal:
		return http.StatusInternalServerError
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
