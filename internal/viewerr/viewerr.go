// Package viewerr defines the typed errors returned at the view-selection
// boundary. Callers render any of them as "no chart for this selection".
package viewerr

import (
	"errors"
	"fmt"
)

// Error codes.
const (
	CodeNoData          = "no_data"
	CodeUnsupportedView = "unsupported_view"
	CodeInternal        = "view_error"
)

// Sentinels for errors.Is. Only Code is compared.
var (
	ErrNoData          = &Error{Code: CodeNoData}
	ErrUnsupportedView = &Error{Code: CodeUnsupportedView}
	ErrInternal        = &Error{Code: CodeInternal}
)

// Error is a typed view failure that can be surfaced to clients.
type Error struct {
	Code    string
	View    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Code
	if e.View != "" {
		msg += " (" + e.View + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same Code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// NoData reports that a time-based view found no valid timestamps.
func NoData(view string) *Error {
	return &Error{Code: CodeNoData, View: view, Message: "no events with a valid timestamp"}
}

// UnsupportedView reports an identifier outside the fixed view set.
func UnsupportedView(view string) *Error {
	return &Error{Code: CodeUnsupportedView, View: view, Message: fmt.Sprintf("unknown view %q", view)}
}

// Internal wraps an unexpected failure during aggregation or chart building.
func Internal(view string, err error) *Error {
	return &Error{Code: CodeInternal, View: view, Message: "failed to build chart", Err: err}
}

// As returns err as an *Error, or nil when it is not one.
func As(err error) *Error {
	var ve *Error
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// CodeOf returns the code of err, CodeInternal for foreign errors and "" for nil.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	if ve := As(err); ve != nil {
		return ve.Code
	}
	return CodeInternal
}
