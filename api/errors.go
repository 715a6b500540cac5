// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-pool.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	ErrPoolClosed        = fmt.Errorf("pool is closed")
	ErrInvalidArgument   = fmt.Errorf("invalid argument")
	ErrResourceExhausted = fmt.Errorf("resource exhausted")
	ErrNotOwned          = fmt.Errorf("handle not owned by pool")
	ErrDoubleRelease     = fmt.Errorf("slot already released")
	ErrInvalidHandle     = fmt.Errorf("invalid handle")
	ErrAlreadyExists     = fmt.Errorf("resource already exists")
	ErrNotFound          = fmt.Errorf("resource not found")
	ErrTypeMismatch      = fmt.Errorf("pool element type mismatch")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeResourceExhausted
	ErrCodeClosed
	ErrCodeNotOwned
	ErrCodeDoubleRelease
	ErrCodeInvalidHandle
	ErrCodeAlreadyExists
	ErrCodeNotFound
	ErrCodeTypeMismatch
	ErrCodeInternal
)

// codeErrors maps codes to the sentinel matched by errors.Is.
var codeErrors = map[ErrorCode]error{
	ErrCodeInvalidArgument:   ErrInvalidArgument,
	ErrCodeResourceExhausted: ErrResourceExhausted,
	ErrCodeClosed:            ErrPoolClosed,
	ErrCodeNotOwned:          ErrNotOwned,
	ErrCodeDoubleRelease:     ErrDoubleRelease,
	ErrCodeInvalidHandle:     ErrInvalidHandle,
	ErrCodeAlreadyExists:     ErrAlreadyExists,
	ErrCodeNotFound:          ErrNotFound,
	ErrCodeTypeMismatch:      ErrTypeMismatch,
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap returns the sentinel for e.Code so errors.Is(err, ErrNotOwned) works.
func (e *Error) Unwrap() error {
	return codeErrors[e.Code]
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// CodeOf extracts the ErrorCode carried by err, or ErrCodeInternal.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	for code, sentinel := range codeErrors {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return ErrCodeInternal
}
