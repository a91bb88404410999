package domain

import (
	"errors"
	"fmt"

	"nadlan_radar/pkg/errcodes"
)

// AppError is the domain error type. Transport layers map its code to a
// response status.
type AppError struct {
	Code    errcodes.ErrorCode
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap exposes the wrapped error for errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// ErrorCode implements the coded-error interface used by pkg/httpx/reply.
func (e *AppError) ErrorCode() errcodes.ErrorCode {
	return e.Code
}

// Description is the human-readable message exposed to API clients.
func (e *AppError) Description() string {
	return e.Message
}

func NewError(code errcodes.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func WrapError(err error, code errcodes.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

func GetCode(err error) (errcodes.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}
