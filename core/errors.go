package core

import (
	"errors"
	"fmt"
)

// ErrorCode classifies application errors. The CLI uses it as exit status.
type ErrorCode int

// Error codes
const (
	NOERROR   ErrorCode = 0
	EMISSING  ErrorCode = 122 // resource does not exist
	EINVALID  ErrorCode = 123 // validation failed
	ESYNTAX   ErrorCode = 124 // input could not be parsed
	EINTERNAL ErrorCode = 125 // internal error
)

var codeText = map[ErrorCode]string{
	NOERROR:   "OK",
	EMISSING:  "not found",
	EINVALID:  "invalid",
	ESYNTAX:   "syntax error",
	EINTERNAL: "internal error",
}

func (c ErrorCode) String() string {
	if t, ok := codeText[c]; ok {
		return t
	}
	return fmt.Sprintf("error %d", int(c))
}

// AppError is an error with a code and a message meant for users.
// Cause may be nil.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WrapError wraps err into an application error with a formatted message.
func WrapError(err error, code ErrorCode, format string, v ...interface{}) error {
	return &AppError{Code: code, Message: fmt.Sprintf(format, v...), Cause: err}
}

// Error creates an application error without a cause.
func Error(code ErrorCode, format string, v ...interface{}) error {
	return WrapError(nil, code, format, v...)
}

// Code returns the error code of the first AppError in err's chain.
// Other errors are EINTERNAL, and a nil error is NOERROR.
func Code(err error) ErrorCode {
	if err == nil {
		return NOERROR
	}
	var e *AppError
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}
