package httpclient

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/gaborage/go-apitools/internal/reflection"
)

// ErrorType represents different types of client-side errors
type ErrorType string

const (
	// TypecheckError indicates a value whose type is not in the allowed set
	TypecheckError ErrorType = "typecheck"
	// GeneratedClientError indicates a misuse or misconfiguration of the generated client
	GeneratedClientError ErrorType = "generated_client"
	// InvalidUserInputError indicates request parameters or method configs that cannot produce a request
	InvalidUserInputError ErrorType = "invalid_user_input"
	// InterceptorError indicates a request interceptor failure
	InterceptorError ErrorType = "interceptor"
)

// ClientError is implemented by every error this package returns
type ClientError interface {
	error
	Type() ErrorType
}

// typecheckError is returned by Typecheck
type typecheckError struct {
	message  string
	expected []reflect.Type
	actual   reflect.Type
}

// NewTypecheckError creates a typecheck error. An empty message is replaced
// by one naming the expected and actual types.
func NewTypecheckError(message string, expected []reflect.Type, actual reflect.Type) ClientError {
	if message == "" {
		message = fmt.Sprintf("type of arg is %s, not %s",
			reflection.GetTypeName(actual), reflection.JoinTypeNames(expected))
	}
	return &typecheckError{message: message, expected: expected, actual: actual}
}

func (e *typecheckError) Error() string {
	return fmt.Sprintf("typecheck error: %s", e.message)
}

func (e *typecheckError) Type() ErrorType {
	return TypecheckError
}

// Expected returns the allowed types.
func (e *typecheckError) Expected() []reflect.Type {
	return e.expected
}

// Actual returns the rejected dynamic type (nil for a nil value).
func (e *typecheckError) Actual() reflect.Type {
	return e.actual
}

// generatedClientError signals a client-side usage or configuration error
type generatedClientError struct {
	message string
	detail  string
}

// NewGeneratedClientError creates a generated client error. detail names the
// offending input, e.g. the rejected Accept pattern.
func NewGeneratedClientError(message, detail string) ClientError {
	return &generatedClientError{message: message, detail: detail}
}

func (e *generatedClientError) Error() string {
	if e.detail != "" {
		return fmt.Sprintf("generated client error: %s: %s", e.message, e.detail)
	}
	return fmt.Sprintf("generated client error: %s", e.message)
}

func (e *generatedClientError) Type() ErrorType {
	return GeneratedClientError
}

// Detail returns the offending input.
func (e *generatedClientError) Detail() string {
	return e.detail
}

// invalidUserInputError reports parameters or configs that cannot produce a request
type invalidUserInputError struct {
	message string
	param   string
	err     error
}

// NewInvalidUserInputError creates an invalid input error. param names the
// offending parameter and may be empty; err is an optional cause.
func NewInvalidUserInputError(message, param string, err error) ClientError {
	return &invalidUserInputError{message: message, param: param, err: err}
}

func (e *invalidUserInputError) Error() string {
	msg := "invalid user input: " + e.message
	if e.param != "" {
		msg += fmt.Sprintf(" (param: %s)", e.param)
	}
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	return msg
}

func (e *invalidUserInputError) Type() ErrorType {
	return InvalidUserInputError
}

func (e *invalidUserInputError) Unwrap() error {
	return e.err
}

// Param returns the offending parameter name.
func (e *invalidUserInputError) Param() string {
	return e.param
}

// interceptorError represents errors from request interceptors
type interceptorError struct {
	message string
	stage   string
	err     error
}

// NewInterceptorError creates a new interceptor error
func NewInterceptorError(message, stage string, err error) ClientError {
	return &interceptorError{message: message, stage: stage, err: err}
}

func (e *interceptorError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("interceptor error in %s: %s: %v", e.stage, e.message, e.err)
	}
	return fmt.Sprintf("interceptor error in %s: %s", e.stage, e.message)
}

func (e *interceptorError) Type() ErrorType {
	return InterceptorError
}

func (e *interceptorError) Unwrap() error {
	return e.err
}

// IsErrorType reports whether err, or any error it wraps, is a ClientError of the given type
func IsErrorType(err error, errorType ErrorType) bool {
	var clientErr ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type() == errorType
	}
	return false
}
