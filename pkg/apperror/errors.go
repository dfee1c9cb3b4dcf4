package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error by how the HTTP layer should surface it.
type Kind string

const (
	// KindNotFound means the requested id (or filter combination) matched nothing.
	KindNotFound Kind = "NOT_FOUND"
	// KindValidation means the request payload or parameters were rejected.
	KindValidation Kind = "VALIDATION"
	// KindConstraint means the store refused the data (bad value, integrity rule).
	KindConstraint Kind = "CONSTRAINT"
	// KindInternal covers connectivity loss and any unexpected store failure.
	KindInternal Kind = "INTERNAL"
)

// AppError is the error type shared by the repository, usecase and adaptor layers.
type AppError struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) error {
	return &AppError{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) error {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func NotFound(format string, args ...any) error {
	return New(KindNotFound, fmt.Sprintf(format, args...))
}

func Validation(format string, args ...any) error {
	return New(KindValidation, fmt.Sprintf(format, args...))
}

// ValidationFields carries per-field messages produced by the struct validator.
func ValidationFields(message string, fields map[string]string) error {
	return &AppError{Kind: KindValidation, Message: message, Fields: fields}
}

func Constraint(message string, err error) error {
	return Wrap(KindConstraint, message, err)
}

func Internal(message string, err error) error {
	return Wrap(KindInternal, message, err)
}

// KindOf returns the kind of the first AppError in err's chain.
// Errors that are not AppErrors are reported as KindInternal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// As returns the first AppError in err's chain, if any.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

func IsValidation(err error) bool {
	return err != nil && KindOf(err) == KindValidation
}
