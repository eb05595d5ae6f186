package errs

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/withstack"
)

// PublicError is an error that carries a user-facing message. Presentation layers
// (CLI output, proxy responses) show Message() instead of the internal error chain.
type PublicError struct {
	err     error
	message string
	code    string // code is optional, it can be used to identify the error type
}

func (p PublicError) Error() string {
	return p.err.Error()
}

func (p PublicError) Message() string {
	return p.message
}

func (p PublicError) Code() string {
	return p.code
}

func (p PublicError) Unwrap() error {
	return p.err
}

func NewPublicError(message string) error {
	return withstack.WithStackDepth(&PublicError{err: errors.New(message), message: message}, 1)
}

func NewPublicErrorWithCode(message string, code string) error {
	return withstack.WithStackDepth(&PublicError{err: errors.New(message), message: message, code: code}, 1)
}

// NewPublicErrorKind returns a public error with the given message that also matches kind with errors.Is.
func NewPublicErrorKind(kind ErrorKind, message string) error {
	return withstack.WithStackDepth(&PublicError{err: errors.Wrap(kind, message), message: message, code: string(kind)}, 1)
}

// NewValidationError returns a public error of kind InvalidArgument.
func NewValidationError(message string) error {
	return withstack.WithStackDepth(&PublicError{err: errors.Wrap(InvalidArgument, message), message: message, code: string(InvalidArgument)}, 1)
}

func WithPublicMessage(err error, prefix string) error {
	if err == nil {
		return nil
	}
	var message string
	if prefix != "" {
		message = fmt.Sprintf("%s: %s", prefix, err.Error())
	} else {
		message = err.Error()
	}
	return withstack.WithStackDepth(&PublicError{err: err, message: message}, 1)
}

// WithUserMessage wraps err with an exact user-facing message, keeping err in the chain.
func WithUserMessage(err error, message string) error {
	if err == nil {
		return nil
	}
	return withstack.WithStackDepth(&PublicError{err: err, message: message}, 1)
}

// UserMessage returns the user-facing message of the first PublicError in err's chain,
// or fallback if there is none.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if e := new(PublicError); errors.As(err, &e) && e.Message() != "" {
		return e.Message()
	}
	return fallback
}
