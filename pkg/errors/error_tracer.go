package errors

import "github.com/pkg/errors"

// ErrorTracer is a custom error type that carries a code, a message and an underlying error
// annotated with the stack trace of the point it was wrapped.
type ErrorTracer struct {
	Code    ErrorCode
	Message string
	Err     error
}

// NewTracer creates a new ErrorTracer with the provided code. The code doubles as the message
// until Wrap attaches an underlying error.
func NewTracer(code ErrorCode) *ErrorTracer {
	return &ErrorTracer{
		Code:    code,
		Message: string(code),
	}
}

// TracerFromError creates a new ErrorTracer from an existing error, preserving the stack trace.
func TracerFromError(err error) *ErrorTracer {
	tracer := &ErrorTracer{
		Code:    CodeOf(err),
		Message: err.Error(),
	}
	return tracer.Wrap(err)
}

// StackTracer is an interface that requires a StackTrace method.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

func (e *ErrorTracer) Error() string {
	if e.Err != nil && e.Message != e.Err.Error() {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ErrorTracer) Unwrap() error {
	return e.Err
}

// Wrap wraps an existing error into the ErrorTracer, preserving the stack trace.
func (e *ErrorTracer) Wrap(err error) *ErrorTracer {
	e.Err = err
	_, ok := err.(StackTracer)
	if !ok {
		e.Err = errors.WithStack(err)
	}

	return e
}

// StackTrace returns the stack trace of the underlying error if it implements StackTracer.
func (e *ErrorTracer) StackTrace() errors.StackTrace {
	err := e.Unwrap()
	errWithStack, ok := err.(StackTracer)
	if ok {
		return errWithStack.StackTrace()
	}
	return nil
}
