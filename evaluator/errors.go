package evaluator

import "fmt"

// Runtime error kinds. Every runtime error aborts evaluation of the current
// program; none are retried and no partial results are returned.
const (
	KindUnboundVariable   = "unbound variable"
	KindUndefinedFunction = "undefined function"
	KindArityMismatch     = "arity mismatch"
	KindEmptyBody         = "empty function body"
	KindTypeMismatch      = "type mismatch"
	KindZeroDivision      = "division by zero"
)

// RuntimeError is the error type for all evaluation failures.
type RuntimeError struct {
	kind    string
	message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.message)
}

// Kind returns the error category, one of the Kind constants.
func (e *RuntimeError) Kind() string {
	return e.kind
}

// Message returns the error description without the category.
func (e *RuntimeError) Message() string {
	return e.message
}

// NewUnboundVariableError reports a reference to a name that is not bound in
// any scope up to and including the global scope.
func NewUnboundVariableError(name string) *RuntimeError {
	return &RuntimeError{
		kind:    KindUnboundVariable,
		message: fmt.Sprintf("%q is not defined", name),
	}
}

// NewUndefinedFunctionError reports a call to a name with no registered
// function.
func NewUndefinedFunctionError(name string) *RuntimeError {
	return &RuntimeError{
		kind:    KindUndefinedFunction,
		message: fmt.Sprintf("%q is not a function", name),
	}
}

// NewArityError reports a call whose argument count does not equal the
// function's parameter count. Arguments are never silently truncated.
func NewArityError(fn string, takes, given int) *RuntimeError {
	return &RuntimeError{
		kind:    KindArityMismatch,
		message: fmt.Sprintf("%s() takes exactly %d arguments (%d given)", fn, takes, given),
	}
}

// NewEmptyBodyError reports a call to a function with no body expressions.
func NewEmptyBodyError(fn string) *RuntimeError {
	return &RuntimeError{
		kind:    KindEmptyBody,
		message: fmt.Sprintf("%s() has no body to evaluate", fn),
	}
}

// NewTypeError reports an operation applied to operands of the wrong type.
func NewTypeError(format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{
		kind:    KindTypeMismatch,
		message: fmt.Sprintf(format, args...),
	}
}

// NewZeroDivisionError reports division by zero.
func NewZeroDivisionError() *RuntimeError {
	return &RuntimeError{
		kind:    KindZeroDivision,
		message: "division or modulo by zero",
	}
}
