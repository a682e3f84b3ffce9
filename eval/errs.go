package eval

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRegister reports a reference whose sigil does not name
	// register 0 (context) or register 1 (plugins).
	ErrInvalidRegister = errors.New("invalid register")

	// ErrUnknownOp reports an operation selector that names neither a
	// builtin nor a reachable plugin.
	ErrUnknownOp = errors.New("unknown operation")

	ErrOpExists = errors.New("operation exists")
)

// EvalError wraps a failure detected by a builtin or plugin operation,
// such as an arity or argument type mismatch.
type EvalError struct {
	Op  string
	Err error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("evaluating %s: %v", e.Op, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}
