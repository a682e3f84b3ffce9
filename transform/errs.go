package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrSchema covers every construction-time failure, so callers can
	// tell a bad schema apart from bad input data.
	ErrSchema = errors.New("invalid schema")

	ErrUnknownType = fmt.Errorf("%w: unknown type", ErrSchema)
)
