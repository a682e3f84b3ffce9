package ir

import "errors"

var (
	errInternal = errors.New("internal error")

	ErrPathNotFound = errors.New("path not found")
)
