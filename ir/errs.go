package ir

import "errors"

var (
	// ErrPointer wraps all pointer resolution failures.
	ErrPointer = errors.New("pointer error")
)
