package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrOutOfRange      = errors.New("result out of range")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownUnit     = errors.New("unknown unit")
	ErrSameUnit        = errors.New("source and target units are the same")
	ErrNotFound        = errors.New("not found")
)
