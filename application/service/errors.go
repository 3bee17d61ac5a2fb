// Package service provides application layer services that orchestrate domain operations.
package service

import "errors"

var (
	// ErrNoInputLoader indicates Run was called on a Runner built without an input loader.
	ErrNoInputLoader = errors.New("no input loader configured")

	// ErrInvalidMode indicates an unknown seed interpretation.
	ErrInvalidMode = errors.New("invalid seed mode")
)
