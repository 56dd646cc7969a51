package treemap

import "errors"

// Predefined error types.
var (
	// ErrKeyNotFound is returned by At when the requested key is absent.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidIterator is returned when an iterator is dereferenced or
	// stepped outside the valid range, or when an iterator bound to a
	// different map (or to an erased entry) is submitted to Erase.
	ErrInvalidIterator = errors.New("invalid iterator")

	// ErrInvariantViolated is reported by Validate when the tree breaks one
	// of the red-black structural invariants.
	ErrInvariantViolated = errors.New("tree invariant violated")
)
