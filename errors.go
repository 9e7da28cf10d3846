// Copyright (c) 2026 The bddkit Authors
//
// MIT License

package robdd

import (
	"errors"
	"log"
)

// Sentinel errors for the failure modes of this package. Every fallible
// constructor or operator wraps one of these with fmt.Errorf and %w so that
// callers can test the kind of failure with errors.Is, while the message
// still carries the offending variable, cube, or shape.
var (
	// ErrVariableRange is returned when a constructor is given a variable
	// index outside [0, NumVars).
	ErrVariableRange = errors.New("variable out of range")

	// ErrDuplicateVariable is returned when a cube or partial valuation
	// names the same variable twice.
	ErrDuplicateVariable = errors.New("duplicate variable")

	// ErrShapeMismatch is returned when a binary operator is applied to two
	// Diagrams with different NumVars.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrNodeOverflow is returned when a construction would need more nodes
	// than a Pointer can address.
	ErrNodeOverflow = errors.New("node count exceeds pointer range")

	// ErrMalformedInput covers any other malformed-input condition
	// detected in a constructor.
	ErrMalformedInput = errors.New("malformed input")
)

// logerr logs an error under the debug build tag while still returning it
// to the caller for normal handling.
func logerr(err error) error {
	if _DEBUG && err != nil {
		log.Println(err)
	}
	return err
}
