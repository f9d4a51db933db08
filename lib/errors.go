package lib

import (
	"errors"
	"fmt"
)

// ErrParenCountMismatch means the whole input held a different number
// of '(' than ')'. It is only ever reported after every individual
// token lexed successfully.
var ErrParenCountMismatch = errors.New("mismatching parentheses count")

// ErrInvalidToken means no lexing rule matched the current character.
var ErrInvalidToken = errors.New("invalid token")

// NoSuchGateError means an alphabetic word is not one of the six gate
// keywords. Word holds the uppercased form of the offending input.
type NoSuchGateError struct {
	Word string
}

func (e *NoSuchGateError) Error() string {
	return fmt.Sprintf("%s is not a valid logic gate", e.Word)
}

// ParseIntError means a digit run did not fit a 16-bit terminal id.
// Err holds the underlying numeric parse failure.
type ParseIntError struct {
	Err error
}

func (e *ParseIntError) Error() string {
	return e.Err.Error()
}

func (e *ParseIntError) Unwrap() error {
	return e.Err
}
