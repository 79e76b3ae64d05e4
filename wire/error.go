// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCode identifies a kind of encoding or decoding failure.
type ErrorCode int

// These constants are used to identify a specific MessageError.
const (
	// ErrUnexpectedEndOfData indicates the input ended before a complete
	// value could be read.
	ErrUnexpectedEndOfData ErrorCode = iota

	// ErrNonMinimalEncoding indicates a variable length integer was not
	// encoded using the shortest form able to hold its value.
	ErrNonMinimalEncoding

	// ErrOversizedVector indicates a length or count prefix exceeds the
	// limit allowed for the field.
	ErrOversizedVector

	// ErrAmbiguousWitnessFlag indicates a transaction whose input count is
	// zero is followed by a zero flag byte, or carries a witness flag
	// without any witness data.
	ErrAmbiguousWitnessFlag

	// ErrUnknownWitnessFlag indicates the segwit marker is followed by a
	// flag byte other than 0x01.
	ErrUnknownWitnessFlag

	// ErrBadMerkleRoot indicates a block header commits to a merkle root
	// that doesn't match its transactions.
	ErrBadMerkleRoot

	// ErrHighHash indicates a block hash is above the target its header
	// claims, or the target itself is out of range.
	ErrHighHash

	// ErrTimestampRange indicates a block header timestamp can't be
	// represented as the unsigned 32-bit seconds the header carries.
	ErrTimestampRange
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrUnexpectedEndOfData:  "ErrUnexpectedEndOfData",
	ErrNonMinimalEncoding:   "ErrNonMinimalEncoding",
	ErrOversizedVector:      "ErrOversizedVector",
	ErrAmbiguousWitnessFlag: "ErrAmbiguousWitnessFlag",
	ErrUnknownWitnessFlag:   "ErrUnknownWitnessFlag",
	ErrBadMerkleRoot:        "ErrBadMerkleRoot",
	ErrHighHash:             "ErrHighHash",
	ErrTimestampRange:       "ErrTimestampRange",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// MessageError describes an issue with a value being encoded or decoded.
// The caller can use type assertions or IsErrorCode to check the code.
type MessageError struct {
	Func        string    // Function name
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e *MessageError) Error() string {
	if e.Func != "" {
		return fmt.Sprintf("%s: %s", e.Func, e.Description)
	}
	return e.Description
}

// messageError creates an error for the given function and description.
func messageError(f string, code ErrorCode, desc string) *MessageError {
	return &MessageError{Func: f, ErrorCode: code, Description: desc}
}

// IsErrorCode returns whether err is, or wraps, a *MessageError with the
// provided error code.
func IsErrorCode(err error, code ErrorCode) bool {
	var msgErr *MessageError
	return errors.As(err, &msgErr) && msgErr.ErrorCode == code
}
