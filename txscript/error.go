// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCode identifies a kind of script error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrInternal is returned if internal consistency checks fail. In
	// practice this error should never be seen as it would mean there is an
	// error in the engine logic.
	ErrInternal ErrorCode = iota

	// ErrInvalidIndex is returned when an out-of-bounds index is passed to
	// a function.
	ErrInvalidIndex

	// ErrUnsupportedAddress is returned when a concrete type that
	// implements a util.Address is not a supported type.
	ErrUnsupportedAddress

	// ErrUnsupportedScriptType is returned when a script does not match any
	// template the operation knows how to handle.
	ErrUnsupportedScriptType

	// ErrScriptTooBig is returned if a script is larger than MaxScriptSize.
	ErrScriptTooBig

	// ErrElementTooBig is returned if the size of an element to be pushed
	// to the stack is over MaxScriptElementSize.
	ErrElementTooBig

	// ErrMalformedPush is returned when a data push opcode tries to push
	// more bytes than are left in the script.
	ErrMalformedPush

	// ErrVerifierMissing is returned when transaction verification is
	// requested without a script verifier.
	ErrVerifierMissing

	// ErrPrevOutMissing is returned when the output an input spends is not
	// known to the previous output fetcher.
	ErrPrevOutMissing

	// ErrVerifyFailed is returned when the script verifier rejects an
	// input.
	ErrVerifyFailed

	// ErrKeyMissing is returned when signing needs a key or script the
	// caller's database doesn't hold.
	ErrKeyMissing

	// numErrorCodes is the maximum error code number used in tests. This
	// entry MUST be the last entry in the enum.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInternal:              "ErrInternal",
	ErrInvalidIndex:          "ErrInvalidIndex",
	ErrUnsupportedAddress:    "ErrUnsupportedAddress",
	ErrUnsupportedScriptType: "ErrUnsupportedScriptType",
	ErrScriptTooBig:          "ErrScriptTooBig",
	ErrElementTooBig:         "ErrElementTooBig",
	ErrMalformedPush:         "ErrMalformedPush",
	ErrVerifierMissing:       "ErrVerifierMissing",
	ErrPrevOutMissing:        "ErrPrevOutMissing",
	ErrVerifyFailed:          "ErrVerifyFailed",
	ErrKeyMissing:            "ErrKeyMissing",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a script-related error. It is used to indicate three
// classes of errors:
//  1. Script execution failures due to violating one of the many requirements
//     imposed by the script engine or evaluating to false
//  2. Improper API usage by callers
//  3. Internal consistency check failures
//
// The caller can use type assertions on the returned errors to access the
// ErrorCode field to ascertain the specific reason for the error. As an
// additional convenience, the caller may make use of the IsErrorCode
// function to check for a specific error code.
type Error struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// scriptError creates an Error given a set of arguments.
func scriptError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether or not the provided error is a script error
// with the provided error code, looking through any wrapping.
func IsErrorCode(err error, c ErrorCode) bool {
	var serr Error
	if errors.As(err, &serr) {
		return serr.ErrorCode == c
	}
	return false
}
