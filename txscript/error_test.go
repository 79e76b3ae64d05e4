// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"testing"

	"github.com/pkg/errors"
)

// TestErrorCodeStringer tests the stringized output for the ErrorCode type.
func TestErrorCodeStringer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   ErrorCode
		want string
	}{
		{ErrInternal, "ErrInternal"},
		{ErrInvalidIndex, "ErrInvalidIndex"},
		{ErrUnsupportedAddress, "ErrUnsupportedAddress"},
		{ErrUnsupportedScriptType, "ErrUnsupportedScriptType"},
		{ErrScriptTooBig, "ErrScriptTooBig"},
		{ErrElementTooBig, "ErrElementTooBig"},
		{ErrMalformedPush, "ErrMalformedPush"},
		{ErrVerifierMissing, "ErrVerifierMissing"},
		{ErrPrevOutMissing, "ErrPrevOutMissing"},
		{ErrVerifyFailed, "ErrVerifyFailed"},
		{ErrKeyMissing, "ErrKeyMissing"},
		{0xffff, "Unknown ErrorCode (65535)"},
	}

	// Detect additional error codes that don't have the stringer added.
	if len(tests)-1 != int(numErrorCodes) {
		t.Errorf("It appears an error code was added without adding an " +
			"associated stringer test")
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result,
				test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   Error
		want string
	}{
		{
			Error{Description: "some error"},
			"some error",
		},
		{
			Error{Description: "human-readable error"},
			"human-readable error",
		},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("Error #%d\n got: %s want: %s", i, result,
				test.want)
			continue
		}
	}
}

// TestIsErrorCode ensures error codes are found through wrapping.
func TestIsErrorCode(t *testing.T) {
	t.Parallel()

	err := errors.Wrap(scriptError(ErrScriptTooBig, "too big"), "input 0")
	if !IsErrorCode(err, ErrScriptTooBig) {
		t.Errorf("IsErrorCode did not find the wrapped code")
	}
	if IsErrorCode(err, ErrMalformedPush) {
		t.Errorf("IsErrorCode matched the wrong code")
	}
	if IsErrorCode(errors.New("plain"), ErrInternal) {
		t.Errorf("IsErrorCode matched a non script error")
	}
	if IsErrorCode(nil, ErrInternal) {
		t.Errorf("IsErrorCode matched a nil error")
	}
}
