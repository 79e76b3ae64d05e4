// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedWitnessVersion is returned for witness versions other
	// than 0. Versions 1 through 16 need the bech32m checksum.
	ErrUnsupportedWitnessVersion = errors.New("unsupported witness version")

	// ErrInvalidProgramLength is returned when a witness program has a
	// length its version doesn't allow.
	ErrInvalidProgramLength = errors.New("invalid witness program length")

	// ErrHRPMismatch is returned when an address belongs to another network
	// than the one requested.
	ErrHRPMismatch = errors.New("human-readable part mismatch")
)

const maxWitnessVersion = 16

// checkWitnessProgram enforces the witness version and program length rules.
func checkWitnessProgram(version byte, program []byte) error {
	if version > maxWitnessVersion {
		return errors.Wrapf(ErrUnsupportedWitnessVersion, "version %d", version)
	}
	if version != 0 {
		return errors.Wrapf(ErrUnsupportedWitnessVersion, "version %d needs bech32m", version)
	}
	if len(program) != 20 && len(program) != 32 {
		return errors.Wrapf(ErrInvalidProgramLength,
			"version 0 program must be 20 or 32 bytes, got %d", len(program))
	}
	return nil
}

// EncodeSegWitAddress encodes a witness version and program as a segwit
// address with the human-readable part hrp.
func EncodeSegWitAddress(hrp string, witnessVersion byte, witnessProgram []byte) (string, error) {
	err := checkWitnessProgram(witnessVersion, witnessProgram)
	if err != nil {
		return "", err
	}

	// Group the address bytes into 5 bit groups, as this is what is used
	// to encode each character in the address string.
	converted, err := ConvertBits(witnessProgram, 8, 5, true)
	if err != nil {
		return "", err
	}

	// Concatenate the witness version and program, and encode the
	// resulting bytes using bech32 encoding.
	combined := make([]byte, 0, len(converted)+1)
	combined = append(combined, witnessVersion)
	combined = append(combined, converted...)
	return Encode(hrp, combined)
}

// DecodeSegWitAddress decodes a segwit address, checking that its
// human-readable part is hrp. It returns the witness version and program.
func DecodeSegWitAddress(hrp, address string) (byte, []byte, error) {
	decodedHRP, data, err := Decode(address)
	if err != nil {
		return 0, nil, err
	}
	if decodedHRP != strings.ToLower(hrp) {
		return 0, nil, errors.Wrapf(ErrHRPMismatch, "got %q, want %q", decodedHRP, hrp)
	}

	// The first byte of the decoded address is the witness version, it
	// must exist.
	if len(data) < 1 {
		return 0, nil, errors.Wrap(ErrInvalidProgramLength, "no witness version")
	}
	version := data[0]

	// The remaining characters of the address returned are grouped into
	// words of 5 bits. In order to restore the original witness program
	// bytes, we'll need to regroup into 8 bit words.
	program, err := ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return 0, nil, err
	}

	err = checkWitnessProgram(version, program)
	if err != nil {
		return 0, nil, err
	}
	return version, program, nil
}
