// Copyright (c) 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"github.com/pkg/errors"

	"github.com/viacoin/viautil/util/chainhash"
)

// alphabet is the modified base58 alphabet used by Bitcoin.
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// checksumLen is the number of double-SHA256 bytes appended to the payload.
const checksumLen = 4

var (
	// ErrChecksumMismatch indicates that the checksum of a check-encoded
	// string does not verify against the checksum.
	ErrChecksumMismatch = errors.New("checksum error")

	// ErrInvalidFormat indicates that the check-encoded string has an
	// invalid format.
	ErrInvalidFormat = errors.New("invalid format: version and/or checksum bytes missing")

	// ErrInvalidBase58Character indicates the string holds a character
	// outside the base58 alphabet.
	ErrInvalidBase58Character = errors.New("invalid base58 character")
)

// Encode encodes b using the modified base58 alphabet. Every leading zero
// byte becomes a leading '1'.
func Encode(b []byte) string {
	return base58.Encode(b)
}

// Decode decodes a modified base58 string.
func Decode(s string) ([]byte, error) {
	if i := strings.IndexFunc(s, func(r rune) bool {
		return !strings.ContainsRune(alphabet, r)
	}); i >= 0 {
		return nil, errors.Wrapf(ErrInvalidBase58Character, "character %q at position %d", s[i], i)
	}
	return base58.Decode(s), nil
}

// checksum returns the first four bytes of the double SHA-256 of input.
func checksum(input []byte) (cksum [checksumLen]byte) {
	h := chainhash.DoubleHashB(input)
	copy(cksum[:], h[:checksumLen])
	return
}

// CheckEncode prepends a version byte and appends a four byte checksum.
func CheckEncode(input []byte, version byte) string {
	b := make([]byte, 0, 1+len(input)+checksumLen)
	b = append(b, version)
	b = append(b, input...)
	cksum := checksum(b)
	b = append(b, cksum[:]...)
	return Encode(b)
}

// CheckDecode decodes a string that was encoded with CheckEncode and verifies
// the checksum.
func CheckDecode(input string) (result []byte, version byte, err error) {
	decoded, err := Decode(input)
	if err != nil {
		return nil, 0, err
	}
	if len(decoded) < 1+checksumLen {
		return nil, 0, ErrInvalidFormat
	}
	version = decoded[0]
	var cksum [checksumLen]byte
	copy(cksum[:], decoded[len(decoded)-checksumLen:])
	if checksum(decoded[:len(decoded)-checksumLen]) != cksum {
		return nil, 0, ErrChecksumMismatch
	}
	payload := decoded[1 : len(decoded)-checksumLen]
	result = append(result, payload...)
	return
}
