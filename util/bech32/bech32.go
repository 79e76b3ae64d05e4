// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"strings"

	"github.com/pkg/errors"
)

const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// maxLengthBIP173 is the maximum length of a bech32 string.
const maxLengthBIP173 = 90

// checksumLength is the number of 5-bit groups in the checksum.
const checksumLength = 6

var gen = []int{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

var (
	// ErrInvalidLength is returned when the string is too short or too long.
	ErrInvalidLength = errors.New("invalid bech32 string length")

	// ErrMixedCase is returned when the string mixes upper and lower case.
	ErrMixedCase = errors.New("string not all lowercase or all uppercase")

	// ErrInvalidCharacter is returned when the string holds a character
	// outside the allowed range or the data charset.
	ErrInvalidCharacter = errors.New("invalid character in string")

	// ErrInvalidSeparatorIndex is returned when the separator is missing or
	// leaves an empty hrp or a data part shorter than the checksum.
	ErrInvalidSeparatorIndex = errors.New("invalid separator index")

	// ErrInvalidChecksum is returned when the checksum doesn't verify.
	ErrInvalidChecksum = errors.New("checksum failed")

	// ErrInvalidDataByte is returned when a data value doesn't fit in the
	// group size being converted from.
	ErrInvalidDataByte = errors.New("invalid data byte")

	// ErrInvalidIncompleteGroup is returned when the bits left over after a
	// conversion are not zero padding.
	ErrInvalidIncompleteGroup = errors.New("invalid incomplete group")
)

// Decode decodes a bech32 encoded string, returning the human-readable part
// and the data part excluding the checksum.
func Decode(bech string) (string, []byte, error) {
	// The maximum allowed length for a bech32 string is 90. It must also
	// be at least 8 characters, since it needs a non-empty HRP, a
	// separator, and a 6 character checksum.
	if len(bech) < 8 || len(bech) > maxLengthBIP173 {
		return "", nil, errors.Wrapf(ErrInvalidLength, "length %d", len(bech))
	}

	// Only ASCII characters between 33 and 126 are allowed.
	for i := 0; i < len(bech); i++ {
		if bech[i] < 33 || bech[i] > 126 {
			return "", nil, errors.Wrapf(ErrInvalidCharacter, "character %d at position %d", bech[i], i)
		}
	}

	// The characters must be either all lowercase or all uppercase.
	lower := strings.ToLower(bech)
	upper := strings.ToUpper(bech)
	if bech != lower && bech != upper {
		return "", nil, ErrMixedCase
	}

	// We'll work with the lowercase string from now on.
	bech = lower

	// The string is invalid if the last '1' is non-existent, it is the
	// first character of the string (no human-readable part) or one of the
	// last 6 characters of the string (since checksum cannot contain '1'),
	// to find the separator.
	one := strings.LastIndexByte(bech, '1')
	if one < 1 || one+checksumLength+1 > len(bech) {
		return "", nil, errors.Wrapf(ErrInvalidSeparatorIndex, "separator at %d", one)
	}

	// The human-readable part is everything before the last '1'.
	hrp := bech[:one]
	data := bech[one+1:]

	// Each character corresponds to the byte with value of the index in
	// 'charset'.
	decoded, err := toBytes(data)
	if err != nil {
		return "", nil, err
	}

	if !verifyChecksum(hrp, decoded) {
		return "", nil, ErrInvalidChecksum
	}

	// We exclude the last 6 bytes, which is the checksum.
	return hrp, decoded[:len(decoded)-checksumLength], nil
}

// Encode encodes a byte slice into a bech32 string with the human-readable
// part hrp. Note that the bytes must each encode 5 bits (base32).
func Encode(hrp string, data []byte) (string, error) {
	for i, b := range data {
		if b >= 32 {
			return "", errors.Wrapf(ErrInvalidDataByte, "value %d at position %d", b, i)
		}
	}
	for i := 0; i < len(hrp); i++ {
		if hrp[i] < 33 || hrp[i] > 126 {
			return "", errors.Wrapf(ErrInvalidCharacter, "hrp character %d at position %d", hrp[i], i)
		}
	}

	// The resulting bech32 string is the concatenation of the hrp, the
	// separator 1, data and checksum. Everything after the separator is
	// represented using the specified charset.
	hrp = strings.ToLower(hrp)
	checksum := createChecksum(hrp, data)
	combined := append(append([]byte(nil), data...), checksum...)

	var sb strings.Builder
	sb.Grow(len(hrp) + 1 + len(combined))
	sb.WriteString(hrp)
	sb.WriteByte('1')
	for _, b := range combined {
		sb.WriteByte(charset[b])
	}
	if sb.Len() > maxLengthBIP173 {
		return "", errors.Wrapf(ErrInvalidLength, "length %d", sb.Len())
	}
	return sb.String(), nil
}

// ConvertBits converts a byte slice where each byte is encoding fromBits bits,
// to a byte slice where each byte is encoding toBits bits.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		return nil, errors.Errorf("only bit groups between 1 and 8 allowed")
	}

	// The final bytes, each byte encoding toBits bits.
	regrouped := make([]byte, 0, len(data)*int(fromBits)/int(toBits)+1)

	// Keep track of the next byte we create and how many bits we have
	// added to it out of the toBits goal.
	nextByte := byte(0)
	filledBits := uint8(0)

	for _, b := range data {
		if fromBits < 8 && b>>fromBits != 0 {
			return nil, errors.Wrapf(ErrInvalidDataByte, "value %d doesn't fit in %d bits", b, fromBits)
		}

		// Discard unused bits.
		b = b << (8 - fromBits)

		// How many bits remaining to extract from the input data.
		remFromBits := fromBits
		for remFromBits > 0 {
			// How many bits remaining to be added to the next byte.
			remToBits := toBits - filledBits

			// The number of bytes to next extract is the minimum of
			// remFromBits and remToBits.
			toExtract := remFromBits
			if remToBits < toExtract {
				toExtract = remToBits
			}

			// Add the next bits to nextByte, shifting the already
			// added bits to the left.
			nextByte = (nextByte << toExtract) | (b >> (8 - toExtract))

			// Discard the bits we just extracted and get ready for
			// next iteration.
			b = b << toExtract
			remFromBits -= toExtract
			filledBits += toExtract

			// If the nextByte is completely filled, we add it to
			// our regrouped bytes and start on the next byte.
			if filledBits == toBits {
				regrouped = append(regrouped, nextByte)
				filledBits = 0
				nextByte = 0
			}
		}
	}

	// We pad any unfinished group if specified.
	if pad && filledBits > 0 {
		nextByte = nextByte << (toBits - filledBits)
		regrouped = append(regrouped, nextByte)
		filledBits = 0
		nextByte = 0
	}

	// Any incomplete group must be <= 4 bits, and all zeroes.
	if filledBits > 0 && (filledBits > 4 || nextByte != 0) {
		return nil, ErrInvalidIncompleteGroup
	}

	return regrouped, nil
}

// toBytes converts each character in the string 'chars' to the value of the
// index of the corresponding character in 'charset'.
func toBytes(chars string) ([]byte, error) {
	decoded := make([]byte, 0, len(chars))
	for i := 0; i < len(chars); i++ {
		index := strings.IndexByte(charset, chars[i])
		if index < 0 {
			return nil, errors.Wrapf(ErrInvalidCharacter, "character %q not in charset", chars[i])
		}
		decoded = append(decoded, byte(index))
	}
	return decoded, nil
}

// For more details on the checksum calculation, please refer to BIP 173.
func createChecksum(hrp string, data []byte) []byte {
	values := append(hrpExpand(hrp), data...)
	values = append(values, make([]byte, checksumLength)...)
	mod := polymod(values) ^ 1
	checksum := make([]byte, checksumLength)
	for i := range checksum {
		checksum[i] = byte((mod >> uint(5*(5-i))) & 31)
	}
	return checksum
}

// For more details on the polymod calculation, please refer to BIP 173.
func polymod(values []byte) int {
	chk := 1
	for _, v := range values {
		b := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ int(v)
		for i := 0; i < 5; i++ {
			if (b>>uint(i))&1 == 1 {
				chk ^= gen[i]
			}
		}
	}
	return chk
}

// For more details on HRP expansion, please refer to BIP 173.
func hrpExpand(hrp string) []byte {
	v := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		v = append(v, hrp[i]>>5)
	}
	v = append(v, 0)
	for i := 0; i < len(hrp); i++ {
		v = append(v, hrp[i]&31)
	}
	return v
}

// For more details on the checksum verification, please refer to BIP 173.
func verifyChecksum(hrp string, data []byte) bool {
	return polymod(append(hrpExpand(hrp), data...)) == 1
}
