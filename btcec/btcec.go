// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcec

// Byte lengths of the serialized forms handled by this package.
const (
	PrivKeyBytesLen          = 32
	PubKeyBytesLenCompressed = 33
	PubKeyBytesLenUncompress = 65

	// MinSigLen and MaxSigLen bound a DER encoded signature: a sequence
	// holding two integers of 1 to 33 bytes each.
	MinSigLen = 8
	MaxSigLen = 72
)

const (
	pubkeyCompressed   byte = 0x2 // y_bit + x coord
	pubkeyUncompressed byte = 0x4 // x coord + y coord
)
