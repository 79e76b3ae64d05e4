// Copyright (c) 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package base58 provides an API for working with modified base58 and Base58Check
encodings.

Modified base58 encoding is similar to standard base58 encoding, except it
removes the characters 0 (zero), O (capital o), I (capital i) and l (lower
case L), which look alike in some fonts.

Base58Check prefixes a payload with a version byte and appends the first four
bytes of its double SHA-256 so typing errors are caught when decoding.
*/
package base58
