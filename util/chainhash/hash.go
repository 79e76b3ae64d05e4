// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"bytes"
	"encoding/hex"
	"io"

	"github.com/pkg/errors"
)

// HashSize of array used to store hashes. See Hash.
const HashSize = 32

// MaxHashStringSize is the maximum length of a Hash hash string.
const MaxHashStringSize = HashSize * 2

// ErrHashStrSize describes an error that indicates the caller specified a hash
// string that has too many characters.
var ErrHashStrSize = errors.Errorf("max hash string length is %d bytes", MaxHashStringSize)

// Hash is used in several of the messages and common structures. It
// typically represents the double sha256 of data. Bytes are kept in the order
// the hash function produced them; only the textual form is reversed.
type Hash [HashSize]byte

// ZeroHash is the Hash value of all zero bytes, defined here for
// convenience.
var ZeroHash Hash

// String returns the Hash as the hexadecimal string of the byte-reversed
// hash.
func (hash Hash) String() string {
	for i := 0; i < HashSize/2; i++ {
		hash[i], hash[HashSize-1-i] = hash[HashSize-1-i], hash[i]
	}
	return hex.EncodeToString(hash[:])
}

// Strings returns a slice of strings representing the hashes in the given slice of hashes
func Strings(hashes []*Hash) []string {
	strings := make([]string, len(hashes))
	for i, hash := range hashes {
		strings[i] = hash.String()
	}
	return strings
}

// CloneBytes returns a copy of the bytes which represent the hash as a byte
// slice.
func (hash *Hash) CloneBytes() []byte {
	newHash := make([]byte, HashSize)
	copy(newHash, hash[:])

	return newHash
}

// SetBytes sets the bytes which represent the hash. An error is returned if
// the number of bytes passed in is not HashSize.
func (hash *Hash) SetBytes(newHash []byte) error {
	nhlen := len(newHash)
	if nhlen != HashSize {
		return errors.Errorf("invalid hash length of %d, want %d", nhlen,
			HashSize)
	}
	copy(hash[:], newHash)
	return nil
}

// Encode writes the 32 hash bytes to w in their stored order.
func (hash *Hash) Encode(w io.Writer) (int, error) {
	n, err := w.Write(hash[:])
	if err != nil {
		return n, errors.WithStack(err)
	}
	return n, nil
}

// Decode reads exactly 32 bytes from r into the hash. A short read returns
// io.ErrUnexpectedEOF and leaves the hash unchanged.
func (hash *Hash) Decode(r io.Reader) (int, error) {
	var h Hash
	n, err := io.ReadFull(r, h[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return n, errors.WithStack(err)
	}
	*hash = h
	return n, nil
}

// IsEqual returns true if target is the same as hash.
func (hash *Hash) IsEqual(target *Hash) bool {
	if hash == nil && target == nil {
		return true
	}
	if hash == nil || target == nil {
		return false
	}
	return *hash == *target
}

// Compare orders hashes by their raw bytes and returns -1, 0 or 1.
func (hash *Hash) Compare(target *Hash) int {
	return bytes.Compare(hash[:], target[:])
}

// Less returns true iff hash a is less than hash b when both are compared
// byte by byte.
func Less(a *Hash, b *Hash) bool {
	return a.Compare(b) < 0
}

// AreEqual returns true if both slices contain the same hashes.
// Either slice must not contain duplicates.
func AreEqual(first []*Hash, second []*Hash) bool {
	if len(first) != len(second) {
		return false
	}

	for i := range first {
		if !first[i].IsEqual(second[i]) {
			return false
		}
	}

	return true
}

// NewHash returns a new Hash from a byte slice. An error is returned if
// the number of bytes passed in is not HashSize.
func NewHash(newHash []byte) (*Hash, error) {
	var sh Hash
	err := sh.SetBytes(newHash)
	if err != nil {
		return nil, err
	}
	return &sh, err
}

// NewHashFromStr creates a Hash from a hash string. The string should be
// the hexadecimal string of a byte-reversed hash, but any missing characters
// result in zero padding at the end of the Hash.
func NewHashFromStr(hash string) (*Hash, error) {
	ret := new(Hash)
	err := Decode(ret, hash)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// Decode decodes the byte-reversed hexadecimal string encoding of a Hash to a
// destination.
func Decode(dst *Hash, src string) error {
	// Return error if hash string is too long.
	if len(src) > MaxHashStringSize {
		return ErrHashStrSize
	}

	// Hex decoder expects the hash to be a multiple of two. When not, pad
	// with a leading zero.
	var srcBytes []byte
	if len(src)%2 == 0 {
		srcBytes = []byte(src)
	} else {
		srcBytes = make([]byte, 1+len(src))
		srcBytes[0] = '0'
		copy(srcBytes[1:], src)
	}

	// Hex decode the source bytes to a temporary destination.
	var reversedHash Hash
	_, err := hex.Decode(reversedHash[HashSize-hex.DecodedLen(len(srcBytes)):], srcBytes)
	if err != nil {
		return errors.WithStack(err)
	}

	// Reverse copy from the temporary hash to destination. Because the
	// temporary was zeroed, the written result will be correctly padded.
	for i, b := range reversedHash[:HashSize/2] {
		dst[i], dst[HashSize-1-i] = reversedHash[HashSize-1-i], b
	}

	return nil
}

// MustNewHashFromStr is like NewHashFromStr but panics on invalid input. It
// is meant for hard-coded constants and tests.
func MustNewHashFromStr(hash string) *Hash {
	h, err := NewHashFromStr(hash)
	if err != nil {
		panic(err)
	}
	return h
}
