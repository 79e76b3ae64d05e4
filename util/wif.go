// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/pkg/errors"

	"github.com/viacoin/viautil/btcec"
	"github.com/viacoin/viautil/chaincfg"
	"github.com/viacoin/viautil/util/base58"
)

// ErrMalformedPrivateKey describes an error where a WIF-encoded private
// key cannot be decoded due to being improperly formatted. This may occur
// if the byte length is incorrect or an unexpected magic number was
// encountered.
var ErrMalformedPrivateKey = errors.New("malformed private key")

// compressMagic is the magic byte used to identify a WIF encoding for
// an address created from a compressed serialized public key.
const compressMagic byte = 0x01

// WIF contains the individual components described by the Wallet Import Format
// (WIF). A WIF string is typically used to represent a private key and its
// associated address in a way that may be easily copied and imported into or
// exported from wallet software. WIF strings may be decoded into this
// structure by calling DecodeWIF or created with a user-provided private key
// by calling NewWIF.
type WIF struct {
	// PrivKey is the private key being imported or exported.
	PrivKey *btcec.PrivateKey

	// CompressPubKey specifies whether the address controlled by the
	// imported or exported private key was created by hashing a
	// compressed (33-byte) serialized public key, rather than an
	// uncompressed (65-byte) one.
	CompressPubKey bool

	// netID is the network identifier byte used when
	// WIF encoding the private key.
	netID byte
}

// NewWIF creates a new WIF structure to export an address and its private key
// as a string encoded in the Wallet Import Format. The compress argument
// specifies whether the address intended to be imported or exported was created
// by serializing the public key compressed rather than uncompressed.
func NewWIF(privKey *btcec.PrivateKey, params *chaincfg.Params, compress bool) (*WIF, error) {
	if params == nil {
		return nil, errors.New("no network")
	}
	return &WIF{privKey, compress, params.PrivateKeyID}, nil
}

// IsForNet returns whether or not the decoded WIF structure is associated
// with the passed network.
func (w *WIF) IsForNet(params *chaincfg.Params) bool {
	return w.netID == params.PrivateKeyID
}

// DecodeWIF creates a new WIF structure by decoding the string encoding of
// the import format.
//
// The WIF string must be a base58-encoded string of the following byte
// sequence:
//
//   - 1 byte to identify the network, must be 0xc7 for mainnet or 0xef for
//     either testnet or the regression test network
//   - 32 bytes of a binary-encoded, big-endian, zero-padded private key
//   - Optional 1 byte (equal to 0x01) if the address being imported or exported
//     was created by taking the RIPEMD160 after SHA256 hash of a serialized
//     compressed (33-byte) public key
//   - 4 bytes of checksum, must equal the first four bytes of the double SHA256
//     of every byte before the checksum in this sequence
//
// If the base58-decoded byte sequence does not match this, DecodeWIF will
// return a non-nil error. ErrMalformedPrivateKey is returned when the WIF
// is of an impossible length or the expected compressed pubkey magic number
// does not equal the expected value of 0x01. base58.ErrChecksumMismatch is
// returned if the expected WIF checksum does not match the calculated
// checksum.
func DecodeWIF(wif string) (*WIF, error) {
	payload, netID, err := base58.CheckDecode(wif)
	if err != nil {
		return nil, err
	}

	var compress bool
	switch len(payload) {
	case btcec.PrivKeyBytesLen + 1:
		if payload[btcec.PrivKeyBytesLen] != compressMagic {
			return nil, errors.Wrapf(ErrMalformedPrivateKey,
				"compression flag %#02x", payload[btcec.PrivKeyBytesLen])
		}
		compress = true
	case btcec.PrivKeyBytesLen:
		compress = false
	default:
		return nil, errors.Wrapf(ErrMalformedPrivateKey, "payload of %d bytes", len(payload))
	}

	privKey, _, err := btcec.PrivKeyFromBytes(payload[:btcec.PrivKeyBytesLen])
	if err != nil {
		return nil, errors.Wrap(ErrMalformedPrivateKey, err.Error())
	}
	return &WIF{privKey, compress, netID}, nil
}

// String creates the Wallet Import Format string encoding of a WIF structure.
// See DecodeWIF for a detailed breakdown of the format and requirements of
// a valid WIF string.
func (w *WIF) String() string {
	// Precalculate size. Maximum number of bytes before base58 encoding
	// is one byte for the network, 32 bytes of private key, possibly one
	// extra byte if the pubkey is to be compressed, and finally four
	// bytes of checksum.
	encodeLen := btcec.PrivKeyBytesLen
	if w.CompressPubKey {
		encodeLen++
	}

	a := make([]byte, 0, encodeLen)
	a = append(a, w.PrivKey.Serialize()...)
	if w.CompressPubKey {
		a = append(a, compressMagic)
	}
	return base58.CheckEncode(a, w.netID)
}

// SerializePubKey serializes the associated public key of the imported or
// exported private key in either a compressed or uncompressed format. The
// serialization format chosen depends on the value of w.CompressPubKey.
func (w *WIF) SerializePubKey() ([]byte, error) {
	pubKey, err := w.PrivKey.PubKey()
	if err != nil {
		return nil, err
	}
	if w.CompressPubKey {
		return pubKey.SerializeCompressed(), nil
	}
	return pubKey.SerializeUncompressed(), nil
}
