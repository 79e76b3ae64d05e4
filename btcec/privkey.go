// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcec

import (
	"io"

	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/kaspanet/go-secp256k1"
	"github.com/pkg/errors"

	"github.com/viacoin/viautil/util/chainhash"
)

// ErrInvalidPrivateKey is returned when a scalar is zero or not below the
// curve order.
var ErrInvalidPrivateKey = errors.New("invalid private key")

// maxGenerateAttempts bounds how many candidates GeneratePrivateKey draws
// before giving up. A random 32 byte string is out of range with probability
// below 2^-127.
const maxGenerateAttempts = 16

// PrivateKey wraps a secp256k1 private key.
type PrivateKey struct {
	key *secp256k1.ECDSAPrivateKey
}

// PrivKeyFromBytes returns a private key for the 32 byte big-endian scalar
// pk, along with its public key.
func PrivKeyFromBytes(pk []byte) (*PrivateKey, *PublicKey, error) {
	if len(pk) != PrivKeyBytesLen {
		return nil, nil, errors.Wrapf(ErrInvalidPrivateKey,
			"private key must be %d bytes, got %d", PrivKeyBytesLen, len(pk))
	}
	key, err := secp256k1.DeserializeECDSAPrivateKeyFromSlice(pk)
	if err != nil {
		return nil, nil, errors.Wrap(ErrInvalidPrivateKey, err.Error())
	}
	privKey := &PrivateKey{key: key}
	pubKey, err := privKey.PubKey()
	if err != nil {
		return nil, nil, err
	}
	return privKey, pubKey, nil
}

// GeneratePrivateKey draws a new private key from rand.
func GeneratePrivateKey(rand io.Reader) (*PrivateKey, error) {
	var buf [PrivKeyBytesLen]byte
	for i := 0; i < maxGenerateAttempts; i++ {
		if _, err := io.ReadFull(rand, buf[:]); err != nil {
			return nil, errors.Wrap(err, "error reading randomness")
		}
		key, err := secp256k1.DeserializeECDSAPrivateKeyFromSlice(buf[:])
		if err == nil {
			return &PrivateKey{key: key}, nil
		}
	}
	return nil, errors.Wrap(ErrInvalidPrivateKey, "randomness source keeps producing out of range keys")
}

// PubKey returns the public key of p.
func (p *PrivateKey) PubKey() (*PublicKey, error) {
	pub, err := p.key.ECDSAPublicKey()
	if err != nil {
		return nil, errors.Wrap(err, "error calculating public key")
	}
	return newPublicKey(pub)
}

// Serialize returns the private key as a 32 byte big-endian scalar.
func (p *PrivateKey) Serialize() []byte {
	serialized := p.key.Serialize()
	return append([]byte(nil), serialized[:]...)
}

// Sign produces an ECDSA signature of hash using an RFC6979 nonce, so the
// same key and hash always give the same signature. S is at most half the
// group order.
func (p *PrivateKey) Sign(hash *chainhash.Hash) (*Signature, error) {
	key := secp.PrivKeyFromBytes(p.Serialize())
	defer key.Zero()
	return &Signature{sig: ecdsa.Sign(key, hash[:])}, nil
}

// TweakAdd returns (p + tweak) mod n. The receiver is left untouched.
func (p *PrivateKey) TweakAdd(tweak [32]byte) (*PrivateKey, error) {
	keyCopy := *p.key
	err := keyCopy.Add(tweak)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPrivateKey, err.Error())
	}
	return &PrivateKey{key: &keyCopy}, nil
}
