// Copyright (c) 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcec

import (
	"bytes"

	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/kaspanet/go-secp256k1"
	"github.com/pkg/errors"

	"github.com/viacoin/viautil/util/chainhash"
)

// ErrInvalidPubKey is returned when bytes don't describe a point on the
// curve in one of the supported encodings.
var ErrInvalidPubKey = errors.New("invalid public key")

// PublicKey is a point on secp256k1. The libsecp256k1 handle serves key
// tweaking, the decred point serves encoding and signature checks.
type PublicKey struct {
	key   *secp256k1.ECDSAPublicKey
	point *secp.PublicKey
}

func newPublicKey(key *secp256k1.ECDSAPublicKey) (*PublicKey, error) {
	serialized, err := key.Serialize()
	if err != nil {
		return nil, errors.Wrap(err, "error serializing public key")
	}
	point, err := secp.ParsePubKey(serialized[:])
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPubKey, err.Error())
	}
	return &PublicKey{key: key, point: point}, nil
}

// ParsePubKey parses a public key in its compressed (33 bytes) or
// uncompressed (65 bytes) form. The hybrid 0x06/0x07 form is rejected.
func ParsePubKey(pubKeyStr []byte) (*PublicKey, error) {
	switch len(pubKeyStr) {
	case PubKeyBytesLenCompressed:
		if pubKeyStr[0]&^0x1 != pubkeyCompressed {
			return nil, errors.Wrapf(ErrInvalidPubKey, "invalid magic in compressed "+
				"pubkey string: %d", pubKeyStr[0])
		}

	case PubKeyBytesLenUncompress:
		if pubKeyStr[0] != pubkeyUncompressed {
			return nil, errors.Wrapf(ErrInvalidPubKey, "invalid magic in "+
				"uncompressed pubkey string: %d", pubKeyStr[0])
		}

	default:
		return nil, errors.Wrapf(ErrInvalidPubKey, "invalid pub key length %d",
			len(pubKeyStr))
	}

	point, err := secp.ParsePubKey(pubKeyStr)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPubKey, err.Error())
	}
	key, err := secp256k1.DeserializeECDSAPubKey(point.SerializeCompressed())
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPubKey, err.Error())
	}
	return &PublicKey{key: key, point: point}, nil
}

// SerializeCompressed serializes a public key in the 33-byte compressed
// format.
func (p *PublicKey) SerializeCompressed() []byte {
	return p.point.SerializeCompressed()
}

// SerializeUncompressed serializes a public key in the 65-byte uncompressed
// format.
func (p *PublicKey) SerializeUncompressed() []byte {
	return p.point.SerializeUncompressed()
}

// IsEqual compares this PublicKey instance to the one passed, returning true
// if both PublicKeys are equivalent.
func (p *PublicKey) IsEqual(otherPubKey *PublicKey) bool {
	return bytes.Equal(p.SerializeCompressed(), otherPubKey.SerializeCompressed())
}

// Verify reports whether sig is a valid signature of hash by p.
func (p *PublicKey) Verify(hash *chainhash.Hash, sig *Signature) bool {
	return sig.sig.Verify(hash[:], p.point)
}

// TweakAdd returns p + tweak*G. The receiver is left untouched.
func (p *PublicKey) TweakAdd(tweak [32]byte) (*PublicKey, error) {
	keyCopy := *p.key
	err := keyCopy.Add(tweak)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPubKey, err.Error())
	}
	return newPublicKey(&keyCopy)
}
