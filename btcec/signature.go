// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcec

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/pkg/errors"
)

// Signature is an ECDSA signature over secp256k1.
type Signature struct {
	sig *ecdsa.Signature
}

// Serialize returns the signature in DER format with S at most half the
// group order.
func (sig *Signature) Serialize() []byte {
	return sig.sig.Serialize()
}

// IsEqual reports whether both signatures have the same R and S.
func (sig *Signature) IsEqual(other *Signature) bool {
	return sig.sig.IsEqual(other.sig)
}

// ParseSignature parses a strict DER encoded signature. R and S must be in
// [1, N-1].
func ParseSignature(sigStr []byte) (*Signature, error) {
	if len(sigStr) < MinSigLen || len(sigStr) > MaxSigLen {
		return nil, errors.Errorf("malformed signature: wrong size %d", len(sigStr))
	}
	sig, err := ecdsa.ParseDERSignature(sigStr)
	if err != nil {
		return nil, errors.Wrap(err, "malformed signature")
	}
	return &Signature{sig: sig}, nil
}
