package bip32

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/viacoin/viautil/util"
)

func isHardened(i uint32) bool {
	return i >= HardenedKeyStart
}

// Derive returns a derived child extended key at the given index.
//
// When this extended key is a private extended key (as determined by the
// IsPrivate function), a private extended key will be derived. Otherwise, the
// derived extended key will also be a public extended key.
//
// When the index is greater than or equal to the HardenedKeyStart constant,
// the derived extended key will be a hardened extended key. It is only
// possible to derive a hardened extended key from a private extended key.
// Consequently, this function will return ErrHardenedDerivationRequiresPrivateKey
// if a hardened child extended key is requested from a public extended key.
//
// A hardened extended key is useful since, as previously mentioned, it
// requires a parent private extended key to derive. In other words, normal
// child extended public keys can be derived from a parent public extended key
// (no knowledge of the parent private key) whereas hardened extended keys may
// not be.
//
// NOTE: There is an extremely small chance (< 1 in 2^127) the specific child
// index does not derive to a usable child. The ErrInvalidChildIndex error will
// be returned if this should occur, and the caller is expected to ignore the
// invalid child and simply increment to the next index.
func (k *ExtendedKey) Derive(i uint32) (*ExtendedKey, error) {
	// Prevent derivation of children beyond the max allowed depth.
	if k.depth == maxUint8 {
		return nil, ErrDeriveBeyondMaxDepth
	}

	I, err := k.calcI(i)
	if err != nil {
		return nil, err
	}

	// Split "I" into two 32-byte sequences Il and Ir where:
	//   Il = intermediate key used to derive the child
	//   Ir = child chain code
	var iL, iR [32]byte
	copy(iL[:], I[:32])
	copy(iR[:], I[32:])

	child := &ExtendedKey{
		version:           k.version,
		chainCode:         iR,
		depth:             k.depth + 1,
		parentFingerprint: k.calcFingerprint(),
		childNumber:       i,
	}

	// Both the private and the public child keys are parse256(Il) added
	// to the parent key, as a scalar or as a point respectively. An Il
	// outside the curve order or a zero result makes the child unusable.
	if k.IsPrivate() {
		child.privateKey, err = k.privateKey.TweakAdd(iL)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidChildIndex, err.Error())
		}
		child.publicKey, err = child.privateKey.PubKey()
		if err != nil {
			return nil, errors.Wrap(ErrInvalidChildIndex, err.Error())
		}
	} else {
		child.publicKey, err = k.publicKey.TweakAdd(iL)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidChildIndex, err.Error())
		}
	}

	log.Tracef("Derived child %d at depth %d of parent %x", i, child.depth,
		child.parentFingerprint)
	return child, nil
}

// calcI computes HMAC-SHA512(Key = chainCode, Data = data) where data is
// 0x00 || ser256(parentKey) || ser32(i) for hardened children and
// serP(parentPubKey) || ser32(i) for normal ones.
func (k *ExtendedKey) calcI(i uint32) ([]byte, error) {
	if isHardened(i) && !k.IsPrivate() {
		return nil, ErrHardenedDerivationRequiresPrivateKey
	}

	mac := newHMACWriter(k.chainCode[:])
	if isHardened(i) {
		mac.InfallibleWrite([]byte{0x00})
		mac.InfallibleWrite(k.privateKey.Serialize())
	} else {
		mac.InfallibleWrite(k.publicKey.SerializeCompressed())
	}

	mac.InfallibleWrite(serializeUint32(i))
	return mac.Sum(nil), nil
}

// calcFingerprint returns the first four bytes of the hash160 of the
// compressed public key.
func (k *ExtendedKey) calcFingerprint() [4]byte {
	hash := util.Hash160(k.publicKey.SerializeCompressed())
	var fingerprint [4]byte
	copy(fingerprint[:], hash[:4])
	return fingerprint
}

func serializeUint32(v uint32) []byte {
	serialized := make([]byte, 4)
	binary.BigEndian.PutUint32(serialized, v)
	return serialized
}
