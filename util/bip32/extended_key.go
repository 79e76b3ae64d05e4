package bip32

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/viacoin/viautil/btcec"
	"github.com/viacoin/viautil/chaincfg"
	"github.com/viacoin/viautil/util"
	"github.com/viacoin/viautil/util/base58"
)

const (
	versionSerializationLen     = 4
	depthSerializationLen       = 1
	fingerprintSerializationLen = 4
	childNumberSerializationLen = 4
	chainCodeSerializationLen   = 32
	keySerializationLen         = 33
	checkSumLen                 = 4
)

// serializedKeyLen is the length of a serialized public or private
// extended key, checksum excluded.
const serializedKeyLen = versionSerializationLen +
	depthSerializationLen +
	fingerprintSerializationLen +
	childNumberSerializationLen +
	chainCodeSerializationLen +
	keySerializationLen

const extendedKeySerializationLen = serializedKeyLen + checkSumLen

// ExtendedKey houses all the information needed to support a hierarchical
// deterministic extended key. See the package overview documentation for
// more details on how to use extended keys.
//
// An ExtendedKey is never modified once created. Derive and Neuter return new
// keys.
type ExtendedKey struct {
	version           [4]byte
	privateKey        *btcec.PrivateKey
	publicKey         *btcec.PublicKey
	chainCode         [32]byte
	depth             uint8
	parentFingerprint [4]byte
	childNumber       uint32
}

// NewExtendedKey returns a new instance of an extended key with the given
// fields. No error checking is performed here as it's only intended to be a
// convenience method used to create a populated struct. This function should
// only be used by applications that need to create custom ExtendedKeys. All
// other applications should just use NewMaster, Derive, or Neuter.
//
// privateKey may be nil, in which case the key is public only.
func NewExtendedKey(version [4]byte, privateKey *btcec.PrivateKey, publicKey *btcec.PublicKey,
	chainCode [32]byte, parentFingerprint [4]byte, depth uint8, childNumber uint32) *ExtendedKey {

	return &ExtendedKey{
		version:           version,
		privateKey:        privateKey,
		publicKey:         publicKey,
		chainCode:         chainCode,
		depth:             depth,
		parentFingerprint: parentFingerprint,
		childNumber:       childNumber,
	}
}

// IsPrivate returns whether or not the extended key is a private extended key.
func (k *ExtendedKey) IsPrivate() bool {
	return k.privateKey != nil
}

// Version returns the extended key's version bytes.
func (k *ExtendedKey) Version() [4]byte {
	return k.version
}

// Depth returns the current derivation level with respect to the root.
//
// The root key has depth zero, and the field has a maximum of 255 due to
// how depth is serialized.
func (k *ExtendedKey) Depth() uint8 {
	return k.depth
}

// ParentFingerprint returns a fingerprint of the parent extended key from
// which this one was derived. It is zero for the master key.
func (k *ExtendedKey) ParentFingerprint() [4]byte {
	return k.parentFingerprint
}

// ChildIndex returns the index at which the child extended key was derived.
//
// Extended keys with depth 0 will always return 0.
func (k *ExtendedKey) ChildIndex() uint32 {
	return k.childNumber
}

// ChainCode returns the chain code part of this extended key.
func (k *ExtendedKey) ChainCode() [32]byte {
	return k.chainCode
}

// ECPubKey converts the extended key to a btcec public key and returns it.
func (k *ExtendedKey) ECPubKey() *btcec.PublicKey {
	return k.publicKey
}

// ECPrivKey converts the extended key to a btcec private key and returns it.
// As you might imagine this is only possible if the extended key is a private
// extended key (as determined by the IsPrivate function). The
// ErrNotPrivateExtendedKey error will be returned if this function is called
// on a public extended key.
func (k *ExtendedKey) ECPrivKey() (*btcec.PrivateKey, error) {
	if !k.IsPrivate() {
		return nil, ErrNotPrivateExtendedKey
	}
	return k.privateKey, nil
}

// Neuter returns a new extended public key from this extended private key. The
// same extended key will be returned unaltered if it is already an extended
// public key.
//
// As the name implies, an extended public key does not have access to the
// private key, so it is not capable of signing transactions or deriving
// child extended private keys. However, it is capable of deriving further
// child extended public keys.
func (k *ExtendedKey) Neuter() (*ExtendedKey, error) {
	if !k.IsPrivate() {
		return k, nil
	}

	// Get the associated public extended key version bytes.
	publicVersion, err := chaincfg.HDPrivateKeyToPublicKeyID(k.version[:])
	if err != nil {
		return nil, err
	}
	var version [4]byte
	copy(version[:], publicVersion)

	return NewExtendedKey(version, nil, k.publicKey, k.chainCode,
		k.parentFingerprint, k.depth, k.childNumber), nil
}

// Address converts the extended key to a standard pay-to-pubkey-hash
// address for the passed network.
func (k *ExtendedKey) Address(params *chaincfg.Params) (*util.AddressPubKeyHash, error) {
	return util.NewAddressPubKeyHashFromPublicKey(k.publicKey.SerializeCompressed(), params)
}

// IsForNet returns whether or not the extended key is associated with the
// passed network.
func (k *ExtendedKey) IsForNet(params *chaincfg.Params) bool {
	return k.version == params.HDPrivateKeyID || k.version == params.HDPublicKeyID
}

func (k *ExtendedKey) serialize() []byte {
	serialized := make([]byte, 0, extendedKeySerializationLen)
	serialized = append(serialized, k.version[:]...)
	serialized = append(serialized, k.depth)
	serialized = append(serialized, k.parentFingerprint[:]...)
	serialized = append(serialized, serializeUint32(k.childNumber)...)
	serialized = append(serialized, k.chainCode[:]...)
	if k.IsPrivate() {
		serialized = append(serialized, 0x00)
		serialized = append(serialized, k.privateKey.Serialize()...)
	} else {
		serialized = append(serialized, k.publicKey.SerializeCompressed()...)
	}

	return append(serialized, calcChecksum(serialized)...)
}

// String returns the extended key as a human-readable base58-encoded string.
func (k *ExtendedKey) String() string {
	return base58.Encode(k.serialize())
}

// NewKeyFromString returns a new extended key instance from a base58-encoded
// extended key.
func NewKeyFromString(key string) (*ExtendedKey, error) {
	decoded, err := base58.Decode(key)
	if err != nil {
		return nil, err
	}
	if len(decoded) != extendedKeySerializationLen {
		return nil, errors.Wrapf(ErrInvalidKeyLen, "key length must be %d bytes but got %d",
			extendedKeySerializationLen, len(decoded))
	}

	err = validateChecksum(decoded)
	if err != nil {
		return nil, err
	}

	payload := decoded[:serializedKeyLen]
	var version [4]byte
	copy(version[:], payload[:versionSerializationLen])
	payload = payload[versionSerializationLen:]
	depth := payload[0]
	payload = payload[depthSerializationLen:]
	var parentFingerprint [4]byte
	copy(parentFingerprint[:], payload[:fingerprintSerializationLen])
	payload = payload[fingerprintSerializationLen:]
	childNumber := binary.BigEndian.Uint32(payload[:childNumberSerializationLen])
	payload = payload[childNumberSerializationLen:]
	var chainCode [32]byte
	copy(chainCode[:], payload[:chainCodeSerializationLen])
	keyData := payload[chainCodeSerializationLen:]

	if depth == 0 && (parentFingerprint != [4]byte{} || childNumber != 0) {
		return nil, errors.Wrap(ErrInvalidKeyLen, "master key with a parent fingerprint or child index")
	}

	// The serialized format doesn't carry a private flag, so the first
	// byte of the key data tells private keys, which are padded with a
	// zero, from compressed public keys.
	if keyData[0] == 0x00 {
		privateKey, publicKey, err := btcec.PrivKeyFromBytes(keyData[1:])
		if err != nil {
			return nil, err
		}
		return NewExtendedKey(version, privateKey, publicKey, chainCode,
			parentFingerprint, depth, childNumber), nil
	}

	publicKey, err := btcec.ParsePubKey(keyData)
	if err != nil {
		return nil, err
	}
	return NewExtendedKey(version, nil, publicKey, chainCode,
		parentFingerprint, depth, childNumber), nil
}
