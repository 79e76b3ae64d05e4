package bip32

import (
	"io"

	"github.com/pkg/errors"

	"github.com/viacoin/viautil/btcec"
	"github.com/viacoin/viautil/chaincfg"
)

const (
	// RecommendedSeedLen is the recommended length in bytes for a seed
	// to a master node.
	RecommendedSeedLen = 32 // 256 bits

	// HardenedKeyStart is the index at which a hardened key starts. Each
	// extended key has 2^31 normal child keys and 2^31 hardened child keys.
	// Thus the range for normal child keys is [0, 2^31 - 1] and the range
	// for hardened child keys is [2^31, 2^32 - 1].
	HardenedKeyStart = 0x80000000 // 2^31

	// MinSeedBytes is the minimum number of bytes allowed for a seed to
	// a master node.
	MinSeedBytes = 16 // 128 bits

	// MaxSeedBytes is the maximum number of bytes allowed for a seed to
	// a master node.
	MaxSeedBytes = 64 // 512 bits

	// maxUint8 is the max positive integer which can be serialized in a uint8
	maxUint8 = 1<<8 - 1
)

var (
	// ErrHardenedDerivationRequiresPrivateKey describes an error in which
	// the caller attempted to derive a hardened extended key from a public
	// key.
	ErrHardenedDerivationRequiresPrivateKey = errors.New("cannot derive a " +
		"hardened key from a public key")

	// ErrDeriveBeyondMaxDepth describes an error in which the caller
	// has attempted to derive more than 255 keys from a root key.
	ErrDeriveBeyondMaxDepth = errors.New("cannot derive a key with more than " +
		"255 indices in its path")

	// ErrNotPrivateExtendedKey describes an error in which the caller
	// attempted to extract a private key from a public extended key.
	ErrNotPrivateExtendedKey = errors.New("unable to create private keys from a " +
		"public extended key")

	// ErrInvalidChildIndex describes an error in which the child at a
	// specific index is invalid due to the derived key falling outside of
	// the valid range for secp256k1 private keys. This error indicates the
	// caller should simply ignore the invalid child extended key at this
	// index and go to the next index.
	ErrInvalidChildIndex = errors.New("the extended key at this index is invalid")

	// ErrUnusableSeed describes an error in which the provided seed is not
	// usable due to the derived key falling outside of the valid range for
	// secp256k1 private keys. This error indicates the caller must choose
	// another seed.
	ErrUnusableSeed = errors.New("unusable seed")

	// ErrInvalidSeedLen describes an error in which the provided seed or
	// seed length is not in the allowed range.
	ErrInvalidSeedLen = errors.Errorf("seed length must be between %d and %d "+
		"bits", MinSeedBytes*8, MaxSeedBytes*8)

	// ErrInvalidKeyLen describes an error in which the provided serialized
	// key is not the expected length.
	ErrInvalidKeyLen = errors.New("the provided serialized extended key " +
		"length is invalid")

	// ErrInvalidPath describes an error in which a derivation path could
	// not be parsed.
	ErrInvalidPath = errors.New("invalid derivation path")
)

// masterKey is the master key used along with a random seed used to generate
// the master node in the hierarchical tree.
var masterKey = []byte("Bitcoin seed")

// GenerateSeed returns a cryptographically secure random seed read from rand
// that can be used as the input for the NewMaster function to generate a new
// master node.
//
// The length is in bytes and it must be between 16 and 64 (128 to 512 bits).
// The recommended length is 32 (256 bits) as defined by the
// RecommendedSeedLen constant.
func GenerateSeed(rand io.Reader, length uint8) ([]byte, error) {
	// Per [BIP32], the seed must be in range [MinSeedBytes, MaxSeedBytes].
	if length < MinSeedBytes || length > MaxSeedBytes {
		return nil, ErrInvalidSeedLen
	}

	buf := make([]byte, length)
	_, err := io.ReadFull(rand, buf)
	if err != nil {
		return nil, errors.Wrap(err, "error reading seed")
	}

	return buf, nil
}

// NewMaster creates a new master node for use in creating a hierarchical
// deterministic key chain. The seed must be between 128 and 512 bits and
// should be generated by a cryptographically secure random generator.
func NewMaster(seed []byte, params *chaincfg.Params) (*ExtendedKey, error) {
	// Per [BIP32], the seed must be in range [MinSeedBytes, MaxSeedBytes].
	if len(seed) < MinSeedBytes || len(seed) > MaxSeedBytes {
		return nil, ErrInvalidSeedLen
	}

	// First take the HMAC-SHA512 of the master key and the seed data:
	//   I = HMAC-SHA512(Key = "Bitcoin seed", Data = S)
	mac := newHMACWriter(masterKey)
	mac.InfallibleWrite(seed)
	I := mac.Sum(nil)

	// Split "I" into two 32-byte sequences Il and Ir where:
	//   Il = master secret key
	//   Ir = master chain code
	var chainCode [32]byte
	copy(chainCode[:], I[32:])

	privateKey, publicKey, err := btcec.PrivKeyFromBytes(I[:32])
	if err != nil {
		return nil, errors.Wrap(ErrUnusableSeed, err.Error())
	}

	return NewExtendedKey(params.HDPrivateKeyID, privateKey, publicKey, chainCode,
		[4]byte{}, 0, 0), nil
}

// NewMasterWithPath returns a new master key based on the given seed and network, with a derivation
// to the given path.
func NewMasterWithPath(seed []byte, params *chaincfg.Params, pathString string) (*ExtendedKey, error) {
	master, err := NewMaster(seed, params)
	if err != nil {
		return nil, err
	}

	return master.DeriveFromPath(pathString)
}
