package bip32

import (
	"io"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

// ErrInvalidEntropyLen describes an error in which the entropy requested for
// a mnemonic is not a multiple of 32 bits between 128 and 256 bits.
var ErrInvalidEntropyLen = errors.New("entropy length must be a multiple of " +
	"32 bits between 128 and 256 bits")

// NewMnemonic returns a BIP39 english mnemonic encoding bits of entropy read
// from rand.
func NewMnemonic(rand io.Reader, bits int) (string, error) {
	if bits%32 != 0 || bits < 128 || bits > 256 {
		return "", ErrInvalidEntropyLen
	}

	entropy := make([]byte, bits/8)
	_, err := io.ReadFull(rand, entropy)
	if err != nil {
		return "", errors.Wrap(err, "error reading entropy")
	}

	return bip39.NewMnemonic(entropy)
}

// SeedFromMnemonic returns the 64 byte BIP39 seed of the mnemonic protected by
// passphrase. The mnemonic checksum is verified.
func SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, errors.Wrap(err, "invalid mnemonic")
	}
	return seed, nil
}
