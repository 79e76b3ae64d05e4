package bip32

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha512"
	"hash"

	"github.com/pkg/errors"

	"github.com/viacoin/viautil/util/base58"
	"github.com/viacoin/viautil/util/chainhash"
)

func newHMACWriter(key []byte) hmacWriter {
	return hmacWriter{
		Hash: hmac.New(sha512.New, key),
	}
}

type hmacWriter struct {
	hash.Hash
}

func (hw hmacWriter) InfallibleWrite(p []byte) {
	_, err := hw.Write(p)
	if err != nil {
		panic(errors.Wrap(err, "writing to hmac should never fail"))
	}
}

func calcChecksum(data []byte) []byte {
	return chainhash.DoubleHashB(data)[:checkSumLen]
}

func validateChecksum(data []byte) error {
	checksum := data[len(data)-checkSumLen:]
	expectedChecksum := calcChecksum(data[:len(data)-checkSumLen])
	if !bytes.Equal(expectedChecksum, checksum) {
		return errors.Wrapf(base58.ErrChecksumMismatch, "expected checksum %x but got %x",
			expectedChecksum, checksum)
	}

	return nil
}
