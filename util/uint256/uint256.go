// Package uint256 implements the unsigned 256-bit integer used for proof of
// work targets, along with the compact "bits" form stored in block headers.
package uint256

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"math/bits"

	"github.com/pkg/errors"
	"github.com/viacoin/viautil/util/chainhash"
)

// Uint256 is an unsigned 256-bit integer stored as four 64-bit limbs, least
// significant limb first. The zero value is 0.
type Uint256 [4]uint64

// FromUint64 returns v as a Uint256.
func FromUint64(v uint64) Uint256 {
	return Uint256{v}
}

// FromHash interprets the bytes of hash as a little-endian number, which is
// how block hashes are compared against their target.
func FromHash(hash *chainhash.Hash) Uint256 {
	var u Uint256
	for i := range u {
		u[i] = binary.LittleEndian.Uint64(hash[i*8:])
	}
	return u
}

// FromBig converts a non-negative big.Int of at most 256 bits.
func FromBig(b *big.Int) (Uint256, error) {
	if b.Sign() < 0 {
		return Uint256{}, errors.Errorf("%s is negative", b)
	}
	if b.BitLen() > 256 {
		return Uint256{}, errors.Errorf("%s doesn't fit in 256 bits", b)
	}
	var buf [32]byte
	b.FillBytes(buf[:])
	return FromBytes32(buf), nil
}

// FromBytes32 interprets buf as a big-endian number.
func FromBytes32(buf [32]byte) Uint256 {
	var u Uint256
	for i := range u {
		u[i] = binary.BigEndian.Uint64(buf[32-(i+1)*8:])
	}
	return u
}

// FromHex parses a hexadecimal number, with or without a 0x prefix.
func FromHex(s string) (Uint256, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	b, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return Uint256{}, errors.Errorf("invalid hexadecimal number %q", s)
	}
	return FromBig(b)
}

// MustFromHex is like FromHex but panics on invalid input. It is meant for
// hard-coded constants.
func MustFromHex(s string) Uint256 {
	u, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Bytes32 returns u as 32 big-endian bytes.
func (u Uint256) Bytes32() [32]byte {
	var buf [32]byte
	for i := range u {
		binary.BigEndian.PutUint64(buf[32-(i+1)*8:], u[i])
	}
	return buf
}

// ToBig returns u as a big.Int.
func (u Uint256) ToBig() *big.Int {
	buf := u.Bytes32()
	return new(big.Int).SetBytes(buf[:])
}

// Uint64 returns the low 64 bits of u.
func (u Uint256) Uint64() uint64 {
	return u[0]
}

// String returns u as 64 zero padded hexadecimal digits.
func (u Uint256) String() string {
	return fmt.Sprintf("%016x%016x%016x%016x", u[3], u[2], u[1], u[0])
}

// IsZero returns whether u is 0.
func (u Uint256) IsZero() bool {
	return u[0]|u[1]|u[2]|u[3] == 0
}

// Cmp compares u and v and returns -1, 0 or 1.
func (u Uint256) Cmp(v Uint256) int {
	for i := len(u) - 1; i >= 0; i-- {
		switch {
		case u[i] < v[i]:
			return -1
		case u[i] > v[i]:
			return 1
		}
	}
	return 0
}

// Eq returns u == v.
func (u Uint256) Eq(v Uint256) bool {
	return u == v
}

// Lt returns u < v.
func (u Uint256) Lt(v Uint256) bool {
	return u.Cmp(v) < 0
}

// Lte returns u <= v.
func (u Uint256) Lte(v Uint256) bool {
	return u.Cmp(v) <= 0
}

// BitLen returns the number of bits required to represent u.
func (u Uint256) BitLen() int {
	for i := len(u) - 1; i >= 0; i-- {
		if u[i] != 0 {
			return i*64 + bits.Len64(u[i])
		}
	}
	return 0
}

// Lsh returns u << n. Bits shifted past bit 255 are lost.
func (u Uint256) Lsh(n uint) Uint256 {
	var result Uint256
	if n >= 256 {
		return result
	}
	limbShift, bitShift := int(n/64), n%64
	for i := len(u) - 1; i >= limbShift; i-- {
		src := i - limbShift
		result[i] = u[src] << bitShift
		if bitShift > 0 && src > 0 {
			result[i] |= u[src-1] >> (64 - bitShift)
		}
	}
	return result
}

// Rsh returns u >> n.
func (u Uint256) Rsh(n uint) Uint256 {
	var result Uint256
	if n >= 256 {
		return result
	}
	limbShift, bitShift := int(n/64), n%64
	for i := 0; i+limbShift < len(u); i++ {
		src := i + limbShift
		result[i] = u[src] >> bitShift
		if bitShift > 0 && src+1 < len(u) {
			result[i] |= u[src+1] << (64 - bitShift)
		}
	}
	return result
}
