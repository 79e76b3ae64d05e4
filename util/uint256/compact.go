package uint256

import (
	"math/big"

	"github.com/pkg/errors"
)

var (
	// ErrNegativeTarget is returned when a compact target has its sign bit
	// set together with a non-zero mantissa.
	ErrNegativeTarget = errors.New("compact target is negative")

	// ErrTargetOverflow is returned when a compact target describes a
	// number that doesn't fit in 256 bits.
	ErrTargetOverflow = errors.New("compact target overflows 256 bits")
)

const (
	compactSignBit      = 0x00800000
	compactMantissaMask = 0x007fffff
)

// FromCompact converts a compact representation of a whole number N to an
// unsigned 256-bit number. The representation is similar to IEEE754 floating
// point numbers.
//
// Like IEEE754 floating point, there are three basic components: the sign,
// the exponent, and the mantissa. They are broken out as follows:
//
//	* the most significant 8 bits represent the unsigned base 256 exponent
//	* bit 23 (the 24th bit) represents the sign bit
//	* the least significant 23 bits represent the mantissa
//
//	-------------------------------------------------
//	|   Exponent     |    Sign    |    Mantissa     |
//	-------------------------------------------------
//	| 8 bits [31-24] | 1 bit [23] | 23 bits [22-00] |
//	-------------------------------------------------
//
// The formula to calculate N is:
//
//	N = (-1^sign) * mantissa * 256^(exponent-3)
//
// Targets are never negative, so a set sign bit with a non-zero mantissa
// yields ErrNegativeTarget.
func FromCompact(compact uint32) (Uint256, error) {
	exponent := uint(compact >> 24)
	mantissa := uint64(compact & compactMantissaMask)

	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
	}

	if mantissa != 0 && compact&compactSignBit != 0 {
		return Uint256{}, errors.Wrapf(ErrNegativeTarget, "compact %08x", compact)
	}
	if mantissa != 0 && (exponent > 34 ||
		(mantissa > 0xff && exponent > 33) ||
		(mantissa > 0xffff && exponent > 32)) {
		return Uint256{}, errors.Wrapf(ErrTargetOverflow, "compact %08x", compact)
	}

	if exponent <= 3 {
		return FromUint64(mantissa), nil
	}
	return FromUint64(mantissa).Lsh(8 * (exponent - 3)), nil
}

// ToCompact converts u to the compact representation described by
// FromCompact. The mantissa is kept below 0x800000 so the result is never
// read back as negative.
func (u Uint256) ToCompact() uint32 {
	exponent := uint((u.BitLen() + 7) / 8)

	var mantissa uint64
	if exponent <= 3 {
		mantissa = u.Uint64() << (8 * (3 - exponent))
	} else {
		mantissa = u.Rsh(8 * (exponent - 3)).Uint64()
	}

	if mantissa&compactSignBit != 0 {
		mantissa >>= 8
		exponent++
	}

	return uint32(mantissa) | uint32(exponent)<<24
}

var oneLsh256 = new(big.Int).Lsh(big.NewInt(1), 256)

// CalcWork returns the expected number of hashes needed to find a block
// hash at or below the target encoded by bits: 2^256 / (target + 1).
// Invalid and zero targets yield zero work.
func CalcWork(bits uint32) *big.Int {
	target, err := FromCompact(bits)
	if err != nil || target.IsZero() {
		return big.NewInt(0)
	}
	denominator := new(big.Int).Add(target.ToBig(), big.NewInt(1))
	return new(big.Int).Div(oneLsh256, denominator)
}

// Difficulty returns how many times harder the target encoded by bits is
// than the easiest target allowed, encoded by powLimitBits.
func Difficulty(bits uint32, powLimitBits uint32) (float64, error) {
	target, err := FromCompact(bits)
	if err != nil {
		return 0, err
	}
	powLimit, err := FromCompact(powLimitBits)
	if err != nil {
		return 0, err
	}
	if target.IsZero() {
		return 0, errors.Errorf("compact %08x encodes a zero target", bits)
	}
	difficulty, _ := new(big.Float).Quo(new(big.Float).SetInt(powLimit.ToBig()),
		new(big.Float).SetInt(target.ToBig())).Float64()
	return difficulty, nil
}
