// Copyright (c) 2013, 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// AmountUnit describes a method of converting an Amount to something
// other than the base unit of a viacoin. The value of the AmountUnit
// is the exponent component of the decadic multiple to convert from
// an amount in viacoin to an amount counted in units.
type AmountUnit int

// These constants define various units used when describing a viacoin
// monetary amount.
const (
	AmountMegaVIA  AmountUnit = 6
	AmountKiloVIA  AmountUnit = 3
	AmountVIA      AmountUnit = 0
	AmountMilliVIA AmountUnit = -3
	AmountMicroVIA AmountUnit = -6
	AmountSatoshi  AmountUnit = -8
)

// ErrInvalidAmount is returned by NewAmount for NaN and infinite values.
var ErrInvalidAmount = errors.New("invalid viacoin amount")

// String returns the unit as a string. For recognized units, the SI
// prefix is used, or "Satoshi" for the base unit. For all unrecognized
// units, "1eN VIA" is returned, where N is the AmountUnit.
func (u AmountUnit) String() string {
	switch u {
	case AmountMegaVIA:
		return "MVIA"
	case AmountKiloVIA:
		return "kVIA"
	case AmountVIA:
		return "VIA"
	case AmountMilliVIA:
		return "mVIA"
	case AmountMicroVIA:
		return "μVIA"
	case AmountSatoshi:
		return "Satoshi"
	default:
		return "1e" + strconv.FormatInt(int64(u), 10) + " VIA"
	}
}

// Amount represents the base viacoin monetary unit (colloquially referred
// to as a `Satoshi'). A single Amount is equal to 1e-8 of a viacoin.
type Amount int64

// round converts a floating point number, which may or may not be representable
// as an integer, to the Amount integer type by rounding to the nearest integer.
// This is performed by adding or subtracting 0.5 depending on the sign, and
// relying on integer truncation to round the value to the nearest Amount.
func round(f float64) Amount {
	if f < 0 {
		return Amount(f - 0.5)
	}
	return Amount(f + 0.5)
}

// NewAmount creates an Amount from a floating point value representing
// some value in viacoin. NewAmount errors if f is NaN or +-Infinity, but
// does not check that the amount is within the total amount of viacoin
// producible as f may not refer to an amount at a single moment in time.
//
// NewAmount is for specifically for converting VIA to Satoshi.
// For creating a new Amount with an int64 value which denotes a quantity of
// Satoshi, do a simple type conversion from type int64 to Amount.
func NewAmount(f float64) (Amount, error) {
	// The amount is only considered invalid if it cannot be represented
	// as an integer type. This may happen if f is NaN or +-Infinity.
	switch {
	case math.IsNaN(f):
		fallthrough
	case math.IsInf(f, 1):
		fallthrough
	case math.IsInf(f, -1):
		return 0, ErrInvalidAmount
	}

	return round(f * SatoshiPerViacoin), nil
}

// ToUnit converts a monetary amount counted in viacoin base units to a
// floating point value representing an amount of viacoin.
func (a Amount) ToUnit(u AmountUnit) float64 {
	return float64(a) / math.Pow10(int(u+8))
}

// ToVIA is the equivalent of calling ToUnit with AmountVIA.
func (a Amount) ToVIA() float64 {
	return a.ToUnit(AmountVIA)
}

// Format formats a monetary amount counted in viacoin base units as a
// string for a given unit. The conversion will succeed for any unit,
// however, known units will be formated with an appended label describing
// the units with SI notation, or "Satoshi" for the base unit.
func (a Amount) Format(u AmountUnit) string {
	units := " " + u.String()
	formatted := strconv.FormatFloat(a.ToUnit(u), 'f', -int(u+8), 64)

	// When precision is set to -8, FormatFloat may add trailing zeros.
	if strings.Contains(formatted, ".") {
		formatted = strings.TrimRight(formatted, "0")
		formatted = strings.TrimRight(formatted, ".")
	}
	return formatted + units
}

// String is the equivalent of calling Format with AmountVIA.
func (a Amount) String() string {
	return a.Format(AmountVIA)
}

// MulF64 multiplies an Amount by a floating point value. While this is not
// an operation that must typically be done by a full node or wallet, it is
// useful for services that build on top of viacoin (for example, calculating
// a fee by multiplying by a percentage).
func (a Amount) MulF64(f float64) Amount {
	return round(float64(a) * f)
}

// IsValid reports whether a lies within the range an output value may take,
// zero through MaxSatoshi inclusive.
func (a Amount) IsValid() bool {
	return a >= 0 && a <= MaxSatoshi
}
