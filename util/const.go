// Copyright (c) 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

const (
	// SatoshiPerViacent is the number of satoshi in one viacoin cent.
	SatoshiPerViacent = 1000000

	// SatoshiPerViacoin is the number of satoshi in one viacoin (1 VIA).
	SatoshiPerViacoin = 100000000

	// MaxSatoshi is the maximum transaction amount allowed in satoshi. It is
	// the viacoin supply cap of 23 176 392 VIA.
	MaxSatoshi = 23176392 * SatoshiPerViacoin
)
