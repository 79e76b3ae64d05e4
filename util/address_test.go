// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"encoding/hex"
	"reflect"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/viacoin/viautil/chaincfg"
	"github.com/viacoin/viautil/util"
	"github.com/viacoin/viautil/util/base58"
	"github.com/viacoin/viautil/util/bech32"
)

func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in test source")
	}
	return b
}

func TestAddresses(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		encoded string
		result  util.Address
		f       func() (util.Address, error)
		params  *chaincfg.Params
		script  []byte
	}{
		{
			name:    "mainnet p2pkh",
			addr:    "VgoThKjjxbz3rBTVUcQ9PWABf4pvqdXoUb",
			encoded: "VgoThKjjxbz3rBTVUcQ9PWABf4pvqdXoUb",
			f: func() (util.Address, error) {
				return util.NewAddressPubKeyHash(
					hexToBytes("4aa298c262edd9f1351204562e62e5476c4f06a9"),
					&chaincfg.MainNetParams)
			},
			params: &chaincfg.MainNetParams,
			script: hexToBytes("4aa298c262edd9f1351204562e62e5476c4f06a9"),
		},
		{
			name:    "mainnet p2pkh from public key",
			addr:    "VgoThKjjxbz3rBTVUcQ9PWABf4pvqdXoUb",
			encoded: "VgoThKjjxbz3rBTVUcQ9PWABf4pvqdXoUb",
			f: func() (util.Address, error) {
				return util.NewAddressPubKeyHashFromPublicKey(
					hexToBytes("023b8f2b8f1e4cffe479c512a082306306e39b28961c3e8e6f91ff31cfa7d46faa"),
					&chaincfg.MainNetParams)
			},
			params: &chaincfg.MainNetParams,
			script: hexToBytes("4aa298c262edd9f1351204562e62e5476c4f06a9"),
		},
		{
			name:    "testnet p2pkh",
			addr:    "mqwpxxvfv3QbM8PU8uBx2jaNt9btQqvQNx",
			encoded: "mqwpxxvfv3QbM8PU8uBx2jaNt9btQqvQNx",
			f: func() (util.Address, error) {
				return util.NewAddressPubKeyHash(
					hexToBytes("726589f17c655b20a803f4599931907a050d0785"),
					&chaincfg.TestNetParams)
			},
			params: &chaincfg.TestNetParams,
			script: hexToBytes("726589f17c655b20a803f4599931907a050d0785"),
		},
		{
			name:    "mainnet p2sh",
			addr:    "Ed34gSqtvo3MK5wcPdF9jjK22vzkLd1uFt",
			encoded: "Ed34gSqtvo3MK5wcPdF9jjK22vzkLd1uFt",
			f: func() (util.Address, error) {
				return util.NewAddressScriptHash([]byte{0x51}, &chaincfg.MainNetParams)
			},
			params: &chaincfg.MainNetParams,
			script: hexToBytes("da1745e9b549bd0bfa1a569971c77eba30cd5a4b"),
		},
		{
			name:    "testnet p2sh",
			addr:    "2N3g6fCGAGNo4ryEqDZW3FPiFP2W4unnRga",
			encoded: "2N3g6fCGAGNo4ryEqDZW3FPiFP2W4unnRga",
			f: func() (util.Address, error) {
				return util.NewAddressScriptHashFromHash(
					hexToBytes("726589f17c655b20a803f4599931907a050d0785"),
					&chaincfg.TestNetParams)
			},
			params: &chaincfg.TestNetParams,
			script: hexToBytes("726589f17c655b20a803f4599931907a050d0785"),
		},
		{
			name:    "mainnet p2wpkh",
			addr:    "via1qf23f3snzahvlzdgjq3tzuch9gaky7p4fky0vl4",
			encoded: "via1qf23f3snzahvlzdgjq3tzuch9gaky7p4fky0vl4",
			f: func() (util.Address, error) {
				return util.NewAddressWitnessPubKeyHash(
					hexToBytes("4aa298c262edd9f1351204562e62e5476c4f06a9"),
					&chaincfg.MainNetParams)
			},
			params: &chaincfg.MainNetParams,
			script: hexToBytes("4aa298c262edd9f1351204562e62e5476c4f06a9"),
		},
		{
			name:    "mainnet p2wpkh upper case",
			addr:    "VIA1QF23F3SNZAHVLZDGJQ3TZUCH9GAKY7P4FKY0VL4",
			encoded: "via1qf23f3snzahvlzdgjq3tzuch9gaky7p4fky0vl4",
			f: func() (util.Address, error) {
				return util.NewAddressWitnessPubKeyHash(
					hexToBytes("4aa298c262edd9f1351204562e62e5476c4f06a9"),
					&chaincfg.MainNetParams)
			},
			params: &chaincfg.MainNetParams,
			script: hexToBytes("4aa298c262edd9f1351204562e62e5476c4f06a9"),
		},
		{
			name:    "testnet p2wpkh",
			addr:    "tvia1qwfjcnutuv4djp2qr73vejvvs0gzs6pu9l4alag",
			encoded: "tvia1qwfjcnutuv4djp2qr73vejvvs0gzs6pu9l4alag",
			f: func() (util.Address, error) {
				return util.NewAddressWitnessPubKeyHash(
					hexToBytes("726589f17c655b20a803f4599931907a050d0785"),
					&chaincfg.TestNetParams)
			},
			params: &chaincfg.TestNetParams,
			script: hexToBytes("726589f17c655b20a803f4599931907a050d0785"),
		},
		{
			name:    "regtest p2wpkh",
			addr:    "bcrt1qwfjcnutuv4djp2qr73vejvvs0gzs6pu92dcme7",
			encoded: "bcrt1qwfjcnutuv4djp2qr73vejvvs0gzs6pu92dcme7",
			f: func() (util.Address, error) {
				return util.NewAddressWitnessPubKeyHash(
					hexToBytes("726589f17c655b20a803f4599931907a050d0785"),
					&chaincfg.RegressionNetParams)
			},
			params: &chaincfg.RegressionNetParams,
			script: hexToBytes("726589f17c655b20a803f4599931907a050d0785"),
		},
		{
			name:    "mainnet p2wsh",
			addr:    "via1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3qn9f298",
			encoded: "via1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3qn9f298",
			f: func() (util.Address, error) {
				return util.NewAddressWitnessScriptHash(
					hexToBytes("1863143c14c5166804bd19203356da136c985678cd4d27a1b8c6329604903262"),
					&chaincfg.MainNetParams)
			},
			params: &chaincfg.MainNetParams,
			script: hexToBytes("1863143c14c5166804bd19203356da136c985678cd4d27a1b8c6329604903262"),
		},
		{
			name:    "mainnet p2wsh from script",
			addr:    "via1qft5p2uhsdcdc3l2ua4ap5qqfg4pjaqlp250x7us7a8qqhrxrxfsqp4pqph",
			encoded: "via1qft5p2uhsdcdc3l2ua4ap5qqfg4pjaqlp250x7us7a8qqhrxrxfsqp4pqph",
			f: func() (util.Address, error) {
				return util.NewAddressWitnessScriptHashFromScript([]byte{0x51}, &chaincfg.MainNetParams)
			},
			params: &chaincfg.MainNetParams,
			script: hexToBytes("4ae81572f06e1b88fd5ced7a1a000945432e83e1551e6f721ee9c00b8cc33260"),
		},
	}

	for _, test := range tests {
		decoded, err := util.DecodeAddress(test.addr, test.params)
		if err != nil {
			t.Errorf("%s: decoding failed: %v", test.name, err)
			continue
		}

		if decoded.EncodeAddress() != test.encoded {
			t.Errorf("%s: EncodeAddress got %s, want %s", test.name,
				decoded.EncodeAddress(), test.encoded)
			continue
		}
		if decoded.String() != test.encoded {
			t.Errorf("%s: String got %s, want %s", test.name,
				decoded.String(), test.encoded)
			continue
		}
		if !bytes.Equal(decoded.ScriptAddress(), test.script) {
			t.Errorf("%s: ScriptAddress got %x, want %x", test.name,
				decoded.ScriptAddress(), test.script)
			continue
		}
		if !decoded.IsForNet(test.params) {
			t.Errorf("%s: decoded address is not for network %s", test.name, test.params.Name)
			continue
		}

		created, err := test.f()
		if err != nil {
			t.Errorf("%s: creating address failed: %v", test.name, err)
			continue
		}
		if !reflect.DeepEqual(created, decoded) {
			t.Errorf("%s: created address does not match decoded address:\n%s\n%s",
				test.name, spew.Sdump(created), spew.Sdump(decoded))
			continue
		}
	}
}

func TestDecodeAddressErrors(t *testing.T) {
	tests := []struct {
		name   string
		addr   string
		params *chaincfg.Params
		err    error
	}{
		{
			name:   "p2pkh bad checksum",
			addr:   "VgoThKjjxbz3rBTVUcQ9PWABf4pvqdXoUc",
			params: &chaincfg.MainNetParams,
			err:    base58.ErrChecksumMismatch,
		},
		{
			name:   "p2pkh invalid character",
			addr:   "VgoThKjjxbz3rBTVUcQ9PWABf4pvqdXoU0",
			params: &chaincfg.MainNetParams,
			err:    base58.ErrInvalidBase58Character,
		},
		{
			name:   "21 byte payload",
			addr:   "3B6eKnjf9wUULsNcs67mvLrjNfq7a5DMRaaz",
			params: &chaincfg.MainNetParams,
			err:    util.ErrUnknownAddressType,
		},
		{
			name:   "unknown version byte",
			addr:   "LKDyUEtTR1HXamkiEphisSiBJu6o3ZPE34",
			params: &chaincfg.MainNetParams,
			err:    util.ErrAddressNetworkMismatch,
		},
		{
			name:   "testnet p2pkh on mainnet",
			addr:   "mqwpxxvfv3QbM8PU8uBx2jaNt9btQqvQNx",
			params: &chaincfg.MainNetParams,
			err:    util.ErrAddressNetworkMismatch,
		},
		{
			name:   "mainnet p2pkh on testnet",
			addr:   "VgoThKjjxbz3rBTVUcQ9PWABf4pvqdXoUb",
			params: &chaincfg.TestNetParams,
			err:    util.ErrAddressNetworkMismatch,
		},
		{
			name:   "testnet segwit on mainnet",
			addr:   "tvia1qwfjcnutuv4djp2qr73vejvvs0gzs6pu9l4alag",
			params: &chaincfg.MainNetParams,
			err:    util.ErrAddressNetworkMismatch,
		},
		{
			name:   "mainnet segwit on regtest",
			addr:   "via1qf23f3snzahvlzdgjq3tzuch9gaky7p4fky0vl4",
			params: &chaincfg.RegressionNetParams,
			err:    util.ErrAddressNetworkMismatch,
		},
		{
			name:   "segwit bad checksum",
			addr:   "via1qf23f3snzahvlzdgjq3tzuch9gaky7p4fky0vl5",
			params: &chaincfg.MainNetParams,
			err:    bech32.ErrInvalidChecksum,
		},
		{
			name:   "segwit 21 byte program",
			addr:   "via1qw508d6qejxtdg4y5r3zarvary0c5xw7kqq4m6lqc",
			params: &chaincfg.MainNetParams,
			err:    bech32.ErrInvalidProgramLength,
		},
		{
			name:   "segwit version 1",
			addr:   "via1prp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3qvwe0ce",
			params: &chaincfg.MainNetParams,
			err:    bech32.ErrUnsupportedWitnessVersion,
		},
		{
			name:   "segwit mixed case",
			addr:   "via1qf23f3snzahvlzdgjq3tzuch9gaky7p4fky0vL4",
			params: &chaincfg.MainNetParams,
			err:    bech32.ErrMixedCase,
		},
	}

	for _, test := range tests {
		addr, err := util.DecodeAddress(test.addr, test.params)
		if err == nil {
			t.Errorf("%s: decoding succeeded with %s", test.name, addr)
			continue
		}
		if !errors.Is(err, test.err) {
			t.Errorf("%s: got error %v, want %v", test.name, err, test.err)
		}
	}
}

// A Base58 address may contain the segwit hrp in any case followed by '1'.
// It must still decode as Base58 when it isn't valid bech32.
func TestDecodeBase58WithHRPPrefix(t *testing.T) {
	const encoded = "ViA1Km5MtN4GuUhKwyDEgkd6E4bFJCnnYj"
	addr, err := util.DecodeAddress(encoded, &chaincfg.MainNetParams)
	if err != nil {
		t.Fatalf("DecodeAddress: unexpected error %v", err)
	}
	pkh, ok := addr.(*util.AddressPubKeyHash)
	if !ok {
		t.Fatalf("DecodeAddress: got %T, want *util.AddressPubKeyHash", addr)
	}
	want := hexToBytes("597d7192c3260558abd9d1b9bb6f718153569899")
	if !bytes.Equal(pkh.ScriptAddress(), want) {
		t.Errorf("ScriptAddress: got %x, want %x", pkh.ScriptAddress(), want)
	}
	if got := addr.EncodeAddress(); got != encoded {
		t.Errorf("EncodeAddress: got %s, want %s", got, encoded)
	}

	// A mixed case prefix isn't a bech32 hrp, so a corrupted checksum
	// reports the Base58 failure.
	_, err = util.DecodeAddress(encoded[:len(encoded)-1]+"k", &chaincfg.MainNetParams)
	if !errors.Is(err, base58.ErrChecksumMismatch) {
		t.Errorf("corrupted checksum: got error %v, want %v", err, base58.ErrChecksumMismatch)
	}
}

func TestNewAddressErrors(t *testing.T) {
	short := bytes.Repeat([]byte{0x01}, 19)

	if _, err := util.NewAddressPubKeyHash(short, &chaincfg.MainNetParams); err == nil {
		t.Errorf("NewAddressPubKeyHash: accepted 19 byte hash")
	}
	if _, err := util.NewAddressScriptHashFromHash(short, &chaincfg.MainNetParams); err == nil {
		t.Errorf("NewAddressScriptHashFromHash: accepted 19 byte hash")
	}
	_, err := util.NewAddressWitnessPubKeyHash(short, &chaincfg.MainNetParams)
	if !errors.Is(err, bech32.ErrInvalidProgramLength) {
		t.Errorf("NewAddressWitnessPubKeyHash: got %v, want %v", err, bech32.ErrInvalidProgramLength)
	}
	_, err = util.NewAddressWitnessScriptHash(short, &chaincfg.MainNetParams)
	if !errors.Is(err, bech32.ErrInvalidProgramLength) {
		t.Errorf("NewAddressWitnessScriptHash: got %v, want %v", err, bech32.ErrInvalidProgramLength)
	}
}

func TestWitnessAddressAccessors(t *testing.T) {
	program := hexToBytes("4aa298c262edd9f1351204562e62e5476c4f06a9")
	addr, err := util.NewAddressWitnessPubKeyHash(program, &chaincfg.MainNetParams)
	if err != nil {
		t.Fatalf("NewAddressWitnessPubKeyHash: %v", err)
	}
	if addr.Hrp() != "via" {
		t.Errorf("Hrp: got %s, want via", addr.Hrp())
	}
	if addr.WitnessVersion() != 0 {
		t.Errorf("WitnessVersion: got %d, want 0", addr.WitnessVersion())
	}
	if !bytes.Equal(addr.WitnessProgram(), program) {
		t.Errorf("WitnessProgram: got %x, want %x", addr.WitnessProgram(), program)
	}
	if !bytes.Equal(addr.Hash160()[:], program) {
		t.Errorf("Hash160: got %x, want %x", addr.Hash160()[:], program)
	}
	if addr.IsForNet(&chaincfg.TestNetParams) {
		t.Errorf("IsForNet: mainnet address claims to be for testnet")
	}

	// Testnet and regtest share their base58 version bytes, so legacy
	// addresses are valid for both.
	p2pkh, err := util.DecodeAddress("mqwpxxvfv3QbM8PU8uBx2jaNt9btQqvQNx", &chaincfg.RegressionNetParams)
	if err != nil {
		t.Fatalf("DecodeAddress: %v", err)
	}
	if !p2pkh.IsForNet(&chaincfg.TestNetParams) {
		t.Errorf("IsForNet: regtest p2pkh should also be valid on testnet")
	}
	if strings.ToLower(p2pkh.String()) == p2pkh.String() {
		t.Errorf("String: base58 address %s lost its case", p2pkh)
	}
}
