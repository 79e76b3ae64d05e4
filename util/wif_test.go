// Copyright (c) 2013 - 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"

	"github.com/viacoin/viautil/btcec"
	"github.com/viacoin/viautil/chaincfg"
	"github.com/viacoin/viautil/util"
	"github.com/viacoin/viautil/util/base58"
)

func TestEncodeDecodeWIF(t *testing.T) {
	priv1, _, err := btcec.PrivKeyFromBytes(hexToBytes(
		"421087263fb8f65892011d84773bdf20a2bf53a1693cfc4d357f3ad01b5a3aa8"))
	if err != nil {
		t.Fatalf("PrivKeyFromBytes: %v", err)
	}
	priv2, _, err := btcec.PrivKeyFromBytes(hexToBytes(
		"f7a1d6cd23bc345dd57abe045d6026f4acf69a637c9e5840e232832bcf4ce58d"))
	if err != nil {
		t.Fatalf("PrivKeyFromBytes: %v", err)
	}

	tests := []struct {
		name     string
		priv     *btcec.PrivateKey
		params   *chaincfg.Params
		compress bool
		wif      string
		pubKey   string
		address  string
	}{
		{
			name:     "mainnet uncompressed",
			priv:     priv1,
			params:   &chaincfg.MainNetParams,
			compress: false,
			wif:      "7gLEdvAfpYMHai6kzaNvurMjhqizH9Fyz3LijTaCZ2Lxyxme8Yo",
			pubKey: "043b8f2b8f1e4cffe479c512a082306306e39b28961c3e8e6f91ff31cfa7d46faa" +
				"d951cc2e10702857d7c9389ef7ef82886b69430358e72992fbbd0bcde709c3bc",
			address: "VbnnCpepvFv8puAAwRYJeKTXQeYieMwKcn",
		},
		{
			name:     "mainnet compressed",
			priv:     priv1,
			params:   &chaincfg.MainNetParams,
			compress: true,
			wif:      "WUbuBwfgLqNYBnQRB8KnxGrXVG4KpFT8WmL3CQHXzLw869iiZ6in",
			pubKey:   "023b8f2b8f1e4cffe479c512a082306306e39b28961c3e8e6f91ff31cfa7d46faa",
			address:  "VgoThKjjxbz3rBTVUcQ9PWABf4pvqdXoUb",
		},
		{
			name:     "testnet compressed",
			priv:     priv2,
			params:   &chaincfg.TestNetParams,
			compress: true,
			wif:      "cVt4o7BGAig1UXywgGSmARhxMdzP5qvQsxKkSsc1XEkw3tDTQFpy",
			pubKey:   "039b6347398505f5ec93826dc61c19f47c66c0283ee9be980e29ce325a0f4679ef",
			address:  "mqwpxxvfv3QbM8PU8uBx2jaNt9btQqvQNx",
		},
		{
			name:     "testnet uncompressed",
			priv:     priv2,
			params:   &chaincfg.TestNetParams,
			compress: false,
			wif:      "93TybTmvHFRhSGdTtVRR43RgjHY8GbeUcZUMifCZHpXLx5uvKft",
			pubKey: "049b6347398505f5ec93826dc61c19f47c66c0283ee9be980e29ce325a0f4679ef" +
				"87288ed73ce47fc4f5c79d19ebfa57da7cff3aff6e819e4ee971d86b5e61875d",
		},
	}

	for _, test := range tests {
		wif, err := util.NewWIF(test.priv, test.params, test.compress)
		if err != nil {
			t.Fatalf("%s: NewWIF: %v", test.name, err)
		}
		if !wif.IsForNet(test.params) {
			t.Errorf("%s: IsForNet returned false", test.name)
		}
		if got := wif.String(); got != test.wif {
			t.Errorf("%s: String got %s, want %s", test.name, got, test.wif)
			continue
		}

		decoded, err := util.DecodeWIF(test.wif)
		if err != nil {
			t.Errorf("%s: DecodeWIF: %v", test.name, err)
			continue
		}
		if decoded.CompressPubKey != test.compress {
			t.Errorf("%s: CompressPubKey got %v, want %v", test.name,
				decoded.CompressPubKey, test.compress)
		}
		if !bytes.Equal(decoded.PrivKey.Serialize(), test.priv.Serialize()) {
			t.Errorf("%s: decoded private key %x, want %x", test.name,
				decoded.PrivKey.Serialize(), test.priv.Serialize())
		}
		if !decoded.IsForNet(test.params) {
			t.Errorf("%s: decoded WIF is not for network %s", test.name, test.params.Name)
		}
		if got := decoded.String(); got != test.wif {
			t.Errorf("%s: re-encoded WIF got %s, want %s", test.name, got, test.wif)
		}

		pubKey, err := decoded.SerializePubKey()
		if err != nil {
			t.Errorf("%s: SerializePubKey: %v", test.name, err)
			continue
		}
		if !bytes.Equal(pubKey, hexToBytes(test.pubKey)) {
			t.Errorf("%s: SerializePubKey got %x, want %s", test.name, pubKey, test.pubKey)
			continue
		}

		if test.address == "" {
			continue
		}
		addr, err := util.NewAddressPubKeyHashFromPublicKey(pubKey, test.params)
		if err != nil {
			t.Errorf("%s: NewAddressPubKeyHashFromPublicKey: %v", test.name, err)
			continue
		}
		if addr.EncodeAddress() != test.address {
			t.Errorf("%s: address got %s, want %s", test.name, addr.EncodeAddress(), test.address)
		}
	}
}

func TestWIFNetworks(t *testing.T) {
	wif, err := util.DecodeWIF("cVt4o7BGAig1UXywgGSmARhxMdzP5qvQsxKkSsc1XEkw3tDTQFpy")
	if err != nil {
		t.Fatalf("DecodeWIF: %v", err)
	}
	if !wif.IsForNet(&chaincfg.RegressionNetParams) {
		t.Errorf("testnet WIF should also be valid on regtest")
	}
	if wif.IsForNet(&chaincfg.MainNetParams) {
		t.Errorf("testnet WIF claims to be for mainnet")
	}

	priv, _, err := btcec.PrivKeyFromBytes(wif.PrivKey.Serialize())
	if err != nil {
		t.Fatalf("PrivKeyFromBytes: %v", err)
	}
	if _, err := util.NewWIF(priv, nil, true); err == nil {
		t.Errorf("NewWIF accepted nil network parameters")
	}
}

func TestDecodeWIFErrors(t *testing.T) {
	tests := []struct {
		name string
		wif  string
		err  error
	}{
		{
			name: "bad compression flag",
			wif:  "WUbuBwfgLqNYBnQRB8KnxGrXVG4KpFT8WmL3CQHXzLw869quxQc5",
			err:  util.ErrMalformedPrivateKey,
		},
		{
			name: "short key",
			wif:  "2WknEMChy5qYrKpye4V5WeTuGbbtVabD1EfuW72BKaqUfSV5Ry",
			err:  util.ErrMalformedPrivateKey,
		},
		{
			name: "zero key",
			wif:  "7fq979KMafb4qFeMQMWqopK7EhYuN8hFbC6RYotPpQLBCkzrjnM",
			err:  util.ErrMalformedPrivateKey,
		},
		{
			name: "bad checksum",
			wif:  "7gLEdvAfpYMHai6kzaNvurMjhqizH9Fyz3LijTaCZ2Lxyxme8Yp",
			err:  base58.ErrChecksumMismatch,
		},
		{
			name: "invalid character",
			wif:  "7gLEdvAfpYMHai6kzaNvurMjhqizH9Fyz3LijTaCZ2Lxyxme8Y0",
			err:  base58.ErrInvalidBase58Character,
		},
	}

	for _, test := range tests {
		_, err := util.DecodeWIF(test.wif)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: got error %v, want %v", test.name, err, test.err)
		}
	}
}
