// Copyright (c) 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/pkg/errors"

	"github.com/viacoin/viautil/util/base58"
)

var stringTests = []struct {
	in  string
	out string
}{
	{"", ""},
	{" ", "Z"},
	{"-", "n"},
	{"0", "q"},
	{"1", "r"},
	{"-1", "4SU"},
	{"11", "4k8"},
	{"abc", "ZiCa"},
	{"1234598760", "3mJr7AoUXx2Wqd"},
	{"abcdefghijklmnopqrstuvwxyz", "3yxU3u1igY8WkgtjK92fbJQCd4BZiiT1v25f"},
	{"Hello World!", "2NEpo7TZRRrLZSi2U"},
	{"\x00\x00\x01", "112"},
}

var hexTests = []struct {
	in  string
	out string
}{
	{"61", "2g"},
	{"626262", "a3gV"},
	{"636363", "aPEr"},
	{"73696d706c792061206c6f6e6720737472696e67", "2cFupjhnEsSn59qHXstmK2ffpLv2"},
	{"00eb15231dfceb60925886b67d065299925915aeb172c06647", "1NS17iag9jJgTHD1VXjvLCEnZuQ3rJDE9L"},
	{"516b6fcd0f", "ABnLTmg"},
	{"bf4f89001e670274dd", "3SEo3LWLoPntC"},
	{"572e4794", "3EFU7m"},
	{"ecac89cad93923c02321", "EJDM8drfXA6uyA"},
	{"10c8511e", "Rt5zm"},
	{"00000000000000000000", "1111111111"},
}

func TestBase58(t *testing.T) {
	// Encode tests
	for x, test := range stringTests {
		tmp := []byte(test.in)
		if res := base58.Encode(tmp); res != test.out {
			t.Errorf("Encode test #%d failed: got: %s want: %s",
				x, res, test.out)
			continue
		}
	}

	// Decode tests
	for x, test := range hexTests {
		b, err := hex.DecodeString(test.in)
		if err != nil {
			t.Errorf("hex.DecodeString failed failed #%d: got: %s", x, test.in)
			continue
		}
		res, err := base58.Decode(test.out)
		if err != nil {
			t.Errorf("Decode test #%d failed: %v", x, err)
			continue
		}
		if !bytes.Equal(res, b) {
			t.Errorf("Decode test #%d failed: got: %q want: %q",
				x, res, test.in)
			continue
		}
	}

	// Decode with invalid input
	for _, in := range []string{"0", "O", "I", "l", "3mJr0", "O3yxU", "3sNI", "4kl8", "s!5<", "t$@mX<*", "ä"} {
		_, err := base58.Decode(in)
		if !errors.Is(err, base58.ErrInvalidBase58Character) {
			t.Errorf("Decode(%q): got error %v, want %v", in, err,
				base58.ErrInvalidBase58Character)
		}
	}
}

var checkEncodingStringTests = []struct {
	version byte
	in      string
	out     string
}{
	{20, "", "3MNQE1X"},
	{0, "", "1Wh4bh"},
	{0x47, "hello", "51gmAwZGpeVEPh"},
}

func TestBase58Check(t *testing.T) {
	for x, test := range checkEncodingStringTests {
		// test encoding
		if res := base58.CheckEncode([]byte(test.in), test.version); res != test.out {
			t.Errorf("CheckEncode test #%d failed: got %s, want: %s", x, res, test.out)
		}

		// test decoding
		res, version, err := base58.CheckDecode(test.out)
		if err != nil {
			t.Errorf("CheckDecode test #%d failed with err: %v", x, err)
		} else if version != test.version {
			t.Errorf("CheckDecode test #%d failed: got version: %d want: %d", x, version, test.version)
		} else if string(res) != test.in {
			t.Errorf("CheckDecode test #%d failed: got: %s want: %s", x, res, test.in)
		}
	}

	// A version 0 payload keeps its leading '1'.
	payload, _ := hex.DecodeString("010966776006953d5567439e5e39f86a0d273bee")
	if res := base58.CheckEncode(payload, 0); res != "16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvM" {
		t.Errorf("CheckEncode: got %s", res)
	}

	// test the two decoding failure cases
	// case 1: checksum error
	_, _, err := base58.CheckDecode("3MNQE1Y")
	if !errors.Is(err, base58.ErrChecksumMismatch) {
		t.Error("Checkdecode test failed, expected ErrChecksumMismatch")
	}
	_, _, err = base58.CheckDecode("16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvN")
	if !errors.Is(err, base58.ErrChecksumMismatch) {
		t.Error("Checkdecode test failed, expected ErrChecksumMismatch")
	}
	// case 2: invalid formats (string lengths below 5 mean the version byte and/or the checksum
	// bytes are missing).
	testString := ""
	for len := 0; len < 4; len++ {
		testString += "x"
		_, _, err = base58.CheckDecode(testString)
		if !errors.Is(err, base58.ErrInvalidFormat) {
			t.Error("Checkdecode test failed, expected ErrInvalidFormat")
		}
	}
	// case 3: invalid characters
	_, _, err = base58.CheckDecode("3MNQ0E1X")
	if !errors.Is(err, base58.ErrInvalidBase58Character) {
		t.Error("Checkdecode test failed, expected ErrInvalidBase58Character")
	}
}
