// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"
	"math"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

// TestVarIntWire tests wire encode and decode for variable length integers.
func TestVarIntWire(t *testing.T) {
	tests := []struct {
		in  uint64 // Value to encode
		buf []byte // Wire encoding
	}{
		// Single byte
		{0, []byte{0x00}},
		// Max single byte
		{0xfc, []byte{0xfc}},
		// Min 2-byte
		{0xfd, []byte{0xfd, 0xfd, 0x00}},
		// Max 2-byte
		{0xffff, []byte{0xfd, 0xff, 0xff}},
		// Min 4-byte
		{0x10000, []byte{0xfe, 0x00, 0x00, 0x01, 0x00}},
		// Max 4-byte
		{0xffffffff, []byte{0xfe, 0xff, 0xff, 0xff, 0xff}},
		// Min 8-byte
		{
			0x100000000,
			[]byte{0xff, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00},
		},
		// Max 8-byte
		{
			0xffffffffffffffff,
			[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		// Encode to wire format.
		var buf bytes.Buffer
		err := WriteVarInt(&buf, test.in)
		if err != nil {
			t.Errorf("WriteVarInt #%d error %v", i, err)
			continue
		}
		if !bytes.Equal(buf.Bytes(), test.buf) {
			t.Errorf("WriteVarInt #%d\n got: %s want: %s", i,
				spew.Sdump(buf.Bytes()), spew.Sdump(test.buf))
			continue
		}
		if size := VarIntSerializeSize(test.in); size != len(test.buf) {
			t.Errorf("VarIntSerializeSize #%d got: %d, want: %d", i,
				size, len(test.buf))
		}

		// Decode from wire format.
		rbuf := bytes.NewReader(test.buf)
		val, err := ReadVarInt(rbuf)
		if err != nil {
			t.Errorf("ReadVarInt #%d error %v", i, err)
			continue
		}
		if val != test.in {
			t.Errorf("ReadVarInt #%d\n got: %d want: %d", i,
				val, test.in)
			continue
		}

		// Encode and decode through the Codec interface.
		var codecBuf bytes.Buffer
		written, err := VarInt(test.in).Encode(&codecBuf)
		if err != nil || written != len(test.buf) {
			t.Errorf("VarInt.Encode #%d got: (%d, %v), want: %d bytes", i,
				written, err, len(test.buf))
			continue
		}
		var decoded VarInt
		read, err := decoded.Decode(bytes.NewReader(append(codecBuf.Bytes(), 0xaa)))
		if err != nil || read != len(test.buf) || uint64(decoded) != test.in {
			t.Errorf("VarInt.Decode #%d got: (%d, %d, %v), want: (%d, %d)", i,
				decoded, read, err, test.in, len(test.buf))
		}
	}
}

// TestVarIntNonMinimal ensures variable length integers that are not encoded
// canonically return the expected error.
func TestVarIntNonMinimal(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"0 encoded with 3 bytes", []byte{0xfd, 0x00, 0x00}},
		{"5 encoded with 3 bytes", []byte{0xfd, 0x05, 0x00}},
		{"max single-byte value encoded with 3 bytes", []byte{0xfd, 0xfc, 0x00}},
		{"0 encoded with 5 bytes", []byte{0xfe, 0x00, 0x00, 0x00, 0x00}},
		{"max three-byte value encoded with 5 bytes", []byte{0xfe, 0xff, 0xff, 0x00, 0x00}},
		{"0 encoded with 9 bytes", []byte{0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{"max five-byte value encoded with 9 bytes", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00}},
	}

	for _, test := range tests {
		_, err := ReadVarInt(bytes.NewReader(test.in))
		if !IsErrorCode(err, ErrNonMinimalEncoding) {
			t.Errorf("ReadVarInt (%s): got error %v, want %s", test.name,
				err, ErrNonMinimalEncoding)
		}
	}
}

func TestVarIntTruncated(t *testing.T) {
	for _, buf := range [][]byte{{}, {0xfd}, {0xfd, 0x05}, {0xfe, 0x00, 0x00, 0x01}, {0xff, 0x01}} {
		_, err := ReadVarInt(bytes.NewReader(buf))
		if !IsErrorCode(err, ErrUnexpectedEndOfData) {
			t.Errorf("ReadVarInt(%x): got error %v, want %s", buf, err, ErrUnexpectedEndOfData)
		}
	}
}

// TestVarIntWireErrors performs negative tests against wire encode of
// variable length integers to confirm error paths work correctly.
func TestVarIntWireErrors(t *testing.T) {
	tests := []struct {
		in  uint64 // Value to encode
		max int    // Max size of fixed buffer to induce errors
	}{
		// Force errors on discriminant.
		{0, 0},
		{0xfd, 0},
		{0x10000, 0},
		{0x100000000, 0},
		// Force errors on 2-byte read/write.
		{0xfd, 2},
		// Force errors on 4-byte read/write.
		{0x10000, 2},
		// Force errors on 8-byte read/write.
		{0x100000000, 2},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		w := newFixedWriter(test.max)
		err := WriteVarInt(w, test.in)
		if !errors.Is(err, io.ErrShortWrite) {
			t.Errorf("WriteVarInt #%d wrong error got: %v, want: %v",
				i, err, io.ErrShortWrite)
		}
	}
}

// TestVarBytes tests wire encode and decode for variable length byte arrays.
func TestVarBytes(t *testing.T) {
	bytes256 := bytes.Repeat([]byte{0x01}, 256)
	tests := []struct {
		in  []byte // Byte Array to write
		buf []byte // Wire encoding
	}{
		// Empty byte array
		{[]byte{}, []byte{0x00}},
		// Single byte varint + byte array
		{[]byte{0x01}, []byte{0x01, 0x01}},
		// 2-byte varint + byte array
		{bytes256, append([]byte{0xfd, 0x00, 0x01}, bytes256...)},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		var buf bytes.Buffer
		err := WriteVarBytes(&buf, test.in)
		if err != nil {
			t.Errorf("WriteVarBytes #%d error %v", i, err)
			continue
		}
		if !bytes.Equal(buf.Bytes(), test.buf) {
			t.Errorf("WriteVarBytes #%d\n got: %s want: %s", i,
				spew.Sdump(buf.Bytes()), spew.Sdump(test.buf))
			continue
		}
		if size := VarBytesSerializeSize(test.in); size != len(test.buf) {
			t.Errorf("VarBytesSerializeSize #%d got: %d, want: %d", i,
				size, len(test.buf))
		}

		val, err := ReadVarBytes(bytes.NewReader(test.buf), MaxMessagePayload, "test payload")
		if err != nil {
			t.Errorf("ReadVarBytes #%d error %v", i, err)
			continue
		}
		if !reflect.DeepEqual(val, test.in) {
			t.Errorf("ReadVarBytes #%d\n got: %s want: %s", i,
				spew.Sdump(val), spew.Sdump(test.in))
		}
	}
}

// TestVarBytesOverflowErrors performs tests to ensure deserializing variable
// length byte arrays intentionally crafted to use large values for the array
// length are handled properly.
func TestVarBytesOverflowErrors(t *testing.T) {
	tests := []struct {
		buf []byte // Wire encoding
		max uint32
	}{
		{[]byte{0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01}, MaxMessagePayload},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, math.MaxUint32},
		{[]byte{0x05, 0x01, 0x02, 0x03, 0x04, 0x05}, 4},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		_, err := ReadVarBytes(bytes.NewReader(test.buf), test.max, "test payload")
		if !IsErrorCode(err, ErrOversizedVector) {
			t.Errorf("ReadVarBytes #%d wrong error got: %v, want: %s",
				i, err, ErrOversizedVector)
		}
	}

	_, err := ReadVarBytes(bytes.NewReader([]byte{0x05, 0x01, 0x02}), 10, "test payload")
	if !IsErrorCode(err, ErrUnexpectedEndOfData) {
		t.Errorf("ReadVarBytes: wrong error got: %v, want: %s", err, ErrUnexpectedEndOfData)
	}
}

func TestErrorCodeStringer(t *testing.T) {
	tests := []struct {
		in   ErrorCode
		want string
	}{
		{ErrUnexpectedEndOfData, "ErrUnexpectedEndOfData"},
		{ErrNonMinimalEncoding, "ErrNonMinimalEncoding"},
		{ErrOversizedVector, "ErrOversizedVector"},
		{ErrAmbiguousWitnessFlag, "ErrAmbiguousWitnessFlag"},
		{ErrUnknownWitnessFlag, "ErrUnknownWitnessFlag"},
		{ErrBadMerkleRoot, "ErrBadMerkleRoot"},
		{ErrHighHash, "ErrHighHash"},
		{ErrTimestampRange, "ErrTimestampRange"},
		{0xffff, "Unknown ErrorCode (65535)"},
	}

	for i, test := range tests {
		if result := test.in.String(); result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result, test.want)
		}
	}

	wrapped := errors.Wrap(messageError("f", ErrOversizedVector, "too big"), "context")
	if !IsErrorCode(wrapped, ErrOversizedVector) || IsErrorCode(wrapped, ErrHighHash) {
		t.Errorf("IsErrorCode doesn't see through wrapping: %v", wrapped)
	}
	if IsErrorCode(errors.New("plain"), ErrOversizedVector) {
		t.Errorf("IsErrorCode matched a plain error")
	}
}
