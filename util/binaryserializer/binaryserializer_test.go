package binaryserializer

import (
	"bytes"
	"io"
	"testing"

	"github.com/pkg/errors"
)

func TestRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	writes := []func() error{
		func() error { return PutUint8(buf, 0xab) },
		func() error { return PutUint16(buf, 0x1234) },
		func() error { return PutUint32(buf, 0xdeadbeef) },
		func() error { return PutUint64(buf, 0x0102030405060708) },
		func() error { return PutInt32(buf, -2) },
		func() error { return PutInt64(buf, -5000000000) },
	}
	for i, write := range writes {
		if err := write(); err != nil {
			t.Fatalf("write #%d: %v", i, err)
		}
	}

	want := []byte{
		0xab,
		0x34, 0x12,
		0xef, 0xbe, 0xad, 0xde,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
		0xfe, 0xff, 0xff, 0xff,
		0x00, 0x0e, 0xfa, 0xd5, 0xfe, 0xff, 0xff, 0xff,
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("serialized bytes: got %x, want %x", buf.Bytes(), want)
	}

	r := bytes.NewReader(want)
	if v, err := Uint8(r); err != nil || v != 0xab {
		t.Errorf("Uint8: got (%x, %v)", v, err)
	}
	if v, err := Uint16(r); err != nil || v != 0x1234 {
		t.Errorf("Uint16: got (%x, %v)", v, err)
	}
	if v, err := Uint32(r); err != nil || v != 0xdeadbeef {
		t.Errorf("Uint32: got (%x, %v)", v, err)
	}
	if v, err := Uint64(r); err != nil || v != 0x0102030405060708 {
		t.Errorf("Uint64: got (%x, %v)", v, err)
	}
	if v, err := Int32(r); err != nil || v != -2 {
		t.Errorf("Int32: got (%d, %v)", v, err)
	}
	if v, err := Int64(r); err != nil || v != -5000000000 {
		t.Errorf("Int64: got (%d, %v)", v, err)
	}
}

func TestShortRead(t *testing.T) {
	tests := []struct {
		name string
		read func(r io.Reader) error
		data []byte
	}{
		{"empty uint8", func(r io.Reader) error { _, err := Uint8(r); return err }, nil},
		{"empty uint32", func(r io.Reader) error { _, err := Uint32(r); return err }, nil},
		{"short uint32", func(r io.Reader) error { _, err := Uint32(r); return err }, []byte{1, 2}},
		{"short uint64", func(r io.Reader) error { _, err := Uint64(r); return err }, []byte{1, 2, 3, 4, 5, 6, 7}},
	}

	for _, test := range tests {
		err := test.read(bytes.NewReader(test.data))
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("%s: got error %v, want %v", test.name, err, io.ErrUnexpectedEOF)
		}
	}
}
