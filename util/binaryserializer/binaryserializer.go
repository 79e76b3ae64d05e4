// Package binaryserializer reads and writes the fixed-width little-endian
// integers every consensus structure is built from.
package binaryserializer

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// maxItems is the number of buffers to keep in the free
// list to use for binary serialization and deserialization.
const maxItems = 1024

// binaryFreeList is a concurrent safe free list of 8-byte buffers used while
// reading and writing primitive integers, so hot decode paths don't allocate.
var binaryFreeList = make(chan []byte, maxItems)

func borrow(size int) []byte {
	var buf []byte
	select {
	case buf = <-binaryFreeList:
	default:
		buf = make([]byte, 8)
	}
	return buf[:size]
}

func giveBack(buf []byte) {
	select {
	case binaryFreeList <- buf[:8]:
	default:
	}
}

// ReadFull reads exactly len(buf) bytes from r. Running out of data at any
// point, including before the first byte, is reported as io.ErrUnexpectedEOF.
func ReadFull(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return errors.WithStack(err)
}

func readN(r io.Reader, size int) (uint64, error) {
	buf := borrow(size)
	defer giveBack(buf)
	if err := ReadFull(r, buf); err != nil {
		return 0, err
	}
	switch size {
	case 1:
		return uint64(buf[0]), nil
	case 2:
		return uint64(binary.LittleEndian.Uint16(buf)), nil
	case 4:
		return uint64(binary.LittleEndian.Uint32(buf)), nil
	default:
		return binary.LittleEndian.Uint64(buf), nil
	}
}

func writeN(w io.Writer, size int, val uint64) error {
	buf := borrow(size)
	defer giveBack(buf)
	switch size {
	case 1:
		buf[0] = uint8(val)
	case 2:
		binary.LittleEndian.PutUint16(buf, uint16(val))
	case 4:
		binary.LittleEndian.PutUint32(buf, uint32(val))
	default:
		binary.LittleEndian.PutUint64(buf, val)
	}
	_, err := w.Write(buf)
	return errors.WithStack(err)
}

// Uint8 reads a single byte from r.
func Uint8(r io.Reader) (uint8, error) {
	val, err := readN(r, 1)
	return uint8(val), err
}

// Uint16 reads a little-endian uint16 from r.
func Uint16(r io.Reader) (uint16, error) {
	val, err := readN(r, 2)
	return uint16(val), err
}

// Uint32 reads a little-endian uint32 from r.
func Uint32(r io.Reader) (uint32, error) {
	val, err := readN(r, 4)
	return uint32(val), err
}

// Uint64 reads a little-endian uint64 from r.
func Uint64(r io.Reader) (uint64, error) {
	return readN(r, 8)
}

// Int32 reads a little-endian two's complement int32 from r.
func Int32(r io.Reader) (int32, error) {
	val, err := readN(r, 4)
	return int32(uint32(val)), err
}

// Int64 reads a little-endian two's complement int64 from r.
func Int64(r io.Reader) (int64, error) {
	val, err := readN(r, 8)
	return int64(val), err
}

// PutUint8 writes a single byte to w.
func PutUint8(w io.Writer, val uint8) error {
	return writeN(w, 1, uint64(val))
}

// PutUint16 writes val to w as two little-endian bytes.
func PutUint16(w io.Writer, val uint16) error {
	return writeN(w, 2, uint64(val))
}

// PutUint32 writes val to w as four little-endian bytes.
func PutUint32(w io.Writer, val uint32) error {
	return writeN(w, 4, uint64(val))
}

// PutUint64 writes val to w as eight little-endian bytes.
func PutUint64(w io.Writer, val uint64) error {
	return writeN(w, 8, val)
}

// PutInt32 writes val to w as four little-endian two's complement bytes.
func PutInt32(w io.Writer, val int32) error {
	return writeN(w, 4, uint64(uint32(val)))
}

// PutInt64 writes val to w as eight little-endian two's complement bytes.
func PutInt64(w io.Writer, val int64) error {
	return writeN(w, 8, uint64(val))
}
