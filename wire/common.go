// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"io"
	"math"
	"time"

	safeconversion "github.com/bsv-blockchain/go-safe-conversion"
	"github.com/pkg/errors"
	"github.com/viacoin/viautil/util/binaryserializer"
	"github.com/viacoin/viautil/util/chainhash"
)

// MaxVarIntPayload is the maximum payload size for a variable length integer.
const MaxVarIntPayload = 9

// Codec is implemented by every consensus structure. Encode writes the
// canonical encoding and returns the number of bytes written. Decode reads
// exactly one value and returns the number of bytes consumed.
type Codec interface {
	Encode(w io.Writer) (int, error)
	Decode(r io.Reader) (int, error)
}

// countingWriter counts the bytes passed through to the underlying writer.
type countingWriter struct {
	w     io.Writer
	count int
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.count += n
	return n, err
}

// countingReader counts the bytes read from the underlying reader.
type countingReader struct {
	r     io.Reader
	count int
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.count += n
	return n, err
}

// encodeCounted runs encode against w and reports the number of bytes written.
func encodeCounted(w io.Writer, encode func(w io.Writer) error) (int, error) {
	cw := &countingWriter{w: w}
	err := encode(cw)
	return cw.count, err
}

// decodeCounted runs decode against r and reports the number of bytes read.
func decodeCounted(r io.Reader, decode func(r io.Reader) error) (int, error) {
	cr := &countingReader{r: r}
	err := decode(cr)
	return cr.count, err
}

// uint32Time represents a unix timestamp encoded with a uint32. It is used as
// a way to signal the readElement function how to decode a timestamp into a Go
// time.Time since it is otherwise ambiguous.
type uint32Time time.Time

// readError converts an error from the underlying reader into a
// *MessageError when the input simply ran out.
func readError(f string, err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return messageError(f, ErrUnexpectedEndOfData, "unexpected end of data")
	}
	return err
}

// readElement reads the next sequence of bytes from r using little endian
// depending on the concrete type of element pointed to.
func readElement(r io.Reader, element interface{}) error {
	var err error
	switch e := element.(type) {
	case *int32:
		*e, err = binaryserializer.Int32(r)
	case *uint32:
		*e, err = binaryserializer.Uint32(r)
	case *int64:
		*e, err = binaryserializer.Int64(r)
	case *uint64:
		*e, err = binaryserializer.Uint64(r)
	case *uint8:
		*e, err = binaryserializer.Uint8(r)
	case *uint32Time:
		var sec uint32
		sec, err = binaryserializer.Uint32(r)
		*e = uint32Time(time.Unix(int64(sec), 0))
	case *chainhash.Hash:
		err = binaryserializer.ReadFull(r, e[:])
	default:
		return errors.Errorf("unsupported element type %T", element)
	}
	return readError("readElement", err)
}

// readElements reads multiple items from r. It is equivalent to multiple
// calls to readElement.
func readElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		err := readElement(r, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// writeElement writes the little endian representation of element to w.
func writeElement(w io.Writer, element interface{}) error {
	switch e := element.(type) {
	case int32:
		return binaryserializer.PutInt32(w, e)
	case uint32:
		return binaryserializer.PutUint32(w, e)
	case int64:
		return binaryserializer.PutInt64(w, e)
	case uint64:
		return binaryserializer.PutUint64(w, e)
	case uint8:
		return binaryserializer.PutUint8(w, e)
	case *chainhash.Hash:
		_, err := w.Write(e[:])
		return errors.WithStack(err)
	}
	return errors.Errorf("unsupported element type %T", element)
}

// writeElements writes multiple items to w. It is equivalent to multiple
// calls to writeElement.
func writeElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		err := writeElement(w, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// ReadVarInt reads a variable length integer from r and returns it as a uint64.
// Encodings that use a wider form than the value requires are rejected with
// ErrNonMinimalEncoding.
func ReadVarInt(r io.Reader) (uint64, error) {
	discriminant, err := binaryserializer.Uint8(r)
	if err != nil {
		return 0, readError("ReadVarInt", err)
	}

	var rv uint64
	var min uint64
	switch discriminant {
	case 0xff:
		rv, err = binaryserializer.Uint64(r)
		min = 0x100000000
	case 0xfe:
		var sv uint32
		sv, err = binaryserializer.Uint32(r)
		rv = uint64(sv)
		min = 0x10000
	case 0xfd:
		var sv uint16
		sv, err = binaryserializer.Uint16(r)
		rv = uint64(sv)
		min = 0xfd
	default:
		return uint64(discriminant), nil
	}
	if err != nil {
		return 0, readError("ReadVarInt", err)
	}

	// The encoding is not canonical if the value could have been
	// encoded using fewer bytes.
	if rv < min {
		str := fmt.Sprintf("non-canonical varint %x - discriminant %x must "+
			"encode a value greater than %x", rv, discriminant, min)
		return 0, messageError("ReadVarInt", ErrNonMinimalEncoding, str)
	}

	return rv, nil
}

// WriteVarInt serializes val to w using a variable number of bytes depending
// on its value.
func WriteVarInt(w io.Writer, val uint64) error {
	switch {
	case val < 0xfd:
		return binaryserializer.PutUint8(w, uint8(val))
	case val <= math.MaxUint16:
		err := binaryserializer.PutUint8(w, 0xfd)
		if err != nil {
			return err
		}
		return binaryserializer.PutUint16(w, uint16(val))
	case val <= math.MaxUint32:
		err := binaryserializer.PutUint8(w, 0xfe)
		if err != nil {
			return err
		}
		return binaryserializer.PutUint32(w, uint32(val))
	default:
		err := binaryserializer.PutUint8(w, 0xff)
		if err != nil {
			return err
		}
		return binaryserializer.PutUint64(w, val)
	}
}

// VarIntSerializeSize returns the number of bytes it would take to serialize
// val as a variable length integer.
func VarIntSerializeSize(val uint64) int {
	switch {
	case val < 0xfd:
		return 1
	case val <= math.MaxUint16:
		return 3
	case val <= math.MaxUint32:
		return 5
	default:
		return 9
	}
}

// VarInt is a standalone variable length integer value.
type VarInt uint64

// Encode writes v using the minimal variable length encoding.
func (v VarInt) Encode(w io.Writer) (int, error) {
	return encodeCounted(w, func(w io.Writer) error {
		return WriteVarInt(w, uint64(v))
	})
}

// Decode reads a minimally encoded variable length integer into v.
func (v *VarInt) Decode(r io.Reader) (int, error) {
	return decodeCounted(r, func(r io.Reader) error {
		val, err := ReadVarInt(r)
		if err != nil {
			return err
		}
		*v = VarInt(val)
		return nil
	})
}

// readCount reads a variable length count prefix and makes sure it doesn't
// exceed max.
func readCount(r io.Reader, max uint64, fieldName string) (int, error) {
	count, err := ReadVarInt(r)
	if err != nil {
		return 0, err
	}
	if count > max {
		str := fmt.Sprintf("%s count %d exceeds max allowed %d", fieldName, count, max)
		return 0, messageError("readCount", ErrOversizedVector, str)
	}
	return safeconversion.Uint64ToInt(count)
}

// ReadVarBytes reads a variable length byte array. A byte array is encoded
// as a varInt containing the length of the array followed by the bytes
// themselves. An error is returned if the length is greater than the
// passed maxAllowed parameter, before anything is allocated.
func ReadVarBytes(r io.Reader, maxAllowed uint32, fieldName string) ([]byte, error) {
	count, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}

	if count > uint64(maxAllowed) {
		str := fmt.Sprintf("%s is larger than the max allowed size "+
			"[count %d, max %d]", fieldName, count, maxAllowed)
		return nil, messageError("ReadVarBytes", ErrOversizedVector, str)
	}

	b := make([]byte, count)
	err = binaryserializer.ReadFull(r, b)
	if err != nil {
		return nil, readError("ReadVarBytes", err)
	}
	return b, nil
}

// WriteVarBytes serializes a variable length byte array to w as a varInt
// containing the number of bytes, followed by the bytes themselves.
func WriteVarBytes(w io.Writer, bytes []byte) error {
	slen, err := safeconversion.IntToUint64(len(bytes))
	if err != nil {
		return err
	}
	err = WriteVarInt(w, slen)
	if err != nil {
		return err
	}

	_, err = w.Write(bytes)
	return errors.WithStack(err)
}

// VarBytesSerializeSize returns the number of bytes it would take to
// serialize b as a variable length byte array.
func VarBytesSerializeSize(b []byte) int {
	return VarIntSerializeSize(uint64(len(b))) + len(b)
}
