// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/viacoin/viautil/util/binaryserializer"
	"github.com/viacoin/viautil/util/chainhash"
)

const (
	// TxVersion is the current latest supported transaction version.
	TxVersion = 2

	// MaxTxInSequenceNum is the maximum sequence number the sequence field
	// of a transaction input can be.
	MaxTxInSequenceNum uint32 = 0xffffffff

	// MaxPrevOutIndex is the maximum index the index field of a previous
	// outpoint can be.
	MaxPrevOutIndex uint32 = 0xffffffff

	// MaxMessagePayload is the maximum number of bytes a single decoded
	// transaction or block may span.
	MaxMessagePayload = 1024 * 1024 * 32

	// MaxBlockPayload is the maximum number of bytes a serialized block,
	// witness data included, can be.
	MaxBlockPayload = 4000000

	// WitnessScaleFactor determines the level of "discount" witness data
	// receives compared to "base" data when calculating weight.
	WitnessScaleFactor = 4

	// minTxInPayload is the minimum payload size for a transaction input.
	// PreviousOutPoint.Hash + PreviousOutPoint.Index 4 bytes + Varint for
	// SignatureScript length 1 byte + Sequence 4 bytes.
	minTxInPayload = 9 + chainhash.HashSize

	// maxTxInPerMessage is the maximum number of transactions inputs that
	// a transaction which fits into a message could possibly have.
	maxTxInPerMessage = (MaxMessagePayload / minTxInPayload) + 1

	// minTxOutPayload is the minimum payload size for a transaction output.
	// Value 8 bytes + Varint for PkScript length 1 byte.
	minTxOutPayload = 9

	// maxTxOutPerMessage is the maximum number of transactions outputs that
	// a transaction which fits into a message could possibly have.
	maxTxOutPerMessage = (MaxMessagePayload / minTxOutPayload) + 1

	// minTxPayload is the minimum payload size for a transaction. Note
	// that any realistically usable transaction must have at least one
	// input or output, but that is a rule enforced at a higher layer, so
	// it is intentionally not included here.
	// Version 4 bytes + Varint number of transaction inputs 1 byte + Varint
	// number of transaction outputs 1 byte + LockTime 4 bytes + min input
	// payload + min output payload.
	minTxPayload = 10

	// maxWitnessItemsPerInput is the maximum number of witness items to
	// be read for the witness data for a single TxIn.
	maxWitnessItemsPerInput = 500000

	// maxWitnessItemSize is the maximum allowed size for an item within
	// an input's witness data.
	maxWitnessItemSize = 4000000

	// defaultTxInOutAlloc is the default size used for the backing array
	// for transaction inputs, outputs and witness items. The array will
	// dynamically grow as needed, but this figure is intended to provide
	// enough space for the number of inputs and outputs in a typical
	// transaction without needing to grow the backing array multiple
	// times.
	defaultTxInOutAlloc = 15

	// witnessMarkerByte is a marker byte placed where the input count
	// would normally be, signalling the transaction carries witness data.
	witnessMarkerByte = 0x00

	// witnessFlag is the only flag value defined for segregated witness
	// transactions.
	witnessFlag = 0x01
)

// Limits bounds every length and count prefix read while decoding. Any
// prefix above its limit fails with ErrOversizedVector before memory is
// allocated for it.
type Limits struct {
	MaxScriptSize           uint32
	MaxWitnessItemSize      uint32
	MaxWitnessItemsPerInput uint64
	MaxTxInPerTx            uint64
	MaxTxOutPerTx           uint64
	MaxTxPerBlock           uint64
}

// DefaultLimits are the limits used by Decode, Deserialize and friends. They
// accept every transaction and block that fits into MaxMessagePayload.
var DefaultLimits = Limits{
	MaxScriptSize:           MaxMessagePayload,
	MaxWitnessItemSize:      maxWitnessItemSize,
	MaxWitnessItemsPerInput: maxWitnessItemsPerInput,
	MaxTxInPerTx:            maxTxInPerMessage,
	MaxTxOutPerTx:           maxTxOutPerMessage,
	MaxTxPerBlock:           MaxBlockPayload/minTxPayload + 1,
}

// txEncoding selects whether witness data is part of an encoding.
type txEncoding int

const (
	baseEncoding txEncoding = iota
	witnessEncoding
)

// OutPoint defines a data type that is used to track previous
// transaction outputs.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new transaction outpoint point with the
// provided hash and index.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
	}
}

// String returns the OutPoint in the human-readable form "hash:index".
func (o OutPoint) String() string {
	// Allocate enough for hash string, colon, and 10 digits. Although
	// at the time of writing, the number of digits can be no greater than
	// the length of the decimal representation of maxTxOutPerMessage, the
	// maximum message payload may increase in the future and this
	// optimization may go unnoticed, so allocate space for 10 decimal
	// digits, which will fit any uint32.
	buf := make([]byte, 2*chainhash.HashSize+1, 2*chainhash.HashSize+1+10)
	copy(buf, o.Hash.String())
	buf[2*chainhash.HashSize] = ':'
	buf = strconv.AppendUint(buf, uint64(o.Index), 10)
	return string(buf)
}

// Encode writes the 36 byte encoding of the outpoint to w.
func (o *OutPoint) Encode(w io.Writer) (int, error) {
	return encodeCounted(w, func(w io.Writer) error {
		return writeElements(w, &o.Hash, o.Index)
	})
}

// Decode reads a 36 byte outpoint from r.
func (o *OutPoint) Decode(r io.Reader) (int, error) {
	return decodeCounted(r, func(r io.Reader) error {
		return readElements(r, &o.Hash, &o.Index)
	})
}

// TxWitness defines the witness for a TxIn. A witness is to be interpreted as
// a slice of byte slices, or a stack with one or many elements.
type TxWitness [][]byte

// SerializeSize returns the number of bytes it would take to serialize the
// transaction input's witness.
func (t TxWitness) SerializeSize() int {
	// A varint to signal the number of elements the witness has.
	n := VarIntSerializeSize(uint64(len(t)))

	// For each element in the witness, we'll need a varint to signal the
	// size of the element, then finally the number of bytes the element
	// itself comprises.
	for _, witItem := range t {
		n += VarBytesSerializeSize(witItem)
	}

	return n
}

// Encode writes the witness stack to w as a count followed by each item.
func (t TxWitness) Encode(w io.Writer) (int, error) {
	return encodeCounted(w, func(w io.Writer) error {
		return writeTxWitness(w, t)
	})
}

// Decode reads a witness stack from r using DefaultLimits.
func (t *TxWitness) Decode(r io.Reader) (int, error) {
	return decodeCounted(r, func(r io.Reader) error {
		witness, err := readTxWitness(r, &DefaultLimits)
		if err != nil {
			return err
		}
		*t = witness
		return nil
	})
}

// TxIn defines a transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Witness          TxWitness
	Sequence         uint32
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction input, witness excluded.
func (t *TxIn) SerializeSize() int {
	// Outpoint Hash 32 bytes + Outpoint Index 4 bytes + Sequence 4 bytes +
	// serialized varint size for the length of SignatureScript +
	// SignatureScript bytes.
	return 40 + VarBytesSerializeSize(t.SignatureScript)
}

// Encode writes the transaction input to w. Witness data isn't part of an
// input's own encoding.
func (t *TxIn) Encode(w io.Writer) (int, error) {
	return encodeCounted(w, func(w io.Writer) error {
		return writeTxIn(w, t)
	})
}

// Decode reads a transaction input from r using DefaultLimits. The witness
// is left untouched.
func (t *TxIn) Decode(r io.Reader) (int, error) {
	return decodeCounted(r, func(r io.Reader) error {
		var ti TxIn
		if err := readTxIn(r, &ti, &DefaultLimits); err != nil {
			return err
		}
		t.PreviousOutPoint = ti.PreviousOutPoint
		t.SignatureScript = ti.SignatureScript
		t.Sequence = ti.Sequence
		return nil
	})
}

// NewTxIn returns a new transaction input with the provided
// previous outpoint point, signature script and witness with a default
// sequence of MaxTxInSequenceNum.
func NewTxIn(prevOut *OutPoint, signatureScript []byte, witness [][]byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		SignatureScript:  signatureScript,
		Witness:          witness,
		Sequence:         MaxTxInSequenceNum,
	}
}

// TxOut defines a transaction output.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// SerializeSize returns the number of bytes it would take to serialize the
// the transaction output.
func (t *TxOut) SerializeSize() int {
	// Value 8 bytes + serialized varint size for the length of PkScript +
	// PkScript bytes.
	return 8 + VarBytesSerializeSize(t.PkScript)
}

// Encode writes the transaction output to w.
func (t *TxOut) Encode(w io.Writer) (int, error) {
	return encodeCounted(w, func(w io.Writer) error {
		return writeTxOut(w, t)
	})
}

// Decode reads a transaction output from r using DefaultLimits.
func (t *TxOut) Decode(r io.Reader) (int, error) {
	return decodeCounted(r, func(r io.Reader) error {
		return readTxOut(r, t, &DefaultLimits)
	})
}

// NewTxOut returns a new transaction output with the provided
// transaction value and public key script.
func NewTxOut(value int64, pkScript []byte) *TxOut {
	return &TxOut{
		Value:    value,
		PkScript: pkScript,
	}
}

// MsgTx implements the Codec interface and represents a transaction.
//
// Use the AddTxIn and AddTxOut functions to build up the list of transaction
// inputs and outputs.
type MsgTx struct {
	Version  int32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// TxHash generates the hash for the transaction with its witness data
// stripped, also known as its txid.
func (msg *MsgTx) TxHash() chainhash.Hash {
	writer := chainhash.NewDoubleHashWriter()
	err := msg.encode(writer, baseEncoding)
	if err != nil {
		panic(errors.Wrap(err, "TxHash() failed. this should never fail for structurally-valid transactions"))
	}
	return writer.Finalize()
}

// WitnessHash generates the hash of the transaction serialized according to
// the witness encoding, also known as its wtxid. A transaction without
// witness data has a wtxid equal to its txid.
func (msg *MsgTx) WitnessHash() chainhash.Hash {
	if !msg.HasWitness() {
		return msg.TxHash()
	}
	writer := chainhash.NewDoubleHashWriter()
	err := msg.encode(writer, witnessEncoding)
	if err != nil {
		panic(errors.Wrap(err, "WitnessHash() failed. this should never fail for structurally-valid transactions"))
	}
	return writer.Finalize()
}

// Copy creates a deep copy of a transaction so that the original does not get
// modified when the copy is manipulated.
func (msg *MsgTx) Copy() *MsgTx {
	// Create new tx and start by copying primitive values and making space
	// for the transaction inputs and outputs.
	newTx := MsgTx{
		Version:  msg.Version,
		TxIn:     make([]*TxIn, 0, len(msg.TxIn)),
		TxOut:    make([]*TxOut, 0, len(msg.TxOut)),
		LockTime: msg.LockTime,
	}

	// Deep copy the old TxIn data.
	for _, oldTxIn := range msg.TxIn {
		newTxIn := TxIn{
			PreviousOutPoint: oldTxIn.PreviousOutPoint,
			SignatureScript:  copyBytes(oldTxIn.SignatureScript),
			Sequence:         oldTxIn.Sequence,
		}
		if len(oldTxIn.Witness) != 0 {
			newTxIn.Witness = make(TxWitness, len(oldTxIn.Witness))
			for i, item := range oldTxIn.Witness {
				newTxIn.Witness[i] = copyBytes(item)
			}
		}
		newTx.TxIn = append(newTx.TxIn, &newTxIn)
	}

	// Deep copy the old TxOut data.
	for _, oldTxOut := range msg.TxOut {
		newTx.TxOut = append(newTx.TxOut, &TxOut{
			Value:    oldTxOut.Value,
			PkScript: copyBytes(oldTxOut.PkScript),
		})
	}

	return &newTx
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	newBytes := make([]byte, len(b))
	copy(newBytes, b)
	return newBytes
}

// HasWitness returns false if none of the inputs within the transaction
// contain witness data, true otherwise.
func (msg *MsgTx) HasWitness() bool {
	for _, txIn := range msg.TxIn {
		if len(txIn.Witness) != 0 {
			return true
		}
	}
	return false
}

// IsCoinBase determines whether or not a transaction is a coinbase. A coinbase
// is a special transaction created by miners that has no inputs. This is
// represented in the block chain by a transaction with a single input that has
// a previous output transaction index set to the maximum value along with a
// zero hash.
func (msg *MsgTx) IsCoinBase() bool {
	if len(msg.TxIn) != 1 {
		return false
	}
	prevOut := &msg.TxIn[0].PreviousOutPoint
	return prevOut.Index == MaxPrevOutIndex && prevOut.Hash == chainhash.ZeroHash
}

// Encode writes the transaction to w, witness data included when present,
// and returns the number of bytes written.
func (msg *MsgTx) Encode(w io.Writer) (int, error) {
	return encodeCounted(w, func(w io.Writer) error {
		return msg.encode(w, witnessEncoding)
	})
}

// Decode reads a transaction, in either the legacy or the witness layout,
// from r using DefaultLimits and returns the number of bytes consumed.
func (msg *MsgTx) Decode(r io.Reader) (int, error) {
	return decodeCounted(r, func(r io.Reader) error {
		return msg.decode(r, witnessEncoding, &DefaultLimits)
	})
}

// Serialize encodes the transaction to w, including witness data if the
// transaction has any.
func (msg *MsgTx) Serialize(w io.Writer) error {
	return msg.encode(w, witnessEncoding)
}

// SerializeNoWitness encodes the transaction to w in the legacy layout,
// leaving out any witness data. This is the form hashed into the txid.
func (msg *MsgTx) SerializeNoWitness(w io.Writer) error {
	return msg.encode(w, baseEncoding)
}

// Deserialize decodes a transaction from r into the receiver using
// DefaultLimits.
func (msg *MsgTx) Deserialize(r io.Reader) error {
	return msg.decode(r, witnessEncoding, &DefaultLimits)
}

// DeserializeWithLimits decodes a transaction from r into the receiver,
// bounding every length and count prefix by limits.
func (msg *MsgTx) DeserializeWithLimits(r io.Reader, limits *Limits) error {
	return msg.decode(r, witnessEncoding, limits)
}

// DeserializeNoWitness decodes a transaction from r into the receiver
// reading the legacy layout only. A zero input count is read as such.
func (msg *MsgTx) DeserializeNoWitness(r io.Reader) error {
	return msg.decode(r, baseEncoding, &DefaultLimits)
}

// Bytes returns the serialized transaction, witness data included.
func (msg *MsgTx) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, msg.SerializeSize()))
	_ = msg.Serialize(buf)
	return buf.Bytes()
}

// BytesNoWitness returns the serialized transaction without witness data.
func (msg *MsgTx) BytesNoWitness() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, msg.SerializeSizeStripped()))
	_ = msg.SerializeNoWitness(buf)
	return buf.Bytes()
}

// SerializeSize returns the number of bytes it would take to serialize the
// the transaction, witness data included.
func (msg *MsgTx) SerializeSize() int {
	n := msg.SerializeSizeStripped()

	if msg.HasWitness() {
		// The marker, and flag fields take up two additional bytes.
		n += 2

		// Additionally, factor in the serialized size of each of the
		// witnesses for each txin.
		for _, txIn := range msg.TxIn {
			n += txIn.Witness.SerializeSize()
		}
	}

	return n
}

// SerializeSizeStripped returns the number of bytes it would take to serialize
// the transaction, excluding any included witness data.
func (msg *MsgTx) SerializeSizeStripped() int {
	// Version 4 bytes + LockTime 4 bytes + Serialized varint size for the
	// number of transaction inputs and outputs.
	n := 8 + VarIntSerializeSize(uint64(len(msg.TxIn))) +
		VarIntSerializeSize(uint64(len(msg.TxOut)))

	for _, txIn := range msg.TxIn {
		n += txIn.SerializeSize()
	}

	for _, txOut := range msg.TxOut {
		n += txOut.SerializeSize()
	}

	return n
}

// Weight returns the transaction weight: three times the stripped size plus
// the full size.
func (msg *MsgTx) Weight() int {
	return msg.SerializeSizeStripped()*(WitnessScaleFactor-1) + msg.SerializeSize()
}

// VirtualSize returns the weight divided by WitnessScaleFactor, rounded up.
func (msg *MsgTx) VirtualSize() int {
	return (msg.Weight() + WitnessScaleFactor - 1) / WitnessScaleFactor
}

// NewMsgTx returns a new transaction message with the provided version and
// no inputs or outputs.
func NewMsgTx(version int32) *MsgTx {
	return &MsgTx{
		Version: version,
	}
}

func (msg *MsgTx) encode(w io.Writer, enc txEncoding) error {
	err := binaryserializer.PutInt32(w, msg.Version)
	if err != nil {
		return err
	}

	doWitness := enc == witnessEncoding && msg.HasWitness()
	if doWitness {
		// After the transaction's Version field, we include two
		// additional bytes specific to the witness encoding. The first
		// byte is an always 0x00 marker byte, which allows decoders to
		// distinguish a serialized transaction with witnesses from a
		// regular (legacy) one. The second byte is the Flag field.
		if _, err := w.Write([]byte{witnessMarkerByte, witnessFlag}); err != nil {
			return errors.WithStack(err)
		}
	}

	err = WriteVarInt(w, uint64(len(msg.TxIn)))
	if err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		err = writeTxIn(w, ti)
		if err != nil {
			return err
		}
	}

	err = WriteVarInt(w, uint64(len(msg.TxOut)))
	if err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		err = writeTxOut(w, to)
		if err != nil {
			return err
		}
	}

	// If this transaction is a witness transaction, then encode the
	// witness stack of every input in order.
	if doWitness {
		for _, ti := range msg.TxIn {
			err = writeTxWitness(w, ti.Witness)
			if err != nil {
				return err
			}
		}
	}

	return binaryserializer.PutUint32(w, msg.LockTime)
}

func (msg *MsgTx) decode(r io.Reader, enc txEncoding, limits *Limits) error {
	version, err := binaryserializer.Int32(r)
	if err != nil {
		return readError("MsgTx.decode", err)
	}

	count, err := ReadVarInt(r)
	if err != nil {
		return err
	}

	// A zero input count is where the witness marker sits. The flag that
	// follows tells how to proceed.
	var flag uint8
	if count == 0 && enc == witnessEncoding {
		flag, err = binaryserializer.Uint8(r)
		if err != nil {
			return readError("MsgTx.decode", err)
		}

		switch flag {
		case witnessFlag:
		case 0x00:
			return messageError("MsgTx.decode", ErrAmbiguousWitnessFlag,
				"transaction has no inputs and a zero witness flag")
		default:
			str := fmt.Sprintf("witness tx but flag byte is %x", flag)
			return messageError("MsgTx.decode", ErrUnknownWitnessFlag, str)
		}

		count, err = ReadVarInt(r)
		if err != nil {
			return err
		}
	}

	if count > limits.MaxTxInPerTx {
		str := fmt.Sprintf("too many input transactions to fit into "+
			"max message size [count %d, max %d]", count, limits.MaxTxInPerTx)
		return messageError("MsgTx.decode", ErrOversizedVector, str)
	}

	// Deserialize the inputs. Counts come off the wire, so preallocation
	// is capped and the slices grow as inputs actually arrive.
	inAlloc := defaultTxInOutAlloc
	if count < uint64(inAlloc) {
		inAlloc = int(count)
	}
	txInputs := make([]*TxIn, 0, inAlloc)
	for i := uint64(0); i < count; i++ {
		ti := &TxIn{}
		err = readTxIn(r, ti, limits)
		if err != nil {
			return err
		}
		txInputs = append(txInputs, ti)
	}

	outCount, err := readCount(r, limits.MaxTxOutPerTx, "transaction output")
	if err != nil {
		return err
	}

	txOutputs := make([]*TxOut, 0, minInt(outCount, defaultTxInOutAlloc))
	for i := 0; i < outCount; i++ {
		to := &TxOut{}
		err = readTxOut(r, to, limits)
		if err != nil {
			return err
		}
		txOutputs = append(txOutputs, to)
	}

	// If the transaction's flag byte isn't 0x00 at this point, then one
	// or more of its inputs has accompanying witness data.
	if flag != 0 {
		hasWitness := false
		for _, txin := range txInputs {
			txin.Witness, err = readTxWitness(r, limits)
			if err != nil {
				return err
			}
			if len(txin.Witness) != 0 {
				hasWitness = true
			}
		}
		if !hasWitness {
			return messageError("MsgTx.decode", ErrAmbiguousWitnessFlag,
				"witness flag set but no input carries witness data")
		}
	}

	lockTime, err := binaryserializer.Uint32(r)
	if err != nil {
		return readError("MsgTx.decode", err)
	}

	msg.Version = version
	msg.TxIn = txInputs
	msg.TxOut = txOutputs
	msg.LockTime = lockTime
	return nil
}

// readTxIn reads the next sequence of bytes from r as a transaction input
// (TxIn).
func readTxIn(r io.Reader, ti *TxIn, limits *Limits) error {
	err := readElements(r, &ti.PreviousOutPoint.Hash, &ti.PreviousOutPoint.Index)
	if err != nil {
		return err
	}

	ti.SignatureScript, err = ReadVarBytes(r, limits.MaxScriptSize, "transaction input signature script")
	if err != nil {
		return err
	}

	return readElement(r, &ti.Sequence)
}

// writeTxIn encodes ti to the bitcoin protocol encoding for a transaction
// input (TxIn) to w.
func writeTxIn(w io.Writer, ti *TxIn) error {
	err := writeElements(w, &ti.PreviousOutPoint.Hash, ti.PreviousOutPoint.Index)
	if err != nil {
		return err
	}

	err = WriteVarBytes(w, ti.SignatureScript)
	if err != nil {
		return err
	}

	return binaryserializer.PutUint32(w, ti.Sequence)
}

// readTxOut reads the next sequence of bytes from r as a transaction output
// (TxOut).
func readTxOut(r io.Reader, to *TxOut, limits *Limits) error {
	err := readElement(r, &to.Value)
	if err != nil {
		return err
	}

	to.PkScript, err = ReadVarBytes(r, limits.MaxScriptSize, "transaction output public key script")
	return err
}

// writeTxOut encodes to into the bitcoin protocol encoding for a transaction
// output (TxOut) to w.
func writeTxOut(w io.Writer, to *TxOut) error {
	err := binaryserializer.PutInt64(w, to.Value)
	if err != nil {
		return err
	}

	return WriteVarBytes(w, to.PkScript)
}

// readTxWitness reads a witness stack. An empty stack is returned as nil.
func readTxWitness(r io.Reader, limits *Limits) (TxWitness, error) {
	witCount, err := readCount(r, limits.MaxWitnessItemsPerInput, "witness item")
	if err != nil {
		return nil, err
	}
	if witCount == 0 {
		return nil, nil
	}

	witness := make(TxWitness, 0, minInt(witCount, defaultTxInOutAlloc))
	for i := 0; i < witCount; i++ {
		item, err := ReadVarBytes(r, limits.MaxWitnessItemSize, "script witness item")
		if err != nil {
			return nil, err
		}
		witness = append(witness, item)
	}
	return witness, nil
}

// writeTxWitness encodes the bitcoin protocol encoding for a transaction
// input's witness into w.
func writeTxWitness(w io.Writer, wit [][]byte) error {
	err := WriteVarInt(w, uint64(len(wit)))
	if err != nil {
		return err
	}
	for _, item := range wit {
		err = WriteVarBytes(w, item)
		if err != nil {
			return err
		}
	}
	return nil
}
