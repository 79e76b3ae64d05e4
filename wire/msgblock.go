// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/viacoin/viautil/util/chainhash"
	"github.com/viacoin/viautil/util/merkle"
)

// defaultTransactionAlloc is the default size used for the backing array
// for transactions. The transaction array will dynamically grow as needed, but
// this figure is intended to provide enough space for the number of
// transactions in the vast majority of blocks without needing to grow the
// backing array multiple times.
const defaultTransactionAlloc = 2048

// MsgBlock implements the Codec interface and represents a block: a header
// followed by a counted list of transactions.
type MsgBlock struct {
	Header       BlockHeader
	Transactions []*MsgTx
}

// AddTransaction adds a transaction to the message.
func (msg *MsgBlock) AddTransaction(tx *MsgTx) {
	msg.Transactions = append(msg.Transactions, tx)
}

// ClearTransactions removes all transactions from the message.
func (msg *MsgBlock) ClearTransactions() {
	msg.Transactions = make([]*MsgTx, 0, defaultTransactionAlloc)
}

func (msg *MsgBlock) decode(r io.Reader, enc txEncoding, limits *Limits) error {
	var header BlockHeader
	err := readBlockHeader(r, &header)
	if err != nil {
		return err
	}

	txCount, err := readCount(r, limits.MaxTxPerBlock, "transactions per block")
	if err != nil {
		return err
	}

	// Exactly txCount transactions are read and nothing after them. The
	// receiver is only assigned once the whole block decoded.
	transactions := make([]*MsgTx, 0, minInt(txCount, defaultTransactionAlloc))
	for i := 0; i < txCount; i++ {
		tx := MsgTx{}
		err := tx.decode(r, enc, limits)
		if err != nil {
			return err
		}
		transactions = append(transactions, &tx)
	}

	msg.Header = header
	msg.Transactions = transactions
	return nil
}

func (msg *MsgBlock) encode(w io.Writer, enc txEncoding) error {
	err := writeBlockHeader(w, &msg.Header)
	if err != nil {
		return err
	}

	err = WriteVarInt(w, uint64(len(msg.Transactions)))
	if err != nil {
		return err
	}

	for _, tx := range msg.Transactions {
		err = tx.encode(w, enc)
		if err != nil {
			return err
		}
	}

	return nil
}

// Encode writes the block to w, transactions in witness layout where they
// carry witness data, and returns the number of bytes written.
func (msg *MsgBlock) Encode(w io.Writer) (int, error) {
	return encodeCounted(w, func(w io.Writer) error {
		return msg.encode(w, witnessEncoding)
	})
}

// Decode reads a block from r using DefaultLimits and returns the number of
// bytes consumed.
func (msg *MsgBlock) Decode(r io.Reader) (int, error) {
	return decodeCounted(r, func(r io.Reader) error {
		return msg.decode(r, witnessEncoding, &DefaultLimits)
	})
}

// Deserialize decodes a block from r into the receiver.
func (msg *MsgBlock) Deserialize(r io.Reader) error {
	return msg.decode(r, witnessEncoding, &DefaultLimits)
}

// DeserializeWithLimits decodes a block from r into the receiver, bounding
// every length and count prefix by limits.
func (msg *MsgBlock) DeserializeWithLimits(r io.Reader, limits *Limits) error {
	return msg.decode(r, witnessEncoding, limits)
}

// DeserializeNoWitness decodes a block from r into the receiver, reading
// every transaction in the legacy layout.
func (msg *MsgBlock) DeserializeNoWitness(r io.Reader) error {
	return msg.decode(r, baseEncoding, &DefaultLimits)
}

// DeserializeTxLoc decodes r in the same manner Deserialize does, but it takes
// a byte buffer instead of a generic reader and returns a slice containing the
// start and length of each transaction within the raw data that is being
// deserialized.
func (msg *MsgBlock) DeserializeTxLoc(r *bytes.Buffer) ([]TxLoc, error) {
	fullLen := r.Len()

	var header BlockHeader
	err := readBlockHeader(r, &header)
	if err != nil {
		return nil, err
	}

	txCount, err := readCount(r, DefaultLimits.MaxTxPerBlock, "transactions per block")
	if err != nil {
		return nil, err
	}

	// Deserialize each transaction while keeping track of its location
	// within the byte stream.
	transactions := make([]*MsgTx, 0, minInt(txCount, defaultTransactionAlloc))
	txLocs := make([]TxLoc, 0, minInt(txCount, defaultTransactionAlloc))
	for i := 0; i < txCount; i++ {
		txStart := fullLen - r.Len()
		tx := MsgTx{}
		err := tx.Deserialize(r)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, &tx)
		txLocs = append(txLocs, TxLoc{
			TxStart: txStart,
			TxLen:   (fullLen - r.Len()) - txStart,
		})
	}

	msg.Header = header
	msg.Transactions = transactions
	return txLocs, nil
}

// Serialize encodes the block to w, including witness data.
func (msg *MsgBlock) Serialize(w io.Writer) error {
	return msg.encode(w, witnessEncoding)
}

// SerializeNoWitness encodes the block to w with every transaction in the
// legacy layout.
func (msg *MsgBlock) SerializeNoWitness(w io.Writer) error {
	return msg.encode(w, baseEncoding)
}

// SerializeSize returns the number of bytes it would take to serialize the
// block, witness data included.
func (msg *MsgBlock) SerializeSize() int {
	// Block header bytes + Serialized varint size for the number of
	// transactions.
	n := BlockHeaderPayload + VarIntSerializeSize(uint64(len(msg.Transactions)))

	for _, tx := range msg.Transactions {
		n += tx.SerializeSize()
	}

	return n
}

// SerializeSizeStripped returns the number of bytes it would take to serialize
// the block, excluding any witness data.
func (msg *MsgBlock) SerializeSizeStripped() int {
	n := BlockHeaderPayload + VarIntSerializeSize(uint64(len(msg.Transactions)))

	for _, tx := range msg.Transactions {
		n += tx.SerializeSizeStripped()
	}

	return n
}

// Weight returns the block weight: three times the stripped size plus the
// full size.
func (msg *MsgBlock) Weight() int {
	return msg.SerializeSizeStripped()*(WitnessScaleFactor-1) + msg.SerializeSize()
}

// BlockHash computes the block identifier hash for this block.
func (msg *MsgBlock) BlockHash() chainhash.Hash {
	return msg.Header.BlockHash()
}

// TxHashes returns a slice of hashes of all of transactions in this block.
func (msg *MsgBlock) TxHashes() []chainhash.Hash {
	hashList := make([]chainhash.Hash, 0, len(msg.Transactions))
	for _, tx := range msg.Transactions {
		hashList = append(hashList, tx.TxHash())
	}
	return hashList
}

// CalcMerkleRoot returns the merkle root of the txids of the block's
// transactions.
func (msg *MsgBlock) CalcMerkleRoot() (chainhash.Hash, error) {
	leaves := make([]*chainhash.Hash, len(msg.Transactions))
	for i, tx := range msg.Transactions {
		txHash := tx.TxHash()
		leaves[i] = &txHash
	}
	return merkle.CalcRoot(leaves)
}

// CalcWitnessRoot returns the merkle root of the wtxids of the block's
// transactions, with the coinbase wtxid replaced by the zero hash.
func (msg *MsgBlock) CalcWitnessRoot() (chainhash.Hash, error) {
	leaves := make([]*chainhash.Hash, len(msg.Transactions))
	for i, tx := range msg.Transactions {
		witnessHash := tx.WitnessHash()
		leaves[i] = &witnessHash
	}
	return merkle.CalcWitnessRoot(leaves)
}

// CheckMerkleRoot ensures the merkle root committed to by the header matches
// the block's transactions.
func (msg *MsgBlock) CheckMerkleRoot() error {
	calculated, err := msg.CalcMerkleRoot()
	if err != nil {
		return errors.Wrap(err, "block has no transactions")
	}
	if !msg.Header.MerkleRoot.IsEqual(&calculated) {
		str := fmt.Sprintf("block merkle root is invalid - block "+
			"header indicates %s, but calculated value is %s",
			msg.Header.MerkleRoot, calculated)
		return messageError("CheckMerkleRoot", ErrBadMerkleRoot, str)
	}
	return nil
}

// NewMsgBlock returns a new block message that conforms to the Codec
// interface. See MsgBlock for details.
func NewMsgBlock(blockHeader *BlockHeader) *MsgBlock {
	return &MsgBlock{
		Header:       *blockHeader,
		Transactions: make([]*MsgTx, 0, defaultTransactionAlloc),
	}
}

// TxLoc holds locator data for the offset and length of where a transaction is
// located within a MsgBlock data buffer.
type TxLoc struct {
	TxStart int
	TxLen   int
}

func minInt(x, y int) int {
	if x < y {
		return x
	}
	return y
}
