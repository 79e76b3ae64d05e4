// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/viacoin/viautil/util/chainhash"
	"github.com/viacoin/viautil/util/uint256"
)

// BlockHeaderPayload is the number of bytes a block header can be.
// Version 4 bytes + Timestamp 4 bytes + Bits 4 bytes + Nonce 4 bytes +
// PrevBlock and MerkleRoot hashes.
const BlockHeaderPayload = 16 + (chainhash.HashSize * 2)

// BlockHeader defines information about a block and is used in the
// block (MsgBlock) message.
type BlockHeader struct {
	// Version of the block. This is not the same as the protocol version.
	Version int32

	// Hash of the previous block header in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created. This is, unfortunately, encoded as a
	// uint32 on the wire and therefore is limited to 1970 through 2106.
	// Encoding a header outside that range fails with ErrTimestampRange.
	Timestamp time.Time

	// Difficulty target for the block.
	Bits uint32

	// Nonce used to generate the block.
	Nonce uint32
}

// BlockHash computes the block identifier hash for the given block header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	// Encode the header and double sha256 everything prior to the number of
	// transactions. The only encode failure is a timestamp outside the
	// uint32 range, which is caught before writing anything, so such a
	// header hashes as if it were empty.
	buf := bytes.NewBuffer(make([]byte, 0, BlockHeaderPayload))
	_ = writeBlockHeader(buf, h)

	return chainhash.DoubleHashH(buf.Bytes())
}

// Encode writes the 80 byte header to w.
func (h *BlockHeader) Encode(w io.Writer) (int, error) {
	return encodeCounted(w, func(w io.Writer) error {
		return writeBlockHeader(w, h)
	})
}

// Decode reads an 80 byte header from r.
func (h *BlockHeader) Decode(r io.Reader) (int, error) {
	return decodeCounted(r, func(r io.Reader) error {
		return readBlockHeader(r, h)
	})
}

// Deserialize decodes a block header from r into the receiver.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	return readBlockHeader(r, h)
}

// Serialize encodes the block header to w.
func (h *BlockHeader) Serialize(w io.Writer) error {
	return writeBlockHeader(w, h)
}

// SerializeSize returns the number of bytes it would take to serialize the
// block header.
func (h *BlockHeader) SerializeSize() int {
	return BlockHeaderPayload
}

// Target returns the proof of work target encoded in Bits.
func (h *BlockHeader) Target() (uint256.Uint256, error) {
	return uint256.FromCompact(h.Bits)
}

// CheckProofOfWork ensures the target encoded in Bits is positive and not
// easier than powLimit, and that the block hash doesn't exceed it.
func (h *BlockHeader) CheckProofOfWork(powLimit uint256.Uint256) error {
	target, err := h.Target()
	if err != nil {
		return messageError("CheckProofOfWork", ErrHighHash, err.Error())
	}
	if target.IsZero() {
		str := fmt.Sprintf("block target difficulty of %s is too low", target)
		return messageError("CheckProofOfWork", ErrHighHash, str)
	}
	if powLimit.Lt(target) {
		str := fmt.Sprintf("block target difficulty of %s is higher than max of %s", target, powLimit)
		return messageError("CheckProofOfWork", ErrHighHash, str)
	}

	blockHash := h.BlockHash()
	if target.Lt(uint256.FromHash(&blockHash)) {
		str := fmt.Sprintf("block hash of %s is higher than expected max of %s", blockHash, target)
		return messageError("CheckProofOfWork", ErrHighHash, str)
	}
	return nil
}

// NewBlockHeader returns a new BlockHeader using the provided version, previous
// block hash, merkle root hash, difficulty bits, and nonce used to generate the
// block with defaults for the remaining fields.
func NewBlockHeader(version int32, prevHash, merkleRootHash *chainhash.Hash,
	bits uint32, nonce uint32) *BlockHeader {

	// Limit the timestamp to one second precision since the protocol
	// doesn't support better.
	return &BlockHeader{
		Version:    version,
		PrevBlock:  *prevHash,
		MerkleRoot: *merkleRootHash,
		Timestamp:  time.Unix(time.Now().Unix(), 0),
		Bits:       bits,
		Nonce:      nonce,
	}
}

// readBlockHeader reads a block header from r.
func readBlockHeader(r io.Reader, bh *BlockHeader) error {
	return readElements(r, &bh.Version, &bh.PrevBlock, &bh.MerkleRoot,
		(*uint32Time)(&bh.Timestamp), &bh.Bits, &bh.Nonce)
}

// writeBlockHeader writes a block header to w.
func writeBlockHeader(w io.Writer, bh *BlockHeader) error {
	unix := bh.Timestamp.Unix()
	if unix < 0 || unix > math.MaxUint32 {
		str := fmt.Sprintf("block timestamp %s is outside the range "+
			"representable by a uint32", bh.Timestamp)
		return messageError("writeBlockHeader", ErrTimestampRange, str)
	}
	return writeElements(w, bh.Version, &bh.PrevBlock, &bh.MerkleRoot,
		uint32(unix), bh.Bits, bh.Nonce)
}
