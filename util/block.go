// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/viacoin/viautil/util/chainhash"
	"github.com/viacoin/viautil/wire"
)

// OutOfRangeError describes an error due to accessing an element that is out
// of range.
type OutOfRangeError string

const (
	// CoinbaseTransactionIndex is the index of the coinbase transaction in every block
	CoinbaseTransactionIndex = 0
)

// Error satisfies the error interface and prints human-readable errors.
func (e OutOfRangeError) Error() string {
	return string(e)
}

// Block defines a block that provides easier and more efficient
// manipulation of raw blocks. It also memoizes hashes for the block and its
// transactions on their first access so subsequent accesses don't have to
// repeat the relatively expensive hashing operations.
type Block struct {
	msgBlock *wire.MsgBlock

	serializeOnce   sync.Once
	serializedBlock []byte
	serializeErr    error

	hashOnce  sync.Once
	blockHash chainhash.Hash

	txOnce       sync.Once
	transactions []*Tx
}

// MsgBlock returns the underlying wire.MsgBlock for the Block.
func (b *Block) MsgBlock() *wire.MsgBlock {
	return b.msgBlock
}

// Bytes returns the serialized bytes for the Block. This is equivalent to
// calling Serialize on the underlying wire.MsgBlock, however it caches the
// result so subsequent calls are more efficient.
func (b *Block) Bytes() ([]byte, error) {
	b.serializeOnce.Do(func() {
		if b.serializedBlock != nil {
			return
		}
		w := bytes.NewBuffer(make([]byte, 0, b.msgBlock.SerializeSize()))
		b.serializeErr = b.msgBlock.Serialize(w)
		if b.serializeErr == nil {
			b.serializedBlock = w.Bytes()
		}
	})
	return b.serializedBlock, b.serializeErr
}

// Hash returns the block identifier hash for the Block. This is equivalent to
// calling BlockHash on the underlying wire.MsgBlock, however it caches the
// result so subsequent calls are more efficient.
func (b *Block) Hash() *chainhash.Hash {
	b.hashOnce.Do(func() {
		b.blockHash = b.msgBlock.BlockHash()
	})
	return &b.blockHash
}

// Tx returns a wrapped transaction (util.Tx) for the transaction at the
// specified index in the Block. The supplied index is 0 based. That is to
// say, the first transaction in the block is txNum 0.
func (b *Block) Tx(txNum int) (*Tx, error) {
	transactions := b.Transactions()
	if txNum < 0 || txNum >= len(transactions) {
		str := fmt.Sprintf("transaction index %d is out of range - max %d",
			txNum, len(transactions)-1)
		return nil, OutOfRangeError(str)
	}
	return transactions[txNum], nil
}

// Transactions returns a slice of wrapped transactions (util.Tx) for all
// transactions in the Block.
func (b *Block) Transactions() []*Tx {
	b.txOnce.Do(func() {
		b.transactions = make([]*Tx, len(b.msgBlock.Transactions))
		for i, msgTx := range b.msgBlock.Transactions {
			tx := NewTx(msgTx)
			tx.SetIndex(i)
			b.transactions[i] = tx
		}
	})
	return b.transactions
}

// TxHash returns the hash for the requested transaction number in the Block.
// The supplied index is 0 based.
func (b *Block) TxHash(txNum int) (*chainhash.Hash, error) {
	tx, err := b.Tx(txNum)
	if err != nil {
		return nil, err
	}
	return tx.Hash(), nil
}

// TxLoc returns the offsets and lengths of each transaction in a raw block.
// It is used to allow fast indexing into transactions within the raw byte
// stream.
func (b *Block) TxLoc() ([]wire.TxLoc, error) {
	rawMsg, err := b.Bytes()
	if err != nil {
		return nil, err
	}
	rbuf := bytes.NewBuffer(rawMsg)

	var mblock wire.MsgBlock
	return mblock.DeserializeTxLoc(rbuf)
}

// CoinbaseTransaction returns this block's coinbase transaction, or nil for a
// block without transactions.
func (b *Block) CoinbaseTransaction() *Tx {
	transactions := b.Transactions()
	if len(transactions) == 0 {
		return nil
	}
	return transactions[CoinbaseTransactionIndex]
}

// NewBlock returns a new instance of a block given an underlying
// wire.MsgBlock. See Block.
func NewBlock(msgBlock *wire.MsgBlock) *Block {
	return &Block{
		msgBlock: msgBlock,
	}
}

// NewBlockFromBytes returns a new instance of a block given the
// serialized bytes. See Block.
func NewBlockFromBytes(serializedBlock []byte) (*Block, error) {
	br := bytes.NewReader(serializedBlock)
	b, err := NewBlockFromReader(br)
	if err != nil {
		return nil, err
	}
	b.serializedBlock = serializedBlock
	return b, nil
}

// NewBlockFromReader returns a new instance of a block given a
// Reader to deserialize the block. See Block.
func NewBlockFromReader(r io.Reader) (*Block, error) {
	// Deserialize the bytes into a MsgBlock.
	var msgBlock wire.MsgBlock
	err := msgBlock.Deserialize(r)
	if err != nil {
		return nil, err
	}
	return NewBlock(&msgBlock), nil
}
