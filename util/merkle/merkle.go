// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"math"

	"github.com/pkg/errors"
	"github.com/viacoin/viautil/util/chainhash"
)

// ErrNoLeaves is returned when a merkle root is requested for an empty list
// of hashes.
var ErrNoLeaves = errors.New("merkle tree has no leaves")

// nextPowerOfTwo returns the next highest power of two from a given number if
// it is not already a power of two. This is a helper function used during the
// calculation of a merkle tree.
func nextPowerOfTwo(n int) int {
	// Return the number if it's already a power of 2.
	if n&(n-1) == 0 {
		return n
	}

	// Figure out and return the next power of two.
	exponent := uint(math.Log2(float64(n))) + 1
	return 1 << exponent // 2^exponent
}

// HashMerkleBranches takes two hashes, treated as the left and right tree
// nodes, and returns the hash of their concatenation. This is a helper
// function used to aid in the generation of a merkle tree.
func HashMerkleBranches(left *chainhash.Hash, right *chainhash.Hash) *chainhash.Hash {
	// Concatenate the left and right nodes.
	var hash [chainhash.HashSize * 2]byte
	copy(hash[:chainhash.HashSize], left[:])
	copy(hash[chainhash.HashSize:], right[:])

	newHash := chainhash.DoubleHashH(hash[:])
	return &newHash
}

// BuildTreeStore creates a merkle tree from a slice of hashes, stores it using
// a linear array, and returns a slice of the backing array. A linear array was
// chosen as opposed to an actual tree structure since it uses about half as
// much memory. The following describes a merkle tree and how it is stored in
// a linear array.
//
// A merkle tree is a tree in which every non-leaf node is the hash of its
// children nodes. A diagram depicting how this works for transactions
// where h(x) is a double sha256 follows:
//
//	         root = h1234 = h(h12 + h34)
//	        /                           \
//	  h12 = h(h1 + h2)            h34 = h(h3 + h4)
//	   /            \              /            \
//	h1 = h(tx1)  h2 = h(tx2)    h3 = h(tx3)  h4 = h(tx4)
//
// The above stored as a linear array is as follows:
//
//	[h1 h2 h3 h4 h12 h34 root]
//
// As the above shows, the merkle root is always the last element in the array.
//
// The number of inputs is not always a power of two which results in a
// balanced tree structure as above. In that case, parent nodes with no
// children are also zero and parent nodes with only a single left node
// are calculated by concatenating the left node with itself before hashing.
// Since this function uses nodes that are pointers to the hashes, empty nodes
// will be nil.
func BuildTreeStore(leaves []*chainhash.Hash) []*chainhash.Hash {
	if len(leaves) == 0 {
		return nil
	}

	// Calculate how many entries are required to hold the binary merkle
	// tree as a linear array and create an array of that size.
	nextPoT := nextPowerOfTwo(len(leaves))
	arraySize := nextPoT*2 - 1
	merkles := make([]*chainhash.Hash, arraySize)

	// Create the base leaves.
	for i, leaf := range leaves {
		leafCopy := *leaf
		merkles[i] = &leafCopy
	}

	// Start the array offset after the last leaf and adjusted to the
	// next power of two.
	offset := nextPoT
	for i := 0; i < arraySize-1; i += 2 {
		switch {
		// When there is no left child node, the parent is nil too.
		case merkles[i] == nil:
			merkles[offset] = nil

		// When there is no right child, the parent is generated by
		// hashing the concatenation of the left child with itself.
		case merkles[i+1] == nil:
			merkles[offset] = HashMerkleBranches(merkles[i], merkles[i])

		// The normal case sets the parent node to the double sha256
		// of the concatentation of the left and right children.
		default:
			merkles[offset] = HashMerkleBranches(merkles[i], merkles[i+1])
		}
		offset++
	}

	return merkles
}

// CalcRoot returns the merkle root of the given leaves. A single leaf is its
// own root.
func CalcRoot(leaves []*chainhash.Hash) (chainhash.Hash, error) {
	if len(leaves) == 0 {
		return chainhash.Hash{}, errors.WithStack(ErrNoLeaves)
	}
	merkles := BuildTreeStore(leaves)
	return *merkles[len(merkles)-1], nil
}

// WitnessCommitmentHeader prefixes the witness commitment inside the
// coinbase output that carries it.
var WitnessCommitmentHeader = [4]byte{0xaa, 0x21, 0xa9, 0xed}

// CalcWitnessRoot returns the merkle root of the given witness hashes, where
// the first entry belongs to the coinbase and is replaced by the zero hash.
func CalcWitnessRoot(witnessHashes []*chainhash.Hash) (chainhash.Hash, error) {
	if len(witnessHashes) == 0 {
		return chainhash.Hash{}, errors.WithStack(ErrNoLeaves)
	}
	leaves := make([]*chainhash.Hash, len(witnessHashes))
	leaves[0] = &chainhash.ZeroHash
	copy(leaves[1:], witnessHashes[1:])
	return CalcRoot(leaves)
}

// WitnessCommitment returns double-SHA256(witnessRoot || witnessNonce), the
// value committed to by a block carrying witness data.
func WitnessCommitment(witnessRoot *chainhash.Hash, witnessNonce []byte) chainhash.Hash {
	hashWriter := chainhash.NewDoubleHashWriter()
	_, _ = hashWriter.Write(witnessRoot[:])
	_, _ = hashWriter.Write(witnessNonce)
	return hashWriter.Finalize()
}
