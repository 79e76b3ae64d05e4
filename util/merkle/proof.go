package merkle

import (
	"github.com/pkg/errors"
	"github.com/viacoin/viautil/util/chainhash"
)

// Positions of a sibling hash relative to the running hash in a Proof.
const (
	SiblingLeft  = 0
	SiblingRight = 1
)

// Proof is the path from a leaf to the merkle root. Hashes holds one sibling
// per tree level, leaf level first, and Flags tells on which side of the
// running hash every sibling sits.
type Proof struct {
	Index  int
	Hashes []chainhash.Hash
	Flags  []int
}

// NewProof builds the inclusion proof of the leaf at index. Levels with an
// odd number of nodes duplicate their last node, so the last leaf of such a
// level is its own sibling.
func NewProof(leaves []*chainhash.Hash, index int) (*Proof, error) {
	if len(leaves) == 0 {
		return nil, errors.WithStack(ErrNoLeaves)
	}
	if index < 0 || index >= len(leaves) {
		return nil, errors.Errorf("leaf index %d out of range [0, %d)", index, len(leaves))
	}

	level := make([]chainhash.Hash, len(leaves))
	for i, leaf := range leaves {
		level[i] = *leaf
	}

	proof := &Proof{Index: index}
	position := index
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}

		if position%2 == 0 {
			proof.Hashes = append(proof.Hashes, level[position+1])
			proof.Flags = append(proof.Flags, SiblingRight)
		} else {
			proof.Hashes = append(proof.Hashes, level[position-1])
			proof.Flags = append(proof.Flags, SiblingLeft)
		}

		next := make([]chainhash.Hash, len(level)/2)
		for i := range next {
			next[i] = *HashMerkleBranches(&level[2*i], &level[2*i+1])
		}
		level = next
		position /= 2
	}

	return proof, nil
}

// Root folds the proof over leaf and returns the resulting merkle root.
func (p *Proof) Root(leaf *chainhash.Hash) (chainhash.Hash, error) {
	if len(p.Hashes) != len(p.Flags) {
		return chainhash.Hash{}, errors.Errorf("proof has %d hashes but %d flags",
			len(p.Hashes), len(p.Flags))
	}

	current := leaf
	for i := range p.Hashes {
		switch p.Flags[i] {
		case SiblingLeft:
			current = HashMerkleBranches(&p.Hashes[i], current)
		case SiblingRight:
			current = HashMerkleBranches(current, &p.Hashes[i])
		default:
			return chainhash.Hash{}, errors.Errorf("invalid proof flag %d at level %d", p.Flags[i], i)
		}
	}
	return *current, nil
}

// VerifyProof returns true if proof links leaf to root.
func VerifyProof(leaf *chainhash.Hash, proof *Proof, root *chainhash.Hash) bool {
	calculated, err := proof.Root(leaf)
	if err != nil {
		return false
	}
	return calculated.IsEqual(root)
}
