package chain

import "github.com/evmcore/evmcore/core/types"

// Block is the minimal record this core produces each tick. ParentRoot and
// StateRoot are always the zero hash: trie commitment is out of scope, so
// there is nothing real to put there.
type Block struct {
	Number        uint64
	ProposerIndex uint64
	ParentRoot    types.Hash
	StateRoot     types.Hash
}

// NewBlock builds a Block for the given slot.
func NewBlock(number, proposerIndex uint64, parentRoot, stateRoot types.Hash) *Block {
	return &Block{
		Number:        number,
		ProposerIndex: proposerIndex,
		ParentRoot:    parentRoot,
		StateRoot:     stateRoot,
	}
}
