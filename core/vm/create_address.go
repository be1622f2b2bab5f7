package vm

import (
	"github.com/evmcore/evmcore/core/types"
	"github.com/evmcore/evmcore/crypto"
	"github.com/evmcore/evmcore/rlp"
)

// CreateAddress derives a contract's address from its creator and nonce:
// keccak256(rlp([sender_address, nonce]))[12:].
func CreateAddress(caller types.Address, nonce uint64) types.Address {
	addrEnc, err := rlp.EncodeToBytes(caller[:])
	if err != nil {
		panic(err)
	}
	nonceEnc, err := rlp.EncodeToBytes(nonce)
	if err != nil {
		panic(err)
	}
	payload := append(append([]byte{}, addrEnc...), nonceEnc...)
	hash := crypto.Keccak256(rlp.WrapList(payload))
	return types.BytesToAddress(hash[12:])
}
