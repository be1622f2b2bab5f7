package vm

import (
	"testing"

	"github.com/evmcore/evmcore/core/types"
)

func TestCreateAddressDeterministic(t *testing.T) {
	sender := types.BytesToAddress([]byte{0x01, 0x02, 0x03})
	const nonce = 7

	first := CreateAddress(sender, nonce)
	second := CreateAddress(sender, nonce)

	if first != second {
		t.Errorf("CreateAddress is not stable across runs: %s != %s", first.Hex(), second.Hex())
	}
	if first.IsZero() {
		t.Errorf("CreateAddress returned the zero address")
	}
}

func TestCreateAddressVariesWithNonce(t *testing.T) {
	sender := types.BytesToAddress([]byte{0xaa})

	a := CreateAddress(sender, 0)
	b := CreateAddress(sender, 1)

	if a == b {
		t.Errorf("CreateAddress(sender, 0) == CreateAddress(sender, 1): %s", a.Hex())
	}
}
