package chain

import (
	"math/big"
	"testing"
	"time"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/evmcore/evmcore/core/state"
	"github.com/evmcore/evmcore/core/types"
	"github.com/evmcore/evmcore/crypto"
)

func fundedSender(t *testing.T, st *state.State) (*secp256k1.PrivateKey, types.Address) {
	t.Helper()
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	addr := crypto.PubkeyToAddress(priv.PubKey().SerializeUncompressed())
	st.CreateAccount(addr)
	st.AddBalance(addr, big.NewInt(1_000_000_000_000))
	return priv, addr
}

func TestRunProducesBlocksAndAppliesSubmittedTx(t *testing.T) {
	st := state.New()
	priv, sender := fundedSender(t, st)
	recipient := types.BytesToAddress([]byte{0x42})

	tx := types.NewTransaction(1, 0, 1, 100, types.TransactionGasCost, recipient, big.NewInt(1000), nil)
	if err := tx.Sign(priv); err != nil {
		t.Fatalf("Sign: %v", err)
	}

	c := New(st, 10*time.Millisecond)
	if !c.Submit(tx) {
		t.Fatalf("Submit returned false on a fresh queue")
	}

	go c.Run()
	time.Sleep(50 * time.Millisecond)
	c.Stop()
	time.Sleep(20 * time.Millisecond)

	if len(c.Blocks()) == 0 {
		t.Fatalf("no blocks produced")
	}
	if got := st.GetNonce(sender); got != 1 {
		t.Errorf("sender nonce = %d, want 1 (submitted transaction should have been applied)", got)
	}
	if got := st.GetBalance(recipient); got.Cmp(big.NewInt(1000)) != 0 {
		t.Errorf("recipient balance = %s, want 1000", got)
	}
}

func TestSubmitDoesNotBlockWhenFull(t *testing.T) {
	st := state.New()
	c := New(st, time.Second)

	// The channel is buffered at 256; filling it should never block Submit,
	// and once truly full Submit reports false rather than blocking.
	accepted := 0
	for i := 0; i < 300; i++ {
		if c.Submit(&types.Transaction{}) {
			accepted++
		}
	}
	if accepted != 256 {
		t.Errorf("accepted %d transactions, want 256 (channel capacity)", accepted)
	}
}
