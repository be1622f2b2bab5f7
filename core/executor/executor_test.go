package executor

import (
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/evmcore/evmcore/core/state"
	"github.com/evmcore/evmcore/core/types"
	"github.com/evmcore/evmcore/core/vm"
	"github.com/evmcore/evmcore/crypto"
)

func newFundedSender(t *testing.T, st *state.State, balance *big.Int) (*secp256k1.PrivateKey, types.Address) {
	t.Helper()
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	addr := crypto.PubkeyToAddress(priv.PubKey().SerializeUncompressed())
	st.CreateAccount(addr)
	st.AddBalance(addr, balance)
	return priv, addr
}

func signedTransfer(t *testing.T, priv *secp256k1.PrivateKey, to types.Address, nonce, tip, feeCap, gasLimit uint64, value *big.Int) *types.Transaction {
	t.Helper()
	tx := types.NewTransaction(1, nonce, tip, feeCap, gasLimit, to, value, nil)
	if err := tx.Sign(priv); err != nil {
		t.Fatalf("Sign: %v", err)
	}
	return tx
}

// TestSignedTransfer matches the seed scenario verbatim: a funded sender
// transfers value to a fresh recipient under EIP-1559 fee caps, and the
// executor's balance/nonce bookkeeping matches the closed-form expectation.
func TestSignedTransfer(t *testing.T) {
	st := state.New()

	const baseFee = 10
	const tip = 2_000_000_000
	const feeCap = 12_000_000_000

	initialBalance := new(big.Int).Mul(big.NewInt(3), big.NewInt(1_000_000_000_000_000_000))
	value := new(big.Int).Mul(big.NewInt(1), big.NewInt(1_000_000_000_000_000_000))

	priv, sender := newFundedSender(t, st, initialBalance)
	recipient := types.BytesToAddress([]byte{0xca, 0xfe})

	tx := signedTransfer(t, priv, recipient, 0, tip, feeCap, types.TransactionGasCost, value)

	receipt, err := ProcessTransaction(tx, baseFee, st)
	if err != nil {
		t.Fatalf("ProcessTransaction: %v", err)
	}
	if receipt.Sender != sender {
		t.Errorf("receipt.Sender = %s, want %s", receipt.Sender.Hex(), sender.Hex())
	}

	if got := st.GetNonce(sender); got != 1 {
		t.Errorf("sender nonce = %d, want 1", got)
	}

	effectiveFeePerGas := uint64(baseFee + tip) // baseFee+tip(2000000010) < feeCap(12e9)
	totalFee := new(big.Int).SetUint64(types.TransactionGasCost * effectiveFeePerGas)
	wantSenderBalance := new(big.Int).Sub(initialBalance, new(big.Int).Add(value, totalFee))
	if got := st.GetBalance(sender); got.Cmp(wantSenderBalance) != 0 {
		t.Errorf("sender balance = %s, want %s", got, wantSenderBalance)
	}

	if got := st.GetBalance(recipient); got.Cmp(value) != 0 {
		t.Errorf("recipient balance = %s, want %s", got, value)
	}
	if !st.Exist(recipient) {
		t.Errorf("recipient account does not exist after transfer")
	}
}

// TestInsufficientBalance matches the seed scenario: the sender can afford
// value but not value+fee. No account state changes.
func TestInsufficientBalance(t *testing.T) {
	st := state.New()

	const baseFee = 10
	const tip = 2_000_000_000
	const feeCap = 12_000_000_000

	value := new(big.Int).Mul(big.NewInt(1), big.NewInt(1_000_000_000_000_000_000))

	priv, sender := newFundedSender(t, st, new(big.Int).Set(value))
	recipient := types.BytesToAddress([]byte{0xca, 0xfe})

	tx := signedTransfer(t, priv, recipient, 0, tip, feeCap, types.TransactionGasCost, value)

	_, err := ProcessTransaction(tx, baseFee, st)
	if err != ErrInsufficientBalance {
		t.Fatalf("ProcessTransaction = %v, want ErrInsufficientBalance", err)
	}

	if got := st.GetNonce(sender); got != 0 {
		t.Errorf("sender nonce changed to %d after a rejected transaction", got)
	}
	if got := st.GetBalance(sender); got.Cmp(value) != 0 {
		t.Errorf("sender balance changed to %s after a rejected transaction", got)
	}
	if st.Exist(recipient) {
		t.Errorf("recipient account created despite the transaction being rejected")
	}
}

func TestMaxFeeBelowBaseFee(t *testing.T) {
	st := state.New()
	priv, _ := newFundedSender(t, st, big.NewInt(1_000_000))
	recipient := types.BytesToAddress([]byte{0x01})

	tx := signedTransfer(t, priv, recipient, 0, 1, 5, types.TransactionGasCost, big.NewInt(0))

	_, err := ProcessTransaction(tx, 10, st)
	if err != ErrMaximumGasFeeBelowBaseFee {
		t.Errorf("ProcessTransaction = %v, want ErrMaximumGasFeeBelowBaseFee", err)
	}
}

func TestGasLimitBelowTransactionCost(t *testing.T) {
	st := state.New()
	priv, _ := newFundedSender(t, st, big.NewInt(1_000_000))
	recipient := types.BytesToAddress([]byte{0x01})

	tx := signedTransfer(t, priv, recipient, 0, 1, 100, 20000, big.NewInt(0))

	_, err := ProcessTransaction(tx, 10, st)
	if err != ErrInsufficientGas {
		t.Errorf("ProcessTransaction = %v, want ErrInsufficientGas", err)
	}
}

func TestSenderAccountMustExist(t *testing.T) {
	st := state.New()
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	recipient := types.BytesToAddress([]byte{0x01})

	tx := signedTransfer(t, priv, recipient, 0, 1, 100, types.TransactionGasCost, big.NewInt(0))

	_, err = ProcessTransaction(tx, 10, st)
	if err != ErrSenderAccountDoesNotExist {
		t.Errorf("ProcessTransaction = %v, want ErrSenderAccountDoesNotExist", err)
	}
}

// TestCreateTransaction exercises the zero-recipient create path: the
// derived contract address is installed with the supplied code and funded
// with value, and the sender's nonce still advances exactly once.
func TestCreateTransaction(t *testing.T) {
	st := state.New()
	initialBalance := big.NewInt(1_000_000_000)
	priv, sender := newFundedSender(t, st, initialBalance)

	// [PUSH1 42, PUSH1 0, SSTORE]
	code := []byte{0x60, 42, 0x60, 0, 0x55}
	tx := types.NewTransaction(1, 0, 1, 100, 100000, types.Address{}, big.NewInt(0), code)
	if err := tx.Sign(priv); err != nil {
		t.Fatalf("Sign: %v", err)
	}

	receipt, err := ProcessTransaction(tx, 10, st)
	if err != nil {
		t.Fatalf("ProcessTransaction: %v", err)
	}
	if receipt.ContractAddress == nil {
		t.Fatalf("receipt.ContractAddress is nil for a create transaction")
	}

	wantAddr := vm.CreateAddress(sender, 0)
	if *receipt.ContractAddress != wantAddr {
		t.Errorf("contract address = %s, want %s", receipt.ContractAddress.Hex(), wantAddr.Hex())
	}
	if got := st.GetNonce(sender); got != 1 {
		t.Errorf("sender nonce = %d, want 1", got)
	}
	if len(st.GetCode(*receipt.ContractAddress)) == 0 {
		t.Errorf("no code installed at the derived contract address")
	}
}
