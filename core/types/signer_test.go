package types

import (
	"math/big"
	"testing"

	"github.com/evmcore/evmcore/crypto"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	wantAddr := crypto.PubkeyToAddress(priv.PubKey().SerializeUncompressed())

	to := BytesToAddress([]byte{0xde, 0xad, 0xbe, 0xef})
	tx := NewTransaction(1, 0, 2_000_000_000, 12_000_000_000, 21000, to, big.NewInt(1_000_000_000_000_000_000), nil)

	if err := tx.Sign(priv); err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if !tx.VerifySignature() {
		t.Errorf("VerifySignature() = false, want true")
	}

	got, err := tx.GetSenderAddress()
	if err != nil {
		t.Fatalf("GetSenderAddress: %v", err)
	}
	if got != wantAddr {
		t.Errorf("GetSenderAddress() = %s, want %s", got.Hex(), wantAddr.Hex())
	}
}

func TestVerifySignatureFailsUnsigned(t *testing.T) {
	to := BytesToAddress([]byte{0x01})
	tx := NewTransaction(1, 0, 0, 100, 21000, to, big.NewInt(0), nil)

	if tx.VerifySignature() {
		t.Errorf("VerifySignature() on an unsigned transaction = true, want false")
	}
	if _, err := tx.GetSenderAddress(); err != ErrSenderRecovery {
		t.Errorf("GetSenderAddress() = %v, want ErrSenderRecovery", err)
	}
}

func TestSignRejectsTipAboveFeeCap(t *testing.T) {
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	to := BytesToAddress([]byte{0x01})
	tx := NewTransaction(1, 0, 100, 50, 21000, to, big.NewInt(0), nil)

	if err := tx.Sign(priv); err != ErrFeeCapLessThanTip {
		t.Errorf("Sign() = %v, want ErrFeeCapLessThanTip", err)
	}
}

func TestIsCreate(t *testing.T) {
	createTx := NewTransaction(1, 0, 0, 100, 21000, Address{}, big.NewInt(0), []byte{0x60, 0x00})
	if !createTx.IsCreate() {
		t.Errorf("IsCreate() = false for a zero-address recipient, want true")
	}

	to := BytesToAddress([]byte{0x01})
	callTx := NewTransaction(1, 0, 0, 100, 21000, to, big.NewInt(0), nil)
	if callTx.IsCreate() {
		t.Errorf("IsCreate() = true for a non-zero recipient, want false")
	}
}
