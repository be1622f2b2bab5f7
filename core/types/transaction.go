package types

import (
	"math/big"
	"sync/atomic"
)

// DynamicFeeTxType is the EIP-2718 type byte for an EIP-1559 transaction,
// prefixed onto the signing digest.
const DynamicFeeTxType = 0x02

// TransactionGasCost is the flat gas charge for the transaction envelope
// itself (signature recovery, fee accounting, balance/nonce bookkeeping),
// independent of any VM execution the transaction may trigger.
const TransactionGasCost = 21000

// Signature is a recoverable ECDSA signature: a 64-byte compact (R || S)
// pair plus the 1-bit parity/recovery id that selects which of the two
// candidate public keys produced it.
type Signature struct {
	RS         [64]byte
	RecoveryID byte
}

// IsZero reports whether the signature has never been set.
func (s Signature) IsZero() bool {
	return s.RS == [64]byte{} && s.RecoveryID == 0
}

// Transaction is the EIP-1559-shaped envelope this core executes: a
// recipient, value, gas limits, fee caps, an arbitrary payload (calldata for
// calls, init code for creates), and a recoverable signature over the
// transaction's canonical digest. The sender is never stored — it is
// recovered on demand from the signature.
type Transaction struct {
	ChainID              uint64
	Nonce                uint64
	MaxPriorityFeePerGas uint64
	MaxFeePerGas         uint64
	GasLimit             uint64
	To                   Address // zero address encodes "create"
	Value                *big.Int
	InputData            []byte
	Sig                  Signature

	cachedSender atomic.Pointer[Address]
}

// NewTransaction builds an unsigned transaction. Call Sign to attach a
// signature before it can be processed by the executor.
func NewTransaction(chainID, nonce, maxPriorityFeePerGas, maxFeePerGas, gasLimit uint64, to Address, value *big.Int, data []byte) *Transaction {
	if value == nil {
		value = new(big.Int)
	}
	return &Transaction{
		ChainID:              chainID,
		Nonce:                nonce,
		MaxPriorityFeePerGas: maxPriorityFeePerGas,
		MaxFeePerGas:         maxFeePerGas,
		GasLimit:             gasLimit,
		To:                   to,
		Value:                value,
		InputData:            data,
	}
}

// IsCreate reports whether this transaction targets contract creation
// (the all-zero recipient).
func (tx *Transaction) IsCreate() bool {
	return tx.To.IsZero()
}

// cacheSender stores a recovered sender address so repeated calls to
// GetSenderAddress within the same transaction's lifetime avoid re-running
// curve recovery.
func (tx *Transaction) cacheSender(addr Address) {
	tx.cachedSender.Store(&addr)
}
