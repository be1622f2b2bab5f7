package types

import (
	"encoding/binary"
	"errors"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/evmcore/evmcore/crypto"
)

// Signing-related errors.
var (
	ErrSenderRecovery    = errors.New("types: sender recovery failed")
	ErrFeeCapLessThanTip = errors.New("types: max_fee_per_gas below max_priority_fee_per_gas")
)

// HashForSigning computes the canonical digest signed by the transaction
// sender: the EIP-2718 type byte followed by big-endian encodings of
// chain_id, nonce, max_priority_fee_per_gas, max_fee_per_gas, gas_limit, the
// 32-byte-padded recipient, and value — hashed with Keccak-256. This is a
// simplified stand-in for RLP-encoded EIP-1559 signing, sufficient for
// intra-system signing but not wire-compatible with Ethereum.
func (tx *Transaction) HashForSigning() Hash {
	var buf []byte
	buf = append(buf, DynamicFeeTxType)
	buf = appendUint64(buf, tx.ChainID)
	buf = appendUint64(buf, tx.Nonce)
	buf = appendUint64(buf, tx.MaxPriorityFeePerGas)
	buf = appendUint64(buf, tx.MaxFeePerGas)
	buf = appendUint64(buf, tx.GasLimit)
	buf = append(buf, padAddress(tx.To)...)
	buf = append(buf, padValue(tx.Value)...)
	return crypto.Keccak256Hash(buf)
}

// Sign produces an ECDSA signature over the transaction's signing digest
// using the secp256k1 curve, and attaches it to the transaction.
func (tx *Transaction) Sign(priv *secp256k1.PrivateKey) error {
	if tx.MaxPriorityFeePerGas > tx.MaxFeePerGas {
		return ErrFeeCapLessThanTip
	}
	digest := tx.HashForSigning()
	rs, recID, err := crypto.Sign(digest.Bytes(), priv)
	if err != nil {
		return err
	}
	tx.Sig = Signature{RS: rs, RecoveryID: recID}
	return nil
}

// VerifySignature recovers the public key from the digest, signature, and
// recovery id, then verifies the signature against it. Returns whether both
// recovery and verification succeeded.
func (tx *Transaction) VerifySignature() bool {
	if tx.Sig.IsZero() {
		return false
	}
	digest := tx.HashForSigning()
	pub, err := crypto.Recover(digest.Bytes(), tx.Sig.RS, tx.Sig.RecoveryID)
	if err != nil {
		return false
	}
	return crypto.Verify(pub, digest.Bytes(), tx.Sig.RS)
}

// GetSenderAddress recovers the public key from the signature and digest,
// and derives the sender address as the last 20 bytes of
// Keccak256(public_key[1:]). Returns ErrSenderRecovery if recovery fails.
func (tx *Transaction) GetSenderAddress() (Address, error) {
	if addr := tx.cachedSender.Load(); addr != nil {
		return *addr, nil
	}
	if tx.Sig.IsZero() {
		return Address{}, ErrSenderRecovery
	}
	digest := tx.HashForSigning()
	pub, err := crypto.Recover(digest.Bytes(), tx.Sig.RS, tx.Sig.RecoveryID)
	if err != nil {
		return Address{}, ErrSenderRecovery
	}
	addr := crypto.PubkeyToAddress(pub)
	tx.cacheSender(addr)
	return addr, nil
}

func appendUint64(buf []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(buf, b[:]...)
}

func padAddress(a Address) []byte {
	var word [32]byte
	copy(word[32-AddressLength:], a[:])
	return word[:]
}

func padValue(v *big.Int) []byte {
	var word [32]byte
	if v == nil {
		return word[:]
	}
	b := v.Bytes()
	copy(word[32-len(b):], b)
	return word[:]
}
