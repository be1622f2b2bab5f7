package crypto

import (
	"errors"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/evmcore/evmcore/core/types"
)

// secp256k1N is the order of the secp256k1 curve, used for low-s validation.
var secp256k1N = secp256k1.S256().N

// secp256k1halfN is half the curve order.
var secp256k1halfN = new(big.Int).Rsh(secp256k1N, 1)

// GenerateKey generates a new secp256k1 private key.
func GenerateKey() (*secp256k1.PrivateKey, error) {
	return secp256k1.GeneratePrivateKey()
}

// Sign produces a 64-byte compact ECDSA signature (R || S) over a 32-byte
// digest, plus the 1-bit recovery id identifying which of the two candidate
// public keys produced it.
func Sign(hash []byte, priv *secp256k1.PrivateKey) (sig [64]byte, recoveryID byte, err error) {
	if len(hash) != 32 {
		return sig, 0, errors.New("crypto: hash must be 32 bytes")
	}
	// SignCompact's leading byte is 27+recid (+4 if the key was compressed);
	// we always request the uncompressed form so recid = compact[0]-27.
	compact := ecdsa.SignCompact(priv, hash, false)
	recoveryID = compact[0] - 27
	copy(sig[:32], compact[1:33])
	copy(sig[32:], compact[33:65])
	return sig, recoveryID, nil
}

// Recover recovers the uncompressed public key (65 bytes, 0x04-prefixed)
// from a 32-byte digest, a 64-byte compact signature, and its recovery id.
func Recover(hash []byte, sig [64]byte, recoveryID byte) ([]byte, error) {
	if len(hash) != 32 {
		return nil, errors.New("crypto: hash must be 32 bytes")
	}
	if recoveryID > 3 {
		return nil, errors.New("crypto: invalid recovery id")
	}
	compact := make([]byte, 65)
	compact[0] = 27 + recoveryID
	copy(compact[1:33], sig[:32])
	copy(compact[33:65], sig[32:])

	pub, _, err := ecdsa.RecoverCompact(compact, hash)
	if err != nil {
		return nil, err
	}
	return pub.SerializeUncompressed(), nil
}

// Verify checks a 64-byte compact signature against an uncompressed public
// key and digest, without performing recovery.
func Verify(pubkey, hash []byte, sig [64]byte) bool {
	if len(hash) != 32 || len(pubkey) != 65 || pubkey[0] != 0x04 {
		return false
	}
	pub, err := secp256k1.ParsePubKey(pubkey)
	if err != nil {
		return false
	}
	r := new(secp256k1.ModNScalar)
	s := new(secp256k1.ModNScalar)
	r.SetByteSlice(sig[:32])
	s.SetByteSlice(sig[32:])
	signature := ecdsa.NewSignature(r, s)
	return signature.Verify(hash, pub)
}

// ValidateSignatureValues checks r, s for validity per Homestead's low-S rule.
func ValidateSignatureValues(r, s *big.Int, homestead bool) bool {
	if r == nil || s == nil {
		return false
	}
	if r.Sign() <= 0 || s.Sign() <= 0 {
		return false
	}
	if r.Cmp(secp256k1N) >= 0 || s.Cmp(secp256k1N) >= 0 {
		return false
	}
	if homestead && s.Cmp(secp256k1halfN) > 0 {
		return false
	}
	return true
}

// PubkeyToAddress derives the address from an uncompressed public key:
// the last 20 bytes of Keccak256(pubkey[1:]).
func PubkeyToAddress(pubkey []byte) types.Address {
	if len(pubkey) != 65 || pubkey[0] != 0x04 {
		return types.Address{}
	}
	hash := Keccak256(pubkey[1:])
	return types.BytesToAddress(hash[12:])
}
