// Package state holds the in-memory world state the virtual machine and
// transaction executor operate on: accounts, balances, nonces, contract
// code, and per-contract storage, guarded by a single mutex and a revert
// journal for snapshot/rollback.
package state

import (
	"math/big"
	"sync"

	"github.com/evmcore/evmcore/core/types"
	"github.com/evmcore/evmcore/crypto"
)

// journalEntry undoes one state mutation when replayed during a revert.
type journalEntry interface {
	revert(s *State)
}

type createAccountChange struct {
	addr types.Address
}

func (c createAccountChange) revert(s *State) {
	delete(s.accounts, c.addr)
}

type balanceChange struct {
	addr types.Address
	prev *big.Int
}

func (c balanceChange) revert(s *State) {
	s.accounts[c.addr].Balance = c.prev
}

type nonceChange struct {
	addr types.Address
	prev uint64
}

func (c nonceChange) revert(s *State) {
	s.accounts[c.addr].Nonce = c.prev
}

type codeChange struct {
	addr     types.Address
	prevCode []byte
	prevHash []byte
	existed  bool
}

func (c codeChange) revert(s *State) {
	if !c.existed {
		delete(s.code, c.addr)
		s.accounts[c.addr].CodeHash = types.EmptyCodeHash.Bytes()
		return
	}
	s.code[c.addr] = c.prevCode
	s.accounts[c.addr].CodeHash = c.prevHash
}

type storageChange struct {
	addr    types.Address
	key     types.Hash
	prev    types.Hash
	existed bool
}

func (c storageChange) revert(s *State) {
	if !c.existed {
		delete(s.storage[c.addr], c.key)
		return
	}
	s.storage[c.addr][c.key] = c.prev
}

// State is the shared, mutex-guarded world state. All of its exported
// methods are safe to call concurrently: each one holds the mutex only for
// its own duration, and the caller does not need to hold an external lock to
// invoke them. No lock spans a whole transaction: Snapshot/RevertToSnapshot
// pairs taken by the transaction executor are not protected against
// interleaving with other callers, and transactions stay serialized only
// because the block-production loop applies them one at a time.
type State struct {
	mu       sync.Mutex
	accounts map[types.Address]*types.Account
	storage  map[types.Address]map[types.Hash]types.Hash
	code     map[types.Address][]byte
	journal  []journalEntry
}

// New returns an empty State.
func New() *State {
	return &State{
		accounts: make(map[types.Address]*types.Account),
		storage:  make(map[types.Address]map[types.Hash]types.Hash),
		code:     make(map[types.Address][]byte),
	}
}

func (s *State) getOrCreate(addr types.Address) *types.Account {
	a, ok := s.accounts[addr]
	if !ok {
		a = types.NewAccount()
		s.accounts[addr] = a
	}
	return a
}

// GetAccount returns the account at addr and whether it exists.
func (s *State) GetAccount(addr types.Address) (*types.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[addr]
	return a, ok
}

// Exist reports whether addr has a tracked account.
func (s *State) Exist(addr types.Address) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.accounts[addr]
	return ok
}

// CreateAccount installs a fresh, zero-balance account at addr if one does
// not already exist. Re-creating an existing account is a no-op, matching
// the EVM rule that CREATE may target a pre-funded but code-less address.
func (s *State) CreateAccount(addr types.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[addr]; ok {
		return
	}
	s.accounts[addr] = types.NewAccount()
	s.journal = append(s.journal, createAccountChange{addr: addr})
}

// GetBalance returns addr's balance, or zero if the account does not exist.
func (s *State) GetBalance(addr types.Address) *big.Int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.accounts[addr]; ok {
		return new(big.Int).Set(a.Balance)
	}
	return new(big.Int)
}

// AddBalance credits amount to addr, creating the account if needed.
func (s *State) AddBalance(addr types.Address, amount *big.Int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.getOrCreate(addr)
	s.journal = append(s.journal, balanceChange{addr: addr, prev: new(big.Int).Set(a.Balance)})
	a.Balance = new(big.Int).Add(a.Balance, amount)
}

// SubBalance debits amount from addr. The caller is responsible for having
// checked sufficient balance beforehand.
func (s *State) SubBalance(addr types.Address, amount *big.Int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.getOrCreate(addr)
	s.journal = append(s.journal, balanceChange{addr: addr, prev: new(big.Int).Set(a.Balance)})
	a.Balance = new(big.Int).Sub(a.Balance, amount)
}

// GetNonce returns addr's nonce, or zero if the account does not exist.
func (s *State) GetNonce(addr types.Address) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.accounts[addr]; ok {
		return a.Nonce
	}
	return 0
}

// SetNonce sets addr's nonce, creating the account if needed.
func (s *State) SetNonce(addr types.Address, nonce uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.getOrCreate(addr)
	s.journal = append(s.journal, nonceChange{addr: addr, prev: a.Nonce})
	a.Nonce = nonce
}

// GetCode returns addr's code, or nil if it has none.
func (s *State) GetCode(addr types.Address) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.code[addr]
}

// GetCodeHash returns keccak256 of addr's code, or the empty-code hash if
// it has none.
func (s *State) GetCodeHash(addr types.Address) types.Hash {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.accounts[addr]; ok && len(a.CodeHash) > 0 {
		return types.BytesToHash(a.CodeHash)
	}
	return types.EmptyCodeHash
}

// SetCode installs code as addr's contract code and updates its code hash.
func (s *State) SetCode(addr types.Address, code []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.getOrCreate(addr)
	prevCode, existed := s.code[addr]
	s.journal = append(s.journal, codeChange{addr: addr, prevCode: prevCode, prevHash: a.CodeHash, existed: existed})
	s.code[addr] = code
	a.CodeHash = crypto.Keccak256(code)
}

// GetState returns the value stored at (addr, key), or the zero hash if unset.
func (s *State) GetState(addr types.Address, key types.Hash) types.Hash {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storage[addr][key]
}

// HasState reports whether (addr, key) has ever been written, distinguishing
// an explicit zero value from an absent slot — SSTORE's first-write gas
// surcharge depends on this distinction.
func (s *State) HasState(addr types.Address, key types.Hash) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.storage[addr][key]
	return ok
}

// SetState stores value at (addr, key).
func (s *State) SetState(addr types.Address, key types.Hash, value types.Hash) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slots, ok := s.storage[addr]
	if !ok {
		slots = make(map[types.Hash]types.Hash)
		s.storage[addr] = slots
	}
	prev, existed := slots[key]
	s.journal = append(s.journal, storageChange{addr: addr, key: key, prev: prev, existed: existed})
	slots[key] = value
}

// Snapshot returns a marker that RevertToSnapshot can later roll back to.
func (s *State) Snapshot() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.journal)
}

// RevertToSnapshot undoes every mutation recorded since the given snapshot,
// in reverse order, and truncates the journal to that point.
func (s *State) RevertToSnapshot(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.journal) - 1; i >= id; i-- {
		s.journal[i].revert(s)
	}
	s.journal = s.journal[:id]
}
