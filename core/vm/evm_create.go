package vm

// evm_create.go installs a contract's code and runs it once for its storage
// side effects. There is no constructor/runtime-code split here — the code
// supplied is stored verbatim as the contract's code, and running it is only
// observed for the SSTOREs it performs (see DESIGN.md for why this core
// drops the deposit-return pattern real EVMs use).
//
// Address derivation, nonce bookkeeping, and value transfer are the caller's
// responsibility (see core/executor): a transaction's nonce is advanced
// exactly once as part of processing the transaction itself, so Create must
// not repeat that bookkeeping.

import (
	"math/big"

	"github.com/evmcore/evmcore/core/types"
)

// Create installs code at addr as a contract and runs it once against the
// new account. addr, its funding, and the sender's nonce must already be
// settled by the caller.
func (interp *Interpreter) Create(caller, addr types.Address, code []byte, gas uint64, value *big.Int) (*ExecutionResult, error) {
	if !interp.StateDB.Exist(addr) {
		interp.StateDB.CreateAccount(addr)
	}
	interp.StateDB.SetCode(addr, code)

	contract := NewContract(caller, addr, value, gas)
	contract.Code = code
	contract.CodeHash = interp.StateDB.GetCodeHash(addr)

	return interp.Run(contract, nil)
}
