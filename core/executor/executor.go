package executor

import (
	"math/big"

	"github.com/evmcore/evmcore/core/state"
	"github.com/evmcore/evmcore/core/types"
	"github.com/evmcore/evmcore/core/vm"
)

// Receipt is what processing a transaction produces: who sent it, the
// address it created (if any), and the outcome of any VM execution it
// triggered. Plain value transfers that touch no code leave Result nil.
type Receipt struct {
	Sender          types.Address
	ContractAddress *types.Address
	Result          *vm.ExecutionResult
	GasUsed         uint64
}

// ProcessTransaction validates and applies a single transaction against
// state, in order:
//
//  1. recover the sender from the signature; fail if recovery fails.
//  2. require the sender account to already exist.
//  3. require base_fee <= max_fee_per_gas.
//  4. compute effective_fee_per_gas = min(max_fee_per_gas, base_fee + max_priority_fee_per_gas)
//     and total_fee = TRANSACTION_GAS_COST * effective_fee_per_gas.
//  5. require gas_limit >= TRANSACTION_GAS_COST.
//  6. require the signature to verify.
//  7. require balance >= value + total_fee.
//  8. debit the sender by value + total_fee and advance its nonce.
//  9. credit the recipient by value, creating its account if absent.
//  10. if the transaction carries code (create) or targets a contract
//      (call), run the VM with whatever gas remains after the flat
//      transaction cost; a VM-level failure or REVERT rolls back storage
//      changes via a snapshot taken just before entering the VM, but never
//      undoes the balance/nonce bookkeeping already applied in steps 8-9.
func ProcessTransaction(tx *types.Transaction, baseFee uint64, st *state.State) (*Receipt, error) {
	sender, err := tx.GetSenderAddress()
	if err != nil {
		return nil, ErrInvalidTransaction
	}

	if !st.Exist(sender) {
		return nil, ErrSenderAccountDoesNotExist
	}

	if baseFee > tx.MaxFeePerGas {
		return nil, ErrMaximumGasFeeBelowBaseFee
	}

	effectiveFeePerGas := tx.MaxFeePerGas
	if tip := baseFee + tx.MaxPriorityFeePerGas; tip < effectiveFeePerGas {
		effectiveFeePerGas = tip
	}
	totalFee := new(big.Int).SetUint64(types.TransactionGasCost * effectiveFeePerGas)

	if tx.GasLimit < types.TransactionGasCost {
		return nil, ErrInsufficientGas
	}

	if !tx.VerifySignature() {
		return nil, ErrInvalidSignature
	}

	cost := new(big.Int).Add(tx.Value, totalFee)
	if st.GetBalance(sender).Cmp(cost) < 0 {
		return nil, ErrInsufficientBalance
	}

	// The nonce at the moment of spending is what contract-address
	// derivation uses below, so it must be captured before SetNonce bumps it.
	nonceBefore := st.GetNonce(sender)
	st.SubBalance(sender, cost)
	st.SetNonce(sender, nonceBefore+1)

	receipt := &Receipt{Sender: sender}
	vmGas := tx.GasLimit - types.TransactionGasCost
	interp := newInterpreter(baseFee, sender, effectiveFeePerGas, st)

	switch {
	case tx.IsCreate():
		addr := vm.CreateAddress(sender, nonceBefore)
		if !st.Exist(addr) {
			st.CreateAccount(addr)
		}
		st.AddBalance(addr, tx.Value)

		snapshot := st.Snapshot()
		result, err := interp.Create(sender, addr, tx.InputData, vmGas, tx.Value)
		if err != nil || (result != nil && result.Reverted) {
			st.RevertToSnapshot(snapshot)
		}
		if err != nil {
			return receipt, nil
		}
		receipt.ContractAddress = &addr
		receipt.Result = result
		receipt.GasUsed = result.GasUsed

	case !tx.To.IsZero():
		if !st.Exist(tx.To) {
			st.CreateAccount(tx.To)
		}
		st.AddBalance(tx.To, tx.Value)

		code := st.GetCode(tx.To)
		if len(code) == 0 {
			break
		}

		contract := vm.NewContract(sender, tx.To, tx.Value, vmGas)
		contract.Code = code
		contract.CodeHash = st.GetCodeHash(tx.To)

		snapshot := st.Snapshot()
		result, err := interp.Run(contract, tx.InputData)
		if err != nil || (result != nil && result.Reverted) {
			st.RevertToSnapshot(snapshot)
		}
		if err != nil {
			return receipt, nil
		}
		receipt.Result = result
		receipt.GasUsed = result.GasUsed
	}

	return receipt, nil
}

func newInterpreter(baseFee uint64, origin types.Address, gasPrice uint64, st *state.State) *vm.Interpreter {
	return vm.NewInterpreter(
		vm.BlockContext{BaseFee: baseFee},
		vm.TxContext{Origin: origin, GasPrice: gasPrice},
		st,
	)
}
