package vm

import (
	"errors"
	"math/big"

	"github.com/evmcore/evmcore/core/types"
)

// BlockContext carries block-level values for the running contract. This
// core produces blocks on a fixed cadence with no real header chain, so these
// are whatever the caller supplies. The NUMBER, TIMESTAMP and BASEFEE opcodes
// are not implemented, so running code cannot read these fields.
type BlockContext struct {
	Number    uint64
	Timestamp uint64
	BaseFee   uint64
}

// TxContext carries transaction-level values for the running contract.
// Origin is readable through ORIGIN; the GASPRICE opcode is not implemented,
// so GasPrice is not readable by running code.
type TxContext struct {
	Origin   types.Address
	GasPrice uint64
}

// StateDB is the account/storage view the interpreter executes against.
// Defined here, rather than imported from core/state, to keep core/vm free
// of a dependency on the state package; core/state.State satisfies it.
type StateDB interface {
	GetBalance(addr types.Address) *big.Int
	AddBalance(addr types.Address, amount *big.Int)
	SubBalance(addr types.Address, amount *big.Int)
	GetNonce(addr types.Address) uint64
	SetNonce(addr types.Address, nonce uint64)
	GetCode(addr types.Address) []byte
	SetCode(addr types.Address, code []byte)
	GetCodeHash(addr types.Address) types.Hash
	GetState(addr types.Address, key types.Hash) types.Hash
	SetState(addr types.Address, key types.Hash, value types.Hash)
	HasState(addr types.Address, key types.Hash) bool
	CreateAccount(addr types.Address)
	Exist(addr types.Address) bool
	Snapshot() int
	RevertToSnapshot(id int)
}

// Interpreter runs contract bytecode against a StateDB within a single
// block/transaction context.
type Interpreter struct {
	Context   BlockContext
	TxContext TxContext
	StateDB   StateDB
	jumpTable JumpTable
}

// NewInterpreter constructs an Interpreter over the given state.
func NewInterpreter(blockCtx BlockContext, txCtx TxContext, stateDB StateDB) *Interpreter {
	return &Interpreter{
		Context:   blockCtx,
		TxContext: txCtx,
		StateDB:   stateDB,
		jumpTable: NewJumpTable(),
	}
}

// ExecutionResult is the terminal state of a contract run: either it halted
// normally (Reverted == false) or it hit REVERT (Reverted == true, with the
// revert reason in ReturnData). Any other error aborts the run entirely and
// is returned separately by Run, not folded into this type.
type ExecutionResult struct {
	Reverted   bool
	ReturnData []byte
	GasUsed    uint64
}

// Run executes contract code to completion: STOP/RETURN/REVERT or an error.
// Per step: validate the stack against the opcode's bounds, charge constant
// gas, charge memory-expansion gas (the absolute cost of the resulting
// high-water mark, not the delta from before — see core/vm/memory_expansion.go),
// grow memory, then execute. The program counter advances by one unless the
// opcode is a jump (which sets pc itself) or a halt (which ends the run).
func (interp *Interpreter) Run(contract *Contract, input []byte) (*ExecutionResult, error) {
	contract.Input = input
	gasStart := contract.Gas

	var (
		pc    uint64
		stack = NewStack()
		mem   = NewMemory()
	)

	for {
		op := contract.GetOp(pc)
		def := interp.jumpTable[op]

		sLen := stack.Len()
		if sLen < def.minStack {
			return nil, ErrNotEnoughItemsOnStack
		}
		if sLen > def.maxStack {
			return nil, ErrStackFull
		}

		if def.constantGas > 0 {
			if !contract.UseGas(def.constantGas) {
				return nil, ErrOutOfGas
			}
		}

		if def.memorySize != nil {
			required := toWordSize(def.memorySize(stack)) * 32
			if required > uint64(mem.Len()) {
				cost := memoryGasCost(required)
				if !contract.UseGas(cost) {
					return nil, ErrOutOfGas
				}
				mem.Resize(required)
			}
		}

		ret, err := def.execute(&pc, interp, contract, mem, stack)
		if err != nil {
			if errors.Is(err, ErrExecutionReverted) {
				return &ExecutionResult{Reverted: true, ReturnData: ret, GasUsed: gasStart - contract.Gas}, nil
			}
			return nil, err
		}

		if def.halts {
			return &ExecutionResult{Reverted: false, ReturnData: ret, GasUsed: gasStart - contract.Gas}, nil
		}
		if def.jumps {
			continue
		}
		pc++
	}
}
