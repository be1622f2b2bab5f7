package vm

import "errors"

// VM-level errors.
var (
	ErrStackFull             = errors.New("vm: stack full")
	ErrNotEnoughItemsOnStack = errors.New("vm: not enough items on stack")
	ErrNoItemsOnStack        = errors.New("vm: no items on stack")
	ErrNotImplemented        = errors.New("vm: operation not implemented")
	ErrOutOfGas              = errors.New("vm: out of gas")
	ErrStackUnderflow        = errors.New("vm: invalid dup index")
	ErrInvalidBytecode       = errors.New("vm: invalid bytecode")
	ErrContractNotFound      = errors.New("vm: contract not found")
	ErrNoOperationExecuted   = errors.New("vm: no operation executed")

	// ErrExecutionReverted is not a failure: it is the distinguished
	// success-termination carrying REVERT's reason data. Run translates it
	// into ExecutionResult's Reverted field rather than propagating it as an
	// error to the executor.
	ErrExecutionReverted = errors.New("vm: execution reverted")
)

// Decoder-level errors.
var (
	ErrIncompletePush      = errors.New("decoder: incomplete push, not enough trailing bytes")
	ErrUnknownOpcode       = errors.New("decoder: unknown opcode")
	ErrInvalidPush         = errors.New("decoder: invalid push")
	ErrPushOpNeedsData     = errors.New("decoder: push operation needs immediate data")
	ErrInvalidOpcodeFormat = errors.New("decoder: invalid opcode format")
)
