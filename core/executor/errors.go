// Package executor implements the top-level transaction entry point: fee and
// balance validation, sender/recipient bookkeeping, and dispatch into the
// virtual machine for contract calls and creations.
package executor

import "errors"

var (
	ErrSenderAccountDoesNotExist = errors.New("executor: sender account does not exist")
	ErrInvalidTransaction        = errors.New("executor: signature recovery failed")
	ErrInvalidSignature          = errors.New("executor: signature failed verification")
	ErrMaximumGasFeeBelowBaseFee = errors.New("executor: max fee per gas below base fee")
	ErrInsufficientGas           = errors.New("executor: gas limit below transaction gas cost")
	ErrInsufficientBalance       = errors.New("executor: sender balance below value plus fee")
)
