package vm

import (
	"github.com/holiman/uint256"

	"github.com/evmcore/evmcore/core/types"
	"github.com/evmcore/evmcore/crypto"
)

func opNotImplemented(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	return nil, ErrNotImplemented
}

func opStop(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	return nil, nil
}

func opAdd(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.Add(&x, y)
	return nil, nil
}

func opMul(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.Mul(&x, y)
	return nil, nil
}

func opSub(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.Sub(&x, y)
	return nil, nil
}

func opDiv(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.Div(&x, y)
	return nil, nil
}

func opSdiv(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.SDiv(&x, y)
	return nil, nil
}

func opMod(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.Mod(&x, y)
	return nil, nil
}

func opSmod(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.SMod(&x, y)
	return nil, nil
}

func opAddmod(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	x, y, z := stack.Pop(), stack.Pop(), stack.Peek()
	z.AddMod(&x, &y, z)
	return nil, nil
}

func opMulmod(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	x, y, z := stack.Pop(), stack.Pop(), stack.Peek()
	z.MulMod(&x, &y, z)
	return nil, nil
}

func opLt(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	if x.Lt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opGt(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	if x.Gt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opSlt(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	if x.Slt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opSgt(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	if x.Sgt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opEq(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	if x.Eq(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opIsZero(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	x := stack.Peek()
	if x.IsZero() {
		x.SetOne()
	} else {
		x.Clear()
	}
	return nil, nil
}

func opAnd(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.And(&x, y)
	return nil, nil
}

func opOr(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.Or(&x, y)
	return nil, nil
}

func opXor(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.Xor(&x, y)
	return nil, nil
}

func opNot(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	x := stack.Peek()
	x.Not(x)
	return nil, nil
}

func opKeccak256(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	offset, size := stack.Pop(), stack.Peek()
	data := mem.Get(offset.Uint64(), size.Uint64())
	hash := crypto.Keccak256(data)
	size.SetBytes(hash)
	return nil, nil
}

func opAddress(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	var v uint256.Int
	v.SetBytes(contract.Address[:])
	return nil, stack.Push(&v)
}

func opOrigin(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	var v uint256.Int
	v.SetBytes(interp.TxContext.Origin[:])
	return nil, stack.Push(&v)
}

func opCaller(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	var v uint256.Int
	v.SetBytes(contract.CallerAddress[:])
	return nil, stack.Push(&v)
}

func opCallValue(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	var v uint256.Int
	if contract.Value != nil {
		v.SetFromBig(contract.Value)
	}
	return nil, stack.Push(&v)
}

func opCalldataLoad(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	offset := stack.Peek()
	off := offset.Uint64()
	data := make([]byte, 32)
	if off < uint64(len(contract.Input)) {
		end := off + 32
		if end > uint64(len(contract.Input)) {
			end = uint64(len(contract.Input))
		}
		copy(data, contract.Input[off:end])
	}
	offset.SetBytes(data)
	return nil, nil
}

func opCalldataSize(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	var v uint256.Int
	v.SetUint64(uint64(len(contract.Input)))
	return nil, stack.Push(&v)
}

func opCalldataCopy(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	destOffset, dataOffset, size := stack.Pop(), stack.Pop(), stack.Pop()
	if !contract.UseGas(GasCopyWord * toWordSize(size.Uint64())) {
		return nil, ErrOutOfGas
	}
	data := readAt(contract.Input, dataOffset.Uint64(), size.Uint64())
	mem.Set(destOffset.Uint64(), size.Uint64(), data)
	return nil, nil
}

func opCodeSize(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	var v uint256.Int
	v.SetUint64(uint64(len(contract.Code)))
	return nil, stack.Push(&v)
}

// opCodeCopy copies code into memory. Its copy and memory cost are charged
// against the full requested size rather than the code's actual length: the
// zero-padded tail past the end of the code is priced like copied bytes.
func opCodeCopy(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	destOffset, codeOffset, size := stack.Pop(), stack.Pop(), stack.Pop()
	if !contract.UseGas(GasCopyWord * toWordSize(size.Uint64())) {
		return nil, ErrOutOfGas
	}
	data := readAt(contract.Code, codeOffset.Uint64(), size.Uint64())
	mem.Set(destOffset.Uint64(), size.Uint64(), data)
	return nil, nil
}

func readAt(src []byte, offset, size uint64) []byte {
	out := make([]byte, size)
	if offset < uint64(len(src)) {
		end := offset + size
		if end > uint64(len(src)) {
			end = uint64(len(src))
		}
		copy(out, src[offset:end])
	}
	return out
}

func opPop(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	stack.Pop()
	return nil, nil
}

func opMload(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	offset := stack.Peek()
	offset.SetBytes(mem.Get(offset.Uint64(), 32))
	return nil, nil
}

func opMstore(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	offset, val := stack.Pop(), stack.Pop()
	mem.Set32(offset.Uint64(), &val)
	return nil, nil
}

func opMstore8(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	offset, val := stack.Pop(), stack.Pop()
	mem.Set(offset.Uint64(), 1, []byte{byte(val.Uint64())})
	return nil, nil
}

func opSload(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	loc := stack.Peek()
	key := types.Hash(loc.Bytes32())
	val := interp.StateDB.GetState(contract.Address, key)
	loc.SetBytes(val.Bytes())
	return nil, nil
}

// opSstore charges the base SSTORE cost (already deducted as constantGas) plus
// a one-time 15000 surcharge the first time a given slot is ever written.
func opSstore(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	loc, val := stack.Pop(), stack.Pop()
	key := types.Hash(loc.Bytes32())
	if !interp.StateDB.HasState(contract.Address, key) {
		if !contract.UseGas(GasSstoreSetNew) {
			return nil, ErrOutOfGas
		}
	}
	interp.StateDB.SetState(contract.Address, key, types.BytesToHash(val.Bytes()))
	return nil, nil
}

// opJump and opJumpi intentionally perform no jump-destination validation:
// the destination need not land on a JUMPDEST. A jump past the end of the
// code simply runs off the end and halts, as GetOp returns STOP there.
func opJump(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	dest := stack.Pop()
	*pc = dest.Uint64()
	return nil, nil
}

func opJumpi(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	dest, cond := stack.Pop(), stack.Pop()
	if !cond.IsZero() {
		*pc = dest.Uint64()
	} else {
		*pc++
	}
	return nil, nil
}

func opJumpdest(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	return nil, nil
}

func opPc(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	var v uint256.Int
	v.SetUint64(*pc)
	return nil, stack.Push(&v)
}

func opMsize(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	var v uint256.Int
	v.SetUint64(uint64(mem.Len()))
	return nil, stack.Push(&v)
}

func opGasOp(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	var v uint256.Int
	v.SetUint64(contract.Gas)
	return nil, stack.Push(&v)
}

func opPush0(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	var v uint256.Int
	return nil, stack.Push(&v)
}

// makePush builds the handler for PUSH1..PUSH32: it reads n bytes of
// immediate data following the opcode, zero-padding past the end of code.
func makePush(n int) executionFunc {
	return func(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
		start := *pc + 1
		data := readAt(contract.Code, start, uint64(n))
		var v uint256.Int
		v.SetBytes(data)
		if err := stack.Push(&v); err != nil {
			return nil, err
		}
		*pc += uint64(n) + 1
		return nil, nil
	}
}

// makeDup builds the handler for DUP1..DUP16.
func makeDup(n int) executionFunc {
	return func(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
		return nil, stack.Dup(n)
	}
}

// makeSwap builds the handler for SWAP1..SWAP16.
func makeSwap(n int) executionFunc {
	return func(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
		stack.Swap(n)
		return nil, nil
	}
}

func opReturn(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	offset, size := stack.Pop(), stack.Pop()
	return mem.Get(offset.Uint64(), size.Uint64()), nil
}

func opRevert(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	offset, size := stack.Pop(), stack.Pop()
	return mem.Get(offset.Uint64(), size.Uint64()), ErrExecutionReverted
}

func opInvalid(pc *uint64, interp *Interpreter, contract *Contract, mem *Memory, stack *Stack) ([]byte, error) {
	return nil, ErrInvalidBytecode
}
