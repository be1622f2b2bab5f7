package vm

// DecodedOp is a single decoded instruction: its opcode and, for PUSH1..PUSH32,
// the immediate data bytes that follow it.
type DecodedOp struct {
	PC       uint64
	Opcode   OpCode
	PushData []byte
}

// Decode walks raw bytecode into a sequence of DecodedOp. It does not
// validate jump destinations or reachability — only that every opcode byte
// is a known instruction and that PUSH instructions have enough trailing
// bytes. INVALID (0xfe) marks the end of runtime code: decoding stops there
// without yielding it as an operation, and any bytes past it are ignored.
func Decode(code []byte) ([]DecodedOp, error) {
	var ops []DecodedOp
	pc := uint64(0)
	for pc < uint64(len(code)) {
		op := OpCode(code[pc])
		if op == INVALID {
			break
		}
		if _, known := opCodeNames[op]; !known {
			return nil, ErrUnknownOpcode
		}

		d := DecodedOp{PC: pc, Opcode: op}
		if op.IsPush() {
			n := uint64(op-PUSH1) + 1
			start := pc + 1
			end := start + n
			if end > uint64(len(code)) {
				return nil, ErrIncompletePush
			}
			d.PushData = code[start:end]
			pc = end
		} else {
			pc++
		}
		ops = append(ops, d)
	}
	return ops, nil
}
