package vm

import "github.com/holiman/uint256"

// Memory is the VM's byte-addressable, word-aligned expandable memory.
type Memory struct {
	store []byte
}

// NewMemory returns a new, empty Memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Set copies value into memory at the given offset. The caller must have
// already grown memory to cover [offset, offset+size) via Resize.
func (m *Memory) Set(offset, size uint64, value []byte) {
	if size == 0 {
		return
	}
	copy(m.store[offset:offset+size], value)
}

// Set32 writes a 256-bit value at the given offset, big-endian, zero-padded
// to 32 bytes.
func (m *Memory) Set32(offset uint64, val *uint256.Int) {
	copy(m.store[offset:offset+32], make([]byte, 32))
	b := val.Bytes()
	copy(m.store[offset+32-uint64(len(b)):offset+32], b)
}

// Resize grows memory to at least size bytes, rounded up to a whole 32-byte
// word by the caller (memory_expansion.go computes the rounded size).
func (m *Memory) Resize(size uint64) {
	if uint64(len(m.store)) < size {
		m.store = append(m.store, make([]byte, size-uint64(len(m.store)))...)
	}
}

// Get returns a copy of memory[offset:offset+size], zero-filling any portion
// that lies beyond the current allocation.
func (m *Memory) Get(offset, size uint64) []byte {
	if size == 0 {
		return nil
	}
	out := make([]byte, size)
	if offset < uint64(len(m.store)) {
		end := offset + size
		if end > uint64(len(m.store)) {
			end = uint64(len(m.store))
		}
		copy(out, m.store[offset:end])
	}
	return out
}

// Len returns the current length of memory in bytes.
func (m *Memory) Len() int {
	return len(m.store)
}

// Data returns the full backing slice.
func (m *Memory) Data() []byte {
	return m.store
}
