package exec

import (
	"encoding/binary"

	"github.com/fluentlabs-xyz/rwasm/isa"
)

// PageSize is the WebAssembly linear memory page size.
const PageSize = 65536

// Pages returns the current size of the memory in pages.
func (m *Memory) Pages() uint32 {
	return uint32(len(m.data()) / PageSize)
}

// MaxPages returns the configured upper bound in pages.
func (m *Memory) MaxPages() uint32 {
	return m.maxPages
}

// Bytes returns the memory's backing bytes.
func (m *Memory) Bytes() []byte {
	return m.data()
}

// Read copies memory[offset:offset+len(buf)] into buf.
func (m *Memory) Read(offset uint64, buf []byte) error {
	mem := m.data()
	if offset+uint64(len(buf)) > uint64(len(mem)) {
		return isa.TrapMemoryOutOfBounds
	}
	copy(buf, mem[offset:])
	return nil
}

// Write copies buf into memory[offset:offset+len(buf)].
func (m *Memory) Write(offset uint64, buf []byte) error {
	mem := m.data()
	if offset+uint64(len(buf)) > uint64(len(mem)) {
		return isa.TrapMemoryOutOfBounds
	}
	copy(mem[offset:], buf)
	return nil
}

// Load reads size bytes at the effective address base+offset and returns the
// value zero- or sign-extended according to signed.
func (m *Memory) Load(base, offset, size uint32, signed bool) (isa.UntypedValue, error) {
	mem := m.data()
	addr := uint64(base) + uint64(offset)
	if addr+uint64(size) > uint64(len(mem)) {
		return 0, isa.TrapMemoryOutOfBounds
	}
	var raw uint64
	switch size {
	case 1:
		raw = uint64(mem[addr])
		if signed {
			raw = uint64(int64(int8(raw)))
		}
	case 2:
		raw = uint64(binary.LittleEndian.Uint16(mem[addr:]))
		if signed {
			raw = uint64(int64(int16(raw)))
		}
	case 4:
		raw = uint64(binary.LittleEndian.Uint32(mem[addr:]))
		if signed {
			raw = uint64(int64(int32(raw)))
		}
	default:
		raw = binary.LittleEndian.Uint64(mem[addr:])
	}
	return isa.UntypedValue(raw), nil
}

// Store writes the low size bytes of value at the effective address
// base+offset.
func (m *Memory) Store(base, offset, size uint32, value isa.UntypedValue) error {
	mem := m.data()
	addr := uint64(base) + uint64(offset)
	if addr+uint64(size) > uint64(len(mem)) {
		return isa.TrapMemoryOutOfBounds
	}
	switch size {
	case 1:
		mem[addr] = byte(value)
	case 2:
		binary.LittleEndian.PutUint16(mem[addr:], uint16(value))
	case 4:
		binary.LittleEndian.PutUint32(mem[addr:], uint32(value))
	default:
		binary.LittleEndian.PutUint64(mem[addr:], uint64(value))
	}
	return nil
}
