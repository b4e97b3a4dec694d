// Package rwasm implements the rWASM core runtime: a flattened,
// position-independent bytecode lowered from WebAssembly, its bit-exact
// binary module format, and the deterministic interpreter that executes it.
package rwasm

import (
	"fmt"

	"github.com/fluentlabs-xyz/rwasm/isa"
)

// A Module is the executable form of an rWASM program. All functions live
// contiguously in a single instruction stream; FuncLengths records each
// function's instruction count in order. The last function is always the
// synthesized entrypoint.
type Module struct {
	// Code is the flat instruction stream.
	Code []isa.Instruction
	// MemorySection is the concatenation of all source data segment
	// payloads.
	MemorySection []byte
	// ElementSection is the concatenation of all source element segment
	// funcref indices.
	ElementSection []uint32
	// FuncLengths holds per-function instruction counts; their sum equals
	// len(Code).
	FuncLengths []uint32
}

// NumFuncs returns the number of functions, the entrypoint included.
func (m *Module) NumFuncs() int {
	return len(m.FuncLengths)
}

// FuncOffset returns the flat instruction offset of the given compiled
// function.
func (m *Module) FuncOffset(compiledFunc uint32) (uint32, error) {
	if int(compiledFunc) >= len(m.FuncLengths) {
		return 0, fmt.Errorf("unknown compiled function %d", compiledFunc)
	}
	var offset uint32
	for _, length := range m.FuncLengths[:compiledFunc] {
		offset += length
	}
	return offset, nil
}

// EntrypointPC returns the instruction offset of the synthesized entrypoint,
// which is the last function of the stream.
func (m *Module) EntrypointPC() uint32 {
	var offset uint32
	for _, length := range m.FuncLengths[:len(m.FuncLengths)-1] {
		offset += length
	}
	return offset
}

// Validate checks the module's structural invariants.
func (m *Module) Validate() error {
	if len(m.FuncLengths) == 0 {
		return fmt.Errorf("module has no functions")
	}
	var total uint64
	for _, length := range m.FuncLengths {
		total += uint64(length)
	}
	if total != uint64(len(m.Code)) {
		return fmt.Errorf("function lengths sum to %d, code section has %d instructions",
			total, len(m.Code))
	}
	return nil
}
