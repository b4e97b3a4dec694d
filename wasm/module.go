// Package wasm defines the parsed-module view the translator consumes. The
// WebAssembly binary parser itself is an external collaborator; it is
// expected to hand over fully validated sections in this shape.
package wasm

import (
	"github.com/fluentlabs-xyz/rwasm/isa"
	"github.com/fluentlabs-xyz/rwasm/wasm/code"
)

// A ValueType is a WebAssembly scalar or reference type.
type ValueType byte

const (
	ValueTypeI32 ValueType = iota
	ValueTypeI64
	ValueTypeF32
	ValueTypeF64
	ValueTypeFuncRef
	ValueTypeExternRef
)

// A FunctionSig is a function type: parameter and result types in order.
type FunctionSig struct {
	Params  []ValueType
	Results []ValueType
}

// Equals reports signature equality.
func (s FunctionSig) Equals(other FunctionSig) bool {
	if len(s.Params) != len(other.Params) || len(s.Results) != len(other.Results) {
		return false
	}
	for i, p := range s.Params {
		if other.Params[i] != p {
			return false
		}
	}
	for i, r := range s.Results {
		if other.Results[i] != r {
			return false
		}
	}
	return true
}

// An ImportFunc is an imported function. Imports resolve to host functions;
// HostIdx is the index the host registry dispatches on.
type ImportFunc struct {
	Module  string
	Name    string
	SigIdx  uint32
	HostIdx uint32
}

// A LocalDecl declares Count locals of a single type, mirroring the wire
// format's local run-length encoding.
type LocalDecl struct {
	Count uint32
	Type  ValueType
}

// A Function is an internal function body.
type Function struct {
	SigIdx uint32
	Locals []LocalDecl
	Body   []code.Instruction
}

// NumLocals returns the total number of declared locals (parameters
// excluded).
func (f *Function) NumLocals() uint32 {
	var n uint32
	for _, decl := range f.Locals {
		n += decl.Count
	}
	return n
}

// A Global is a global variable declaration with its constant initializer.
// Imported globals are not supported, so every initializer is a literal.
type Global struct {
	Type    ValueType
	Mutable bool
	Init    isa.UntypedValue
}

// A Memory is a linear memory declaration in pages.
type Memory struct {
	MinPages uint32
	MaxPages uint32
	HasMax   bool
}

// A Table is a table declaration in elements.
type Table struct {
	ElemType ValueType
	MinSize  uint32
	MaxSize  uint32
	HasMax   bool
}

// A DataSegment initializes linear memory. Active segments carry a constant
// destination offset; passive segments wait for memory.init.
type DataSegment struct {
	Active bool
	Offset uint32
	Data   []byte
}

// An ElementSegment initializes a table with function references.
type ElementSegment struct {
	Active   bool
	TableIdx uint32
	Offset   uint32
	Funcs    []uint32
}

// An Export names an internal function. Only function exports participate in
// translation.
type Export struct {
	Name    string
	FuncIdx uint32
}

// A Module is a validated WebAssembly module view.
type Module struct {
	Types           []FunctionSig
	ImportedFuncs   []ImportFunc
	Funcs           []Function
	Globals         []Global
	Memory          *Memory
	Tables          []Table
	DataSegments    []DataSegment
	ElementSegments []ElementSegment
	Exports         []Export
	Start           *uint32
}

// NumImportedFuncs returns the number of imported functions; internal
// function i has source index NumImportedFuncs()+i.
func (m *Module) NumImportedFuncs() uint32 {
	return uint32(len(m.ImportedFuncs))
}

// FuncSig returns the signature index of the function with the given source
// index, imports included.
func (m *Module) FuncSig(funcIdx uint32) (uint32, bool) {
	if funcIdx < m.NumImportedFuncs() {
		return m.ImportedFuncs[funcIdx].SigIdx, true
	}
	internal := funcIdx - m.NumImportedFuncs()
	if int(internal) >= len(m.Funcs) {
		return 0, false
	}
	return m.Funcs[internal].SigIdx, true
}

// ExportedFunc resolves an export name to its source function index.
func (m *Module) ExportedFunc(name string) (uint32, bool) {
	for _, export := range m.Exports {
		if export.Name == name {
			return export.FuncIdx, true
		}
	}
	return 0, false
}
