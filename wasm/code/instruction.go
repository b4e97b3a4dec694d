package code

import "math"

// A BlockType describes the signature of a block, loop, or if frame. The
// external parser resolves type-index block types to their full signatures.
type BlockType struct {
	Params  int
	Results int
}

// An Instruction is a single structured WebAssembly instruction. The
// immediate fields are a union; the opcode decides which are meaningful.
type Instruction struct {
	Opcode Opcode

	// Immediate is the primary immediate: a local/global/function/type/
	// table/segment index, a branch depth, or constant bits.
	Immediate uint64

	// MemOffset is the memarg offset of loads and stores.
	MemOffset uint32

	// TableIdx is the secondary table index of call_indirect, table.init
	// and table.copy.
	TableIdx uint32

	// Labels and Default are the br_table targets.
	Labels  []uint32
	Default uint32

	// Block is the signature of block/loop/if frames.
	Block BlockType
}

func (i *Instruction) Depth() uint32     { return uint32(i.Immediate) }
func (i *Instruction) Localidx() uint32  { return uint32(i.Immediate) }
func (i *Instruction) Globalidx() uint32 { return uint32(i.Immediate) }
func (i *Instruction) Funcidx() uint32   { return uint32(i.Immediate) }
func (i *Instruction) Typeidx() uint32   { return uint32(i.Immediate) }
func (i *Instruction) Segidx() uint32    { return uint32(i.Immediate) }
func (i *Instruction) Tableidx() uint32  { return uint32(i.Immediate) }
func (i *Instruction) I32() int32        { return int32(uint32(i.Immediate)) }
func (i *Instruction) I64() int64        { return int64(i.Immediate) }
func (i *Instruction) F32() float32      { return math.Float32frombits(uint32(i.Immediate)) }
func (i *Instruction) F64() float64      { return math.Float64frombits(i.Immediate) }

// Convenience constructors used by tests and by programs that build module
// views directly.

func Nullary(op Opcode) Instruction { return Instruction{Opcode: op} }

func Index(op Opcode, idx uint32) Instruction {
	return Instruction{Opcode: op, Immediate: uint64(idx)}
}

func I32Const(v int32) Instruction {
	return Instruction{Opcode: OpI32Const, Immediate: uint64(uint32(v))}
}

func I64Const(v int64) Instruction {
	return Instruction{Opcode: OpI64Const, Immediate: uint64(v)}
}

func F32Const(v float32) Instruction {
	return Instruction{Opcode: OpF32Const, Immediate: uint64(math.Float32bits(v))}
}

func F64Const(v float64) Instruction {
	return Instruction{Opcode: OpF64Const, Immediate: uint64(math.Float64bits(v))}
}

func Block(bt BlockType) Instruction { return Instruction{Opcode: OpBlock, Block: bt} }
func Loop(bt BlockType) Instruction  { return Instruction{Opcode: OpLoop, Block: bt} }
func If(bt BlockType) Instruction    { return Instruction{Opcode: OpIf, Block: bt} }
func Else() Instruction              { return Instruction{Opcode: OpElse} }
func End() Instruction               { return Instruction{Opcode: OpEnd} }

func Br(depth uint32) Instruction   { return Index(OpBr, depth) }
func BrIf(depth uint32) Instruction { return Index(OpBrIf, depth) }

func BrTable(labels []uint32, def uint32) Instruction {
	return Instruction{Opcode: OpBrTable, Labels: labels, Default: def}
}

func Call(funcidx uint32) Instruction { return Index(OpCall, funcidx) }

func CallIndirect(typeidx, tableidx uint32) Instruction {
	return Instruction{Opcode: OpCallIndirect, Immediate: uint64(typeidx), TableIdx: tableidx}
}

func Load(op Opcode, offset uint32) Instruction {
	return Instruction{Opcode: op, MemOffset: offset}
}

func Store(op Opcode, offset uint32) Instruction {
	return Instruction{Opcode: op, MemOffset: offset}
}

func MemoryInit(segidx uint32) Instruction { return Index(OpMemoryInit, segidx) }
func DataDrop(segidx uint32) Instruction   { return Index(OpDataDrop, segidx) }

func TableInit(segidx, tableidx uint32) Instruction {
	return Instruction{Opcode: OpTableInit, Immediate: uint64(segidx), TableIdx: tableidx}
}

func TableCopy(dst, src uint32) Instruction {
	return Instruction{Opcode: OpTableCopy, Immediate: uint64(dst), TableIdx: src}
}
