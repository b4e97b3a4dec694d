package isa

import "fmt"

// A DropKeep describes how a branch or return unwinds the value stack:
// drop `Drop` values that sit below the top `Keep` values.
type DropKeep struct {
	Drop uint16
	Keep uint16
}

// DropKeepNone is the no-op unwind.
var DropKeepNone = DropKeep{}

// NewDropKeep builds a DropKeep, rejecting counts that do not fit u16.
func NewDropKeep(drop, keep int) (DropKeep, error) {
	if drop < 0 || drop > 0xffff {
		return DropKeep{}, fmt.Errorf("drop count out of bounds: %d", drop)
	}
	if keep < 0 || keep > 0xffff {
		return DropKeep{}, fmt.Errorf("keep count out of bounds: %d", keep)
	}
	return DropKeep{Drop: uint16(drop), Keep: uint16(keep)}, nil
}

// IsNoop reports whether applying the DropKeep leaves the stack unchanged.
func (dk DropKeep) IsNoop() bool {
	return dk.Drop == 0
}

func (dk DropKeep) pack() uint64 {
	return uint64(dk.Drop) | uint64(dk.Keep)<<16
}

func unpackDropKeep(v uint64) DropKeep {
	return DropKeep{Drop: uint16(v), Keep: uint16(v >> 16)}
}

// An Instruction is a single (opcode, operand) pair. The operand occupies
// eight bytes on the wire; its interpretation is fixed by the opcode.
type Instruction struct {
	Op  Opcode
	imm uint64
}

// New builds an instruction from an opcode and a raw operand. The caller is
// responsible for passing an operand of the opcode's expected kind.
func New(op Opcode, imm uint64) Instruction {
	return Instruction{Op: op, imm: imm}
}

func NewNullary(op Opcode) Instruction       { return Instruction{Op: op} }
func NewU32(op Opcode, v uint32) Instruction { return Instruction{Op: op, imm: uint64(v)} }
func NewI32(op Opcode, v int32) Instruction  { return Instruction{Op: op, imm: uint64(uint32(v))} }

func NewDropKeepOp(op Opcode, dk DropKeep) Instruction {
	return Instruction{Op: op, imm: dk.pack()}
}

func NewConst(op Opcode, v UntypedValue) Instruction {
	return Instruction{Op: op, imm: uint64(v)}
}

// Raw returns the operand bits verbatim.
func (i Instruction) Raw() uint64 { return i.imm }

// U32 returns the operand as an unsigned index (local depth, function index,
// table index, address offset, branch table target count, block fuel).
func (i Instruction) U32() uint32 { return uint32(i.imm) }

// I32 returns the operand as a signed branch offset.
func (i Instruction) I32() int32 { return int32(uint32(i.imm)) }

// Const returns the operand as an untyped constant.
func (i Instruction) Const() UntypedValue { return UntypedValue(i.imm) }

// DropKeep unpacks the operand as a (drop, keep) pair.
func (i Instruction) DropKeep() DropKeep { return unpackDropKeep(i.imm) }

// SetBranchOffset patches an unresolved branch offset in place.
func (i *Instruction) SetBranchOffset(offset int32) {
	i.imm = uint64(uint32(offset))
}

func (i Instruction) String() string {
	switch i.Op.Operand() {
	case OperandNone:
		return i.Op.String()
	case OperandU32:
		return fmt.Sprintf("%s %d", i.Op, i.U32())
	case OperandI32:
		return fmt.Sprintf("%s %+d", i.Op, i.I32())
	case OperandDropKeep:
		dk := i.DropKeep()
		return fmt.Sprintf("%s drop=%d keep=%d", i.Op, dk.Drop, dk.Keep)
	default:
		switch i.Op {
		case OpF32Const:
			return fmt.Sprintf("%s %g", i.Op, i.Const().F32())
		case OpF64Const:
			return fmt.Sprintf("%s %g", i.Op, i.Const().F64())
		}
		return fmt.Sprintf("%s %d", i.Op, i.Const().I64())
	}
}
