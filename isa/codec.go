package isa

import (
	"encoding/binary"
	"fmt"
)

// SlotSize is the size of a single encoded instruction: one opcode byte
// followed by exactly eight operand bytes, zero-padded when unused.
const SlotSize = 9

// EncodeSlot appends the 9-byte encoding of instr to dst.
func EncodeSlot(dst []byte, instr Instruction) []byte {
	var slot [SlotSize]byte
	slot[0] = byte(instr.Op)
	switch instr.Op.Operand() {
	case OperandNone:
		// operand bytes stay zero
	case OperandU32, OperandI32:
		binary.LittleEndian.PutUint32(slot[1:], uint32(instr.imm))
	case OperandDropKeep:
		dk := instr.DropKeep()
		binary.LittleEndian.PutUint16(slot[1:], dk.Drop)
		binary.LittleEndian.PutUint16(slot[3:], dk.Keep)
	case OperandU64:
		binary.LittleEndian.PutUint64(slot[1:], instr.imm)
	}
	return append(dst, slot[:]...)
}

// DecodeSlot decodes a single instruction from the first 9 bytes of src.
// Nonzero padding bytes are rejected.
func DecodeSlot(src []byte) (Instruction, error) {
	if len(src) < SlotSize {
		return Instruction{}, fmt.Errorf("truncated instruction: %d bytes", len(src))
	}
	op := Opcode(src[0])
	if !op.Valid() {
		return Instruction{}, fmt.Errorf("unknown opcode %#02x", src[0])
	}
	operand := src[1:SlotSize]
	switch op.Operand() {
	case OperandNone:
		if !allZero(operand) {
			return Instruction{}, fmt.Errorf("%s: nonzero operand padding", op)
		}
		return NewNullary(op), nil
	case OperandU32, OperandI32:
		if !allZero(operand[4:]) {
			return Instruction{}, fmt.Errorf("%s: nonzero operand padding", op)
		}
		return New(op, uint64(binary.LittleEndian.Uint32(operand))), nil
	case OperandDropKeep:
		if !allZero(operand[4:]) {
			return Instruction{}, fmt.Errorf("%s: nonzero operand padding", op)
		}
		dk := DropKeep{
			Drop: binary.LittleEndian.Uint16(operand),
			Keep: binary.LittleEndian.Uint16(operand[2:]),
		}
		return NewDropKeepOp(op, dk), nil
	default:
		return New(op, binary.LittleEndian.Uint64(operand)), nil
	}
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
