package isa

import "fmt"

// An Opcode identifies a single rWASM instruction. The byte values are part
// of the binary format and must not be reordered.
type Opcode byte

const (
	OpUnreachable Opcode = 0x00

	OpLocalGet Opcode = 0x01
	OpLocalSet Opcode = 0x02
	OpLocalTee Opcode = 0x03

	OpBr            Opcode = 0x04
	OpBrIfEqz       Opcode = 0x05
	OpBrIfNez       Opcode = 0x06
	OpBrAdjust      Opcode = 0x07
	OpBrAdjustIfNez Opcode = 0x08
	OpBrTable       Opcode = 0x09

	OpConsumeFuel Opcode = 0x0a

	OpReturn             Opcode = 0x0b
	OpReturnIfNez        Opcode = 0x0c
	OpReturnCallInternal Opcode = 0x0d
	OpReturnCall         Opcode = 0x0e
	OpReturnCallIndirect Opcode = 0x0f

	OpCallInternal   Opcode = 0x10
	OpCall           Opcode = 0x11
	OpCallIndirect   Opcode = 0x12
	OpSignatureCheck Opcode = 0x13

	OpDrop      Opcode = 0x14
	OpSelect    Opcode = 0x15
	OpGlobalGet Opcode = 0x16
	OpGlobalSet Opcode = 0x17

	OpI32Load    Opcode = 0x18
	OpI64Load    Opcode = 0x19
	OpF32Load    Opcode = 0x1a
	OpF64Load    Opcode = 0x1b
	OpI32Load8S  Opcode = 0x1c
	OpI32Load8U  Opcode = 0x1d
	OpI32Load16S Opcode = 0x1e
	OpI32Load16U Opcode = 0x1f
	OpI64Load8S  Opcode = 0x20
	OpI64Load8U  Opcode = 0x21
	OpI64Load16S Opcode = 0x22
	OpI64Load16U Opcode = 0x23
	OpI64Load32S Opcode = 0x24
	OpI64Load32U Opcode = 0x25

	OpI32Store   Opcode = 0x26
	OpI64Store   Opcode = 0x27
	OpF32Store   Opcode = 0x28
	OpF64Store   Opcode = 0x29
	OpI32Store8  Opcode = 0x2a
	OpI32Store16 Opcode = 0x2b
	OpI64Store8  Opcode = 0x2c
	OpI64Store16 Opcode = 0x2d
	OpI64Store32 Opcode = 0x2e

	OpMemorySize Opcode = 0x2f
	OpMemoryGrow Opcode = 0x30
	OpMemoryFill Opcode = 0x31
	OpMemoryCopy Opcode = 0x32
	OpMemoryInit Opcode = 0x33
	OpDataDrop   Opcode = 0x34

	OpTableSize Opcode = 0x35
	OpTableGrow Opcode = 0x36
	OpTableFill Opcode = 0x37
	OpTableGet  Opcode = 0x38
	OpTableSet  Opcode = 0x39
	OpTableCopy Opcode = 0x3a
	OpTableInit Opcode = 0x3b
	OpElemDrop  Opcode = 0x3c
	OpRefFunc   Opcode = 0x3d

	OpI32Const Opcode = 0x3e
	OpI64Const Opcode = 0x3f
	OpF32Const Opcode = 0x40
	OpF64Const Opcode = 0x41

	OpI32Eqz Opcode = 0x42
	OpI32Eq  Opcode = 0x43
	OpI32Ne  Opcode = 0x44
	OpI32LtS Opcode = 0x45
	OpI32LtU Opcode = 0x46
	OpI32GtS Opcode = 0x47
	OpI32GtU Opcode = 0x48
	OpI32LeS Opcode = 0x49
	OpI32LeU Opcode = 0x4a
	OpI32GeS Opcode = 0x4b
	OpI32GeU Opcode = 0x4c

	OpI64Eqz Opcode = 0x4d
	OpI64Eq  Opcode = 0x4e
	OpI64Ne  Opcode = 0x4f
	OpI64LtS Opcode = 0x50
	OpI64LtU Opcode = 0x51
	OpI64GtS Opcode = 0x52
	OpI64GtU Opcode = 0x53
	OpI64LeS Opcode = 0x54
	OpI64LeU Opcode = 0x55
	OpI64GeS Opcode = 0x56
	OpI64GeU Opcode = 0x57

	OpF32Eq Opcode = 0x58
	OpF32Ne Opcode = 0x59
	OpF32Lt Opcode = 0x5a
	OpF32Gt Opcode = 0x5b
	OpF32Le Opcode = 0x5c
	OpF32Ge Opcode = 0x5d

	OpF64Eq Opcode = 0x5e
	OpF64Ne Opcode = 0x5f
	OpF64Lt Opcode = 0x60
	OpF64Gt Opcode = 0x61
	OpF64Le Opcode = 0x62
	OpF64Ge Opcode = 0x63

	OpI32Clz    Opcode = 0x64
	OpI32Ctz    Opcode = 0x65
	OpI32Popcnt Opcode = 0x66
	OpI32Add    Opcode = 0x67
	OpI32Sub    Opcode = 0x68
	OpI32Mul    Opcode = 0x69
	OpI32DivS   Opcode = 0x6a
	OpI32DivU   Opcode = 0x6b
	OpI32RemS   Opcode = 0x6c
	OpI32RemU   Opcode = 0x6d
	OpI32And    Opcode = 0x6e
	OpI32Or     Opcode = 0x6f
	OpI32Xor    Opcode = 0x70
	OpI32Shl    Opcode = 0x71
	OpI32ShrS   Opcode = 0x72
	OpI32ShrU   Opcode = 0x73
	OpI32Rotl   Opcode = 0x74
	OpI32Rotr   Opcode = 0x75

	OpI64Clz    Opcode = 0x76
	OpI64Ctz    Opcode = 0x77
	OpI64Popcnt Opcode = 0x78
	OpI64Add    Opcode = 0x79
	OpI64Sub    Opcode = 0x7a
	OpI64Mul    Opcode = 0x7b
	OpI64DivS   Opcode = 0x7c
	OpI64DivU   Opcode = 0x7d
	OpI64RemS   Opcode = 0x7e
	OpI64RemU   Opcode = 0x7f
	OpI64And    Opcode = 0x80
	OpI64Or     Opcode = 0x81
	OpI64Xor    Opcode = 0x82
	OpI64Shl    Opcode = 0x83
	OpI64ShrS   Opcode = 0x84
	OpI64ShrU   Opcode = 0x85
	OpI64Rotl   Opcode = 0x86
	OpI64Rotr   Opcode = 0x87

	OpF32Abs      Opcode = 0x88
	OpF32Neg      Opcode = 0x89
	OpF32Ceil     Opcode = 0x8a
	OpF32Floor    Opcode = 0x8b
	OpF32Trunc    Opcode = 0x8c
	OpF32Nearest  Opcode = 0x8d
	OpF32Sqrt     Opcode = 0x8e
	OpF32Add      Opcode = 0x8f
	OpF32Sub      Opcode = 0x90
	OpF32Mul      Opcode = 0x91
	OpF32Div      Opcode = 0x92
	OpF32Min      Opcode = 0x93
	OpF32Max      Opcode = 0x94
	OpF32Copysign Opcode = 0x95

	OpF64Abs      Opcode = 0x96
	OpF64Neg      Opcode = 0x97
	OpF64Ceil     Opcode = 0x98
	OpF64Floor    Opcode = 0x99
	OpF64Trunc    Opcode = 0x9a
	OpF64Nearest  Opcode = 0x9b
	OpF64Sqrt     Opcode = 0x9c
	OpF64Add      Opcode = 0x9d
	OpF64Sub      Opcode = 0x9e
	OpF64Mul      Opcode = 0x9f
	OpF64Div      Opcode = 0xa0
	OpF64Min      Opcode = 0xa1
	OpF64Max      Opcode = 0xa2
	OpF64Copysign Opcode = 0xa3

	OpI32WrapI64     Opcode = 0xa4
	OpI32TruncF32S   Opcode = 0xa5
	OpI32TruncF32U   Opcode = 0xa6
	OpI32TruncF64S   Opcode = 0xa7
	OpI32TruncF64U   Opcode = 0xa8
	OpI64ExtendI32S  Opcode = 0xa9
	OpI64ExtendI32U  Opcode = 0xaa
	OpI64TruncF32S   Opcode = 0xab
	OpI64TruncF32U   Opcode = 0xac
	OpI64TruncF64S   Opcode = 0xad
	OpI64TruncF64U   Opcode = 0xae
	OpF32ConvertI32S Opcode = 0xaf
	OpF32ConvertI32U Opcode = 0xb0
	OpF32ConvertI64S Opcode = 0xb1
	OpF32ConvertI64U Opcode = 0xb2
	OpF32DemoteF64   Opcode = 0xb3
	OpF64ConvertI32S Opcode = 0xb4
	OpF64ConvertI32U Opcode = 0xb5
	OpF64ConvertI64S Opcode = 0xb6
	OpF64ConvertI64U Opcode = 0xb7
	OpF64PromoteF32  Opcode = 0xb8

	OpI32Extend8S  Opcode = 0xb9
	OpI32Extend16S Opcode = 0xba
	OpI64Extend8S  Opcode = 0xbb
	OpI64Extend16S Opcode = 0xbc
	OpI64Extend32S Opcode = 0xbd

	OpI32TruncSatF32S Opcode = 0xbe
	OpI32TruncSatF32U Opcode = 0xbf
	OpI32TruncSatF64S Opcode = 0xc0
	OpI32TruncSatF64U Opcode = 0xc1
	OpI64TruncSatF32S Opcode = 0xc2
	OpI64TruncSatF32U Opcode = 0xc3
	OpI64TruncSatF64S Opcode = 0xc4
	OpI64TruncSatF64U Opcode = 0xc5

	numOpcodes = 0xc6
)

// An OperandKind describes how an instruction's 8-byte operand is
// interpreted.
type OperandKind byte

const (
	OperandNone     OperandKind = iota
	OperandU32                  // indices, block fuel, address offsets, table sizes
	OperandI32                  // signed PC-relative branch offsets
	OperandU64                  // constants (I32/I64/F32/F64 bit patterns)
	OperandDropKeep             // two packed u16: drop count, keep count
)

var operandKinds = [numOpcodes]OperandKind{
	OpLocalGet: OperandU32, OpLocalSet: OperandU32, OpLocalTee: OperandU32,
	OpBr: OperandI32, OpBrIfEqz: OperandI32, OpBrIfNez: OperandI32,
	OpBrAdjust: OperandI32, OpBrAdjustIfNez: OperandI32,
	OpBrTable:     OperandU32,
	OpConsumeFuel: OperandU32,
	OpReturn:      OperandDropKeep, OpReturnIfNez: OperandDropKeep,
	OpReturnCallInternal: OperandU32, OpReturnCall: OperandU32,
	OpReturnCallIndirect: OperandU32,
	OpCallInternal:       OperandU32, OpCall: OperandU32,
	OpCallIndirect: OperandU32, OpSignatureCheck: OperandU32,
	OpGlobalGet: OperandU32, OpGlobalSet: OperandU32,
	OpI32Load: OperandU32, OpI64Load: OperandU32, OpF32Load: OperandU32,
	OpF64Load: OperandU32, OpI32Load8S: OperandU32, OpI32Load8U: OperandU32,
	OpI32Load16S: OperandU32, OpI32Load16U: OperandU32,
	OpI64Load8S: OperandU32, OpI64Load8U: OperandU32,
	OpI64Load16S: OperandU32, OpI64Load16U: OperandU32,
	OpI64Load32S: OperandU32, OpI64Load32U: OperandU32,
	OpI32Store: OperandU32, OpI64Store: OperandU32, OpF32Store: OperandU32,
	OpF64Store: OperandU32, OpI32Store8: OperandU32, OpI32Store16: OperandU32,
	OpI64Store8: OperandU32, OpI64Store16: OperandU32, OpI64Store32: OperandU32,
	OpMemoryInit: OperandU32, OpDataDrop: OperandU32,
	OpTableSize: OperandU32, OpTableGrow: OperandU32, OpTableFill: OperandU32,
	OpTableGet: OperandU32, OpTableSet: OperandU32, OpTableCopy: OperandU32,
	OpTableInit: OperandU32, OpElemDrop: OperandU32, OpRefFunc: OperandU32,
	OpI32Const: OperandU64, OpI64Const: OperandU64,
	OpF32Const: OperandU64, OpF64Const: OperandU64,
}

// Operand returns the operand interpretation for the opcode.
func (op Opcode) Operand() OperandKind {
	if int(op) >= numOpcodes {
		return OperandNone
	}
	return operandKinds[op]
}

// Valid reports whether the byte value names a known opcode.
func (op Opcode) Valid() bool {
	return int(op) < numOpcodes
}

var opcodeNames = [numOpcodes]string{
	OpUnreachable: "unreachable",
	OpLocalGet:    "local.get", OpLocalSet: "local.set", OpLocalTee: "local.tee",
	OpBr: "br", OpBrIfEqz: "br_if_eqz", OpBrIfNez: "br_if_nez",
	OpBrAdjust: "br_adjust", OpBrAdjustIfNez: "br_adjust_if_nez",
	OpBrTable:     "br_table",
	OpConsumeFuel: "consume_fuel",
	OpReturn:      "return", OpReturnIfNez: "return_if_nez",
	OpReturnCallInternal: "return_call_internal", OpReturnCall: "return_call",
	OpReturnCallIndirect: "return_call_indirect",
	OpCallInternal:       "call_internal", OpCall: "call",
	OpCallIndirect: "call_indirect", OpSignatureCheck: "signature_check",
	OpDrop: "drop", OpSelect: "select",
	OpGlobalGet: "global.get", OpGlobalSet: "global.set",
	OpI32Load: "i32.load", OpI64Load: "i64.load",
	OpF32Load: "f32.load", OpF64Load: "f64.load",
	OpI32Load8S: "i32.load8_s", OpI32Load8U: "i32.load8_u",
	OpI32Load16S: "i32.load16_s", OpI32Load16U: "i32.load16_u",
	OpI64Load8S: "i64.load8_s", OpI64Load8U: "i64.load8_u",
	OpI64Load16S: "i64.load16_s", OpI64Load16U: "i64.load16_u",
	OpI64Load32S: "i64.load32_s", OpI64Load32U: "i64.load32_u",
	OpI32Store: "i32.store", OpI64Store: "i64.store",
	OpF32Store: "f32.store", OpF64Store: "f64.store",
	OpI32Store8: "i32.store8", OpI32Store16: "i32.store16",
	OpI64Store8: "i64.store8", OpI64Store16: "i64.store16",
	OpI64Store32: "i64.store32",
	OpMemorySize: "memory.size", OpMemoryGrow: "memory.grow",
	OpMemoryFill: "memory.fill", OpMemoryCopy: "memory.copy",
	OpMemoryInit: "memory.init", OpDataDrop: "data.drop",
	OpTableSize: "table.size", OpTableGrow: "table.grow",
	OpTableFill: "table.fill", OpTableGet: "table.get",
	OpTableSet: "table.set", OpTableCopy: "table.copy",
	OpTableInit: "table.init", OpElemDrop: "elem.drop",
	OpRefFunc:  "ref.func",
	OpI32Const: "i32.const", OpI64Const: "i64.const",
	OpF32Const: "f32.const", OpF64Const: "f64.const",
	OpI32Eqz: "i32.eqz", OpI32Eq: "i32.eq", OpI32Ne: "i32.ne",
	OpI32LtS: "i32.lt_s", OpI32LtU: "i32.lt_u", OpI32GtS: "i32.gt_s",
	OpI32GtU: "i32.gt_u", OpI32LeS: "i32.le_s", OpI32LeU: "i32.le_u",
	OpI32GeS: "i32.ge_s", OpI32GeU: "i32.ge_u",
	OpI64Eqz: "i64.eqz", OpI64Eq: "i64.eq", OpI64Ne: "i64.ne",
	OpI64LtS: "i64.lt_s", OpI64LtU: "i64.lt_u", OpI64GtS: "i64.gt_s",
	OpI64GtU: "i64.gt_u", OpI64LeS: "i64.le_s", OpI64LeU: "i64.le_u",
	OpI64GeS: "i64.ge_s", OpI64GeU: "i64.ge_u",
	OpF32Eq: "f32.eq", OpF32Ne: "f32.ne", OpF32Lt: "f32.lt",
	OpF32Gt: "f32.gt", OpF32Le: "f32.le", OpF32Ge: "f32.ge",
	OpF64Eq: "f64.eq", OpF64Ne: "f64.ne", OpF64Lt: "f64.lt",
	OpF64Gt: "f64.gt", OpF64Le: "f64.le", OpF64Ge: "f64.ge",
	OpI32Clz: "i32.clz", OpI32Ctz: "i32.ctz", OpI32Popcnt: "i32.popcnt",
	OpI32Add: "i32.add", OpI32Sub: "i32.sub", OpI32Mul: "i32.mul",
	OpI32DivS: "i32.div_s", OpI32DivU: "i32.div_u",
	OpI32RemS: "i32.rem_s", OpI32RemU: "i32.rem_u",
	OpI32And: "i32.and", OpI32Or: "i32.or", OpI32Xor: "i32.xor",
	OpI32Shl: "i32.shl", OpI32ShrS: "i32.shr_s", OpI32ShrU: "i32.shr_u",
	OpI32Rotl: "i32.rotl", OpI32Rotr: "i32.rotr",
	OpI64Clz: "i64.clz", OpI64Ctz: "i64.ctz", OpI64Popcnt: "i64.popcnt",
	OpI64Add: "i64.add", OpI64Sub: "i64.sub", OpI64Mul: "i64.mul",
	OpI64DivS: "i64.div_s", OpI64DivU: "i64.div_u",
	OpI64RemS: "i64.rem_s", OpI64RemU: "i64.rem_u",
	OpI64And: "i64.and", OpI64Or: "i64.or", OpI64Xor: "i64.xor",
	OpI64Shl: "i64.shl", OpI64ShrS: "i64.shr_s", OpI64ShrU: "i64.shr_u",
	OpI64Rotl: "i64.rotl", OpI64Rotr: "i64.rotr",
	OpF32Abs: "f32.abs", OpF32Neg: "f32.neg", OpF32Ceil: "f32.ceil",
	OpF32Floor: "f32.floor", OpF32Trunc: "f32.trunc",
	OpF32Nearest: "f32.nearest", OpF32Sqrt: "f32.sqrt",
	OpF32Add: "f32.add", OpF32Sub: "f32.sub", OpF32Mul: "f32.mul",
	OpF32Div: "f32.div", OpF32Min: "f32.min", OpF32Max: "f32.max",
	OpF32Copysign: "f32.copysign",
	OpF64Abs:      "f64.abs", OpF64Neg: "f64.neg", OpF64Ceil: "f64.ceil",
	OpF64Floor: "f64.floor", OpF64Trunc: "f64.trunc",
	OpF64Nearest: "f64.nearest", OpF64Sqrt: "f64.sqrt",
	OpF64Add: "f64.add", OpF64Sub: "f64.sub", OpF64Mul: "f64.mul",
	OpF64Div: "f64.div", OpF64Min: "f64.min", OpF64Max: "f64.max",
	OpF64Copysign:  "f64.copysign",
	OpI32WrapI64:   "i32.wrap_i64",
	OpI32TruncF32S: "i32.trunc_f32_s", OpI32TruncF32U: "i32.trunc_f32_u",
	OpI32TruncF64S: "i32.trunc_f64_s", OpI32TruncF64U: "i32.trunc_f64_u",
	OpI64ExtendI32S: "i64.extend_i32_s", OpI64ExtendI32U: "i64.extend_i32_u",
	OpI64TruncF32S: "i64.trunc_f32_s", OpI64TruncF32U: "i64.trunc_f32_u",
	OpI64TruncF64S: "i64.trunc_f64_s", OpI64TruncF64U: "i64.trunc_f64_u",
	OpF32ConvertI32S: "f32.convert_i32_s", OpF32ConvertI32U: "f32.convert_i32_u",
	OpF32ConvertI64S: "f32.convert_i64_s", OpF32ConvertI64U: "f32.convert_i64_u",
	OpF32DemoteF64:   "f32.demote_f64",
	OpF64ConvertI32S: "f64.convert_i32_s", OpF64ConvertI32U: "f64.convert_i32_u",
	OpF64ConvertI64S: "f64.convert_i64_s", OpF64ConvertI64U: "f64.convert_i64_u",
	OpF64PromoteF32: "f64.promote_f32",
	OpI32Extend8S:   "i32.extend8_s", OpI32Extend16S: "i32.extend16_s",
	OpI64Extend8S: "i64.extend8_s", OpI64Extend16S: "i64.extend16_s",
	OpI64Extend32S:    "i64.extend32_s",
	OpI32TruncSatF32S: "i32.trunc_sat_f32_s", OpI32TruncSatF32U: "i32.trunc_sat_f32_u",
	OpI32TruncSatF64S: "i32.trunc_sat_f64_s", OpI32TruncSatF64U: "i32.trunc_sat_f64_u",
	OpI64TruncSatF32S: "i64.trunc_sat_f32_s", OpI64TruncSatF32U: "i64.trunc_sat_f32_u",
	OpI64TruncSatF64S: "i64.trunc_sat_f64_s", OpI64TruncSatF64U: "i64.trunc_sat_f64_u",
}

func (op Opcode) String() string {
	if int(op) < numOpcodes && opcodeNames[op] != "" {
		return opcodeNames[op]
	}
	return fmt.Sprintf("opcode(%#02x)", byte(op))
}
