package interpreter

import "github.com/fluentlabs-xyz/rwasm/isa"

// A handler executes a single opcode. Handlers advance the instruction
// pointer themselves; branch and call handlers set it outright.
type handler func(*Executor, isa.Instruction) error

// dispatch is the jump table indexed by opcode byte.
var dispatch = [0xc6]handler{
	isa.OpUnreachable: execUnreachable,

	isa.OpLocalGet: execLocalGet,
	isa.OpLocalSet: execLocalSet,
	isa.OpLocalTee: execLocalTee,

	isa.OpBr:            execBr,
	isa.OpBrIfEqz:       execBrIfEqz,
	isa.OpBrIfNez:       execBrIfNez,
	isa.OpBrAdjust:      execBrAdjust,
	isa.OpBrAdjustIfNez: execBrAdjustIfNez,
	isa.OpBrTable:       execBrTable,

	isa.OpConsumeFuel: execConsumeFuel,

	isa.OpReturn:             execReturn,
	isa.OpReturnIfNez:        execReturnIfNez,
	isa.OpReturnCallInternal: execReturnCallInternal,
	isa.OpReturnCall:         execReturnCall,
	isa.OpReturnCallIndirect: execReturnCallIndirect,

	isa.OpCallInternal:   execCallInternal,
	isa.OpCall:           execCall,
	isa.OpCallIndirect:   execCallIndirect,
	isa.OpSignatureCheck: execSignatureCheck,

	isa.OpDrop:      execDrop,
	isa.OpSelect:    execSelect,
	isa.OpGlobalGet: execGlobalGet,
	isa.OpGlobalSet: execGlobalSet,

	isa.OpI32Load:    execLoad,
	isa.OpI64Load:    execLoad,
	isa.OpF32Load:    execLoad,
	isa.OpF64Load:    execLoad,
	isa.OpI32Load8S:  execLoad,
	isa.OpI32Load8U:  execLoad,
	isa.OpI32Load16S: execLoad,
	isa.OpI32Load16U: execLoad,
	isa.OpI64Load8S:  execLoad,
	isa.OpI64Load8U:  execLoad,
	isa.OpI64Load16S: execLoad,
	isa.OpI64Load16U: execLoad,
	isa.OpI64Load32S: execLoad,
	isa.OpI64Load32U: execLoad,

	isa.OpI32Store:   execStore,
	isa.OpI64Store:   execStore,
	isa.OpF32Store:   execStore,
	isa.OpF64Store:   execStore,
	isa.OpI32Store8:  execStore,
	isa.OpI32Store16: execStore,
	isa.OpI64Store8:  execStore,
	isa.OpI64Store16: execStore,
	isa.OpI64Store32: execStore,

	isa.OpMemorySize: execMemorySize,
	isa.OpMemoryGrow: execMemoryGrow,
	isa.OpMemoryFill: execMemoryFill,
	isa.OpMemoryCopy: execMemoryCopy,
	isa.OpMemoryInit: execMemoryInit,
	isa.OpDataDrop:   execDataDrop,

	isa.OpTableSize: execTableSize,
	isa.OpTableGrow: execTableGrow,
	isa.OpTableFill: execTableFill,
	isa.OpTableGet:  execTableGet,
	isa.OpTableSet:  execTableSet,
	isa.OpTableCopy: execTableCopy,
	isa.OpTableInit: execTableInit,
	isa.OpElemDrop:  execElemDrop,
	isa.OpRefFunc:   execRefFunc,

	isa.OpI32Const: execConst,
	isa.OpI64Const: execConst,
	isa.OpF32Const: execConst,
	isa.OpF64Const: execConst,

	isa.OpI32Eqz: unaryOp(isa.UntypedValue.I32Eqz),
	isa.OpI32Eq:  binaryOp(isa.UntypedValue.I32Eq),
	isa.OpI32Ne:  binaryOp(isa.UntypedValue.I32Ne),
	isa.OpI32LtS: binaryOp(isa.UntypedValue.I32LtS),
	isa.OpI32LtU: binaryOp(isa.UntypedValue.I32LtU),
	isa.OpI32GtS: binaryOp(isa.UntypedValue.I32GtS),
	isa.OpI32GtU: binaryOp(isa.UntypedValue.I32GtU),
	isa.OpI32LeS: binaryOp(isa.UntypedValue.I32LeS),
	isa.OpI32LeU: binaryOp(isa.UntypedValue.I32LeU),
	isa.OpI32GeS: binaryOp(isa.UntypedValue.I32GeS),
	isa.OpI32GeU: binaryOp(isa.UntypedValue.I32GeU),

	isa.OpI64Eqz: unaryOp(isa.UntypedValue.I64Eqz),
	isa.OpI64Eq:  binaryOp(isa.UntypedValue.I64Eq),
	isa.OpI64Ne:  binaryOp(isa.UntypedValue.I64Ne),
	isa.OpI64LtS: binaryOp(isa.UntypedValue.I64LtS),
	isa.OpI64LtU: binaryOp(isa.UntypedValue.I64LtU),
	isa.OpI64GtS: binaryOp(isa.UntypedValue.I64GtS),
	isa.OpI64GtU: binaryOp(isa.UntypedValue.I64GtU),
	isa.OpI64LeS: binaryOp(isa.UntypedValue.I64LeS),
	isa.OpI64LeU: binaryOp(isa.UntypedValue.I64LeU),
	isa.OpI64GeS: binaryOp(isa.UntypedValue.I64GeS),
	isa.OpI64GeU: binaryOp(isa.UntypedValue.I64GeU),

	isa.OpF32Eq: binaryOp(isa.UntypedValue.F32Eq),
	isa.OpF32Ne: binaryOp(isa.UntypedValue.F32Ne),
	isa.OpF32Lt: binaryOp(isa.UntypedValue.F32Lt),
	isa.OpF32Gt: binaryOp(isa.UntypedValue.F32Gt),
	isa.OpF32Le: binaryOp(isa.UntypedValue.F32Le),
	isa.OpF32Ge: binaryOp(isa.UntypedValue.F32Ge),

	isa.OpF64Eq: binaryOp(isa.UntypedValue.F64Eq),
	isa.OpF64Ne: binaryOp(isa.UntypedValue.F64Ne),
	isa.OpF64Lt: binaryOp(isa.UntypedValue.F64Lt),
	isa.OpF64Gt: binaryOp(isa.UntypedValue.F64Gt),
	isa.OpF64Le: binaryOp(isa.UntypedValue.F64Le),
	isa.OpF64Ge: binaryOp(isa.UntypedValue.F64Ge),

	isa.OpI32Clz:    unaryOp(isa.UntypedValue.I32Clz),
	isa.OpI32Ctz:    unaryOp(isa.UntypedValue.I32Ctz),
	isa.OpI32Popcnt: unaryOp(isa.UntypedValue.I32Popcnt),
	isa.OpI32Add:    binaryOp(isa.UntypedValue.I32Add),
	isa.OpI32Sub:    binaryOp(isa.UntypedValue.I32Sub),
	isa.OpI32Mul:    binaryOp(isa.UntypedValue.I32Mul),
	isa.OpI32DivS:   binaryTrapOp(isa.UntypedValue.I32DivS),
	isa.OpI32DivU:   binaryTrapOp(isa.UntypedValue.I32DivU),
	isa.OpI32RemS:   binaryTrapOp(isa.UntypedValue.I32RemS),
	isa.OpI32RemU:   binaryTrapOp(isa.UntypedValue.I32RemU),
	isa.OpI32And:    binaryOp(isa.UntypedValue.I32And),
	isa.OpI32Or:     binaryOp(isa.UntypedValue.I32Or),
	isa.OpI32Xor:    binaryOp(isa.UntypedValue.I32Xor),
	isa.OpI32Shl:    binaryOp(isa.UntypedValue.I32Shl),
	isa.OpI32ShrS:   binaryOp(isa.UntypedValue.I32ShrS),
	isa.OpI32ShrU:   binaryOp(isa.UntypedValue.I32ShrU),
	isa.OpI32Rotl:   binaryOp(isa.UntypedValue.I32Rotl),
	isa.OpI32Rotr:   binaryOp(isa.UntypedValue.I32Rotr),

	isa.OpI64Clz:    unaryOp(isa.UntypedValue.I64Clz),
	isa.OpI64Ctz:    unaryOp(isa.UntypedValue.I64Ctz),
	isa.OpI64Popcnt: unaryOp(isa.UntypedValue.I64Popcnt),
	isa.OpI64Add:    binaryOp(isa.UntypedValue.I64Add),
	isa.OpI64Sub:    binaryOp(isa.UntypedValue.I64Sub),
	isa.OpI64Mul:    binaryOp(isa.UntypedValue.I64Mul),
	isa.OpI64DivS:   binaryTrapOp(isa.UntypedValue.I64DivS),
	isa.OpI64DivU:   binaryTrapOp(isa.UntypedValue.I64DivU),
	isa.OpI64RemS:   binaryTrapOp(isa.UntypedValue.I64RemS),
	isa.OpI64RemU:   binaryTrapOp(isa.UntypedValue.I64RemU),
	isa.OpI64And:    binaryOp(isa.UntypedValue.I64And),
	isa.OpI64Or:     binaryOp(isa.UntypedValue.I64Or),
	isa.OpI64Xor:    binaryOp(isa.UntypedValue.I64Xor),
	isa.OpI64Shl:    binaryOp(isa.UntypedValue.I64Shl),
	isa.OpI64ShrS:   binaryOp(isa.UntypedValue.I64ShrS),
	isa.OpI64ShrU:   binaryOp(isa.UntypedValue.I64ShrU),
	isa.OpI64Rotl:   binaryOp(isa.UntypedValue.I64Rotl),
	isa.OpI64Rotr:   binaryOp(isa.UntypedValue.I64Rotr),

	isa.OpF32Abs:      unaryOp(isa.UntypedValue.F32Abs),
	isa.OpF32Neg:      unaryOp(isa.UntypedValue.F32Neg),
	isa.OpF32Ceil:     unaryOp(isa.UntypedValue.F32Ceil),
	isa.OpF32Floor:    unaryOp(isa.UntypedValue.F32Floor),
	isa.OpF32Trunc:    unaryOp(isa.UntypedValue.F32Trunc),
	isa.OpF32Nearest:  unaryOp(isa.UntypedValue.F32Nearest),
	isa.OpF32Sqrt:     unaryOp(isa.UntypedValue.F32Sqrt),
	isa.OpF32Add:      binaryOp(isa.UntypedValue.F32Add),
	isa.OpF32Sub:      binaryOp(isa.UntypedValue.F32Sub),
	isa.OpF32Mul:      binaryOp(isa.UntypedValue.F32Mul),
	isa.OpF32Div:      binaryOp(isa.UntypedValue.F32Div),
	isa.OpF32Min:      binaryOp(isa.UntypedValue.F32Min),
	isa.OpF32Max:      binaryOp(isa.UntypedValue.F32Max),
	isa.OpF32Copysign: binaryOp(isa.UntypedValue.F32Copysign),

	isa.OpF64Abs:      unaryOp(isa.UntypedValue.F64Abs),
	isa.OpF64Neg:      unaryOp(isa.UntypedValue.F64Neg),
	isa.OpF64Ceil:     unaryOp(isa.UntypedValue.F64Ceil),
	isa.OpF64Floor:    unaryOp(isa.UntypedValue.F64Floor),
	isa.OpF64Trunc:    unaryOp(isa.UntypedValue.F64Trunc),
	isa.OpF64Nearest:  unaryOp(isa.UntypedValue.F64Nearest),
	isa.OpF64Sqrt:     unaryOp(isa.UntypedValue.F64Sqrt),
	isa.OpF64Add:      binaryOp(isa.UntypedValue.F64Add),
	isa.OpF64Sub:      binaryOp(isa.UntypedValue.F64Sub),
	isa.OpF64Mul:      binaryOp(isa.UntypedValue.F64Mul),
	isa.OpF64Div:      binaryOp(isa.UntypedValue.F64Div),
	isa.OpF64Min:      binaryOp(isa.UntypedValue.F64Min),
	isa.OpF64Max:      binaryOp(isa.UntypedValue.F64Max),
	isa.OpF64Copysign: binaryOp(isa.UntypedValue.F64Copysign),

	isa.OpI32WrapI64:     unaryOp(isa.UntypedValue.I32WrapI64),
	isa.OpI32TruncF32S:   unaryTrapOp(isa.UntypedValue.I32TruncF32S),
	isa.OpI32TruncF32U:   unaryTrapOp(isa.UntypedValue.I32TruncF32U),
	isa.OpI32TruncF64S:   unaryTrapOp(isa.UntypedValue.I32TruncF64S),
	isa.OpI32TruncF64U:   unaryTrapOp(isa.UntypedValue.I32TruncF64U),
	isa.OpI64ExtendI32S:  unaryOp(isa.UntypedValue.I64ExtendI32S),
	isa.OpI64ExtendI32U:  unaryOp(isa.UntypedValue.I64ExtendI32U),
	isa.OpI64TruncF32S:   unaryTrapOp(isa.UntypedValue.I64TruncF32S),
	isa.OpI64TruncF32U:   unaryTrapOp(isa.UntypedValue.I64TruncF32U),
	isa.OpI64TruncF64S:   unaryTrapOp(isa.UntypedValue.I64TruncF64S),
	isa.OpI64TruncF64U:   unaryTrapOp(isa.UntypedValue.I64TruncF64U),
	isa.OpF32ConvertI32S: unaryOp(isa.UntypedValue.F32ConvertI32S),
	isa.OpF32ConvertI32U: unaryOp(isa.UntypedValue.F32ConvertI32U),
	isa.OpF32ConvertI64S: unaryOp(isa.UntypedValue.F32ConvertI64S),
	isa.OpF32ConvertI64U: unaryOp(isa.UntypedValue.F32ConvertI64U),
	isa.OpF32DemoteF64:   unaryOp(isa.UntypedValue.F32DemoteF64),
	isa.OpF64ConvertI32S: unaryOp(isa.UntypedValue.F64ConvertI32S),
	isa.OpF64ConvertI32U: unaryOp(isa.UntypedValue.F64ConvertI32U),
	isa.OpF64ConvertI64S: unaryOp(isa.UntypedValue.F64ConvertI64S),
	isa.OpF64ConvertI64U: unaryOp(isa.UntypedValue.F64ConvertI64U),
	isa.OpF64PromoteF32:  unaryOp(isa.UntypedValue.F64PromoteF32),

	isa.OpI32Extend8S:  unaryOp(isa.UntypedValue.I32Extend8S),
	isa.OpI32Extend16S: unaryOp(isa.UntypedValue.I32Extend16S),
	isa.OpI64Extend8S:  unaryOp(isa.UntypedValue.I64Extend8S),
	isa.OpI64Extend16S: unaryOp(isa.UntypedValue.I64Extend16S),
	isa.OpI64Extend32S: unaryOp(isa.UntypedValue.I64Extend32S),

	isa.OpI32TruncSatF32S: unaryOp(isa.UntypedValue.I32TruncSatF32S),
	isa.OpI32TruncSatF32U: unaryOp(isa.UntypedValue.I32TruncSatF32U),
	isa.OpI32TruncSatF64S: unaryOp(isa.UntypedValue.I32TruncSatF64S),
	isa.OpI32TruncSatF64U: unaryOp(isa.UntypedValue.I32TruncSatF64U),
	isa.OpI64TruncSatF32S: unaryOp(isa.UntypedValue.I64TruncSatF32S),
	isa.OpI64TruncSatF32U: unaryOp(isa.UntypedValue.I64TruncSatF32U),
	isa.OpI64TruncSatF64S: unaryOp(isa.UntypedValue.I64TruncSatF64S),
	isa.OpI64TruncSatF64U: unaryOp(isa.UntypedValue.I64TruncSatF64U),
}
