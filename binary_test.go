package rwasm

import (
	"encoding/binary"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/fluentlabs-xyz/rwasm/isa"
)

func testModule() *Module {
	return &Module{
		Code: []isa.Instruction{
			isa.NewConst(isa.OpI32Const, isa.ValueFromI32(100)),
			isa.NewConst(isa.OpI32Const, isa.ValueFromI32(20)),
			isa.NewNullary(isa.OpI32Add),
			isa.NewNullary(isa.OpDrop),
			isa.NewDropKeepOp(isa.OpReturn, isa.DropKeepNone),
		},
		MemorySection:  []byte{1, 2, 3, 4},
		ElementSection: []uint32{5, 6, 7},
		FuncLengths:    []uint32{5},
	}
}

func TestEncodeHeaderLayout(t *testing.T) {
	m := testModule()
	encoded := m.Encode()

	require.Equal(t, []byte{0xef, 0x52, 0x01}, encoded[:3])

	// header TOC: four sections in canonical order, then the end marker
	pos := 3
	wantLengths := []uint32{
		uint32(len(m.Code) * isa.SlotSize),
		uint32(len(m.MemorySection)),
		uint32(len(m.FuncLengths) * 4),
		uint32(len(m.ElementSection) * 4),
	}
	for i, id := range []byte{0x01, 0x02, 0x03, 0x04} {
		require.Equal(t, id, encoded[pos])
		require.Equal(t, wantLengths[i], binary.LittleEndian.Uint32(encoded[pos+1:]))
		pos += 5
	}
	require.Equal(t, byte(0x00), encoded[pos])
}

func TestInstructionAlignment(t *testing.T) {
	m := testModule()
	encoded := m.Encode()
	headerSize := 3 + 4*5 + 1
	codeLen := binary.LittleEndian.Uint32(encoded[4:])
	require.Equal(t, uint32(len(m.Code)*isa.SlotSize), codeLen)
	require.Equal(t, 0, int(codeLen)%isa.SlotSize)
	require.Equal(t, headerSize+int(codeLen)+len(m.MemorySection)+
		len(m.FuncLengths)*4+len(m.ElementSection)*4, len(encoded))
}

func TestRoundTrip(t *testing.T) {
	m := testModule()
	decoded, err := Decode(m.Encode())
	require.NoError(t, err)
	require.Equal(t, m, decoded)
}

func TestDecodeErrors(t *testing.T) {
	valid := testModule().Encode()

	t.Run("bad magic", func(t *testing.T) {
		corrupt := append([]byte(nil), valid...)
		corrupt[0] = 0x00
		_, err := Decode(corrupt)
		require.Error(t, err)
	})

	t.Run("bad version", func(t *testing.T) {
		corrupt := append([]byte(nil), valid...)
		corrupt[2] = 0x02
		_, err := Decode(corrupt)
		require.Error(t, err)
	})

	t.Run("unknown section id", func(t *testing.T) {
		corrupt := append([]byte(nil), valid...)
		corrupt[3] = 0x07
		_, err := Decode(corrupt)
		require.Error(t, err)
	})

	t.Run("repeated section id", func(t *testing.T) {
		corrupt := append([]byte(nil), valid...)
		corrupt[8] = 0x01
		_, err := Decode(corrupt)
		require.Error(t, err)
	})

	t.Run("truncated final section", func(t *testing.T) {
		_, err := Decode(valid[:len(valid)-2])
		require.Error(t, err)
	})

	t.Run("trailing bytes", func(t *testing.T) {
		_, err := Decode(append(append([]byte(nil), valid...), 0xff))
		require.Error(t, err)
	})

	t.Run("nonzero operand padding", func(t *testing.T) {
		corrupt := append([]byte(nil), valid...)
		headerSize := 3 + 4*5 + 1
		// I32Add is the third slot; its operand must be all zero
		corrupt[headerSize+2*isa.SlotSize+3] = 0x01
		_, err := Decode(corrupt)
		require.Error(t, err)
	})

	t.Run("length mismatch", func(t *testing.T) {
		m := testModule()
		m.FuncLengths = []uint32{4}
		_, err := Decode(m.Encode())
		require.Error(t, err)
	})
}

var slotOpcodes = []isa.Opcode{
	isa.OpUnreachable, isa.OpDrop, isa.OpSelect, isa.OpI32Add, isa.OpF64Sqrt,
	isa.OpLocalGet, isa.OpGlobalSet, isa.OpCallInternal, isa.OpTableGet,
	isa.OpConsumeFuel, isa.OpI32Load, isa.OpI64Store32,
	isa.OpBr, isa.OpBrIfEqz, isa.OpBrAdjust,
	isa.OpReturn, isa.OpReturnIfNez,
	isa.OpI32Const, isa.OpI64Const, isa.OpF32Const, isa.OpF64Const,
}

func genInstruction() gopter.Gen {
	return gen.UInt64().Map(func(seed uint64) isa.Instruction {
		op := slotOpcodes[seed%uint64(len(slotOpcodes))]
		imm := seed >> 5
		switch op.Operand() {
		case isa.OperandU32:
			return isa.NewU32(op, uint32(imm))
		case isa.OperandI32:
			return isa.NewI32(op, int32(uint32(imm)))
		case isa.OperandDropKeep:
			dk := isa.DropKeep{Drop: uint16(imm), Keep: uint16(imm >> 16)}
			return isa.NewDropKeepOp(op, dk)
		case isa.OperandU64:
			return isa.NewConst(op, isa.UntypedValue(imm))
		default:
			return isa.NewNullary(op)
		}
	})
}

func TestRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("decode(encode(m)) == m", prop.ForAll(
		func(instrs []isa.Instruction, memory []byte, elements []uint32) bool {
			code := append(instrs, isa.NewDropKeepOp(isa.OpReturn, isa.DropKeepNone))
			m := &Module{
				Code:           code,
				MemorySection:  memory,
				ElementSection: elements,
				FuncLengths:    []uint32{uint32(len(code))},
			}
			decoded, err := Decode(m.Encode())
			if err != nil {
				return false
			}
			if len(m.MemorySection) == 0 {
				m.MemorySection = nil
			}
			if len(m.ElementSection) == 0 {
				m.ElementSection = nil
			}
			if len(decoded.MemorySection) == 0 {
				decoded.MemorySection = nil
			}
			if len(decoded.ElementSection) == 0 {
				decoded.ElementSection = nil
			}
			return moduleEqual(m, decoded)
		},
		gen.SliceOf(genInstruction()),
		gen.SliceOf(gen.UInt8()),
		gen.SliceOf(gen.UInt32()),
	))
	properties.TestingRun(t)
}

func moduleEqual(a, b *Module) bool {
	if len(a.Code) != len(b.Code) || len(a.MemorySection) != len(b.MemorySection) ||
		len(a.ElementSection) != len(b.ElementSection) || len(a.FuncLengths) != len(b.FuncLengths) {
		return false
	}
	for i := range a.Code {
		if a.Code[i] != b.Code[i] {
			return false
		}
	}
	for i := range a.MemorySection {
		if a.MemorySection[i] != b.MemorySection[i] {
			return false
		}
	}
	for i := range a.ElementSection {
		if a.ElementSection[i] != b.ElementSection[i] {
			return false
		}
	}
	for i := range a.FuncLengths {
		if a.FuncLengths[i] != b.FuncLengths[i] {
			return false
		}
	}
	return true
}
