package isa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlotRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		instr Instruction
	}{
		{"nullary", NewNullary(OpI32Add)},
		{"unreachable", NewNullary(OpUnreachable)},
		{"u32", NewU32(OpLocalGet, 17)},
		{"u32 max", NewU32(OpGlobalSet, 0xffffffff)},
		{"branch forward", NewI32(OpBr, 42)},
		{"branch backward", NewI32(OpBrIfNez, -13)},
		{"drop keep", NewDropKeepOp(OpReturn, DropKeep{Drop: 3, Keep: 2})},
		{"i32 const", NewConst(OpI32Const, ValueFromI32(-100))},
		{"i64 const", NewConst(OpI64Const, ValueFromI64(-1))},
		{"f32 const", NewConst(OpF32Const, ValueFromF32(1.5))},
		{"f64 const", NewConst(OpF64Const, ValueFromF64(-2.75))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			encoded := EncodeSlot(nil, c.instr)
			require.Len(t, encoded, SlotSize)
			decoded, err := DecodeSlot(encoded)
			require.NoError(t, err)
			require.Equal(t, c.instr, decoded)
		})
	}
}

func TestDecodeSlotErrors(t *testing.T) {
	t.Run("truncated", func(t *testing.T) {
		_, err := DecodeSlot([]byte{byte(OpI32Add), 0, 0})
		require.Error(t, err)
	})

	t.Run("unknown opcode", func(t *testing.T) {
		slot := make([]byte, SlotSize)
		slot[0] = 0xfe
		_, err := DecodeSlot(slot)
		require.Error(t, err)
	})

	t.Run("nonzero padding on nullary", func(t *testing.T) {
		slot := EncodeSlot(nil, NewNullary(OpDrop))
		slot[5] = 1
		_, err := DecodeSlot(slot)
		require.Error(t, err)
	})

	t.Run("nonzero padding on u32", func(t *testing.T) {
		slot := EncodeSlot(nil, NewU32(OpLocalGet, 3))
		slot[8] = 0x80
		_, err := DecodeSlot(slot)
		require.Error(t, err)
	})
}

func TestNegativeBranchOffsetPadding(t *testing.T) {
	// Negative offsets occupy only the low four operand bytes; the upper
	// four stay zero.
	encoded := EncodeSlot(nil, NewI32(OpBr, -1))
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0, 0, 0, 0}, encoded[1:])
}

func TestDropKeepPacking(t *testing.T) {
	dk, err := NewDropKeep(300, 7)
	require.NoError(t, err)
	instr := NewDropKeepOp(OpReturnIfNez, dk)
	require.Equal(t, dk, instr.DropKeep())

	_, err = NewDropKeep(1<<16, 0)
	require.Error(t, err)
	_, err = NewDropKeep(0, 1<<16)
	require.Error(t, err)
}

func TestOperandKinds(t *testing.T) {
	require.Equal(t, OperandNone, OpI32Add.Operand())
	require.Equal(t, OperandU32, OpCallIndirect.Operand())
	require.Equal(t, OperandI32, OpBrAdjust.Operand())
	require.Equal(t, OperandDropKeep, OpReturn.Operand())
	require.Equal(t, OperandU64, OpF64Const.Operand())
	require.False(t, Opcode(0xc6).Valid())
}
