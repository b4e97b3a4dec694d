package isa

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestI32Div(t *testing.T) {
	v, err := ValueFromI32(7).I32DivS(ValueFromI32(-2))
	require.NoError(t, err)
	require.Equal(t, int32(-3), v.I32())

	_, err = ValueFromI32(1).I32DivS(ValueFromI32(0))
	require.Equal(t, TrapIntegerDivisionByZero, err)

	_, err = ValueFromI32(math.MinInt32).I32DivS(ValueFromI32(-1))
	require.Equal(t, TrapIntegerOverflow, err)

	// rem of MinInt32 by -1 is defined as zero, not a trap
	v, err = ValueFromI32(math.MinInt32).I32RemS(ValueFromI32(-1))
	require.NoError(t, err)
	require.Equal(t, int32(0), v.I32())
}

func TestI64Div(t *testing.T) {
	_, err := ValueFromI64(math.MinInt64).I64DivS(ValueFromI64(-1))
	require.Equal(t, TrapIntegerOverflow, err)

	_, err = ValueFromI64(5).I64DivU(ValueFromI64(0))
	require.Equal(t, TrapIntegerDivisionByZero, err)

	v, err := ValueFromI64(-9).I64RemS(ValueFromI64(4))
	require.NoError(t, err)
	require.Equal(t, int64(-1), v.I64())
}

func TestShiftsAndRotates(t *testing.T) {
	require.Equal(t, int32(4), ValueFromI32(1).I32Shl(ValueFromI32(34)).I32())
	require.Equal(t, int32(-1), ValueFromI32(-1).I32ShrS(ValueFromI32(8)).I32())
	require.Equal(t, uint32(0x00ffffff), ValueFromI32(-1).I32ShrU(ValueFromI32(8)).U32())
	require.Equal(t, uint32(0x80000000), ValueFromU32(1).I32Rotr(ValueFromU32(1)).U32())
	require.Equal(t, uint64(1), ValueFromU64(0x8000000000000000).I64Rotl(ValueFromU64(1)).U64())
}

func TestTruncTraps(t *testing.T) {
	_, err := ValueFromF64(math.NaN()).I32TruncF64S()
	require.Equal(t, TrapBadConversionToInteger, err)

	_, err = ValueFromF64(1e10).I32TruncF64S()
	require.Equal(t, TrapIntegerOverflow, err)

	_, err = ValueFromF64(-1.5).I32TruncF64U()
	require.Equal(t, TrapIntegerOverflow, err)

	v, err := ValueFromF64(-1.9).I32TruncF64S()
	require.NoError(t, err)
	require.Equal(t, int32(-1), v.I32())
}

func TestTruncSat(t *testing.T) {
	require.Equal(t, int32(0), ValueFromF64(math.NaN()).I32TruncSatF64S().I32())
	require.Equal(t, int32(math.MaxInt32), ValueFromF64(1e12).I32TruncSatF64S().I32())
	require.Equal(t, int32(math.MinInt32), ValueFromF64(math.Inf(-1)).I32TruncSatF64S().I32())
	require.Equal(t, uint32(0), ValueFromF64(-7).I32TruncSatF64U().U32())
	require.Equal(t, uint64(math.MaxUint64), ValueFromF64(math.Inf(1)).I64TruncSatF64U().U64())
}

func TestFloatMinMaxNaN(t *testing.T) {
	nan := ValueFromF64(math.NaN())
	one := ValueFromF64(1)
	require.True(t, math.IsNaN(nan.F64Min(one).F64()))
	require.True(t, math.IsNaN(one.F64Max(nan).F64()))
	require.Equal(t, float64(1), one.F64Min(ValueFromF64(2)).F64())
}

func TestNearestTiesToEven(t *testing.T) {
	require.Equal(t, float64(2), ValueFromF64(2.5).F64Nearest().F64())
	require.Equal(t, float64(-2), ValueFromF64(-2.5).F64Nearest().F64())
}

func TestSignExtension(t *testing.T) {
	require.Equal(t, int32(-1), ValueFromI32(0xff).I32Extend8S().I32())
	require.Equal(t, int32(0x7f), ValueFromI32(0x7f).I32Extend8S().I32())
	require.Equal(t, int64(-1), ValueFromI64(0xffffffff).I64Extend32S().I64())
	require.Equal(t, int64(-1), ValueFromI32(-1).I64ExtendI32S().I64())
	require.Equal(t, int64(0xffffffff), ValueFromI32(-1).I64ExtendI32U().I64())
}

func TestReinterpretBitsAreStable(t *testing.T) {
	v := ValueFromF32(float32(math.Pi))
	require.Equal(t, math.Float32bits(float32(math.Pi)), v.U32())
	require.Equal(t, v.F32(), math.Float32frombits(v.U32()))
}
