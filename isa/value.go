package isa

import (
	"math"
	"math/bits"
)

// An UntypedValue is a raw 64-bit container for every scalar WebAssembly
// value. i32 and f32 occupy the low 32 bits; operations reinterpret the bits
// as needed and never consult a runtime type tag.
type UntypedValue uint64

func ValueFromI32(v int32) UntypedValue   { return UntypedValue(uint32(v)) }
func ValueFromU32(v uint32) UntypedValue  { return UntypedValue(v) }
func ValueFromI64(v int64) UntypedValue   { return UntypedValue(uint64(v)) }
func ValueFromU64(v uint64) UntypedValue  { return UntypedValue(v) }
func ValueFromF32(v float32) UntypedValue { return UntypedValue(math.Float32bits(v)) }
func ValueFromF64(v float64) UntypedValue { return UntypedValue(math.Float64bits(v)) }

func ValueFromBool(v bool) UntypedValue {
	if v {
		return 1
	}
	return 0
}

func (v UntypedValue) I32() int32   { return int32(v) }
func (v UntypedValue) U32() uint32  { return uint32(v) }
func (v UntypedValue) I64() int64   { return int64(v) }
func (v UntypedValue) U64() uint64  { return uint64(v) }
func (v UntypedValue) F32() float32 { return math.Float32frombits(uint32(v)) }
func (v UntypedValue) F64() float64 { return math.Float64frombits(uint64(v)) }
func (v UntypedValue) Bool() bool   { return v != 0 }

// Comparison operators.

func (v UntypedValue) I32Eqz() UntypedValue { return ValueFromBool(v.I32() == 0) }
func (v UntypedValue) I64Eqz() UntypedValue { return ValueFromBool(v.I64() == 0) }

func (v UntypedValue) I32Eq(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.I32() == rhs.I32())
}
func (v UntypedValue) I32Ne(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.I32() != rhs.I32())
}
func (v UntypedValue) I32LtS(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.I32() < rhs.I32())
}
func (v UntypedValue) I32LtU(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.U32() < rhs.U32())
}
func (v UntypedValue) I32GtS(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.I32() > rhs.I32())
}
func (v UntypedValue) I32GtU(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.U32() > rhs.U32())
}
func (v UntypedValue) I32LeS(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.I32() <= rhs.I32())
}
func (v UntypedValue) I32LeU(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.U32() <= rhs.U32())
}
func (v UntypedValue) I32GeS(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.I32() >= rhs.I32())
}
func (v UntypedValue) I32GeU(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.U32() >= rhs.U32())
}

func (v UntypedValue) I64Eq(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.I64() == rhs.I64())
}
func (v UntypedValue) I64Ne(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.I64() != rhs.I64())
}
func (v UntypedValue) I64LtS(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.I64() < rhs.I64())
}
func (v UntypedValue) I64LtU(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.U64() < rhs.U64())
}
func (v UntypedValue) I64GtS(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.I64() > rhs.I64())
}
func (v UntypedValue) I64GtU(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.U64() > rhs.U64())
}
func (v UntypedValue) I64LeS(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.I64() <= rhs.I64())
}
func (v UntypedValue) I64LeU(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.U64() <= rhs.U64())
}
func (v UntypedValue) I64GeS(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.I64() >= rhs.I64())
}
func (v UntypedValue) I64GeU(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.U64() >= rhs.U64())
}

func (v UntypedValue) F32Eq(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.F32() == rhs.F32())
}
func (v UntypedValue) F32Ne(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.F32() != rhs.F32())
}
func (v UntypedValue) F32Lt(rhs UntypedValue) UntypedValue { return ValueFromBool(v.F32() < rhs.F32()) }
func (v UntypedValue) F32Gt(rhs UntypedValue) UntypedValue { return ValueFromBool(v.F32() > rhs.F32()) }
func (v UntypedValue) F32Le(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.F32() <= rhs.F32())
}
func (v UntypedValue) F32Ge(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.F32() >= rhs.F32())
}

func (v UntypedValue) F64Eq(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.F64() == rhs.F64())
}
func (v UntypedValue) F64Ne(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.F64() != rhs.F64())
}
func (v UntypedValue) F64Lt(rhs UntypedValue) UntypedValue { return ValueFromBool(v.F64() < rhs.F64()) }
func (v UntypedValue) F64Gt(rhs UntypedValue) UntypedValue { return ValueFromBool(v.F64() > rhs.F64()) }
func (v UntypedValue) F64Le(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.F64() <= rhs.F64())
}
func (v UntypedValue) F64Ge(rhs UntypedValue) UntypedValue {
	return ValueFromBool(v.F64() >= rhs.F64())
}

// Integer unary/binary operators.

func (v UntypedValue) I32Clz() UntypedValue { return ValueFromI32(int32(bits.LeadingZeros32(v.U32()))) }
func (v UntypedValue) I32Ctz() UntypedValue {
	return ValueFromI32(int32(bits.TrailingZeros32(v.U32())))
}
func (v UntypedValue) I32Popcnt() UntypedValue { return ValueFromI32(int32(bits.OnesCount32(v.U32()))) }

func (v UntypedValue) I32Add(rhs UntypedValue) UntypedValue { return ValueFromI32(v.I32() + rhs.I32()) }
func (v UntypedValue) I32Sub(rhs UntypedValue) UntypedValue { return ValueFromI32(v.I32() - rhs.I32()) }
func (v UntypedValue) I32Mul(rhs UntypedValue) UntypedValue { return ValueFromI32(v.I32() * rhs.I32()) }

func (v UntypedValue) I32DivS(rhs UntypedValue) (UntypedValue, error) {
	lhs, d := v.I32(), rhs.I32()
	if d == 0 {
		return 0, TrapIntegerDivisionByZero
	}
	if lhs == math.MinInt32 && d == -1 {
		return 0, TrapIntegerOverflow
	}
	return ValueFromI32(lhs / d), nil
}

func (v UntypedValue) I32DivU(rhs UntypedValue) (UntypedValue, error) {
	if rhs.U32() == 0 {
		return 0, TrapIntegerDivisionByZero
	}
	return ValueFromU32(v.U32() / rhs.U32()), nil
}

func (v UntypedValue) I32RemS(rhs UntypedValue) (UntypedValue, error) {
	lhs, d := v.I32(), rhs.I32()
	if d == 0 {
		return 0, TrapIntegerDivisionByZero
	}
	if lhs == math.MinInt32 && d == -1 {
		return ValueFromI32(0), nil
	}
	return ValueFromI32(lhs % d), nil
}

func (v UntypedValue) I32RemU(rhs UntypedValue) (UntypedValue, error) {
	if rhs.U32() == 0 {
		return 0, TrapIntegerDivisionByZero
	}
	return ValueFromU32(v.U32() % rhs.U32()), nil
}

func (v UntypedValue) I32And(rhs UntypedValue) UntypedValue { return ValueFromU32(v.U32() & rhs.U32()) }
func (v UntypedValue) I32Or(rhs UntypedValue) UntypedValue  { return ValueFromU32(v.U32() | rhs.U32()) }
func (v UntypedValue) I32Xor(rhs UntypedValue) UntypedValue { return ValueFromU32(v.U32() ^ rhs.U32()) }

func (v UntypedValue) I32Shl(rhs UntypedValue) UntypedValue {
	return ValueFromU32(v.U32() << (rhs.U32() & 31))
}
func (v UntypedValue) I32ShrS(rhs UntypedValue) UntypedValue {
	return ValueFromI32(v.I32() >> (rhs.U32() & 31))
}
func (v UntypedValue) I32ShrU(rhs UntypedValue) UntypedValue {
	return ValueFromU32(v.U32() >> (rhs.U32() & 31))
}
func (v UntypedValue) I32Rotl(rhs UntypedValue) UntypedValue {
	return ValueFromU32(bits.RotateLeft32(v.U32(), int(rhs.U32()&31)))
}
func (v UntypedValue) I32Rotr(rhs UntypedValue) UntypedValue {
	return ValueFromU32(bits.RotateLeft32(v.U32(), -int(rhs.U32()&31)))
}

func (v UntypedValue) I64Clz() UntypedValue { return ValueFromI64(int64(bits.LeadingZeros64(v.U64()))) }
func (v UntypedValue) I64Ctz() UntypedValue {
	return ValueFromI64(int64(bits.TrailingZeros64(v.U64())))
}
func (v UntypedValue) I64Popcnt() UntypedValue { return ValueFromI64(int64(bits.OnesCount64(v.U64()))) }

func (v UntypedValue) I64Add(rhs UntypedValue) UntypedValue { return ValueFromI64(v.I64() + rhs.I64()) }
func (v UntypedValue) I64Sub(rhs UntypedValue) UntypedValue { return ValueFromI64(v.I64() - rhs.I64()) }
func (v UntypedValue) I64Mul(rhs UntypedValue) UntypedValue { return ValueFromI64(v.I64() * rhs.I64()) }

func (v UntypedValue) I64DivS(rhs UntypedValue) (UntypedValue, error) {
	lhs, d := v.I64(), rhs.I64()
	if d == 0 {
		return 0, TrapIntegerDivisionByZero
	}
	if lhs == math.MinInt64 && d == -1 {
		return 0, TrapIntegerOverflow
	}
	return ValueFromI64(lhs / d), nil
}

func (v UntypedValue) I64DivU(rhs UntypedValue) (UntypedValue, error) {
	if rhs.U64() == 0 {
		return 0, TrapIntegerDivisionByZero
	}
	return ValueFromU64(v.U64() / rhs.U64()), nil
}

func (v UntypedValue) I64RemS(rhs UntypedValue) (UntypedValue, error) {
	lhs, d := v.I64(), rhs.I64()
	if d == 0 {
		return 0, TrapIntegerDivisionByZero
	}
	if lhs == math.MinInt64 && d == -1 {
		return ValueFromI64(0), nil
	}
	return ValueFromI64(lhs % d), nil
}

func (v UntypedValue) I64RemU(rhs UntypedValue) (UntypedValue, error) {
	if rhs.U64() == 0 {
		return 0, TrapIntegerDivisionByZero
	}
	return ValueFromU64(v.U64() % rhs.U64()), nil
}

func (v UntypedValue) I64And(rhs UntypedValue) UntypedValue { return ValueFromU64(v.U64() & rhs.U64()) }
func (v UntypedValue) I64Or(rhs UntypedValue) UntypedValue  { return ValueFromU64(v.U64() | rhs.U64()) }
func (v UntypedValue) I64Xor(rhs UntypedValue) UntypedValue { return ValueFromU64(v.U64() ^ rhs.U64()) }

func (v UntypedValue) I64Shl(rhs UntypedValue) UntypedValue {
	return ValueFromU64(v.U64() << (rhs.U64() & 63))
}
func (v UntypedValue) I64ShrS(rhs UntypedValue) UntypedValue {
	return ValueFromI64(v.I64() >> (rhs.U64() & 63))
}
func (v UntypedValue) I64ShrU(rhs UntypedValue) UntypedValue {
	return ValueFromU64(v.U64() >> (rhs.U64() & 63))
}
func (v UntypedValue) I64Rotl(rhs UntypedValue) UntypedValue {
	return ValueFromU64(bits.RotateLeft64(v.U64(), int(rhs.U64()&63)))
}
func (v UntypedValue) I64Rotr(rhs UntypedValue) UntypedValue {
	return ValueFromU64(bits.RotateLeft64(v.U64(), -int(rhs.U64()&63)))
}

// Floating-point operators. min/max propagate NaN; nearest rounds ties to
// even per IEEE-754 roundTiesToEven.

func (v UntypedValue) F32Abs() UntypedValue { return ValueFromF32(float32(math.Abs(float64(v.F32())))) }
func (v UntypedValue) F32Neg() UntypedValue { return ValueFromF32(-v.F32()) }
func (v UntypedValue) F32Ceil() UntypedValue {
	return ValueFromF32(float32(math.Ceil(float64(v.F32()))))
}
func (v UntypedValue) F32Floor() UntypedValue {
	return ValueFromF32(float32(math.Floor(float64(v.F32()))))
}
func (v UntypedValue) F32Trunc() UntypedValue {
	return ValueFromF32(float32(math.Trunc(float64(v.F32()))))
}
func (v UntypedValue) F32Nearest() UntypedValue {
	return ValueFromF32(float32(math.RoundToEven(float64(v.F32()))))
}
func (v UntypedValue) F32Sqrt() UntypedValue {
	return ValueFromF32(float32(math.Sqrt(float64(v.F32()))))
}

func (v UntypedValue) F32Add(rhs UntypedValue) UntypedValue { return ValueFromF32(v.F32() + rhs.F32()) }
func (v UntypedValue) F32Sub(rhs UntypedValue) UntypedValue { return ValueFromF32(v.F32() - rhs.F32()) }
func (v UntypedValue) F32Mul(rhs UntypedValue) UntypedValue { return ValueFromF32(v.F32() * rhs.F32()) }
func (v UntypedValue) F32Div(rhs UntypedValue) UntypedValue { return ValueFromF32(v.F32() / rhs.F32()) }
func (v UntypedValue) F32Min(rhs UntypedValue) UntypedValue {
	return ValueFromF32(float32(fmin(float64(v.F32()), float64(rhs.F32()))))
}
func (v UntypedValue) F32Max(rhs UntypedValue) UntypedValue {
	return ValueFromF32(float32(fmax(float64(v.F32()), float64(rhs.F32()))))
}
func (v UntypedValue) F32Copysign(rhs UntypedValue) UntypedValue {
	return ValueFromF32(float32(math.Copysign(float64(v.F32()), float64(rhs.F32()))))
}

func (v UntypedValue) F64Abs() UntypedValue     { return ValueFromF64(math.Abs(v.F64())) }
func (v UntypedValue) F64Neg() UntypedValue     { return ValueFromF64(-v.F64()) }
func (v UntypedValue) F64Ceil() UntypedValue    { return ValueFromF64(math.Ceil(v.F64())) }
func (v UntypedValue) F64Floor() UntypedValue   { return ValueFromF64(math.Floor(v.F64())) }
func (v UntypedValue) F64Trunc() UntypedValue   { return ValueFromF64(math.Trunc(v.F64())) }
func (v UntypedValue) F64Nearest() UntypedValue { return ValueFromF64(math.RoundToEven(v.F64())) }
func (v UntypedValue) F64Sqrt() UntypedValue    { return ValueFromF64(math.Sqrt(v.F64())) }

func (v UntypedValue) F64Add(rhs UntypedValue) UntypedValue { return ValueFromF64(v.F64() + rhs.F64()) }
func (v UntypedValue) F64Sub(rhs UntypedValue) UntypedValue { return ValueFromF64(v.F64() - rhs.F64()) }
func (v UntypedValue) F64Mul(rhs UntypedValue) UntypedValue { return ValueFromF64(v.F64() * rhs.F64()) }
func (v UntypedValue) F64Div(rhs UntypedValue) UntypedValue { return ValueFromF64(v.F64() / rhs.F64()) }
func (v UntypedValue) F64Min(rhs UntypedValue) UntypedValue {
	return ValueFromF64(fmin(v.F64(), rhs.F64()))
}
func (v UntypedValue) F64Max(rhs UntypedValue) UntypedValue {
	return ValueFromF64(fmax(v.F64(), rhs.F64()))
}
func (v UntypedValue) F64Copysign(rhs UntypedValue) UntypedValue {
	return ValueFromF64(math.Copysign(v.F64(), rhs.F64()))
}

func fmin(z1, z2 float64) float64 {
	if math.IsNaN(z1) {
		return z1
	}
	if math.IsNaN(z2) {
		return z2
	}
	return math.Min(z1, z2)
}

func fmax(z1, z2 float64) float64 {
	if math.IsNaN(z1) {
		return z1
	}
	if math.IsNaN(z2) {
		return z2
	}
	return math.Max(z1, z2)
}

// Conversions.

func (v UntypedValue) I32WrapI64() UntypedValue    { return ValueFromI32(int32(v.I64())) }
func (v UntypedValue) I64ExtendI32S() UntypedValue { return ValueFromI64(int64(v.I32())) }
func (v UntypedValue) I64ExtendI32U() UntypedValue { return ValueFromU64(uint64(v.U32())) }

func (v UntypedValue) I32Extend8S() UntypedValue  { return ValueFromI32(int32(int8(v.I32()))) }
func (v UntypedValue) I32Extend16S() UntypedValue { return ValueFromI32(int32(int16(v.I32()))) }
func (v UntypedValue) I64Extend8S() UntypedValue  { return ValueFromI64(int64(int8(v.I64()))) }
func (v UntypedValue) I64Extend16S() UntypedValue { return ValueFromI64(int64(int16(v.I64()))) }
func (v UntypedValue) I64Extend32S() UntypedValue { return ValueFromI64(int64(int32(v.I64()))) }

func (v UntypedValue) F32ConvertI32S() UntypedValue { return ValueFromF32(float32(v.I32())) }
func (v UntypedValue) F32ConvertI32U() UntypedValue { return ValueFromF32(float32(v.U32())) }
func (v UntypedValue) F32ConvertI64S() UntypedValue { return ValueFromF32(float32(v.I64())) }
func (v UntypedValue) F32ConvertI64U() UntypedValue { return ValueFromF32(float32(v.U64())) }
func (v UntypedValue) F32DemoteF64() UntypedValue   { return ValueFromF32(float32(v.F64())) }
func (v UntypedValue) F64ConvertI32S() UntypedValue { return ValueFromF64(float64(v.I32())) }
func (v UntypedValue) F64ConvertI32U() UntypedValue { return ValueFromF64(float64(v.U32())) }
func (v UntypedValue) F64ConvertI64S() UntypedValue { return ValueFromF64(float64(v.I64())) }
func (v UntypedValue) F64ConvertI64U() UntypedValue { return ValueFromF64(float64(v.U64())) }
func (v UntypedValue) F64PromoteF32() UntypedValue  { return ValueFromF64(float64(v.F32())) }

// Trapping float-to-int truncation.

func truncS(z float64, min, max float64) (int64, error) {
	if math.IsNaN(z) {
		return 0, TrapBadConversionToInteger
	}
	z = math.Trunc(z)
	if z < min || z > max {
		return 0, TrapIntegerOverflow
	}
	return int64(z), nil
}

func truncU(z float64, max float64) (uint64, error) {
	if math.IsNaN(z) {
		return 0, TrapBadConversionToInteger
	}
	z = math.Trunc(z)
	if z <= -1 || z > max {
		return 0, TrapIntegerOverflow
	}
	return uint64(z), nil
}

func (v UntypedValue) I32TruncF32S() (UntypedValue, error) {
	n, err := truncS(float64(v.F32()), math.MinInt32, math.MaxInt32)
	return ValueFromI32(int32(n)), err
}

func (v UntypedValue) I32TruncF32U() (UntypedValue, error) {
	n, err := truncU(float64(v.F32()), math.MaxUint32)
	return ValueFromU32(uint32(n)), err
}

func (v UntypedValue) I32TruncF64S() (UntypedValue, error) {
	n, err := truncS(v.F64(), math.MinInt32, math.MaxInt32)
	return ValueFromI32(int32(n)), err
}

func (v UntypedValue) I32TruncF64U() (UntypedValue, error) {
	n, err := truncU(v.F64(), math.MaxUint32)
	return ValueFromU32(uint32(n)), err
}

func (v UntypedValue) I64TruncF32S() (UntypedValue, error) {
	z := float64(v.F32())
	if math.IsNaN(z) {
		return 0, TrapBadConversionToInteger
	}
	z = math.Trunc(z)
	if z < math.MinInt64 || z >= math.MaxInt64 {
		return 0, TrapIntegerOverflow
	}
	return ValueFromI64(int64(z)), nil
}

func (v UntypedValue) I64TruncF32U() (UntypedValue, error) {
	z := float64(v.F32())
	if math.IsNaN(z) {
		return 0, TrapBadConversionToInteger
	}
	z = math.Trunc(z)
	if z <= -1 || z >= math.MaxUint64 {
		return 0, TrapIntegerOverflow
	}
	return ValueFromU64(uint64(z)), nil
}

func (v UntypedValue) I64TruncF64S() (UntypedValue, error) {
	z := v.F64()
	if math.IsNaN(z) {
		return 0, TrapBadConversionToInteger
	}
	z = math.Trunc(z)
	if z < math.MinInt64 || z >= math.MaxInt64 {
		return 0, TrapIntegerOverflow
	}
	return ValueFromI64(int64(z)), nil
}

func (v UntypedValue) I64TruncF64U() (UntypedValue, error) {
	z := v.F64()
	if math.IsNaN(z) {
		return 0, TrapBadConversionToInteger
	}
	z = math.Trunc(z)
	if z <= -1 || z >= math.MaxUint64 {
		return 0, TrapIntegerOverflow
	}
	return ValueFromU64(uint64(z)), nil
}

// Saturating float-to-int truncation.

func (v UntypedValue) I32TruncSatF32S() UntypedValue { return truncSatI32S(float64(v.F32())) }
func (v UntypedValue) I32TruncSatF32U() UntypedValue { return truncSatI32U(float64(v.F32())) }
func (v UntypedValue) I32TruncSatF64S() UntypedValue { return truncSatI32S(v.F64()) }
func (v UntypedValue) I32TruncSatF64U() UntypedValue { return truncSatI32U(v.F64()) }
func (v UntypedValue) I64TruncSatF32S() UntypedValue { return truncSatI64S(float64(v.F32())) }
func (v UntypedValue) I64TruncSatF32U() UntypedValue { return truncSatI64U(float64(v.F32())) }
func (v UntypedValue) I64TruncSatF64S() UntypedValue { return truncSatI64S(v.F64()) }
func (v UntypedValue) I64TruncSatF64U() UntypedValue { return truncSatI64U(v.F64()) }

func truncSatI32S(z float64) UntypedValue {
	switch {
	case math.IsNaN(z):
		return ValueFromI32(0)
	case math.IsInf(z, -1) || z <= math.MinInt32:
		return ValueFromI32(math.MinInt32)
	case math.IsInf(z, 1) || z >= math.MaxInt32:
		return ValueFromI32(math.MaxInt32)
	default:
		return ValueFromI32(int32(z))
	}
}

func truncSatI32U(z float64) UntypedValue {
	switch {
	case math.IsNaN(z) || math.IsInf(z, -1) || z < 0:
		return ValueFromU32(0)
	case math.IsInf(z, 1) || z >= math.MaxUint32:
		return ValueFromU32(math.MaxUint32)
	default:
		return ValueFromU32(uint32(z))
	}
}

func truncSatI64S(z float64) UntypedValue {
	switch {
	case math.IsNaN(z):
		return ValueFromI64(0)
	case math.IsInf(z, -1) || z <= math.MinInt64:
		return ValueFromI64(math.MinInt64)
	case math.IsInf(z, 1) || z >= math.MaxInt64:
		return ValueFromI64(math.MaxInt64)
	default:
		return ValueFromI64(int64(z))
	}
}

func truncSatI64U(z float64) UntypedValue {
	switch {
	case math.IsNaN(z) || math.IsInf(z, -1) || z < 0:
		return ValueFromU64(0)
	case math.IsInf(z, 1) || z >= math.MaxUint64:
		return ValueFromU64(math.MaxUint64)
	default:
		return ValueFromU64(uint64(z))
	}
}
