package exec

import "github.com/fluentlabs-xyz/rwasm/isa"

// Funcref encoding inside tables and on the value stack: the null reference
// is 0, and function i is stored as i+FuncRefOffset so that a zero-filled
// table reads as all-null.
const (
	FuncRefNull   = 0
	FuncRefOffset = 1000
)

// FuncRefFromIndex encodes a function index as a funcref value.
func FuncRefFromIndex(funcIdx uint32) isa.UntypedValue {
	return isa.ValueFromU32(funcIdx + FuncRefOffset)
}

// FuncRefIndex decodes a funcref value back to a function index. The second
// result is false for the null reference.
func FuncRefIndex(ref isa.UntypedValue) (uint32, bool) {
	if ref.U32() == FuncRefNull {
		return 0, false
	}
	return ref.U32() - FuncRefOffset, true
}

// Table is a growable vector of funcref-or-null values.
type Table struct {
	maxSize  uint32
	elements []isa.UntypedValue
}

// NewTable creates an empty table that may grow up to maxSize elements.
func NewTable(maxSize uint32) *Table {
	return &Table{maxSize: maxSize}
}

// Size returns the current number of elements.
func (t *Table) Size() uint32 {
	return uint32(len(t.elements))
}

// Grow grows the table by delta elements, each initialized to init. It
// returns the element count before the operation, or 0xFFFFFFFF if the
// result would exceed the configured maximum.
func (t *Table) Grow(delta uint32, init isa.UntypedValue) uint32 {
	current := t.Size()
	desired := uint64(current) + uint64(delta)
	if desired > uint64(t.maxSize) {
		return 0xffffffff
	}
	for i := uint32(0); i < delta; i++ {
		t.elements = append(t.elements, init)
	}
	return current
}

// Get returns the element at index.
func (t *Table) Get(index uint32) (isa.UntypedValue, error) {
	if index >= t.Size() {
		return 0, isa.TrapTableOutOfBounds
	}
	return t.elements[index], nil
}

// Set replaces the element at index.
func (t *Table) Set(index uint32, value isa.UntypedValue) error {
	if index >= t.Size() {
		return isa.TrapTableOutOfBounds
	}
	t.elements[index] = value
	return nil
}

// Fill sets elements [dst, dst+n) to value.
func (t *Table) Fill(dst uint32, value isa.UntypedValue, n uint32) error {
	if uint64(dst)+uint64(n) > uint64(t.Size()) {
		return isa.TrapTableOutOfBounds
	}
	for i := uint32(0); i < n; i++ {
		t.elements[dst+i] = value
	}
	return nil
}

// Init copies n funcrefs from src[srcOff:] into the table at dst.
func (t *Table) Init(dst uint32, src []isa.UntypedValue, srcOff, n uint32) error {
	if uint64(srcOff)+uint64(n) > uint64(len(src)) {
		return isa.TrapTableOutOfBounds
	}
	if uint64(dst)+uint64(n) > uint64(t.Size()) {
		return isa.TrapTableOutOfBounds
	}
	copy(t.elements[dst:dst+n], src[srcOff:srcOff+n])
	return nil
}

// CopyWithin copies n elements inside the table, honoring overlap.
func (t *Table) CopyWithin(dst, src, n uint32) error {
	size := uint64(t.Size())
	if uint64(dst)+uint64(n) > size || uint64(src)+uint64(n) > size {
		return isa.TrapTableOutOfBounds
	}
	copy(t.elements[dst:dst+n], t.elements[src:src+n])
	return nil
}

// TableCopy copies n elements from src to dst, which must be distinct
// tables.
func TableCopy(dst *Table, dstOff uint32, src *Table, srcOff, n uint32) error {
	if uint64(srcOff)+uint64(n) > uint64(src.Size()) {
		return isa.TrapTableOutOfBounds
	}
	if uint64(dstOff)+uint64(n) > uint64(dst.Size()) {
		return isa.TrapTableOutOfBounds
	}
	copy(dst.elements[dstOff:dstOff+n], src.elements[srcOff:srcOff+n])
	return nil
}
