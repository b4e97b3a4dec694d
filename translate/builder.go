package translate

import (
	"github.com/fluentlabs-xyz/rwasm/isa"
)

// labelRef names a label created by the stream builder.
type labelRef int

type label struct {
	pc    int   // instruction index the label resolves to, -1 while pending
	users []int // branch instruction indices awaiting resolution
}

// A streamBuilder accumulates the module-wide flat instruction stream and
// resolves forward branches by backpatching. Branch offsets are measured in
// instruction slots relative to the branching instruction.
type streamBuilder struct {
	instrs      []isa.Instruction
	labels      []label
	funcOffsets []int
}

func newStreamBuilder() *streamBuilder {
	return &streamBuilder{}
}

// pc returns the index the next emitted instruction will occupy.
func (b *streamBuilder) pc() int {
	return len(b.instrs)
}

// beginFunc records the start of a new function in the stream.
func (b *streamBuilder) beginFunc() {
	b.funcOffsets = append(b.funcOffsets, b.pc())
}

// funcLengths derives per-function instruction counts from the recorded
// offsets.
func (b *streamBuilder) funcLengths() []uint32 {
	lengths := make([]uint32, len(b.funcOffsets))
	for i, offset := range b.funcOffsets {
		end := len(b.instrs)
		if i+1 < len(b.funcOffsets) {
			end = b.funcOffsets[i+1]
		}
		lengths[i] = uint32(end - offset)
	}
	return lengths
}

func (b *streamBuilder) emit(instr isa.Instruction) int {
	b.instrs = append(b.instrs, instr)
	return len(b.instrs) - 1
}

func (b *streamBuilder) emitNullary(op isa.Opcode) int {
	return b.emit(isa.NewNullary(op))
}

func (b *streamBuilder) emitU32(op isa.Opcode, v uint32) int {
	return b.emit(isa.NewU32(op, v))
}

func (b *streamBuilder) emitConst(op isa.Opcode, v isa.UntypedValue) int {
	return b.emit(isa.NewConst(op, v))
}

func (b *streamBuilder) emitI32Const(v int32) int {
	return b.emitConst(isa.OpI32Const, isa.ValueFromI32(v))
}

func (b *streamBuilder) emitI64Const(v int64) int {
	return b.emitConst(isa.OpI64Const, isa.ValueFromI64(v))
}

// newLabel creates an unpinned label.
func (b *streamBuilder) newLabel() labelRef {
	b.labels = append(b.labels, label{pc: -1})
	return labelRef(len(b.labels) - 1)
}

// pinLabel resolves the label to the current pc.
func (b *streamBuilder) pinLabel(ref labelRef) {
	b.labels[ref].pc = b.pc()
}

// pinned reports whether the label already resolves.
func (b *streamBuilder) pinned(ref labelRef) bool {
	return b.labels[ref].pc >= 0
}

// emitBranch emits a branch instruction targeting the label. Backward
// branches are resolved immediately; forward branches are recorded for
// backpatching.
func (b *streamBuilder) emitBranch(op isa.Opcode, ref labelRef) int {
	at := b.emit(isa.NewI32(op, 0))
	l := &b.labels[ref]
	if l.pc >= 0 {
		b.instrs[at].SetBranchOffset(int32(l.pc - at))
	} else {
		l.users = append(l.users, at)
	}
	return at
}

// resolveLabels patches every pending branch. All labels must be pinned by
// the time translation finishes.
func (b *streamBuilder) resolveLabels() error {
	for i := range b.labels {
		l := &b.labels[i]
		for _, user := range l.users {
			if l.pc < 0 {
				return errorf(ErrTypeMismatch, "unresolved branch target at instruction %d", user)
			}
			b.instrs[user].SetBranchOffset(int32(l.pc - user))
		}
		l.users = nil
	}
	return nil
}

// bumpFuel adds delta to the operand of the ConsumeFuel instruction at
// index.
func (b *streamBuilder) bumpFuel(index int, delta uint64) {
	if index < 0 {
		return
	}
	fuel := uint64(b.instrs[index].U32()) + delta
	if fuel > 0xffffffff {
		fuel = 0xffffffff
	}
	b.instrs[index] = isa.NewU32(isa.OpConsumeFuel, uint32(fuel))
}
