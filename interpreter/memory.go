package interpreter

import (
	"github.com/fluentlabs-xyz/rwasm/exec"
	"github.com/fluentlabs-xyz/rwasm/isa"
)

type loadDesc struct {
	size   uint32
	signed bool
	wrap32 bool // result is an i32-class value; keep the upper bits zero
}

var loadDescs = map[isa.Opcode]loadDesc{
	isa.OpI32Load:    {size: 4},
	isa.OpI64Load:    {size: 8},
	isa.OpF32Load:    {size: 4},
	isa.OpF64Load:    {size: 8},
	isa.OpI32Load8S:  {size: 1, signed: true, wrap32: true},
	isa.OpI32Load8U:  {size: 1},
	isa.OpI32Load16S: {size: 2, signed: true, wrap32: true},
	isa.OpI32Load16U: {size: 2},
	isa.OpI64Load8S:  {size: 1, signed: true},
	isa.OpI64Load8U:  {size: 1},
	isa.OpI64Load16S: {size: 2, signed: true},
	isa.OpI64Load16U: {size: 2},
	isa.OpI64Load32S: {size: 4, signed: true},
	isa.OpI64Load32U: {size: 4},
}

var storeSizes = map[isa.Opcode]uint32{
	isa.OpI32Store:   4,
	isa.OpI64Store:   8,
	isa.OpF32Store:   4,
	isa.OpF64Store:   8,
	isa.OpI32Store8:  1,
	isa.OpI32Store16: 2,
	isa.OpI64Store8:  1,
	isa.OpI64Store16: 2,
	isa.OpI64Store32: 4,
}

func execLoad(e *Executor, instr isa.Instruction) error {
	desc := loadDescs[instr.Op]
	base := e.values.Top().U32()
	value, err := e.memory.Load(base, instr.U32(), desc.size, desc.signed)
	if err != nil {
		return err
	}
	if desc.wrap32 {
		value = isa.ValueFromI32(int32(value.I64()))
	}
	e.values.SetTop(value)
	e.ip++
	return nil
}

func execStore(e *Executor, instr isa.Instruction) error {
	size := storeSizes[instr.Op]
	addr, value := e.values.Pop2()
	if err := e.memory.Store(addr.U32(), instr.U32(), size, value); err != nil {
		return err
	}
	if e.tracer != nil {
		e.tracer.OnMemoryChange(uint64(addr.U32())+uint64(instr.U32()), size)
	}
	e.ip++
	return nil
}

func execMemorySize(e *Executor, _ isa.Instruction) error {
	if err := e.values.Push(isa.ValueFromU32(e.memory.Pages())); err != nil {
		return err
	}
	e.ip++
	return nil
}

// execMemoryGrow pushes the previous page count on success and 0xFFFFFFFF on
// failure. Growth is charged per grown byte when metering is on.
func execMemoryGrow(e *Executor, _ isa.Instruction) error {
	delta := e.values.Pop().U32()
	if err := e.consumeFuel(e.costs.ForBytes(uint64(delta) * exec.PageSize)); err != nil {
		return err
	}
	previous, err := e.memory.Grow(delta)
	if err != nil {
		mustPush(e, isa.ValueFromU32(0xffffffff))
	} else {
		mustPush(e, isa.ValueFromU32(previous))
	}
	e.ip++
	return nil
}

func execMemoryFill(e *Executor, _ isa.Instruction) error {
	d, val, n := e.values.Pop3()
	if err := e.consumeFuel(e.costs.ForBytes(uint64(n.U32()))); err != nil {
		return err
	}
	mem := e.memory.Bytes()
	dst, count := uint64(d.U32()), uint64(n.U32())
	if dst+count > uint64(len(mem)) {
		return isa.TrapMemoryOutOfBounds
	}
	fill := mem[dst : dst+count]
	for i := range fill {
		fill[i] = byte(val.U32())
	}
	if e.tracer != nil {
		e.tracer.OnMemoryChange(dst, uint32(count))
	}
	e.ip++
	return nil
}

func execMemoryCopy(e *Executor, _ isa.Instruction) error {
	d, s, n := e.values.Pop3()
	if err := e.consumeFuel(e.costs.ForBytes(uint64(n.U32()))); err != nil {
		return err
	}
	mem := e.memory.Bytes()
	dst, src, count := uint64(d.U32()), uint64(s.U32()), uint64(n.U32())
	if dst+count > uint64(len(mem)) || src+count > uint64(len(mem)) {
		return isa.TrapMemoryOutOfBounds
	}
	copy(mem[dst:dst+count], mem[src:src+count])
	if e.tracer != nil {
		e.tracer.OnMemoryChange(dst, uint32(count))
	}
	e.ip++
	return nil
}

// execMemoryInit copies from the unified data section. A dropped segment
// reads as empty, so a nonzero length traps.
func execMemoryInit(e *Executor, instr isa.Instruction) error {
	d, s, n := e.values.Pop3()
	if err := e.consumeFuel(e.costs.ForBytes(uint64(n.U32()))); err != nil {
		return err
	}
	data := e.segments.Data(instr.U32())
	mem := e.memory.Bytes()
	dst, src, count := uint64(d.U32()), uint64(s.U32()), uint64(n.U32())
	if dst+count > uint64(len(mem)) {
		return isa.TrapMemoryOutOfBounds
	}
	if src+count > uint64(len(data)) {
		return isa.TrapMemoryOutOfBounds
	}
	copy(mem[dst:dst+count], data[src:src+count])
	if e.tracer != nil {
		e.tracer.OnMemoryChange(dst, uint32(count))
	}
	e.ip++
	return nil
}

func execDataDrop(e *Executor, instr isa.Instruction) error {
	e.segments.DropData(instr.U32())
	e.ip++
	return nil
}

func execTableSize(e *Executor, instr isa.Instruction) error {
	if err := e.values.Push(isa.ValueFromU32(e.table(instr.U32()).Size())); err != nil {
		return err
	}
	e.ip++
	return nil
}

func execTableGrow(e *Executor, instr isa.Instruction) error {
	init, delta := e.values.Pop2()
	if err := e.consumeFuel(e.costs.ForElements(uint64(delta.U32()))); err != nil {
		return err
	}
	previous := e.table(instr.U32()).Grow(delta.U32(), init)
	mustPush(e, isa.ValueFromU32(previous))
	e.ip++
	return nil
}

func execTableFill(e *Executor, instr isa.Instruction) error {
	i, val, n := e.values.Pop3()
	if err := e.consumeFuel(e.costs.ForElements(uint64(n.U32()))); err != nil {
		return err
	}
	if err := e.table(instr.U32()).Fill(i.U32(), val, n.U32()); err != nil {
		return err
	}
	e.ip++
	return nil
}

func execTableGet(e *Executor, instr isa.Instruction) error {
	index := e.values.Pop()
	value, err := e.table(instr.U32()).Get(index.U32())
	if err != nil {
		return err
	}
	mustPush(e, value)
	e.ip++
	return nil
}

func execTableSet(e *Executor, instr isa.Instruction) error {
	index, value := e.values.Pop2()
	if err := e.table(instr.U32()).Set(index.U32(), value); err != nil {
		return err
	}
	if e.tracer != nil {
		e.tracer.OnTableChange(instr.U32(), index.U32())
	}
	e.ip++
	return nil
}

// execTableCopy reads the source table index from the following aux slot.
func execTableCopy(e *Executor, instr isa.Instruction) error {
	srcIdx := e.fetchAux(1).U32()
	dstIdx := instr.U32()
	d, s, n := e.values.Pop3()
	if err := e.consumeFuel(e.costs.ForElements(uint64(n.U32()))); err != nil {
		return err
	}
	var err error
	if srcIdx == dstIdx {
		err = e.table(dstIdx).CopyWithin(d.U32(), s.U32(), n.U32())
	} else {
		err = exec.TableCopy(e.table(dstIdx), d.U32(), e.table(srcIdx), s.U32(), n.U32())
	}
	if err != nil {
		return err
	}
	e.ip += 2
	return nil
}

// execTableInit copies funcrefs from the unified element section into the
// table named by the following aux slot.
func execTableInit(e *Executor, instr isa.Instruction) error {
	tableIdx := e.fetchAux(1).U32()
	d, s, n := e.values.Pop3()
	if err := e.consumeFuel(e.costs.ForElements(uint64(n.U32()))); err != nil {
		return err
	}
	elements := e.segments.Elements(instr.U32())
	if err := e.table(tableIdx).Init(d.U32(), elements, s.U32(), n.U32()); err != nil {
		return err
	}
	e.ip += 2
	return nil
}

func execElemDrop(e *Executor, instr isa.Instruction) error {
	e.segments.DropElements(instr.U32())
	e.ip++
	return nil
}
