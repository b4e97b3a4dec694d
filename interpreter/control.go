package interpreter

import (
	"github.com/fluentlabs-xyz/rwasm/exec"
	"github.com/fluentlabs-xyz/rwasm/isa"
)

func execUnreachable(e *Executor, _ isa.Instruction) error {
	return isa.TrapUnreachableCodeReached
}

func execConsumeFuel(e *Executor, instr isa.Instruction) error {
	if err := e.consumeFuel(uint64(instr.U32())); err != nil {
		return err
	}
	e.ip++
	return nil
}

// execSignatureCheck verifies the callee-side signature recorded by the most
// recent indirect call. Direct entries leave no recorded signature and pass
// through.
func execSignatureCheck(e *Executor, instr isa.Instruction) error {
	if e.lastSignature >= 0 {
		if uint32(e.lastSignature) != instr.U32() {
			return isa.TrapBadSignature
		}
		e.lastSignature = -1
	}
	e.ip++
	return nil
}

func execBr(e *Executor, instr isa.Instruction) error {
	e.branch(instr.I32())
	return nil
}

func execBrIfEqz(e *Executor, instr isa.Instruction) error {
	if e.values.Pop().Bool() {
		e.ip++
	} else {
		e.branch(instr.I32())
	}
	return nil
}

func execBrIfNez(e *Executor, instr isa.Instruction) error {
	if e.values.Pop().Bool() {
		e.branch(instr.I32())
	} else {
		e.ip++
	}
	return nil
}

// execBrAdjust branches unconditionally after applying the DropKeep stored
// in the following aux slot.
func execBrAdjust(e *Executor, instr isa.Instruction) error {
	dk := e.fetchAux(1).DropKeep()
	if err := e.consumeFuel(e.costs.ForDropKeep(dk)); err != nil {
		return err
	}
	e.values.DropKeep(dk)
	e.branch(instr.I32())
	return nil
}

func execBrAdjustIfNez(e *Executor, instr isa.Instruction) error {
	if e.values.Pop().Bool() {
		dk := e.fetchAux(1).DropKeep()
		if err := e.consumeFuel(e.costs.ForDropKeep(dk)); err != nil {
			return err
		}
		e.values.DropKeep(dk)
		e.branch(instr.I32())
	} else {
		e.ip += 2
	}
	return nil
}

// execBrTable selects among N two-slot arms; an out-of-range selector picks
// the default, which is the last arm.
func execBrTable(e *Executor, instr isa.Instruction) error {
	targets := instr.U32()
	selector := e.values.Pop().U32()
	if selector > targets-1 {
		selector = targets - 1
	}
	e.ip += 2*selector + 1
	return nil
}

func execReturn(e *Executor, instr isa.Instruction) error {
	return e.doReturn(instr.DropKeep())
}

func execReturnIfNez(e *Executor, instr isa.Instruction) error {
	if e.values.Pop().Bool() {
		return e.doReturn(instr.DropKeep())
	}
	e.ip++
	return nil
}

func execReturnCallInternal(e *Executor, instr isa.Instruction) error {
	dk := e.fetchAux(1).DropKeep()
	e.values.DropKeep(dk)
	return e.tailCallInternal(instr.U32())
}

func execReturnCall(e *Executor, instr isa.Instruction) error {
	dk := e.fetchAux(1).DropKeep()
	e.values.DropKeep(dk)
	e.ip += 2
	if err := e.host.Invoke((*caller)(e), instr.U32()); err != nil {
		return err
	}
	return e.doReturn(isa.DropKeepNone)
}

func execReturnCallIndirect(e *Executor, instr isa.Instruction) error {
	dk := e.fetchAux(1).DropKeep()
	tableIdx := e.fetchAux(2).U32()
	selector := e.values.Pop().U32()
	e.values.DropKeep(dk)
	funcIdx, err := e.resolveFuncRef(tableIdx, selector)
	if err != nil {
		return err
	}
	e.lastSignature = int64(instr.U32())
	return e.tailCallInternal(funcIdx)
}

func execCallInternal(e *Executor, instr isa.Instruction) error {
	return e.callInternal(instr.U32(), 1)
}

// execCall invokes the host registry. The instruction pointer is advanced
// before the call so that a suspension resumes after it.
func execCall(e *Executor, instr isa.Instruction) error {
	e.ip++
	return e.host.Invoke((*caller)(e), instr.U32())
}

// execCallIndirect resolves the callee through the table named by the
// following aux slot and records the caller's declared signature for the
// callee-side check.
func execCallIndirect(e *Executor, instr isa.Instruction) error {
	tableIdx := e.fetchAux(1).U32()
	selector := e.values.Pop().U32()
	funcIdx, err := e.resolveFuncRef(tableIdx, selector)
	if err != nil {
		return err
	}
	e.lastSignature = int64(instr.U32())
	return e.callInternal(funcIdx, 2)
}

func execDrop(e *Executor, _ isa.Instruction) error {
	e.values.Pop()
	e.ip++
	return nil
}

func execSelect(e *Executor, _ isa.Instruction) error {
	v1, v2, c := e.values.Pop3()
	if c.Bool() {
		mustPush(e, v1)
	} else {
		mustPush(e, v2)
	}
	e.ip++
	return nil
}

func execLocalGet(e *Executor, instr isa.Instruction) error {
	if err := e.values.Push(e.values.Pick(int(instr.U32()))); err != nil {
		return err
	}
	e.ip++
	return nil
}

func execLocalSet(e *Executor, instr isa.Instruction) error {
	e.values.Put(int(instr.U32()), e.values.Top())
	e.values.Pop()
	e.ip++
	return nil
}

func execLocalTee(e *Executor, instr isa.Instruction) error {
	e.values.Put(int(instr.U32()), e.values.Top())
	e.ip++
	return nil
}

func execGlobalGet(e *Executor, instr isa.Instruction) error {
	if err := e.values.Push(e.globals.Get(instr.U32())); err != nil {
		return err
	}
	e.ip++
	return nil
}

func execGlobalSet(e *Executor, instr isa.Instruction) error {
	value := e.values.Pop()
	e.globals.Set(instr.U32(), value)
	if e.tracer != nil {
		e.tracer.OnGlobalChange(instr.U32(), value)
	}
	e.ip++
	return nil
}

func execRefFunc(e *Executor, instr isa.Instruction) error {
	if err := e.values.Push(exec.FuncRefFromIndex(instr.U32())); err != nil {
		return err
	}
	e.ip++
	return nil
}

func execConst(e *Executor, instr isa.Instruction) error {
	if err := e.values.Push(instr.Const()); err != nil {
		return err
	}
	e.ip++
	return nil
}

// mustPush is for net-non-growing handlers that popped before pushing; the
// capacity check cannot fail there.
func mustPush(e *Executor, v isa.UntypedValue) {
	_ = e.values.Push(v)
}
