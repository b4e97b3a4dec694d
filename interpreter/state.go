package interpreter

import (
	"github.com/fluentlabs-xyz/rwasm/exec"
	"github.com/fluentlabs-xyz/rwasm/isa"
)

// An ExecutionState is a resumable snapshot of an invocation: instruction
// pointer, both stacks, the fuel counter, and the pending indirect-call
// signature. The stores (memory, tables, globals, segment flags) are owned
// by the executor and are not part of the snapshot.
type ExecutionState struct {
	IP            uint32
	Values        []isa.UntypedValue
	Frames        []exec.CallFrame
	FuelRemaining uint64
	LastSignature int64
}

// Snapshot captures the current execution state. It is only meaningful at a
// host-call boundary; mid-instruction state never escapes the dispatch
// loop.
func (e *Executor) Snapshot() ExecutionState {
	return ExecutionState{
		IP:            e.ip,
		Values:        append([]isa.UntypedValue(nil), e.values.Slice()...),
		Frames:        append([]exec.CallFrame(nil), e.calls.Frames()...),
		FuelRemaining: e.fuelRemaining,
		LastSignature: e.lastSignature,
	}
}

// Restore replays a snapshot into the executor. Execution resumes from the
// snapshot's instruction pointer on the next Run.
func (e *Executor) Restore(state ExecutionState) error {
	e.values.SetSp(0)
	for _, v := range state.Values {
		if err := e.values.Push(v); err != nil {
			return err
		}
	}
	e.calls.Reset()
	for _, frame := range state.Frames {
		if err := e.calls.Push(frame); err != nil {
			return err
		}
	}
	e.ip = state.IP
	e.fuelRemaining = state.FuelRemaining
	e.lastSignature = state.LastSignature
	e.halted = false
	return nil
}
