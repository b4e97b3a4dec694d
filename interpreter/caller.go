package interpreter

import (
	"github.com/fluentlabs-xyz/rwasm/exec"
	"github.com/fluentlabs-xyz/rwasm/isa"
)

// caller adapts the executor to the host-call ABI. Host functions see the
// value stack and linear memory of the running invocation; they never touch
// the instruction pointer.
type caller Executor

var _ exec.Caller = (*caller)(nil)

func (c *caller) StackPush(v isa.UntypedValue) error {
	return c.values.Push(v)
}

func (c *caller) StackPop() isa.UntypedValue {
	return c.values.Pop()
}

func (c *caller) MemoryRead(offset uint64, buf []byte) error {
	return c.memory.Read(offset, buf)
}

func (c *caller) MemoryWrite(offset uint64, buf []byte) error {
	return c.memory.Write(offset, buf)
}

func (c *caller) ConsumeFuel(n uint64) error {
	return (*Executor)(c).consumeFuel(n)
}

func (c *caller) Exit(code int32) error {
	return &exec.ExitError{Code: code}
}
