package exec

import (
	"errors"
	"fmt"

	"github.com/fluentlabs-xyz/rwasm/isa"
)

// Caller is the view of the executing machine handed to host functions.
// Arguments arrive on the value stack; results are pushed back the same way.
type Caller interface {
	// StackPush pushes a value onto the value stack.
	StackPush(v isa.UntypedValue) error
	// StackPop pops the topmost value.
	StackPop() isa.UntypedValue
	// MemoryRead copies linear memory into buf.
	MemoryRead(offset uint64, buf []byte) error
	// MemoryWrite copies buf into linear memory.
	MemoryWrite(offset uint64, buf []byte) error
	// ConsumeFuel charges fuel against the running invocation.
	ConsumeFuel(n uint64) error
	// Exit terminates execution with the given exit code. The returned
	// error must be propagated by the host function.
	Exit(code int32) error
}

// A HostFunc implements a single host function. A non-nil error terminates
// the invocation: ExitError ends it with an exit code, ErrHostSuspended
// pauses it, any HostFailure (or other error) surfaces as a trap.
type HostFunc func(caller Caller) error

// A HostRegistry maps host function indices to their implementations. The
// interpreter invokes it for every Call instruction whose FuncIdx has no
// internal resolution.
type HostRegistry map[uint32]HostFunc

// Invoke dispatches a host call, failing with HostFailure for unknown
// indices.
func (r HostRegistry) Invoke(caller Caller, funcIdx uint32) error {
	fn, ok := r[funcIdx]
	if !ok {
		return isa.HostFailure(funcIdx)
	}
	return fn(caller)
}

// ExitError is the sentinel a host function returns to end execution with an
// explicit exit code.
type ExitError struct {
	Code int32
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("execution halted with exit code %d", e.Code)
}

// ErrHostSuspended is the sentinel a host function returns to pause the
// invocation at the call boundary. The executor preserves its state; calling
// Run again resumes right after the host call.
var ErrHostSuspended = errors.New("host suspended execution")
