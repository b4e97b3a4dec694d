// Package interpreter executes rWASM bytecode: a single-threaded
// fetch-execute loop over 9-byte instruction slots with fuel metering,
// WebAssembly-compliant trapping, and an explicit suspension point at the
// host-call boundary.
package interpreter

import (
	"errors"
	"fmt"

	rwasm "github.com/fluentlabs-xyz/rwasm"
	"github.com/fluentlabs-xyz/rwasm/exec"
	"github.com/fluentlabs-xyz/rwasm/isa"
)

// An Executor owns one invocation's mutable state: instruction pointer,
// value and call stacks, stores, and the fuel counter. The module itself is
// read-only and may be shared between executors.
type Executor struct {
	module *rwasm.Module
	cfg    rwasm.Config
	costs  exec.FuelCosts
	host   exec.HostRegistry

	ip       uint32
	values   *exec.ValueStack
	calls    *exec.CallStack
	memory   *exec.Memory
	tables   map[uint32]*exec.Table
	globals  *exec.Globals
	segments *exec.SegmentState

	fuelEnabled   bool
	fuelRemaining uint64
	lastSignature int64 // -1 when unset

	funcOffsets []uint32
	tracer      *Tracer
	halted      bool
	exitCode    int32
}

// New creates an executor positioned at the module's entrypoint.
func New(module *rwasm.Module, cfg rwasm.Config, host exec.HostRegistry) (*Executor, error) {
	if err := module.Validate(); err != nil {
		return nil, err
	}
	offsets := make([]uint32, len(module.FuncLengths))
	var acc uint32
	for i, length := range module.FuncLengths {
		offsets[i] = acc
		acc += length
	}
	e := &Executor{
		module:        module,
		cfg:           cfg,
		costs:         cfg.FuelCosts(),
		host:          host,
		values:        exec.NewValueStack(int(cfg.StackSize())),
		calls:         exec.NewCallStack(int(cfg.MaxRecursionDepth())),
		memory:        exec.NewMemory(cfg.MaxMemoryPages()),
		tables:        map[uint32]*exec.Table{},
		globals:       exec.NewGlobals(),
		segments:      exec.NewSegmentState(module.MemorySection, module.ElementSection),
		fuelEnabled:   cfg.FuelEnabled(),
		fuelRemaining: cfg.MaxFuel(),
		lastSignature: -1,
		funcOffsets:   offsets,
		ip:            module.EntrypointPC(),
	}
	if cfg.TracingEnabled() {
		e.tracer = NewTracer(cfg.Logger())
	}
	return e, nil
}

// PC returns the current instruction pointer; after a trap it names the
// faulting instruction.
func (e *Executor) PC() uint32 {
	return e.ip
}

// FuelRemaining returns the fuel left for this invocation, meaningful only
// with metering enabled.
func (e *Executor) FuelRemaining() uint64 {
	return e.fuelRemaining
}

// PushArg places an entrypoint argument on the value stack before Run.
func (e *Executor) PushArg(v isa.UntypedValue) error {
	return e.values.Push(v)
}

// Stack returns the live value stack, bottom first.
func (e *Executor) Stack() []isa.UntypedValue {
	return e.values.Slice()
}

// Memory returns the invocation's linear memory.
func (e *Executor) Memory() *exec.Memory {
	return e.memory
}

// Globals returns the invocation's global store.
func (e *Executor) Globals() *exec.Globals {
	return e.globals
}

// Reset rewinds the executor to the entrypoint with empty stacks. Stores
// (memory, tables, globals, segment flags) keep their state.
func (e *Executor) Reset() {
	e.ip = e.module.EntrypointPC()
	e.values.SetSp(0)
	e.calls.Reset()
	e.lastSignature = -1
	e.halted = false
	e.exitCode = 0
}

// Run drives the dispatch loop until normal termination, a trap, or a host
// suspension. Traps carry the faulting instruction via PC. After
// ErrHostSuspended the executor state stays intact and Run may be called
// again to resume.
func (e *Executor) Run() (int32, error) {
	if e.halted {
		return e.exitCode, nil
	}
	code := e.module.Code
	for {
		if int(e.ip) >= len(code) {
			return 0, fmt.Errorf("instruction pointer %d out of bounds", e.ip)
		}
		instr := code[e.ip]
		if !instr.Op.Valid() {
			return 0, fmt.Errorf("invalid opcode %#02x at instruction %d", byte(instr.Op), e.ip)
		}
		if e.tracer != nil {
			e.tracer.OnInstruction(e.ip, instr, e.values.Sp(), e.fuelRemaining)
		}
		pc := e.ip
		if err := dispatch[instr.Op](e, instr); err != nil {
			var exit *exec.ExitError
			if errors.As(err, &exit) {
				e.halted, e.exitCode = true, exit.Code
				return exit.Code, nil
			}
			if errors.Is(err, exec.ErrHostSuspended) {
				return 0, exec.ErrHostSuspended
			}
			// Host calls advance ip before invoking the host; a trap is
			// reported at the instruction that raised it.
			e.ip = pc
			return 0, err
		}
		if e.halted {
			return e.exitCode, nil
		}
	}
}

// consumeFuel charges n units, trapping before any other state mutation
// would occur.
func (e *Executor) consumeFuel(n uint64) error {
	if !e.fuelEnabled {
		return nil
	}
	if n > e.fuelRemaining {
		return isa.TrapOutOfFuel
	}
	e.fuelRemaining -= n
	return nil
}

// table returns the table at idx, creating an empty one on first use.
func (e *Executor) table(idx uint32) *exec.Table {
	t, ok := e.tables[idx]
	if !ok {
		t = exec.NewTable(e.cfg.MaxTableSize())
		e.tables[idx] = t
	}
	return t
}

// fetchAux returns the instruction at ip+offset; aux slots carry the
// secondary operands of multi-slot instructions.
func (e *Executor) fetchAux(offset uint32) isa.Instruction {
	return e.module.Code[e.ip+offset]
}

// branch applies a signed PC-relative offset measured in slots.
func (e *Executor) branch(offset int32) {
	e.ip = uint32(int64(e.ip) + int64(offset))
}

// callInternal enters the compiled function, recording a frame that returns
// to ip+skip.
func (e *Executor) callInternal(compiledFunc, skip uint32) error {
	if int(compiledFunc) >= len(e.funcOffsets) {
		return fmt.Errorf("unknown compiled function %d", compiledFunc)
	}
	frame := exec.CallFrame{
		ReturnIP: e.ip + skip,
		BaseSP:   uint32(e.values.Sp()),
	}
	if err := e.calls.Push(frame); err != nil {
		return err
	}
	if e.tracer != nil {
		e.tracer.OnCall(e.calls.Depth(), compiledFunc, frame)
	}
	e.ip = e.funcOffsets[compiledFunc]
	return nil
}

// tailCallInternal enters the compiled function without pushing a frame;
// the callee returns directly to the current caller.
func (e *Executor) tailCallInternal(compiledFunc uint32) error {
	if int(compiledFunc) >= len(e.funcOffsets) {
		return fmt.Errorf("unknown compiled function %d", compiledFunc)
	}
	e.ip = e.funcOffsets[compiledFunc]
	return nil
}

// doReturn unwinds the current frame. Returning with an empty call stack
// ends execution normally.
func (e *Executor) doReturn(dk isa.DropKeep) error {
	if err := e.consumeFuel(e.costs.ForDropKeep(dk)); err != nil {
		return err
	}
	e.values.DropKeep(dk)
	frame, ok := e.calls.Pop()
	if !ok {
		e.halted = true
		return nil
	}
	if e.tracer != nil {
		e.tracer.OnReturn(e.calls.Depth(), frame, e.values.Sp())
	}
	e.ip = frame.ReturnIP
	return nil
}

// resolveFuncRef resolves a table entry to a compiled function index.
func (e *Executor) resolveFuncRef(tableIdx uint32, selector uint32) (uint32, error) {
	ref, err := e.table(tableIdx).Get(selector)
	if err != nil {
		return 0, err
	}
	funcIdx, ok := exec.FuncRefIndex(ref)
	if !ok {
		return 0, isa.TrapIndirectCallToNull
	}
	return funcIdx, nil
}
