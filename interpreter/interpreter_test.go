package interpreter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	rwasm "github.com/fluentlabs-xyz/rwasm"
	"github.com/fluentlabs-xyz/rwasm/exec"
	"github.com/fluentlabs-xyz/rwasm/interpreter"
	"github.com/fluentlabs-xyz/rwasm/isa"
	"github.com/fluentlabs-xyz/rwasm/translate"
	"github.com/fluentlabs-xyz/rwasm/wasm"
	"github.com/fluentlabs-xyz/rwasm/wasm/code"
)

func i32Sig(params, results int) wasm.FunctionSig {
	sig := wasm.FunctionSig{}
	for i := 0; i < params; i++ {
		sig.Params = append(sig.Params, wasm.ValueTypeI32)
	}
	for i := 0; i < results; i++ {
		sig.Results = append(sig.Results, wasm.ValueTypeI32)
	}
	return sig
}

func mainModule(sig wasm.FunctionSig, locals []wasm.LocalDecl, body ...code.Instruction) *wasm.Module {
	return &wasm.Module{
		Types:   []wasm.FunctionSig{sig},
		Funcs:   []wasm.Function{{SigIdx: 0, Locals: locals, Body: body}},
		Exports: []wasm.Export{{Name: "main", FuncIdx: 0}},
	}
}

func runModule(t *testing.T, mod *wasm.Module, cfg rwasm.Config, host exec.HostRegistry, args ...isa.UntypedValue) (*interpreter.Executor, int32, error) {
	t.Helper()
	out, err := translate.Translate(mod, cfg)
	require.NoError(t, err)
	e, err := interpreter.New(out, cfg, host)
	require.NoError(t, err)
	for _, arg := range args {
		require.NoError(t, e.PushArg(arg))
	}
	exitCode, err := e.Run()
	return e, exitCode, err
}

func TestConstFold(t *testing.T) {
	mod := mainModule(i32Sig(0, 1), nil,
		code.I32Const(100),
		code.I32Const(20),
		code.Nullary(code.OpI32Add),
		code.End(),
	)
	cfg := rwasm.NewConfig().WithMaxFuel(100)
	e, exitCode, err := runModule(t, mod, cfg, nil)
	require.NoError(t, err)
	require.Equal(t, int32(0), exitCode)

	stack := e.Stack()
	require.NotEmpty(t, stack)
	require.Equal(t, int32(120), stack[len(stack)-1].I32())

	// function block cost: 3 body instructions + the return; entrypoint
	// block cost: call + return
	require.Equal(t, uint64(100-6), e.FuelRemaining())
}

func TestMemoryStoreLoad(t *testing.T) {
	mod := mainModule(i32Sig(0, 1), nil,
		code.I32Const(65535),
		code.I32Const(0xaa),
		code.Store(code.OpI32Store8, 0),
		code.I32Const(65535),
		code.Load(code.OpI32Load8U, 0),
		code.End(),
	)
	mod.Memory = &wasm.Memory{MinPages: 1, MaxPages: 2, HasMax: true}
	e, _, err := runModule(t, mod, rwasm.NewConfig(), nil)
	require.NoError(t, err)
	stack := e.Stack()
	require.Equal(t, int32(0xaa), stack[len(stack)-1].I32())
}

func TestMemoryGrowBeyondMax(t *testing.T) {
	mod := mainModule(i32Sig(0, 1), nil,
		code.I32Const(2),
		code.Nullary(code.OpMemoryGrow),
		code.End(),
	)
	mod.Memory = &wasm.Memory{MinPages: 1, MaxPages: 2, HasMax: true}
	e, _, err := runModule(t, mod, rwasm.NewConfig(), nil)
	require.NoError(t, err)
	stack := e.Stack()
	require.Equal(t, uint32(0xffffffff), stack[len(stack)-1].U32())
	require.Equal(t, uint32(1), e.Memory().Pages())
}

func TestIndirectCallSignatureMismatch(t *testing.T) {
	callee := wasm.Function{SigIdx: 0, Body: []code.Instruction{
		code.Index(code.OpLocalGet, 0),
		code.End(),
	}}
	caller := wasm.Function{SigIdx: 2, Body: []code.Instruction{
		code.I32Const(5), // argument
		code.I32Const(0), // table selector
		code.CallIndirect(1, 0),
		code.End(),
	}}
	mod := &wasm.Module{
		Types: []wasm.FunctionSig{
			i32Sig(1, 1), // callee's actual type: (i32) -> i32
			{Params: []wasm.ValueType{wasm.ValueTypeI64}, Results: []wasm.ValueType{wasm.ValueTypeI32}},
			i32Sig(0, 1),
		},
		Funcs:  []wasm.Function{callee, caller},
		Tables: []wasm.Table{{ElemType: wasm.ValueTypeFuncRef, MinSize: 1}},
		ElementSegments: []wasm.ElementSegment{
			{Active: true, TableIdx: 0, Offset: 0, Funcs: []uint32{0}},
		},
		Exports: []wasm.Export{{Name: "main", FuncIdx: 1}},
	}
	_, _, err := runModule(t, mod, rwasm.NewConfig(), nil)
	require.Equal(t, isa.TrapBadSignature, err)
}

func TestIndirectCallMatchingSignature(t *testing.T) {
	callee := wasm.Function{SigIdx: 0, Body: []code.Instruction{
		code.Index(code.OpLocalGet, 0),
		code.I32Const(1),
		code.Nullary(code.OpI32Add),
		code.End(),
	}}
	caller := wasm.Function{SigIdx: 1, Body: []code.Instruction{
		code.I32Const(41),
		code.I32Const(0),
		code.CallIndirect(0, 0),
		code.End(),
	}}
	mod := &wasm.Module{
		Types:  []wasm.FunctionSig{i32Sig(1, 1), i32Sig(0, 1)},
		Funcs:  []wasm.Function{callee, caller},
		Tables: []wasm.Table{{ElemType: wasm.ValueTypeFuncRef, MinSize: 1}},
		ElementSegments: []wasm.ElementSegment{
			{Active: true, TableIdx: 0, Offset: 0, Funcs: []uint32{0}},
		},
		Exports: []wasm.Export{{Name: "main", FuncIdx: 1}},
	}
	e, _, err := runModule(t, mod, rwasm.NewConfig(), nil)
	require.NoError(t, err)
	stack := e.Stack()
	require.Equal(t, int32(42), stack[len(stack)-1].I32())
}

func TestIndirectCallToNull(t *testing.T) {
	caller := wasm.Function{SigIdx: 1, Body: []code.Instruction{
		code.I32Const(0),
		code.CallIndirect(0, 0),
		code.End(),
	}}
	helper := wasm.Function{SigIdx: 0, Body: []code.Instruction{code.End()}}
	mod := &wasm.Module{
		Types:  []wasm.FunctionSig{i32Sig(0, 0), i32Sig(0, 0)},
		Funcs:  []wasm.Function{caller, helper},
		Tables: []wasm.Table{{ElemType: wasm.ValueTypeFuncRef, MinSize: 2}},
		ElementSegments: []wasm.ElementSegment{
			// entry 1 is initialized, entry 0 stays null
			{Active: true, TableIdx: 0, Offset: 1, Funcs: []uint32{1}},
		},
		Exports: []wasm.Export{{Name: "main", FuncIdx: 0}},
	}
	_, _, err := runModule(t, mod, rwasm.NewConfig(), nil)
	require.Equal(t, isa.TrapIndirectCallToNull, err)
}

func TestDivisionTrap(t *testing.T) {
	mod := mainModule(i32Sig(0, 1), nil,
		code.I32Const(1),
		code.I32Const(0),
		code.Nullary(code.OpI32DivS),
		code.End(),
	)
	e, _, err := runModule(t, mod, rwasm.NewConfig(), nil)
	require.Equal(t, isa.TrapIntegerDivisionByZero, err)
	// the trap names the faulting instruction
	require.Equal(t, isa.OpI32DivS, moduleCodeAt(t, mod, e.PC()))
}

func moduleCodeAt(t *testing.T, mod *wasm.Module, pc uint32) isa.Opcode {
	t.Helper()
	out, err := translate.Translate(mod, rwasm.NewConfig())
	require.NoError(t, err)
	return out.Code[pc].Op
}

func TestOutOfFuel(t *testing.T) {
	// Three metered blocks of cost 1 each; budget for two.
	module := &rwasm.Module{
		Code: []isa.Instruction{
			isa.NewU32(isa.OpConsumeFuel, 1),
			isa.NewConst(isa.OpI32Const, isa.ValueFromI32(1)),
			isa.NewU32(isa.OpGlobalSet, 0),
			isa.NewU32(isa.OpConsumeFuel, 1),
			isa.NewConst(isa.OpI32Const, isa.ValueFromI32(2)),
			isa.NewU32(isa.OpGlobalSet, 0),
			isa.NewU32(isa.OpConsumeFuel, 1),
			isa.NewConst(isa.OpI32Const, isa.ValueFromI32(3)),
			isa.NewU32(isa.OpGlobalSet, 0),
			isa.NewDropKeepOp(isa.OpReturn, isa.DropKeepNone),
		},
		FuncLengths: []uint32{10},
	}
	cfg := rwasm.NewConfig().WithMaxFuel(2)
	e, err := interpreter.New(module, cfg, nil)
	require.NoError(t, err)
	_, err = e.Run()
	require.Equal(t, isa.TrapOutOfFuel, err)
	// only the first two blocks executed
	require.Equal(t, int32(2), e.Globals().Get(0).I32())
	require.Equal(t, uint32(6), e.PC())
}

func TestBrTableDefault(t *testing.T) {
	body := []code.Instruction{
		code.Block(code.BlockType{}), // $L
		code.Block(code.BlockType{}),
		code.Index(code.OpLocalGet, 0),
		code.BrTable([]uint32{0}, 1),
		code.End(),
		code.I32Const(7),
		code.Nullary(code.OpReturn),
		code.End(),
		code.I32Const(42),
		code.End(),
	}
	mod := mainModule(i32Sig(1, 1), nil, body...)

	e, _, err := runModule(t, mod, rwasm.NewConfig(), nil, isa.ValueFromI32(99))
	require.NoError(t, err)
	stack := e.Stack()
	require.Equal(t, int32(42), stack[len(stack)-1].I32())

	e, _, err = runModule(t, mod, rwasm.NewConfig(), nil, isa.ValueFromI32(0))
	require.NoError(t, err)
	stack = e.Stack()
	require.Equal(t, int32(7), stack[len(stack)-1].I32())
}

func TestLoopSum(t *testing.T) {
	// acc += n; n-- until zero: computes n*(n+1)/2
	mod := mainModule(i32Sig(1, 1), []wasm.LocalDecl{{Count: 1, Type: wasm.ValueTypeI32}},
		code.Loop(code.BlockType{}),
		code.Index(code.OpLocalGet, 1),
		code.Index(code.OpLocalGet, 0),
		code.Nullary(code.OpI32Add),
		code.Index(code.OpLocalSet, 1),
		code.Index(code.OpLocalGet, 0),
		code.I32Const(1),
		code.Nullary(code.OpI32Sub),
		code.Index(code.OpLocalTee, 0),
		code.BrIf(0),
		code.End(),
		code.Index(code.OpLocalGet, 1),
		code.End(),
	)
	e, _, err := runModule(t, mod, rwasm.NewConfig(), nil, isa.ValueFromI32(5))
	require.NoError(t, err)
	stack := e.Stack()
	require.Equal(t, []isa.UntypedValue{isa.ValueFromI32(15)}, stack)
}

func TestBlockBranchKeepsResults(t *testing.T) {
	mod := mainModule(i32Sig(0, 1), nil,
		code.Block(code.BlockType{Results: 1}),
		code.I32Const(5),
		code.I32Const(9),
		code.Br(0),
		code.End(),
		code.End(),
	)
	e, _, err := runModule(t, mod, rwasm.NewConfig(), nil)
	require.NoError(t, err)
	stack := e.Stack()
	require.Equal(t, []isa.UntypedValue{isa.ValueFromI32(9)}, stack)
}

func TestRecursionOverflow(t *testing.T) {
	mod := mainModule(i32Sig(0, 0), nil,
		code.Call(0),
		code.End(),
	)
	_, _, err := runModule(t, mod, rwasm.NewConfig().WithMaxRecursionDepth(64), nil)
	require.Equal(t, isa.TrapStackOverflow, err)
}

func TestUnreachableTrap(t *testing.T) {
	mod := mainModule(i32Sig(0, 0), nil,
		code.Nullary(code.OpUnreachable),
		code.End(),
	)
	_, _, err := runModule(t, mod, rwasm.NewConfig(), nil)
	require.Equal(t, isa.TrapUnreachableCodeReached, err)
}

func TestHostCall(t *testing.T) {
	mod := &wasm.Module{
		Types: []wasm.FunctionSig{i32Sig(1, 1), i32Sig(0, 1)},
		ImportedFuncs: []wasm.ImportFunc{
			{Module: "env", Name: "bump", SigIdx: 0, HostIdx: 7},
		},
		Funcs: []wasm.Function{
			{SigIdx: 1, Body: []code.Instruction{
				code.I32Const(5),
				code.Call(0),
				code.End(),
			}},
		},
		Exports: []wasm.Export{{Name: "main", FuncIdx: 1}},
	}
	host := exec.HostRegistry{
		7: func(caller exec.Caller) error {
			v := caller.StackPop()
			return caller.StackPush(isa.ValueFromI32(v.I32() + 1))
		},
	}
	e, _, err := runModule(t, mod, rwasm.NewConfig(), host)
	require.NoError(t, err)
	stack := e.Stack()
	require.Equal(t, int32(6), stack[len(stack)-1].I32())
}

func TestHostExitCode(t *testing.T) {
	mod := &wasm.Module{
		Types: []wasm.FunctionSig{i32Sig(0, 0)},
		ImportedFuncs: []wasm.ImportFunc{
			{Module: "env", Name: "exit", SigIdx: 0, HostIdx: 1},
		},
		Funcs: []wasm.Function{
			{SigIdx: 0, Body: []code.Instruction{code.Call(0), code.End()}},
		},
		Exports: []wasm.Export{{Name: "main", FuncIdx: 1}},
	}
	host := exec.HostRegistry{
		1: func(caller exec.Caller) error {
			return caller.Exit(33)
		},
	}
	_, exitCode, err := runModule(t, mod, rwasm.NewConfig(), host)
	require.NoError(t, err)
	require.Equal(t, int32(33), exitCode)
}

func TestUnknownHostFunction(t *testing.T) {
	mod := &wasm.Module{
		Types: []wasm.FunctionSig{i32Sig(0, 0)},
		ImportedFuncs: []wasm.ImportFunc{
			{Module: "env", Name: "mystery", SigIdx: 0, HostIdx: 9},
		},
		Funcs: []wasm.Function{
			{SigIdx: 0, Body: []code.Instruction{code.Call(0), code.End()}},
		},
		Exports: []wasm.Export{{Name: "main", FuncIdx: 1}},
	}
	_, _, err := runModule(t, mod, rwasm.NewConfig(), exec.HostRegistry{})
	require.Equal(t, isa.HostFailure(9), err)
}

func suspendingModule() *wasm.Module {
	return &wasm.Module{
		Types: []wasm.FunctionSig{i32Sig(0, 1), i32Sig(0, 1)},
		ImportedFuncs: []wasm.ImportFunc{
			{Module: "env", Name: "await", SigIdx: 0, HostIdx: 1},
		},
		Funcs: []wasm.Function{
			{SigIdx: 1, Body: []code.Instruction{
				code.Call(0),
				code.I32Const(1),
				code.Nullary(code.OpI32Add),
				code.End(),
			}},
		},
		Exports: []wasm.Export{{Name: "main", FuncIdx: 1}},
	}
}

func TestHostSuspensionAndResume(t *testing.T) {
	host := exec.HostRegistry{
		1: func(caller exec.Caller) error {
			if err := caller.StackPush(isa.ValueFromI32(7)); err != nil {
				return err
			}
			return exec.ErrHostSuspended
		},
	}
	out, err := translate.Translate(suspendingModule(), rwasm.NewConfig())
	require.NoError(t, err)
	e, err := interpreter.New(out, rwasm.NewConfig(), host)
	require.NoError(t, err)

	_, err = e.Run()
	require.ErrorIs(t, err, exec.ErrHostSuspended)

	// the executor state survives; resuming picks up after the host call
	_, err = e.Run()
	require.NoError(t, err)
	stack := e.Stack()
	require.Equal(t, int32(8), stack[len(stack)-1].I32())
}

func TestSnapshotRestore(t *testing.T) {
	host := exec.HostRegistry{
		1: func(caller exec.Caller) error {
			if err := caller.StackPush(isa.ValueFromI32(7)); err != nil {
				return err
			}
			return exec.ErrHostSuspended
		},
	}
	out, err := translate.Translate(suspendingModule(), rwasm.NewConfig())
	require.NoError(t, err)
	e, err := interpreter.New(out, rwasm.NewConfig(), host)
	require.NoError(t, err)

	_, err = e.Run()
	require.ErrorIs(t, err, exec.ErrHostSuspended)
	state := e.Snapshot()

	// replay the snapshot into a fresh executor over the same module
	resumed, err := interpreter.New(out, rwasm.NewConfig(), host)
	require.NoError(t, err)
	require.NoError(t, resumed.Restore(state))

	_, err = resumed.Run()
	require.NoError(t, err)
	stack := resumed.Stack()
	require.Equal(t, int32(8), stack[len(stack)-1].I32())
}

func TestDroppedSegmentInitTraps(t *testing.T) {
	mod := &wasm.Module{
		Types: []wasm.FunctionSig{i32Sig(0, 0)},
		Funcs: []wasm.Function{
			{SigIdx: 0, Body: []code.Instruction{
				code.I32Const(0), code.I32Const(0), code.I32Const(3),
				code.MemoryInit(0),
				code.DataDrop(0),
				code.I32Const(0), code.I32Const(0), code.I32Const(3),
				code.MemoryInit(0),
				code.End(),
			}},
		},
		Memory:       &wasm.Memory{MinPages: 1},
		DataSegments: []wasm.DataSegment{{Active: false, Data: []byte("abc")}},
		Exports:      []wasm.Export{{Name: "main", FuncIdx: 0}},
	}
	_, _, err := runModule(t, mod, rwasm.NewConfig(), nil)
	require.Equal(t, isa.TrapMemoryOutOfBounds, err)
}

func TestDroppedSegmentZeroLengthInitIsNoop(t *testing.T) {
	mod := &wasm.Module{
		Types: []wasm.FunctionSig{i32Sig(0, 0)},
		Funcs: []wasm.Function{
			{SigIdx: 0, Body: []code.Instruction{
				code.DataDrop(0),
				code.I32Const(0), code.I32Const(0), code.I32Const(0),
				code.MemoryInit(0),
				code.End(),
			}},
		},
		Memory:       &wasm.Memory{MinPages: 1},
		DataSegments: []wasm.DataSegment{{Active: false, Data: []byte("abc")}},
		Exports:      []wasm.Export{{Name: "main", FuncIdx: 0}},
	}
	_, _, err := runModule(t, mod, rwasm.NewConfig(), nil)
	require.NoError(t, err)
}

func TestPassiveSegmentInit(t *testing.T) {
	mod := &wasm.Module{
		Types: []wasm.FunctionSig{i32Sig(0, 1)},
		Funcs: []wasm.Function{
			{SigIdx: 0, Body: []code.Instruction{
				code.I32Const(8), code.I32Const(0), code.I32Const(3),
				code.MemoryInit(0),
				code.I32Const(9),
				code.Load(code.OpI32Load8U, 0),
				code.End(),
			}},
		},
		Memory:       &wasm.Memory{MinPages: 1},
		DataSegments: []wasm.DataSegment{{Active: false, Data: []byte{0x11, 0x22, 0x33}}},
		Exports:      []wasm.Export{{Name: "main", FuncIdx: 0}},
	}
	e, _, err := runModule(t, mod, rwasm.NewConfig(), nil)
	require.NoError(t, err)
	stack := e.Stack()
	require.Equal(t, int32(0x22), stack[len(stack)-1].I32())
}

func TestStateRouter(t *testing.T) {
	mod := &wasm.Module{
		Types: []wasm.FunctionSig{i32Sig(0, 0)},
		Funcs: []wasm.Function{
			{SigIdx: 0, Body: []code.Instruction{
				code.I32Const(1),
				code.Index(code.OpGlobalSet, 0),
				code.End(),
			}},
			{SigIdx: 0, Body: []code.Instruction{
				code.I32Const(2),
				code.Index(code.OpGlobalSet, 0),
				code.End(),
			}},
		},
		Globals: []wasm.Global{{Type: wasm.ValueTypeI32, Mutable: true}},
		Exports: []wasm.Export{
			{Name: "deploy", FuncIdx: 0},
			{Name: "call", FuncIdx: 1},
		},
	}
	cfg := rwasm.NewConfig().WithStateRouter(rwasm.StateRouterConfig{
		States: []string{"deploy", "call"},
	})

	e, _, err := runModule(t, mod, cfg, nil, isa.ValueFromI32(1))
	require.NoError(t, err)
	require.Equal(t, int32(2), e.Globals().Get(0).I32())

	e, _, err = runModule(t, mod, cfg, nil, isa.ValueFromI32(0))
	require.NoError(t, err)
	require.Equal(t, int32(1), e.Globals().Get(0).I32())

	// out-of-range ordinals fall through to the default arm
	e, _, err = runModule(t, mod, cfg, nil, isa.ValueFromI32(99))
	require.NoError(t, err)
	require.Equal(t, int32(0), e.Globals().Get(0).I32())
}

func TestStackBalanceAfterReturn(t *testing.T) {
	mod := &wasm.Module{
		Types: []wasm.FunctionSig{i32Sig(2, 1), i32Sig(0, 1)},
		Funcs: []wasm.Function{
			{SigIdx: 0, Body: []code.Instruction{
				code.Index(code.OpLocalGet, 0),
				code.Index(code.OpLocalGet, 1),
				code.Nullary(code.OpI32Add),
				code.End(),
			}},
			{SigIdx: 1, Body: []code.Instruction{
				code.I32Const(30),
				code.I32Const(12),
				code.Call(0),
				code.End(),
			}},
		},
		Exports: []wasm.Export{{Name: "main", FuncIdx: 1}},
	}
	e, _, err := runModule(t, mod, rwasm.NewConfig(), nil)
	require.NoError(t, err)
	// everything except the final result has been unwound
	require.Equal(t, []isa.UntypedValue{isa.ValueFromI32(42)}, e.Stack())
}

func TestExecuteFromBinary(t *testing.T) {
	mod := mainModule(i32Sig(0, 0), nil,
		code.I32Const(2),
		code.I32Const(3),
		code.Nullary(code.OpI32Mul),
		code.Nullary(code.OpDrop),
		code.End(),
	)
	binary, err := translate.TranslateToBinary(mod, rwasm.NewConfig())
	require.NoError(t, err)

	exitCode, err := interpreter.Execute(binary, nil, nil, rwasm.NewConfig())
	require.NoError(t, err)
	require.Equal(t, int32(0), exitCode)
}
