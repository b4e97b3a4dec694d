package translate

import (
	rwasm "github.com/fluentlabs-xyz/rwasm"
	"github.com/fluentlabs-xyz/rwasm/exec"
	"github.com/fluentlabs-xyz/rwasm/isa"
	"github.com/fluentlabs-xyz/rwasm/wasm"
	"github.com/fluentlabs-xyz/rwasm/wasm/code"
)

type translator struct {
	mod   *wasm.Module
	cfg   rwasm.Config
	costs exec.FuelCosts
	b     *streamBuilder
	segs  *segmentBuilder
}

type frameKind int

const (
	frameBlock frameKind = iota
	frameLoop
	frameIf
)

// A controlFrame tracks one open block/loop/if during lowering. branchLabel
// is where a branch targeting the frame lands: the loop header for loops,
// the instruction after the block otherwise.
type controlFrame struct {
	kind        frameKind
	params      int
	results     int
	stackHeight int // emulated height at entry, frame params excluded

	branchLabel labelRef
	elseLabel   labelRef

	consumeFuel    int // index of the frame's ConsumeFuel, -1 unmetered
	entryReachable bool
	elseTaken      bool
}

// A funcTranslator lowers a single function body. The emulated stack height
// counts locals and operands; parameters sit below height zero.
type funcTranslator struct {
	t *translator

	numParams  int
	numResults int
	height     int
	reachable  bool
	frames     []controlFrame
}

func (f *funcTranslator) b() *streamBuilder {
	return f.t.b
}

func (f *funcTranslator) top() *controlFrame {
	return &f.frames[len(f.frames)-1]
}

func (f *funcTranslator) bumpFuel(delta uint64) {
	if f.t.cfg.FuelEnabled() {
		f.b().bumpFuel(f.top().consumeFuel, delta)
	}
}

func (f *funcTranslator) pushConsumeFuel() int {
	if !f.t.cfg.FuelEnabled() {
		return -1
	}
	// The block's static cost accumulates into the operand as its member
	// instructions are translated.
	return f.b().emitU32(isa.OpConsumeFuel, 0)
}

// localDepth converts a source-level local index into a stack depth for the
// current emulated height.
func (f *funcTranslator) localDepth(localIdx uint32) uint32 {
	return uint32(f.height + f.numParams - 1 - int(localIdx))
}

// computeDropKeep determines the stack unwind for a branch to the frame at
// the given relative depth.
func (f *funcTranslator) computeDropKeep(depth uint32) (isa.DropKeep, error) {
	frame := &f.frames[len(f.frames)-1-int(depth)]
	keep := frame.results
	if frame.kind == frameLoop {
		keep = frame.params
	}
	diff := f.height - frame.stackHeight
	if keep > diff {
		return isa.DropKeep{}, errorf(ErrStackUnderflow,
			"branch keeps %d values with only %d available", keep, diff)
	}
	return isa.NewDropKeep(diff-keep, keep)
}

// returnDropKeep determines the unwind for returning from the function:
// everything above the caller's arguments goes, the topmost results stay.
func (f *funcTranslator) returnDropKeep() (isa.DropKeep, error) {
	keep := f.numResults
	if keep > f.height+f.numParams {
		return isa.DropKeep{}, errorf(ErrStackUnderflow,
			"return keeps %d values with only %d available", keep, f.height+f.numParams)
	}
	return isa.NewDropKeep(f.height+f.numParams-keep, keep)
}

func (f *funcTranslator) isRootDepth(depth uint32) bool {
	return int(depth) == len(f.frames)-1
}

func (f *funcTranslator) markUnreachable() {
	f.reachable = false
}

func (f *funcTranslator) visitReturn() error {
	dk, err := f.returnDropKeep()
	if err != nil {
		return err
	}
	f.bumpFuel(f.t.costs.Base + f.t.costs.ForDropKeep(dk))
	f.b().emit(isa.NewDropKeepOp(isa.OpReturn, dk))
	f.markUnreachable()
	return nil
}

func (f *funcTranslator) visitBr(depth uint32) error {
	if f.isRootDepth(depth) {
		return f.visitReturn()
	}
	dk, err := f.computeDropKeep(depth)
	if err != nil {
		return err
	}
	f.bumpFuel(f.t.costs.Base + f.t.costs.ForDropKeep(dk))
	target := f.frames[len(f.frames)-1-int(depth)].branchLabel
	if dk.IsNoop() {
		f.b().emitBranch(isa.OpBr, target)
	} else {
		f.b().emitBranch(isa.OpBrAdjust, target)
		f.b().emit(isa.NewDropKeepOp(isa.OpReturn, dk))
	}
	f.markUnreachable()
	return nil
}

func (f *funcTranslator) visitBrIf(depth uint32) error {
	f.height-- // condition
	if f.isRootDepth(depth) {
		dk, err := f.returnDropKeep()
		if err != nil {
			return err
		}
		f.bumpFuel(f.t.costs.Base + f.t.costs.ForDropKeep(dk))
		f.b().emit(isa.NewDropKeepOp(isa.OpReturnIfNez, dk))
		return nil
	}
	dk, err := f.computeDropKeep(depth)
	if err != nil {
		return err
	}
	f.bumpFuel(f.t.costs.Base + f.t.costs.ForDropKeep(dk))
	target := f.frames[len(f.frames)-1-int(depth)].branchLabel
	if dk.IsNoop() {
		f.b().emitBranch(isa.OpBrIfNez, target)
	} else {
		f.b().emitBranch(isa.OpBrAdjustIfNez, target)
		f.b().emit(isa.NewDropKeepOp(isa.OpReturn, dk))
	}
	return nil
}

// visitBrTable lowers br_table into a BrTable header followed by one
// two-slot arm per target, the default last. Out-of-range selectors pick the
// default at run time.
func (f *funcTranslator) visitBrTable(instr *code.Instruction) error {
	f.height-- // selector
	arms := make([]uint32, 0, len(instr.Labels)+1)
	arms = append(arms, instr.Labels...)
	arms = append(arms, instr.Default)

	var maxDropKeepFuel uint64
	f.b().emit(isa.NewU32(isa.OpBrTable, uint32(len(arms))))
	for _, depth := range arms {
		if f.isRootDepth(depth) {
			dk, err := f.returnDropKeep()
			if err != nil {
				return err
			}
			if cost := f.t.costs.ForDropKeep(dk); cost > maxDropKeepFuel {
				maxDropKeepFuel = cost
			}
			// Return arms still occupy two slots to keep dispatch uniform.
			f.b().emit(isa.NewDropKeepOp(isa.OpReturn, dk))
			f.b().emit(isa.NewDropKeepOp(isa.OpReturn, dk))
			continue
		}
		dk, err := f.computeDropKeep(depth)
		if err != nil {
			return err
		}
		if cost := f.t.costs.ForDropKeep(dk); cost > maxDropKeepFuel {
			maxDropKeepFuel = cost
		}
		target := f.frames[len(f.frames)-1-int(depth)].branchLabel
		f.b().emitBranch(isa.OpBrAdjust, target)
		f.b().emit(isa.NewDropKeepOp(isa.OpReturn, dk))
	}
	f.bumpFuel(f.t.costs.Base + maxDropKeepFuel)
	f.markUnreachable()
	return nil
}

func (f *funcTranslator) visitBlock(bt code.BlockType) {
	f.frames = append(f.frames, controlFrame{
		kind:           frameBlock,
		params:         bt.Params,
		results:        bt.Results,
		stackHeight:    f.height - bt.Params,
		branchLabel:    f.b().newLabel(),
		consumeFuel:    f.top().consumeFuel, // blocks run unconditionally
		entryReachable: true,
	})
}

func (f *funcTranslator) visitLoop(bt code.BlockType) {
	header := f.b().newLabel()
	f.b().pinLabel(header)
	consumeFuel := f.pushConsumeFuel()
	f.frames = append(f.frames, controlFrame{
		kind:           frameLoop,
		params:         bt.Params,
		results:        bt.Results,
		stackHeight:    f.height - bt.Params,
		branchLabel:    header,
		consumeFuel:    consumeFuel,
		entryReachable: true,
	})
}

func (f *funcTranslator) visitIf(bt code.BlockType) {
	f.height-- // condition
	elseLabel := f.b().newLabel()
	endLabel := f.b().newLabel()
	f.bumpFuel(f.t.costs.Base)
	f.b().emitBranch(isa.OpBrIfEqz, elseLabel)
	consumeFuel := f.pushConsumeFuel()
	f.frames = append(f.frames, controlFrame{
		kind:           frameIf,
		params:         bt.Params,
		results:        bt.Results,
		stackHeight:    f.height - bt.Params,
		branchLabel:    endLabel,
		elseLabel:      elseLabel,
		consumeFuel:    consumeFuel,
		entryReachable: true,
	})
}

func (f *funcTranslator) pushUnreachableFrame(kind frameKind, bt code.BlockType) {
	f.frames = append(f.frames, controlFrame{
		kind:    kind,
		params:  bt.Params,
		results: bt.Results,
	})
}

func (f *funcTranslator) visitElse() error {
	frame := f.top()
	if frame.kind != frameIf {
		return errorf(ErrTypeMismatch, "else outside of an if frame")
	}
	if !frame.entryReachable {
		return nil
	}
	if f.reachable {
		f.bumpFuel(f.t.costs.Base)
		f.b().emitBranch(isa.OpBr, frame.branchLabel)
	}
	f.b().pinLabel(frame.elseLabel)
	frame.consumeFuel = f.pushConsumeFuel()
	frame.elseTaken = true
	f.height = frame.stackHeight + frame.params
	f.reachable = true
	return nil
}

func (f *funcTranslator) visitEnd() error {
	frame := *f.top()
	f.frames = f.frames[:len(f.frames)-1]

	if !frame.entryReachable {
		return nil
	}
	if frame.kind == frameIf && !frame.elseTaken {
		// The false branch of an else-less if lands here.
		f.b().pinLabel(frame.elseLabel)
	}
	if frame.kind != frameLoop {
		f.b().pinLabel(frame.branchLabel)
	}
	if len(f.frames) == 0 {
		// Ending the function body block returns from the function.
		if f.reachable {
			// The return is charged to the body's ConsumeFuel, so the root
			// frame is back on the stack while it is emitted.
			f.frames = append(f.frames, frame)
			err := f.visitReturn()
			f.frames = f.frames[:0]
			return err
		}
		return nil
	}
	f.height = frame.stackHeight + frame.results
	f.reachable = frame.entryReachable
	return nil
}

// sigArity returns the parameter and result counts for a type index.
func (f *funcTranslator) sigArity(sigIdx uint32) (int, int, error) {
	if int(sigIdx) >= len(f.t.mod.Types) {
		return 0, 0, errorf(ErrTypeMismatch, "unknown type index %d", sigIdx)
	}
	sig := &f.t.mod.Types[sigIdx]
	return len(sig.Params), len(sig.Results), nil
}

func (f *funcTranslator) visitCall(funcIdx uint32) error {
	sigIdx, ok := f.t.mod.FuncSig(funcIdx)
	if !ok {
		return errorf(ErrTypeMismatch, "unknown function index %d", funcIdx)
	}
	params, results, err := f.sigArity(sigIdx)
	if err != nil {
		return err
	}
	f.bumpFuel(f.t.costs.Call)
	f.height += results - params
	imports := f.t.mod.NumImportedFuncs()
	if funcIdx < imports {
		f.b().emitU32(isa.OpCall, f.t.mod.ImportedFuncs[funcIdx].HostIdx)
	} else {
		f.b().emitU32(isa.OpCallInternal, funcIdx-imports)
	}
	return nil
}

func (f *funcTranslator) visitCallIndirect(instr *code.Instruction) error {
	params, results, err := f.sigArity(instr.Typeidx())
	if err != nil {
		return err
	}
	f.bumpFuel(f.t.costs.Call)
	f.height-- // table selector
	f.height += results - params
	f.b().emitU32(isa.OpCallIndirect, instr.Typeidx())
	f.b().emitU32(isa.OpTableGet, instr.TableIdx)
	return nil
}

// visitMemoryGrow injects the upper-bound check: if the grown size would
// exceed the configured maximum, push the failure sentinel instead of
// growing.
func (f *funcTranslator) visitMemoryGrow() {
	f.bumpFuel(f.t.costs.Entity)
	maxPages := f.t.cfg.MaxMemoryPages()
	if mem := f.t.mod.Memory; mem != nil && mem.HasMax && mem.MaxPages < maxPages {
		maxPages = mem.MaxPages
	}
	b := f.b()
	b.emitU32(isa.OpLocalGet, 0) // duplicate the delta
	b.emitNullary(isa.OpMemorySize)
	b.emitNullary(isa.OpI32Add)
	b.emitI32Const(int32(maxPages))
	b.emitNullary(isa.OpI32GtS)
	b.emit(isa.NewI32(isa.OpBrIfEqz, 4))
	b.emitNullary(isa.OpDrop)
	b.emitI32Const(-1)
	b.emit(isa.NewI32(isa.OpBr, 2))
	b.emitNullary(isa.OpMemoryGrow)
}

// visitMemoryInit rebases the source offset into the unified memory section
// and clamps overlong lengths to an impossible value so that the interpreter
// traps with the bounds error WebAssembly requires.
func (f *funcTranslator) visitMemoryInit(segIdx uint32) error {
	span, ok := f.t.segs.dataSpan(segIdx)
	if !ok {
		return errorf(ErrTypeMismatch, "unknown data segment %d", segIdx)
	}
	f.bumpFuel(f.t.costs.Entity)
	b := f.b()
	b.emitU32(isa.OpLocalGet, 0) // n
	b.emitU32(isa.OpLocalGet, 2) // s
	b.emitNullary(isa.OpI32Add)
	b.emitI32Const(int32(span.length))
	b.emitNullary(isa.OpI32GtS)
	b.emit(isa.NewI32(isa.OpBrIfEqz, 3))
	b.emitI32Const(-1)
	b.emitU32(isa.OpLocalSet, 1)
	if span.offset > 0 {
		b.emitI32Const(int32(span.offset))
		b.emitU32(isa.OpLocalGet, 2) // s
		b.emitNullary(isa.OpI32Add)
		b.emitU32(isa.OpLocalSet, 2)
	}
	f.height -= 3
	b.emitU32(isa.OpMemoryInit, segIdx+1)
	return nil
}

func (f *funcTranslator) visitTableInit(instr *code.Instruction) error {
	span, ok := f.t.segs.elementSpan(instr.Segidx())
	if !ok {
		return errorf(ErrTypeMismatch, "unknown element segment %d", instr.Segidx())
	}
	f.bumpFuel(f.t.costs.Entity)
	b := f.b()
	b.emitU32(isa.OpLocalGet, 0)
	b.emitU32(isa.OpLocalGet, 2)
	b.emitNullary(isa.OpI32Add)
	b.emitI32Const(int32(span.length))
	b.emitNullary(isa.OpI32GtS)
	b.emit(isa.NewI32(isa.OpBrIfEqz, 3))
	b.emitI32Const(-1)
	b.emitU32(isa.OpLocalSet, 1)
	if span.offset > 0 {
		b.emitI32Const(int32(span.offset))
		b.emitU32(isa.OpLocalGet, 2)
		b.emitNullary(isa.OpI32Add)
		b.emitU32(isa.OpLocalSet, 2)
	}
	f.height -= 3
	b.emitU32(isa.OpTableInit, instr.Segidx()+1)
	b.emitU32(isa.OpTableGet, instr.TableIdx)
	return nil
}

// visitInstruction dispatches a single structured instruction.
func (f *funcTranslator) visitInstruction(instr *code.Instruction) error {
	// Control nesting must stay balanced through unreachable stretches.
	if !f.reachable {
		switch instr.Opcode {
		case code.OpBlock:
			f.pushUnreachableFrame(frameBlock, instr.Block)
		case code.OpLoop:
			f.pushUnreachableFrame(frameLoop, instr.Block)
		case code.OpIf:
			f.pushUnreachableFrame(frameIf, instr.Block)
		case code.OpElse:
			return f.visitElse()
		case code.OpEnd:
			return f.visitEnd()
		}
		return nil
	}

	b := f.b()
	switch instr.Opcode {
	case code.OpUnreachable:
		f.bumpFuel(f.t.costs.Base)
		b.emitNullary(isa.OpUnreachable)
		f.markUnreachable()
	case code.OpNop:
		// no code

	case code.OpBlock:
		f.visitBlock(instr.Block)
	case code.OpLoop:
		f.visitLoop(instr.Block)
	case code.OpIf:
		f.visitIf(instr.Block)
	case code.OpElse:
		return f.visitElse()
	case code.OpEnd:
		return f.visitEnd()

	case code.OpBr:
		return f.visitBr(instr.Depth())
	case code.OpBrIf:
		return f.visitBrIf(instr.Depth())
	case code.OpBrTable:
		return f.visitBrTable(instr)
	case code.OpReturn:
		return f.visitReturn()

	case code.OpCall:
		return f.visitCall(instr.Funcidx())
	case code.OpCallIndirect:
		return f.visitCallIndirect(instr)

	case code.OpDrop:
		f.bumpFuel(f.t.costs.Base)
		f.height--
		b.emitNullary(isa.OpDrop)
	case code.OpSelect:
		f.bumpFuel(f.t.costs.Base)
		f.height -= 2
		b.emitNullary(isa.OpSelect)

	case code.OpLocalGet:
		f.bumpFuel(f.t.costs.Base)
		b.emitU32(isa.OpLocalGet, f.localDepth(instr.Localidx()))
		f.height++
	case code.OpLocalSet:
		f.bumpFuel(f.t.costs.Base)
		b.emitU32(isa.OpLocalSet, f.localDepth(instr.Localidx()))
		f.height--
	case code.OpLocalTee:
		f.bumpFuel(f.t.costs.Base)
		b.emitU32(isa.OpLocalTee, f.localDepth(instr.Localidx()))

	case code.OpGlobalGet:
		f.bumpFuel(f.t.costs.Entity)
		f.height++
		b.emitU32(isa.OpGlobalGet, instr.Globalidx())
	case code.OpGlobalSet:
		f.bumpFuel(f.t.costs.Entity)
		f.height--
		b.emitU32(isa.OpGlobalSet, instr.Globalidx())

	case code.OpI32Const, code.OpI64Const, code.OpF32Const, code.OpF64Const:
		f.bumpFuel(f.t.costs.Base)
		f.height++
		b.emitConst(constOpcodes[instr.Opcode], isa.UntypedValue(instr.Immediate))

	case code.OpRefNull:
		f.bumpFuel(f.t.costs.Base)
		f.height++
		b.emitI32Const(exec.FuncRefNull)
	case code.OpRefFunc:
		imports := f.t.mod.NumImportedFuncs()
		if instr.Funcidx() < imports {
			return errorf(ErrUnsupportedFeature,
				"imported function %d cannot be referenced", instr.Funcidx())
		}
		f.bumpFuel(f.t.costs.Base)
		f.height++
		b.emitU32(isa.OpRefFunc, instr.Funcidx()-imports)

	case code.OpMemorySize:
		f.bumpFuel(f.t.costs.Entity)
		f.height++
		b.emitNullary(isa.OpMemorySize)
	case code.OpMemoryGrow:
		f.visitMemoryGrow()
	case code.OpMemoryFill:
		f.bumpFuel(f.t.costs.Entity)
		f.height -= 3
		b.emitNullary(isa.OpMemoryFill)
	case code.OpMemoryCopy:
		f.bumpFuel(f.t.costs.Entity)
		f.height -= 3
		b.emitNullary(isa.OpMemoryCopy)
	case code.OpMemoryInit:
		return f.visitMemoryInit(instr.Segidx())
	case code.OpDataDrop:
		f.bumpFuel(f.t.costs.Entity)
		b.emitU32(isa.OpDataDrop, instr.Segidx()+1)

	case code.OpTableSize:
		f.bumpFuel(f.t.costs.Entity)
		f.height++
		b.emitU32(isa.OpTableSize, instr.Tableidx())
	case code.OpTableGrow:
		f.bumpFuel(f.t.costs.Entity)
		f.height--
		b.emitU32(isa.OpTableGrow, instr.Tableidx())
	case code.OpTableGet:
		f.bumpFuel(f.t.costs.Entity)
		b.emitU32(isa.OpTableGet, instr.Tableidx())
	case code.OpTableSet:
		f.bumpFuel(f.t.costs.Entity)
		f.height -= 2
		b.emitU32(isa.OpTableSet, instr.Tableidx())
	case code.OpTableFill:
		f.bumpFuel(f.t.costs.Entity)
		f.height -= 3
		b.emitU32(isa.OpTableFill, instr.Tableidx())
	case code.OpTableCopy:
		f.bumpFuel(f.t.costs.Entity)
		f.height -= 3
		b.emitU32(isa.OpTableCopy, instr.Tableidx())
		b.emitU32(isa.OpTableGet, instr.TableIdx)
	case code.OpTableInit:
		return f.visitTableInit(instr)
	case code.OpElemDrop:
		f.bumpFuel(f.t.costs.Entity)
		b.emitU32(isa.OpElemDrop, instr.Segidx()+1)

	case code.OpI32ReinterpretF32, code.OpI64ReinterpretF64,
		code.OpF32ReinterpretI32, code.OpF64ReinterpretI64:
		// Reinterpretation is a no-op on untyped values.

	default:
		if op, ok := loadOpcodes[instr.Opcode]; ok {
			f.bumpFuel(f.t.costs.Load)
			b.emitU32(op, instr.MemOffset)
			return nil
		}
		if op, ok := storeOpcodes[instr.Opcode]; ok {
			f.bumpFuel(f.t.costs.Store)
			f.height -= 2
			b.emitU32(op, instr.MemOffset)
			return nil
		}
		if mapping, ok := numericOpcodes[instr.Opcode]; ok {
			f.bumpFuel(f.t.costs.Base)
			f.height += mapping.delta
			b.emitNullary(mapping.op)
			return nil
		}
		return errorf(ErrInvalidOpcode, "opcode %#x", uint16(instr.Opcode))
	}
	return nil
}

// translateFunc lowers the internal function at index internalIdx. Every
// function starts with an optional ConsumeFuel, a SignatureCheck, and one
// zero push per declared local.
func (t *translator) translateFunc(internalIdx uint32) error {
	fn := &t.mod.Funcs[internalIdx]
	if int(fn.SigIdx) >= len(t.mod.Types) {
		return errorf(ErrTypeMismatch, "function %d: unknown type index %d", internalIdx, fn.SigIdx)
	}
	sig := &t.mod.Types[fn.SigIdx]

	f := &funcTranslator{
		t:          t,
		numParams:  len(sig.Params),
		numResults: len(sig.Results),
		reachable:  true,
	}

	t.b.beginFunc()
	consumeFuel := f.pushConsumeFuel()
	t.b.emitU32(isa.OpSignatureCheck, fn.SigIdx)
	f.frames = append(f.frames, controlFrame{
		kind:           frameBlock,
		results:        f.numResults,
		branchLabel:    t.b.newLabel(),
		consumeFuel:    consumeFuel,
		entryReachable: true,
	})

	numLocals := int(fn.NumLocals())
	for i := 0; i < numLocals; i++ {
		t.b.emitI32Const(0)
	}
	f.height = numLocals
	f.bumpFuel(t.costs.ForLocals(uint64(numLocals + f.numParams)))

	for i := range fn.Body {
		if err := f.visitInstruction(&fn.Body[i]); err != nil {
			return err
		}
	}
	if len(f.frames) != 0 {
		return errorf(ErrTypeMismatch, "function %d: unbalanced control frames", internalIdx)
	}
	return nil
}

var constOpcodes = map[code.Opcode]isa.Opcode{
	code.OpI32Const: isa.OpI32Const,
	code.OpI64Const: isa.OpI64Const,
	code.OpF32Const: isa.OpF32Const,
	code.OpF64Const: isa.OpF64Const,
}

var loadOpcodes = map[code.Opcode]isa.Opcode{
	code.OpI32Load:    isa.OpI32Load,
	code.OpI64Load:    isa.OpI64Load,
	code.OpF32Load:    isa.OpF32Load,
	code.OpF64Load:    isa.OpF64Load,
	code.OpI32Load8S:  isa.OpI32Load8S,
	code.OpI32Load8U:  isa.OpI32Load8U,
	code.OpI32Load16S: isa.OpI32Load16S,
	code.OpI32Load16U: isa.OpI32Load16U,
	code.OpI64Load8S:  isa.OpI64Load8S,
	code.OpI64Load8U:  isa.OpI64Load8U,
	code.OpI64Load16S: isa.OpI64Load16S,
	code.OpI64Load16U: isa.OpI64Load16U,
	code.OpI64Load32S: isa.OpI64Load32S,
	code.OpI64Load32U: isa.OpI64Load32U,
}

var storeOpcodes = map[code.Opcode]isa.Opcode{
	code.OpI32Store:   isa.OpI32Store,
	code.OpI64Store:   isa.OpI64Store,
	code.OpF32Store:   isa.OpF32Store,
	code.OpF64Store:   isa.OpF64Store,
	code.OpI32Store8:  isa.OpI32Store8,
	code.OpI32Store16: isa.OpI32Store16,
	code.OpI64Store8:  isa.OpI64Store8,
	code.OpI64Store16: isa.OpI64Store16,
	code.OpI64Store32: isa.OpI64Store32,
}

type numericMapping struct {
	op    isa.Opcode
	delta int // emulated stack height change
}

var numericOpcodes = map[code.Opcode]numericMapping{
	code.OpI32Eqz: {isa.OpI32Eqz, 0},
	code.OpI32Eq:  {isa.OpI32Eq, -1},
	code.OpI32Ne:  {isa.OpI32Ne, -1},
	code.OpI32LtS: {isa.OpI32LtS, -1},
	code.OpI32LtU: {isa.OpI32LtU, -1},
	code.OpI32GtS: {isa.OpI32GtS, -1},
	code.OpI32GtU: {isa.OpI32GtU, -1},
	code.OpI32LeS: {isa.OpI32LeS, -1},
	code.OpI32LeU: {isa.OpI32LeU, -1},
	code.OpI32GeS: {isa.OpI32GeS, -1},
	code.OpI32GeU: {isa.OpI32GeU, -1},

	code.OpI64Eqz: {isa.OpI64Eqz, 0},
	code.OpI64Eq:  {isa.OpI64Eq, -1},
	code.OpI64Ne:  {isa.OpI64Ne, -1},
	code.OpI64LtS: {isa.OpI64LtS, -1},
	code.OpI64LtU: {isa.OpI64LtU, -1},
	code.OpI64GtS: {isa.OpI64GtS, -1},
	code.OpI64GtU: {isa.OpI64GtU, -1},
	code.OpI64LeS: {isa.OpI64LeS, -1},
	code.OpI64LeU: {isa.OpI64LeU, -1},
	code.OpI64GeS: {isa.OpI64GeS, -1},
	code.OpI64GeU: {isa.OpI64GeU, -1},

	code.OpF32Eq: {isa.OpF32Eq, -1},
	code.OpF32Ne: {isa.OpF32Ne, -1},
	code.OpF32Lt: {isa.OpF32Lt, -1},
	code.OpF32Gt: {isa.OpF32Gt, -1},
	code.OpF32Le: {isa.OpF32Le, -1},
	code.OpF32Ge: {isa.OpF32Ge, -1},

	code.OpF64Eq: {isa.OpF64Eq, -1},
	code.OpF64Ne: {isa.OpF64Ne, -1},
	code.OpF64Lt: {isa.OpF64Lt, -1},
	code.OpF64Gt: {isa.OpF64Gt, -1},
	code.OpF64Le: {isa.OpF64Le, -1},
	code.OpF64Ge: {isa.OpF64Ge, -1},

	code.OpI32Clz:    {isa.OpI32Clz, 0},
	code.OpI32Ctz:    {isa.OpI32Ctz, 0},
	code.OpI32Popcnt: {isa.OpI32Popcnt, 0},
	code.OpI32Add:    {isa.OpI32Add, -1},
	code.OpI32Sub:    {isa.OpI32Sub, -1},
	code.OpI32Mul:    {isa.OpI32Mul, -1},
	code.OpI32DivS:   {isa.OpI32DivS, -1},
	code.OpI32DivU:   {isa.OpI32DivU, -1},
	code.OpI32RemS:   {isa.OpI32RemS, -1},
	code.OpI32RemU:   {isa.OpI32RemU, -1},
	code.OpI32And:    {isa.OpI32And, -1},
	code.OpI32Or:     {isa.OpI32Or, -1},
	code.OpI32Xor:    {isa.OpI32Xor, -1},
	code.OpI32Shl:    {isa.OpI32Shl, -1},
	code.OpI32ShrS:   {isa.OpI32ShrS, -1},
	code.OpI32ShrU:   {isa.OpI32ShrU, -1},
	code.OpI32Rotl:   {isa.OpI32Rotl, -1},
	code.OpI32Rotr:   {isa.OpI32Rotr, -1},

	code.OpI64Clz:    {isa.OpI64Clz, 0},
	code.OpI64Ctz:    {isa.OpI64Ctz, 0},
	code.OpI64Popcnt: {isa.OpI64Popcnt, 0},
	code.OpI64Add:    {isa.OpI64Add, -1},
	code.OpI64Sub:    {isa.OpI64Sub, -1},
	code.OpI64Mul:    {isa.OpI64Mul, -1},
	code.OpI64DivS:   {isa.OpI64DivS, -1},
	code.OpI64DivU:   {isa.OpI64DivU, -1},
	code.OpI64RemS:   {isa.OpI64RemS, -1},
	code.OpI64RemU:   {isa.OpI64RemU, -1},
	code.OpI64And:    {isa.OpI64And, -1},
	code.OpI64Or:     {isa.OpI64Or, -1},
	code.OpI64Xor:    {isa.OpI64Xor, -1},
	code.OpI64Shl:    {isa.OpI64Shl, -1},
	code.OpI64ShrS:   {isa.OpI64ShrS, -1},
	code.OpI64ShrU:   {isa.OpI64ShrU, -1},
	code.OpI64Rotl:   {isa.OpI64Rotl, -1},
	code.OpI64Rotr:   {isa.OpI64Rotr, -1},

	code.OpF32Abs:      {isa.OpF32Abs, 0},
	code.OpF32Neg:      {isa.OpF32Neg, 0},
	code.OpF32Ceil:     {isa.OpF32Ceil, 0},
	code.OpF32Floor:    {isa.OpF32Floor, 0},
	code.OpF32Trunc:    {isa.OpF32Trunc, 0},
	code.OpF32Nearest:  {isa.OpF32Nearest, 0},
	code.OpF32Sqrt:     {isa.OpF32Sqrt, 0},
	code.OpF32Add:      {isa.OpF32Add, -1},
	code.OpF32Sub:      {isa.OpF32Sub, -1},
	code.OpF32Mul:      {isa.OpF32Mul, -1},
	code.OpF32Div:      {isa.OpF32Div, -1},
	code.OpF32Min:      {isa.OpF32Min, -1},
	code.OpF32Max:      {isa.OpF32Max, -1},
	code.OpF32Copysign: {isa.OpF32Copysign, -1},

	code.OpF64Abs:      {isa.OpF64Abs, 0},
	code.OpF64Neg:      {isa.OpF64Neg, 0},
	code.OpF64Ceil:     {isa.OpF64Ceil, 0},
	code.OpF64Floor:    {isa.OpF64Floor, 0},
	code.OpF64Trunc:    {isa.OpF64Trunc, 0},
	code.OpF64Nearest:  {isa.OpF64Nearest, 0},
	code.OpF64Sqrt:     {isa.OpF64Sqrt, 0},
	code.OpF64Add:      {isa.OpF64Add, -1},
	code.OpF64Sub:      {isa.OpF64Sub, -1},
	code.OpF64Mul:      {isa.OpF64Mul, -1},
	code.OpF64Div:      {isa.OpF64Div, -1},
	code.OpF64Min:      {isa.OpF64Min, -1},
	code.OpF64Max:      {isa.OpF64Max, -1},
	code.OpF64Copysign: {isa.OpF64Copysign, -1},

	code.OpI32WrapI64:      {isa.OpI32WrapI64, 0},
	code.OpI32TruncF32S:    {isa.OpI32TruncF32S, 0},
	code.OpI32TruncF32U:    {isa.OpI32TruncF32U, 0},
	code.OpI32TruncF64S:    {isa.OpI32TruncF64S, 0},
	code.OpI32TruncF64U:    {isa.OpI32TruncF64U, 0},
	code.OpI64ExtendI32S:   {isa.OpI64ExtendI32S, 0},
	code.OpI64ExtendI32U:   {isa.OpI64ExtendI32U, 0},
	code.OpI64TruncF32S:    {isa.OpI64TruncF32S, 0},
	code.OpI64TruncF32U:    {isa.OpI64TruncF32U, 0},
	code.OpI64TruncF64S:    {isa.OpI64TruncF64S, 0},
	code.OpI64TruncF64U:    {isa.OpI64TruncF64U, 0},
	code.OpF32ConvertI32S:  {isa.OpF32ConvertI32S, 0},
	code.OpF32ConvertI32U:  {isa.OpF32ConvertI32U, 0},
	code.OpF32ConvertI64S:  {isa.OpF32ConvertI64S, 0},
	code.OpF32ConvertI64U:  {isa.OpF32ConvertI64U, 0},
	code.OpF32DemoteF64:    {isa.OpF32DemoteF64, 0},
	code.OpF64ConvertI32S:  {isa.OpF64ConvertI32S, 0},
	code.OpF64ConvertI32U:  {isa.OpF64ConvertI32U, 0},
	code.OpF64ConvertI64S:  {isa.OpF64ConvertI64S, 0},
	code.OpF64ConvertI64U:  {isa.OpF64ConvertI64U, 0},
	code.OpF64PromoteF32:   {isa.OpF64PromoteF32, 0},
	code.OpI32Extend8S:     {isa.OpI32Extend8S, 0},
	code.OpI32Extend16S:    {isa.OpI32Extend16S, 0},
	code.OpI64Extend8S:     {isa.OpI64Extend8S, 0},
	code.OpI64Extend16S:    {isa.OpI64Extend16S, 0},
	code.OpI64Extend32S:    {isa.OpI64Extend32S, 0},
	code.OpI32TruncSatF32S: {isa.OpI32TruncSatF32S, 0},
	code.OpI32TruncSatF32U: {isa.OpI32TruncSatF32U, 0},
	code.OpI32TruncSatF64S: {isa.OpI32TruncSatF64S, 0},
	code.OpI32TruncSatF64U: {isa.OpI32TruncSatF64U, 0},
	code.OpI64TruncSatF32S: {isa.OpI64TruncSatF32S, 0},
	code.OpI64TruncSatF32U: {isa.OpI64TruncSatF32U, 0},
	code.OpI64TruncSatF64S: {isa.OpI64TruncSatF64S, 0},
	code.OpI64TruncSatF64U: {isa.OpI64TruncSatF64U, 0},
}
