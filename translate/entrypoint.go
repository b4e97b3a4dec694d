package translate

import (
	"github.com/fluentlabs-xyz/rwasm/exec"
	"github.com/fluentlabs-xyz/rwasm/isa"
	"github.com/fluentlabs-xyz/rwasm/wasm"
)

// translateEntrypoint appends the synthesized entrypoint: global
// initialization, memory growth to the declared minimum, active segment
// initialization behind the +1 sentinel shift, and finally the dispatch into
// user code.
func (t *translator) translateEntrypoint() error {
	b := t.b
	b.beginFunc()
	start := b.pc()
	consumeFuel := -1
	if t.cfg.FuelEnabled() {
		consumeFuel = b.emitU32(isa.OpConsumeFuel, 0)
	}

	// Globals are initialized by constant stores in declaration order.
	for i, global := range t.mod.Globals {
		switch global.Type {
		case wasm.ValueTypeI32:
			b.emitConst(isa.OpI32Const, global.Init)
		case wasm.ValueTypeI64:
			b.emitConst(isa.OpI64Const, global.Init)
		case wasm.ValueTypeF32:
			b.emitConst(isa.OpF32Const, global.Init)
		case wasm.ValueTypeF64:
			b.emitConst(isa.OpF64Const, global.Init)
		default:
			b.emitI32Const(exec.FuncRefNull)
		}
		b.emitU32(isa.OpGlobalSet, uint32(i))
	}

	// Grow memory to the declared minimum.
	var allocatedPages uint32
	if mem := t.mod.Memory; mem != nil && mem.MinPages > 0 {
		if mem.MinPages > t.cfg.MaxMemoryPages() {
			return errorf(ErrUnsupportedFeature,
				"memory minimum of %d pages exceeds the configured maximum of %d",
				mem.MinPages, t.cfg.MaxMemoryPages())
		}
		allocatedPages = mem.MinPages
		b.emitI32Const(int32(mem.MinPages))
		b.emitNullary(isa.OpMemoryGrow)
		b.emitNullary(isa.OpDrop)
	}

	// Tables grow to their declared minimum before any element segment
	// touches them.
	for i, table := range t.mod.Tables {
		if table.MinSize == 0 {
			continue
		}
		b.emitI32Const(exec.FuncRefNull)
		b.emitI32Const(int32(table.MinSize))
		b.emitU32(isa.OpTableGrow, uint32(i))
		b.emitNullary(isa.OpDrop)
	}

	// Active data segments initialize memory, then drop themselves. The
	// length is poisoned when the segment provably overruns the allocated
	// pages so that initialization traps at run time.
	for i, seg := range t.mod.DataSegments {
		if !seg.Active {
			continue
		}
		span, _ := t.segs.dataSpan(uint32(i))
		length := int64(span.length)
		lastByte := uint64(seg.Offset) + uint64(span.length)
		if lastByte > uint64(allocatedPages)*exec.PageSize {
			length = int64(^uint32(0))
		}
		b.emitI32Const(int32(seg.Offset))
		b.emitI64Const(int64(span.offset))
		b.emitI64Const(length)
		b.emitU32(isa.OpMemoryInit, uint32(i)+1)
		b.emitU32(isa.OpDataDrop, uint32(i)+1)
	}

	// Active element segments initialize their table, then drop themselves.
	for i, seg := range t.mod.ElementSegments {
		if !seg.Active {
			continue
		}
		span, _ := t.segs.elementSpan(uint32(i))
		b.emitI32Const(int32(seg.Offset))
		b.emitI64Const(int64(span.offset))
		b.emitI64Const(int64(span.length))
		b.emitU32(isa.OpTableInit, uint32(i)+1)
		b.emitU32(isa.OpTableGet, seg.TableIdx)
		b.emitU32(isa.OpElemDrop, uint32(i)+1)
	}

	if err := t.emitDispatch(); err != nil {
		return err
	}
	b.emit(isa.NewDropKeepOp(isa.OpReturn, isa.DropKeepNone))

	if consumeFuel >= 0 {
		b.bumpFuel(consumeFuel, t.costs.Base*uint64(b.pc()-start-1))
	}
	return nil
}

// emitDispatch transfers control into user code: through a BrTable-driven
// state selector when a router is configured, via the start function or the
// exported entrypoint otherwise.
func (t *translator) emitDispatch() error {
	b := t.b

	if router := t.cfg.StateRouter(); router != nil {
		targets := make([]uint32, len(router.States))
		for i, name := range router.States {
			funcIdx, ok := t.mod.ExportedFunc(name)
			if !ok {
				return errorf(ErrTypeMismatch, "state router references unknown export %q", name)
			}
			if funcIdx < t.mod.NumImportedFuncs() {
				return errorf(ErrUnsupportedFeature,
					"state router cannot dispatch to imported function %q", name)
			}
			targets[i] = funcIdx - t.mod.NumImportedFuncs()
		}

		exit := b.newLabel()
		calls := make([]labelRef, len(targets))
		for i := range targets {
			calls[i] = b.newLabel()
		}
		// The selector ordinal is popped off the stack; an out-of-range
		// ordinal lands on the default arm, which skips user code entirely.
		b.emit(isa.NewU32(isa.OpBrTable, uint32(len(targets)+1)))
		for _, call := range calls {
			b.emitBranch(isa.OpBrAdjust, call)
			b.emit(isa.NewDropKeepOp(isa.OpReturn, isa.DropKeepNone))
		}
		b.emitBranch(isa.OpBrAdjust, exit)
		b.emit(isa.NewDropKeepOp(isa.OpReturn, isa.DropKeepNone))
		for i, call := range calls {
			b.pinLabel(call)
			b.emitU32(isa.OpCallInternal, targets[i])
			b.emitBranch(isa.OpBr, exit)
		}
		b.pinLabel(exit)
		return nil
	}

	if t.mod.Start != nil {
		startIdx := *t.mod.Start
		if startIdx < t.mod.NumImportedFuncs() {
			return errorf(ErrUnsupportedFeature, "start function cannot be imported")
		}
		b.emitU32(isa.OpCallInternal, startIdx-t.mod.NumImportedFuncs())
		return nil
	}

	if name := t.cfg.EntrypointName(); name != "" {
		if funcIdx, ok := t.mod.ExportedFunc(name); ok {
			if funcIdx < t.mod.NumImportedFuncs() {
				return errorf(ErrUnsupportedFeature,
					"exported entrypoint %q cannot be imported", name)
			}
			b.emitU32(isa.OpCallInternal, funcIdx-t.mod.NumImportedFuncs())
		}
	}
	return nil
}
