package translate

import (
	rwasm "github.com/fluentlabs-xyz/rwasm"
	"github.com/fluentlabs-xyz/rwasm/wasm"
)

// Translate lowers a validated WebAssembly module view into an rWASM module.
// Translation is deterministic: the same input yields byte-identical output.
// On error no partial module is produced.
func Translate(mod *wasm.Module, cfg rwasm.Config) (*rwasm.Module, error) {
	t := &translator{
		mod:   mod,
		cfg:   cfg,
		costs: cfg.FuelCosts(),
		b:     newStreamBuilder(),
		segs:  newSegmentBuilder(),
	}

	// Segment unification happens first so that memory.init/table.init
	// sites inside function bodies can consult the final spans.
	for i, seg := range mod.DataSegments {
		t.segs.addData(uint32(i), seg.Data)
	}
	for i, seg := range mod.ElementSegments {
		funcs, err := internalFuncs(mod, seg.Funcs)
		if err != nil {
			return nil, err
		}
		t.segs.addElements(uint32(i), funcs)
	}

	// User functions keep their source order; the entrypoint goes last.
	for i := range mod.Funcs {
		if err := t.translateFunc(uint32(i)); err != nil {
			return nil, err
		}
	}
	if err := t.translateEntrypoint(); err != nil {
		return nil, err
	}
	if err := t.b.resolveLabels(); err != nil {
		return nil, err
	}

	out := &rwasm.Module{
		Code:           t.b.instrs,
		MemorySection:  t.segs.memorySection,
		ElementSection: t.segs.elementSection,
		FuncLengths:    t.b.funcLengths(),
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// TranslateToBinary is the convenience form producing the encoded binary.
func TranslateToBinary(mod *wasm.Module, cfg rwasm.Config) ([]byte, error) {
	out, err := Translate(mod, cfg)
	if err != nil {
		return nil, err
	}
	return out.Encode(), nil
}
