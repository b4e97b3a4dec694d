package interpreter

import (
	"go.uber.org/zap"

	"github.com/fluentlabs-xyz/rwasm/exec"
	"github.com/fluentlabs-xyz/rwasm/isa"
)

// A Tracer observes execution without affecting it. Events go to a zap
// logger at debug level; a nil logger falls back to zap's no-op logger.
type Tracer struct {
	log *zap.Logger
}

// NewTracer creates a tracer over the given logger.
func NewTracer(log *zap.Logger) *Tracer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracer{log: log}
}

// OnInstruction reports the machine state just before an instruction
// executes.
func (t *Tracer) OnInstruction(ip uint32, instr isa.Instruction, sp int, fuel uint64) {
	t.log.Debug("exec",
		zap.Uint32("ip", ip),
		zap.Stringer("instr", instr),
		zap.Int("sp", sp),
		zap.Uint64("fuel", fuel),
	)
}

// OnCall reports entry into an internal function.
func (t *Tracer) OnCall(depth int, compiledFunc uint32, frame exec.CallFrame) {
	t.log.Debug("call",
		zap.Int("depth", depth),
		zap.Uint32("func", compiledFunc),
		zap.Uint32("return_ip", frame.ReturnIP),
		zap.Uint32("base_sp", frame.BaseSP),
	)
}

// OnReturn reports a frame unwind; sp is the stack pointer after the
// return's DropKeep was applied against the frame's base.
func (t *Tracer) OnReturn(depth int, frame exec.CallFrame, sp int) {
	t.log.Debug("return",
		zap.Int("depth", depth),
		zap.Uint32("base_sp", frame.BaseSP),
		zap.Int("sp", sp),
	)
}

// OnMemoryChange reports a mutated linear memory range.
func (t *Tracer) OnMemoryChange(offset uint64, length uint32) {
	t.log.Debug("memory change",
		zap.Uint64("offset", offset),
		zap.Uint32("length", length),
	)
}

// OnTableChange reports a mutated table slot.
func (t *Tracer) OnTableChange(table, index uint32) {
	t.log.Debug("table change",
		zap.Uint32("table", table),
		zap.Uint32("index", index),
	)
}

// OnGlobalChange reports a mutated global.
func (t *Tracer) OnGlobalChange(index uint32, value isa.UntypedValue) {
	t.log.Debug("global change",
		zap.Uint32("global", index),
		zap.Uint64("value", value.U64()),
	)
}
