package dump

import (
	"encoding/csv"
	"io"

	"github.com/jszwec/csvutil"

	rwasm "github.com/fluentlabs-xyz/rwasm"
	"github.com/fluentlabs-xyz/rwasm/isa"
)

// rows:
// - function
//     - funcidx, offset, instruction count, per-family breakdown

func dumpStats(w io.Writer, module *rwasm.Module) error {
	type row struct {
		Funcidx          int    `csv:"funcidx"`
		Kind             string `csv:"kind"`
		Offset           uint32 `csv:"offset"`
		InstructionCount uint32 `csv:"instruction count"`
		Branches         int    `csv:"branches"`
		BranchTables     int    `csv:"branch tables"`
		Returns          int    `csv:"returns"`
		Calls            int    `csv:"calls"`
		IndirectCalls    int    `csv:"indirect calls"`
		LocalOps         int    `csv:"local ops"`
		GlobalOps        int    `csv:"global ops"`
		Loads            int    `csv:"loads"`
		Stores           int    `csv:"stores"`
		MemoryOps        int    `csv:"memory ops"`
		TableOps         int    `csv:"table ops"`
		Consts           int    `csv:"consts"`
		Compares         int    `csv:"compares"`
		Arith            int    `csv:"arith"`
		Conversions      int    `csv:"conversions"`
		FuelChecks       int    `csv:"fuel checks"`
	}

	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	encoder := csvutil.NewEncoder(csvWriter)

	pc := uint32(0)
	for funcIdx, length := range module.FuncLengths {
		r := row{
			Funcidx:          funcIdx,
			Kind:             "func",
			Offset:           pc,
			InstructionCount: length,
		}
		if funcIdx == len(module.FuncLengths)-1 {
			r.Kind = "entrypoint"
		}
		for i := uint32(0); i < length; i++ {
			op := module.Code[pc].Op
			pc++
			switch {
			case op >= isa.OpBr && op <= isa.OpBrAdjustIfNez:
				r.Branches++
			case op == isa.OpBrTable:
				r.BranchTables++
			case op == isa.OpReturn || op == isa.OpReturnIfNez:
				r.Returns++
			case op == isa.OpCall || op == isa.OpCallInternal ||
				op == isa.OpReturnCall || op == isa.OpReturnCallInternal:
				r.Calls++
			case op == isa.OpCallIndirect || op == isa.OpReturnCallIndirect:
				r.IndirectCalls++
			case op >= isa.OpLocalGet && op <= isa.OpLocalTee:
				r.LocalOps++
			case op == isa.OpGlobalGet || op == isa.OpGlobalSet:
				r.GlobalOps++
			case op >= isa.OpI32Load && op <= isa.OpI64Load32U:
				r.Loads++
			case op >= isa.OpI32Store && op <= isa.OpI64Store32:
				r.Stores++
			case op >= isa.OpMemorySize && op <= isa.OpDataDrop:
				r.MemoryOps++
			case op >= isa.OpTableSize && op <= isa.OpRefFunc:
				r.TableOps++
			case op >= isa.OpI32Const && op <= isa.OpF64Const:
				r.Consts++
			case op >= isa.OpI32Eqz && op <= isa.OpF64Ge:
				r.Compares++
			case op >= isa.OpI32Clz && op <= isa.OpF64Copysign:
				r.Arith++
			case op >= isa.OpI32WrapI64 && op <= isa.OpI64TruncSatF64U:
				r.Conversions++
			case op == isa.OpConsumeFuel:
				r.FuelChecks++
			}
		}

		if err := encoder.Encode(&r); err != nil {
			return err
		}
	}
	return nil
}
