package interpreter

import "github.com/fluentlabs-xyz/rwasm/isa"

func unaryOp(f func(isa.UntypedValue) isa.UntypedValue) handler {
	return func(e *Executor, _ isa.Instruction) error {
		e.values.SetTop(f(e.values.Top()))
		e.ip++
		return nil
	}
}

func unaryTrapOp(f func(isa.UntypedValue) (isa.UntypedValue, error)) handler {
	return func(e *Executor, _ isa.Instruction) error {
		v, err := f(e.values.Top())
		if err != nil {
			return err
		}
		e.values.SetTop(v)
		e.ip++
		return nil
	}
}

func binaryOp(f func(lhs, rhs isa.UntypedValue) isa.UntypedValue) handler {
	return func(e *Executor, _ isa.Instruction) error {
		e.values.Eval2(f)
		e.ip++
		return nil
	}
}

func binaryTrapOp(f func(lhs, rhs isa.UntypedValue) (isa.UntypedValue, error)) handler {
	return func(e *Executor, _ isa.Instruction) error {
		if err := e.values.TryEval2(f); err != nil {
			return err
		}
		e.ip++
		return nil
	}
}
