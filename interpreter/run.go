package interpreter

import (
	rwasm "github.com/fluentlabs-xyz/rwasm"
	"github.com/fluentlabs-xyz/rwasm/exec"
	"github.com/fluentlabs-xyz/rwasm/isa"
)

// Execute decodes an rWASM binary and runs it from its entrypoint with the
// given arguments on the stack. Normal termination returns exit code 0; a
// host-initiated exit returns the host's code; traps surface as errors.
func Execute(binary []byte, args []isa.UntypedValue, host exec.HostRegistry, cfg rwasm.Config) (int32, error) {
	module, err := rwasm.Decode(binary)
	if err != nil {
		return 0, err
	}
	e, err := New(module, cfg, host)
	if err != nil {
		return 0, err
	}
	for _, arg := range args {
		if err := e.PushArg(arg); err != nil {
			return 0, err
		}
	}
	return e.Run()
}
