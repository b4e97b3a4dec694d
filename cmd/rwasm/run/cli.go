package run

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	rwasm "github.com/fluentlabs-xyz/rwasm"
	"github.com/fluentlabs-xyz/rwasm/exec"
	"github.com/fluentlabs-xyz/rwasm/interpreter"
	"github.com/fluentlabs-xyz/rwasm/isa"
)

// Command returns the `rwasm run` verb: execute an rwasm binary from its
// entrypoint. Positional arguments after the file are pushed on the value
// stack as i64 values.
func Command() *cobra.Command {
	var maxFuel uint64
	var maxPages uint32
	var trace bool

	command := &cobra.Command{
		Use:   "run [file] [args...]",
		Short: "execute an rwasm binary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			binary, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			stack := make([]isa.UntypedValue, 0, len(args)-1)
			for _, arg := range args[1:] {
				v, err := strconv.ParseInt(arg, 0, 64)
				if err != nil {
					return fmt.Errorf("argument %q: %w", arg, err)
				}
				stack = append(stack, isa.ValueFromI64(v))
			}

			cfg := rwasm.NewConfig().WithMaxMemoryPages(maxPages)
			if maxFuel > 0 {
				cfg = cfg.WithMaxFuel(maxFuel)
			}
			if trace {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				defer logger.Sync()
				cfg = cfg.WithTracing(logger)
			}

			exitCode, err := interpreter.Execute(binary, stack, exec.HostRegistry{}, cfg)
			if err != nil {
				return err
			}
			if exitCode != 0 {
				return &exec.ExitError{Code: exitCode}
			}
			return nil
		},
	}

	command.Flags().Uint64Var(&maxFuel, "fuel", 0, "fuel budget (0 disables metering)")
	command.Flags().Uint32Var(&maxPages, "max-pages", rwasm.DefaultMaxMemoryPages, "linear memory limit in pages")
	command.Flags().BoolVar(&trace, "trace", false, "log every executed instruction")

	return command
}
