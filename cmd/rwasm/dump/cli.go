package dump

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	rwasm "github.com/fluentlabs-xyz/rwasm"
)

// Command returns the `rwasm dump` verb: disassemble an rwasm binary, or
// emit per-function instruction statistics as CSV with --stats.
func Command() *cobra.Command {
	var stats bool

	command := &cobra.Command{
		Use:   "dump [file]",
		Short: "disassemble an rwasm binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			binary, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			module, err := rwasm.Decode(binary)
			if err != nil {
				return err
			}

			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()

			if stats {
				return dumpStats(out, module)
			}
			return dumpCode(out, module)
		},
	}

	command.Flags().BoolVar(&stats, "stats", false, "emit per-function instruction statistics as CSV")

	return command
}

func dumpCode(out *bufio.Writer, module *rwasm.Module) error {
	pc := uint32(0)
	for funcIdx, length := range module.FuncLengths {
		name := fmt.Sprintf("func[%d]", funcIdx)
		if funcIdx == len(module.FuncLengths)-1 {
			name = "entrypoint"
		}
		fmt.Fprintf(out, "%s: (%d instructions)\n", name, length)
		for i := uint32(0); i < length; i++ {
			fmt.Fprintf(out, "%6d: %v\n", pc, module.Code[pc])
			pc++
		}
	}
	return nil
}
