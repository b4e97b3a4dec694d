package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fluentlabs-xyz/rwasm/cmd/rwasm/dump"
	"github.com/fluentlabs-xyz/rwasm/cmd/rwasm/run"
	"github.com/fluentlabs-xyz/rwasm/exec"
)

var version = "<unknown>"

func configureCLI() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "rwasm",
		Short:         "rwasm bytecode suite",
		Long:          "rwasm - tools for the rWASM intermediate representation",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCommand.AddCommand(dump.Command())
	rootCommand.AddCommand(run.Command())

	return rootCommand
}

func main() {
	rootCommand := configureCLI()

	if err := rootCommand.Execute(); err != nil {
		if exit, ok := err.(*exec.ExitError); ok {
			os.Exit(int(exit.Code))
		}

		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
