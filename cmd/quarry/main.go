package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quarrybuild/quarry/internal/errs"
	"github.com/quarrybuild/quarry/internal/logging"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:           "quarry",
	Short:         "quarry toolchain utilities",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logging.SetMinimalLevel(logging.DEBUG)
		}
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(newCsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "quarry: %v\n", err)
		os.Exit(errs.UnwrapExitCode(err))
	}
}
