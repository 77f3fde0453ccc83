package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quarrybuild/quarry/internal/buildtypes"
	"github.com/quarrybuild/quarry/internal/errs"
	"github.com/quarrybuild/quarry/internal/exeutils"
	"github.com/quarrybuild/quarry/internal/fileutils"
	"github.com/quarrybuild/quarry/internal/machine"
	"github.com/quarrybuild/quarry/internal/rspfile"
	"github.com/quarrybuild/quarry/pkg/compilers/cs"
)

func newCsCmd() *cobra.Command {
	csCmd := &cobra.Command{
		Use:   "cs",
		Short: "Inspect and validate the C# toolchain",
	}
	csCmd.AddCommand(newCsCheckCmd())
	csCmd.AddCommand(newCsArgsCmd())
	return csCmd
}

func detectCompiler() (cs.Compiler, error) {
	return cs.Detect(machine.Host, machine.Current(), exeutils.NewRunner())
}

func newCsCheckCmd() *cobra.Command {
	var workDir string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Detect a C# compiler and verify it can compile (and run) programs",
		RunE: func(cmd *cobra.Command, args []string) error {
			compiler, err := detectCompiler()
			if err != nil {
				return err
			}

			if workDir == "" {
				workDir, err = fileutils.UniqueDir(os.TempDir())
				if err != nil {
					return errs.Wrap(err, "could not create scratch directory")
				}
			}

			if err := compiler.SanityCheck(workDir); err != nil {
				var uerr *cs.UnusableError
				if errors.As(err, &uerr) && uerr.Stderr() != "" {
					fmt.Fprint(os.Stderr, uerr.Stderr())
				}
				return errs.WrapExitCode(err, 1)
			}

			fmt.Printf("%s %s: ok (%s)\n", compiler.Kind(), compiler.Version(), strings.Join(compiler.Invocation(), " "))
			return nil
		},
	}

	cmd.Flags().StringVar(&workDir, "workdir", "", "directory to run the check in (default: fresh scratch dir)")
	return cmd
}

func newCsArgsCmd() *cobra.Command {
	var (
		buildTypeName string
		optimization  string
		debug         bool
		output        string
		rspPath       string
	)

	cmd := &cobra.Command{
		Use:   "args",
		Short: "Render the compiler argument list for a build configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			compiler, err := detectCompiler()
			if err != nil {
				return err
			}

			buildType, ok := buildtypes.MakeByName(buildTypeName)
			if !ok {
				return errs.New("unknown build type %q, expected one of: %s", buildTypeName, strings.Join(buildtypes.Names(), ", "))
			}

			rendered := compiler.AlwaysArgs()
			rendered = append(rendered, compiler.BuildTypeArgs(buildType)...)
			if optimization != "" {
				rendered = append(rendered, compiler.OptimizationArgs(optimization)...)
			}
			rendered = append(rendered, compiler.DebugArgs(debug)...)
			if output != "" {
				rendered = append(rendered, compiler.OutputArgs(output)...)
			}

			if rspPath != "" {
				if err := rspfile.Write(rspPath, rendered, compiler.RSPFileSyntax()); err != nil {
					return err
				}
				fmt.Printf("wrote %d arguments to %s (%s syntax)\n", len(rendered), rspPath, compiler.RSPFileSyntax())
				return nil
			}

			for _, arg := range rendered {
				fmt.Println(arg)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&buildTypeName, "buildtype", "debug", "named build type preset")
	cmd.Flags().StringVar(&optimization, "optimization", "", "optimization level (0, g, 1, 2, 3, s)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug symbols")
	cmd.Flags().StringVar(&output, "output", "", "primary output path")
	cmd.Flags().StringVar(&rspPath, "rsp", "", "write the arguments to a response file instead of stdout")
	return cmd
}
