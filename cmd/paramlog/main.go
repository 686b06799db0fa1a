package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "paramlog",
		Short: "paramlog - emit owner-tagged, leveled log messages.",
		Long: `paramlog drives the logging facade used by parameterized objects.

Usage:
  paramlog <command> [flags]

Available Commands:
  emit      Emit one message through the facade
  levels    List the registered severity levels
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.AddCommand(newEmitCmd())
	rootCmd.AddCommand(newLevelsCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
