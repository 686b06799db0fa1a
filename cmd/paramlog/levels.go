package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shaelmaar/paramlog/logger"
)

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the registered severity levels in rank order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, l := range logger.Levels() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %d\n", l, int(l))
			}
			return nil
		},
	}
}
