package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/monify-labs/sysinfo/internal/config"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sysinfo v%s\n", config.Version)
			fmt.Fprintf(out, "Commit: %s\n", config.Commit)
			fmt.Fprintf(out, "Build Date: %s\n", config.BuildDate)
		},
	}
}
