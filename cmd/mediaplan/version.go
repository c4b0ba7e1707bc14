package main

import (
	"fmt"

	"github.com/janekbaraniewski/mediaplan/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "mediaplan "+version.String())
			if version.Release() == "" {
				fmt.Fprintln(out, "development build")
			}
		},
	}
}
