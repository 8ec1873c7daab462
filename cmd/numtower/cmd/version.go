package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/numtower/pkg/core/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Zeigt die Version an",
		// settings are not needed to print the version
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, version.Info())
			for _, name := range version.Components() {
				fmt.Fprintf(out, "  %-8s %s\n", name, version.ComponentVersion(name))
			}
		},
	}
}
