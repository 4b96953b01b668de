package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pqcbench/internal/report"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the mechanisms enabled in the linked provider build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			provider := newProviderFunc()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, report.Banner("Enabled KEM mechanisms"))
			for _, name := range provider.KEMNames() {
				fmt.Fprintf(out, "  %s\n", name)
			}

			fmt.Fprintln(out, report.Banner("Enabled signature mechanisms"))
			for _, name := range provider.SignatureNames() {
				fmt.Fprintf(out, "  %s\n", name)
			}
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newListCmd())
}
