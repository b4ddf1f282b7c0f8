package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/journalgen/internal/generator"
)

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the error types entries can be corrupted with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, c := range generator.Categories() {
				fmt.Fprintf(out, "  %-20s %s\n", c, generator.Help(c))
			}
			fmt.Fprintf(out, "  %-20s %s\n", generator.Mixed, "Random mix of all error types (default)")
			return nil
		},
	}
}
