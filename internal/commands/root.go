package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/journalgen/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "journalgen",
		Short:   "Generate bulk journal CSV fixtures with controlled errors",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newCategoriesCommand())
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
