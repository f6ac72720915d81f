package cmd

import (
	"github.com/spf13/cobra"
)

// indexCmd represents the index command.
var indexCmd = newIndexCmd()

func newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Show the suppression directives found for each class",
		Long: `Scan the source file of every class in the manifest and show which lines
are suppressed and by which selector.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := buildFilter(cmd)
			if err != nil {
				return err
			}

			return newUI(cmd).DisplayIndex(filter.Index().Entries())
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
