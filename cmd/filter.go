package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/suppressor/internal/controller"
	m "github.com/mouse-blink/suppressor/internal/model"
)

// filterCmd represents the filter command.
var filterCmd = newFilterCmd()
var mutationsFlag string
var outputFlag string

func newFilterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Drop mutation candidates suppressed by source comments",
		Long: `Run the mutation candidates from --mutations through the suppression filter.
Every dropped candidate is reported on stdout. The kept candidates are written
to --output when given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			candidates, err := manifestStore.LoadMutations(m.Path(mutationsFlag))
			if err != nil {
				return err
			}

			filter, err := buildFilter(cmd)
			if err != nil {
				return err
			}

			kept := filter.Filter(candidates)

			if outputFlag != "" {
				if err := manifestStore.SaveMutations(m.Path(outputFlag), kept); err != nil {
					return err
				}
			}

			return newUI(cmd).DisplayFilterSummary(controller.FilterSummary{
				Description: filter.Description(),
				Classes:     filter.Index().Len(),
				Total:       len(candidates),
				Kept:        len(kept),
			})
		},
	}
	cmd.Flags().StringVarP(&mutationsFlag, "mutations", "m", "", "mutation candidates manifest (YAML or JSON)")
	cmd.Flags().StringVar(&outputFlag, "output", "", "write kept candidates to this file")
	_ = cmd.MarkFlagRequired("mutations")

	return cmd
}

func init() {
	rootCmd.AddCommand(filterCmd)
}
