package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/suppressor/internal/model"
)

// SimpleUI implements UI using plain text on the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayIndex prints one table row per directive.
func (s *SimpleUI) DisplayIndex(entries []m.ClassSuppressions) error {
	if len(entries) == 0 {
		s.printf("No suppression directives found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Class", "Line", "Selector"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	for _, entry := range entries {
		for _, d := range entry.Directives {
			table.Append([]string{entry.Class, fmt.Sprintf("%d", d.TargetLine), d.Selector})
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Classes %d", len(entries)),
		"",
		fmt.Sprintf("%d", countDirectives(entries)),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayFilterSummary prints how many candidates were kept.
func (s *SimpleUI) DisplayFilterSummary(summary FilterSummary) error {
	s.printf("%s: suppressed %d of %d mutations (%d kept, %d classes with directives)\n",
		summary.Description, summary.Suppressed(), summary.Total, summary.Kept, summary.Classes)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
