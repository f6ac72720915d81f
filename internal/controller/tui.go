package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/suppressor/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	input  io.Reader
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{input: input, output: output}
}

// DisplayIndex opens a browsable, filterable list of the suppression index.
func (t *TUI) DisplayIndex(entries []m.ClassSuppressions) error {
	program := tea.NewProgram(newIndexModel(entries), tea.WithInput(t.input), tea.WithOutput(t.output))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("index view: %w", err)
	}

	return nil
}

// DisplayFilterSummary prints a styled one-line summary.
func (t *TUI) DisplayFilterSummary(summary FilterSummary) error {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	_, err := fmt.Fprintf(t.output, "%s suppressed %s of %s mutations %s\n",
		labelStyle.Render(summary.Description),
		accentStyle.Render(fmt.Sprintf("%d", summary.Suppressed())),
		accentStyle.Render(fmt.Sprintf("%d", summary.Total)),
		mutedStyle.Render(fmt.Sprintf("(%d kept, %d classes with directives)", summary.Kept, summary.Classes)),
	)

	return err
}
