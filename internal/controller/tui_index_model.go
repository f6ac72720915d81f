package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/suppressor/internal/model"
)

// directiveItem is one row of the index list.
type directiveItem struct {
	class    string
	line     int
	selector string
}

func (d directiveItem) FilterValue() string {
	return d.class + " " + d.selector
}

type indexDelegate struct{}

func (d indexDelegate) Height() int  { return 1 }
func (d indexDelegate) Spacing() int { return 0 }
func (d indexDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d indexDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	row, ok := item.(directiveItem)
	if !ok {
		return
	}

	lineStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(6).Align(lipgloss.Right)
	classStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	selectorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	if index == lm.Index() {
		selected := lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
		lineStyle = selected.Width(6).Align(lipgloss.Right)
		classStyle = selected
		selectorStyle = selected
	}

	selectorWidth := lipgloss.Width(row.selector)
	classWidth := lm.Width() - 6 - 4 - selectorWidth

	_, _ = fmt.Fprintf(w, "%s  %s  %s",
		lineStyle.Render(fmt.Sprintf("%d", row.line)),
		classStyle.Render(truncateToWidth(row.class, classWidth)),
		selectorStyle.Render(row.selector),
	)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// indexModel browses a suppression index.
type indexModel struct {
	width      int
	height     int
	rows       list.Model
	classes    int
	directives int
}

func newIndexModel(entries []m.ClassSuppressions) indexModel {
	items := make([]list.Item, 0, countDirectives(entries))
	for _, entry := range entries {
		for _, d := range entry.Directives {
			items = append(items, directiveItem{class: entry.Class, line: d.TargetLine, selector: d.Selector})
		}
	}

	rows := list.New(items, indexDelegate{}, 80, 20)
	rows.SetShowPagination(false)
	rows.SetShowFilter(true)
	rows.SetShowHelp(false)
	rows.SetShowTitle(false)
	rows.SetShowStatusBar(false)
	rows.FilterInput.Placeholder = "Filter by class or selector…"

	return indexModel{
		rows:       rows,
		classes:    len(entries),
		directives: len(items),
	}
}

func (im indexModel) Init() tea.Cmd {
	return nil
}

func (im indexModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		im.width = msg.Width
		im.height = msg.Height
		im.rows.SetWidth(im.listWidth())
		im.rows.SetHeight(im.listHeight())

		return im, nil

	case tea.KeyMsg:
		if im.rows.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c", "esc":
				return im, tea.Quit
			}
		} else if msg.String() == "ctrl+c" {
			return im, tea.Quit
		}
	}

	var cmd tea.Cmd

	im.rows, cmd = im.rows.Update(msg)

	return im, cmd
}

// listHeight leaves room for title (2), summary (2), footer (1), border (2)
// and the column header (2).
func (im indexModel) listHeight() int {
	h := im.height - 9
	if h < 5 {
		return 5
	}

	return h
}

// listWidth subtracts margin, border and padding.
func (im indexModel) listWidth() int {
	w := im.width - 6
	if w < 20 {
		return 20
	}

	return w
}

func (im indexModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("Suppression Index")
	summary := summaryStyle.Render(fmt.Sprintf(
		"Classes: %s   Directives: %s",
		accentStyle.Render(fmt.Sprintf("%d", im.classes)),
		accentStyle.Render(fmt.Sprintf("%d", im.directives)),
	))

	if im.directives == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, summary, "  No suppression directives found", "")
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(im.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		im.renderTable(),
		footer,
	)
}

func (im indexModel) renderTable() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(im.rows.Width())

	headers := headerStyle.Render(fmt.Sprintf("%6s  %s", "Line", "Class / Selector"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			im.rows.View(),
		),
	)
}
