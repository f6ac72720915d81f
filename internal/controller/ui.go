// Package controller renders suppression indexes and filter results.
package controller

import (
	m "github.com/mouse-blink/suppressor/internal/model"
)

// FilterSummary describes one filter run.
type FilterSummary struct {
	Description string
	Classes     int // classes with suppression directives
	Total       int
	Kept        int
}

// Suppressed returns the number of candidates the filter dropped.
func (s FilterSummary) Suppressed() int {
	return s.Total - s.Kept
}

// UI defines how results are shown to the operator.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayIndex(entries []m.ClassSuppressions) error
	DisplayFilterSummary(summary FilterSummary) error
}

func countDirectives(entries []m.ClassSuppressions) int {
	total := 0
	for _, entry := range entries {
		total += len(entry.Directives)
	}

	return total
}
