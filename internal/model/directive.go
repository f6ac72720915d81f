package model

import (
	"fmt"
	"strings"
)

// SelectorAll suppresses every mutation on the target line.
const SelectorAll = "ALL"

// SuppressionDirective is a parsed `// @suppressMutation(<selector>)` comment.
// TargetLine is always the line after the comment.
type SuppressionDirective struct {
	TargetLine int
	Selector   string
}

// Matches reports whether the directive suppresses a mutation produced by
// mutator on line.
func (d SuppressionDirective) Matches(line int, mutator string) bool {
	if d.TargetLine != line {
		return false
	}

	return d.Selector == SelectorAll || strings.HasSuffix(mutator, d.Selector)
}

func (d SuppressionDirective) String() string {
	return fmt.Sprintf("%d: %s", d.TargetLine, d.Selector)
}

// ClassSuppressions is a read-only view of one suppression index entry.
type ClassSuppressions struct {
	Class      string
	Directives []SuppressionDirective
}
