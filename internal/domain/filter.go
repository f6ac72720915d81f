package domain

import (
	m "github.com/mouse-blink/suppressor/internal/model"
)

// FilterDescription identifies the suppression semantics. Hosts may use it as
// a cache key, so it changes whenever matching behaviour changes.
const FilterDescription = "CommentTagMutationFilter (v27)"

// MutationFilter drops mutation candidates opted out by suppression comments.
type MutationFilter struct {
	index    *SuppressionIndex
	reporter *Reporter
}

// NewMutationFilter constructs a filter over index. reporter may be nil.
func NewMutationFilter(index *SuppressionIndex, reporter *Reporter) *MutationFilter {
	if index == nil {
		index = NewSuppressionIndex()
	}

	return &MutationFilter{index: index, reporter: reporter}
}

// Description returns FilterDescription.
func (f *MutationFilter) Description() string {
	return FilterDescription
}

// Index returns the suppression index the filter matches against.
func (f *MutationFilter) Index() *SuppressionIndex {
	return f.index
}

// Filter returns the candidates that are not suppressed, in their original
// order. Each suppressed candidate is reported once.
func (f *MutationFilter) Filter(candidates []m.MutationCandidate) []m.MutationCandidate {
	kept := make([]m.MutationCandidate, 0, len(candidates))

	for _, c := range candidates {
		if !f.index.suppressed(c) {
			kept = append(kept, c)
			continue
		}

		if f.reporter != nil {
			f.reporter.Report(c)
		}
	}

	return kept
}
