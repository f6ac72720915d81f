package domain

import (
	"fmt"
	"slices"
	"strings"

	m "github.com/mouse-blink/suppressor/internal/model"
)

// FileDirectives holds the raw directives found in each source file, keyed by
// the file's path relative to the source directory.
type FileDirectives map[string][]m.SuppressionDirective

// SuppressionIndex maps class names to the directives that apply to them.
// It is never modified after construction and is safe for concurrent reads.
// A nil *SuppressionIndex is empty.
type SuppressionIndex struct {
	byClass map[string][]m.SuppressionDirective
	classes []string
}

// NewSuppressionIndex builds an index from entries. Entries without
// directives are dropped; a repeated class keeps its first entry.
func NewSuppressionIndex(entries ...m.ClassSuppressions) *SuppressionIndex {
	idx := &SuppressionIndex{byClass: make(map[string][]m.SuppressionDirective, len(entries))}

	for _, entry := range entries {
		if len(entry.Directives) == 0 {
			continue
		}

		if _, exists := idx.byClass[entry.Class]; exists {
			continue
		}

		idx.byClass[entry.Class] = slices.Clone(entry.Directives)
		idx.classes = append(idx.classes, entry.Class)
	}

	slices.Sort(idx.classes)

	return idx
}

// Len returns the number of classes with at least one directive.
func (idx *SuppressionIndex) Len() int {
	if idx == nil {
		return 0
	}

	return len(idx.classes)
}

// Directives returns a copy of the directives retained for class.
func (idx *SuppressionIndex) Directives(class string) []m.SuppressionDirective {
	if idx == nil {
		return nil
	}

	return slices.Clone(idx.byClass[class])
}

// Entries returns every entry, ordered by class name.
func (idx *SuppressionIndex) Entries() []m.ClassSuppressions {
	entries := make([]m.ClassSuppressions, 0, idx.Len())
	for _, class := range idx.classNames() {
		entries = append(entries, m.ClassSuppressions{Class: class, Directives: idx.Directives(class)})
	}

	return entries
}

func (idx *SuppressionIndex) String() string {
	var b strings.Builder

	b.WriteString("{")

	for i, class := range idx.classNames() {
		if i > 0 {
			b.WriteString(", ")
		}

		fmt.Fprintf(&b, "%s=%v", class, idx.byClass[class])
	}

	b.WriteString("}")

	return b.String()
}

func (idx *SuppressionIndex) classNames() []string {
	if idx == nil {
		return nil
	}

	return idx.classes
}

// suppressed reports whether any directive of the candidate's class matches it.
func (idx *SuppressionIndex) suppressed(c m.MutationCandidate) bool {
	if idx == nil {
		return false
	}

	for _, d := range idx.byClass[c.Class] {
		if d.Matches(c.Line, c.Mutator) {
			return true
		}
	}

	return false
}

// classSource pairs a class with the relative path of the file backing it.
type classSource struct {
	class m.ClassUnit
	file  string
}

// BuildIndex narrows the raw directives of each file to the classes it backs:
// a class keeps only the directives whose target line is one of its code lines.
func BuildIndex(classes []m.ClassUnit, fileOf func(m.ClassUnit) string, files FileDirectives) *SuppressionIndex {
	sources := make([]classSource, 0, len(classes))
	for _, class := range classes {
		sources = append(sources, classSource{class: class, file: fileOf(class)})
	}

	return buildIndex(sources, files)
}

func buildIndex(sources []classSource, files FileDirectives) *SuppressionIndex {
	entries := make([]m.ClassSuppressions, 0, len(sources))

	for _, src := range sources {
		raw := files[src.file]
		if len(raw) == 0 {
			continue
		}

		entries = append(entries, m.ClassSuppressions{
			Class:      src.class.QualifiedName(),
			Directives: narrowToClass(src.class, raw),
		})
	}

	return NewSuppressionIndex(entries...)
}

func narrowToClass(class m.ClassUnit, raw []m.SuppressionDirective) []m.SuppressionDirective {
	var kept []m.SuppressionDirective

	for _, d := range raw {
		if class.IsCodeLine(d.TargetLine) {
			kept = append(kept, d)
		}
	}

	return kept
}
