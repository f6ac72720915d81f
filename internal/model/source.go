// Package model defines the data structures shared by the suppression filter.
package model

// Path represents a file system path.
type Path string

// SourceLine is one physical line of a source file.
type SourceLine struct {
	Number int // 1-indexed
	Text   string
}

// ClassUnit is a logical class exposed by the host's metadata provider.
// Several classes may be backed by the same source file; each keeps its own
// code-line predicate.
type ClassUnit interface {
	QualifiedName() string
	SourceFileName() string
	IsCodeLine(line int) bool
}

// Class is a ClassUnit backed by an explicit set of executable lines.
type Class struct {
	Name       string
	SourceFile string
	codeLines  map[int]struct{}
}

// NewClass constructs a Class whose code lines are exactly codeLines.
func NewClass(name, sourceFile string, codeLines ...int) Class {
	lines := make(map[int]struct{}, len(codeLines))
	for _, line := range codeLines {
		lines[line] = struct{}{}
	}

	return Class{Name: name, SourceFile: sourceFile, codeLines: lines}
}

// QualifiedName returns the dotted class name.
func (c Class) QualifiedName() string {
	return c.Name
}

// SourceFileName returns the bare file name (no directories) backing the class.
func (c Class) SourceFileName() string {
	return c.SourceFile
}

// IsCodeLine reports whether line is executable code for this class.
func (c Class) IsCodeLine(line int) bool {
	_, ok := c.codeLines[line]

	return ok
}

// CodeSource enumerates the classes known to a run.
type CodeSource interface {
	Classes() []ClassUnit
}

// ClassList is a CodeSource over a fixed slice of classes.
type ClassList []ClassUnit

// Classes implements CodeSource.
func (l ClassList) Classes() []ClassUnit {
	return l
}
