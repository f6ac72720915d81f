// Package adapter contains filesystem and output adapters for the suppressor CLI.
package adapter

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	m "github.com/mouse-blink/suppressor/internal/model"
)

// SourceFSAdapter hides filesystem access needed to locate the sources backing
// classes, so the domain layer can be tested without touching the disk.
type SourceFSAdapter interface {
	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// RelSourcePath returns the slash-separated path, relative to the source
	// directory, of the file backing class: the package directories of its
	// qualified name followed by its source file name.
	RelSourcePath(class m.ClassUnit) string

	// JoinPath joins a source directory and a relative source path.
	JoinPath(root m.Path, rel string) m.Path

	// Excluded reports whether rel matches any of the doublestar patterns.
	Excluded(rel string, patterns []string) (bool, error)
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(p m.Path) (os.FileInfo, error) {
	return os.Stat(string(p))
}

// RelSourcePath maps com.acme.Foo$Bar in Foo.java to com/acme/Foo.java.
func (a *LocalSourceFSAdapter) RelSourcePath(class m.ClassUnit) string {
	elems := strings.Split(class.QualifiedName(), ".")
	elems[len(elems)-1] = class.SourceFileName()

	return path.Join(elems...)
}

// JoinPath joins root and the slash-separated rel into an OS path.
func (a *LocalSourceFSAdapter) JoinPath(root m.Path, rel string) m.Path {
	return m.Path(filepath.Join(string(root), filepath.FromSlash(rel)))
}

// Excluded reports whether rel matches one of patterns.
func (a *LocalSourceFSAdapter) Excluded(rel string, patterns []string) (bool, error) {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, fmt.Errorf("bad exclude pattern %q: %w", pattern, err)
		}

		if ok {
			return true, nil
		}
	}

	return false, nil
}
