// Package domain compiles suppression comments into an index and filters
// mutation candidates against it.
package domain

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/suppressor/internal/adapter"
	m "github.com/mouse-blink/suppressor/internal/model"
)

// Factory creates MutationFilters. Every CreateFilter call scans the sources
// afresh; nothing is cached between calls.
type Factory struct {
	fsAdapter   adapter.SourceFSAdapter
	scanner     adapter.LineScanner
	sink        adapter.DiagnosticSink
	logger      logrus.FieldLogger
	parallelism int
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithParallelism sets how many source files are scanned concurrently.
func WithParallelism(n int) FactoryOption {
	return func(f *Factory) {
		if n > 0 {
			f.parallelism = n
		}
	}
}

// NewFactory constructs a Factory. Diagnostics for suppressed mutations are
// written to sink.
func NewFactory(
	fsAdapter adapter.SourceFSAdapter,
	scanner adapter.LineScanner,
	sink adapter.DiagnosticSink,
	logger logrus.FieldLogger,
	opts ...FactoryOption,
) *Factory {
	f := &Factory{
		fsAdapter:   fsAdapter,
		scanner:     scanner,
		sink:        sink,
		logger:      logger,
		parallelism: 1,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateFilter scans the sources of every class in code, builds the
// suppression index and returns a filter over it. The per-class mutation
// budget is accepted for interface compatibility and ignored. Any unreadable
// source file fails the whole call.
func (f *Factory) CreateFilter(
	ctx context.Context,
	options m.Options,
	code m.CodeSource,
	_ int,
) (*MutationFilter, error) {
	root, err := f.sourceDirectory(options)
	if err != nil {
		return nil, err
	}

	excludes, err := parseExcludes(options)
	if err != nil {
		return nil, err
	}

	sources := f.resolveSources(code.Classes())

	files, err := f.scannableFiles(sources, excludes)
	if err != nil {
		return nil, err
	}

	fileDirectives, err := f.scanFiles(ctx, root, files)
	if err != nil {
		return nil, err
	}

	f.logger.WithFields(logrus.Fields{
		"files":   len(fileDirectives),
		"targets": fileDirectives,
	}).Debug("collected suppression targets")

	index := buildIndex(sources, fileDirectives)

	f.logger.WithFields(logrus.Fields{
		"classes": index.Len(),
		"index":   index.String(),
	}).Info("built suppression index")

	prefix := m.BuiltinMutatorPrefix
	if v, ok := options.Get(m.OptionMutatorPrefix); ok {
		prefix = v
	}

	return NewMutationFilter(index, NewReporter(f.sink, prefix, f.logger)), nil
}

func (f *Factory) sourceDirectory(options m.Options) (m.Path, error) {
	dir, ok := options.Get(m.OptionSourceDirectory)
	if !ok {
		return "", &ConfigError{Key: m.OptionSourceDirectory, Err: ErrMissingSourceDirectory}
	}

	info, err := f.fsAdapter.FileInfo(m.Path(dir))
	if err != nil {
		return "", &ConfigError{Key: m.OptionSourceDirectory, Err: err}
	}

	if !info.IsDir() {
		return "", &ConfigError{Key: m.OptionSourceDirectory, Err: fmt.Errorf("%s is not a directory", dir)}
	}

	return m.Path(dir), nil
}

func parseExcludes(options m.Options) ([]string, error) {
	raw, ok := options.Get(m.OptionExcludeSources)
	if !ok {
		return nil, nil
	}

	var patterns []string

	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if !doublestar.ValidatePattern(p) {
			return nil, &ConfigError{Key: m.OptionExcludeSources, Err: fmt.Errorf("invalid pattern %q", p)}
		}

		patterns = append(patterns, p)
	}

	return patterns, nil
}

func (f *Factory) resolveSources(classes []m.ClassUnit) []classSource {
	sources := make([]classSource, 0, len(classes))
	seen := make(map[string]struct{}, len(classes))

	for _, class := range classes {
		name := class.QualifiedName()
		if _, dup := seen[name]; dup {
			f.logger.WithField("class", name).Warn("duplicate class in code source, keeping first")
			continue
		}

		seen[name] = struct{}{}

		sources = append(sources, classSource{class: class, file: f.fsAdapter.RelSourcePath(class)})
	}

	return sources
}

// scannableFiles returns the distinct backing files in lexicographic order,
// minus excluded ones.
func (f *Factory) scannableFiles(sources []classSource, excludes []string) ([]string, error) {
	files := make([]string, 0, len(sources))

	for _, src := range sources {
		files = append(files, src.file)
	}

	slices.Sort(files)
	files = slices.Compact(files)

	if len(excludes) == 0 {
		return files, nil
	}

	kept := files[:0]

	for _, file := range files {
		excluded, err := f.fsAdapter.Excluded(file, excludes)
		if err != nil {
			return nil, &ConfigError{Key: m.OptionExcludeSources, Err: err}
		}

		if excluded {
			f.logger.WithField("file", file).Debug("source excluded from scan")
			continue
		}

		kept = append(kept, file)
	}

	return kept, nil
}

// scanFiles extracts directives from every file. Workers write only their own
// slot; the map is assembled after all of them finish. The first failure
// cancels the remaining scans and nothing is returned.
func (f *Factory) scanFiles(ctx context.Context, root m.Path, files []string) (FileDirectives, error) {
	results := make([][]m.SuppressionDirective, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.parallelism)

	for i, rel := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			path := f.fsAdapter.JoinPath(root, rel)

			directives, err := ExtractDirectives(f.scanner.Lines(path))
			if err != nil {
				return &ScanError{File: path, Err: err}
			}

			f.logger.WithFields(logrus.Fields{
				"file":       rel,
				"directives": len(directives),
			}).Debug("scanned source file")

			results[i] = directives

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var scanErr *ScanError
		if errors.As(err, &scanErr) {
			return nil, scanErr
		}

		return nil, fmt.Errorf("scan sources: %w", err)
	}

	merged := make(FileDirectives, len(files))

	for i, rel := range files {
		if len(results[i]) > 0 {
			merged[rel] = results[i]
		}
	}

	return merged, nil
}
