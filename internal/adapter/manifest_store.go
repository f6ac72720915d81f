package adapter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/suppressor/internal/model"
)

// ManifestStore loads the class and mutation manifests written by the host
// engine and persists filtered mutation lists. Both YAML and JSON are accepted.
type ManifestStore interface {
	LoadClasses(path m.Path) ([]m.Class, error)
	LoadMutations(path m.Path) ([]m.MutationCandidate, error)
	SaveMutations(path m.Path, mutations []m.MutationCandidate) error
}

type classRecord struct {
	Name       string `yaml:"name"`
	SourceFile string `yaml:"sourceFile"`
	CodeLines  []int  `yaml:"codeLines"`
}

type classManifest struct {
	Classes []classRecord `yaml:"classes"`
}

type mutationManifest struct {
	Mutations []m.MutationCandidate `yaml:"mutations"`
}

type manifestStore struct{}

// NewManifestStore constructs a file-backed ManifestStore.
func NewManifestStore() ManifestStore {
	return &manifestStore{}
}

func (ms *manifestStore) LoadClasses(path m.Path) ([]m.Class, error) {
	var manifest classManifest
	if err := readYAML(path, &manifest); err != nil {
		return nil, err
	}

	classes := make([]m.Class, 0, len(manifest.Classes))

	for i, rec := range manifest.Classes {
		if rec.Name == "" || rec.SourceFile == "" {
			return nil, fmt.Errorf("%s: class #%d needs name and sourceFile", path, i+1)
		}

		classes = append(classes, m.NewClass(rec.Name, rec.SourceFile, rec.CodeLines...))
	}

	return classes, nil
}

func (ms *manifestStore) LoadMutations(path m.Path) ([]m.MutationCandidate, error) {
	var manifest mutationManifest
	if err := readYAML(path, &manifest); err != nil {
		return nil, err
	}

	return manifest.Mutations, nil
}

func (ms *manifestStore) SaveMutations(path m.Path, mutations []m.MutationCandidate) error {
	if mutations == nil {
		mutations = []m.MutationCandidate{}
	}

	data, err := yaml.Marshal(mutationManifest{Mutations: mutations})
	if err != nil {
		return fmt.Errorf("failed to encode mutations: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func readYAML(path m.Path, out any) error {
	// #nosec G304 - manifest path is supplied by the operator
	data, err := os.ReadFile(string(path))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}
