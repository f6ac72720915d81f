package adapter

import (
	"fmt"

	m "github.com/mouse-blink/suppressor/internal/model"
)

// ConfigAdapter loads factory options from a flat YAML or JSON document.
type ConfigAdapter interface {
	LoadOptions(path m.Path) (m.Options, error)
}

// LocalConfigAdapter reads option files from disk.
type LocalConfigAdapter struct{}

// NewLocalConfigAdapter constructs a LocalConfigAdapter.
func NewLocalConfigAdapter() *LocalConfigAdapter {
	return &LocalConfigAdapter{}
}

// LoadOptions reads path and returns its top-level scalar entries as options.
// An empty path yields empty options.
func (a *LocalConfigAdapter) LoadOptions(path m.Path) (m.Options, error) {
	opts := m.Options{}
	if path == "" {
		return opts, nil
	}

	var raw map[string]any
	if err := readYAML(path, &raw); err != nil {
		return nil, err
	}

	for key, value := range raw {
		switch v := value.(type) {
		case nil:
			opts[key] = ""
		case map[string]any, []any:
			return nil, fmt.Errorf("%s: option %q must be a scalar", path, key)
		default:
			opts[key] = fmt.Sprint(v)
		}
	}

	return opts, nil
}

// MergeOptions returns base overlaid with overrides.
func MergeOptions(base m.Options, overrides map[string]string) m.Options {
	merged := make(m.Options, len(base)+len(overrides))
	for k, v := range base {
		merged[k] = v
	}

	for k, v := range overrides {
		merged[k] = v
	}

	return merged
}
