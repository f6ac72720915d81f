package model

// Options is the flat option-name to value mapping handed to the filter
// factory by the host.
type Options map[string]string

// Recognised option keys.
const (
	// OptionSourceDirectory is the base directory holding the source tree. Required.
	OptionSourceDirectory = "sourceDirectory"
	// OptionExcludeSources lists comma-separated globs (relative to the source
	// directory) of files that are never scanned.
	OptionExcludeSources = "excludeSources"
	// OptionMutatorPrefix overrides BuiltinMutatorPrefix in diagnostics.
	OptionMutatorPrefix = "mutatorPrefix"
)

// Get returns the value for key and whether it was set to a non-empty value.
func (o Options) Get(key string) (string, bool) {
	v, ok := o[key]

	return v, ok && v != ""
}
