package model

import "strings"

// BuiltinMutatorPrefix is the namespace of the engine's built-in mutators.
// Diagnostics drop it to keep mutator names readable.
const BuiltinMutatorPrefix = "org.pitest.mutationtest.engine.gregor.mutators."

// MutationCandidate is one mutation proposed by the host engine.
type MutationCandidate struct {
	Class       string `yaml:"class"`
	Line        int    `yaml:"line"`
	Mutator     string `yaml:"mutator"`
	Description string `yaml:"description"`
}

// ShortMutator strips prefix from mutator when it starts with it.
func ShortMutator(mutator, prefix string) string {
	if prefix == "" {
		return mutator
	}

	return strings.TrimPrefix(mutator, prefix)
}
