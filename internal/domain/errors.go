package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/suppressor/internal/model"
)

// ErrMissingSourceDirectory is returned when the sourceDirectory option is absent.
var ErrMissingSourceDirectory = errors.New("source directory not configured")

// ConfigError reports a bad factory option.
type ConfigError struct {
	Key string
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("option %s: %v", e.Key, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ScanError reports a failure to read a source file while building the index.
type ScanError struct {
	File m.Path
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s: %v", e.File, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}
