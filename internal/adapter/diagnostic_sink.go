package adapter

import (
	"fmt"
	"io"
	"sync"
)

// DiagnosticSink receives human-readable diagnostic lines.
type DiagnosticSink interface {
	WriteLine(line string) error
}

type flusher interface {
	Flush() error
}

// WriterSink writes each line to an io.Writer and flushes it straight away
// when the writer buffers. Safe for concurrent use.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink constructs a WriterSink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// WriteLine writes line followed by a newline.
func (s *WriterSink) WriteLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprintln(s.w, line); err != nil {
		return err
	}

	if f, ok := s.w.(flusher); ok {
		return f.Flush()
	}

	return nil
}
