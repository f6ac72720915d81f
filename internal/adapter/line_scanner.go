package adapter

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"iter"
	"os"

	m "github.com/mouse-blink/suppressor/internal/model"
)

// LineScanner turns a file into a lazy sequence of numbered lines.
type LineScanner interface {
	// Lines returns the lines of path in file order, numbered from 1. Every
	// range over the result reads the file from the start. A failure to open or
	// read the file is yielded once as the last element.
	Lines(path m.Path) iter.Seq2[m.SourceLine, error]
}

// LocalLineScanner reads lines from the local filesystem.
type LocalLineScanner struct{}

// NewLocalLineScanner constructs a LocalLineScanner.
func NewLocalLineScanner() *LocalLineScanner {
	return &LocalLineScanner{}
}

// Lines implements LineScanner. Lines end at "\n", "\r\n" or a bare "\r" and
// have no length limit.
func (s *LocalLineScanner) Lines(path m.Path) iter.Seq2[m.SourceLine, error] {
	return func(yield func(m.SourceLine, error) bool) {
		// #nosec G304 - path comes from the configured source directory
		f, err := os.Open(string(path))
		if err != nil {
			yield(m.SourceLine{}, err)
			return
		}

		defer func() { _ = f.Close() }()

		r := bufio.NewReader(f)

		for number := 1; ; number++ {
			text, err := readLine(r)
			if errors.Is(err, io.EOF) {
				return
			}

			if err != nil {
				yield(m.SourceLine{}, err)
				return
			}

			if !yield(m.SourceLine{Number: number, Text: text}, nil) {
				return
			}
		}
	}
}

// readLine returns the next line without its terminator. io.EOF is returned
// only when no bytes remain.
func readLine(r *bufio.Reader) (string, error) {
	var line []byte

	for {
		if r.Buffered() == 0 {
			if _, err := r.Peek(1); err != nil {
				if errors.Is(err, io.EOF) && len(line) > 0 {
					return string(line), nil
				}

				return "", err
			}
		}

		buf, _ := r.Peek(r.Buffered())

		end := bytes.IndexAny(buf, "\r\n")
		if end < 0 {
			line = append(line, buf...)
			_, _ = r.Discard(len(buf))

			continue
		}

		line = append(line, buf[:end]...)
		terminator := buf[end]
		_, _ = r.Discard(end + 1)

		if terminator == '\r' {
			if next, err := r.Peek(1); err == nil && next[0] == '\n' {
				_, _ = r.Discard(1)
			}
		}

		return string(line), nil
	}
}
