// Package output provides CLI output formatting and debug logging.
package output

import (
	"fmt"
	"io"
	"os"
)

// Splog provides structured logging and output
type Splog struct {
	writer io.Writer
	quiet  bool
}

// NewSplog creates a new splog instance
func NewSplog() *Splog {
	return &Splog{
		writer: os.Stdout,
	}
}

// NewSplogTo creates a splog instance writing to w
func NewSplogTo(w io.Writer) *Splog {
	return &Splog{writer: w}
}

// SetQuiet suppresses all non-error output
func (s *Splog) SetQuiet(quiet bool) {
	s.quiet = quiet
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	if s.quiet {
		return
	}
	fmt.Fprintf(s.writer, format+"\n", args...)
}

// Page writes output as-is
func (s *Splog) Page(content string) {
	if s.quiet {
		return
	}
	fmt.Fprint(s.writer, content)
}

// Newline writes a newline
func (s *Splog) Newline() {
	if s.quiet {
		return
	}
	fmt.Fprintln(s.writer)
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, "⚠️  "+format+"\n", args...)
}
