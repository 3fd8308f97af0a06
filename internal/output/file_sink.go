package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/monify-labs/sysinfo/internal/report"
)

// FileSink writes the report to a file, replacing any previous report
type FileSink struct {
	path string
}

// NewFileSink creates a new file sink
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Path returns the destination file
func (f *FileSink) Path() string {
	return f.path
}

// Write writes the report as UTF-8 text
func (f *FileSink) Write(ctx context.Context, r *report.Report) error {
	if r == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(f.path, []byte(r.String()), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// Close is a no-op; the file is closed after every write
func (f *FileSink) Close() error {
	return nil
}

// WriterSink copies the report to an io.Writer such as stdout
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a new writer sink
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Write copies the report to the writer
func (s *WriterSink) Write(ctx context.Context, r *report.Report) error {
	if r == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := io.WriteString(s.w, r.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Close closes the writer when it is an io.Closer other than stdout/stderr
func (s *WriterSink) Close() error {
	if s.w == os.Stdout || s.w == os.Stderr {
		return nil
	}
	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
