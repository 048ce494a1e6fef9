// Package sink writes generated layouts to their destination.
package sink

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Sink accepts a destination name and a payload and performs the write.
// Implementations do not retry.
type Sink interface {
	Write(dest string, text []byte) error
}

// WriteError reports a failed write to dest.
type WriteError struct {
	Dest string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("sink: write %s: %v", e.Dest, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// FileSink writes each payload to Dir/dest.
type FileSink struct {
	Dir string
}

// NewFileSink returns a FileSink rooted at dir ("." when empty).
func NewFileSink(dir string) *FileSink {
	if dir == "" {
		dir = "."
	}
	return &FileSink{Dir: dir}
}

// Path returns the file a destination name resolves to.
func (s *FileSink) Path(dest string) string {
	if filepath.IsAbs(dest) {
		return dest
	}
	return filepath.Join(s.Dir, dest)
}

// Write replaces the destination file atomically:
//   - ensures the parent directory exists (0755)
//   - writes to a temp file in the same directory, fsyncs and closes it
//   - chmods to 0644 and renames over the target
func (s *FileSink) Write(dest string, text []byte) error {
	if dest == "" {
		return &WriteError{Dest: dest, Err: errors.New("destination is empty")}
	}
	path := s.Path(dest)
	if err := writeAtomic(path, text); err != nil {
		return &WriteError{Dest: path, Err: err}
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".widgetgen-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	// Ensure we clean up temp file on error.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// WriterSink writes every payload to W, ignoring the destination name.
// Used for --stdout.
type WriterSink struct {
	W io.Writer
}

func (s *WriterSink) Write(dest string, text []byte) error {
	if _, err := s.W.Write(text); err != nil {
		return &WriteError{Dest: dest, Err: err}
	}
	return nil
}
