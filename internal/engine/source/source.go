// Package source reads files into the line sequences a document is loaded from.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// maxLineSize bounds a single line. Longer lines fail the load.
const maxLineSize = 16 * 1024 * 1024

// ErrLoad is matched by every error the loader returns.
var ErrLoad = errors.New("load failed")

// LoadError reports a file that could not be read into lines.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("loading lines: %v", e.Err)
	}
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is matches ErrLoad as well as the wrapped error.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}

// Loader reads line sequences from a file system.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a loader over fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// OSLoader returns a loader for the host file system.
// Relative paths are resolved against the working directory.
func OSLoader() *Loader {
	return NewLoader(nil)
}

// Load reads path and splits it into lines.
func (l *Loader) Load(path string) ([]string, error) {
	f, err := l.open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: errors.Unwrap(err)}
	}
	return lines, nil
}

func (l *Loader) open(path string) (io.ReadCloser, error) {
	if l.fsys == nil {
		return os.Open(filepath.Clean(path))
	}
	return l.fsys.Open(strings.TrimPrefix(filepath.ToSlash(filepath.Clean(path)), "/"))
}

// ReadLines splits r into lines without their terminators.
// Both "\n" and "\r\n" end a line; a missing final newline is fine and an
// empty input yields no lines.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Err: err}
	}
	return lines, nil
}
