package encodeservice

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/redjax/encsweep/internal/utils/path"
)

// maxLineSize caps a single input line read from a file.
const maxLineSize = 16 * 1024 * 1024

// Source yields the input strings of one sweep pass.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	// Each calls fn for every input string, in order.
	Each(fn func(input string)) error
}

type literalSource struct {
	value string
}

// NewLiteralSource returns a source yielding s unchanged.
func NewLiteralSource(s string) Source {
	return literalSource{value: s}
}

func (s literalSource) Name() string {
	return "string"
}

func (s literalSource) Each(fn func(input string)) error {
	fn(s.value)
	return nil
}

type fileSource struct {
	path string
}

// NewFileSource validates that p names an existing regular file and returns a
// source yielding each of its lines with surrounding whitespace removed.
func NewFileSource(p string) (Source, error) {
	expanded, err := path.ExpandPath(p)
	if err != nil {
		return nil, &InputSourceError{Path: p, Reason: "invalid path", Err: err}
	}

	info, err := os.Stat(expanded)
	if err != nil {
		return nil, &InputSourceError{Path: p, Reason: "stat failed", Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &InputSourceError{Path: p, Reason: "not a regular file"}
	}

	return fileSource{path: expanded}, nil
}

// NewFileSources validates every path before returning any source, so a bad
// path aborts the run before encoding starts.
func NewFileSources(paths []string) ([]Source, error) {
	sources := make([]Source, 0, len(paths))
	for _, p := range paths {
		src, err := NewFileSource(p)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func (s fileSource) Name() string {
	return s.path
}

// Each reopens the file on every pass; the handle is closed on all return paths.
func (s fileSource) Each(fn func(input string)) error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		fn(strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", s.path, err)
	}
	return nil
}
