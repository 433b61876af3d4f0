package fs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"gendoc/internal/domain"
)

// Resolver expands a category input into the files to scan.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the files matching pattern, relative to root unless pattern
// is absolute. A path naming an existing file resolves to itself even when it
// contains glob metacharacters. Only pattern is treated as glob syntax, never
// root. Matches are returned in lexical order; no match is an
// ErrInputUnreadable.
func (r *Resolver) Resolve(root, pattern string) ([]string, error) {
	full := pattern
	if !filepath.IsAbs(full) {
		full = filepath.Join(root, pattern)
	}

	if info, err := os.Stat(full); err == nil && !info.IsDir() {
		return []string{full}, nil
	}

	if !doublestar.ValidatePathPattern(pattern) {
		return nil, fmt.Errorf("%w: invalid input pattern %q", domain.ErrInputUnreadable, pattern)
	}

	var matches []string
	var err error
	if filepath.IsAbs(pattern) {
		matches, err = doublestar.FilepathGlob(pattern)
	} else {
		matches, err = doublestar.Glob(os.DirFS(root), filepath.ToSlash(filepath.Clean(pattern)))
		for i, m := range matches {
			matches[i] = filepath.Join(root, filepath.FromSlash(m))
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInputUnreadable, pattern, err)
	}

	files := matches[:0]
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && !info.IsDir() {
			files = append(files, m)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInputUnreadable, full, os.ErrNotExist)
	}

	sort.Strings(files)
	return files, nil
}

// ReadLines reads a whole file and splits it into lines that keep their
// terminators. A final line without a terminator is returned as-is.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInputUnreadable, err)
	}
	defer f.Close()

	var lines []string
	br := bufio.NewReader(f)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrInputUnreadable, path, err)
		}
	}
	return lines, nil
}

// Writer writes generated files, truncating whatever was there before.
type Writer struct {
	createDirs bool
}

func NewWriter(createDirs bool) *Writer {
	return &Writer{createDirs: createDirs}
}

func (w *Writer) WriteFile(path, content string) error {
	if w.createDirs {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrOutputUnwritable, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrOutputUnwritable, err)
	}
	if _, err := io.WriteString(f, content); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %w", domain.ErrOutputUnwritable, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrOutputUnwritable, path, err)
	}
	return nil
}

// LineReader adapts ReadLines to port.LineReader.
type LineReader struct{}

func (LineReader) ReadLines(path string) ([]string, error) {
	return ReadLines(path)
}
