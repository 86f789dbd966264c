// Package sink persists generated documents.
//
// A commit writes a whole output set or nothing: every file is staged in a
// temporary directory next to the destination, then renamed into place. If
// a rename fails, files already placed are removed and any files they
// replaced are restored.
package sink

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrSink reports a storage failure. The underlying error is wrapped too.
var ErrSink = errors.New("sink failure")

// File is one output document.
type File struct {
	// Path is relative to the sink root, with forward slashes.
	Path  string
	Lines []string
}

// Content returns the file text: every line terminated by a newline.
func (f File) Content() string {
	if len(f.Lines) == 0 {
		return ""
	}
	return strings.Join(f.Lines, "\n") + "\n"
}

// Sink stores a set of files atomically.
type Sink interface {
	Commit(files []File) error
}

// Dir writes files below a root directory.
type Dir struct {
	root string
}

// NewDir creates a sink rooted at root. The directory is created on the
// first commit.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Root returns the destination directory.
func (d *Dir) Root() string { return d.root }

// Commit implements Sink.
func (d *Dir) Commit(files []File) (err error) {
	for _, f := range files {
		if _, err := cleanPath(f.Path); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(d.root, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create output directory: %w", ErrSink, err)
	}

	stage, err := os.MkdirTemp(d.root, ".partsfactory-")
	if err != nil {
		return fmt.Errorf("%w: failed to create staging directory: %w", ErrSink, err)
	}
	defer os.RemoveAll(stage)

	for i, f := range files {
		staged := filepath.Join(stage, fmt.Sprintf("%d", i))
		if err := os.WriteFile(staged, []byte(f.Content()), 0o644); err != nil {
			return fmt.Errorf("%w: failed to write %s: %w", ErrSink, f.Path, err)
		}
	}

	var tx transaction
	defer func() {
		if err != nil {
			tx.rollback()
		}
	}()

	for i, f := range files {
		rel, _ := cleanPath(f.Path)
		target := filepath.Join(d.root, rel)

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("%w: failed to create directory for %s: %w", ErrSink, f.Path, err)
		}

		if _, statErr := os.Lstat(target); statErr == nil {
			backup := filepath.Join(stage, fmt.Sprintf("%d.orig", i))
			if err := os.Rename(target, backup); err != nil {
				return fmt.Errorf("%w: failed to move aside %s: %w", ErrSink, f.Path, err)
			}
			tx.backups = append(tx.backups, move{from: backup, to: target})
		}

		if err := os.Rename(filepath.Join(stage, fmt.Sprintf("%d", i)), target); err != nil {
			return fmt.Errorf("%w: failed to place %s: %w", ErrSink, f.Path, err)
		}
		tx.placed = append(tx.placed, target)
	}

	return nil
}

type move struct{ from, to string }

// transaction records what a commit changed so it can be undone.
type transaction struct {
	placed  []string
	backups []move
}

func (t *transaction) rollback() {
	for i := len(t.placed) - 1; i >= 0; i-- {
		os.Remove(t.placed[i])
	}
	for _, b := range t.backups {
		os.Rename(b.from, b.to)
	}
}

func cleanPath(p string) (string, error) {
	rel := filepath.Clean(filepath.FromSlash(p))
	if p == "" || filepath.IsAbs(rel) || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: invalid output path %q", ErrSink, p)
	}
	return rel, nil
}

// Memory keeps committed files in memory. It is safe for concurrent use.
type Memory struct {
	mu    sync.Mutex
	files map[string]string
	// Fail, when set, is returned by Commit instead of storing anything.
	Fail error
}

// NewMemory creates an empty in-memory sink.
func NewMemory() *Memory {
	return &Memory{files: map[string]string{}}
}

// Commit implements Sink.
func (m *Memory) Commit(files []File) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Fail != nil {
		return fmt.Errorf("%w: %w", ErrSink, m.Fail)
	}
	for _, f := range files {
		if _, err := cleanPath(f.Path); err != nil {
			return err
		}
	}
	for _, f := range files {
		m.files[f.Path] = f.Content()
	}
	return nil
}

// Get returns the content stored at path.
func (m *Memory) Get(path string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.files[path]
	return s, ok
}

// Paths returns every stored path, sorted.
func (m *Memory) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
