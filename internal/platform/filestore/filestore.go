// Package filestore persists a homogeneous collection of records as a single
// JSON array on disk.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const (
	fileExt  = ".json"
	dirPerm  = 0o755
	filePerm = 0o644
)

// ParseError is returned when a collection file exists but does not hold a
// JSON array.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("filestore: parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MutateFunc receives the current records and returns the records to persist
// and whether anything changed.
type MutateFunc[T any] func(records []T) ([]T, bool, error)

// Collection is one collection file, e.g. <dir>/items.json.
//
// Read-modify-write cycles through Mutate are serialized within the process.
// Other processes writing the same file are not coordinated with; the last
// rename wins.
type Collection[T any] struct {
	path string
	mu   sync.Mutex
}

// NewCollection returns the collection stored in dir under name.json.
func NewCollection[T any](dir, name string) *Collection[T] {
	return &Collection[T]{
		path: filepath.Join(dir, name+fileExt),
	}
}

// Path returns the location of the collection file.
func (c *Collection[T]) Path() string {
	return c.path
}

// Read returns all records. A missing file is an empty collection.
func (c *Collection[T]) Read(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.read()
}

// Write replaces the collection file with records, creating the directory
// when needed.
func (c *Collection[T]) Write(ctx context.Context, records []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.write(records)
}

// Mutate reads the collection, applies fn and writes the result back when fn
// reports a change.
func (c *Collection[T]) Mutate(ctx context.Context, fn MutateFunc[T]) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.read()
	if err != nil {
		return err
	}

	updated, changed, err := fn(records)
	if err != nil {
		return err
	}

	if !changed {
		return nil
	}

	return c.write(updated)
}

func (c *Collection[T]) read() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("filestore: read %s: %w", c.path, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &ParseError{Path: c.path, Err: err}
	}

	if records == nil {
		records = []T{}
	}

	return records, nil
}

func (c *Collection[T]) write(records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore: encode %s: %w", c.path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("filestore: create dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("filestore: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("filestore: write %s: %w", tmpName, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("filestore: close %s: %w", tmpName, err)
	}

	if err := os.Chmod(tmpName, filePerm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("filestore: chmod %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, c.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("filestore: replace %s: %w", c.path, err)
	}

	return nil
}
