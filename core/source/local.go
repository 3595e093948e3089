package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalSource reads tables from a gamedata directory on disk.
type LocalSource struct {
	root string
}

// NewLocal creates a source rooted at the given gamedata directory.
// The directory is expected to contain the excel/ subfolder, not the
// repository root.
func NewLocal(root string) *LocalSource {
	return &LocalSource{root: root}
}

// FetchTable reads the table file from disk.
func (s *LocalSource) FetchTable(ctx context.Context, table Table) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fetch %s: %w: %v", table, ErrUnavailable, err)
	}
	data, err := os.ReadFile(filepath.Join(s.root, table.Path()))
	if err != nil {
		return nil, classifyFileError(table, err)
	}
	return data, nil
}

// StatTable checks the table file exists on disk.
func (s *LocalSource) StatTable(ctx context.Context, table Table) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("stat %s: %w: %v", table, ErrUnavailable, err)
	}
	if _, err := os.Stat(filepath.Join(s.root, table.Path())); err != nil {
		return classifyFileError(table, err)
	}
	return nil
}

func classifyFileError(table Table, err error) error {
	if os.IsNotExist(err) {
		return fmt.Errorf("table %s: %w", table, ErrNotFound)
	}
	return fmt.Errorf("table %s: %w: %v", table, ErrUnavailable, err)
}
