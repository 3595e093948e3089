package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, root string, table Table, content string) {
	t.Helper()
	path := filepath.Join(root, table.Path())
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLocalSource_FetchTable(t *testing.T) {
	root := t.TempDir()
	writeTable(t, root, TableItem, `{"items":{}}`)
	src := NewLocal(root)

	t.Run("Existing Table", func(t *testing.T) {
		data, err := src.FetchTable(context.Background(), TableItem)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"items":{}}`, string(data))
	})

	t.Run("Missing Table", func(t *testing.T) {
		_, err := src.FetchTable(context.Background(), TableSkill)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Canceled Context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := src.FetchTable(ctx, TableItem)
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestCheck(t *testing.T) {
	root := t.TempDir()
	for _, table := range Tables {
		if table == TableHandbook {
			continue
		}
		writeTable(t, root, table, "{}")
	}

	missing, err := Check(context.Background(), NewLocal(root))
	assert.NoError(t, err)
	assert.Equal(t, []Table{TableHandbook}, missing)
}

func TestParseRegion(t *testing.T) {
	r, err := ParseRegion("ja_JP")
	assert.NoError(t, err)
	assert.Equal(t, RegionJaJP, r)

	_, err = ParseRegion("xx_XX")
	assert.Error(t, err)
}
