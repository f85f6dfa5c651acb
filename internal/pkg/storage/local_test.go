package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteUnique(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	written, err := store.WriteUnique(ctx, "2024/03. March", "2024.03 Production.xlsx", []byte("one"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("2024", "03. March", "2024.03 Production.xlsx"), written)

	exists, err := store.Exists(ctx, written)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestWriteUniqueCollisionSuffix(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	first, err := store.WriteUnique(ctx, "2024", "report.xlsx", []byte("one"))
	require.NoError(t, err)
	second, err := store.WriteUnique(ctx, "2024", "report.xlsx", []byte("two"))
	require.NoError(t, err)
	third, err := store.WriteUnique(ctx, "2024", "report.xlsx", []byte("three"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("2024", "report.xlsx"), first)
	assert.Equal(t, filepath.Join("2024", "report_1.xlsx"), second)
	assert.Equal(t, filepath.Join("2024", "report_2.xlsx"), third)

	// Earlier files are untouched.
	base := store.basePath
	data, err := os.ReadFile(filepath.Join(base, first))
	require.NoError(t, err)
	assert.Equal(t, "one", string(data))
	data, err = os.ReadFile(filepath.Join(base, third))
	require.NoError(t, err)
	assert.Equal(t, "three", string(data))
}

func TestWriteUniqueRejectsTraversal(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.WriteUnique(context.Background(), "../../etc", "evil.xlsx", []byte("x"))
	assert.Error(t, err)
}
