package watermark

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, content string) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return NewFileStore(path)
}

func TestFileStore_Get(t *testing.T) {
	store := newStore(t, `{"last_date": "2024-01-01 00:00:00"}`)

	got, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), got)

	last, err := store.Last()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01 00:00:00", last)
}

func TestFileStore_GetFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantIs  error
	}{
		{"missing file", "", ErrNotInitialized},
		{"empty last_date", `{"last_date": ""}`, ErrNotInitialized},
		{"missing key", `{}`, ErrNotInitialized},
		{"bad date", `{"last_date": "01/01/2024"}`, ErrInvalidDate},
		{"not json", `last_date=2024`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore(t, tt.content)

			_, err := store.Get()
			require.Error(t, err)
			if tt.wantIs != nil {
				assert.True(t, errors.Is(err, tt.wantIs), "got %v", err)
			}
		})
	}
}

func TestFileStore_Update(t *testing.T) {
	store := newStore(t, `{"last_date": "2024-01-01 00:00:00"}`)

	require.NoError(t, store.Update("2024-01-02 10:00:00"))

	got, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), got)

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"last_date": "2024-01-02 10:00:00"}`, string(data))

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must be cleaned up")
}

func TestFileStore_UpdateCreatesFile(t *testing.T) {
	store := newStore(t, "")

	require.NoError(t, store.Update("2023-12-31 23:59:59"))

	last, err := store.Last()
	require.NoError(t, err)
	assert.Equal(t, "2023-12-31 23:59:59", last)
}

func TestFileStore_UpdateRejectsInvalidDate(t *testing.T) {
	store := newStore(t, `{"last_date": "2024-01-01 00:00:00"}`)

	err := store.Update("2024-01-02T10:00:00Z")
	assert.True(t, errors.Is(err, ErrInvalidDate))

	last, err := store.Last()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01 00:00:00", last)
}

func TestNewFileStore_DefaultPath(t *testing.T) {
	assert.Equal(t, DefaultPath, NewFileStore("").Path())
}
