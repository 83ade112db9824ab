package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"valivio-service/internal/app/contracts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageReadObject(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "faq.json"), []byte(`[]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(dir), "secret.txt"), []byte("x"), 0o644))
	storage := NewLocalStorage(dir)

	data, err := storage.ReadObject(context.Background(), "faq.json")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	_, err = storage.ReadObject(context.Background(), "about.html")
	assert.ErrorIs(t, err, contracts.ErrObjectNotFound)

	_, err = storage.ReadObject(context.Background(), "../secret.txt")
	assert.ErrorIs(t, err, contracts.ErrObjectNotFound)
}
