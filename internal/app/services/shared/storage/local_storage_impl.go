package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"valivio-service/internal/app/contracts"
	"valivio-service/internal/pkg/exceptions"
)

type localStorage struct {
	Dir string
}

// NewLocalStorage serves content objects from files directly under dir.
func NewLocalStorage(dir string) contracts.ContentStorage {
	return &localStorage{Dir: dir}
}

func (l *localStorage) ReadObject(ctx context.Context, objectName string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// object names are flat; never walk out of Dir
	path := filepath.Join(l.Dir, filepath.Base(objectName))
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, contracts.ErrObjectNotFound
	} else if err != nil {
		return nil, exceptions.ErrContentReadObject(err, objectName)
	}
	return data, nil
}
