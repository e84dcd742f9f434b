package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

/*
FileBackend keeps each slot in <dir>/<slot>.json.
*/
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) (FileBackend, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return FileBackend{}, fmt.Errorf("error creating storage directory '%s': %w", dir, err)
	}

	return FileBackend{dir: dir}, nil
}

func (b FileBackend) Get(ctx context.Context, slot string) ([]byte, error) {
	var (
		err  error
		data []byte
	)

	if data, err = os.ReadFile(b.path(slot)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrSlotNotFound
		}

		return nil, fmt.Errorf("error reading slot '%s': %w", slot, err)
	}

	return data, nil
}

func (b FileBackend) Put(ctx context.Context, slot string, data []byte) error {
	var (
		err error
		f   *os.File
	)

	if f, err = os.CreateTemp(b.dir, slot+"-*.tmp"); err != nil {
		return fmt.Errorf("error creating temp file for slot '%s': %w", slot, err)
	}

	tmpName := f.Name()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		b.removeTemp(tmpName)
		return fmt.Errorf("error writing slot '%s': %w", slot, err)
	}

	if err = f.Close(); err != nil {
		b.removeTemp(tmpName)
		return fmt.Errorf("error closing temp file for slot '%s': %w", slot, err)
	}

	if err = os.Rename(tmpName, b.path(slot)); err != nil {
		b.removeTemp(tmpName)
		return fmt.Errorf("error replacing slot '%s': %w", slot, err)
	}

	return nil
}

func (b FileBackend) path(slot string) string {
	return filepath.Join(b.dir, filepath.Base(slot)+".json")
}

func (b FileBackend) removeTemp(name string) {
	if err := os.Remove(name); err != nil {
		slog.Error("error removing temp file", "file", name, "error", err)
	}
}
