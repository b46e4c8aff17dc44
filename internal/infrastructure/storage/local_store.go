package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"

	"motionstock/internal/domain/service"
)

// LocalStore keeps blobs on a filesystem rooted at a single directory.
type LocalStore struct {
	fs afero.Fs
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root %s: %v", root, err)
	}
	return NewLocalStoreWithFs(afero.NewBasePathFs(afero.NewOsFs(), root)), nil
}

func NewLocalStoreWithFs(fs afero.Fs) *LocalStore {
	return &LocalStore{fs: fs}
}

func (s *LocalStore) Save(ctx context.Context, key string, r io.Reader, contentType string) (int64, error) {
	name, err := cleanKey(key)
	if err != nil {
		return 0, err
	}

	if dir := path.Dir(name); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
	}

	f, err := s.fs.Create(name)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %v", err)
	}

	size, err := io.Copy(f, r)
	if err != nil {
		f.Close()
		s.fs.Remove(name)
		return 0, fmt.Errorf("failed to write file: %v", err)
	}

	if err := f.Close(); err != nil {
		s.fs.Remove(name)
		return 0, fmt.Errorf("failed to close file: %v", err)
	}

	return size, nil
}

func (s *LocalStore) Open(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	name, err := cleanKey(key)
	if err != nil {
		return nil, 0, service.ErrObjectNotFound
	}

	f, err := s.fs.Open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, service.ErrObjectNotFound
		}
		return nil, 0, fmt.Errorf("failed to open file: %v", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("failed to stat file: %v", err)
	}
	if info.IsDir() {
		f.Close()
		return nil, 0, service.ErrObjectNotFound
	}

	return f, info.Size(), nil
}

func (s *LocalStore) Exists(ctx context.Context, key string) (bool, error) {
	name, err := cleanKey(key)
	if err != nil {
		return false, nil
	}
	return afero.Exists(s.fs, name)
}

func (s *LocalStore) Delete(ctx context.Context, key string) error {
	name, err := cleanKey(key)
	if err != nil {
		return service.ErrObjectNotFound
	}

	if err := s.fs.Remove(name); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return service.ErrObjectNotFound
		}
		return fmt.Errorf("failed to delete file: %v", err)
	}
	return nil
}

func (s *LocalStore) Close() error {
	return nil
}

// cleanKey normalises a slash-separated key and refuses anything that would
// escape the store root.
func cleanKey(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("empty storage key")
	}
	name := path.Clean(strings.TrimPrefix(key, "/"))
	if name == "." || name == ".." || strings.HasPrefix(name, "../") {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return name, nil
}
