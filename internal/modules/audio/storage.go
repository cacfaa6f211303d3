package audio

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Storage is the object-store boundary for delivered audio. Keys look like
// "<orderID>/audio/<filename>". The disk implementation below stands in for
// a bucket; swapping in a remote store only needs this interface.
type Storage interface {
	Save(ctx context.Context, key string, r io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	List(ctx context.Context, prefix string) ([]string, error)
	Remove(ctx context.Context, key string) error
}

type DiskStorage struct {
	baseDir string
}

func NewDiskStorage(baseDir string) *DiskStorage {
	if baseDir == "" {
		baseDir = "./audio-store"
	}
	return &DiskStorage{baseDir: baseDir}
}

func (s *DiskStorage) path(key string) string {
	return filepath.Join(s.baseDir, filepath.FromSlash(key))
}

func (s *DiskStorage) Save(_ context.Context, key string, r io.Reader) error {
	path := s.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, r)
	return err
}

func (s *DiskStorage) Open(_ context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(s.path(key))
	if os.IsNotExist(err) {
		return nil, ErrFileNotFound
	}
	return f, err
}

func (s *DiskStorage) List(_ context.Context, prefix string) ([]string, error) {
	dir := s.path(prefix)
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		keys = append(keys, strings.TrimSuffix(prefix, "/")+"/"+e.Name())
	}
	return keys, nil
}

func (s *DiskStorage) Remove(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return ErrFileNotFound
	}
	return err
}
