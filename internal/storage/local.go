package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage keeps assets on the local filesystem and serves them through
// the API's /api/assets route. Keys are uuid-based so uploads never collide
// and original filenames never leak into paths.
type LocalStorage struct {
	baseDir string
	baseURL string
}

func NewLocalStorage(baseURL, baseDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *LocalStorage) Save(ctx context.Context, folder, filename string, data io.Reader) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif":
	default:
		return "", "", fmt.Errorf("unsupported file type %q", ext)
	}

	key := filepath.ToSlash(filepath.Join(folder, uuid.NewString()+ext))
	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", "", err
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		os.Remove(fullPath)
		return "", "", err
	}

	return key, s.baseURL + "/api/assets/" + key, nil
}

func (s *LocalStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	clean, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	return os.Open(clean)
}

func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	clean, err := s.resolve(key)
	if err != nil {
		return err
	}
	err = os.Remove(clean)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// resolve rejects keys that would escape the base directory.
func (s *LocalStorage) resolve(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.baseDir, clean), nil
}
