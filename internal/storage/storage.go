package storage

import (
	"context"
	"io"
)

// Storage abstracts the image asset host. The write path returns both the
// opaque storage key (kept for later deletion) and the public URL to store on
// the owning record.
type Storage interface {
	Save(ctx context.Context, folder, filename string, data io.Reader) (key string, url string, err error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
