package repository

import (
	"context"
)

// WorldFileRepository stores raw world files by key in object storage.
type WorldFileRepository interface {
	EnsureBucket(ctx context.Context) error
	FileExists(ctx context.Context, key string) (bool, error)
	PutFile(ctx context.Context, key string, data []byte, contentType string) error
}
