package testutil

import (
	"context"
	"sync"
)

// WorldFileRepository keeps world files in memory and counts writes.
type WorldFileRepository struct {
	mutex    sync.Mutex
	Files    map[string][]byte
	PutCalls int
	Err      error
}

func NewWorldFileRepository() *WorldFileRepository {
	return &WorldFileRepository{Files: make(map[string][]byte)}
}

func (w *WorldFileRepository) EnsureBucket(ctx context.Context) error {
	return w.Err
}

func (w *WorldFileRepository) FileExists(ctx context.Context, key string) (bool, error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.Err != nil {
		return false, w.Err
	}
	_, ok := w.Files[key]
	return ok, nil
}

func (w *WorldFileRepository) PutFile(ctx context.Context, key string, data []byte, contentType string) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.Err != nil {
		return w.Err
	}
	w.PutCalls++
	w.Files[key] = append([]byte(nil), data...)
	return nil
}

func (w *WorldFileRepository) Count() int {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return len(w.Files)
}
